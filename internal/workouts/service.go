package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/internal/validation"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*Workout, error)
	List(ctx context.Context, creator *bson.ObjectID) ([]Workout, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByCreator(ctx context.Context, creator bson.ObjectID) (int64, error)
}

type exercisesChecker interface {
	Exist(ctx context.Context, ids []bson.ObjectID) (bool, error)
}

// ownerLinker keeps the creator's set of owned workout ids in sync.
type ownerLinker interface {
	AddWorkout(ctx context.Context, userID, workoutID bson.ObjectID) error
	RemoveWorkout(ctx context.Context, userID, workoutID bson.ObjectID) error
}

type Service struct {
	repo      workoutsRepo
	exercises exercisesChecker
	owners    ownerLinker
}

func NewService(repo workoutsRepo, exercises exercisesChecker, owners ownerLinker) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
		owners:    owners,
	}
}

// Create validates the workout and its raw exercise entries, stores it and
// links it to the creator. Nothing is stored if any entry is invalid.
func (s *Service) Create(ctx context.Context, name, creator string, rawEntries any) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout := Workout{}
	if workout.Name, err = validation.NonEmptyString("name", name); err != nil {
		return nil, err
	}
	if workout.Creator, err = validation.ParseID(creator); err != nil {
		return nil, err
	}
	if workout.Exercises, err = SanitizeEntries(rawEntries); err != nil {
		return nil, err
	}

	exerciseIDs := make([]bson.ObjectID, 0, len(workout.Exercises))
	for _, e := range workout.Exercises {
		exerciseIDs = append(exerciseIDs, e.ExerciseID)
	}
	exist, err := s.exercises.Exist(ctx, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("check exercises: %w", err)
	}
	if !exist {
		return nil, fmt.Errorf("%w: references an unknown exercise", ErrInvalidExerciseEntry)
	}

	id, err := s.repo.Add(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	workout.ID = id

	if err := s.owners.AddWorkout(ctx, workout.Creator, id); err != nil {
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			log.Errorf("rollback workout [%s]: %s", id.Hex(), delErr)
		}
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("link workout to creator: %w", err)
	}

	return &workout, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, objID)
}

// Exists reports whether a workout with the given id is stored.
func (s *Service) Exists(ctx context.Context, id bson.ObjectID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) GetByCreator(ctx context.Context, creatorID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get_by_creator")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(creatorID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, &objID)
}

func (s *Service) GetAll(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.List(ctx, nil)
}

// Delete removes the workout and unlinks it from its creator.
// A creator that no longer exists is not an error.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return err
	}

	workout, err := s.repo.Get(ctx, objID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, objID); err != nil {
		return err
	}

	if err := s.owners.RemoveWorkout(ctx, workout.Creator, objID); err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("unlink workout from creator: %w", err)
	}
	return nil
}

// RemoveOwnedBy deletes all workouts created by userID. Used when the user is deleted.
func (s *Service) RemoveOwnedBy(ctx context.Context, userID bson.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.remove_owned_by")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteByCreator(ctx, userID)
}
