package workoutlogs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/internal/validation"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

//go:generate mockgen -source=$GOFILE -destination=workoutlogs_mocks_test.go -package=workoutlogs_test

type workoutLogsRepo interface {
	Add(ctx context.Context, workoutLog WorkoutLog) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*WorkoutLog, error)
	Find(ctx context.Context, filter Filter) ([]WorkoutLog, error)
	PushExercise(ctx context.Context, id bson.ObjectID, exerciseLog ExerciseLog) error
	SetExercises(ctx context.Context, id bson.ObjectID, exerciseLogs []ExerciseLog) error
	Replace(ctx context.Context, workoutLog WorkoutLog) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByUser(ctx context.Context, userID bson.ObjectID) (int64, error)
}

type workoutChecker interface {
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}

// ownerLinker keeps the user's set of owned workout log ids in sync.
type ownerLinker interface {
	AddWorkoutLog(ctx context.Context, userID, logID bson.ObjectID) error
	RemoveWorkoutLog(ctx context.Context, userID, logID bson.ObjectID) error
}

type Service struct {
	repo     workoutLogsRepo
	workouts workoutChecker
	owners   ownerLinker
}

func NewService(repo workoutLogsRepo, workouts workoutChecker, owners ownerLinker) *Service {
	return &Service{
		repo:     repo,
		workouts: workouts,
		owners:   owners,
	}
}

// Create stores a new log without exercise logs and links it to the user.
func (s *Service) Create(ctx context.Context, userID, workoutID, date string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog, err := newWorkoutLog(userID, workoutID, date)
	if err != nil {
		return nil, err
	}
	workoutLog.ExerciseLogs = []ExerciseLog{}

	if err := s.checkWorkout(ctx, workoutLog.WorkoutID); err != nil {
		return nil, err
	}

	id, err := s.repo.Add(ctx, workoutLog)
	if err != nil {
		return nil, fmt.Errorf("add workout log: %w", err)
	}
	workoutLog.ID = id

	if err := s.owners.AddWorkoutLog(ctx, workoutLog.UserID, id); err != nil {
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			log.Errorf("rollback workout log [%s]: %s", id.Hex(), delErr)
		}
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("link workout log to user: %w", err)
	}

	return &workoutLog, nil
}

func (s *Service) AddExercise(ctx context.Context, logID string, rawExerciseLog any) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := validation.ParseID(logID)
	if err != nil {
		return nil, err
	}
	exerciseLog, err := SanitizeExerciseLog(rawExerciseLog)
	if err != nil {
		return nil, err
	}

	if err := s.repo.PushExercise(ctx, id, exerciseLog); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// RemoveExercise removes a single entry equal to the given exercise log.
func (s *Service) RemoveExercise(ctx context.Context, logID string, rawExerciseLog any) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := validation.ParseID(logID)
	if err != nil {
		return nil, err
	}
	exerciseLog, err := SanitizeExerciseLog(rawExerciseLog)
	if err != nil {
		return nil, err
	}

	workoutLog, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	remaining, err := removeFirst(workoutLog.ExerciseLogs, exerciseLog)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetExercises(ctx, id, remaining); err != nil {
		return nil, err
	}

	workoutLog.ExerciseLogs = remaining
	return workoutLog, nil
}

// UpdateLog validates and replaces the whole log. Moving it to another user relinks it.
func (s *Service) UpdateLog(ctx context.Context, logID, userID, workoutID, date string, rawExerciseLogs any) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := validation.ParseID(logID)
	if err != nil {
		return nil, err
	}
	updated, err := newWorkoutLog(userID, workoutID, date)
	if err != nil {
		return nil, err
	}
	if updated.ExerciseLogs, err = SanitizeExerciseLogs(rawExerciseLogs); err != nil {
		return nil, err
	}
	updated.ID = id

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.WorkoutID != updated.WorkoutID {
		if err := s.checkWorkout(ctx, updated.WorkoutID); err != nil {
			return nil, err
		}
	}

	userChanged := current.UserID != updated.UserID
	if userChanged {
		if err := s.owners.AddWorkoutLog(ctx, updated.UserID, id); err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("link workout log to user: %w", err)
		}
	}

	if err := s.repo.Replace(ctx, updated); err != nil {
		if userChanged {
			if unlinkErr := s.owners.RemoveWorkoutLog(ctx, updated.UserID, id); unlinkErr != nil {
				log.Errorf("rollback link of workout log [%s] to user [%s]: %s", id.Hex(), updated.UserID.Hex(), unlinkErr)
			}
		}
		return nil, err
	}

	if userChanged {
		if err := s.owners.RemoveWorkoutLog(ctx, current.UserID, id); err != nil && !errors.Is(err, users.ErrUserNotFound) {
			return nil, fmt.Errorf("unlink workout log from previous user: %w", err)
		}
	}

	return &updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, objID)
}

func (s *Service) GetByUser(ctx context.Context, userID string) ([]WorkoutLog, error) {
	id, err := validation.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, "service.workoutlogs.get_by_user", Filter{UserID: &id})
}

func (s *Service) GetByWorkout(ctx context.Context, workoutID string) ([]WorkoutLog, error) {
	id, err := validation.ParseID(workoutID)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, "service.workoutlogs.get_by_workout", Filter{WorkoutID: &id})
}

func (s *Service) GetByDate(ctx context.Context, date string) ([]WorkoutLog, error) {
	day, err := validation.NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, "service.workoutlogs.get_by_date", Filter{Day: day})
}

func (s *Service) GetAll(ctx context.Context) ([]WorkoutLog, error) {
	return s.find(ctx, "service.workoutlogs.get_all", Filter{})
}

// FilterLogs returns logs matching every supplied field. Empty or blank fields are
// not constraints, so no fields at all returns every log.
func (s *Service) FilterLogs(ctx context.Context, userID, workoutID, date string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.filter")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter, err := newFilter(userID, workoutID, date)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, filter)
}

func (s *Service) find(ctx context.Context, spanName string, filter Filter) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Find(ctx, filter)
}

// DeleteLog removes the log and unlinks it from its user.
func (s *Service) DeleteLog(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return err
	}

	workoutLog, err := s.repo.Get(ctx, objID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, objID); err != nil {
		return err
	}

	if err := s.owners.RemoveWorkoutLog(ctx, workoutLog.UserID, objID); err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("unlink workout log from user: %w", err)
	}
	return nil
}

// RemoveOwnedBy deletes every log of userID. Used when the user is deleted.
func (s *Service) RemoveOwnedBy(ctx context.Context, userID bson.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlogs.remove_owned_by")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteByUser(ctx, userID)
}

func (s *Service) checkWorkout(ctx context.Context, workoutID bson.ObjectID) error {
	exists, err := s.workouts.Exists(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("check workout: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: [%s]", ErrWorkoutNotFound, workoutID.Hex())
	}
	return nil
}

func newWorkoutLog(userID, workoutID, date string) (WorkoutLog, error) {
	var (
		workoutLog WorkoutLog
		err        error
	)
	if workoutLog.UserID, err = validation.ParseID(userID); err != nil {
		return WorkoutLog{}, fmt.Errorf("userId: %w", err)
	}
	if workoutLog.WorkoutID, err = validation.ParseID(workoutID); err != nil {
		return WorkoutLog{}, fmt.Errorf("workoutId: %w", err)
	}
	if workoutLog.Date, err = validation.IsValidDate(date); err != nil {
		return WorkoutLog{}, err
	}
	if workoutLog.Day, err = validation.NormalizeDate(date); err != nil {
		return WorkoutLog{}, err
	}
	return workoutLog, nil
}

func newFilter(userID, workoutID, date string) (Filter, error) {
	var filter Filter
	if strings.TrimSpace(userID) != "" {
		id, err := validation.ParseID(userID)
		if err != nil {
			return Filter{}, fmt.Errorf("userId: %w", err)
		}
		filter.UserID = &id
	}
	if strings.TrimSpace(workoutID) != "" {
		id, err := validation.ParseID(workoutID)
		if err != nil {
			return Filter{}, fmt.Errorf("workoutId: %w", err)
		}
		filter.WorkoutID = &id
	}
	if strings.TrimSpace(date) != "" {
		day, err := validation.NormalizeDate(date)
		if err != nil {
			return Filter{}, err
		}
		filter.Day = day
	}
	return filter, nil
}
