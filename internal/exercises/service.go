package exercises

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*Exercise, error)
	GetByName(ctx context.Context, name string) (*Exercise, error)
	List(ctx context.Context, field, value string) ([]Exercise, error)
	CountByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

type Service struct {
	repo exercisesRepo
}

func NewService(repo exercisesRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create validates every field and stores the exercise. It returns the created name.
func (s *Service) Create(ctx context.Context, name, target, bodyPart, equipment, gifURL string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := Exercise{}
	if exercise.Name, err = validation.NonEmptyString("name", name); err != nil {
		return "", err
	}
	if exercise.Target, err = validation.NonEmptyString("target", target); err != nil {
		return "", err
	}
	if exercise.BodyPart, err = validation.NonEmptyString("bodyPart", bodyPart); err != nil {
		return "", err
	}
	if exercise.Equipment, err = validation.NonEmptyString("equipment", equipment); err != nil {
		return "", err
	}
	if exercise.GifURL, err = validation.ValidURL("gifUrl", gifURL); err != nil {
		return "", err
	}

	if _, err := s.repo.Add(ctx, exercise); err != nil {
		return "", fmt.Errorf("add exercise: %w", err)
	}

	return exercise.Name, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, objID)
}

func (s *Service) GetByName(ctx context.Context, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err = validation.NonEmptyString("name", name)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) GetByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error) {
	return s.listBy(ctx, "bodyPart", bodyPart)
}

func (s *Service) GetByEquipment(ctx context.Context, equipment string) ([]Exercise, error) {
	return s.listBy(ctx, "equipment", equipment)
}

func (s *Service) GetByTarget(ctx context.Context, target string) ([]Exercise, error) {
	return s.listBy(ctx, "target", target)
}

func (s *Service) GetAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.List(ctx, "", "")
}

// Exist reports whether every id in ids references a stored exercise.
// Duplicate ids are counted once.
func (s *Service) Exist(ctx context.Context, ids []bson.ObjectID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.exist")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unique := make([]bson.ObjectID, 0, len(ids))
	seen := make(map[bson.ObjectID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return true, nil
	}

	count, err := s.repo.CountByIDs(ctx, unique)
	if err != nil {
		return false, fmt.Errorf("count exercises: %w", err)
	}
	return count == int64(len(unique)), nil
}

func (s *Service) listBy(ctx context.Context, field, value string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list_by_"+field)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	value, err = validation.NonEmptyString(field, value)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, field, value)
}
