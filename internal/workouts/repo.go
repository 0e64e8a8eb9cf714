package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	col *mongo.Collection
}

func NewRepo(database *mongo.Database) *Repo {
	return &Repo{
		col: database.Collection(db.CollectionWorkouts),
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ bson.ObjectID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := db.InsertOne(ctx, r.col, workout)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert workout: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id bson.ObjectID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	workout, err := db.FindOne[Workout](ctx, r.col, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}
	return workout, nil
}

// List returns all workouts, or only the ones created by creator when it is not nil.
func (r *Repo) List(ctx context.Context, creator *bson.ObjectID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter := bson.D{}
	if creator != nil {
		filter = bson.D{{Key: "creator", Value: *creator}}
		span.SetAttributes(attribute.String("creator", creator.Hex()))
	}

	workouts, err := db.FindMany[Workout](ctx, r.col, filter)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}
	return workouts, nil
}

func (r *Repo) Delete(ctx context.Context, id bson.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	if err := db.DeleteByID(ctx, r.col, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

func (r *Repo) DeleteByCreator(ctx context.Context, creator bson.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete_by_creator")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("creator", creator.Hex()))

	res, err := r.col.DeleteMany(ctx, bson.D{{Key: "creator", Value: creator}})
	if err != nil {
		return 0, fmt.Errorf("delete workouts: %w", db.WrapError(err))
	}
	return res.DeletedCount, nil
}
