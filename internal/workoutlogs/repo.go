package workoutlogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	col *mongo.Collection
}

func NewRepo(database *mongo.Database) *Repo {
	return &Repo{
		col: database.Collection(db.CollectionWorkoutLogs),
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog WorkoutLog) (_ bson.ObjectID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workoutLog.ExerciseLogs == nil {
		workoutLog.ExerciseLogs = []ExerciseLog{}
	}
	id, err := db.InsertOne(ctx, r.col, workoutLog)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert workout log: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id bson.ObjectID) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	workoutLog, err := db.FindOne[WorkoutLog](ctx, r.col, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, mapErr("find workout log", err)
	}
	return workoutLog, nil
}

// Find returns the logs matching filter, oldest insert first.
func (r *Repo) Find(ctx context.Context, filter Filter) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := filter.toBSON()
	span.SetAttributes(attribute.Int("filter.fields", len(query)))

	logs, err := db.FindMany[WorkoutLog](ctx, r.col, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find workout logs: %w", err)
	}
	return logs, nil
}

func (r *Repo) PushExercise(ctx context.Context, id bson.ObjectID, exerciseLog ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.push_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "exerciseLogs", Value: exerciseLog}}}}
	return mapErr("push exercise log", db.UpdateByID(ctx, r.col, id, update))
}

func (r *Repo) SetExercises(ctx context.Context, id bson.ObjectID, exerciseLogs []ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.set_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "exerciseLogs", Value: exerciseLogs}}}}
	return mapErr("set exercise logs", db.UpdateByID(ctx, r.col, id, update))
}

func (r *Repo) Replace(ctx context.Context, workoutLog WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", workoutLog.ID.Hex()))

	return mapErr("replace workout log", db.ReplaceByID(ctx, r.col, workoutLog.ID, workoutLog))
}

func (r *Repo) Delete(ctx context.Context, id bson.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	return mapErr("delete workout log", db.DeleteByID(ctx, r.col, id))
}

func (r *Repo) DeleteByUser(ctx context.Context, userID bson.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.delete_by_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.Hex()))

	res, err := r.col.DeleteMany(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		return 0, fmt.Errorf("delete workout logs: %w", db.WrapError(err))
	}
	return res.DeletedCount, nil
}

func mapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrWorkoutLogNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
