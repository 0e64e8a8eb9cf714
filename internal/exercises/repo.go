package exercises

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
		col: database.Collection(db.CollectionExercises),
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ bson.ObjectID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := db.InsertOne(ctx, r.col, exercise)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert exercise: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id bson.ObjectID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *Repo) GetByName(ctx context.Context, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	return r.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

// List returns the exercises where field equals value. An empty field lists everything.
func (r *Repo) List(ctx context.Context, field, value string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("field", field))

	filter := bson.D{}
	if field != "" {
		filter = bson.D{{Key: field, Value: value}}
	}

	exercises, err := db.FindMany[Exercise](ctx, r.col, filter)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	return exercises, nil
}

// CountByIDs returns how many of the given ids exist in the collection.
func (r *Repo) CountByIDs(ctx context.Context, ids []bson.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count_by_ids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := r.col.CountDocuments(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return 0, fmt.Errorf("count exercises: %w", db.WrapError(err))
	}
	return count, nil
}

func (r *Repo) findOne(ctx context.Context, filter bson.D) (*Exercise, error) {
	exercise, err := db.FindOne[Exercise](ctx, r.col, filter)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return exercise, nil
}
