package users

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
		col: database.Collection(db.CollectionUsers),
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ bson.ObjectID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := db.InsertOne(ctx, r.col, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return bson.NilObjectID, ErrDuplicateUsername
		}
		return bson.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id bson.ObjectID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_username")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_email")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *Repo) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	users, err := db.FindMany[User](ctx, r.col, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

// Update overwrites the user fields, keeping the id.
func (r *Repo) Update(ctx context.Context, id bson.ObjectID, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	err = db.UpdateByID(ctx, r.col, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "username", Value: user.Username},
		{Key: "password", Value: user.Password},
		{Key: "email", Value: user.Email},
		{Key: "workouts", Value: user.Workouts},
		{Key: "workoutLogs", Value: user.WorkoutLogs},
	}}})
	return r.mapErr("update user", err)
}

func (r *Repo) Delete(ctx context.Context, id bson.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.Hex()))

	return r.mapErr("delete user", db.DeleteByID(ctx, r.col, id))
}

func (r *Repo) AddWorkout(ctx context.Context, userID, workoutID bson.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "workouts", workoutID)
}

func (r *Repo) RemoveWorkout(ctx context.Context, userID, workoutID bson.ObjectID) error {
	return r.updateSet(ctx, userID, "$pull", "workouts", workoutID)
}

func (r *Repo) AddWorkoutLog(ctx context.Context, userID, logID bson.ObjectID) error {
	return r.updateSet(ctx, userID, "$addToSet", "workoutLogs", logID)
}

func (r *Repo) RemoveWorkoutLog(ctx context.Context, userID, logID bson.ObjectID) error {
	return r.updateSet(ctx, userID, "$pull", "workoutLogs", logID)
}

func (r *Repo) updateSet(ctx context.Context, userID bson.ObjectID, op, field string, value bson.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.owned_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", userID.Hex()),
		attribute.String("op", op),
		attribute.String("field", field),
	)

	err = db.UpdateByID(ctx, r.col, userID, bson.D{{Key: op, Value: bson.D{{Key: field, Value: value}}}})
	return r.mapErr(fmt.Sprintf("%s %s", op, field), err)
}

func (r *Repo) findOne(ctx context.Context, filter bson.D) (*User, error) {
	user, err := db.FindOne[User](ctx, r.col, filter)
	if err != nil {
		return nil, r.mapErr("find user", err)
	}
	return user, nil
}

func (r *Repo) mapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, db.ErrDuplicate):
		return ErrDuplicateUsername
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
