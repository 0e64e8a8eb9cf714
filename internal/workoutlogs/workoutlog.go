package workoutlogs

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrWorkoutLogNotFound  = errors.New("workout log not found")
	ErrExerciseLogNotFound = errors.New("exercise log not found in workout log")
	ErrInvalidExerciseLog  = errors.New("invalid exercise log")
	ErrUserNotFound        = errors.New("workout log user not found")
	ErrWorkoutNotFound     = errors.New("workout log workout not found")
)

// WorkoutLog is one performed workout session. Date is kept as sent by the client,
// Day holds the same date as YYYY-MM-DD and is what date lookups match on.
type WorkoutLog struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID       bson.ObjectID `bson:"userId" json:"userId"`
	WorkoutID    bson.ObjectID `bson:"workoutId" json:"workoutId"`
	Date         string        `bson:"date" json:"date"`
	Day          string        `bson:"day" json:"-"`
	ExerciseLogs []ExerciseLog `bson:"exerciseLogs" json:"exerciseLogs"`
}

type ExerciseLog struct {
	ExerciseID bson.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name       string        `bson:"name" json:"name"`
	Sets       int           `bson:"sets" json:"sets"`
	Reps       int           `bson:"reps" json:"reps"`
	Notes      string        `bson:"notes" json:"notes"`
}

// Filter selects workout logs. Nil ids and an empty day match any log.
type Filter struct {
	UserID    *bson.ObjectID
	WorkoutID *bson.ObjectID
	Day       string
}

func (f Filter) toBSON() bson.D {
	filter := bson.D{}
	if f.UserID != nil {
		filter = append(filter, bson.E{Key: "userId", Value: *f.UserID})
	}
	if f.WorkoutID != nil {
		filter = append(filter, bson.E{Key: "workoutId", Value: *f.WorkoutID})
	}
	if f.Day != "" {
		filter = append(filter, bson.E{Key: "day", Value: f.Day})
	}
	return filter
}
