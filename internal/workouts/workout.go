package workouts

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrInvalidExerciseEntry = errors.New("invalid exercise entry")
	ErrCreatorNotFound      = errors.New("workout creator not found")
)

type Workout struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string          `bson:"name" json:"name"`
	Creator   bson.ObjectID   `bson:"creator" json:"creator"`
	Exercises []ExerciseEntry `bson:"exercises" json:"exercises"`
}

// ExerciseEntry is one planned exercise of a workout template.
type ExerciseEntry struct {
	ExerciseID        bson.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets              int           `bson:"sets" json:"sets"`
	Reps              int           `bson:"reps" json:"reps"`
	AdditionalDetails string        `bson:"additionalDetails,omitempty" json:"additionalDetails,omitempty"`
}
