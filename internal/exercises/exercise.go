package exercises

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is reference data, created by the seed task or by POST /exercises.
type Exercise struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name" json:"name"`
	Target    string        `bson:"target" json:"target"`
	BodyPart  string        `bson:"bodyPart" json:"bodyPart"`
	Equipment string        `bson:"equipment" json:"equipment"`
	GifURL    string        `bson:"gifUrl" json:"gifUrl"`
}
