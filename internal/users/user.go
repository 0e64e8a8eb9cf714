package users

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUser        = errors.New("invalid user object provided")
)

// User as stored. Password holds the bcrypt hash and is never serialized to JSON.
type User struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username    string          `bson:"username" json:"username"`
	Password    string          `bson:"password" json:"-"`
	Email       string          `bson:"email" json:"email"`
	Workouts    []bson.ObjectID `bson:"workouts" json:"workouts"`
	WorkoutLogs []bson.ObjectID `bson:"workoutLogs" json:"workoutLogs"`
}

// UserUpdate is the full user record expected by PUT /users/{id}.
// Nil id slices mean the field was missing from the request.
type UserUpdate struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Email       string   `json:"email"`
	Workouts    []string `json:"workouts"`
	WorkoutLogs []string `json:"workoutLogs"`
}
