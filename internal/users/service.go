package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id bson.ObjectID, user User) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// OwnedRemover deletes everything a user owns of one kind (workouts, workout logs).
type OwnedRemover interface {
	RemoveOwnedBy(ctx context.Context, userID bson.ObjectID) (int64, error)
}

type Service struct {
	repo          usersRepo
	ownedRemovers []OwnedRemover
}

// NewService creates the users service. Owned removers are called, in order,
// after a user is deleted.
func NewService(repo usersRepo, ownedRemovers ...OwnedRemover) *Service {
	return &Service{
		repo:          repo,
		ownedRemovers: ownedRemovers,
	}
}

// CreateUser validates the fields, hashes the password and stores a user with no
// owned workouts or logs. The username pre-check is only a fast path, the unique
// index on username is what settles concurrent signups.
func (s *Service) CreateUser(ctx context.Context, username, password, email string) (_ bson.ObjectID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if username, err = validation.NonEmptyAlphanumeric("username", username); err != nil {
		return bson.NilObjectID, err
	}
	if err := validatePassword(password); err != nil {
		return bson.NilObjectID, err
	}
	if email, err = validation.ValidEmail("email", email); err != nil {
		return bson.NilObjectID, err
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return bson.NilObjectID, ErrDuplicateUsername
	} else if !errors.Is(err, ErrUserNotFound) {
		return bson.NilObjectID, fmt.Errorf("check username: %w", err)
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Add(ctx, User{
		Username:    username,
		Password:    hash,
		Email:       email,
		Workouts:    []bson.ObjectID{},
		WorkoutLogs: []bson.ObjectID{},
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return bson.NilObjectID, err
		}
		return bson.NilObjectID, fmt.Errorf("add user: %w", err)
	}

	return id, nil
}

// CheckCredentials looks the user up by email (identifier containing '@') or by username
// and compares the password against the stored hash.
func (s *Service) CheckCredentials(ctx context.Context, identifier, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.check_credentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validatePassword(password); err != nil {
		return nil, err
	}

	var user *User
	if strings.Contains(identifier, "@") {
		email, err := validation.ValidEmail("email", identifier)
		if err != nil {
			return nil, err
		}
		user, err = s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
	} else {
		username, err := validation.NonEmptyAlphanumeric("username", identifier)
		if err != nil {
			return nil, err
		}
		user, err = s.repo.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
	}

	if !pkg.CheckPasswordHash(password, user.Password) {
		log.Tracef("failed login attempt for user: %s", user.Username)
		return nil, ErrInvalidCredentials
	}

	return withoutPassword(user), nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Get(ctx, objID)
	if err != nil {
		return nil, err
	}
	return withoutPassword(user), nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.get_by_username")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if username, err = validation.NonEmptyAlphanumeric("username", username); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return withoutPassword(user), nil
}

func (s *Service) GetAllUsers(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.get_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = *withoutPassword(&users[i])
	}
	return users, nil
}

// UpdateUser replaces the user fields with a complete, valid user record.
// The password in the update is plain text and gets hashed before storing.
func (s *Service) UpdateUser(ctx context.Context, id string, update UserUpdate) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}

	user, err := toUser(update)
	if err != nil {
		return nil, err
	}

	if user.Password, err = pkg.HashPassword(update.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Update(ctx, objID, user); err != nil {
		return nil, err
	}

	user.ID = objID
	return withoutPassword(&user), nil
}

// DeleteUser removes the user and then everything the user owns.
// A failing cascade step is reported, but the user is already gone at that point.
func (s *Service) DeleteUser(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	objID, err := validation.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, objID); err != nil {
		return err
	}

	for _, remover := range s.ownedRemovers {
		removed, err := remover.RemoveOwnedBy(ctx, objID)
		if err != nil {
			return fmt.Errorf("remove owned documents: %w", err)
		}
		log.Debugf("user [%s] deleted, removed %d owned documents", objID.Hex(), removed)
	}

	return nil
}

func toUser(update UserUpdate) (User, error) {
	invalid := func(reason error) (User, error) {
		return User{}, fmt.Errorf("%w: %s", ErrInvalidUser, reason)
	}

	username, err := validation.NonEmptyAlphanumeric("username", update.Username)
	if err != nil {
		return invalid(err)
	}
	if err := validatePassword(update.Password); err != nil {
		return invalid(err)
	}
	email, err := validation.ValidEmail("email", update.Email)
	if err != nil {
		return invalid(err)
	}
	if update.Workouts == nil {
		return invalid(validation.NewFieldError("workouts", "must be an array"))
	}
	if update.WorkoutLogs == nil {
		return invalid(validation.NewFieldError("workoutLogs", "must be an array"))
	}

	workouts, err := parseIDs("workouts", update.Workouts)
	if err != nil {
		return invalid(err)
	}
	workoutLogs, err := parseIDs("workoutLogs", update.WorkoutLogs)
	if err != nil {
		return invalid(err)
	}

	return User{
		Username:    username,
		Email:       email,
		Workouts:    workouts,
		WorkoutLogs: workoutLogs,
	}, nil
}

func parseIDs(field string, ids []string) ([]bson.ObjectID, error) {
	parsed := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := validation.ParseID(id)
		if err != nil {
			return nil, validation.NewFieldError(field, fmt.Sprintf("invalid id [%s]", id))
		}
		parsed = append(parsed, objID)
	}
	return parsed, nil
}

// bcrypt only looks at the first 72 bytes and refuses anything longer
const maxPasswordBytes = 72

func validatePassword(password string) error {
	if password == "" {
		return validation.NewFieldError("password", "must not be empty")
	}
	if len(password) > maxPasswordBytes {
		return validation.NewFieldError("password", fmt.Sprintf("must not be longer than %d bytes", maxPasswordBytes))
	}
	return nil
}

func withoutPassword(user *User) *User {
	u := *user
	u.Password = ""
	if u.Workouts == nil {
		u.Workouts = []bson.ObjectID{}
	}
	if u.WorkoutLogs == nil {
		u.WorkoutLogs = []bson.ObjectID{}
	}
	return &u
}
