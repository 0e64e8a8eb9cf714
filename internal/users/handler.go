package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service        *Service
	metricsManager *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	// login gets its own subrouter, registered first, so the rate limit applies to it alone
	loginRouter := mainRouter.PathPrefix("/users/login").Subrouter()
	loginRouter.HandleFunc("", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	if rateLimiter != nil {
		loginRouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, handler.metricsManager))
	}

	r := mainRouter.PathPrefix("/users").Subrouter()
	r.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-user")
	r.HandleFunc("", handler.HandleGetAll).Methods("GET", "OPTIONS").Name("list-users")
	r.HandleFunc("/username/{username}", handler.HandleGetByUsername).Methods("GET", "OPTIONS").Name("get-user-by-username")
	r.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-user")
	r.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-user")
	r.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-user")
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.create")
	defer span.End()

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new user, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		pkg.WriteJSONMessage(w, "All fields are required", http.StatusBadRequest)
		return
	}

	id, err := handler.service.CreateUser(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		handler.writeError(w, "create user", err)
		return
	}

	handler.metricsManager.CounterUsersCreated.Inc()
	log.Debugf("new user added: %s [%s]", req.Username, id.Hex())

	pkg.WriteJSON(w, map[string]string{
		"message": "User created successfully",
		"_id":     id.Hex(),
	}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		identifier = req.Email
	}

	user, err := handler.service.CheckCredentials(ctx, identifier, req.Password)
	if err != nil {
		handler.writeError(w, "login", err)
		return
	}

	pkg.WriteJSONOK(w, user)
}

func (handler *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get_all")
	defer span.End()

	users, err := handler.service.GetAllUsers(ctx)
	if err != nil {
		handler.writeError(w, "get all users", err)
		return
	}
	pkg.WriteJSONOK(w, users)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	user, err := handler.service.GetUserByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		handler.writeError(w, "get user", err)
		return
	}
	pkg.WriteJSONOK(w, user)
}

func (handler *Handler) HandleGetByUsername(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get_by_username")
	defer span.End()

	user, err := handler.service.GetUserByUsername(ctx, mux.Vars(r)["username"])
	if err != nil {
		handler.writeError(w, "get user by username", err)
		return
	}
	pkg.WriteJSONOK(w, user)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
	defer span.End()

	var update UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update user, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, ErrInvalidUser.Error(), http.StatusBadRequest)
		return
	}

	user, err := handler.service.UpdateUser(ctx, mux.Vars(r)["id"], update)
	if err != nil {
		handler.writeError(w, "update user", err)
		return
	}
	pkg.WriteJSONOK(w, user)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	if err := handler.service.DeleteUser(ctx, mux.Vars(r)["id"]); err != nil {
		handler.writeError(w, "delete user", err)
		return
	}
	pkg.WriteJSONMessage(w, "User deleted successfully", http.StatusOK)
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidField),
		errors.Is(err, validation.ErrInvalidIdentifier),
		errors.Is(err, ErrInvalidUser):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicateUsername):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidCredentials):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusUnauthorized)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
	}
}
