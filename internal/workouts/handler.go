package workouts

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.PathPrefix("/workouts").Subrouter()
	r.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("", handler.HandleGetAll).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/creator/{creatorID}", handler.HandleGetByCreator).Methods("GET", "OPTIONS").Name("list-workouts-by-creator")
	r.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

// exercises stays untyped here: entry presence and type checks happen in SanitizeEntries
type createWorkoutRequest struct {
	Name      string `json:"name"`
	Creator   string `json:"creator"`
	Exercises any    `json:"exercises"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req createWorkoutRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Create(ctx, req.Name, req.Creator, req.Exercises)
	if err != nil {
		handler.writeError(w, "create workout", err)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()
	log.Debugf("new workout added: %s [%s]", workout.Name, workout.ID.Hex())
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get_all")
	defer span.End()

	workouts, err := handler.service.GetAll(ctx)
	if err != nil {
		handler.writeError(w, "get all workouts", err)
		return
	}
	pkg.WriteJSONOK(w, workouts)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	workout, err := handler.service.GetByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		handler.writeError(w, "get workout", err)
		return
	}
	pkg.WriteJSONOK(w, workout)
}

func (handler *Handler) HandleGetByCreator(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get_by_creator")
	defer span.End()

	workouts, err := handler.service.GetByCreator(ctx, mux.Vars(r)["creatorID"])
	if err != nil {
		handler.writeError(w, "get workouts by creator", err)
		return
	}
	pkg.WriteJSONOK(w, workouts)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	if err := handler.service.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		handler.writeError(w, "delete workout", err)
		return
	}
	pkg.WriteJSONMessage(w, "Workout deleted successfully", http.StatusOK)
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidField),
		errors.Is(err, validation.ErrInvalidIdentifier),
		errors.Is(err, ErrInvalidExerciseEntry):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrCreatorNotFound):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
	}
}
