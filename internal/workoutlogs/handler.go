package workoutlogs

import (
	"encoding/json"
	"errors"
	"fmt"
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
	r := mainRouter.PathPrefix("/workoutLogs").Subrouter()
	r.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout-log")
	r.HandleFunc("", handler.HandleGetAll).Methods("GET", "OPTIONS").Name("list-workout-logs")
	r.HandleFunc("/filter", handler.HandleFilter).Methods("GET", "OPTIONS").Name("filter-workout-logs")
	r.HandleFunc("/user/{id}", handler.HandleGetByUser).Methods("GET", "OPTIONS").Name("list-workout-logs-by-user")
	r.HandleFunc("/workout/{id}", handler.HandleGetByWorkout).Methods("GET", "OPTIONS").Name("list-workout-logs-by-workout")
	r.HandleFunc("/date/{date}", handler.HandleGetByDate).Methods("GET", "OPTIONS").Name("list-workout-logs-by-date")
	r.HandleFunc("/addExercise/{id}", handler.HandleAddExercise).Methods("PUT", "OPTIONS").Name("add-exercise-log")
	r.HandleFunc("/removeExercise/{id}", handler.HandleRemoveExercise).Methods("PUT", "OPTIONS").Name("remove-exercise-log")
	r.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout-log")
	r.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout-log")
	r.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-log")
}

type workoutLogRequest struct {
	UserID       string `json:"userId"`
	WorkoutID    string `json:"workoutId"`
	Date         string `json:"date"`
	ExerciseLogs any    `json:"exerciseLogs"`
	// ExerciseLog is the singular spelling, accepted by add/remove exercise.
	ExerciseLog any `json:"exerciseLog"`
}

func decodeRequest(r *http.Request) (workoutLogRequest, error) {
	var req workoutLogRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		return workoutLogRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.create")
	defer span.End()

	req, err := decodeRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.Create(ctx, req.UserID, req.WorkoutID, req.Date)
	if err != nil {
		writeError(w, "create workout log", err)
		return
	}

	handler.metricsManager.CounterWorkoutLogsCreated.Inc()
	log.Debugf("new workout log added [%s] for user [%s]", workoutLog.ID.Hex(), workoutLog.UserID.Hex())
	pkg.WriteJSON(w, workoutLog, http.StatusCreated)
}

func (handler *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.get_all")
	defer span.End()

	logs, err := handler.service.GetAll(ctx)
	if err != nil {
		writeError(w, "get all workout logs", err)
		return
	}
	pkg.WriteJSONOK(w, logs)
}

// HandleFilter reads userId, workoutId and date from the query. A request without
// query parameters may carry them in a JSON body instead.
func (handler *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.filter")
	defer span.End()

	query := r.URL.Query()
	userID, workoutID, date := query.Get("userId"), query.Get("workoutId"), query.Get("date")
	if len(query) == 0 && r.ContentLength > 0 {
		req, err := decodeRequest(r)
		if err != nil {
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		userID, workoutID, date = req.UserID, req.WorkoutID, req.Date
	}

	logs, err := handler.service.FilterLogs(ctx, userID, workoutID, date)
	if err != nil {
		writeError(w, "filter workout logs", err)
		return
	}
	pkg.WriteJSONOK(w, logs)
}

func (handler *Handler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.get_by_user")
	defer span.End()

	logs, err := handler.service.GetByUser(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout logs by user", err)
		return
	}
	pkg.WriteJSONOK(w, logs)
}

func (handler *Handler) HandleGetByWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.get_by_workout")
	defer span.End()

	logs, err := handler.service.GetByWorkout(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout logs by workout", err)
		return
	}
	pkg.WriteJSONOK(w, logs)
}

func (handler *Handler) HandleGetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.get_by_date")
	defer span.End()

	logs, err := handler.service.GetByDate(ctx, mux.Vars(r)["date"])
	if err != nil {
		writeError(w, "get workout logs by date", err)
		return
	}
	pkg.WriteJSONOK(w, logs)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.get")
	defer span.End()

	workoutLog, err := handler.service.GetByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout log", err)
		return
	}
	pkg.WriteJSONOK(w, workoutLog)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.update")
	defer span.End()

	req, err := decodeRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.UpdateLog(ctx, mux.Vars(r)["id"], req.UserID, req.WorkoutID, req.Date, req.ExerciseLogs)
	if err != nil {
		writeError(w, "update workout log", err)
		return
	}
	pkg.WriteJSONOK(w, workoutLog)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.add_exercise")
	defer span.End()

	req, err := decodeRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.AddExercise(ctx, mux.Vars(r)["id"], req.exerciseLog())
	if err != nil {
		writeError(w, "add exercise log", err)
		return
	}
	pkg.WriteJSONOK(w, workoutLog)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.remove_exercise")
	defer span.End()

	req, err := decodeRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.RemoveExercise(ctx, mux.Vars(r)["id"], req.exerciseLog())
	if err != nil {
		writeError(w, "remove exercise log", err)
		return
	}
	pkg.WriteJSONOK(w, workoutLog)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.delete")
	defer span.End()

	if err := handler.service.DeleteLog(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete workout log", err)
		return
	}
	pkg.WriteJSONMessage(w, "Workout log deleted successfully", http.StatusOK)
}

func (req workoutLogRequest) exerciseLog() any {
	if req.ExerciseLogs != nil {
		return req.ExerciseLogs
	}
	return req.ExerciseLog
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidIdentifier),
		errors.Is(err, validation.ErrInvalidDate),
		errors.Is(err, validation.ErrInvalidField),
		errors.Is(err, ErrInvalidExerciseLog):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutLogNotFound),
		errors.Is(err, ErrExerciseLogNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
