package exercises

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.PathPrefix("/exercises").Subrouter()
	r.HandleFunc("", handler.HandleGetAll).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/name/{name}", handler.HandleGetByName).Methods("GET", "OPTIONS").Name("get-exercise-by-name")
	r.HandleFunc("/body-part/{bodyPart}", handler.HandleGetByBodyPart).Methods("GET", "OPTIONS").Name("list-exercises-by-body-part")
	r.HandleFunc("/equipment/{equipment}", handler.HandleGetByEquipment).Methods("GET", "OPTIONS").Name("list-exercises-by-equipment")
	r.HandleFunc("/target/{target}", handler.HandleGetByTarget).Methods("GET", "OPTIONS").Name("list-exercises-by-target")
	r.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

type createExerciseRequest struct {
	Name      string `json:"name"`
	Target    string `json:"target"`
	BodyPart  string `json:"bodyPart"`
	Equipment string `json:"equipment"`
	GifURL    string `json:"gifUrl"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
	defer span.End()

	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	name, err := handler.service.Create(ctx, req.Name, req.Target, req.BodyPart, req.Equipment, req.GifURL)
	if err != nil {
		handler.writeError(w, "add exercise", err)
		return
	}

	log.Debugf("new exercise added: %s", name)
	pkg.WriteJSON(w, map[string]string{"name": name}, http.StatusCreated)
}

func (handler *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get_all")
	defer span.End()

	exercises, err := handler.service.GetAll(ctx)
	if err != nil {
		handler.writeError(w, "get all exercises", err)
		return
	}
	pkg.WriteJSONOK(w, exercises)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	exercise, err := handler.service.GetByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		handler.writeError(w, "get exercise", err)
		return
	}
	pkg.WriteJSONOK(w, exercise)
}

func (handler *Handler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get_by_name")
	defer span.End()

	exercise, err := handler.service.GetByName(ctx, mux.Vars(r)["name"])
	if err != nil {
		handler.writeError(w, "get exercise by name", err)
		return
	}
	pkg.WriteJSONOK(w, exercise)
}

func (handler *Handler) HandleGetByBodyPart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get_by_body_part")
	defer span.End()

	exercises, err := handler.service.GetByBodyPart(ctx, mux.Vars(r)["bodyPart"])
	if err != nil {
		handler.writeError(w, "get exercises by body part", err)
		return
	}
	pkg.WriteJSONOK(w, exercises)
}

func (handler *Handler) HandleGetByEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get_by_equipment")
	defer span.End()

	exercises, err := handler.service.GetByEquipment(ctx, mux.Vars(r)["equipment"])
	if err != nil {
		handler.writeError(w, "get exercises by equipment", err)
		return
	}
	pkg.WriteJSONOK(w, exercises)
}

func (handler *Handler) HandleGetByTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get_by_target")
	defer span.End()

	exercises, err := handler.service.GetByTarget(ctx, mux.Vars(r)["target"])
	if err != nil {
		handler.writeError(w, "get exercises by target", err)
		return
	}
	pkg.WriteJSONOK(w, exercises)
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidField),
		errors.Is(err, validation.ErrInvalidIdentifier):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
	}
}
