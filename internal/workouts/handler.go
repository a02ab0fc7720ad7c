package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adithyatb/fittrack/internal/auth"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
	"github.com/adithyatb/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Submit(ctx context.Context, userID int, sub fitness.WorkoutSubmission) (*SubmitResult, error)
	Update(ctx context.Context, userID, id int, sub fitness.WorkoutSubmission) (*fitness.Workout, error)
	Delete(ctx context.Context, userID, id int) error
	Get(ctx context.Context, userID, id int) (*fitness.Workout, error)
	List(ctx context.Context, userID int) ([]fitness.Workout, error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	workoutsRouter := r.PathPrefix("/api/workouts").Subrouter()
	workoutsRouter.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	workoutsRouter.HandleFunc("", h.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-workout")
	workoutsRouter.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	workoutsRouter.HandleFunc("/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	workoutsRouter.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.submit")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	sub, ok := decodeSubmission(w, r)
	if !ok {
		return
	}

	result, err := h.service.Submit(ctx, userID, sub)
	if err != nil {
		if errors.Is(err, fitness.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("submit workout for user %d: %s", userID, err)
		http.Error(w, "failed to log workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	workouts, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutID(w, r)
	if !ok {
		return
	}

	workout, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeWorkoutError(w, userID, id, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutID(w, r)
	if !ok {
		return
	}

	sub, ok := decodeSubmission(w, r)
	if !ok {
		return
	}

	workout, err := h.service.Update(ctx, userID, id, sub)
	if err != nil {
		writeWorkoutError(w, userID, id, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeWorkoutError(w, userID, id, err)
		return
	}

	log.Debugf("workout %d deleted by user %d", id, userID)
	pkg.WriteJSON(w, map[string]string{"message": "workout deleted"}, http.StatusOK)
}

func decodeSubmission(w http.ResponseWriter, r *http.Request) (fitness.WorkoutSubmission, bool) {
	var sub fitness.WorkoutSubmission
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return sub, false
	}
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Tracef("workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout", http.StatusBadRequest)
		return sub, false
	}
	return sub, true
}

func workoutID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeWorkoutError(w http.ResponseWriter, userID, id int, err error) {
	switch {
	case errors.Is(err, fitness.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	default:
		log.Errorf("workout %d of user %d: %s", id, userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
