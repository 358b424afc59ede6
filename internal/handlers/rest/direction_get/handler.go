package direction_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelops/internal/service/journey"
	"fuelops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	truckNo := r.URL.Query().Get("truck_no")
	station := r.URL.Query().Get("station")

	result, err := h.service.ResolveDirection(r.Context(), truckNo, station)
	if err != nil {
		switch {
		case errors.Is(err, journey.ErrMissingRequiredFields),
			errors.Is(err, journey.ErrInvalidTruckNo),
			errors.Is(err, journey.ErrInvalidStation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Unresolvable is not a fault: the dispatcher falls back to manual
	// entry.
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := DirectionResponse{
		DONo:       result.DONo,
		Direction:  result.Direction.String(),
		Checkpoint: result.Checkpoint.String(),
		Confidence: result.Confidence.String(),
		Reason:     result.Reason,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
