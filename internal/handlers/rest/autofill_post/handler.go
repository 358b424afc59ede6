package autofill_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelops/internal/service/journey"
	"fuelops/internal/service/ledger"
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
	var request AutoFillRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeAutoFill(r.Context(), request.TruckNo, request.Station)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingRequiredFields),
			errors.Is(err, journey.ErrInvalidTruckNo),
			errors.Is(err, journey.ErrInvalidStation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := AutoFillResponse{
		Direction: DirectionDTO{
			DONo:       result.Direction.DONo,
			Direction:  result.Direction.Direction.String(),
			Checkpoint: result.Direction.Checkpoint.String(),
			Confidence: result.Direction.Confidence.String(),
			Reason:     result.Direction.Reason,
		},
		TotalLiters: TotalLitersDTO{
			Liters:       result.TotalLiters.Liters.InexactFloat64(),
			Matched:      result.TotalLiters.Matched,
			MatchType:    result.TotalLiters.MatchType.String(),
			MatchedRoute: result.TotalLiters.MatchedRoute,
			Suggestions:  result.TotalLiters.Suggestions,
		},
		ExtraFuel: ExtraFuelDTO{
			Liters:      result.ExtraFuel.Liters.InexactFloat64(),
			Matched:     result.ExtraFuel.Matched,
			Batch:       result.ExtraFuel.Batch,
			Suffix:      result.ExtraFuel.Suffix,
			Suggestions: result.ExtraFuel.Suggestions,
		},
		Additional: result.Additional.InexactFloat64(),
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
