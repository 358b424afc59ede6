package batch_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/internal/service/fuelconfig"
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
	var batchDTO TruckBatchUpsert
	err := json.NewDecoder(r.Body).Decode(&batchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	liters := decimal.NewFromFloat(batchDTO.Liters)
	batch, err := h.service.UpsertTruckBatch(r.Context(), entities.TruckBatchModify{
		Suffix: &batchDTO.Suffix,
		Batch:  &batchDTO.Batch,
		Liters: &liters,
	})
	if err != nil {
		switch {
		case errors.Is(err, fuelconfig.ErrMissingRequiredFields),
			errors.Is(err, fuelconfig.ErrInvalidLiters):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TruckBatchResponse{
		ID:     batch.ID,
		Suffix: batch.Suffix,
		Batch:  batch.Batch,
		Liters: batch.Liters.InexactFloat64(),
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
