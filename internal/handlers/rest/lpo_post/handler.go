package lpo_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/internal/service/lpo"
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
	var createDTO LPOCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	liters := decimal.NewFromFloat(createDTO.Liters)
	rate := decimal.NewFromFloat(createDTO.Rate)
	entryModify := entities.LPOEntryModify{
		Station:           &createDTO.Station,
		TruckNo:           &createDTO.TruckNo,
		Liters:            &liters,
		Rate:              &rate,
		DONo:              &createDTO.DONo,
		CancellationPoint: &createDTO.CancellationPoint,
		DriversAccount:    &createDTO.DriversAccount,
	}

	entry, err := h.service.Create(r.Context(), entryModify)
	if err != nil {
		switch {
		case errors.Is(err, lpo.ErrMissingRequiredFields),
			errors.Is(err, lpo.ErrInvalidStation),
			errors.Is(err, lpo.ErrInvalidTruckNo),
			errors.Is(err, lpo.ErrInvalidLiters),
			errors.Is(err, lpo.ErrInvalidCheckpoint):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lpo.ErrDuplicateAllocation):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := LPOResponse{
		ID:                entry.ID,
		Station:           entry.Station,
		TruckNo:           entry.TruckNo,
		Liters:            entry.Liters.InexactFloat64(),
		Rate:              entry.Rate.InexactFloat64(),
		DONo:              entry.DONo,
		CancellationPoint: entry.CancellationPoint,
		DriversAccount:    entry.DriversAccount,
		Cancelled:         entry.Cancelled,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
