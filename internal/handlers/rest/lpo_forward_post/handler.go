package lpo_forward_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

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
	var forwardDTO LPOForward
	err := json.NewDecoder(r.Body).Decode(&forwardDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	forwarded, err := h.service.Forward(
		r.Context(),
		forwardDTO.SourceStation,
		forwardDTO.TargetStation,
		decimal.NewFromFloat(forwardDTO.Liters),
		decimal.NewFromFloat(forwardDTO.Rate),
	)
	if err != nil {
		switch {
		case errors.Is(err, lpo.ErrInvalidStation),
			errors.Is(err, lpo.ErrInvalidLiters):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := LPOForwardResponse{
		Forwarded: make([]LPOEntryDTO, 0, len(forwarded)),
	}
	for _, entry := range forwarded {
		response.Forwarded = append(response.Forwarded, LPOEntryDTO{
			ID:      entry.ID,
			Station: entry.Station,
			TruckNo: entry.TruckNo,
			Liters:  entry.Liters.InexactFloat64(),
			Rate:    entry.Rate.InexactFloat64(),
			DONo:    entry.DONo,
		})
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
