package delivery_order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelops/internal/entities"
	"fuelops/internal/service/cascade"
	"fuelops/internal/service/deliveryorder"
	"fuelops/internal/service/ledger"
)

type Handler struct {
	log     handlerLogger
	service CascadeService
}

func New(log handlerLogger, service CascadeService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP accepts a truck-number or destination correction. Each edit
// runs as a change cascade so the order row and its fuel record stay
// consistent.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var updateDTO DeliveryOrderUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if updateDTO.OrderNo == "" || (updateDTO.TruckNo == "" && updateDTO.Destination == "") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if updateDTO.TruckNo != "" {
		err = h.service.ApplyChange(r.Context(), entities.DOChangeEvent{
			OrderNo:    updateDTO.OrderNo,
			Kind:       entities.DOTruckNoChanged,
			NewTruckNo: updateDTO.TruckNo,
		})
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if updateDTO.Destination != "" {
		err = h.service.ApplyChange(r.Context(), entities.DOChangeEvent{
			OrderNo:     updateDTO.OrderNo,
			Kind:        entities.DODestinationChanged,
			Destination: updateDTO.Destination,
		})
		if err != nil {
			writeError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cascade.ErrMissingRequiredFields),
		errors.Is(err, deliveryorder.ErrInvalidTruckNo):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, deliveryorder.ErrOrderNotFound),
		errors.Is(err, ledger.ErrFuelRecordNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, deliveryorder.ErrAlreadyCancelled),
		errors.Is(err, ledger.ErrStaleRecord):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
