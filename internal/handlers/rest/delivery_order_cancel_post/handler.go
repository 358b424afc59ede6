package delivery_order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelops/internal/entities"
	"fuelops/internal/service/cascade"
	"fuelops/internal/service/deliveryorder"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cancelDTO DeliveryOrderCancel
	err := json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ApplyChange(r.Context(), entities.DOChangeEvent{
		OrderNo: cancelDTO.OrderNo,
		Kind:    entities.DOCancelled,
		Reason:  cancelDTO.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cascade.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryorder.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, deliveryorder.ErrAlreadyCancelled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
