package delivery_order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelops/internal/entities"
	"fuelops/internal/service/deliveryorder"
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
	var orderDTO DeliveryOrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderType := entities.OrderType(orderDTO.OrderType)
	direction := entities.OrderDirection(orderDTO.Direction)
	orderModify := entities.DeliveryOrderModify{
		OrderNo:      &orderDTO.OrderNo,
		OrderType:    &orderType,
		TruckNo:      &orderDTO.TruckNo,
		Direction:    &direction,
		LoadingPoint: &orderDTO.LoadingPoint,
		Destination:  &orderDTO.Destination,
		OrderDate:    orderDTO.OrderDate,
	}

	order, err := h.service.Create(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, deliveryorder.ErrMissingRequiredFields),
			errors.Is(err, deliveryorder.ErrInvalidOrderNo),
			errors.Is(err, deliveryorder.ErrInvalidOrderType),
			errors.Is(err, deliveryorder.ErrInvalidTruckNo),
			errors.Is(err, deliveryorder.ErrInvalidDirection):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryorder.ErrConflict),
			errors.Is(err, deliveryorder.ErrActiveOrderExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DeliveryOrderResponse{
		ID:           order.ID,
		OrderNo:      order.OrderNo,
		OrderType:    order.OrderType.String(),
		TruckNo:      order.TruckNo,
		Direction:    order.Direction.String(),
		LoadingPoint: order.LoadingPoint,
		Destination:  order.Destination,
		OrderDate:    order.OrderDate,
		Cancelled:    order.Cancelled,
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
