package fuel_record_get

import (
	"encoding/json"
	"errors"
	"net/http"

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
	goingDO := r.URL.Query().Get("going_do")

	record, err := h.service.GetRecordByGoingDO(r.Context(), goingDO)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ledger.ErrFuelRecordNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	checkpoints := make(map[string]float64, len(record.Checkpoints))
	for cp, liters := range record.Checkpoints {
		checkpoints[cp.String()] = liters.InexactFloat64()
	}

	response := FuelRecordResponse{
		ID:               record.ID,
		TruckNo:          record.TruckNo,
		GoingDO:          record.GoingDO,
		ReturnDO:         record.ReturnDO,
		Checkpoints:      checkpoints,
		TotalLiters:      record.TotalLiters.InexactFloat64(),
		Extra:            record.Extra.InexactFloat64(),
		ReturnAdditional: record.ReturnAdditional.InexactFloat64(),
		Balance:          record.Balance.InexactFloat64(),
		State:            record.State.String(),
		Locked:           record.Locked,
		LockReason:       record.LockReason.String(),
		Version:          record.Version,
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
