package debit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
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
	var request DebitRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, direction, err := h.service.RecordFill(
		r.Context(),
		request.TruckNo,
		request.Station,
		decimal.NewFromFloat(request.Liters),
	)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingRequiredFields),
			errors.Is(err, ledger.ErrInvalidLiters),
			errors.Is(err, journey.ErrInvalidTruckNo),
			errors.Is(err, journey.ErrInvalidStation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ledger.ErrNoOpenRecord),
			errors.Is(err, ledger.ErrFuelRecordNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ledger.ErrRecordCancelled),
			errors.Is(err, ledger.ErrReturnAlreadyAttached),
			errors.Is(err, ledger.ErrBalanceInconsistent),
			errors.Is(err, ledger.ErrStaleRecord):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DebitResponse{
		Manual: record == nil,
	}
	if record != nil {
		response.Record = toRecordDTO(record)
	}
	if direction != nil {
		response.Direction = &DirectionDTO{
			DONo:       direction.DONo,
			Direction:  direction.Direction.String(),
			Checkpoint: direction.Checkpoint.String(),
			Confidence: direction.Confidence.String(),
			Reason:     direction.Reason,
		}
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

func toRecordDTO(record *entities.FuelRecord) *FuelRecordDTO {
	checkpoints := make(map[string]float64, len(record.Checkpoints))
	for cp, liters := range record.Checkpoints {
		checkpoints[cp.String()] = liters.InexactFloat64()
	}

	return &FuelRecordDTO{
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
}
