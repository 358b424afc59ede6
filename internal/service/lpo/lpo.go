package lpo

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/pkg/logger"
)

// cancelReasonCashMode tags auto-cancellations triggered by a cash-mode
// purchase replacing a planned order at the same checkpoint.
const cancelReasonCashMode = "replaced by cash-mode purchase"

type Service struct {
	repository    Repository
	configService ConfigService
	txManager     TxManager
	log           logger.Logger
}

func NewService(repository Repository, configService ConfigService, txManager TxManager, log logger.Logger) *Service {
	return &Service{
		repository:    repository,
		configService: configService,
		txManager:     txManager,
		log:           log,
	}
}

// Create registers a purchase order. Active entries for the same
// truck+station with the same liter amount are duplicates and rejected;
// a different amount is a top-up and allowed. When the entry carries a
// cancellation point (cash mode), every active entry of the truck whose
// station maps to that checkpoint is cancelled inside the same
// transaction, so no caller ever sees both active at once.
func (s *Service) Create(ctx context.Context, modify entities.LPOEntryModify) (*entities.LPOEntry, error) {
	if modify.Station == nil || modify.TruckNo == nil || modify.Liters == nil {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*modify.Station) == "" {
		return nil, ErrInvalidStation
	}
	if strings.TrimSpace(*modify.TruckNo) == "" {
		return nil, ErrInvalidTruckNo
	}
	if !modify.Liters.IsPositive() {
		return nil, ErrInvalidLiters
	}
	if modify.CancellationPoint != nil && *modify.CancellationPoint != "" &&
		!entities.IsValidCheckpoint(entities.Checkpoint(*modify.CancellationPoint)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCheckpoint, *modify.CancellationPoint)
	}

	// Driver's-account liters never touch the truck ledger, so the DO
	// column shows the NIL marker instead of an order number.
	if modify.DriversAccount != nil && *modify.DriversAccount {
		modify.DONo = pointer.To(entities.DriversAccountDO)
	}

	var created *entities.LPOEntry

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.ListActiveByTruckAndStation(ctx, *modify.TruckNo, *modify.Station)
		if err != nil {
			return err
		}
		for _, entry := range existing {
			if entry.Liters.Equal(*modify.Liters) {
				return fmt.Errorf("%w: entry %d holds %s liters", ErrDuplicateAllocation, entry.ID, entry.Liters)
			}
		}

		if modify.CancellationPoint != nil && *modify.CancellationPoint != "" {
			if err := s.cancelAtCheckpoint(ctx, *modify.TruckNo, entities.Checkpoint(*modify.CancellationPoint)); err != nil {
				return err
			}
		}

		created, err = s.repository.Create(ctx, modify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("lpo.Create: %w", err)
	}

	s.log.Info("purchase order created",
		logger.NewField("lpo_id", created.ID),
		logger.NewField("truck_no", created.TruckNo),
		logger.NewField("station", created.Station),
	)

	return created, nil
}

// cancelAtCheckpoint cancels every active entry of the truck whose
// station maps onto the given checkpoint.
func (s *Service) cancelAtCheckpoint(ctx context.Context, truckNo string, checkpoint entities.Checkpoint) error {
	snap, err := s.configService.Snapshot(ctx)
	if err != nil {
		return err
	}

	active, err := s.repository.ListActiveByTruck(ctx, truckNo)
	if err != nil {
		return err
	}

	for _, entry := range active {
		mapping, ok := snap.ResolveStationCheckpoint(entry.Station)
		if !ok || mapping.Checkpoint != checkpoint {
			continue
		}
		if _, err := s.repository.Cancel(ctx, entry.ID, cancelReasonCashMode); err != nil {
			return err
		}
		s.log.Info("purchase order auto-cancelled",
			logger.NewField("lpo_id", entry.ID),
			logger.NewField("checkpoint", checkpoint.String()),
		)
	}

	return nil
}

// Forward copies the active entries of a source station onto a target
// station at the given default liters and rate. The source entries keep
// their consumption state: forwarding adds, it never cancels.
func (s *Service) Forward(ctx context.Context, sourceStation, targetStation string, liters, rate decimal.Decimal) ([]entities.LPOEntry, error) {
	if strings.TrimSpace(sourceStation) == "" || strings.TrimSpace(targetStation) == "" {
		return nil, ErrInvalidStation
	}
	if !liters.IsPositive() {
		return nil, ErrInvalidLiters
	}

	var forwarded []entities.LPOEntry

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		source, err := s.repository.ListActiveByStation(ctx, sourceStation)
		if err != nil {
			return err
		}

		for _, entry := range source {
			created, err := s.repository.Create(ctx, entities.LPOEntryModify{
				Station:        pointer.To(targetStation),
				TruckNo:        pointer.To(entry.TruckNo),
				Liters:         pointer.To(liters),
				Rate:           pointer.To(rate),
				DONo:           pointer.To(entry.DONo),
				DriversAccount: pointer.To(entry.DriversAccount),
			})
			if err != nil {
				return err
			}
			forwarded = append(forwarded, *created)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lpo.Forward: %w", err)
	}

	s.log.Info("purchase orders forwarded",
		logger.NewField("source", sourceStation),
		logger.NewField("target", targetStation),
		logger.NewField("count", len(forwarded)),
	)

	return forwarded, nil
}

// Cancel marks one entry cancelled with the given reason.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*entities.LPOEntry, error) {
	entry, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lpo.Cancel: %w", err)
	}
	if entry.Cancelled {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyCancelled, id)
	}

	cancelled, err := s.repository.Cancel(ctx, id, reason)
	if err != nil {
		return nil, fmt.Errorf("lpo.Cancel: %w", err)
	}
	return cancelled, nil
}

// ListActiveByTruck returns the truck's not-yet-cancelled entries.
func (s *Service) ListActiveByTruck(ctx context.Context, truckNo string) ([]entities.LPOEntry, error) {
	if strings.TrimSpace(truckNo) == "" {
		return nil, ErrInvalidTruckNo
	}
	entries, err := s.repository.ListActiveByTruck(ctx, truckNo)
	if err != nil {
		return nil, fmt.Errorf("lpo.ListActiveByTruck: %w", err)
	}
	return entries, nil
}
