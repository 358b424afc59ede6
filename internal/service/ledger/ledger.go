package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/internal/service/fuelconfig"
)

// activeWindow bounds lookups of open journeys, matching the direction
// resolver's window.
const activeWindow = 120 * 24 * time.Hour

type Service struct {
	repository      Repository
	orderRepository DeliveryOrderRepository
	resolver        DirectionResolver
	configService   ConfigService
	txManager       TxManager
}

func New(
	repository Repository,
	orderRepository DeliveryOrderRepository,
	resolver DirectionResolver,
	configService ConfigService,
	txManager TxManager,
) *Service {
	return &Service{
		repository:      repository,
		orderRepository: orderRepository,
		resolver:        resolver,
		configService:   configService,
		txManager:       txManager,
	}
}

// ComputeAutoFill combines direction resolution with the numeric
// configuration for the resolved leg. Nil result means unresolvable
// and the dispatcher enters the fill by hand. Read-only and idempotent
// against an unchanged snapshot.
func (s *Service) ComputeAutoFill(ctx context.Context, truckNo, station string) (*entities.AutoFillResult, error) {
	direction, err := s.resolver.ResolveDirection(ctx, truckNo, station)
	if err != nil {
		return nil, fmt.Errorf("resolve direction: %w", err)
	}
	if direction == nil {
		return nil, nil
	}

	snap, err := s.configService.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("configuration snapshot: %w", err)
	}

	do, err := s.orderRepository.GetByOrderNo(ctx, direction.DONo)
	if err != nil {
		return nil, fmt.Errorf("get delivery order %s: %w", direction.DONo, err)
	}

	extra := snap.ResolveTruckExtraFuel(truckNo)

	if direction.Direction == entities.DirectionGoing {
		return &entities.AutoFillResult{
			Direction:   *direction,
			TotalLiters: snap.ResolveRouteLiters(do.Destination),
			ExtraFuel:   extra,
			Additional:  decimal.Zero,
		}, nil
	}

	goingTotal := decimal.Zero
	record, err := s.repository.GetOpenByTruck(ctx, truckNo, time.Now().UTC().Add(-activeWindow))
	if err != nil && !errors.Is(err, ErrFuelRecordNotFound) {
		return nil, fmt.Errorf("get open fuel record: %w", err)
	}
	if record != nil {
		// Subtracting the folded top-up keeps recomputation idempotent
		// after the returning order was attached.
		goingTotal = record.TotalLiters.Sub(record.ReturnAdditional)
	}

	additional, returnTotal := additionalFuel(snap, goingTotal, do)

	return &entities.AutoFillResult{
		Direction:   *direction,
		TotalLiters: returnTotal,
		ExtraFuel:   extra,
		Additional:  additional,
	}, nil
}

// RecordFill is the main engine entry for a station fill: resolve the
// leg, open or close the journey's fuel record as needed and debit the
// checkpoint, all in one transaction. A nil record with nil error means
// the fill was unresolvable and must be entered manually.
func (s *Service) RecordFill(ctx context.Context, truckNo, station string, liters decimal.Decimal) (*entities.FuelRecord, *entities.DirectionResult, error) {
	if strings.TrimSpace(truckNo) == "" || strings.TrimSpace(station) == "" {
		return nil, nil, ErrMissingRequiredFields
	}
	if !liters.IsPositive() {
		return nil, nil, ErrInvalidLiters
	}

	var (
		updated   *entities.FuelRecord
		direction *entities.DirectionResult
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		resolved, err := s.resolver.ResolveDirection(ctx, truckNo, station)
		if err != nil {
			return fmt.Errorf("resolve direction: %w", err)
		}
		if resolved == nil || resolved.Checkpoint == "" {
			// Unknown station or no active orders: manual entry.
			return nil
		}
		direction = resolved

		record, err := s.recordForFill(ctx, truckNo, resolved)
		if err != nil {
			return err
		}

		updated, err = s.applyDebit(ctx, record, resolved.Checkpoint, liters)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return updated, direction, nil
}

func (s *Service) recordForFill(ctx context.Context, truckNo string, direction *entities.DirectionResult) (*entities.FuelRecord, error) {
	if direction.Direction == entities.DirectionGoing {
		record, err := s.repository.GetByGoingDO(ctx, direction.DONo)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, ErrFuelRecordNotFound) {
			return nil, fmt.Errorf("get fuel record: %w", err)
		}

		do, err := s.orderRepository.GetByOrderNo(ctx, direction.DONo)
		if err != nil {
			return nil, fmt.Errorf("get delivery order %s: %w", direction.DONo, err)
		}
		return s.OpenRecord(ctx, truckNo, direction.DONo, do.Destination)
	}

	record, err := s.repository.GetOpenByTruck(ctx, truckNo, time.Now().UTC().Add(-activeWindow))
	if err != nil {
		if errors.Is(err, ErrFuelRecordNotFound) {
			return nil, ErrNoOpenRecord
		}
		return nil, fmt.Errorf("get open fuel record: %w", err)
	}

	if record.ReturnDO == direction.DONo {
		return record, nil
	}
	if record.ReturnDO != "" {
		return nil, ErrReturnAlreadyAttached
	}

	return s.attach(ctx, record, direction.DONo)
}

// OpenRecord starts the fuel ledger for a truck's new journey, with the
// route allocation and extra-fuel allowance resolved from the current
// configuration snapshot.
func (s *Service) OpenRecord(ctx context.Context, truckNo, goingDO, destination string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(truckNo) == "" || strings.TrimSpace(goingDO) == "" {
		return nil, ErrMissingRequiredFields
	}

	snap, err := s.configService.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("configuration snapshot: %w", err)
	}

	total := snap.ResolveRouteLiters(destination)
	extra := snap.ResolveTruckExtraFuel(truckNo)
	balance := total.Liters.Add(extra.Liters)

	state := entities.RecordOpen
	record, err := s.repository.Create(ctx, entities.FuelRecordModify{
		TruckNo:     &truckNo,
		GoingDO:     &goingDO,
		TotalLiters: &total.Liters,
		Extra:       &extra.Liters,
		Balance:     &balance,
		State:       &state,
	})
	if err != nil {
		return nil, fmt.Errorf("create fuel record: %w", err)
	}
	return record, nil
}

// ApplyCheckpointDebit debits liters at the named checkpoint of an
// existing record and recomputes the balance under the version check.
func (s *Service) ApplyCheckpointDebit(ctx context.Context, recordID int64, checkpoint entities.Checkpoint, liters decimal.Decimal) (*entities.FuelRecord, error) {
	if !entities.IsValidCheckpoint(checkpoint) {
		return nil, ErrInvalidCheckpoint
	}
	if !liters.IsPositive() {
		return nil, ErrInvalidLiters
	}

	var updated *entities.FuelRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.repository.GetByID(ctx, recordID)
		if err != nil {
			return fmt.Errorf("get fuel record: %w", err)
		}

		updated, err = s.applyDebit(ctx, record, checkpoint, liters)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) applyDebit(ctx context.Context, record *entities.FuelRecord, checkpoint entities.Checkpoint, liters decimal.Decimal) (*entities.FuelRecord, error) {
	if record.State == entities.RecordCancelled {
		return nil, ErrRecordCancelled
	}

	// A record whose stored balance no longer matches its fields must
	// be reconciled before it takes further debits.
	if !record.Balance.Equal(record.ComputedBalance()) {
		return nil, ErrBalanceInconsistent
	}

	newValue := record.Checkpoints[checkpoint].Sub(liters)
	balance := record.TotalLiters.
		Add(record.Extra).
		Add(record.CheckpointSum()).
		Sub(record.Checkpoints[checkpoint]).
		Add(newValue)

	locked, reason := lockFor(record.TotalLiters, record.Extra, balance)

	modify := entities.FuelRecordModify{
		ID: &record.ID,
		Checkpoints: map[entities.Checkpoint]*decimal.Decimal{
			checkpoint: &newValue,
		},
		Balance: &balance,
		Locked:  &locked,
	}
	if locked {
		modify.LockReason = &reason
	}

	updated, err := s.repository.UpdateVersioned(ctx, modify, record.Version)
	if err != nil {
		return nil, fmt.Errorf("update fuel record: %w", err)
	}
	return updated, nil
}

// AttachReturnOrder closes the truck's open journey with the returning
// order and folds the return-leg top-up into the allocation. Attaching
// the same order twice is a no-op.
func (s *Service) AttachReturnOrder(ctx context.Context, truckNo, returnDO string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(truckNo) == "" || strings.TrimSpace(returnDO) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.FuelRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.repository.GetOpenByTruck(ctx, truckNo, time.Now().UTC().Add(-activeWindow))
		if err != nil {
			if errors.Is(err, ErrFuelRecordNotFound) {
				return ErrNoOpenRecord
			}
			return fmt.Errorf("get open fuel record: %w", err)
		}

		if record.ReturnDO == returnDO {
			updated = record
			return nil
		}
		if record.ReturnDO != "" {
			return ErrReturnAlreadyAttached
		}

		updated, err = s.attach(ctx, record, returnDO)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) attach(ctx context.Context, record *entities.FuelRecord, returnDO string) (*entities.FuelRecord, error) {
	do, err := s.orderRepository.GetByOrderNo(ctx, returnDO)
	if err != nil {
		return nil, fmt.Errorf("get delivery order %s: %w", returnDO, err)
	}
	if do.Direction != entities.DirectionReturning {
		return nil, ErrNotReturningOrder
	}

	snap, err := s.configService.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("configuration snapshot: %w", err)
	}

	goingTotal := record.TotalLiters.Sub(record.ReturnAdditional)
	additional, _ := additionalFuel(snap, goingTotal, do)

	total := goingTotal.Add(additional)
	balance := total.Add(record.Extra).Add(record.CheckpointSum())
	state := entities.RecordClosed

	updated, err := s.repository.UpdateVersioned(ctx, entities.FuelRecordModify{
		ID:               &record.ID,
		ReturnDO:         &returnDO,
		TotalLiters:      &total,
		ReturnAdditional: &additional,
		Balance:          &balance,
		State:            &state,
	}, record.Version)
	if err != nil {
		return nil, fmt.Errorf("attach returning order: %w", err)
	}
	return updated, nil
}

// DetachReturnOrder reverts a record to its outbound state when the
// returning order is cancelled, removing exactly the top-up that the
// attachment added.
func (s *Service) DetachReturnOrder(ctx context.Context, returnDO string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(returnDO) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.FuelRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.repository.GetByReturnDO(ctx, returnDO)
		if err != nil {
			return fmt.Errorf("get fuel record by returning order: %w", err)
		}

		total := record.TotalLiters.Sub(record.ReturnAdditional)
		balance := total.Add(record.Extra).Add(record.CheckpointSum())
		state := entities.RecordOpen

		updated, err = s.repository.UpdateVersioned(ctx, entities.FuelRecordModify{
			ID:               &record.ID,
			ReturnDO:         pointer.To(""),
			TotalLiters:      &total,
			ReturnAdditional: pointer.To(decimal.Zero),
			Balance:          &balance,
			State:            &state,
		}, record.Version)
		if err != nil {
			return fmt.Errorf("detach returning order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RepointTruckNo re-points a journey's record after a truck-number
// correction on its going order. ErrFuelRecordNotFound tells the caller
// to create a fresh link instead of silently dropping history.
func (s *Service) RepointTruckNo(ctx context.Context, goingDO, newTruckNo string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(goingDO) == "" || strings.TrimSpace(newTruckNo) == "" {
		return nil, ErrMissingRequiredFields
	}

	record, err := s.repository.GetByGoingDO(ctx, goingDO)
	if err != nil {
		return nil, fmt.Errorf("get fuel record: %w", err)
	}

	updated, err := s.repository.UpdateVersioned(ctx, entities.FuelRecordModify{
		ID:      &record.ID,
		TruckNo: &newTruckNo,
	}, record.Version)
	if err != nil {
		return nil, fmt.Errorf("repoint fuel record: %w", err)
	}
	return updated, nil
}

// RebalanceForDestination re-resolves the route allocation after a
// destination change on the going order.
func (s *Service) RebalanceForDestination(ctx context.Context, goingDO, destination string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(goingDO) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.FuelRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.repository.GetByGoingDO(ctx, goingDO)
		if err != nil {
			return fmt.Errorf("get fuel record: %w", err)
		}

		snap, err := s.configService.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("configuration snapshot: %w", err)
		}

		resolved := snap.ResolveRouteLiters(destination)
		total := resolved.Liters.Add(record.ReturnAdditional)
		balance := total.Add(record.Extra).Add(record.CheckpointSum())
		locked, reason := lockFor(total, record.Extra, balance)

		modify := entities.FuelRecordModify{
			ID:          &record.ID,
			TotalLiters: &total,
			Balance:     &balance,
			Locked:      &locked,
		}
		if locked {
			modify.LockReason = &reason
		}

		updated, err = s.repository.UpdateVersioned(ctx, modify, record.Version)
		if err != nil {
			return fmt.Errorf("rebalance fuel record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelByGoingDO archives the journey's record when its going order is
// cancelled. Records are never deleted.
func (s *Service) CancelByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error) {
	if strings.TrimSpace(goingDO) == "" {
		return nil, ErrMissingRequiredFields
	}

	record, err := s.repository.GetByGoingDO(ctx, goingDO)
	if err != nil {
		return nil, fmt.Errorf("get fuel record: %w", err)
	}

	state := entities.RecordCancelled
	updated, err := s.repository.UpdateVersioned(ctx, entities.FuelRecordModify{
		ID:    &record.ID,
		State: &state,
	}, record.Version)
	if err != nil {
		return nil, fmt.Errorf("cancel fuel record: %w", err)
	}
	return updated, nil
}

// Unlock clears the locked flag after an administrator supplied the
// missing configuration, recomputing the balance from fresh values.
func (s *Service) Unlock(ctx context.Context, recordID int64) (*entities.FuelRecord, error) {
	var updated *entities.FuelRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.repository.GetByID(ctx, recordID)
		if err != nil {
			return fmt.Errorf("get fuel record: %w", err)
		}

		snap, err := s.configService.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("configuration snapshot: %w", err)
		}

		do, err := s.orderRepository.GetByOrderNo(ctx, record.GoingDO)
		if err != nil {
			return fmt.Errorf("get delivery order %s: %w", record.GoingDO, err)
		}

		total := snap.ResolveRouteLiters(do.Destination).Liters.Add(record.ReturnAdditional)
		extra := snap.ResolveTruckExtraFuel(record.TruckNo).Liters
		balance := total.Add(extra).Add(record.CheckpointSum())
		locked, reason := lockFor(total, extra, balance)

		modify := entities.FuelRecordModify{
			ID:          &record.ID,
			TotalLiters: &total,
			Extra:       &extra,
			Balance:     &balance,
			Locked:      &locked,
		}
		if locked {
			modify.LockReason = &reason
		}

		updated, err = s.repository.UpdateVersioned(ctx, modify, record.Version)
		if err != nil {
			return fmt.Errorf("unlock fuel record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetRecordByGoingDO reads the ledger linked to a going order.
func (s *Service) GetRecordByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error) {
	if goingDO == "" {
		return nil, ErrMissingRequiredFields
	}
	record, err := s.repository.GetByGoingDO(ctx, goingDO)
	if err != nil {
		return nil, fmt.Errorf("get fuel record by going order: %w", err)
	}
	return record, nil
}

// ReconcileLedgers counts active records whose stored balance disagrees
// with their checkpoint fields. Run periodically by the background
// audit task; such records refuse further debits until reconciled.
func (s *Service) ReconcileLedgers(ctx context.Context) (int64, error) {
	records, err := s.repository.ListActive(ctx, time.Now().UTC().Add(-activeWindow))
	if err != nil {
		return 0, fmt.Errorf("list active fuel records: %w", err)
	}

	var inconsistent int64
	for i := range records {
		if !records[i].Balance.Equal(records[i].ComputedBalance()) {
			inconsistent++
		}
	}
	return inconsistent, nil
}

// additionalFuel computes the return-leg top-up: the shortfall between
// the return allocation (loading point looked up as a destination) and
// the going allocation, never negative, plus any special-location
// surcharges for the return loading point and destination.
func additionalFuel(snap *fuelconfig.Snapshot, goingTotal decimal.Decimal, returnOrder *entities.DeliveryOrder) (decimal.Decimal, entities.RouteLitersResult) {
	returnTotal := snap.ResolveRouteLiters(returnOrder.LoadingPoint)

	delta := returnTotal.Liters.Sub(goingTotal)
	if delta.IsNegative() {
		delta = decimal.Zero
	}

	additional := delta.
		Add(snap.ResolveLoadingPointSurcharge(returnOrder.LoadingPoint)).
		Add(snap.ResolveDestinationSurcharge(returnOrder.Destination))

	return additional, returnTotal
}

// lockFor decides whether a balance may stand. A negative balance locks
// the record instead of silently going negative; the reason names the
// configuration value the administrator must supply.
func lockFor(total, extra, balance decimal.Decimal) (bool, entities.LockReason) {
	if !balance.IsNegative() {
		return false, ""
	}

	switch {
	case total.IsZero() && extra.IsZero():
		return true, entities.LockMissingBoth
	case total.IsZero():
		return true, entities.LockMissingTotalLiters
	case extra.IsZero():
		return true, entities.LockMissingExtraFuel
	default:
		return true, entities.LockOverdrawn
	}
}
