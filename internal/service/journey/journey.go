package journey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fuelops/internal/entities"
	"fuelops/internal/service/ledger"
	"fuelops/pkg/similarity"
)

// activeWindow bounds how far back active delivery orders and fuel
// records are considered, so stale journeys are never resurrected.
const activeWindow = 120 * 24 * time.Hour

// Resolution reasons surfaced to the caller alongside the confidence.
const (
	ReasonAlreadyFueledGoing = "already fueled going here"
	ReasonStationPrecedes    = "station precedes checkpoint"
	ReasonFirstFill          = "first fill at checkpoint"
	ReasonExclusiveStation   = "station serves one leg only"
	ReasonSingleActiveOrder  = "only one leg has an active order"
	ReasonUnknownStation     = "station not mapped to a checkpoint"
)

// belowBorderStations are known to sit physically upstream of the
// shared border checkpoint on the going leg. A fill at one of these
// is a going fill even when the border field already carries a debit.
// New stations must be added here by hand; the list is not derived
// from route topology.
var belowBorderStations = []string{
	"KITWE",
	"CHINGOLA",
	"SOLWEZI",
}

type Service struct {
	orderRepository  DeliveryOrderRepository
	recordRepository FuelRecordRepository
	configService    ConfigService
}

func New(
	orderRepository DeliveryOrderRepository,
	recordRepository FuelRecordRepository,
	configService ConfigService,
) *Service {
	return &Service{
		orderRepository:  orderRepository,
		recordRepository: recordRepository,
		configService:    configService,
	}
}

// ResolveDirection decides whether a fill at station belongs to the
// truck's going or returning leg. A nil result with a nil error means
// unresolvable: the caller falls back to manual entry. The resolution
// is a pure function of the active-order and fuel-record snapshot, so
// repeated calls against unchanged data return identical results.
func (s *Service) ResolveDirection(ctx context.Context, truckNo, station string) (*entities.DirectionResult, error) {
	if strings.TrimSpace(truckNo) == "" {
		return nil, ErrInvalidTruckNo
	}
	if strings.TrimSpace(station) == "" {
		return nil, ErrInvalidStation
	}

	since := time.Now().UTC().Add(-activeWindow)

	orders, err := s.orderRepository.GetActiveByTruck(ctx, truckNo, since)
	if err != nil {
		return nil, fmt.Errorf("get active delivery orders: %w", err)
	}

	var goingDOs, returningDOs []entities.DeliveryOrder
	for _, o := range orders {
		switch o.Direction {
		case entities.DirectionGoing:
			goingDOs = append(goingDOs, o)
		case entities.DirectionReturning:
			returningDOs = append(returningDOs, o)
		}
	}

	if len(goingDOs) == 0 && len(returningDOs) == 0 {
		return nil, nil
	}

	snap, err := s.configService.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("configuration snapshot: %w", err)
	}

	mapping, ok := snap.ResolveStationCheckpoint(station)
	if !ok {
		// Unmapped station: default to the going order when one exists.
		if len(goingDOs) == 0 {
			return nil, nil
		}
		return result(goingDOs[0], "", entities.ConfidenceLow, ReasonUnknownStation), nil
	}

	switch mapping.Direction {
	case entities.CheckpointGoing:
		if len(goingDOs) == 0 {
			return nil, nil
		}
		return result(goingDOs[0], mapping.Checkpoint, entities.ConfidenceHigh, ReasonExclusiveStation), nil

	case entities.CheckpointReturning:
		if len(returningDOs) == 0 {
			return nil, nil
		}
		return result(returningDOs[0], mapping.Checkpoint, entities.ConfidenceHigh, ReasonExclusiveStation), nil

	case entities.CheckpointBoth:
		return s.resolveBidirectional(ctx, station, mapping.Checkpoint, goingDOs, returningDOs)

	default:
		return nil, nil
	}
}

// resolveBidirectional disambiguates a shared checkpoint. A station
// known to sit below the checkpoint is outbound no matter what. For
// the rest, the prior going debit at this field is the evidence: a
// truck cannot fuel going at the same checkpoint twice, so a second
// fill there must be the return leg.
func (s *Service) resolveBidirectional(
	ctx context.Context,
	station string,
	checkpoint entities.Checkpoint,
	goingDOs, returningDOs []entities.DeliveryOrder,
) (*entities.DirectionResult, error) {
	if len(goingDOs) > 0 && len(returningDOs) > 0 {
		// Below-border stations are outbound no matter what the
		// checkpoint field already holds, so they short-circuit the
		// debit evidence.
		if isBelowBorderStation(station) {
			return result(goingDOs[0], checkpoint, entities.ConfidenceHigh, ReasonStationPrecedes), nil
		}

		record, err := s.recordRepository.GetByGoingDO(ctx, goingDOs[0].OrderNo)
		if err != nil && !errors.Is(err, ledger.ErrFuelRecordNotFound) {
			return nil, fmt.Errorf("get fuel record: %w", err)
		}

		if record != nil && !record.Checkpoints[checkpoint].IsZero() {
			return result(returningDOs[0], checkpoint, entities.ConfidenceHigh, ReasonAlreadyFueledGoing), nil
		}

		return result(goingDOs[0], checkpoint, entities.ConfidenceHigh, ReasonFirstFill), nil
	}

	if len(goingDOs) > 0 {
		return result(goingDOs[0], checkpoint, entities.ConfidenceMedium, ReasonSingleActiveOrder), nil
	}
	return result(returningDOs[0], checkpoint, entities.ConfidenceMedium, ReasonSingleActiveOrder), nil
}

func isBelowBorderStation(station string) bool {
	for _, below := range belowBorderStations {
		if similarity.FuzzyMatch(station, below, similarity.DefaultThreshold) {
			return true
		}
	}
	return false
}

func result(
	do entities.DeliveryOrder,
	checkpoint entities.Checkpoint,
	confidence entities.Confidence,
	reason string,
) *entities.DirectionResult {
	return &entities.DirectionResult{
		DONo:       do.OrderNo,
		Direction:  do.Direction,
		Checkpoint: checkpoint,
		Confidence: confidence,
		Reason:     reason,
	}
}
