package fuelconfig

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fuelops/internal/entities"
)

// snapshotTTL bounds how stale a cached configuration snapshot can get.
// Configuration changes are infrequent and a stale read only affects
// default amounts, never ledger invariants.
const snapshotTTL = 5 * time.Minute

type Service struct {
	repository Repository

	mu       sync.Mutex
	cached   *Snapshot
	loadedAt time.Time
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Snapshot returns the current configuration snapshot, reloading from
// the repository when the cached copy is older than the TTL.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.loadedAt) < snapshotTTL {
		return s.cached, nil
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = snap
	s.loadedAt = time.Now()
	return snap, nil
}

// Invalidate drops the cached snapshot. Mutation paths call this so the
// next resolution sees fresh configuration.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

func (s *Service) load(ctx context.Context) (*Snapshot, error) {
	batches, err := s.repository.ListTruckBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list truck batches: %w", err)
	}

	routes, err := s.repository.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	surcharges, err := s.repository.ListSurcharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surcharges: %w", err)
	}

	stationMaps, err := s.repository.ListStationCheckpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list station checkpoints: %w", err)
	}

	return &Snapshot{
		Batches:     batches,
		Routes:      routes,
		Surcharges:  surcharges,
		StationMaps: stationMaps,
	}, nil
}

func (s *Service) UpsertRoute(ctx context.Context, modify entities.RouteModify) (*entities.Route, error) {
	if modify.Destination == nil || modify.Liters == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidLocation(*modify.Destination) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Liters.IsNegative() {
		return nil, ErrInvalidLiters
	}

	route, err := s.repository.UpsertRoute(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("upsert route: %w", err)
	}

	s.Invalidate()
	return route, nil
}

func (s *Service) UpsertTruckBatch(ctx context.Context, modify entities.TruckBatchModify) (*entities.TruckBatch, error) {
	if modify.Suffix == nil || modify.Batch == nil || modify.Liters == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidLocation(*modify.Suffix) || !isValidLocation(*modify.Batch) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Liters.IsNegative() {
		return nil, ErrInvalidLiters
	}

	batch, err := s.repository.UpsertTruckBatch(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("upsert truck batch: %w", err)
	}

	s.Invalidate()
	return batch, nil
}

func (s *Service) UpsertSurcharge(ctx context.Context, modify entities.SurchargeModify) (*entities.Surcharge, error) {
	if modify.Location == nil || modify.Liters == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidLocation(*modify.Location) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Liters.IsNegative() {
		return nil, ErrInvalidLiters
	}

	surcharge, err := s.repository.UpsertSurcharge(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("upsert surcharge: %w", err)
	}

	s.Invalidate()
	return surcharge, nil
}

func (s *Service) UpsertStationCheckpoint(ctx context.Context, modify entities.StationCheckpointModify) (*entities.StationCheckpoint, error) {
	if modify.Station == nil || modify.Checkpoint == nil || modify.Direction == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidLocation(*modify.Station) {
		return nil, ErrMissingRequiredFields
	}
	if !entities.IsValidCheckpoint(*modify.Checkpoint) {
		return nil, ErrInvalidCheckpoint
	}
	if !isValidDirection(*modify.Direction) {
		return nil, ErrInvalidDirection
	}

	mapping, err := s.repository.UpsertStationCheckpoint(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("upsert station checkpoint: %w", err)
	}

	s.Invalidate()
	return mapping, nil
}
