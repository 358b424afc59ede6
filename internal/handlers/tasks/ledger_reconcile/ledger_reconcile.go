package ledger_reconcile

import (
	"context"
	"time"

	"fuelops/pkg/logger"
)

type Service interface {
	ReconcileLedgers(ctx context.Context) (int64, error)
}

// LedgerReconcile periodically audits active fuel records against the
// balance invariant and logs the ones that drifted.
type LedgerReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLedgerReconcile(log logger.Logger, service Service, interval time.Duration) *LedgerReconcile {
	return &LedgerReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LedgerReconcile) TTL() time.Duration {
	return l.interval
}

func (l *LedgerReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	inconsistent, err := l.service.ReconcileLedgers(ctxWithTimeout)

	if inconsistent > 0 {
		l.log.With(
			logger.NewField("inconsistent_records", inconsistent),
		).Warn("ledger reconcile found drifted balances")
	}

	return err
}

func (l *LedgerReconcile) Info() string {
	return "ledger reconcile"
}
