//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	autofill_post "fuelops/internal/handlers/rest/autofill_post"
	batch_put "fuelops/internal/handlers/rest/batch_put"
	debit_post "fuelops/internal/handlers/rest/debit_post"
	delivery_order_cancel_post "fuelops/internal/handlers/rest/delivery_order_cancel_post"
	delivery_order_post "fuelops/internal/handlers/rest/delivery_order_post"
	delivery_order_put "fuelops/internal/handlers/rest/delivery_order_put"
	direction_get "fuelops/internal/handlers/rest/direction_get"
	fuel_record_get "fuelops/internal/handlers/rest/fuel_record_get"
	lpo_forward_post "fuelops/internal/handlers/rest/lpo_forward_post"
	lpo_post "fuelops/internal/handlers/rest/lpo_post"
	route_put "fuelops/internal/handlers/rest/route_put"
	"fuelops/internal/handlers/tasks/ledger_reconcile"
	"fuelops/internal/pkg/config"
	"fuelops/internal/pkg/factory/do_event_handle"

	deliveryorderRepo "fuelops/internal/repository/deliveryorder"
	fuelconfigRepo "fuelops/internal/repository/fuelconfig"
	fuelrecordRepo "fuelops/internal/repository/fuelrecord"
	lpoRepo "fuelops/internal/repository/lpo"
	cascadeService "fuelops/internal/service/cascade"
	deliveryorderService "fuelops/internal/service/deliveryorder"
	fuelconfigService "fuelops/internal/service/fuelconfig"
	journeyService "fuelops/internal/service/journey"
	ledgerService "fuelops/internal/service/ledger"
	lpoService "fuelops/internal/service/lpo"

	"fuelops/pkg/background"
	"fuelops/pkg/logger"
	"fuelops/pkg/querier"
	"fuelops/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceJourney    ServiceJourney
	ServiceLedger     ServiceLedger
	ServiceOrders     ServiceOrders
	ServiceCascade    ServiceCascade
	ServiceLPO        ServiceLPO
	ServiceConfig     ServiceConfig
	BackgroundWorkers *background.Worker
}

type ServiceJourney interface {
	direction_get.Service
}

type ServiceLedger interface {
	autofill_post.Service
	debit_post.Service
	fuel_record_get.Service
}

type ServiceOrders interface {
	delivery_order_post.Service
}

type ServiceCascade interface {
	delivery_order_put.CascadeService
	delivery_order_cancel_post.CascadeService
}

type ServiceLPO interface {
	lpo_post.Service
	lpo_forward_post.Service
}

type ServiceConfig interface {
	route_put.Service
	batch_put.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideDeliveryOrderRepository,
		provideFuelRecordRepository,
		provideLPORepository,
		provideFuelConfigRepository,

		provideServiceFuelConfig,
		provideServiceJourney,
		provideServiceLedger,
		provideServiceDeliveryOrder,
		provideServiceLPO,
		provideChangeHandlerFactory,
		provideServiceCascade,

		provideLedgerReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceJourney), new(*journeyService.Service)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Service)),
		wire.Bind(new(ServiceOrders), new(*deliveryorderService.Service)),
		wire.Bind(new(ServiceCascade), new(*cascadeService.Service)),
		wire.Bind(new(ServiceLPO), new(*lpoService.Service)),
		wire.Bind(new(ServiceConfig), new(*fuelconfigService.Service)),

		wire.Bind(new(fuelconfigService.Repository), new(*fuelconfigRepo.Repository)),
		wire.Bind(new(journeyService.DeliveryOrderRepository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(journeyService.FuelRecordRepository), new(*fuelrecordRepo.Repository)),
		wire.Bind(new(journeyService.ConfigService), new(*fuelconfigService.Service)),
		wire.Bind(new(ledgerService.Repository), new(*fuelrecordRepo.Repository)),
		wire.Bind(new(ledgerService.DeliveryOrderRepository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(ledgerService.DirectionResolver), new(*journeyService.Service)),
		wire.Bind(new(ledgerService.ConfigService), new(*fuelconfigService.Service)),
		wire.Bind(new(deliveryorderService.Repository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(lpoService.Repository), new(*lpoRepo.Repository)),
		wire.Bind(new(lpoService.ConfigService), new(*fuelconfigService.Service)),
		wire.Bind(new(cascadeService.OrderService), new(*deliveryorderService.Service)),
		wire.Bind(new(cascadeService.LedgerService), new(*ledgerService.Service)),
		wire.Bind(new(cascadeService.HandlerFactory), new(*do_event_handle.ChangeHandlerFactory)),

		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lpoService.TxManager), new(*tx.Manager)),
		wire.Bind(new(cascadeService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ledger_reconcile.Service), new(*ledgerService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	CascadeService *cascadeService.Service
}

// InitializeKafkaWorkerApp wires the do.changed worker (cmd/worker-do-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryOrderRepository,
		provideFuelRecordRepository,
		provideFuelConfigRepository,

		provideServiceFuelConfig,
		provideServiceJourney,
		provideServiceLedger,
		provideServiceDeliveryOrder,
		provideChangeHandlerFactory,
		provideServiceCascade,

		wire.Bind(new(fuelconfigService.Repository), new(*fuelconfigRepo.Repository)),
		wire.Bind(new(journeyService.DeliveryOrderRepository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(journeyService.FuelRecordRepository), new(*fuelrecordRepo.Repository)),
		wire.Bind(new(journeyService.ConfigService), new(*fuelconfigService.Service)),
		wire.Bind(new(ledgerService.Repository), new(*fuelrecordRepo.Repository)),
		wire.Bind(new(ledgerService.DeliveryOrderRepository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(ledgerService.DirectionResolver), new(*journeyService.Service)),
		wire.Bind(new(ledgerService.ConfigService), new(*fuelconfigService.Service)),
		wire.Bind(new(deliveryorderService.Repository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(cascadeService.OrderService), new(*deliveryorderService.Service)),
		wire.Bind(new(cascadeService.LedgerService), new(*ledgerService.Service)),
		wire.Bind(new(cascadeService.HandlerFactory), new(*do_event_handle.ChangeHandlerFactory)),

		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(cascadeService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryOrderRepository(querier *querier.Querier) *deliveryorderRepo.Repository {
	return deliveryorderRepo.New(querier)
}

func provideFuelRecordRepository(querier *querier.Querier) *fuelrecordRepo.Repository {
	return fuelrecordRepo.New(querier)
}

func provideLPORepository(querier *querier.Querier) *lpoRepo.Repository {
	return lpoRepo.New(querier)
}

func provideFuelConfigRepository(querier *querier.Querier) *fuelconfigRepo.Repository {
	return fuelconfigRepo.New(querier)
}

func provideServiceFuelConfig(repository fuelconfigService.Repository) *fuelconfigService.Service {
	return fuelconfigService.New(repository)
}

func provideServiceJourney(
	orderRepository journeyService.DeliveryOrderRepository,
	recordRepository journeyService.FuelRecordRepository,
	configService journeyService.ConfigService,
) *journeyService.Service {
	return journeyService.New(orderRepository, recordRepository, configService)
}

func provideServiceLedger(
	repository ledgerService.Repository,
	orderRepository ledgerService.DeliveryOrderRepository,
	resolver ledgerService.DirectionResolver,
	configService ledgerService.ConfigService,
	txManager ledgerService.TxManager,
) *ledgerService.Service {
	return ledgerService.New(repository, orderRepository, resolver, configService, txManager)
}

func provideServiceDeliveryOrder(
	repository deliveryorderService.Repository,
	log logger.Logger,
) *deliveryorderService.Service {
	return deliveryorderService.NewService(repository, log)
}

func provideServiceLPO(
	repository lpoService.Repository,
	configService lpoService.ConfigService,
	txManager lpoService.TxManager,
	log logger.Logger,
) *lpoService.Service {
	return lpoService.NewService(repository, configService, txManager, log)
}

func provideChangeHandlerFactory(
	orderService cascadeService.OrderService,
	ledgerSvc cascadeService.LedgerService,
) *do_event_handle.ChangeHandlerFactory {
	return do_event_handle.NewChangeHandlerFactory(orderService, ledgerSvc)
}

func provideServiceCascade(
	orderService cascadeService.OrderService,
	factory cascadeService.HandlerFactory,
	txManager cascadeService.TxManager,
	log logger.Logger,
) *cascadeService.Service {
	return cascadeService.NewService(orderService, factory, txManager, log)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.LedgerReconcileInterval)
}

func provideLedgerReconcileTask(
	log logger.Logger,
	ledgerSvc ledger_reconcile.Service,
	interval ReconcileInterval,
) *ledger_reconcile.LedgerReconcile {
	return ledger_reconcile.NewLedgerReconcile(log, ledgerSvc, time.Duration(interval))
}

func provideTaskList(
	ledgerReconcileTask *ledger_reconcile.LedgerReconcile,
) []background.Task {
	return []background.Task{
		ledgerReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
