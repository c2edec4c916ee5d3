//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	driver_delete "fleetops/internal/handlers/rest/driver_delete"
	driver_get "fleetops/internal/handlers/rest/driver_get"
	driver_history_get "fleetops/internal/handlers/rest/driver_history_get"
	driver_post "fleetops/internal/handlers/rest/driver_post"
	driver_put "fleetops/internal/handlers/rest/driver_put"
	driver_status_log_delete "fleetops/internal/handlers/rest/driver_status_log_delete"
	driver_status_log_get "fleetops/internal/handlers/rest/driver_status_log_get"
	driver_status_log_post "fleetops/internal/handlers/rest/driver_status_log_post"
	driver_status_logs_get "fleetops/internal/handlers/rest/driver_status_logs_get"
	drivers_get "fleetops/internal/handlers/rest/drivers_get"
	expense_delete "fleetops/internal/handlers/rest/expense_delete"
	expense_get "fleetops/internal/handlers/rest/expense_get"
	expense_post "fleetops/internal/handlers/rest/expense_post"
	expense_put "fleetops/internal/handlers/rest/expense_put"
	expenses_get "fleetops/internal/handlers/rest/expenses_get"
	fuel_log_delete "fleetops/internal/handlers/rest/fuel_log_delete"
	fuel_log_get "fleetops/internal/handlers/rest/fuel_log_get"
	fuel_log_post "fleetops/internal/handlers/rest/fuel_log_post"
	fuel_log_put "fleetops/internal/handlers/rest/fuel_log_put"
	fuel_logs_get "fleetops/internal/handlers/rest/fuel_logs_get"
	maintenance_delete "fleetops/internal/handlers/rest/maintenance_delete"
	maintenance_get "fleetops/internal/handlers/rest/maintenance_get"
	maintenance_post "fleetops/internal/handlers/rest/maintenance_post"
	maintenance_put "fleetops/internal/handlers/rest/maintenance_put"
	maintenance_status_patch "fleetops/internal/handlers/rest/maintenance_status_patch"
	maintenances_get "fleetops/internal/handlers/rest/maintenances_get"
	shipment_delete "fleetops/internal/handlers/rest/shipment_delete"
	shipment_get "fleetops/internal/handlers/rest/shipment_get"
	shipment_post "fleetops/internal/handlers/rest/shipment_post"
	shipment_put "fleetops/internal/handlers/rest/shipment_put"
	shipments_get "fleetops/internal/handlers/rest/shipments_get"
	trip_cancel_post "fleetops/internal/handlers/rest/trip_cancel_post"
	trip_complete_post "fleetops/internal/handlers/rest/trip_complete_post"
	trip_delete "fleetops/internal/handlers/rest/trip_delete"
	trip_dispatch_post "fleetops/internal/handlers/rest/trip_dispatch_post"
	trip_get "fleetops/internal/handlers/rest/trip_get"
	trip_post "fleetops/internal/handlers/rest/trip_post"
	trip_put "fleetops/internal/handlers/rest/trip_put"
	trips_get "fleetops/internal/handlers/rest/trips_get"
	vehicle_delete "fleetops/internal/handlers/rest/vehicle_delete"
	vehicle_get "fleetops/internal/handlers/rest/vehicle_get"
	vehicle_history_get "fleetops/internal/handlers/rest/vehicle_history_get"
	vehicle_post "fleetops/internal/handlers/rest/vehicle_post"
	vehicle_put "fleetops/internal/handlers/rest/vehicle_put"
	vehicle_status_log_delete "fleetops/internal/handlers/rest/vehicle_status_log_delete"
	vehicle_status_log_get "fleetops/internal/handlers/rest/vehicle_status_log_get"
	vehicle_status_log_post "fleetops/internal/handlers/rest/vehicle_status_log_post"
	vehicle_status_logs_get "fleetops/internal/handlers/rest/vehicle_status_logs_get"
	vehicles_get "fleetops/internal/handlers/rest/vehicles_get"
	"fleetops/internal/handlers/tasks/license_expiry"
	"fleetops/internal/pkg/config"
	"fleetops/internal/pkg/factory/entity_code"
	"fleetops/internal/pkg/factory/trip_handle"

	driverRepo "fleetops/internal/repository/driver"
	expenseRepo "fleetops/internal/repository/expense"
	fuellogRepo "fleetops/internal/repository/fuellog"
	maintenanceRepo "fleetops/internal/repository/maintenance"
	shipmentRepo "fleetops/internal/repository/shipment"
	statuslogRepo "fleetops/internal/repository/statuslog"
	tripRepo "fleetops/internal/repository/trip"
	vehicleRepo "fleetops/internal/repository/vehicle"
	driverService "fleetops/internal/service/driver"
	expenseService "fleetops/internal/service/expense"
	fuellogService "fleetops/internal/service/fuellog"
	maintenanceService "fleetops/internal/service/maintenance"
	shipmentService "fleetops/internal/service/shipment"
	shipmenteventsService "fleetops/internal/service/shipmentevents"
	statuslogService "fleetops/internal/service/statuslog"
	tripService "fleetops/internal/service/trip"
	vehicleService "fleetops/internal/service/vehicle"

	"fleetops/pkg/background"
	"fleetops/pkg/logger"
	"fleetops/pkg/querier"
	"fleetops/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceVehicle     ServiceVehicle
	ServiceDriver      ServiceDriver
	ServiceShipment    ServiceShipment
	ServiceTrip        ServiceTrip
	ServiceMaintenance ServiceMaintenance
	ServiceFuelLog     ServiceFuelLog
	ServiceExpense     ServiceExpense
	ServiceStatusLog   ServiceStatusLog
	BackgroundWorkers  *background.Worker
}

type ServiceVehicle interface {
	vehicle_post.Service
	vehicle_get.Service
	vehicles_get.Service
	vehicle_put.Service
	vehicle_delete.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_get.Service
	drivers_get.Service
	driver_put.Service
	driver_delete.Service
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipments_get.Service
	shipment_put.Service
	shipment_delete.Service
}

type ServiceTrip interface {
	trip_post.Service
	trip_get.Service
	trips_get.Service
	trip_put.Service
	trip_delete.Service
	trip_dispatch_post.Service
	trip_complete_post.Service
	trip_cancel_post.Service
}

type ServiceMaintenance interface {
	maintenance_post.Service
	maintenance_get.Service
	maintenances_get.Service
	maintenance_put.Service
	maintenance_status_patch.Service
	maintenance_delete.Service
}

type ServiceFuelLog interface {
	fuel_log_post.Service
	fuel_log_get.Service
	fuel_logs_get.Service
	fuel_log_put.Service
	fuel_log_delete.Service
}

type ServiceExpense interface {
	expense_post.Service
	expense_get.Service
	expenses_get.Service
	expense_put.Service
	expense_delete.Service
}

type ServiceStatusLog interface {
	vehicle_status_log_post.Service
	vehicle_status_log_get.Service
	vehicle_status_logs_get.Service
	vehicle_status_log_delete.Service
	vehicle_history_get.Service
	driver_status_log_post.Service
	driver_status_log_get.Service
	driver_status_logs_get.Service
	driver_status_log_delete.Service
	driver_history_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
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
		provideSweepInterval,
		entity_code.New,

		provideVehicleRepository,
		provideDriverRepository,
		provideShipmentRepository,
		provideTripRepository,
		provideMaintenanceRepository,
		provideFuelLogRepository,
		provideExpenseRepository,
		provideStatusLogRepository,

		provideServiceVehicle,
		provideServiceDriver,
		provideServiceShipment,
		provideServiceTrip,
		provideServiceMaintenance,
		provideServiceFuelLog,
		provideServiceExpense,
		provideServiceStatusLog,

		provideLicenseExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceVehicle), new(*vehicleService.Vehicle)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceMaintenance), new(*maintenanceService.Maintenance)),
		wire.Bind(new(ServiceFuelLog), new(*fuellogService.FuelLog)),
		wire.Bind(new(ServiceExpense), new(*expenseService.Expense)),
		wire.Bind(new(ServiceStatusLog), new(*statuslogService.StatusLog)),

		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(maintenanceService.Repository), new(*maintenanceRepo.Repository)),
		wire.Bind(new(fuellogService.Repository), new(*fuellogRepo.Repository)),
		wire.Bind(new(expenseService.Repository), new(*expenseRepo.Repository)),
		wire.Bind(new(statuslogService.Repository), new(*statuslogRepo.Repository)),

		wire.Bind(new(tripService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(tripService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(tripService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(tripService.VehicleLogger), new(*statuslogRepo.Repository)),
		wire.Bind(new(tripService.DriverLogger), new(*statuslogRepo.Repository)),
		wire.Bind(new(tripService.CodeFactory), new(*entity_code.CodeFactory)),

		wire.Bind(new(maintenanceService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(maintenanceService.VehicleLogger), new(*statuslogRepo.Repository)),
		wire.Bind(new(maintenanceService.CodeFactory), new(*entity_code.CodeFactory)),

		wire.Bind(new(fuellogService.TripService), new(*tripService.Trip)),
		wire.Bind(new(fuellogService.CodeFactory), new(*entity_code.CodeFactory)),
		wire.Bind(new(expenseService.TripService), new(*tripService.Trip)),

		wire.Bind(new(statuslogService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(statuslogService.DriverService), new(*driverService.Driver)),

		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),
		wire.Bind(new(maintenanceService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fuellogService.TxManager), new(*tx.Manager)),
		wire.Bind(new(expenseService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statuslogService.TxManager), new(*tx.Manager)),

		wire.Bind(new(license_expiry.Service), new(*driverService.Driver)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentEvents *shipmenteventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
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
		entity_code.New,

		provideVehicleRepository,
		provideDriverRepository,
		provideShipmentRepository,
		provideTripRepository,
		provideStatusLogRepository,

		provideServiceVehicle,
		provideServiceDriver,
		provideServiceShipment,
		provideServiceTrip,

		provideStatusHandlerFactory,
		provideServiceShipmentEvents,

		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),

		wire.Bind(new(tripService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(tripService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(tripService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(tripService.VehicleLogger), new(*statuslogRepo.Repository)),
		wire.Bind(new(tripService.DriverLogger), new(*statuslogRepo.Repository)),
		wire.Bind(new(tripService.CodeFactory), new(*entity_code.CodeFactory)),
		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipmenteventsService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(shipmenteventsService.TripService), new(*tripService.Trip)),
		wire.Bind(new(shipmenteventsService.HandlerFactory), new(*trip_handle.StatusHandlerFactory)),

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

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideMaintenanceRepository(querier *querier.Querier) *maintenanceRepo.Repository {
	return maintenanceRepo.New(querier)
}

func provideFuelLogRepository(querier *querier.Querier) *fuellogRepo.Repository {
	return fuellogRepo.New(querier)
}

func provideExpenseRepository(querier *querier.Querier) *expenseRepo.Repository {
	return expenseRepo.New(querier)
}

func provideStatusLogRepository(querier *querier.Querier) *statuslogRepo.Repository {
	return statuslogRepo.New(querier)
}

func provideServiceVehicle(repository vehicleService.Repository) *vehicleService.Vehicle {
	return vehicleService.New(repository)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceShipment(repository shipmentService.Repository) *shipmentService.Shipment {
	return shipmentService.New(repository)
}

func provideServiceTrip(
	repository tripService.Repository,
	vehicleSvc tripService.VehicleService,
	driverSvc tripService.DriverService,
	shipmentSvc tripService.ShipmentService,
	vehicleLogger tripService.VehicleLogger,
	driverLogger tripService.DriverLogger,
	codeFactory tripService.CodeFactory,
	txManager tripService.TxManager,
) *tripService.Trip {
	return tripService.New(
		repository,
		vehicleSvc,
		driverSvc,
		shipmentSvc,
		vehicleLogger,
		driverLogger,
		codeFactory,
		txManager,
	)
}

func provideServiceMaintenance(
	repository maintenanceService.Repository,
	vehicleSvc maintenanceService.VehicleService,
	vehicleLogger maintenanceService.VehicleLogger,
	codeFactory maintenanceService.CodeFactory,
	txManager maintenanceService.TxManager,
) *maintenanceService.Maintenance {
	return maintenanceService.New(
		repository,
		vehicleSvc,
		vehicleLogger,
		codeFactory,
		txManager,
	)
}

func provideServiceFuelLog(
	repository fuellogService.Repository,
	tripSvc fuellogService.TripService,
	codeFactory fuellogService.CodeFactory,
	txManager fuellogService.TxManager,
) *fuellogService.FuelLog {
	return fuellogService.New(repository, tripSvc, codeFactory, txManager)
}

func provideServiceExpense(
	repository expenseService.Repository,
	tripSvc expenseService.TripService,
	txManager expenseService.TxManager,
) *expenseService.Expense {
	return expenseService.New(repository, tripSvc, txManager)
}

func provideServiceStatusLog(
	repository statuslogService.Repository,
	vehicleSvc statuslogService.VehicleService,
	driverSvc statuslogService.DriverService,
	txManager statuslogService.TxManager,
) *statuslogService.StatusLog {
	return statuslogService.New(repository, vehicleSvc, driverSvc, txManager)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.LicenseExpirySweepInterval)
}

// provideServiceShipmentEvents создает сервис для обработки событий Kafka
func provideServiceShipmentEvents(
	shipmentSvc shipmenteventsService.ShipmentService,
	handlerFactory shipmenteventsService.HandlerFactory,
) *shipmenteventsService.Service {
	return shipmenteventsService.New(shipmentSvc, handlerFactory)
}

func provideStatusHandlerFactory(tripSvc shipmenteventsService.TripService) *trip_handle.StatusHandlerFactory {
	return trip_handle.NewStatusHandlerFactory(tripSvc)
}

func provideLicenseExpiryTask(
	log logger.Logger,
	driverSvc license_expiry.Service,
	interval SweepInterval,
) *license_expiry.LicenseExpiry {
	return license_expiry.NewLicenseExpiry(log, driverSvc, time.Duration(interval))
}

func provideTaskList(
	licenseExpiryTask *license_expiry.LicenseExpiry,
) []background.Task {
	return []background.Task{
		licenseExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
