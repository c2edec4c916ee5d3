// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"fleetops/internal/handlers/rest/driver_delete"
	"fleetops/internal/handlers/rest/driver_get"
	"fleetops/internal/handlers/rest/driver_history_get"
	"fleetops/internal/handlers/rest/driver_post"
	"fleetops/internal/handlers/rest/driver_put"
	"fleetops/internal/handlers/rest/driver_status_log_delete"
	"fleetops/internal/handlers/rest/driver_status_log_get"
	"fleetops/internal/handlers/rest/driver_status_log_post"
	"fleetops/internal/handlers/rest/driver_status_logs_get"
	"fleetops/internal/handlers/rest/drivers_get"
	"fleetops/internal/handlers/rest/expense_delete"
	"fleetops/internal/handlers/rest/expense_get"
	"fleetops/internal/handlers/rest/expense_post"
	"fleetops/internal/handlers/rest/expense_put"
	"fleetops/internal/handlers/rest/expenses_get"
	"fleetops/internal/handlers/rest/fuel_log_delete"
	"fleetops/internal/handlers/rest/fuel_log_get"
	"fleetops/internal/handlers/rest/fuel_log_post"
	"fleetops/internal/handlers/rest/fuel_log_put"
	"fleetops/internal/handlers/rest/fuel_logs_get"
	"fleetops/internal/handlers/rest/maintenance_delete"
	"fleetops/internal/handlers/rest/maintenance_get"
	"fleetops/internal/handlers/rest/maintenance_post"
	"fleetops/internal/handlers/rest/maintenance_put"
	"fleetops/internal/handlers/rest/maintenance_status_patch"
	"fleetops/internal/handlers/rest/maintenances_get"
	"fleetops/internal/handlers/rest/shipment_delete"
	"fleetops/internal/handlers/rest/shipment_get"
	"fleetops/internal/handlers/rest/shipment_post"
	"fleetops/internal/handlers/rest/shipment_put"
	"fleetops/internal/handlers/rest/shipments_get"
	"fleetops/internal/handlers/rest/trip_cancel_post"
	"fleetops/internal/handlers/rest/trip_complete_post"
	"fleetops/internal/handlers/rest/trip_delete"
	"fleetops/internal/handlers/rest/trip_dispatch_post"
	"fleetops/internal/handlers/rest/trip_get"
	"fleetops/internal/handlers/rest/trip_post"
	"fleetops/internal/handlers/rest/trip_put"
	"fleetops/internal/handlers/rest/trips_get"
	"fleetops/internal/handlers/rest/vehicle_delete"
	"fleetops/internal/handlers/rest/vehicle_get"
	"fleetops/internal/handlers/rest/vehicle_history_get"
	"fleetops/internal/handlers/rest/vehicle_post"
	"fleetops/internal/handlers/rest/vehicle_put"
	"fleetops/internal/handlers/rest/vehicle_status_log_delete"
	"fleetops/internal/handlers/rest/vehicle_status_log_get"
	"fleetops/internal/handlers/rest/vehicle_status_log_post"
	"fleetops/internal/handlers/rest/vehicle_status_logs_get"
	"fleetops/internal/handlers/rest/vehicles_get"
	"fleetops/internal/handlers/tasks/license_expiry"
	"fleetops/internal/pkg/config"
	"fleetops/internal/pkg/factory/entity_code"
	"fleetops/internal/pkg/factory/trip_handle"
	"fleetops/internal/repository/driver"
	"fleetops/internal/repository/expense"
	"fleetops/internal/repository/fuellog"
	"fleetops/internal/repository/maintenance"
	"fleetops/internal/repository/shipment"
	"fleetops/internal/repository/statuslog"
	"fleetops/internal/repository/trip"
	"fleetops/internal/repository/vehicle"
	driver2 "fleetops/internal/service/driver"
	expense2 "fleetops/internal/service/expense"
	fuellog2 "fleetops/internal/service/fuellog"
	maintenance2 "fleetops/internal/service/maintenance"
	shipment2 "fleetops/internal/service/shipment"
	"fleetops/internal/service/shipmentevents"
	statuslog2 "fleetops/internal/service/statuslog"
	trip2 "fleetops/internal/service/trip"
	vehicle2 "fleetops/internal/service/vehicle"
	"fleetops/pkg/background"
	"fleetops/pkg/logger"
	"fleetops/pkg/querier"
	"fleetops/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideVehicleRepository(querier)
	vehicle := provideServiceVehicle(repository)
	driverRepository := provideDriverRepository(querier)
	driver := provideServiceDriver(driverRepository)
	shipmentRepository := provideShipmentRepository(querier)
	shipment := provideServiceShipment(shipmentRepository)
	tripRepository := provideTripRepository(querier)
	statuslogRepository := provideStatusLogRepository(querier)
	codeFactory := entity_code.New()
	manager := provideTxManager(pool)
	trip := provideServiceTrip(tripRepository, vehicle, driver, shipment, statuslogRepository, statuslogRepository, codeFactory, manager)
	maintenanceRepository := provideMaintenanceRepository(querier)
	maintenance := provideServiceMaintenance(maintenanceRepository, vehicle, statuslogRepository, codeFactory, manager)
	fuellogRepository := provideFuelLogRepository(querier)
	fuelLog := provideServiceFuelLog(fuellogRepository, trip, codeFactory, manager)
	expenseRepository := provideExpenseRepository(querier)
	expense := provideServiceExpense(expenseRepository, trip, manager)
	statusLog := provideServiceStatusLog(statuslogRepository, vehicle, driver, manager)
	sweepInterval := provideSweepInterval(cfg)
	licenseExpiry := provideLicenseExpiryTask(log, driver, sweepInterval)
	v := provideTaskList(licenseExpiry)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceVehicle:     vehicle,
		ServiceDriver:      driver,
		ServiceShipment:    shipment,
		ServiceTrip:        trip,
		ServiceMaintenance: maintenance,
		ServiceFuelLog:     fuelLog,
		ServiceExpense:     expense,
		ServiceStatusLog:   statusLog,
		BackgroundWorkers:  worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideShipmentRepository(querier)
	shipment := provideServiceShipment(repository)
	tripRepository := provideTripRepository(querier)
	vehicleRepository := provideVehicleRepository(querier)
	vehicle := provideServiceVehicle(vehicleRepository)
	driverRepository := provideDriverRepository(querier)
	driver := provideServiceDriver(driverRepository)
	statuslogRepository := provideStatusLogRepository(querier)
	codeFactory := entity_code.New()
	manager := provideTxManager(pool)
	trip := provideServiceTrip(tripRepository, vehicle, driver, shipment, statuslogRepository, statuslogRepository, codeFactory, manager)
	statusHandlerFactory := provideStatusHandlerFactory(trip)
	service := provideServiceShipmentEvents(shipment, statusHandlerFactory)
	kafkaWorkerApp := &KafkaWorkerApp{
		ShipmentEvents: service,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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

type KafkaWorkerApp struct {
	ShipmentEvents *shipmentevents.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideVehicleRepository(querier2 *querier.Querier) *vehicle.Repository {
	return vehicle.New(querier2)
}

func provideDriverRepository(querier2 *querier.Querier) *driver.Repository {
	return driver.New(querier2)
}

func provideShipmentRepository(querier2 *querier.Querier) *shipment.Repository {
	return shipment.New(querier2)
}

func provideTripRepository(querier2 *querier.Querier) *trip.Repository {
	return trip.New(querier2)
}

func provideMaintenanceRepository(querier2 *querier.Querier) *maintenance.Repository {
	return maintenance.New(querier2)
}

func provideFuelLogRepository(querier2 *querier.Querier) *fuellog.Repository {
	return fuellog.New(querier2)
}

func provideExpenseRepository(querier2 *querier.Querier) *expense.Repository {
	return expense.New(querier2)
}

func provideStatusLogRepository(querier2 *querier.Querier) *statuslog.Repository {
	return statuslog.New(querier2)
}

func provideServiceVehicle(repository vehicle2.Repository) *vehicle2.Vehicle {
	return vehicle2.New(repository)
}

func provideServiceDriver(repository driver2.Repository) *driver2.Driver {
	return driver2.New(repository)
}

func provideServiceShipment(repository shipment2.Repository) *shipment2.Shipment {
	return shipment2.New(repository)
}

func provideServiceTrip(
	repository trip2.Repository,
	vehicleSvc trip2.VehicleService,
	driverSvc trip2.DriverService,
	shipmentSvc trip2.ShipmentService,
	vehicleLogger trip2.VehicleLogger,
	driverLogger trip2.DriverLogger,
	codeFactory trip2.CodeFactory,
	txManager trip2.TxManager,
) *trip2.Trip {
	return trip2.New(
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
	repository maintenance2.Repository,
	vehicleSvc maintenance2.VehicleService,
	vehicleLogger maintenance2.VehicleLogger,
	codeFactory maintenance2.CodeFactory,
	txManager maintenance2.TxManager,
) *maintenance2.Maintenance {
	return maintenance2.New(
		repository,
		vehicleSvc,
		vehicleLogger,
		codeFactory,
		txManager,
	)
}

func provideServiceFuelLog(
	repository fuellog2.Repository,
	tripSvc fuellog2.TripService,
	codeFactory fuellog2.CodeFactory,
	txManager fuellog2.TxManager,
) *fuellog2.FuelLog {
	return fuellog2.New(repository, tripSvc, codeFactory, txManager)
}

func provideServiceExpense(
	repository expense2.Repository,
	tripSvc expense2.TripService,
	txManager expense2.TxManager,
) *expense2.Expense {
	return expense2.New(repository, tripSvc, txManager)
}

func provideServiceStatusLog(
	repository statuslog2.Repository,
	vehicleSvc statuslog2.VehicleService,
	driverSvc statuslog2.DriverService,
	txManager statuslog2.TxManager,
) *statuslog2.StatusLog {
	return statuslog2.New(repository, vehicleSvc, driverSvc, txManager)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.LicenseExpirySweepInterval)
}

// provideServiceShipmentEvents создает сервис для обработки событий Kafka
func provideServiceShipmentEvents(
	shipmentSvc shipmentevents.ShipmentService,
	handlerFactory shipmentevents.HandlerFactory,
) *shipmentevents.Service {
	return shipmentevents.New(shipmentSvc, handlerFactory)
}

func provideStatusHandlerFactory(tripSvc shipmentevents.TripService) *trip_handle.StatusHandlerFactory {
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
