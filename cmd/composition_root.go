package cmd

import (
	"log/slog"

	httpserver "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/geo"
	"shiptrack/internal/adapters/out/notify"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	oracle     ports.LocationOracle
	publisher  ports.EventPublisher
	geofence   services.GeofenceEvaluator
	owner      kernel.Party
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	owner, err := kernel.NewParty(config.RegistryOwner)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		oracle:     geo.NewHTTPLocationOracle(config.OracleBaseURL),
		publisher:  notify.NewLogEventPublisher(logger),
		geofence:   services.NewGeofenceEvaluator(),
		owner:      owner,
	}, nil
}

// UnitOfWorkFactory exposes the shared factory for background jobs.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRequestDeliveryCheckCommandHandler() commands.RequestDeliveryCheckCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCheckCommandHandler(f, c.oracle)
}

func (c *CompositionRoot) CreateRequestReceiptConfirmationCheckCommandHandler() commands.RequestReceiptConfirmationCheckCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReceiptConfirmationCheckCommandHandler(f, c.oracle)
}

func (c *CompositionRoot) CreateProcessLocationResponseCommandHandler() commands.ProcessLocationResponseCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessLocationResponseCommandHandler(f, c.geofence, c.publisher)
}

func (c *CompositionRoot) CreateSetDistanceThresholdCommandHandler() commands.SetDistanceThresholdCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDistanceThresholdCommandHandler(f, c.owner)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersBySenderQueryHandler() queries.GetOrdersBySenderQueryHandler {
	return queries.NewGetOrdersBySenderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByReceiverQueryHandler() queries.GetOrdersByReceiverQueryHandler {
	return queries.NewGetOrdersByReceiverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDistanceThresholdQueryHandler() queries.GetDistanceThresholdQueryHandler {
	return queries.NewGetDistanceThresholdQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the API server.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateRequestDeliveryCheckCommandHandler(),
		c.CreateRequestReceiptConfirmationCheckCommandHandler(),
		c.CreateProcessLocationResponseCommandHandler(),
		c.CreateSetDistanceThresholdCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersBySenderQueryHandler(),
		c.CreateGetOrdersByReceiverQueryHandler(),
		c.CreateGetDistanceThresholdQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
