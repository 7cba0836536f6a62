package cmd

import (
	"log/slog"

	httpin "foodservice/internal/adapters/in/http"
	"foodservice/internal/adapters/out/auth"
	"foodservice/internal/adapters/out/postgres"
	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/application/usecases/queries"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tokenService *auth.TokenService
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokenService, err := auth.NewTokenService(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateSignUpCustomerCommandHandler() commands.SignUpCustomerCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateSignUpRestaurantCommandHandler() commands.SignUpRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignInCommandHandler(f, c.tokenService)
}

func (c *CompositionRoot) CreateAddFoodCommandHandler() commands.AddFoodCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, order.DefaultSettlementPolicy(), nil)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenRestaurantsQueryHandler() queries.ListOpenRestaurantsQueryHandler {
	return queries.NewListOpenRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantFoodsQueryHandler() queries.ListRestaurantFoodsQueryHandler {
	return queries.NewListRestaurantFoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchFoodsQueryHandler() queries.SearchFoodsQueryHandler {
	return queries.NewSearchFoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerRestaurantOrdersQueryHandler() queries.ListCustomerRestaurantOrdersQueryHandler {
	return queries.NewListCustomerRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDailyPlatformProfitQueryHandler() queries.DailyPlatformProfitQueryHandler {
	return queries.NewDailyPlatformProfitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlatformProfitRangeQueryHandler() queries.PlatformProfitRangeQueryHandler {
	return queries.NewPlatformProfitRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRestaurantProfitQueryHandler() queries.RestaurantProfitQueryHandler {
	return queries.NewRestaurantProfitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRestaurantIncomeQueryHandler() queries.RestaurantIncomeQueryHandler {
	return queries.NewRestaurantIncomeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRestaurantInvoiceQueryHandler() queries.RestaurantInvoiceQueryHandler {
	return queries.NewRestaurantInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDeliveryPercentageQueryHandler() queries.DeliveryPercentageQueryHandler {
	return queries.NewDeliveryPercentageQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSignUpCustomerCommandHandler(),
		c.CreateSignUpRestaurantCommandHandler(),
		c.CreateSignInCommandHandler(),
		c.CreateAddFoodCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderDetailsQueryHandler(),
		c.CreateListOpenRestaurantsQueryHandler(),
		c.CreateListRestaurantFoodsQueryHandler(),
		c.CreateSearchFoodsQueryHandler(),
		c.CreateListCustomerRestaurantOrdersQueryHandler(),
		c.CreateDailyPlatformProfitQueryHandler(),
		c.CreatePlatformProfitRangeQueryHandler(),
		c.CreateRestaurantProfitQueryHandler(),
		c.CreateRestaurantIncomeQueryHandler(),
		c.CreateRestaurantInvoiceQueryHandler(),
		c.CreateDeliveryPercentageQueryHandler(),
		c.tokenService,
	)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDailyPlatformProfitQueryHandler(), c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
