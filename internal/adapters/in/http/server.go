// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON payloads and commands/queries; all
// business rules live in the application layer.
package http

import (
	"net/http"
	"time"

	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/application/usecases/queries"
	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	signUpCustomerHandler    commands.SignUpCustomerCommandHandler
	signUpRestaurantHandler  commands.SignUpRestaurantCommandHandler
	signInHandler            commands.SignInCommandHandler
	addFoodHandler           commands.AddFoodCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	advanceOrderHandler      commands.AdvanceOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderDetailsHandler     queries.GetOrderDetailsQueryHandler
	listOpenRestaurantsHandler queries.ListOpenRestaurantsQueryHandler
	listFoodsHandler           queries.ListRestaurantFoodsQueryHandler
	searchFoodsHandler         queries.SearchFoodsQueryHandler
	listCustomerOrdersHandler  queries.ListCustomerRestaurantOrdersQueryHandler
	dailyProfitHandler         queries.DailyPlatformProfitQueryHandler
	profitRangeHandler         queries.PlatformProfitRangeQueryHandler
	restaurantProfitHandler    queries.RestaurantProfitQueryHandler
	restaurantIncomeHandler    queries.RestaurantIncomeQueryHandler
	restaurantInvoiceHandler   queries.RestaurantInvoiceQueryHandler
	deliveryPercentageHandler  queries.DeliveryPercentageQueryHandler

	verifier TokenVerifier
	clock    func() time.Time
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	signUpCustomerHandler commands.SignUpCustomerCommandHandler,
	signUpRestaurantHandler commands.SignUpRestaurantCommandHandler,
	signInHandler commands.SignInCommandHandler,
	addFoodHandler commands.AddFoodCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	listOpenRestaurantsHandler queries.ListOpenRestaurantsQueryHandler,
	listFoodsHandler queries.ListRestaurantFoodsQueryHandler,
	searchFoodsHandler queries.SearchFoodsQueryHandler,
	listCustomerOrdersHandler queries.ListCustomerRestaurantOrdersQueryHandler,
	dailyProfitHandler queries.DailyPlatformProfitQueryHandler,
	profitRangeHandler queries.PlatformProfitRangeQueryHandler,
	restaurantProfitHandler queries.RestaurantProfitQueryHandler,
	restaurantIncomeHandler queries.RestaurantIncomeQueryHandler,
	restaurantInvoiceHandler queries.RestaurantInvoiceQueryHandler,
	deliveryPercentageHandler queries.DeliveryPercentageQueryHandler,
	verifier TokenVerifier,
) *Server {
	return &Server{
		signUpCustomerHandler:      signUpCustomerHandler,
		signUpRestaurantHandler:    signUpRestaurantHandler,
		signInHandler:              signInHandler,
		addFoodHandler:             addFoodHandler,
		createOrderHandler:         createOrderHandler,
		advanceOrderHandler:        advanceOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		getOrderDetailsHandler:     getOrderDetailsHandler,
		listOpenRestaurantsHandler: listOpenRestaurantsHandler,
		listFoodsHandler:           listFoodsHandler,
		searchFoodsHandler:         searchFoodsHandler,
		listCustomerOrdersHandler:  listCustomerOrdersHandler,
		dailyProfitHandler:         dailyProfitHandler,
		profitRangeHandler:         profitRangeHandler,
		restaurantProfitHandler:    restaurantProfitHandler,
		restaurantIncomeHandler:    restaurantIncomeHandler,
		restaurantInvoiceHandler:   restaurantInvoiceHandler,
		deliveryPercentageHandler:  deliveryPercentageHandler,
		verifier:                   verifier,
		clock:                      time.Now,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/accounts/customer", s.SignUpCustomer)
	api.POST("/accounts/restaurant", s.SignUpRestaurant)
	api.POST("/auth/sign-in", s.SignIn)
	api.GET("/restaurants/open", s.ListOpenRestaurants)
	api.GET("/restaurants/:id/foods", s.ListRestaurantFoods)
	api.GET("/foods/search", s.SearchFoods)

	authed := api.Group("", AuthMiddleware(s.verifier))

	customer := authed.Group("", RequireRole(account.RoleCustomer))
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/orders/:id", s.GetOrder)
	customer.PUT("/orders/:id/refresh", s.RefreshOrder)
	customer.POST("/orders/:id/cancel", s.CancelOrder)
	customer.GET("/restaurants/:id/orders", s.ListMyRestaurantOrders)

	owner := authed.Group("", RequireRole(account.RoleRestaurant))
	owner.POST("/restaurants/:id/foods", s.AddFood)
	owner.PUT("/orders/:id/status", s.ChangeOrderStatus)
	owner.GET("/reports/profit", s.RestaurantProfit)
	owner.GET("/reports/income", s.RestaurantIncome)
	owner.GET("/reports/invoice", s.RestaurantInvoice)
	owner.GET("/reports/delivery-percentage", s.DeliveryPercentage)

	authed.GET("/reports/platform/profit", s.PlatformProfit)
}

// SignUpCustomer handles POST /api/v1/accounts/customer.
func (s *Server) SignUpCustomer(ctx echo.Context) error {
	var req SignUpCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewSignUpCustomerCommand(accountID, req.Username, req.Password, req.Address)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.signUpCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// SignUpRestaurant handles POST /api/v1/accounts/restaurant.
func (s *Server) SignUpRestaurant(ctx echo.Context) error {
	var req SignUpRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	accountID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewSignUpRestaurantCommand(
		accountID, restaurantID,
		req.Username, req.Password, req.Address,
		req.Name, restaurant.Type(req.RestaurantType),
		req.OpensAt, req.ClosesAt,
		req.DeliveryCost, req.DeliveryMinutes,
	)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.signUpRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.String()})
}

// SignIn handles POST /api/v1/auth/sign-in. Bad credentials are a 401,
// not a 403: the caller is unauthenticated, not under-privileged.
func (s *Server) SignIn(ctx echo.Context) error {
	var req SignInRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSignInCommand(req.Username, req.Password)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	token, err := s.signInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondErrorCode(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	return ctx.JSON(http.StatusOK, SignInResponse{Token: token})
}

// ListOpenRestaurants handles GET /api/v1/restaurants/open.
func (s *Server) ListOpenRestaurants(ctx echo.Context) error {
	query, err := queries.NewListOpenRestaurantsQuery(s.clock())
	if err != nil {
		return respondError(ctx, err)
	}

	restaurants, err := s.listOpenRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		response[i] = RestaurantResponse{
			ID:              r.ID.String(),
			Name:            r.Name,
			RestaurantType:  r.RestaurantType,
			OpensAt:         r.OpensAt,
			ClosesAt:        r.ClosesAt,
			DeliveryCost:    r.DeliveryCost,
			DeliveryMinutes: r.DeliveryMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListRestaurantFoods handles GET /api/v1/restaurants/:id/foods.
func (s *Server) ListRestaurantFoods(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	query, err := queries.NewListRestaurantFoodsQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	foods, err := s.listFoodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FoodResponse, len(foods))
	for i, f := range foods {
		response[i] = FoodResponse{
			ID:          f.ID.String(),
			Name:        f.Name,
			Price:       f.Price,
			PrepMinutes: f.PrepMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SearchFoods handles GET /api/v1/foods/search?name=term.
func (s *Server) SearchFoods(ctx echo.Context) error {
	query, err := queries.NewSearchFoodsQuery(ctx.QueryParam("name"))
	if err != nil {
		return respondError(ctx, err)
	}

	foods, err := s.searchFoodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FoodResponse, len(foods))
	for i, f := range foods {
		response[i] = FoodResponse{
			ID:             f.ID.String(),
			Name:           f.Name,
			Price:          f.Price,
			PrepMinutes:    f.PrepMinutes,
			RestaurantID:   f.RestaurantID.String(),
			RestaurantName: f.RestaurantName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	foodID, err := kernel.UUIDFromString(req.FoodID)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid food id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, identity.AccountID, foodID)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id. Reading an order first
// applies any pending time-based transition, then returns the details a
// fresh reader observes.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid order id")
	}

	advanceCmd, err := commands.NewAdvanceOrderCommand(orderID, identity.AccountID)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	if _, err = s.advanceOrderHandler.Handle(ctx.Request().Context(), advanceCmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, identity.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailsResponse{
		ID:             details.ID.String(),
		FoodName:       details.FoodName,
		RestaurantName: details.RestaurantName,
		Status:         details.Status,
		TotalPrice:     details.TotalPrice,
		CreatedAt:      details.CreatedAt,
		ModifiedAt:     details.ModifiedAt,
	})
}

// RefreshOrder handles PUT /api/v1/orders/:id/refresh. It applies any
// pending time-based transition and reports the resulting status.
func (s *Server) RefreshOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, identity.AccountID)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	ord, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:         ord.ID().String(),
		Status:     ord.Status().String(),
		ModifiedAt: ord.ModifiedAt(),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, identity.AccountID)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	ord, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:         ord.ID().String(),
		Status:     ord.Status().String(),
		ModifiedAt: ord.ModifiedAt(),
	})
}

// ListMyRestaurantOrders handles GET /api/v1/restaurants/:id/orders.
func (s *Server) ListMyRestaurantOrders(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	query, err := queries.NewListCustomerRestaurantOrdersQuery(identity.AccountID, restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:         o.ID.String(),
			FoodName:   o.FoodName,
			Status:     o.Status,
			TotalPrice: o.TotalPrice,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddFood handles POST /api/v1/restaurants/:id/foods.
func (s *Server) AddFood(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	var req AddFoodRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	foodID := kernel.NewUUID()
	cmd, err := commands.NewAddFoodCommand(foodID, restaurantID, identity.AccountID, req.Name, req.Price, req.PrepMinutes)
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.addFoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: foodID.String()})
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, identity.AccountID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	ord, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:         ord.ID().String(),
		Status:     ord.Status().String(),
		ModifiedAt: ord.ModifiedAt(),
	})
}

// RestaurantProfit handles GET /api/v1/reports/profit.
func (s *Server) RestaurantProfit(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	query, err := queries.NewRestaurantProfitQuery(identity.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	profit, err := s.restaurantProfitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfitResponse{
		FoodProfit:     profit.FoodProfit,
		DeliveryProfit: profit.DeliveryProfit,
		TotalProfit:    profit.TotalProfit,
		OrderCount:     profit.OrderCount,
	})
}

// RestaurantIncome handles GET /api/v1/reports/income.
func (s *Server) RestaurantIncome(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	query, err := queries.NewRestaurantIncomeQuery(identity.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	income, err := s.restaurantIncomeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IncomeResponse{
		GrossIncome: income.GrossIncome,
		Commission:  income.Commission,
		NetIncome:   income.NetIncome,
		OrderCount:  income.OrderCount,
	})
}

// RestaurantInvoice handles GET /api/v1/reports/invoice?date=YYYY-MM-DD.
func (s *Server) RestaurantInvoice(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	date, err := parseDateParam(ctx.QueryParam("date"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	query, err := queries.NewRestaurantInvoiceQuery(identity.AccountID, date)
	if err != nil {
		return respondError(ctx, err)
	}

	invoice, err := s.restaurantInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]InvoiceLineResponse, len(invoice.Lines))
	for i, line := range invoice.Lines {
		lines[i] = InvoiceLineResponse{
			OrderID:   line.OrderID.String(),
			FoodName:  line.FoodName,
			Amount:    line.Amount,
			CreatedAt: line.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, InvoiceResponse{
		Date:  invoice.Date.Format("2006-01-02"),
		Lines: lines,
		Total: invoice.Total,
	})
}

// DeliveryPercentage handles GET /api/v1/reports/delivery-percentage.
func (s *Server) DeliveryPercentage(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	query, err := queries.NewDeliveryPercentageQuery(identity.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.deliveryPercentageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryPercentageResponse{
		TotalOrders:    resp.TotalOrders,
		DeliveredCount: resp.DeliveredCount,
		Percentage:     resp.Percentage,
	})
}

// PlatformProfit handles GET /api/v1/reports/platform/profit. With a
// date parameter it reports one day; with from/to it reports a
// zero-filled per-day series.
func (s *Server) PlatformProfit(ctx echo.Context) error {
	if from := ctx.QueryParam("from"); from != "" {
		fromDate, err := parseDateParam(from)
		if err != nil {
			return respondErrorCode(ctx, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		}
		toDate, err := parseDateParam(ctx.QueryParam("to"))
		if err != nil {
			return respondErrorCode(ctx, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
		}

		query, err := queries.NewPlatformProfitRangeQuery(fromDate, toDate)
		if err != nil {
			return respondError(ctx, err)
		}

		series, err := s.profitRangeHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}

		response := make([]ProfitResponse, len(series))
		for i, day := range series {
			response[i] = ProfitResponse{
				Date:           day.Date.Format("2006-01-02"),
				FoodProfit:     day.FoodProfit,
				DeliveryProfit: day.DeliveryProfit,
				TotalProfit:    day.TotalProfit,
				OrderCount:     day.OrderCount,
			}
		}

		return ctx.JSON(http.StatusOK, response)
	}

	date, err := parseDateParam(ctx.QueryParam("date"))
	if err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	query, err := queries.NewDailyPlatformProfitQuery(date)
	if err != nil {
		return respondError(ctx, err)
	}

	profit, err := s.dailyProfitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfitResponse{
		Date:           profit.Date.Format("2006-01-02"),
		FoodProfit:     profit.FoodProfit,
		DeliveryProfit: profit.DeliveryProfit,
		TotalProfit:    profit.TotalProfit,
		OrderCount:     profit.OrderCount,
	})
}

func parseDateParam(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
