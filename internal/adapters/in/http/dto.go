package http

import "time"

// Request bodies.

// SignUpCustomerRequest registers a customer account.
type SignUpCustomerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// SignUpRestaurantRequest registers a restaurant owner account and the
// restaurant it operates.
type SignUpRestaurantRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Address         string  `json:"address"`
	Name            string  `json:"name"`
	RestaurantType  string  `json:"restaurant_type"`
	OpensAt         string  `json:"opens_at"`
	ClosesAt        string  `json:"closes_at"`
	DeliveryCost    float64 `json:"delivery_cost"`
	DeliveryMinutes int     `json:"delivery_minutes"`
}

// SignInRequest exchanges credentials for a bearer token.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddFoodRequest adds a menu item to the caller's restaurant.
type AddFoodRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PrepMinutes int     `json:"prep_minutes"`
}

// CreateOrderRequest places an order for a menu item.
type CreateOrderRequest struct {
	FoodID string `json:"food_id"`
}

// ChangeOrderStatusRequest sets an order's status explicitly.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SignInResponse carries the issued bearer token.
type SignInResponse struct {
	Token string `json:"token"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderDetailsResponse is the customer-facing view of an order.
type OrderDetailsResponse struct {
	ID             string    `json:"id"`
	FoodName       string    `json:"food_name"`
	RestaurantName string    `json:"restaurant_name"`
	Status         string    `json:"status"`
	TotalPrice     float64   `json:"total_price"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// OrderStatusResponse reports an order's state after a transition.
type OrderStatusResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	ModifiedAt time.Time `json:"modified_at"`
}

// RestaurantResponse describes one open restaurant.
type RestaurantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	RestaurantType  string  `json:"restaurant_type"`
	OpensAt         string  `json:"opens_at"`
	ClosesAt        string  `json:"closes_at"`
	DeliveryCost    float64 `json:"delivery_cost"`
	DeliveryMinutes int     `json:"delivery_minutes"`
}

// FoodResponse describes one menu item.
type FoodResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PrepMinutes    int     `json:"prep_minutes"`
	RestaurantID   string  `json:"restaurant_id,omitempty"`
	RestaurantName string  `json:"restaurant_name,omitempty"`
}

// OrderSummaryResponse is one order in a customer's history.
type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	FoodName   string    `json:"food_name"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfitResponse is a per-day or per-restaurant earnings summary.
type ProfitResponse struct {
	Date           string  `json:"date,omitempty"`
	FoodProfit     float64 `json:"food_profit"`
	DeliveryProfit float64 `json:"delivery_profit"`
	TotalProfit    float64 `json:"total_profit"`
	OrderCount     int     `json:"order_count"`
}

// IncomeResponse reconciles gross takings with the commission withheld.
type IncomeResponse struct {
	GrossIncome float64 `json:"gross_income"`
	Commission  float64 `json:"commission"`
	NetIncome   float64 `json:"net_income"`
	OrderCount  int     `json:"order_count"`
}

// InvoiceLineResponse is one delivered order on an invoice.
type InvoiceLineResponse struct {
	OrderID   string    `json:"order_id"`
	FoodName  string    `json:"food_name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// InvoiceResponse is a restaurant's payout statement for one day.
type InvoiceResponse struct {
	Date  string                `json:"date"`
	Lines []InvoiceLineResponse `json:"lines"`
	Total float64               `json:"total"`
}

// DeliveryPercentageResponse reports the delivered share of a
// restaurant's orders.
type DeliveryPercentageResponse struct {
	TotalOrders    int     `json:"total_orders"`
	DeliveredCount int     `json:"delivered_count"`
	Percentage     float64 `json:"percentage"`
}
