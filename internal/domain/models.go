package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"
)

// Session is the client-side authentication state. Token empty means every
// other identity field is empty too.
type Session struct {
	Token       string `json:"token,omitempty"`
	Role        Role   `json:"role,omitempty"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name,omitempty"`
	Initialized bool   `json:"initialized"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	ImageID    string `json:"imageId"`
}

type Restaurant struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PhysicalAddress string `json:"physicalAddress"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ImageID         string `json:"imageId"`
	CategoryID      int    `json:"categoryId"`
}

type MenuItem struct {
	ItemID       int     `json:"itemId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageID      string  `json:"imageId"`
	CategoryID   int     `json:"categoryId"`
	RestaurantID int     `json:"restaurantId"`
}

// CartLine is one aggregated (item, quantity) pair. Quantity is always >= 1;
// a line reaches zero only by being removed.
type CartLine struct {
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageID  string  `json:"imageId"`
	Quantity int     `json:"quantity"`
}

const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is the client's read projection of a server-owned order.
type Order struct {
	OrderID              int       `json:"orderId"`
	Status               string    `json:"status"`
	RestaurantName       string    `json:"restaurantName"`
	OrderTime            time.Time `json:"orderTime"`
	TotalAmount          float64   `json:"totalAmount"`
	DeliveryAddress      string    `json:"deliveryAddress"`
	CancellationDeadline time.Time `json:"cancellationDeadline"`
	Cancellable          bool      `json:"cancellable"`
}

type DeliveryDetails struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type PlaceOrderResult struct {
	OrderID              int       `json:"orderId"`
	CustomerID           string    `json:"customerId"`
	CancellationDeadline time.Time `json:"cancellationDeadline"`
}

// AuthResponse is what the signup and login endpoints return.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type VerifyResponse struct {
	Role   Role   `json:"role"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type CustomerSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EventMessage is published to Kafka after order mutations.
type EventMessage struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}
