package service

import (
	"context"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/domain"
)

// SessionStore is the persistent key-value store behind the session fields.
type SessionStore interface {
	SaveSession(ctx context.Context, token, role, userID, name string) error
	LoadSession(ctx context.Context) (token, role, userID, name string, err error)
	ClearSession(ctx context.Context) error
	WatchSession(ctx context.Context) <-chan string
}

type CartStore interface {
	SaveCart(ctx context.Context, lines []domain.CartLine) error
	LoadCart(ctx context.Context) ([]domain.CartLine, error)
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context) (*domain.VerifyResponse, error)
}

type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

type CatalogFetcher interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
}

type OrderAPI interface {
	PlaceOrder(ctx context.Context, details domain.DeliveryDetails, items []domain.OrderItemRequest) (*domain.PlaceOrderResult, error)
	CustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderID int) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.EventMessage) error
}

type CartClearer interface {
	Clear(ctx context.Context) error
}

type SessionServiceInterface interface {
	Current() domain.Session
	Login(ctx context.Context, token string, role domain.Role, userID, name string) error
	LoginAdmin(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

type CartServiceInterface interface {
	Add(ctx context.Context, item domain.MenuItem) error
	Remove(ctx context.Context, itemID int) error
	SetQuantity(ctx context.Context, itemID, quantity int) error
	Clear(ctx context.Context) error
	Lines() []domain.CartLine
	Total() float64
}

type CatalogServiceInterface interface {
	Refresh(ctx context.Context) error
	Categories() []domain.Category
	Restaurants() []domain.Restaurant
	Category(categoryID int) (domain.Category, bool)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, details domain.DeliveryDetails, lines []domain.CartLine) (*domain.PlaceOrderResult, error)
	Cancel(ctx context.Context, customerID string, orderID int) (*domain.Order, error)
	Orders(ctx context.Context, customerID string) ([]domain.Order, error)
	ConfirmationQR(orderID int) ([]byte, error)
}

// BackendInterface is the slice of the remote data client the storefront
// pages use directly, bypassing the catalog cache.
type BackendInterface interface {
	Restaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	MenuItemsByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error)
	MenuItemsByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	CustomerSignup(ctx context.Context, signup domain.CustomerSignup) (*domain.AuthResponse, error)
	CustomerLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	RestaurantLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	RestaurantSignup(ctx context.Context, form backend.RestaurantSignupForm) (*domain.AuthResponse, error)
	CreateCategory(ctx context.Context, name string, image backend.FileUpload) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int) error
	CreateMenuItem(ctx context.Context, form backend.MenuItemForm) (*domain.MenuItem, error)
}

var _ BackendInterface = (*backend.Client)(nil)
var _ TokenVerifier = (*backend.Client)(nil)
var _ CatalogFetcher = (*backend.Client)(nil)
var _ OrderAPI = (*backend.Client)(nil)
