package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "foodexpress-storefront/internal/api/http"
	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/domain"
	"foodexpress-storefront/internal/service"
	"foodexpress-storefront/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend plays the remote food-ordering API for a complete
// login -> browse -> cart -> checkout -> cancel walk-through.
func stubBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/customers/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.AuthResponse{Token: "tok-1", UserID: "42", Name: "Alice"})
	})
	mux.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.VerifyResponse{Role: domain.RoleCustomer, UserID: "42", Name: "Alice"})
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Category{{CategoryID: 1, Name: "Pizza"}})
	})
	mux.HandleFunc("/api/restaurants/all", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Restaurant{{ID: 10, Name: "Mario's", CategoryID: 1}})
	})
	mux.HandleFunc("/api/menu-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.MenuItem{
			{ItemID: 1, Name: "Margherita", Price: 8.00, RestaurantID: 10, CategoryID: 1},
		})
	})
	mux.HandleFunc("/api/orders/place", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, `{"message":"missing token"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(domain.PlaceOrderResult{
			OrderID:              55,
			CustomerID:           "42",
			CancellationDeadline: time.Now().Add(2 * time.Minute),
		})
	})
	mux.HandleFunc("/api/orders/55/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/orders/customer/42", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Order{
			{OrderID: 55, Status: domain.OrderStatusCancelled, RestaurantName: "Mario's"},
		})
	})

	return httptest.NewServer(mux)
}

func TestStorefrontFlow(t *testing.T) {
	remote := stubBackend(t)
	defer remote.Close()

	mr := miniredis.RunT(t)
	store := storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "storefront")

	client := backend.NewClient(remote.URL, remote.Client(), store)
	catalog := service.NewCatalogService(client)
	sessions := service.NewSessionService(store, client, catalog, service.AdminCredentials{
		Email: "admin@storefront.local", Password: "secret",
	})
	ctx := context.Background()
	cart := service.NewCartService(ctx, store)
	orders := service.NewOrderService(client, cart, nil, service.DefaultQRGenerator{BaseURL: "http://localhost:8080"})

	sessions.Initialize(ctx)
	require.NoError(t, catalog.Refresh(ctx))

	handler := httpapi.NewHandler(sessions, cart, catalog, orders, client)
	server := httptest.NewServer(httpapi.NewRouter(handler))
	defer server.Close()

	post := func(path, body string) *http.Response {
		resp, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		return resp
	}

	t.Run("GatedPageBeforeLogin", func(t *testing.T) {
		httpClient := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}}
		resp, err := httpClient.Get(server.URL + "/customer/dashboard")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login?from=%2Fcustomer%2Fdashboard", resp.Header.Get("Location"))
	})

	t.Run("Login", func(t *testing.T) {
		resp := post("/login", `{"email":"alice@example.com","password":"pw","role":"customer"}`)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, sessions.Current().Authenticated())

		storedToken, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-1", storedToken)
	})

	t.Run("FillCart", func(t *testing.T) {
		item := `{"itemId":1,"name":"Margherita","price":8.00}`
		post("/cart/items", item).Body.Close()
		resp := post("/cart/items", item)
		defer resp.Body.Close()

		var body struct {
			Lines []domain.CartLine `json:"lines"`
			Total float64           `json:"total"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Lines, 1)
		assert.Equal(t, 2, body.Lines[0].Quantity)
		assert.Equal(t, 16.00, body.Total)
	})

	t.Run("Checkout", func(t *testing.T) {
		resp := post("/checkout", `{"name":"Alice","phone":"555-0101","street":"1 Main St","city":"Springfield","state":"IL","postalCode":"62701"}`)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(55), body["orderId"])

		// Checkout empties the cart, in memory and in the store.
		assert.Empty(t, cart.Lines())
		stored, err := store.LoadCart(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("CancelOrder", func(t *testing.T) {
		resp := post("/orders/55/cancel", "")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var order domain.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, "Mario's", order.RestaurantName)
	})

	t.Run("OrderQRCode", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/orders/55/qrcode")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	})

	t.Run("Logout", func(t *testing.T) {
		post("/logout", "").Body.Close()

		assert.False(t, sessions.Current().Authenticated())
		storedToken, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, storedToken)
	})
}

// A second storefront instance sharing the store must see the first one's
// session after it reloads.
func TestSessionSharedAcrossInstances(t *testing.T) {
	remote := stubBackend(t)
	defer remote.Close()

	mr := miniredis.RunT(t)
	store := storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "storefront")
	ctx := context.Background()

	client := backend.NewClient(remote.URL, remote.Client(), store)
	first := service.NewSessionService(store, client, nil, service.AdminCredentials{})
	first.Initialize(ctx)
	require.NoError(t, first.Login(ctx, "tok-1", domain.RoleCustomer, "42", "Alice"))

	second := service.NewSessionService(store, client, nil, service.AdminCredentials{})
	second.Initialize(ctx)

	assert.Equal(t, "tok-1", second.Current().Token)
	assert.Equal(t, domain.RoleCustomer, second.Current().Role)
	assert.Equal(t, "Alice", second.Current().Name)
}
