package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource with a settable value, standing in for the
// persistent store.
type staticTokens struct{ token string }

func (s *staticTokens) Token(ctx context.Context) (string, error) {
	return s.token, nil
}

func TestClient_RequestShape(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		json.NewEncoder(w).Encode([]domain.Category{})
	}))
	defer server.Close()

	tokens := &staticTokens{token: "tok-1"}
	client := backend.NewClient(server.URL, server.Client(), tokens)

	_, err := client.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/categories", got.URL.Path)
	assert.Equal(t, "Bearer tok-1", got.Header.Get("Authorization"))
	// Every GET carries a unique cache-busting parameter.
	assert.NotEmpty(t, got.URL.Query().Get("_"))
}

func TestClient_TokenReadAtSendTime(t *testing.T) {
	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.Category{})
	}))
	defer server.Close()

	tokens := &staticTokens{}
	client := backend.NewClient(server.URL, server.Client(), tokens)

	_, err := client.Categories(context.Background())
	require.NoError(t, err)

	tokens.token = "tok-late"
	_, err = client.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer tok-late"}, authHeaders)
}

func TestClient_UnauthorizedFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Token expired"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := backend.NewClient(server.URL, server.Client(), &staticTokens{token: "tok-stale"})
	hookFired := false
	client.OnUnauthorized(func() { hookFired = true })

	_, err := client.Categories(context.Background())

	require.Error(t, err)
	assert.True(t, hookFired)
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Token expired", apiErr.Message)
}

func TestClient_ServerMessagePassedThrough(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "json message field",
			status:      http.StatusBadRequest,
			body:        `{"message":"Email already registered"}`,
			wantMessage: "Email already registered",
		},
		{
			name:        "plain text body",
			status:      http.StatusConflict,
			body:        "order is no longer cancellable",
			wantMessage: "order is no longer cancellable",
		},
		{
			name:        "empty body falls back to the status text",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "Internal Server Error",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()
			client := backend.NewClient(server.URL, server.Client(), &staticTokens{})

			_, err := client.Categories(context.Background())

			var apiErr *backend.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, testCase.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_PlaceOrderPayload(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/place", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(domain.PlaceOrderResult{OrderID: 55, CustomerID: "42"})
	}))
	defer server.Close()
	client := backend.NewClient(server.URL, server.Client(), &staticTokens{token: "tok-1"})

	result, err := client.PlaceOrder(context.Background(), testDelivery, []domain.OrderItemRequest{
		{MenuItemID: 1, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 55, result.OrderID)
	// Delivery fields sit flat beside the item list.
	assert.Equal(t, "Alice", gotBody["name"])
	assert.Equal(t, "62701", gotBody["postalCode"])
	items := gotBody["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), items[0].(map[string]interface{})["menuItemId"])
}

func TestClient_RestaurantSignupMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Mario's", r.FormValue("name"))
		assert.Equal(t, "70", r.FormValue("width"))
		assert.Equal(t, "70", r.FormValue("height"))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)
		json.NewEncoder(w).Encode(domain.AuthResponse{Token: "tok-2", UserID: "7", Name: "Mario's"})
	}))
	defer server.Close()
	client := backend.NewClient(server.URL, server.Client(), &staticTokens{})

	auth, err := client.RestaurantSignup(context.Background(), backend.RestaurantSignupForm{
		Name:     "Mario's",
		Email:    "owner@example.com",
		Password: "pw",
		Image: backend.FileUpload{
			FieldName: "file",
			FileName:  "logo.png",
			Content:   strings.NewReader("fake-png"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-2", auth.Token)
}

func TestClient_MenuItemQueries(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("categoryId") + "/" + r.URL.Query().Get("restaurantId")
		json.NewEncoder(w).Encode([]domain.MenuItem{})
	}))
	defer server.Close()
	client := backend.NewClient(server.URL, server.Client(), &staticTokens{})

	_, err := client.MenuItemsByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "3/", gotQuery)

	_, err = client.MenuItemsByRestaurant(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/7", gotQuery)
}
