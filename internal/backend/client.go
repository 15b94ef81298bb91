package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"foodexpress-storefront/internal/domain"

	"github.com/google/uuid"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource yields the current bearer token, read at send time rather than
// captured at construction.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError carries the backend's own message body verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client wraps the remote food-ordering API. Every request with a token
// attaches it as a bearer header; every GET carries a cache-busting query
// parameter; a 401 response fires the unauthorized hook before the error
// reaches the caller.
type Client struct {
	baseURL        string
	client         HTTPClient
	tokens         TokenSource
	onUnauthorized func()
}

func NewClient(baseURL string, client HTTPClient, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		tokens:  tokens,
	}
}

// OnUnauthorized registers the forced-logout hook. Set after construction to
// break the session/client dependency cycle.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	if method == http.MethodGet {
		query.Set("_", uuid.NewString())
	}

	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(resp)}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func serverMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		return body.Message
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json", out)
}

// FileUpload is one image attached to a multipart request.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   io.Reader
}

func multipartBody(fields [][2]string, file *FileUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) VerifyToken(ctx context.Context) (*domain.VerifyResponse, error) {
	var out domain.VerifyResponse
	if err := c.getJSON(ctx, "/api/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.getJSON(ctx, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if err := c.getJSON(ctx, "/api/restaurants/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.getJSON(ctx, "/api/restaurants/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MenuItemsByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	query := url.Values{"categoryId": {strconv.Itoa(categoryID)}}
	var out []domain.MenuItem
	if err := c.getJSON(ctx, "/api/menu-items", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MenuItemsByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	query := url.Values{"restaurantId": {strconv.Itoa(restaurantID)}}
	var out []domain.MenuItem
	if err := c.getJSON(ctx, "/api/menu-items", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CustomerSignup(ctx context.Context, signup domain.CustomerSignup) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.postJSON(ctx, "/api/customers/signup", signup, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CustomerLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.postJSON(ctx, "/api/customers/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RestaurantLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.postJSON(ctx, "/api/restaurants/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestaurantSignupForm mirrors the multipart restaurant registration payload.
type RestaurantSignupForm struct {
	Name            string
	Description     string
	PhysicalAddress string
	Phone           string
	Email           string
	Password        string
	CategoryID      int
	Image           FileUpload
}

func (c *Client) RestaurantSignup(ctx context.Context, form RestaurantSignupForm) (*domain.AuthResponse, error) {
	body, contentType, err := multipartBody([][2]string{
		{"name", form.Name},
		{"description", form.Description},
		{"physicalAddress", form.PhysicalAddress},
		{"phone", form.Phone},
		{"email", form.Email},
		{"password", form.Password},
		{"categoryId", strconv.Itoa(form.CategoryID)},
		{"width", "70"},
		{"height", "70"},
	}, &form.Image)
	if err != nil {
		return nil, err
	}

	var out domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/restaurants/signup", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string, image FileUpload) (*domain.Category, error) {
	body, contentType, err := multipartBody([][2]string{
		{"name", name},
		{"width", "150"},
		{"height", "150"},
	}, &image)
	if err != nil {
		return nil, err
	}

	var out domain.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID int) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+strconv.Itoa(categoryID), nil, nil, "", nil)
}

// MenuItemForm mirrors the multipart menu-item upload payload.
type MenuItemForm struct {
	Name         string
	Description  string
	Price        float64
	RestaurantID int
	CategoryID   int
	Image        FileUpload
}

func (c *Client) CreateMenuItem(ctx context.Context, form MenuItemForm) (*domain.MenuItem, error) {
	body, contentType, err := multipartBody([][2]string{
		{"name", form.Name},
		{"description", form.Description},
		{"price", strconv.FormatFloat(form.Price, 'f', 2, 64)},
		{"restaurantId", strconv.Itoa(form.RestaurantID)},
		{"categoryId", strconv.Itoa(form.CategoryID)},
	}, &form.Image)
	if err != nil {
		return nil, err
	}

	var out domain.MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/menu-items", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type placeOrderRequest struct {
	domain.DeliveryDetails
	Items []domain.OrderItemRequest `json:"items"`
}

func (c *Client) PlaceOrder(ctx context.Context, details domain.DeliveryDetails, items []domain.OrderItemRequest) (*domain.PlaceOrderResult, error) {
	var out domain.PlaceOrderResult
	req := placeOrderRequest{DeliveryDetails: details, Items: items}
	if err := c.postJSON(ctx, "/api/orders/place", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.getJSON(ctx, "/api/orders/customer/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID int) error {
	return c.do(ctx, http.MethodPost, "/api/orders/"+strconv.Itoa(orderID)+"/cancel", nil, nil, "", nil)
}
