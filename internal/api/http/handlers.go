package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/domain"
	"foodexpress-storefront/internal/service"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

// Image uploads are restricted to these content types before any request
// leaves the storefront.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Sessions service.SessionServiceInterface
	Cart     service.CartServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Backend  service.BackendInterface
}

func NewHandler(sessions service.SessionServiceInterface, cart service.CartServiceInterface, catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, api service.BackendInterface) *Handler {
	return &Handler{
		Sessions: sessions,
		Cart:     cart,
		Catalog:  catalog,
		Orders:   orders,
		Backend:  api,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/login", h.loginPage).Methods("GET")
	r.HandleFunc("/login", h.login).Methods("POST")
	r.HandleFunc("/logout", h.logout).Methods("POST")
	r.HandleFunc("/signup", h.customerSignup).Methods("POST")
	r.HandleFunc("/restaurant/signup", h.restaurantSignup).Methods("POST")

	r.HandleFunc("/category/{categoryId:[0-9]+}", h.categoryPage).Methods("GET")
	r.HandleFunc("/restaurant/{restaurantId:[0-9]+}", h.restaurantPage).Methods("GET")

	r.HandleFunc("/cart", h.viewCart).Methods("GET")
	r.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/cart/items/{itemId:[0-9]+}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/cart/items/{itemId:[0-9]+}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/checkout", h.requireRole(domain.RoleCustomer, h.checkout)).Methods("POST")
	r.HandleFunc("/customer/dashboard", h.requireRole(domain.RoleCustomer, h.customerDashboard)).Methods("GET")
	r.HandleFunc("/orders/{orderId:[0-9]+}/cancel", h.requireRole(domain.RoleCustomer, h.cancelOrder)).Methods("POST")
	r.HandleFunc("/orders/{orderId:[0-9]+}/qrcode", h.requireRole(domain.RoleCustomer, h.orderQRCode)).Methods("GET")

	r.HandleFunc("/restaurant/dashboard", h.requireRole(domain.RoleRestaurant, h.restaurantDashboard)).Methods("GET")
	r.HandleFunc("/restaurant/menu-items", h.requireRole(domain.RoleRestaurant, h.createMenuItem)).Methods("POST")

	r.HandleFunc("/admin/categories", h.requireRole(domain.RoleAdmin, h.adminListCategories)).Methods("GET")
	r.HandleFunc("/admin/categories", h.requireRole(domain.RoleAdmin, h.adminCreateCategory)).Methods("POST")
	r.HandleFunc("/admin/categories/{categoryId:[0-9]+}", h.requireRole(domain.RoleAdmin, h.adminDeleteCategory)).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(h.notFound)
}

// requireRole is the access gate: only an initialized, authenticated session
// with the matching role reaches the page. Everything else goes to the login
// page with the originally requested path attached.
func (h *Handler) requireRole(role domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := h.Sessions.Current()
		if !session.Initialized {
			http.Error(w, "storefront is still initializing", http.StatusServiceUnavailable)
			return
		}
		if !session.Authenticated() || session.Role != role {
			h.redirectToLogin(w, r)
			return
		}
		next(w, r)
	}
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	query := url.Values{"from": {r.URL.Path}}
	http.Redirect(w, r, "/login?"+query.Encode(), http.StatusSeeOther)
}

// notFound sends unknown paths to the home page.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories":  h.Catalog.Categories(),
		"restaurants": h.Catalog.Restaurants(),
		"session":     h.Sessions.Current(),
	})
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loginRequired": true,
		"from":          r.URL.Query().Get("from"),
	})
}

type loginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	From     string      `json:"from,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	switch req.Role {
	case domain.RoleAdmin:
		if err := h.Sessions.LoginAdmin(r.Context(), req.Email, req.Password); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
	case domain.RoleCustomer, domain.RoleRestaurant:
		creds := domain.Credentials{Email: req.Email, Password: req.Password}
		var (
			auth *domain.AuthResponse
			err  error
		)
		if req.Role == domain.RoleCustomer {
			auth, err = h.Backend.CustomerLogin(r.Context(), creds)
		} else {
			auth, err = h.Backend.RestaurantLogin(r.Context(), creds)
		}
		if err != nil {
			h.writeBackendError(w, err)
			return
		}
		if err := h.Sessions.Login(r.Context(), auth.Token, req.Role, auth.UserID, auth.Name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Unknown account type", http.StatusBadRequest)
		return
	}

	session := h.Sessions.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"role":     session.Role,
		"userId":   session.UserID,
		"name":     session.Name,
		"redirect": loginRedirect(req.From, session.Role),
	})
}

// loginRedirect honors the recorded origin path when present; the role
// dashboard is the default. Best-effort only.
func loginRedirect(from string, role domain.Role) string {
	if from != "" {
		return from
	}
	switch role {
	case domain.RoleAdmin:
		return "/admin/categories"
	case domain.RoleRestaurant:
		return "/restaurant/dashboard"
	default:
		return "/customer/dashboard"
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

type customerSignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) customerSignup(w http.ResponseWriter, r *http.Request) {
	var req customerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		http.Error(w, "Passwords do not match", http.StatusBadRequest)
		return
	}

	auth, err := h.Backend.CustomerSignup(r.Context(), domain.CustomerSignup{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	if err := h.Sessions.Login(r.Context(), auth.Token, domain.RoleCustomer, auth.UserID, auth.Name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"userId":   auth.UserID,
		"name":     auth.Name,
		"redirect": "/customer/dashboard",
	})
}

func (h *Handler) restaurantSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	form := backend.RestaurantSignupForm{
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		PhysicalAddress: r.FormValue("physicalAddress"),
		Phone:           r.FormValue("phone"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
	}
	form.CategoryID, _ = strconv.Atoi(r.FormValue("categoryId"))

	if form.Name == "" || form.Email == "" || form.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}
	if form.Password != r.FormValue("confirmPassword") {
		http.Error(w, "Passwords do not match", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Please upload a restaurant image", http.StatusBadRequest)
		return
	}
	defer file.Close()
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}
	form.Image = backend.FileUpload{FieldName: "file", FileName: header.Filename, Content: file}

	auth, err := h.Backend.RestaurantSignup(r.Context(), form)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	if err := h.Sessions.Login(r.Context(), auth.Token, domain.RoleRestaurant, auth.UserID, auth.Name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"userId":   auth.UserID,
		"name":     auth.Name,
		"redirect": "/restaurant/dashboard",
	})
}

func (h *Handler) categoryPage(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(mux.Vars(r)["categoryId"])

	items, err := h.Backend.MenuItemsByCategory(r.Context(), categoryID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}

	response := map[string]interface{}{"menuItems": items}
	if category, ok := h.Catalog.Category(categoryID); ok {
		response["category"] = category
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) restaurantPage(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	restaurant, err := h.Backend.Restaurant(r.Context(), restaurantID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	items, err := h.Backend.MenuItemsByRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
		"menuItems":  items,
	})
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.ItemID <= 0 {
		http.Error(w, "Invalid menu item", http.StatusBadRequest)
		return
	}

	if err := h.Cart.Add(r.Context(), item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Cart.SetQuantity(r.Context(), itemID, req.Quantity); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	if err := h.Cart.Remove(r.Context(), itemID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w)
}

func (h *Handler) writeCart(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": h.Cart.Lines(),
		"total": h.Cart.Total(),
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var details domain.DeliveryDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Orders.Place(r.Context(), details, h.Cart.Lines())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) || errors.Is(err, service.ErrMissingDeliveryField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"orderId":              result.OrderID,
		"customerId":           result.CustomerID,
		"cancellationDeadline": result.CancellationDeadline,
		"qrcode":               "/orders/" + strconv.Itoa(result.OrderID) + "/qrcode",
		"redirect":             "/customer/dashboard",
	})
}

func (h *Handler) customerDashboard(w http.ResponseWriter, r *http.Request) {
	session := h.Sessions.Current()

	orders, err := h.Orders.Orders(r.Context(), session.UserID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":   session.Name,
		"orders": orders,
	})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	session := h.Sessions.Current()

	order, err := h.Orders.Cancel(r.Context(), session.UserID, orderID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	png, err := h.Orders.ConfirmationQR(orderID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) restaurantDashboard(w http.ResponseWriter, r *http.Request) {
	session := h.Sessions.Current()
	restaurantID, err := strconv.Atoi(session.UserID)
	if err != nil {
		http.Error(w, "Session does not identify a restaurant", http.StatusConflict)
		return
	}

	restaurant, err := h.Backend.Restaurant(r.Context(), restaurantID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	items, err := h.Backend.MenuItemsByRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":       session.Name,
		"restaurant": restaurant,
		"menuItems":  items,
	})
}

// createMenuItem takes the restaurant id from the session, not the request:
// an owner only ever uploads to their own menu.
func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	session := h.Sessions.Current()
	restaurantID, err := strconv.Atoi(session.UserID)
	if err != nil {
		http.Error(w, "Session does not identify a restaurant", http.StatusConflict)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	form := backend.MenuItemForm{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		RestaurantID: restaurantID,
	}
	form.CategoryID, _ = strconv.Atoi(r.FormValue("categoryId"))
	form.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)

	if form.Name == "" {
		http.Error(w, "Item name is required", http.StatusBadRequest)
		return
	}
	if form.Price <= 0 {
		http.Error(w, "Price must be greater than zero", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Please upload an item image", http.StatusBadRequest)
		return
	}
	defer file.Close()
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}
	form.Image = backend.FileUpload{FieldName: "file", FileName: header.Filename, Content: file}

	item, err := h.Backend.CreateMenuItem(r.Context(), form)
	if err != nil {
		h.writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) adminListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.Catalog.Categories(),
	})
}

func (h *Handler) adminCreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Please upload a category image", http.StatusBadRequest)
		return
	}
	defer file.Close()
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	category, err := h.Backend.CreateCategory(r.Context(), name, backend.FileUpload{
		FieldName: "file",
		FileName:  header.Filename,
		Content:   file,
	})
	if err != nil {
		h.writeBackendError(w, err)
		return
	}

	h.refreshCatalog(r)
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) adminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(mux.Vars(r)["categoryId"])

	if err := h.Backend.DeleteCategory(r.Context(), categoryID); err != nil {
		h.writeBackendError(w, err)
		return
	}

	h.refreshCatalog(r)
	w.WriteHeader(http.StatusNoContent)
}

// refreshCatalog keeps the shared snapshot in step after an admin mutation.
// A failed refresh leaves the previous snapshot, which is the cache's normal
// failure mode.
func (h *Handler) refreshCatalog(r *http.Request) {
	_ = h.Catalog.Refresh(r.Context())
}

// writeBackendError surfaces a backend 4xx message verbatim; everything else
// is a gateway-style failure.
func (h *Handler) writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
