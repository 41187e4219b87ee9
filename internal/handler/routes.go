package handler

import "net/http"

// Handlers groups the route handlers served by the API.
type Handlers struct {
	Food    *FoodHandler
	Order   *OrderHandler
	Contact *ContactHandler
	Health  *HealthHandler
}

// NewRouter registers every route. requireAuth wraps the routes that act on
// behalf of a signed-in user.
func NewRouter(h *Handlers, requireAuth func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	authed := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	// Liveness and health
	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Food routes
	mux.HandleFunc("GET /foods", h.Food.ListFoods)
	mux.HandleFunc("GET /foods/{id}", h.Food.GetFood)
	mux.Handle("POST /foods", authed(h.Food.CreateFood))
	mux.Handle("PUT /foods/{id}", authed(h.Food.UpdateFood))
	mux.Handle("GET /my-foods/{email}", authed(h.Food.ListMyFoods))
	mux.Handle("PATCH /food-purchase/{id}", authed(h.Food.PurchaseFood))

	// Order routes
	mux.Handle("POST /orders", authed(h.Order.CreateOrder))
	mux.Handle("GET /my-orders/{email}", authed(h.Order.ListMyOrders))
	mux.Handle("DELETE /orders/{id}", authed(h.Order.DeleteOrder))

	// Contact form
	mux.HandleFunc("POST /send-email", h.Contact.SendEmail)

	return mux
}
