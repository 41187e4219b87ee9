package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

type mockFoodService struct {
	CreateFn      func(ctx context.Context, p *models.Principal, f *models.Food) (*models.Food, error)
	ListFn        func(ctx context.Context, search string) ([]models.Food, error)
	ListByOwnerFn func(ctx context.Context, p *models.Principal, email string) ([]models.Food, error)
	GetFn         func(ctx context.Context, id string) (*models.Food, error)
	UpdateFn      func(ctx context.Context, id string, patch models.JSONMap) (*services.UpdateFoodResult, error)
	PurchaseFn    func(ctx context.Context, id string, req *services.PurchaseRequest) error
}

func (m *mockFoodService) CreateFood(ctx context.Context, p *models.Principal, f *models.Food) (*models.Food, error) {
	return m.CreateFn(ctx, p, f)
}

func (m *mockFoodService) ListFoods(ctx context.Context, search string) ([]models.Food, error) {
	return m.ListFn(ctx, search)
}

func (m *mockFoodService) ListFoodsByOwner(ctx context.Context, p *models.Principal, email string) ([]models.Food, error) {
	return m.ListByOwnerFn(ctx, p, email)
}

func (m *mockFoodService) GetFood(ctx context.Context, id string) (*models.Food, error) {
	return m.GetFn(ctx, id)
}

func (m *mockFoodService) UpdateFood(ctx context.Context, id string, patch models.JSONMap) (*services.UpdateFoodResult, error) {
	return m.UpdateFn(ctx, id, patch)
}

func (m *mockFoodService) PurchaseFood(ctx context.Context, id string, req *services.PurchaseRequest) error {
	return m.PurchaseFn(ctx, id, req)
}

type mockOrderService struct {
	CreateFn      func(ctx context.Context, p *models.Principal, o *models.Order) (*models.Order, error)
	ListByBuyerFn func(ctx context.Context, p *models.Principal, email string) ([]models.Order, error)
	DeleteFn      func(ctx context.Context, p *models.Principal, id string) error
}

func (m *mockOrderService) CreateOrder(ctx context.Context, p *models.Principal, o *models.Order) (*models.Order, error) {
	return m.CreateFn(ctx, p, o)
}

func (m *mockOrderService) ListOrdersByBuyer(ctx context.Context, p *models.Principal, email string) ([]models.Order, error) {
	return m.ListByBuyerFn(ctx, p, email)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, p *models.Principal, id string) error {
	return m.DeleteFn(ctx, p, id)
}

type mockContactService struct {
	SendFn func(ctx context.Context, msg *models.ContactMessage) error
}

func (m *mockContactService) SendContactEmail(ctx context.Context, msg *models.ContactMessage) error {
	return m.SendFn(ctx, msg)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAuth accepts "Bearer <email>" and rejects everything else.
func testAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || email == "" {
			httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
			return
		}
		next.ServeHTTP(w, httputil.WithPrincipal(r, &models.Principal{Subject: "uid", Email: email}))
	})
}

type testServer struct {
	food    *mockFoodService
	order   *mockOrderService
	contact *mockContactService
	ping    pingFunc
	mux     *http.ServeMux
}

func newTestServer() *testServer {
	s := &testServer{
		food:    &mockFoodService{},
		order:   &mockOrderService{},
		contact: &mockContactService{},
		ping:    func(context.Context) error { return nil },
	}
	logger := discardLogger()
	store := pingFunc(func(ctx context.Context) error { return s.ping(ctx) })
	s.mux = NewRouter(&Handlers{
		Food:    NewFoodHandler(s.food, logger),
		Order:   NewOrderHandler(s.order, logger),
		Contact: NewContactHandler(s.contact, logger),
		Health:  NewHealthHandler(store, logger),
	}, testAuth)
	return s
}

func (s *testServer) do(t *testing.T, method, path, body, user string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}
