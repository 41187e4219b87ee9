package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
)

func decodeEnvelope(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestFoodHandler_CreateFood(t *testing.T) {
	s := newTestServer()
	id := primitive.NewObjectID()
	var got *models.Food
	var gotPrincipal *models.Principal
	s.food.CreateFn = func(_ context.Context, p *models.Principal, f *models.Food) (*models.Food, error) {
		got, gotPrincipal = f, p
		f.ID = id
		return f, nil
	}

	rec := s.do(t, http.MethodPost, "/foods", `{"foodName":"Rice","quantity":10,"addedBy":{"name":"A","email":"x@x.com"},"foodImage":"rice.png"}`, "a@x.com")

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, true, env["success"])
	assert.Equal(t, id.Hex(), env["insertedId"])

	require.NotNil(t, got)
	assert.Equal(t, "a@x.com", gotPrincipal.Email)
	assert.Equal(t, "Rice", got.FoodName)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "A", got.AddedBy.Attributes["name"])
	assert.Equal(t, "rice.png", got.Attributes["foodImage"])
}

func TestFoodHandler_CreateFoodWholeFloatQuantity(t *testing.T) {
	s := newTestServer()
	var got *models.Food
	s.food.CreateFn = func(_ context.Context, _ *models.Principal, f *models.Food) (*models.Food, error) {
		got = f
		f.ID = primitive.NewObjectID()
		return f, nil
	}

	rec := s.do(t, http.MethodPost, "/foods", `{"foodName":"Rice","quantity":10.0}`, "a@x.com")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Quantity)

	rec = s.do(t, http.MethodPost, "/foods", `{"foodName":"Rice","quantity":2.5}`, "a@x.com")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFoodHandler_CreateFoodErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		user       string
		serviceErr error
		wantStatus int
	}{
		{"no credential", `{"foodName":"Rice"}`, "", nil, http.StatusUnauthorized},
		{"malformed body", `{"foodName":`, "a@x.com", nil, http.StatusBadRequest},
		{"validation", `{"quantity":1}`, "a@x.com", fmt.Errorf("%w: foodName: cannot be blank", domain.ErrValidation), http.StatusBadRequest},
		{"storage", `{"foodName":"Rice"}`, "a@x.com", errors.New("server selection timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.food.CreateFn = func(context.Context, *models.Principal, *models.Food) (*models.Food, error) {
				if tt.serviceErr == nil {
					t.Fatal("service should not be called")
				}
				return nil, tt.serviceErr
			}

			rec := s.do(t, http.MethodPost, "/foods", tt.body, tt.user)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec.Body.Bytes())
			assert.Equal(t, false, env["success"])
			assert.NotEmpty(t, env["message"])
			assert.NotContains(t, rec.Body.String(), "server selection")
		})
	}
}

func TestFoodHandler_ListFoods(t *testing.T) {
	s := newTestServer()
	var gotSearch string
	s.food.ListFn = func(_ context.Context, search string) ([]models.Food, error) {
		gotSearch = search
		return []models.Food{{
			ID:        primitive.NewObjectID(),
			FoodName:  "Chicken Biryani",
			Quantity:  4,
			AddedBy:   models.Contributor{Email: "a@x.com"},
			CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		}}, nil
	}

	rec := s.do(t, http.MethodGet, "/foods?search=chick", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chick", gotSearch)
	env := decodeEnvelope(t, rec.Body.Bytes())
	data := env["data"].([]interface{})
	require.Len(t, data, 1)
	food := data[0].(map[string]interface{})
	assert.Equal(t, "Chicken Biryani", food["foodName"])
	assert.Equal(t, "a@x.com", food["addedBy"].(map[string]interface{})["email"])
	assert.NotEmpty(t, food["_id"])
}

func TestFoodHandler_ListFoodsEmpty(t *testing.T) {
	s := newTestServer()
	s.food.ListFn = func(context.Context, string) ([]models.Food, error) {
		return []models.Food{}, nil
	}

	rec := s.do(t, http.MethodGet, "/foods", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestFoodHandler_ListMyFoods(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"own foods", nil, http.StatusOK},
		{"someone else's foods", domain.NewForbiddenError("forbidden: email does not match the authenticated user"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.food.ListByOwnerFn = func(_ context.Context, p *models.Principal, email string) ([]models.Food, error) {
				assert.Equal(t, "a@x.com", p.Email)
				assert.Equal(t, "b@x.com", email)
				if tt.serviceErr != nil {
					return nil, tt.serviceErr
				}
				return []models.Food{}, nil
			}

			rec := s.do(t, http.MethodGet, "/my-foods/b@x.com", "", "a@x.com")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("requires credential", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(t, http.MethodGet, "/my-foods/a@x.com", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFoodHandler_GetFood(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"found", nil, http.StatusOK, ""},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest, "Invalid ID format"},
		{"missing", &domain.NotFoundError{Resource: "food", ID: "abc"}, http.StatusNotFound, "food abc not found"},
		{"storage", errors.New("socket closed"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.food.GetFn = func(_ context.Context, id string) (*models.Food, error) {
				assert.Equal(t, "abc", id)
				if tt.serviceErr != nil {
					return nil, tt.serviceErr
				}
				return &models.Food{FoodName: "Rice"}, nil
			}

			rec := s.do(t, http.MethodGet, "/foods/abc", "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec.Body.Bytes())["message"])
			}
		})
	}
}

func TestFoodHandler_UpdateFood(t *testing.T) {
	tests := []struct {
		name     string
		modified bool
		wantMsg  string
	}{
		{"changed", true, "Food updated successfully"},
		{"unchanged", false, "No changes made"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.food.UpdateFn = func(_ context.Context, id string, patch models.JSONMap) (*services.UpdateFoodResult, error) {
				assert.Equal(t, "abc", id)
				assert.Equal(t, "Fried Rice", patch["foodName"])
				return &services.UpdateFoodResult{Modified: tt.modified}, nil
			}

			rec := s.do(t, http.MethodPut, "/foods/abc", `{"_id":"abc","foodName":"Fried Rice"}`, "a@x.com")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec.Body.Bytes())["message"])
		})
	}

	t.Run("body must be an object", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(t, http.MethodPut, "/foods/abc", `[1,2]`, "a@x.com")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFoodHandler_PurchaseFood(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount *int
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"explicit amount", `{"purchaseAmount":3}`, intPtr(3), nil, http.StatusOK, "Purchase successful"},
		{"empty body uses default", "", nil, nil, http.StatusOK, "Purchase successful"},
		{"insufficient quantity", `{"purchaseAmount":12}`, intPtr(12), domain.ErrInsufficientQuantity, http.StatusBadRequest, "Not enough quantity available"},
		{"missing food", `{}`, nil, &domain.NotFoundError{Resource: "food", ID: "abc"}, http.StatusNotFound, "food abc not found"},
		{"matched but not updated", `{"purchaseAmount":1}`, intPtr(1), errors.New("purchase abc: matched but not modified"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.food.PurchaseFn = func(_ context.Context, id string, req *services.PurchaseRequest) error {
				assert.Equal(t, "abc", id)
				assert.Equal(t, tt.wantAmount, req.PurchaseAmount)
				return tt.serviceErr
			}

			rec := s.do(t, http.MethodPatch, "/food-purchase/abc", tt.body, "a@x.com")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec.Body.Bytes())["message"])
		})
	}

	t.Run("non-integer amount", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(t, http.MethodPatch, "/food-purchase/abc", `{"purchaseAmount":"lots"}`, "a@x.com")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func intPtr(n int) *int { return &n }
