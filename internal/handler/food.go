package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

// FoodHandler handles food HTTP requests
type FoodHandler struct {
	foodService services.FoodService
	logger      *slog.Logger
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(foodService services.FoodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		logger:      logger,
	}
}

// CreateFood adds a food owned by the caller
// POST /foods
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var food models.Food
	if !parseBody(w, r, &food) {
		return
	}

	created, err := h.foodService.CreateFood(r.Context(), httputil.GetPrincipal(r), &food)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondCreated(w, "Food added successfully", created.ID.Hex())
}

// ListFoods lists all foods, newest first
// GET /foods?search=
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodService.ListFoods(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, foods)
}

// ListMyFoods lists the foods the caller shared
// GET /my-foods/{email}
func (h *FoodHandler) ListMyFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodService.ListFoodsByOwner(r.Context(), httputil.GetPrincipal(r), r.PathValue("email"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, foods)
}

// GetFood returns one food
// GET /foods/{id}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.foodService.GetFood(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, food)
}

// UpdateFood sets the fields in the body on a food
// PUT /foods/{id}
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var patch models.JSONMap
	if !parseBody(w, r, &patch) {
		return
	}

	res, err := h.foodService.UpdateFood(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if !res.Modified {
		httputil.RespondMessage(w, http.StatusOK, "No changes made")
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "Food updated successfully")
}

// PurchaseFood buys purchaseAmount (default 1) of a food
// PATCH /food-purchase/{id}
func (h *FoodHandler) PurchaseFood(w http.ResponseWriter, r *http.Request) {
	var req services.PurchaseRequest
	// An empty body means the default amount
	if err := httputil.ParseJSON(w, r, &req); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.foodService.PurchaseFood(r.Context(), r.PathValue("id"), &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Purchase successful")
}
