package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/config"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/repositories"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
)

type foodService struct {
	foodRepo   repositories.FoodRepository
	authorizer services.ResourceAuthorizer
	logger     *slog.Logger
}

// NewFoodService creates a new food service
func NewFoodService(
	foodRepo repositories.FoodRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) services.FoodService {
	return &foodService{
		foodRepo:   foodRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// CreateFood stores a new food owned by the principal
func (s *foodService) CreateFood(ctx context.Context, principal *models.Principal, food *models.Food) (*models.Food, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateFood(food); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// The owner is whoever presented the token, never the payload
	food.ID = primitive.NilObjectID
	food.AddedBy.Email = principal.Email
	food.PurchaseCount = 0
	food.CreatedAt = time.Now().UTC()

	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}

	s.logger.Info("food created",
		"id", food.ID.Hex(),
		"name", food.FoodName,
		"quantity", food.Quantity,
		"owner", food.AddedBy.Email,
	)

	return food, nil
}

// ListFoods lists all foods newest first, optionally narrowed by name
func (s *foodService) ListFoods(ctx context.Context, search string) ([]models.Food, error) {
	return s.foodRepo.List(ctx, models.FoodFilter{NameContains: search})
}

// ListFoodsByOwner lists the principal's own foods
func (s *foodService) ListFoodsByOwner(ctx context.Context, principal *models.Principal, email string) ([]models.Food, error) {
	if err := s.authorizer.CanAccessOwnerScope(principal, email); err != nil {
		return nil, err
	}
	return s.foodRepo.List(ctx, models.FoodFilter{OwnerEmail: email})
}

// GetFood retrieves a food by ID
func (s *foodService) GetFood(ctx context.Context, id string) (*models.Food, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.foodRepo.GetByID(ctx, oid)
}

// UpdateFood sets the fields present in patch. Identifier fields are dropped;
// fields the server owns (createdAt, purchaseCount, addedBy) are rejected.
func (s *foodService) UpdateFood(ctx context.Context, id string, patch models.JSONMap) (*services.UpdateFoodResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	fields, err := normalizeFoodPatch(patch)
	if err != nil {
		return nil, err
	}

	// Nothing left to set: report "no changes" for an existing food
	if len(fields) == 0 {
		if _, err := s.foodRepo.GetByID(ctx, oid); err != nil {
			return nil, err
		}
		return &services.UpdateFoodResult{Modified: false}, nil
	}

	res, err := s.foodRepo.Update(ctx, oid, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("food updated",
		"id", id,
		"fields", len(fields),
		"modified", res.Modified > 0,
	)

	return &services.UpdateFoodResult{Modified: res.Modified > 0}, nil
}

// PurchaseFood takes purchaseAmount (default 1) out of the food's quantity
func (s *foodService) PurchaseFood(ctx context.Context, id string, req *services.PurchaseRequest) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}

	amount := 1
	if req != nil && req.PurchaseAmount != nil {
		amount = *req.PurchaseAmount
	}
	if amount < 1 || amount > config.MaxPurchaseAmount {
		return domain.NewValidationError("purchaseAmount must be between 1 and %d", config.MaxPurchaseAmount)
	}

	if err := s.foodRepo.Purchase(ctx, oid, amount); err != nil {
		return err
	}

	s.logger.Info("food purchased", "id", id, "amount", amount)
	return nil
}

func (s *foodService) validateFood(food *models.Food) error {
	if food == nil {
		return fmt.Errorf("food is required")
	}
	return validation.ValidateStruct(food,
		validation.Field(&food.FoodName,
			validation.Required,
			validation.Length(1, config.MaxFoodNameLength),
		),
		validation.Field(&food.Quantity, validation.Min(0)),
	)
}

// serverOwnedFoodFields are set by the service and never taken from a patch.
var serverOwnedFoodFields = map[string]bool{
	models.FoodFieldCreatedAt:     true,
	models.FoodFieldPurchaseCount: true,
	models.FoodFieldAddedBy:       true,
}

// normalizeFoodPatch copies patch without identifier fields and checks the
// fields the server reasons about. JSON numbers arrive as float64; quantity
// is stored as an integer.
func normalizeFoodPatch(patch models.JSONMap) (models.JSONMap, error) {
	fields := make(models.JSONMap, len(patch))
	for k, v := range patch {
		if k == models.FoodFieldID || k == "id" {
			continue
		}
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			return nil, domain.NewValidationError("invalid field name %q", k)
		}
		if serverOwnedFoodFields[k] {
			return nil, domain.NewValidationError("%s cannot be updated", k)
		}
		fields[k] = v
	}

	if v, ok := fields[models.FoodFieldName]; ok {
		name, isString := v.(string)
		if !isString || name == "" || len(name) > config.MaxFoodNameLength {
			return nil, domain.NewValidationError("foodName must be a non-empty string of at most %d characters", config.MaxFoodNameLength)
		}
	}

	if v, ok := fields[models.FoodFieldQuantity]; ok {
		n, ok := models.WholeNumber(v)
		if !ok || n < 0 {
			return nil, domain.NewValidationError("quantity must be a non-negative integer")
		}
		fields[models.FoodFieldQuantity] = n
	}

	return fields, nil
}
