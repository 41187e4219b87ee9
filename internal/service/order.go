package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/repositories"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
)

type orderService struct {
	orderRepo  repositories.OrderRepository
	authorizer services.ResourceAuthorizer
	logger     *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) services.OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// CreateOrder stores an order on behalf of the principal
func (s *orderService) CreateOrder(ctx context.Context, principal *models.Principal, order *models.Order) (*models.Order, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order is required", domain.ErrValidation)
	}

	if order.BuyerEmail != "" && order.BuyerEmail != principal.Email {
		s.logger.Warn("order buyerEmail overridden by token identity",
			"submitted", order.BuyerEmail,
			"principal", principal.Email,
		)
	}
	order.ID = primitive.NilObjectID
	order.BuyerEmail = principal.Email

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created", "id", order.ID.Hex(), "buyer", order.BuyerEmail)
	return order, nil
}

// ListOrdersByBuyer lists the principal's own orders
func (s *orderService) ListOrdersByBuyer(ctx context.Context, principal *models.Principal, email string) ([]models.Order, error) {
	if err := s.authorizer.CanAccessOwnerScope(principal, email); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByBuyer(ctx, email)
}

// DeleteOrder removes an order if the principal placed it
func (s *orderService) DeleteOrder(ctx context.Context, principal *models.Principal, id string) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}

	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.authorizer.CanAccessOrder(ctx, principal, oid); err != nil {
		s.logger.Debug("order delete refused", "id", id, "principal", principal.Email, "error", err)
		return err
	}

	deleted, err := s.orderRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	// Gone between the read and the delete
	if deleted == 0 {
		return &domain.NotFoundError{Resource: "order", ID: id}
	}

	s.logger.Info("order deleted", "id", id, "buyer", principal.Email)
	return nil
}
