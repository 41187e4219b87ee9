package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/mail"
	serviceAuth "github.com/yhsunny176/curee-restaurant-management-server-side/internal/service/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ownerAuthorizer(orders *fakeOrderRepo) services.ResourceAuthorizer {
	return serviceAuth.NewOwnerBasedAuthorizer(orders)
}

func principal(email string) *models.Principal {
	return &models.Principal{Subject: "uid-" + email, Email: email}
}

// fakeFoodRepo keeps foods in memory, in insertion order.
type fakeFoodRepo struct {
	foods   []*models.Food
	failErr error
	updates int
}

func (r *fakeFoodRepo) find(id primitive.ObjectID) *models.Food {
	for _, f := range r.foods {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (r *fakeFoodRepo) Create(_ context.Context, food *models.Food) error {
	if r.failErr != nil {
		return r.failErr
	}
	food.ID = primitive.NewObjectID()
	stored := *food
	r.foods = append(r.foods, &stored)
	return nil
}

func (r *fakeFoodRepo) List(_ context.Context, filter models.FoodFilter) ([]models.Food, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := []models.Food{}
	for i := len(r.foods) - 1; i >= 0; i-- {
		f := r.foods[i]
		if filter.OwnerEmail != "" && f.AddedBy.Email != filter.OwnerEmail {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFoodRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Food, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	f := r.find(id)
	if f == nil {
		return nil, &domain.NotFoundError{Resource: "food", ID: id.Hex()}
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFoodRepo) Update(_ context.Context, id primitive.ObjectID, patch models.JSONMap) (*models.UpdateResult, error) {
	r.updates++
	f := r.find(id)
	if f == nil {
		return nil, &domain.NotFoundError{Resource: "food", ID: id.Hex()}
	}
	if _, ok := patch["_id"]; ok {
		return nil, domain.NewValidationError("cannot update _id")
	}

	modified := false
	for k, v := range patch {
		switch k {
		case models.FoodFieldName:
			if f.FoodName != v {
				f.FoodName = v.(string)
				modified = true
			}
		case models.FoodFieldQuantity:
			if n := int(v.(int64)); f.Quantity != n {
				f.Quantity = n
				modified = true
			}
		default:
			if f.Attributes == nil {
				f.Attributes = models.JSONMap{}
			}
			if !reflect.DeepEqual(f.Attributes[k], v) {
				f.Attributes[k] = v
				modified = true
			}
		}
	}

	res := &models.UpdateResult{Matched: 1}
	if modified {
		res.Modified = 1
	}
	return res, nil
}

func (r *fakeFoodRepo) Purchase(_ context.Context, id primitive.ObjectID, amount int) error {
	f := r.find(id)
	if f == nil {
		return &domain.NotFoundError{Resource: "food", ID: id.Hex()}
	}
	if f.Quantity < amount {
		return domain.ErrInsufficientQuantity
	}
	f.Quantity -= amount
	f.PurchaseCount += amount
	return nil
}

// fakeOrderRepo keeps orders in memory.
type fakeOrderRepo struct {
	orders []*models.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	stored := *order
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, email string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range r.orders {
		if o.BuyerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "order", ID: id.Hex()}
}

func (r *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// recordingMailer captures sent messages.
type recordingMailer struct {
	sent []*mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg *mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errStorage = errors.New("connection reset by peer")
