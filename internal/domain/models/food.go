package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contributor identifies who shared a food item. Email is the owner identity;
// any other fields (name, photo, ...) are kept as submitted.
type Contributor struct {
	Email      string  `bson:"email"`
	Attributes JSONMap `bson:",inline"`
}

type contributorJSON struct {
	Email string `json:"email"`
}

func (c Contributor) MarshalJSON() ([]byte, error) {
	return marshalFlat(contributorJSON{Email: c.Email}, c.Attributes)
}

func (c *Contributor) UnmarshalJSON(data []byte) error {
	var in contributorJSON
	extra, err := unmarshalFlat(data, &in, "email")
	if err != nil {
		return err
	}
	c.Email = in.Email
	c.Attributes = extra
	return nil
}

// Food is a shared food item in the foods collection.
type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FoodName      string             `bson:"foodName"`
	Quantity      int                `bson:"quantity"`
	PurchaseCount int                `bson:"purchaseCount"`
	AddedBy       Contributor        `bson:"addedBy"`
	CreatedAt     time.Time          `bson:"createdAt"`
	Attributes    JSONMap            `bson:",inline"` // foodImage, pickupLocation, expiredDate, notes, ...
}

// Field names as stored; used to build filters, sorts and patches.
const (
	FoodFieldID            = "_id"
	FoodFieldName          = "foodName"
	FoodFieldQuantity      = "quantity"
	FoodFieldPurchaseCount = "purchaseCount"
	FoodFieldAddedBy       = "addedBy"
	FoodFieldOwnerEmail    = "addedBy.email"
	FoodFieldCreatedAt     = "createdAt"
)

type foodJSON struct {
	ID            primitive.ObjectID `json:"_id"`
	FoodName      string             `json:"foodName"`
	Quantity      int                `json:"quantity"`
	PurchaseCount int                `json:"purchaseCount"`
	AddedBy       Contributor        `json:"addedBy"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (f Food) MarshalJSON() ([]byte, error) {
	return marshalFlat(foodJSON{
		ID:            f.ID,
		FoodName:      f.FoodName,
		Quantity:      f.Quantity,
		PurchaseCount: f.PurchaseCount,
		AddedBy:       f.AddedBy,
		CreatedAt:     f.CreatedAt,
	}, f.Attributes)
}

// UnmarshalJSON reads a client payload. Identifier, createdAt and
// purchaseCount are never taken from the client. Quantity may be any whole
// JSON number (10 or 10.0).
func (f *Food) UnmarshalJSON(data []byte) error {
	var in struct {
		FoodName string      `json:"foodName"`
		Quantity interface{} `json:"quantity"`
		AddedBy  Contributor `json:"addedBy"`
	}
	extra, err := unmarshalFlat(data, &in, "_id", "id", "foodName", "quantity", "purchaseCount", "addedBy", "createdAt")
	if err != nil {
		return err
	}

	quantity := int64(0)
	if in.Quantity != nil {
		n, ok := WholeNumber(in.Quantity)
		if !ok {
			return fmt.Errorf("quantity must be a whole number, got %v", in.Quantity)
		}
		quantity = n
	}

	f.FoodName = in.FoodName
	f.Quantity = int(quantity)
	f.PurchaseCount = 0
	f.AddedBy = in.AddedBy
	f.Attributes = extra
	return nil
}

// FoodFilter narrows a food listing. Zero values mean "no constraint".
type FoodFilter struct {
	NameContains string // case-insensitive substring of foodName
	OwnerEmail   string // exact match on addedBy.email
}

// UpdateResult reports what an update-by-id touched.
type UpdateResult struct {
	Matched  int64
	Modified int64
}
