package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a purchase record in the orders collection. Apart from the buyer
// the payload (food reference, amount, pickup details) is kept as submitted.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BuyerEmail string             `bson:"buyerEmail"`
	Attributes JSONMap            `bson:",inline"`
}

const (
	OrderFieldID         = "_id"
	OrderFieldBuyerEmail = "buyerEmail"
)

type orderJSON struct {
	ID         primitive.ObjectID `json:"_id"`
	BuyerEmail string             `json:"buyerEmail"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	return marshalFlat(orderJSON{ID: o.ID, BuyerEmail: o.BuyerEmail}, o.Attributes)
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var in struct {
		BuyerEmail string `json:"buyerEmail"`
	}
	extra, err := unmarshalFlat(data, &in, "_id", "id", "buyerEmail")
	if err != nil {
		return err
	}
	o.BuyerEmail = in.BuyerEmail
	o.Attributes = extra
	return nil
}
