package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusPending = "pending"

// LineItem is a snapshot of one product at order time. It copies brand,
// model and price so later catalog changes never alter a past order.
type LineItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Brand     string  `bson:"brand" json:"brand"`
	Model     string  `bson:"model" json:"model"`
	Price     float64 `bson:"price" json:"price"`
	Qty       int     `bson:"qty" json:"qty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is the persisted order document. Orders are immutable once created.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Email        string             `bson:"email" json:"email"`
	Address      string             `bson:"address" json:"address"`
	City         string             `bson:"city" json:"city"`
	Country      string             `bson:"country" json:"country"`
	Items        []LineItem         `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
