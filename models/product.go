package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a phone document in the catalog. Validate tags define the
// write-time schema: brand and model are required, price and stock must be
// non-negative.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Model       string             `bson:"model" json:"model" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Stock       int                `bson:"stock" json:"stock" validate:"gte=0"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Colors      []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Storage     []string           `bson:"storage,omitempty" json:"storage,omitempty"`
	Screen      string             `bson:"screen,omitempty" json:"screen,omitempty"`
	Battery     string             `bson:"battery,omitempty" json:"battery,omitempty"`
	Camera      string             `bson:"camera,omitempty" json:"camera,omitempty"`
}
