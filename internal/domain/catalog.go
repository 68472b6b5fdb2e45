package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size is the closed set of product sizes.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

func (s Size) Valid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`
}

// Product references its owning category by id; listings denormalize the
// category name/image via an aggregation lookup.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	CategoryID  primitive.ObjectID `bson:"category" json:"categoryId"`
	Image       string             `bson:"image" json:"image"`
	Size        Size               `bson:"size" json:"size"`
	Category    *Category          `bson:"categoryDoc,omitempty" json:"category,omitempty"`
}

type OrderItem struct {
	Quantity  int                `bson:"quantity" json:"quantity"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	Shipment   string             `bson:"shipment" json:"shipment"`
	PriceSum   float64            `bson:"priceSum" json:"priceSum"`
	OrderItems []OrderItem        `bson:"orderItems" json:"orderItems"`
}
