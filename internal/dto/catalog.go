package dto

import "github.com/muzahidswe/fs17-Backend-project/internal/domain"

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CreateProductRequest references the owning category by name; the service
// resolves it to an existing category or rejects the request.
type CreateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       float64     `json:"price" binding:"required,gte=0"`
	Description string      `json:"description" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	Image       string      `json:"image" binding:"required"`
	Size        domain.Size `json:"size" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string      `json:"name"`
	Price       *float64     `json:"price" binding:"omitempty,gte=0"`
	Description *string      `json:"description"`
	Image       *string      `json:"image"`
	Size        *domain.Size `json:"size"`
}

// ListProductsQuery binds the product listing query string.
type ListProductsQuery struct {
	Limit       int64   `form:"limit,default=10"`
	Offset      int64   `form:"offset,default=0"`
	SearchQuery string  `form:"searchQuery"`
	MinPrice    float64 `form:"minPrice"`
	MaxPrice    float64 `form:"maxPrice"`
}

type ProductListResponse struct {
	TotalCount int              `json:"totalCount"`
	Products   []domain.Product `json:"products"`
}

type OrderItemRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	ProductID string `json:"productId" binding:"required"`
}

type CreateOrderRequest struct {
	Shipment   string             `json:"shipment" binding:"required"`
	PriceSum   float64            `json:"priceSum" binding:"required,gte=0"`
	OrderItems []OrderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Shipment   *string             `json:"shipment"`
	PriceSum   *float64            `json:"priceSum" binding:"omitempty,gte=0"`
	OrderItems *[]OrderItemRequest `json:"orderItems" binding:"omitempty,min=1,dive"`
}
