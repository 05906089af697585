package dto

import "time"

// CreateProductRequest entrada para crear un producto. Stock es el balance
// de apertura y solo puede fijarse aquí; después se mueve vía movimientos.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Stock       int64  `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku"`
	Stock       int64     `json:"stock"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductStockResponse stock actual de un producto.
type ProductStockResponse struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	CurrentStock int64  `json:"currentStock"`
	IsActive     bool   `json:"isActive"`
}
