package dto

import "time"

// CreateMovementRequest body para POST /api/v1/stock/in y /api/v1/stock/out.
// Type debe coincidir con el endpoint elegido; la inconsistencia se rechaza
// en el handler antes de invocar el motor.
type CreateMovementRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason,omitempty"`
}

// MovementProduct snapshot del producto dentro de una respuesta de movimiento.
type MovementProduct struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// MovementResponse salida de un movimiento registrado o consultado.
type MovementResponse struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Quantity  int64            `json:"quantity"`
	Reason    string           `json:"reason,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *MovementProduct `json:"product,omitempty"`
}

// RegisterMovementResponse salida de POST /stock/in y /stock/out:
// el movimiento creado y el producto con la cantidad posterior.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Product  ProductResponse  `json:"product"`
}
