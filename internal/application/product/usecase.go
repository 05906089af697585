package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/lrava2023/ControlNyxForge/internal/application/dto"
	"github.com/lrava2023/ControlNyxForge/internal/domain"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
	"github.com/lrava2023/ControlNyxForge/internal/domain/repository"
)

// UseCase casos de uso CRUD para productos. Quantity solo se modifica vía
// el motor de movimientos; aquí únicamente se fija el stock de apertura.
type UseCase struct {
	repo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un nuevo producto. Stock es el balance de apertura (>= 0).
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Stock,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// GetStock devuelve el stock actual de un producto.
func (uc *UseCase) GetStock(id string) (*dto.ProductStockResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return &dto.ProductStockResponse{
		ProductID:    p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		CurrentStock: p.Quantity,
		IsActive:     p.IsActive,
	}, nil
}

// ListActive lista los productos activos (los desactivados quedan excluidos).
func (uc *UseCase) ListActive() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza nombre y descripción. No toca Quantity (motor de movimientos).
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// SoftDelete desactiva el producto (eliminación lógica). El producto sigue
// siendo referenciable por sus movimientos históricos.
func (uc *UseCase) SoftDelete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Deactivate(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Quantity,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
