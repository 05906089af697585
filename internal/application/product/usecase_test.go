package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrava2023/ControlNyxForge/internal/application/dto"
	"github.com/lrava2023/ControlNyxForge/internal/domain"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria, suficiente para el CRUD.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if existing, ok := r.products[p.ID]; ok {
		existing.Name = p.Name
		existing.Description = p.Description
		existing.UpdatedAt = p.UpdatedAt
	}
	return nil
}

func (r *fakeProductRepo) AdjustQuantity(id string, delta int64) (*entity.Product, error) {
	p := r.products[id]
	p.Quantity += delta
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.IsActive {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

func TestCreate_ConStockDeApertura(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{Name: "Laptop Gamer", SKU: "LAP-001", Stock: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(10), out.Stock)
	assert.True(t, out.IsActive)
}

func TestCreate_SKUDuplicado(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", SKU: "LAP-001"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Otra laptop", SKU: "LAP-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_DatosInvalidos(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "", SKU: "SKU-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Producto", SKU: "SKU-1", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el stock de apertura no puede ser negativo")
}

func TestSoftDelete_ExcluyeDeListado(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", SKU: "LAP-001"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Name: "Mouse", SKU: "MOU-001"})
	require.NoError(t, err)

	require.NoError(t, uc.SoftDelete(created.ID))

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mouse", list[0].Name)

	// El producto desactivado sigue siendo consultable por ID.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestSoftDelete_ProductoInexistente(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())
	assert.ErrorIs(t, uc.SoftDelete("no-existe"), domain.ErrProductNotFound)
}

func TestUpdate_NoTocaStock(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", SKU: "LAP-001", Stock: 7})
	require.NoError(t, err)

	name := "Laptop Pro"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", out.Name)
	assert.Equal(t, int64(7), out.Stock)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	name := "x"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGetStock(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Laptop", SKU: "LAP-001", Stock: 12})
	require.NoError(t, err)

	out, err := uc.GetStock(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.CurrentStock)
	assert.Equal(t, "LAP-001", out.SKU)

	_, err = uc.GetStock("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
