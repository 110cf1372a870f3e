package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// ProductUseCase CRUD de insumos y búsqueda por código de barras.
// La edición directa (incluida la cantidad) no pasa por el ledger: el sistema
// confía en las correcciones manuales del encargado.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create registra un insumo nuevo. Código de barras duplicado →
// domain.ErrDuplicate (constraint único en BD).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Unit == "" || in.Casino == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Barcode:   in.Barcode,
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Minimum:   in.Minimum,
		Price:     in.Price,
		Casino:    in.Casino,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID devuelve un insumo o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// FindByCode busca por código de barras dentro de un casino (lector de
// códigos en el punto de venta).
func (uc *ProductUseCase) FindByCode(ctx context.Context, code, casino string) (*dto.ProductResponse, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByBarcode(code, casino)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve los insumos del casino ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context, casino string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update edita un insumo campo a campo (solo los presentes en el request).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Minimum != nil {
		product.Minimum = *in.Minimum
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Casino != nil {
		product.Casino = *in.Casino
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina un insumo sin historial. Con ventas o compras registradas
// devuelve domain.ErrHasHistory y no toca nada: las líneas históricas
// referencian el producto y borrarlo las dejaría huérfanas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	hasSales, err := uc.saleRepo.ExistsForProduct(id)
	if err != nil {
		return err
	}
	hasPurchases, err := uc.purchaseRepo.ExistsForProduct(id)
	if err != nil {
		return err
	}
	if hasSales || hasPurchases {
		return domain.ErrHasHistory
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Unit:      p.Unit,
		Minimum:   p.Minimum,
		Price:     p.Price,
		Casino:    p.Casino,
		UpdatedAt: p.UpdatedAt,
	}
}
