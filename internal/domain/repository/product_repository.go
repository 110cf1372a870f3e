package repository

import (
	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una
	// transacción; único punto de lectura para mutaciones del ledger.
	GetForUpdate(id string) (*entity.Product, error)
	GetByBarcode(code, casino string) (*entity.Product, error)
	ListByCasino(casino string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo la existencia (usada por el ledger).
	UpdateQuantity(productID string, quantity decimal.Decimal) error
	Delete(id string) error
}
