package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/application/inventory"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// Adaptadores finos que exponen el Store a través de los puertos de dominio.

var (
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.SaleRepository        = (*SaleRepo)(nil)
	_ repository.PurchaseRepository    = (*PurchaseRepo)(nil)
	_ repository.ExpenseRepository     = (*ExpenseRepo)(nil)
	_ repository.InvestmentRepository  = (*InvestmentRepo)(nil)
	_ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)
	_ inventory.TxRunner               = (*TxRunner)(nil)
)

// ProductRepo adaptador de productos sobre el Store.
type ProductRepo struct{ s *Store }

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(p *entity.Product) error          { return r.s.CreateProduct(p) }
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) { return r.s.GetProductByID(id) }
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.GetProductForUpdate(id)
}
func (r *ProductRepo) GetByBarcode(code, casino string) (*entity.Product, error) {
	return r.s.GetProductByBarcode(code, casino)
}
func (r *ProductRepo) ListByCasino(casino string) ([]*entity.Product, error) {
	return r.s.ListProductsByCasino(casino)
}
func (r *ProductRepo) Update(p *entity.Product) error { return r.s.UpdateProduct(p) }
func (r *ProductRepo) UpdateQuantity(productID string, quantity decimal.Decimal) error {
	return r.s.UpdateProductQuantity(productID, quantity)
}
func (r *ProductRepo) Delete(id string) error { return r.s.DeleteProduct(id) }

// SaleRepo adaptador de líneas de venta.
type SaleRepo struct{ s *Store }

// NewSaleRepository construye el adaptador.
func NewSaleRepository(s *Store) *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(sale *entity.Sale) error { return r.s.CreateSale(sale) }
func (r *SaleRepo) ListByCasino(casino string) ([]entity.Sale, error) {
	return r.s.ListSalesByCasino(casino)
}
func (r *SaleRepo) ExistsForProduct(productID string) (bool, error) {
	return r.s.SaleExistsForProduct(productID)
}

// PurchaseRepo adaptador de líneas de compra.
type PurchaseRepo struct{ s *Store }

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(s *Store) *PurchaseRepo { return &PurchaseRepo{s: s} }

func (r *PurchaseRepo) Create(purchase *entity.Purchase) error { return r.s.CreatePurchase(purchase) }
func (r *PurchaseRepo) ListByCasino(casino string) ([]entity.Purchase, error) {
	return r.s.ListPurchasesByCasino(casino)
}
func (r *PurchaseRepo) ExistsForProduct(productID string) (bool, error) {
	return r.s.PurchaseExistsForProduct(productID)
}

// ExpenseRepo adaptador de gastos.
type ExpenseRepo struct{ s *Store }

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(s *Store) *ExpenseRepo { return &ExpenseRepo{s: s} }

func (r *ExpenseRepo) Create(e *entity.Expense) error             { return r.s.CreateExpense(e) }
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) { return r.s.GetExpenseByID(id) }
func (r *ExpenseRepo) ListByCasino(casino string) ([]entity.Expense, error) {
	return r.s.ListExpensesByCasino(casino)
}
func (r *ExpenseRepo) Update(e *entity.Expense) error { return r.s.UpdateExpense(e) }
func (r *ExpenseRepo) Delete(id string) error         { return r.s.DeleteExpense(id) }

// InvestmentRepo adaptador de inversiones.
type InvestmentRepo struct{ s *Store }

// NewInvestmentRepository construye el adaptador.
func NewInvestmentRepository(s *Store) *InvestmentRepo { return &InvestmentRepo{s: s} }

func (r *InvestmentRepo) Create(inv *entity.Investment) error { return r.s.CreateInvestment(inv) }
func (r *InvestmentRepo) GetByID(id string) (*entity.Investment, error) {
	return r.s.GetInvestmentByID(id)
}
func (r *InvestmentRepo) ListByCasino(casino string) ([]entity.Investment, error) {
	return r.s.ListInvestmentsByCasino(casino)
}
func (r *InvestmentRepo) Update(inv *entity.Investment) error { return r.s.UpdateInvestment(inv) }
func (r *InvestmentRepo) Delete(id string) error              { return r.s.DeleteInvestment(id) }

// ConsumptionRepo adaptador de lotes de consumo.
type ConsumptionRepo struct{ s *Store }

// NewConsumptionRepository construye el adaptador.
func NewConsumptionRepository(s *Store) *ConsumptionRepo { return &ConsumptionRepo{s: s} }

func (r *ConsumptionRepo) CreateHeader(c *entity.Consumption) error { return r.s.CreateHeader(c) }
func (r *ConsumptionRepo) UpdateHeader(c *entity.Consumption) error { return r.s.UpdateHeader(c) }
func (r *ConsumptionRepo) DeleteHeader(id string) error             { return r.s.DeleteHeader(id) }
func (r *ConsumptionRepo) GetByID(id string) (*entity.Consumption, error) {
	return r.s.GetConsumptionByID(id)
}
func (r *ConsumptionRepo) ListByCasino(casino string) ([]entity.Consumption, error) {
	return r.s.ListConsumptionsByCasino(casino)
}
func (r *ConsumptionRepo) CreateItem(item *entity.ConsumptionItem) error { return r.s.CreateItem(item) }
func (r *ConsumptionRepo) ListItems(consumptionID string) ([]entity.ConsumptionItem, error) {
	return r.s.ListItems(consumptionID)
}
func (r *ConsumptionRepo) DeleteItems(consumptionID string) error {
	return r.s.DeleteItems(consumptionID)
}

// TxRunner en memoria: toma un snapshot del Store antes de ejecutar fn y lo
// restaura si fn falla, imitando el Commit/Rollback del runner de PostgreSQL.
// Un mutex serializa las "transacciones" completas.
type TxRunner struct {
	mu    sync.Mutex
	store *Store
}

// NewTxRunner construye el runner sobre un Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos sobre el Store; si fn devuelve error restaura el
// snapshot previo (nada del intento queda visible).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	consumptionRepo repository.ConsumptionRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.store.snapshot()
	err := fn(
		NewProductRepository(r.store),
		NewSaleRepository(r.store),
		NewPurchaseRepository(r.store),
		NewConsumptionRepository(r.store),
	)
	if err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
