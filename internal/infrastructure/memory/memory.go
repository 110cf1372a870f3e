// Package memory implementa todos los puertos de repositorio sobre mapas en
// memoria, más un TxRunner con snapshot/restore. Respaldo para tests de los
// casos de uso y para correr la API en modo demo sin PostgreSQL.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
)

// Store guarda todo el estado bajo un mutex. Los adaptadores de repos.go
// exponen este estado a través de los puertos de dominio, igual que los
// adaptadores de postgres lo hacen sobre un pool o una tx.
type Store struct {
	mu               sync.RWMutex
	products         map[string]entity.Product
	sales            []entity.Sale
	purchases        []entity.Purchase
	expenses         map[string]entity.Expense
	investments      map[string]entity.Investment
	consumptions     map[string]entity.Consumption // cabeceras, sin items
	consumptionItems map[string][]entity.ConsumptionItem
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		products:         make(map[string]entity.Product),
		expenses:         make(map[string]entity.Expense),
		investments:      make(map[string]entity.Investment),
		consumptions:     make(map[string]entity.Consumption),
		consumptionItems: make(map[string][]entity.ConsumptionItem),
	}
}

// ---------------------------------------------------------------------------
// ProductRepository

func (s *Store) CreateProduct(product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.Barcode != "" {
		for _, p := range s.products {
			if p.Barcode == product.Barcode {
				return domain.ErrDuplicate
			}
		}
	}
	s.products[product.ID] = *product
	return nil
}

func (s *Store) GetProductByID(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

// GetForUpdate en memoria no bloquea filas; el TxRunner serializa.
func (s *Store) GetProductForUpdate(id string) (*entity.Product, error) {
	return s.GetProductByID(id)
}

func (s *Store) GetProductByBarcode(code, casino string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Barcode == code && p.Casino == casino {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) ListProductsByCasino(casino string) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range s.products {
		if p.Casino == casino {
			cp := p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Store) UpdateProduct(product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *Store) UpdateProductQuantity(productID string, quantity decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = time.Now()
	s.products[productID] = p
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

// ---------------------------------------------------------------------------
// SaleRepository / PurchaseRepository

func (s *Store) CreateSale(sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, *sale)
	return nil
}

func (s *Store) ListSalesByCasino(casino string) ([]entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []entity.Sale
	for _, v := range s.sales {
		if v.Casino == casino {
			list = append(list, v)
		}
	}
	sortByDateDescReceipt(list, func(x entity.Sale) (time.Time, string) { return x.Date, x.ReceiptID })
	return list, nil
}

func (s *Store) SaleExistsForProduct(productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.sales {
		if v.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreatePurchase(purchase *entity.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, *purchase)
	return nil
}

func (s *Store) ListPurchasesByCasino(casino string) ([]entity.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []entity.Purchase
	for _, c := range s.purchases {
		if c.Casino == casino {
			list = append(list, c)
		}
	}
	sortByDateDescReceipt(list, func(x entity.Purchase) (time.Time, string) { return x.Date, x.ReceiptID })
	return list, nil
}

func (s *Store) PurchaseExistsForProduct(productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.purchases {
		if c.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// sortByDateDescReceipt replica el ORDER BY (fecha DESC, recibo_id) de los
// listados SQL, la precondición del agrupador de recibos.
func sortByDateDescReceipt[T any](list []T, key func(T) (time.Time, string)) {
	sort.SliceStable(list, func(i, j int) bool {
		di, ri := key(list[i])
		dj, rj := key(list[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return ri < rj
	})
}

// ---------------------------------------------------------------------------
// ExpenseRepository / InvestmentRepository

func (s *Store) CreateExpense(expense *entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[expense.ID] = *expense
	return nil
}

func (s *Store) GetExpenseByID(id string) (*entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := e
	return &cp, nil
}

func (s *Store) ListExpensesByCasino(casino string) ([]entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []entity.Expense
	for _, e := range s.expenses {
		if e.Casino == casino {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *Store) UpdateExpense(expense *entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[expense.ID]; !ok {
		return domain.ErrNotFound
	}
	s.expenses[expense.ID] = *expense
	return nil
}

func (s *Store) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expenses, id)
	return nil
}

func (s *Store) CreateInvestment(investment *entity.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investments[investment.ID] = *investment
	return nil
}

func (s *Store) GetInvestmentByID(id string) (*entity.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.investments[id]
	if !ok {
		return nil, nil
	}
	cp := inv
	return &cp, nil
}

func (s *Store) ListInvestmentsByCasino(casino string) ([]entity.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []entity.Investment
	for _, inv := range s.investments {
		if inv.Casino == casino {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *Store) UpdateInvestment(investment *entity.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments[investment.ID]; !ok {
		return domain.ErrNotFound
	}
	s.investments[investment.ID] = *investment
	return nil
}

func (s *Store) DeleteInvestment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.investments, id)
	return nil
}

// ---------------------------------------------------------------------------
// ConsumptionRepository

func (s *Store) CreateHeader(c *entity.Consumption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	header := *c
	header.Items = nil
	s.consumptions[c.ID] = header
	return nil
}

func (s *Store) UpdateHeader(c *entity.Consumption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consumptions[c.ID]; !ok {
		return domain.ErrNotFound
	}
	header := *c
	header.Items = nil
	s.consumptions[c.ID] = header
	return nil
}

func (s *Store) DeleteHeader(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.consumptions, id)
	return nil
}

func (s *Store) GetConsumptionByID(id string) (*entity.Consumption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.consumptions[id]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.Items = append([]entity.ConsumptionItem(nil), s.consumptionItems[id]...)
	return &cp, nil
}

func (s *Store) ListConsumptionsByCasino(casino string) ([]entity.Consumption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []entity.Consumption
	for id, c := range s.consumptions {
		if c.Casino != casino {
			continue
		}
		cp := c
		cp.Items = append([]entity.ConsumptionItem(nil), s.consumptionItems[id]...)
		list = append(list, cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *Store) CreateItem(item *entity.ConsumptionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumptionItems[item.ConsumptionID] = append(s.consumptionItems[item.ConsumptionID], *item)
	return nil
}

func (s *Store) ListItems(consumptionID string) ([]entity.ConsumptionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.ConsumptionItem(nil), s.consumptionItems[consumptionID]...), nil
}

func (s *Store) DeleteItems(consumptionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.consumptionItems, consumptionID)
	return nil
}

// ---------------------------------------------------------------------------
// snapshot / restore (rollback del TxRunner en memoria)

type snapshot struct {
	products         map[string]entity.Product
	sales            []entity.Sale
	purchases        []entity.Purchase
	expenses         map[string]entity.Expense
	investments      map[string]entity.Investment
	consumptions     map[string]entity.Consumption
	consumptionItems map[string][]entity.ConsumptionItem
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products:         make(map[string]entity.Product, len(s.products)),
		sales:            append([]entity.Sale(nil), s.sales...),
		purchases:        append([]entity.Purchase(nil), s.purchases...),
		expenses:         make(map[string]entity.Expense, len(s.expenses)),
		investments:      make(map[string]entity.Investment, len(s.investments)),
		consumptions:     make(map[string]entity.Consumption, len(s.consumptions)),
		consumptionItems: make(map[string][]entity.ConsumptionItem, len(s.consumptionItems)),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.expenses {
		snap.expenses[k] = v
	}
	for k, v := range s.investments {
		snap.investments[k] = v
	}
	for k, v := range s.consumptions {
		snap.consumptions[k] = v
	}
	for k, v := range s.consumptionItems {
		snap.consumptionItems[k] = append([]entity.ConsumptionItem(nil), v...)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.sales = snap.sales
	s.purchases = snap.purchases
	s.expenses = snap.expenses
	s.investments = snap.investments
	s.consumptions = snap.consumptions
	s.consumptionItems = snap.consumptionItems
}
