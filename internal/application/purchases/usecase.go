package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/inventory"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/receipt"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// UseCase registra compras multi-línea de forma transaccional. Las compras
// solo suman existencias, así que nunca fallan por stock; sí fallan si alguna
// línea referencia un producto inexistente.
type UseCase struct {
	txRunner     inventory.TxRunner
	purchaseRepo repository.PurchaseRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner inventory.TxRunner, purchaseRepo repository.PurchaseRepository) *UseCase {
	return &UseCase{txRunner: txRunner, purchaseRepo: purchaseRepo}
}

// RecordPurchase suma stock por cada línea del carrito y persiste las líneas
// bajo un recibo nuevo compartido. Atómico: producto desconocido en cualquier
// línea aborta la orden completa (domain.ErrProductNotFound).
func (uc *UseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.RecordPurchaseResponse, error) {
	if len(in.Cart) == 0 || in.Supplier == "" || in.Buyer == "" || in.Casino == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Cart {
		if line.ProductID == "" || !line.Quantity.IsPositive() || line.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	receiptID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ConsumptionRepository,
	) error {
		ledger := inventory.NewLedger(productRepo)
		for _, line := range in.Cart {
			if _, err := ledger.Adjust(line.ProductID, line.Quantity); err != nil {
				return err
			}
			purchase := &entity.Purchase{
				ID:        uuid.New().String(),
				ReceiptID: receiptID,
				Date:      now,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitCost:  line.UnitCost,
				Supplier:  in.Supplier,
				Buyer:     in.Buyer,
				Casino:    in.Casino,
			}
			if err := purchaseRepo.Create(purchase); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordPurchaseResponse{ReceiptID: receiptID}, nil
}

// ListReceipts devuelve las órdenes de compra del casino, agrupadas.
func (uc *UseCase) ListReceipts(ctx context.Context, casino string) ([]dto.PurchaseReceiptResponse, error) {
	lines, err := uc.purchaseRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	groups := receipt.GroupPurchases(lines)

	out := make([]dto.PurchaseReceiptResponse, 0, len(groups))
	for _, g := range groups {
		r := dto.PurchaseReceiptResponse{
			ReceiptID: g.ReceiptID,
			Date:      g.Date,
			Supplier:  g.Supplier,
			Buyer:     g.Buyer,
			Total:     g.Total,
		}
		for _, line := range g.Lines {
			r.Lines = append(r.Lines, dto.PurchaseLineResponse{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitCost,
			})
		}
		out = append(out, r)
	}
	return out, nil
}
