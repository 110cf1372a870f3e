package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/inventory"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/receipt"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// UseCase registra ventas multi-línea de forma transaccional y lista los
// recibos agrupados. Una venta descuenta existencias vía el ledger, calcula
// el cambio y persiste todas las líneas con un mismo recibo; cualquier fallo
// hace Rollback y no sobrevive ninguna mutación parcial.
type UseCase struct {
	txRunner inventory.TxRunner
	saleRepo repository.SaleRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner inventory.TxRunner, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// RecordSale registra un checkout completo: valida el carrito, descuenta
// stock línea por línea (fila bloqueada), verifica el pago y persiste todas
// las líneas bajo un recibo nuevo. Todo dentro de una transacción.
//
// Errores de negocio: domain.ErrInsufficientStock cuando alguna línea pide
// más de lo disponible (o el producto ya no existe, igual que el sistema de
// caja original), domain.ErrInsufficientPayment cuando el pago no alcanza.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if len(in.Cart) == 0 || in.Seller == "" || in.Casino == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Cart {
		if line.ProductID == "" || !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	receiptID := uuid.New().String()
	var resp *dto.RecordSaleResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		_ repository.ConsumptionRepository,
	) error {
		ledger := inventory.NewLedger(productRepo)

		type pendingLine struct {
			productID string
			quantity  decimal.Decimal
			lineTotal decimal.Decimal
		}
		total := decimal.Zero
		lines := make([]pendingLine, 0, len(in.Cart))

		for _, line := range in.Cart {
			product, err := ledger.Adjust(line.ProductID, line.Quantity.Neg())
			if err != nil {
				if errors.Is(err, domain.ErrProductNotFound) {
					// El original trata producto inexistente como falta de stock.
					return domain.ErrInsufficientStock
				}
				return err
			}
			lineTotal := product.Price.Mul(line.Quantity)
			total = total.Add(lineTotal)
			lines = append(lines, pendingLine{
				productID: line.ProductID,
				quantity:  line.Quantity,
				lineTotal: lineTotal,
			})
		}

		change := in.Payment.Sub(total)
		if change.IsNegative() {
			return domain.ErrInsufficientPayment
		}

		for _, line := range lines {
			sale := &entity.Sale{
				ID:        uuid.New().String(),
				ReceiptID: receiptID,
				Date:      now,
				ProductID: line.productID,
				Quantity:  line.quantity,
				Total:     line.lineTotal,
				Payment:   in.Payment,
				Change:    change,
				Seller:    in.Seller,
				Casino:    in.Casino,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
		}

		resp = &dto.RecordSaleResponse{ReceiptID: receiptID, Total: total, Change: change}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListReceipts devuelve los recibos de venta del casino, agrupados. Las
// líneas llegan del repositorio ordenadas por (fecha DESC, recibo_id), el
// orden que exige el agrupador por adyacencia.
func (uc *UseCase) ListReceipts(ctx context.Context, casino string) ([]dto.SaleReceiptResponse, error) {
	lines, err := uc.saleRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	groups := receipt.GroupSales(lines)

	out := make([]dto.SaleReceiptResponse, 0, len(groups))
	for _, g := range groups {
		r := dto.SaleReceiptResponse{
			ReceiptID: g.ReceiptID,
			Date:      g.Date,
			Seller:    g.Seller,
			Payment:   g.Payment,
			Change:    g.Change,
			Total:     g.Total,
		}
		for _, line := range g.Lines {
			r.Lines = append(r.Lines, dto.SaleLineResponse{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Total:       line.Total,
			})
		}
		out = append(out, r)
	}
	return out, nil
}
