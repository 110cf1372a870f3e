package consumption

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/inventory"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase administra lotes de consumo de refrigerios. Es la pieza más
// delicada del ledger: editar o borrar un lote exige deshacer exactamente un
// descuento multi-línea previo antes de aplicar el reemplazo, todo dentro de
// una transacción, de modo que nadie observe el estado intermedio revertido.
type UseCase struct {
	txRunner        inventory.TxRunner
	consumptionRepo repository.ConsumptionRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner inventory.TxRunner, consumptionRepo repository.ConsumptionRepository) *UseCase {
	return &UseCase{txRunner: txRunner, consumptionRepo: consumptionRepo}
}

// Create registra un lote nuevo: por cada línea de ratio calcula el descuento
// absoluto (ratio × cantidad_total), lo descuenta vía ledger y persiste el
// item ya multiplicado. El ratio en sí no se guarda; recuperarlo luego exige
// dividir por cantidad_total. Atómico: stock insuficiente en cualquier línea
// deja inventario y tablas como estaban.
func (uc *UseCase) Create(ctx context.Context, in dto.ConsumptionRequest) (*dto.ConsumptionResponse, error) {
	header, err := parseHeader(in)
	if err != nil {
		return nil, err
	}
	header.ID = uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error {
		if err := consumptionRepo.CreateHeader(&header); err != nil {
			return err
		}
		ledger := inventory.NewLedger(productRepo)
		items, err := applyLines(ledger, consumptionRepo, header.ID, header.TotalCount, in.Lines)
		if err != nil {
			return err
		}
		header.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(header)
	return &resp, nil
}

// Update reemplaza un lote: primero revierte cada item existente
// (cantidad de vuelta al inventario), borra los items, sobreescribe la
// cabecera y re-aplica las líneas nuevas contra las existencias YA
// revertidas — una línea del mismo insumo se valida contra stock que ya no
// incluye el consumo viejo. Si el re-apply falla por stock, el Rollback
// deshace también la reversión y el lote original queda intacto.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.ConsumptionRequest) (*dto.ConsumptionResponse, error) {
	header, err := parseHeader(in)
	if err != nil {
		return nil, err
	}
	header.ID = id

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error {
		existing, err := consumptionRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		ledger := inventory.NewLedger(productRepo)
		if err := reverseItems(ledger, existing.Items); err != nil {
			return err
		}
		if err := consumptionRepo.DeleteItems(id); err != nil {
			return err
		}
		if err := consumptionRepo.UpdateHeader(&header); err != nil {
			return err
		}
		items, err := applyLines(ledger, consumptionRepo, id, header.TotalCount, in.Lines)
		if err != nil {
			return err
		}
		header.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(header)
	return &resp, nil
}

// Delete revierte el efecto de cada item sobre el inventario y luego borra
// items y cabecera. Atómico: no puede restaurar stock y dejar el lote, ni al
// revés.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error {
		existing, err := consumptionRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		ledger := inventory.NewLedger(productRepo)
		if err := reverseItems(ledger, existing.Items); err != nil {
			return err
		}
		if err := consumptionRepo.DeleteItems(id); err != nil {
			return err
		}
		return consumptionRepo.DeleteHeader(id)
	})
}

// Get devuelve un lote con sus items.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.ConsumptionResponse, error) {
	c, err := uc.consumptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(*c)
	return &resp, nil
}

// List devuelve los lotes del casino, más reciente primero.
func (uc *UseCase) List(ctx context.Context, casino string) ([]dto.ConsumptionResponse, error) {
	list, err := uc.consumptionRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumptionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// applyLines convierte líneas de ratio en descuentos absolutos y los aplica.
// Las líneas con producto vacío o cantidad nula se omiten en silencio (filas
// vacías del formulario). Devuelve los items persistidos.
func applyLines(
	ledger *inventory.Ledger,
	consumptionRepo repository.ConsumptionRepository,
	consumptionID string,
	totalCount int64,
	lines []dto.RatioLine,
) ([]entity.ConsumptionItem, error) {
	factor := decimal.NewFromInt(totalCount)
	var items []entity.ConsumptionItem
	for _, line := range lines {
		if line.ProductID == "" || line.Ratio == nil {
			continue
		}
		amount := line.Ratio.Mul(factor)
		if !amount.IsPositive() {
			continue
		}
		if _, err := ledger.Adjust(line.ProductID, amount.Neg()); err != nil {
			return nil, err
		}
		item := entity.ConsumptionItem{
			ID:            uuid.New().String(),
			ConsumptionID: consumptionID,
			ProductID:     line.ProductID,
			Quantity:      amount,
		}
		if err := consumptionRepo.CreateItem(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// reverseItems devuelve al inventario la cantidad absoluta de cada item.
// Un producto borrado después del consumo se salta en silencio
// (Ledger.Reverse); el resto de la operación sigue.
func reverseItems(ledger *inventory.Ledger, items []entity.ConsumptionItem) error {
	for _, item := range items {
		if err := ledger.Reverse(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func parseHeader(in dto.ConsumptionRequest) (entity.Consumption, error) {
	if in.Description == "" || in.Responsible == "" || in.Casino == "" || in.TotalCount <= 0 {
		return entity.Consumption{}, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return entity.Consumption{}, domain.ErrInvalidInput
	}
	return entity.Consumption{
		Date:        date,
		Description: in.Description,
		TotalCount:  in.TotalCount,
		Responsible: in.Responsible,
		Casino:      in.Casino,
	}, nil
}

func toResponse(c entity.Consumption) dto.ConsumptionResponse {
	resp := dto.ConsumptionResponse{
		ID:          c.ID,
		Date:        c.Date.Format(dateLayout),
		Description: c.Description,
		TotalCount:  c.TotalCount,
		Responsible: c.Responsible,
		Casino:      c.Casino,
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, dto.ConsumptionItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}
	return resp
}
