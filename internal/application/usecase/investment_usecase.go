package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// InvestmentUseCase CRUD de inversiones de capital. Misma forma que los
// gastos, pero el análisis las reporta en su propia categoría del desglose.
type InvestmentUseCase struct {
	investmentRepo repository.InvestmentRepository
}

// NewInvestmentUseCase construye el caso de uso.
func NewInvestmentUseCase(investmentRepo repository.InvestmentRepository) *InvestmentUseCase {
	return &InvestmentUseCase{investmentRepo: investmentRepo}
}

// Create registra una inversión.
func (uc *InvestmentUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validateExpense(in)
	if err != nil {
		return nil, err
	}
	investment := &entity.Investment{
		ID:          uuid.New().String(),
		Date:        date,
		Description: in.Description,
		Cost:        in.Cost,
		Supplier:    in.Supplier,
		Buyer:       in.Buyer,
		Casino:      in.Casino,
	}
	if err := uc.investmentRepo.Create(investment); err != nil {
		return nil, err
	}
	resp := toInvestmentResponse(investment)
	return &resp, nil
}

// List devuelve las inversiones del casino, más reciente primero.
func (uc *InvestmentUseCase) List(ctx context.Context, casino string) ([]dto.ExpenseResponse, error) {
	investments, err := uc.investmentRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(investments))
	for i := range investments {
		out = append(out, toInvestmentResponse(&investments[i]))
	}
	return out, nil
}

// Update edita una inversión existente.
func (uc *InvestmentUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validateExpense(in)
	if err != nil {
		return nil, err
	}
	investment, err := uc.investmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, domain.ErrNotFound
	}
	investment.Date = date
	investment.Description = in.Description
	investment.Cost = in.Cost
	investment.Supplier = in.Supplier
	investment.Buyer = in.Buyer
	investment.Casino = in.Casino
	if err := uc.investmentRepo.Update(investment); err != nil {
		return nil, err
	}
	resp := toInvestmentResponse(investment)
	return &resp, nil
}

// Delete elimina una inversión.
func (uc *InvestmentUseCase) Delete(ctx context.Context, id string) error {
	investment, err := uc.investmentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if investment == nil {
		return domain.ErrNotFound
	}
	return uc.investmentRepo.Delete(id)
}

func toInvestmentResponse(inv *entity.Investment) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          inv.ID,
		Date:        inv.Date.Format(expenseDateLayout),
		Description: inv.Description,
		Cost:        inv.Cost,
		Supplier:    inv.Supplier,
		Buyer:       inv.Buyer,
		Casino:      inv.Casino,
	}
}
