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

const expenseDateLayout = "2006-01-02"

// ExpenseUseCase CRUD de gastos puntuales. Sin efecto sobre inventario;
// solo entran al análisis como parte del costo total.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validateExpense(in)
	if err != nil {
		return nil, err
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Date:        date,
		Description: in.Description,
		Cost:        in.Cost,
		Supplier:    in.Supplier,
		Buyer:       in.Buyer,
		Casino:      in.Casino,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List devuelve los gastos del casino, más reciente primero.
func (uc *ExpenseUseCase) List(ctx context.Context, casino string) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.expenseRepo.ListByCasino(casino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

// Update edita un gasto existente.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validateExpense(in)
	if err != nil {
		return nil, err
	}
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	expense.Date = date
	expense.Description = in.Description
	expense.Cost = in.Cost
	expense.Supplier = in.Supplier
	expense.Buyer = in.Buyer
	expense.Casino = in.Casino
	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

func validateExpense(in dto.ExpenseRequest) (time.Time, error) {
	if in.Description == "" || in.Supplier == "" || in.Buyer == "" || in.Casino == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() {
		return time.Time{}, domain.ErrInvalidInput
	}
	date, err := time.Parse(expenseDateLayout, in.Date)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return date, nil
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format(expenseDateLayout),
		Description: e.Description,
		Cost:        e.Cost,
		Supplier:    e.Supplier,
		Buyer:       e.Buyer,
		Casino:      e.Casino,
	}
}
