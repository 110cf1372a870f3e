package repository

import "github.com/yosyfood/yosyfood-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos.
// GetByID devuelve (nil, nil) si no existe.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByCasino(casino string) ([]entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}

// InvestmentRepository puerto de persistencia para inversiones.
type InvestmentRepository interface {
	Create(investment *entity.Investment) error
	GetByID(id string) (*entity.Investment, error)
	ListByCasino(casino string) ([]entity.Investment, error)
	Update(investment *entity.Investment) error
	Delete(id string) error
}
