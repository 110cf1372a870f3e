package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var (
	_ repository.ExpenseRepository    = (*ExpenseRepo)(nil)
	_ repository.InvestmentRepository = (*InvestmentRepo)(nil)
)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, date, description, cost, supplier, buyer, casino)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Date, expense.Description, expense.Cost,
		expense.Supplier, expense.Buyer, expense.Casino,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `
		SELECT id, date, description, cost, supplier, buyer, casino
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Date, &e.Description, &e.Cost, &e.Supplier, &e.Buyer, &e.Casino)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepo) ListByCasino(casino string) ([]entity.Expense, error) {
	query := `
		SELECT id, date, description, cost, supplier, buyer, casino
		FROM expenses WHERE casino = $1
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, casino)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Cost,
			&e.Supplier, &e.Buyer, &e.Casino); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses
		SET date = $2, description = $3, cost = $4, supplier = $5, buyer = $6, casino = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Date, expense.Description, expense.Cost,
		expense.Supplier, expense.Buyer, expense.Casino,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// InvestmentRepo implementación de InvestmentRepository sobre PostgreSQL.
// Misma forma que los gastos pero tabla separada: el análisis los reporta
// como categorías distintas del desglose de costos.
type InvestmentRepo struct {
	q Querier
}

func NewInvestmentRepository(q Querier) *InvestmentRepo {
	return &InvestmentRepo{q: q}
}

func (r *InvestmentRepo) Create(inv *entity.Investment) error {
	query := `
		INSERT INTO investments (id, date, description, cost, supplier, buyer, casino)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Date, inv.Description, inv.Cost, inv.Supplier, inv.Buyer, inv.Casino,
	)
	if err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepo) GetByID(id string) (*entity.Investment, error) {
	query := `
		SELECT id, date, description, cost, supplier, buyer, casino
		FROM investments WHERE id = $1`
	var v entity.Investment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Date, &v.Description, &v.Cost, &v.Supplier, &v.Buyer, &v.Casino)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get investment: %w", err)
	}
	return &v, nil
}

func (r *InvestmentRepo) ListByCasino(casino string) ([]entity.Investment, error) {
	query := `
		SELECT id, date, description, cost, supplier, buyer, casino
		FROM investments WHERE casino = $1
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, casino)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()
	var list []entity.Investment
	for rows.Next() {
		var v entity.Investment
		if err := rows.Scan(&v.ID, &v.Date, &v.Description, &v.Cost,
			&v.Supplier, &v.Buyer, &v.Casino); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *InvestmentRepo) Update(inv *entity.Investment) error {
	query := `
		UPDATE investments
		SET date = $2, description = $3, cost = $4, supplier = $5, buyer = $6, casino = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Date, inv.Description, inv.Cost, inv.Supplier, inv.Buyer, inv.Casino,
	)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	return nil
}
