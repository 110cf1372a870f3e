package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo implementación de ConsumptionRepository sobre PostgreSQL.
// Cabecera e items viven en tablas separadas sin cascada: el motor de
// reversión borra los items explícitamente antes que la cabecera.
type ConsumptionRepo struct {
	q Querier
}

func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

func (r *ConsumptionRepo) CreateHeader(c *entity.Consumption) error {
	query := `
		INSERT INTO consumptions (id, date, description, total_count, responsible, casino)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Date, c.Description, c.TotalCount, c.Responsible, c.Casino)
	if err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

func (r *ConsumptionRepo) UpdateHeader(c *entity.Consumption) error {
	query := `
		UPDATE consumptions
		SET date = $2, description = $3, total_count = $4, responsible = $5, casino = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Date, c.Description, c.TotalCount, c.Responsible, c.Casino)
	if err != nil {
		return fmt.Errorf("update consumption: %w", err)
	}
	return nil
}

func (r *ConsumptionRepo) DeleteHeader(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM consumptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consumption: %w", err)
	}
	return nil
}

// GetByID carga la cabecera con sus items; (nil, nil) si no existe.
func (r *ConsumptionRepo) GetByID(id string) (*entity.Consumption, error) {
	query := `
		SELECT id, date, description, total_count, responsible, casino
		FROM consumptions WHERE id = $1`
	var c entity.Consumption
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Date, &c.Description, &c.TotalCount, &c.Responsible, &c.Casino)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get consumption: %w", err)
	}
	items, err := r.ListItems(c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

// ListByCasino devuelve los lotes con items cargados, más recientes primero.
func (r *ConsumptionRepo) ListByCasino(casino string) ([]entity.Consumption, error) {
	query := `
		SELECT id, date, description, total_count, responsible, casino
		FROM consumptions WHERE casino = $1
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, casino)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()
	var list []entity.Consumption
	for rows.Next() {
		var c entity.Consumption
		if err := rows.Scan(&c.ID, &c.Date, &c.Description, &c.TotalCount,
			&c.Responsible, &c.Casino); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		items, err := r.ListItems(list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Items = items
	}
	return list, nil
}

func (r *ConsumptionRepo) CreateItem(item *entity.ConsumptionItem) error {
	query := `
		INSERT INTO consumption_items (id, consumption_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ConsumptionID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert consumption item: %w", err)
	}
	return nil
}

func (r *ConsumptionRepo) ListItems(consumptionID string) ([]entity.ConsumptionItem, error) {
	query := `
		SELECT i.id, i.consumption_id, i.product_id, i.quantity, COALESCE(p.name, '')
		FROM consumption_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.consumption_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, consumptionID)
	if err != nil {
		return nil, fmt.Errorf("list consumption items: %w", err)
	}
	defer rows.Close()
	var items []entity.ConsumptionItem
	for rows.Next() {
		var it entity.ConsumptionItem
		if err := rows.Scan(&it.ID, &it.ConsumptionID, &it.ProductID,
			&it.Quantity, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan consumption item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ConsumptionRepo) DeleteItems(consumptionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM consumption_items WHERE consumption_id = $1`, consumptionID)
	if err != nil {
		return fmt.Errorf("delete consumption items: %w", err)
	}
	return nil
}
