package repository

import "github.com/yosyfood/yosyfood-api/internal/domain/entity"

// ConsumptionRepository puerto de persistencia para lotes de consumo y sus
// items. El lote es dueño de sus items: no hay cascada en runtime, el motor
// de reversión itera y borra explícitamente.
type ConsumptionRepository interface {
	CreateHeader(c *entity.Consumption) error
	UpdateHeader(c *entity.Consumption) error
	DeleteHeader(id string) error
	// GetByID devuelve el lote con sus items cargados; (nil, nil) si no existe.
	GetByID(id string) (*entity.Consumption, error)
	ListByCasino(casino string) ([]entity.Consumption, error)

	CreateItem(item *entity.ConsumptionItem) error
	ListItems(consumptionID string) ([]entity.ConsumptionItem, error)
	DeleteItems(consumptionID string) error
}
