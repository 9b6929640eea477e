package repository

import (
	"database/sql"
	"errors"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// ConsumableRepo implements ConsumableRepository
type ConsumableRepo struct {
	db *database.DB
}

// NewConsumableRepo creates a new consumable repository
func NewConsumableRepo(db *database.DB) ConsumableRepository {
	return &ConsumableRepo{db: db}
}

const consumableColumns = `uuid, item_name, category, total_quantity, remaining_quantity, last_restocked, threshold_limit`

// CreateConsumable inserts a new consumable item
func (r *ConsumableRepo) CreateConsumable(consumable *model.Consumable) error {
	query := `
		INSERT INTO consumables (` + consumableColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		consumable.UUID, consumable.ItemName, consumable.Category, consumable.TotalQuantity,
		consumable.RemainingQuantity, consumable.LastRestocked, consumable.ThresholdLimit)
	return err
}

// GetConsumableByUUID retrieves a consumable by ID
func (r *ConsumableRepo) GetConsumableByUUID(uuid string) (*model.Consumable, error) {
	consumable := &model.Consumable{}
	query := `SELECT ` + consumableColumns + ` FROM consumables WHERE uuid = ?`
	err := r.db.QueryRow(r.db.Rebind(query), uuid).Scan(
		&consumable.UUID, &consumable.ItemName, &consumable.Category, &consumable.TotalQuantity,
		&consumable.RemainingQuantity, &consumable.LastRestocked, &consumable.ThresholdLimit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return consumable, nil
}

// ListConsumables retrieves all consumables ordered by item name
func (r *ConsumableRepo) ListConsumables() ([]*model.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumables ORDER BY item_name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consumables []*model.Consumable
	for rows.Next() {
		consumable := &model.Consumable{}
		err := rows.Scan(
			&consumable.UUID, &consumable.ItemName, &consumable.Category, &consumable.TotalQuantity,
			&consumable.RemainingQuantity, &consumable.LastRestocked, &consumable.ThresholdLimit)
		if err != nil {
			return nil, err
		}
		consumables = append(consumables, consumable)
	}

	return consumables, rows.Err()
}

// UpdateConsumable modifies an existing consumable's stock fields
func (r *ConsumableRepo) UpdateConsumable(consumable *model.Consumable) error {
	query := `
		UPDATE consumables
		SET total_quantity = ?, remaining_quantity = ?, last_restocked = ?, threshold_limit = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		consumable.TotalQuantity, consumable.RemainingQuantity, consumable.LastRestocked,
		consumable.ThresholdLimit, consumable.UUID)
	return err
}
