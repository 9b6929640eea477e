package repository

import (
	"database/sql"
	"errors"
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// RepairLogRepo implements RepairLogRepository
type RepairLogRepo struct {
	db *database.DB
}

// NewRepairLogRepo creates a new repair log repository
func NewRepairLogRepo(db *database.DB) RepairLogRepository {
	return &RepairLogRepo{db: db}
}

const repairLogColumns = `uuid, asset_id, issue_reported, vendor_name, repair_cost, repair_date, status, remarks`

// CreateRepairLog inserts a new repair log entry
func (r *RepairLogRepo) CreateRepairLog(repairLog *model.RepairLog) error {
	repairLog.RepairDate = time.Now()

	query := `
		INSERT INTO repair_logs (` + repairLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		repairLog.UUID, repairLog.AssetID, repairLog.IssueReported, repairLog.VendorName,
		repairLog.RepairCost, repairLog.RepairDate, repairLog.Status, repairLog.Remarks)
	return err
}

// GetRepairLogByUUID retrieves a repair log entry by ID
func (r *RepairLogRepo) GetRepairLogByUUID(uuid string) (*model.RepairLog, error) {
	repairLog := &model.RepairLog{}
	query := `SELECT ` + repairLogColumns + ` FROM repair_logs WHERE uuid = ?`
	err := r.db.QueryRow(r.db.Rebind(query), uuid).Scan(
		&repairLog.UUID, &repairLog.AssetID, &repairLog.IssueReported, &repairLog.VendorName,
		&repairLog.RepairCost, &repairLog.RepairDate, &repairLog.Status, &repairLog.Remarks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return repairLog, nil
}

// ListRepairLogs retrieves all repair logs, newest first
func (r *RepairLogRepo) ListRepairLogs() ([]*model.RepairLog, error) {
	query := `SELECT ` + repairLogColumns + ` FROM repair_logs ORDER BY repair_date DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repairLogs []*model.RepairLog
	for rows.Next() {
		repairLog := &model.RepairLog{}
		err := rows.Scan(
			&repairLog.UUID, &repairLog.AssetID, &repairLog.IssueReported, &repairLog.VendorName,
			&repairLog.RepairCost, &repairLog.RepairDate, &repairLog.Status, &repairLog.Remarks)
		if err != nil {
			return nil, err
		}
		repairLogs = append(repairLogs, repairLog)
	}

	return repairLogs, rows.Err()
}

// UpdateRepairLogStatus updates the status of a repair log entry
func (r *RepairLogRepo) UpdateRepairLogStatus(uuid, status string) error {
	query := `UPDATE repair_logs SET status = ? WHERE uuid = ?`
	_, err := r.db.Exec(r.db.Rebind(query), status, uuid)
	return err
}
