package repository

import (
	"context"
	"database/sql"
	"fmt"

	"health-monitor/internal/models"

	"go.uber.org/zap"
)

// MedicationRepository 用药记录仓库（只读）
type MedicationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMedicationRepository 创建用药记录仓库
func NewMedicationRepository(db *sql.DB, logger *zap.Logger) *MedicationRepository {
	return &MedicationRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser 获取用户的全部用药记录，按药品名称排序
func (r *MedicationRepository) ListByUser(ctx context.Context, userID string) ([]models.Medication, error) {
	query := `
		SELECT medication_id, user_id, name, dosage, frequency,
		       start_date, end_date, purpose, prescribing_doctor, side_effects
		FROM medications
		WHERE user_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: query medications: %v", ErrDataAccess, err)
	}
	defer rows.Close()

	var medications []models.Medication
	for rows.Next() {
		var m models.Medication
		var startDate, endDate sql.NullTime

		err := rows.Scan(
			&m.MedicationID,
			&m.UserID,
			&m.Name,
			&m.Dosage,
			&m.Frequency,
			&startDate,
			&endDate,
			&m.Purpose,
			&m.PrescribingDoctor,
			&m.SideEffects,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan medication row: %v", ErrDataAccess, err)
		}

		if startDate.Valid {
			m.StartDate = &startDate.Time
		}
		if endDate.Valid {
			m.EndDate = &endDate.Time
		}

		medications = append(medications, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate medication rows: %v", ErrDataAccess, err)
	}

	return medications, nil
}
