package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
)

// StaffNumber is the sequence behind users.staff_number.
const StaffNumber = "staff_number"

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// GetNextValue upserts the named row in counters and returns the bumped value.
// Inside a transaction the row stays locked until commit, so numbers are gapless
// per committed insert.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO counters AS c (counter_type, last_value, updated_at)
VALUES (?, 1, now())
ON CONFLICT (counter_type) DO UPDATE SET last_value = c.last_value + 1, updated_at = now()
RETURNING last_value`, counterType).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", counterType, err)
	}
	return next, nil
}

// Format renders a sequence value as PREFIX-000042.
func Format(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
