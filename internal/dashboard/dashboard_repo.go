package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffBrief is the slice of a users row the dashboard lists.
type StaffBrief struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	BirthDate *time.Time
	CreatedAt time.Time
}

func (r StaffBrief) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountStaff(ctx context.Context) (int64, error)
	CountUnits(ctx context.Context) (int64, error)
	UnitDistribution(ctx context.Context) ([]UnitShare, error)
	RecentlyHired(ctx context.Context, limit int) ([]StaffBrief, error)
	UpcomingBirthdays(ctx context.Context, from time.Time, limit int) ([]StaffBrief, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountStaff(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("users").Count(&n).Error
	return n, err
}

func (r *repository) CountUnits(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("units").Count(&n).Error
	return n, err
}

// UnitDistribution lists every unit with its headcount, empty units included.
func (r *repository) UnitDistribution(ctx context.Context) ([]UnitShare, error) {
	var rows []UnitShare
	err := r.db.WithContext(ctx).
		Table("units").
		Select("units.name AS name, COUNT(users.id) AS value").
		Joins("LEFT JOIN users ON users.unit_id = units.id").
		Group("units.id, units.name").
		Order("units.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentlyHired(ctx context.Context, limit int) ([]StaffBrief, error) {
	var rows []StaffBrief
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, first_name, last_name, email, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// UpcomingBirthdays orders by month-day starting at from and wrapping into
// next year. Users without a birth date are skipped.
func (r *repository) UpcomingBirthdays(ctx context.Context, from time.Time, limit int) ([]StaffBrief, error) {
	var rows []StaffBrief
	err := r.db.WithContext(ctx).
		Raw(`SELECT id, first_name, last_name, birth_date
FROM users
WHERE birth_date IS NOT NULL
ORDER BY to_char(birth_date, 'MMDD') < ?, to_char(birth_date, 'MMDD'), first_name
LIMIT ?`, from.Format("0102"), limit).
		Scan(&rows).Error
	return rows, err
}
