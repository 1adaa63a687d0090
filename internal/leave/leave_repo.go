package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows List. Nil fields are not applied.
type ListFilter struct {
	Query  scope.ListQuery
	UserID *uuid.UUID
	Status *Status
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockUser(ctx context.Context, userID uuid.UUID) error
	FindBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id uuid.UUID) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ListFilter) ([]Leave, int64, error)
	ListApprovedOn(ctx context.Context, day time.Time) ([]Leave, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
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

// LockUser takes a row lock on the owner, serializing every leave write for
// that user until the transaction ends. Missing users yield gorm.ErrRecordNotFound.
func (r *repository) LockUser(ctx context.Context, userID uuid.UUID) error {
	var p Person
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Take(&p, "id = ?", userID).Error
}

func (r *repository) FindBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "start_date", "end_date").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]Booking, len(rows))
	for i, l := range rows {
		bookings[i] = l.Booking()
	}
	return bookings, nil
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviewer").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id).Error
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Leave, int64, error) {
	q := f.Query.Normalize()

	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).
			Model(&Leave{}).
			Joins("Owner").
			Scopes(scope.Search(q.Search,
				"leaves.leave_type",
				"leaves.status",
				"CAST(leaves.days_count AS TEXT)",
				`"Owner".first_name`,
				`"Owner".last_name`,
			))
		if f.UserID != nil {
			db = db.Where("leaves.user_id = ?", *f.UserID)
		}
		if f.Status != nil {
			db = db.Where("leaves.status = ?", *f.Status)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []Leave
	err := base().
		Preload("Reviewer").
		Order("leaves.created_at DESC").
		Scopes(scope.Paginate(q)).
		Find(&leaves).Error
	return leaves, total, err
}

// ListApprovedOn returns approved leaves whose inclusive range covers day,
// with the owner joined.
func (r *repository) ListApprovedOn(ctx context.Context, day time.Time) ([]Leave, error) {
	d := day.Format(time.DateOnly)
	var rows []Leave
	err := r.db.WithContext(ctx).
		Joins("Owner").
		Where("leaves.status = ?", StatusApproved).
		Where("leaves.start_date <= ? AND leaves.end_date >= ?", d, d).
		Order("leaves.start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
