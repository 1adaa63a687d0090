package salary

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Query  scope.ListQuery
	UserID *uuid.UUID
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Salary) error
	FindByID(ctx context.Context, id uuid.UUID) (*Salary, error)
	Update(ctx context.Context, s *Salary) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ListFilter) ([]Salary, int64, error)
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

func (r *repository) Create(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Omit("User").Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&s, "salaries.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Omit("User").Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Salary{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List searches on the owner's name and returns the latest pay dates first.
func (r *repository) List(ctx context.Context, f ListFilter) ([]Salary, int64, error) {
	q := f.Query.Normalize()

	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).
			Model(&Salary{}).
			Joins("User").
			Scopes(scope.Search(q.Search, `"User".first_name`, `"User".last_name`))
		if f.UserID != nil {
			db = db.Where("salaries.user_id = ?", *f.UserID)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Salary
	err := base().
		Order("salaries.pay_date DESC, salaries.created_at DESC").
		Scopes(scope.Paginate(q)).
		Find(&items).Error
	return items, total, err
}
