package staff

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Query  scope.ListQuery
	Role   *identity.Role
	UnitID *uuid.UUID
}

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ListFilter) ([]Staff, int64, error)
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

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Omit("Unit").Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Preload("Unit").
		First(&s, "users.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Omit("Unit").Save(s).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&Staff{}).
		Where("id = ?", id).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the user; leaves and salaries go with it through the foreign keys.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Staff{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Staff, int64, error) {
	q := f.Query.Normalize()

	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).
			Model(&Staff{}).
			Joins("Unit").
			Scopes(scope.Search(q.Search,
				"users.first_name",
				"users.last_name",
				"users.position",
				"users.gender",
				"users.role",
				`"Unit".name`,
			))
		if f.Role != nil {
			db = db.Where("users.role = ?", string(*f.Role))
		}
		if f.UnitID != nil {
			db = db.Where("users.unit_id = ?", *f.UnitID)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Staff
	err := base().
		Order("users.last_name ASC, users.first_name ASC").
		Scopes(scope.Paginate(q)).
		Find(&items).Error
	return items, total, err
}
