package unit

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	uniterrors "go-hrms/internal/unit/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	UnitAllKey   = "units:all"
	unitCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=unit_service.go -destination=mock/unit_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req UnitRequest) (UnitResponse, error)
	GetAll(ctx context.Context) ([]UnitResponse, error)
	GetByID(ctx context.Context, id string) (UnitResponse, error)
	Update(ctx context.Context, id string, req UnitRequest) (UnitResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the unit service. rdb may be nil to disable caching.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("unit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("unit.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req UnitRequest) (UnitResponse, error) {
	name, err := parseName(req.Name)
	if err != nil {
		return UnitResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UnitResponse{}, err
	}
	defer tx.Rollback()

	u := &Unit{ID: uuid.New(), Name: name}
	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Warn("create unit failed", zap.String("name", name), zap.Error(err))
		return UnitResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UnitResponse{}, err
	}
	s.invalidate(ctx)
	s.logger.Info("create unit success", zap.String("unit_id", u.ID.String()))

	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UnitResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, UnitAllKey).Result()
		if err == nil {
			var resp []UnitResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(UnitAllKey, func() (any, error) {
		units, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(units)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, UnitAllKey, data, unitCacheTTL).Err(); err != nil {
					s.logger.Warn("cache units failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]UnitResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UnitResponse, error) {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return UnitResponse{}, uniterrors.ErrUnitNotFound
	}

	u, err := s.repo.FindByID(ctx, unitID)
	if err != nil {
		return UnitResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UnitRequest) (UnitResponse, error) {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return UnitResponse{}, uniterrors.ErrUnitNotFound
	}
	name, err := parseName(req.Name)
	if err != nil {
		return UnitResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UnitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, unitID)
	if err != nil {
		return UnitResponse{}, mapRepositoryError(err)
	}

	u.Name = name
	if err := qtx.Update(ctx, u); err != nil {
		return UnitResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UnitResponse{}, err
	}
	s.invalidate(ctx)

	return mapToResponse(*u), nil
}

// Delete removes the unit; staff assigned to it are left without a unit.
func (s *service) Delete(ctx context.Context, id string) error {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return uniterrors.ErrUnitNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, unitID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info("delete unit success", zap.String("unit_id", id))

	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, UnitAllKey).Err(); err != nil {
		s.logger.Error("invalidate unit cache failed", zap.String("key", UnitAllKey), zap.Error(err))
	}
}

func parseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return "", uniterrors.ErrInvalidName
	}
	return name, nil
}

func mapToResponse(u Unit) UnitResponse {
	return UnitResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(units []Unit) []UnitResponse {
	res := make([]UnitResponse, len(units))
	for i, u := range units {
		res[i] = mapToResponse(u)
	}
	return res
}
