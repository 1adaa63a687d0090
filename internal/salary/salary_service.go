package salary

import (
	"context"
	"database/sql"
	"strings"
	"time"

	salaryerrors "go-hrms/internal/salary/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// numeric(15,2) holds at most 13 integer digits.
var maxAmount = decimal.New(1, 13)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Actor, req SalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]SalaryResponse, int64, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req SalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, actor identity.Actor, id string) error

	ListMine(ctx context.Context, actor identity.Actor, q scope.ListQuery) ([]SalaryResponse, int64, error)
	GetMine(ctx context.Context, actor identity.Actor, id string) (SalaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req SalaryRequest) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.ID()),
		zap.String("user_id", req.UserID),
	)

	f, err := parseFields(req)
	if err != nil {
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal := &Salary{ID: uuid.New()}
	f.apply(sal)
	if err := qtx.Create(ctx, sal); err != nil {
		s.logger.Warn("create salary persist failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}
	created, err := qtx.FindByID(ctx, sal.ID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	s.logger.Info("create salary success",
		zap.String("request_id", rid),
		zap.String("salary_id", sal.ID.String()),
		zap.String("user_id", sal.UserID.String()),
	)
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]SalaryResponse, int64, error) {
	filter := ListFilter{Query: q.ListQuery}
	if q.UserID != "" {
		userID, err := uuid.Parse(q.UserID)
		if err != nil {
			return nil, 0, salaryerrors.ErrInvalidUserID
		}
		filter.UserID = &userID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list salaries failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	salaryID, err := uuid.Parse(id)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}

	sal, err := s.repo.FindByID(ctx, salaryID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sal), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req SalaryRequest) (SalaryResponse, error) {
	salaryID, err := uuid.Parse(id)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}
	f, err := parseFields(req)
	if err != nil {
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindByID(ctx, salaryID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	f.apply(sal)
	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Warn("update salary persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}
	updated, err := qtx.FindByID(ctx, salaryID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}
	s.logger.Info("update salary success", zap.String("salary_id", id), zap.String("actor_id", actor.ID()))
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	salaryID, err := uuid.Parse(id)
	if err != nil {
		return salaryerrors.ErrSalaryNotFound
	}
	if err := s.repo.Delete(ctx, salaryID); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("delete salary success", zap.String("salary_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) ListMine(ctx context.Context, actor identity.Actor, q scope.ListQuery) ([]SalaryResponse, int64, error) {
	userID := actor.UserID
	items, total, err := s.repo.List(ctx, ListFilter{
		Query:  scope.ListQuery{Page: q.Page, PageSize: q.PageSize},
		UserID: &userID,
	})
	if err != nil {
		s.logger.Error("list own salaries failed", zap.String("user_id", actor.ID()), zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

// GetMine hides other users' records behind not found.
func (s *service) GetMine(ctx context.Context, actor identity.Actor, id string) (SalaryResponse, error) {
	salaryID, err := uuid.Parse(id)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}

	sal, err := s.repo.FindByID(ctx, salaryID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if sal.UserID != actor.UserID {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}
	return mapToResponse(*sal), nil
}

type fields struct {
	UserID          uuid.UUID
	PayDate         time.Time
	NetSalary       decimal.Decimal
	GrossSalary     decimal.Decimal
	PayrollFilePath string
	Notes           string
}

func (f fields) apply(sal *Salary) {
	sal.UserID = f.UserID
	sal.PayDate = f.PayDate
	sal.NetSalary = f.NetSalary
	sal.GrossSalary = f.GrossSalary
	sal.PayrollFilePath = f.PayrollFilePath
	sal.Notes = f.Notes
}

func validAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Round(2)) && d.LessThan(maxAmount)
}

func parseFields(req SalaryRequest) (fields, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		return fields{}, salaryerrors.ErrInvalidUserID
	}
	payDate, err := time.Parse(apperror.DateLayout, strings.TrimSpace(req.PayDate))
	if err != nil {
		return fields{}, salaryerrors.ErrInvalidPayDate
	}

	if req.NetSalary == nil {
		return fields{}, apperror.RequiredField("net_salary")
	}
	if !validAmount(*req.NetSalary) {
		return fields{}, salaryerrors.ErrInvalidNetSalary
	}
	gross := decimal.Zero
	if req.GrossSalary != nil {
		if !validAmount(*req.GrossSalary) {
			return fields{}, salaryerrors.ErrInvalidGrossSalary
		}
		gross = *req.GrossSalary
	}

	return fields{
		UserID:          userID,
		PayDate:         payDate,
		NetSalary:       req.NetSalary.Round(2),
		GrossSalary:     gross.Round(2),
		PayrollFilePath: strings.TrimSpace(req.PayrollFilePath),
		Notes:           strings.TrimSpace(req.Notes),
	}, nil
}

func mapToResponse(sal Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:              sal.ID.String(),
		UserID:          sal.UserID.String(),
		PayDate:         sal.PayDate.Format(apperror.DateLayout),
		NetSalary:       sal.NetSalary.StringFixed(2),
		GrossSalary:     sal.GrossSalary.StringFixed(2),
		PayrollFilePath: sal.PayrollFilePath,
		Notes:           sal.Notes,
		CreatedAt:       sal.CreatedAt.Format(time.RFC3339),
	}
	if sal.User != nil {
		name := sal.User.FullName()
		resp.UserName = &name
		resp.StaffNumber = &sal.User.StaffNumber
	}
	return resp
}

func mapToListResponse(items []Salary) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(items))
	for _, sal := range items {
		out = append(out, mapToResponse(sal))
	}
	return out
}
