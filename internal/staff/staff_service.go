package staff

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/identity"
	stafferrors "go-hrms/internal/staff/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const staffNumberPrefix = "STF"

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Actor, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]StaffResponse, int64, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, actor identity.Actor, id string) error
	ResetPassword(ctx context.Context, actor identity.Actor, id string, req ResetPasswordRequest) error

	Profile(ctx context.Context, actor identity.Actor) (StaffResponse, error)
	ChangePassword(ctx context.Context, actor identity.Actor, req ChangePasswordRequest) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{db: db, repo: repo, counter: counter, logger: l}
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req CreateStaffRequest) (StaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.ID()),
		zap.String("role", req.Role),
	)

	f, err := parseFields(req.StaffFields)
	if err != nil {
		return StaffResponse{}, err
	}
	if !canAssign(actor, f.Role) {
		s.logger.Warn("create staff role refused",
			zap.String("actor_id", actor.ID()),
			zap.String("role", string(f.Role)),
		)
		return StaffResponse{}, stafferrors.ErrRoleNotAllowed
	}

	// without a password the account gets an unguessable one and must be reset
	password := req.Password
	if password == "" {
		password = uuid.NewString()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return StaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create staff begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.StaffNumber)
	if err != nil {
		s.logger.Error("create staff generate number failed", zap.Error(err))
		return StaffResponse{}, err
	}

	qtx := s.repo.WithTx(tx)
	st := &Staff{
		ID:          uuid.New(),
		StaffNumber: counter.Format(staffNumberPrefix, next),
		Password:    string(hash),
	}
	f.apply(st)

	if err := qtx.Create(ctx, st); err != nil {
		s.logger.Warn("create staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}
	created, err := qtx.FindByID(ctx, st.ID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}
	s.logger.Info("create staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", st.ID.String()),
		zap.String("staff_number", st.StaffNumber),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]StaffResponse, int64, error) {
	filter := ListFilter{Query: q.ListQuery}
	if q.Role != "" {
		role, ok := identity.ParseRole(q.Role)
		if !ok {
			return nil, 0, stafferrors.ErrInvalidRole
		}
		filter.Role = &role
	}
	if q.UnitID != "" {
		unitID, err := uuid.Parse(q.UnitID)
		if err != nil {
			return nil, 0, stafferrors.ErrInvalidUnitID
		}
		filter.UnitID = &unitID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrStaffNotFound
	}

	st, err := s.repo.FindByID(ctx, staffID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req UpdateStaffRequest) (StaffResponse, error) {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrStaffNotFound
	}
	f, err := parseFields(req.StaffFields)
	if err != nil {
		return StaffResponse{}, err
	}

	var hash []byte
	if req.Password != "" {
		if hash, err = bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost); err != nil {
			return StaffResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindByID(ctx, staffID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}
	if !canModify(actor, *st) {
		return StaffResponse{}, stafferrors.ErrTargetProtected
	}
	if f.Role != st.Role && !canAssign(actor, f.Role) {
		return StaffResponse{}, stafferrors.ErrRoleNotAllowed
	}

	f.apply(st)
	if hash != nil {
		st.Password = string(hash)
	}

	if err := qtx.Update(ctx, st); err != nil {
		s.logger.Warn("update staff persist failed", zap.String("staff_id", id), zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}
	updated, err := qtx.FindByID(ctx, staffID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StaffResponse{}, err
	}
	s.logger.Info("update staff success", zap.String("staff_id", id), zap.String("actor_id", actor.ID()))

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return stafferrors.ErrStaffNotFound
	}
	if staffID == actor.UserID {
		return stafferrors.ErrCannotDeleteSelf
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindByID(ctx, staffID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !canModify(actor, *st) {
		return stafferrors.ErrTargetProtected
	}
	if err := qtx.Delete(ctx, staffID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete staff success", zap.String("staff_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, actor identity.Actor, id string, req ResetPasswordRequest) error {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return stafferrors.ErrStaffNotFound
	}

	st, err := s.repo.FindByID(ctx, staffID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !canModify(actor, *st) {
		return stafferrors.ErrTargetProtected
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, staffID, string(hash)); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("reset password success", zap.String("staff_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) Profile(ctx context.Context, actor identity.Actor) (StaffResponse, error) {
	st, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) ChangePassword(ctx context.Context, actor identity.Actor, req ChangePasswordRequest) error {
	st, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(st.Password), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password with wrong current password", zap.String("user_id", actor.ID()))
		return stafferrors.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return mapRepositoryError(s.repo.UpdatePassword(ctx, actor.UserID, string(hash)))
}

// canAssign: only admins hand out privileged roles.
func canAssign(actor identity.Actor, role identity.Role) bool {
	return actor.Role == identity.RoleAdmin || role == identity.RoleStaff
}

// canModify: managers may only manage regular staff.
func canModify(actor identity.Actor, target Staff) bool {
	return actor.Role == identity.RoleAdmin || !target.Role.Privileged()
}

type fields struct {
	FirstName      string
	LastName       string
	Email          string
	IdentityNumber string
	Phone          string
	Address        string
	BirthDate      *time.Time
	Gender         string
	Position       string
	Role           identity.Role
	UnitID         *uuid.UUID
}

func (f fields) apply(st *Staff) {
	st.FirstName = f.FirstName
	st.LastName = f.LastName
	st.Email = f.Email
	st.IdentityNumber = f.IdentityNumber
	st.Phone = f.Phone
	st.Address = f.Address
	st.BirthDate = f.BirthDate
	st.Gender = f.Gender
	st.Position = f.Position
	st.Role = f.Role
	st.UnitID = f.UnitID
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))
}

func parseFields(in StaffFields) (fields, error) {
	role, ok := identity.ParseRole(in.Role)
	if !ok {
		return fields{}, stafferrors.ErrInvalidRole
	}

	f := fields{
		FirstName:      titleCase(in.FirstName),
		LastName:       titleCase(in.LastName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		IdentityNumber: strings.TrimSpace(in.IdentityNumber),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		Gender:         strings.ToLower(strings.TrimSpace(in.Gender)),
		Position:       titleCase(in.Position),
		Role:           role,
	}
	if f.FirstName == "" {
		return fields{}, apperror.RequiredField("first_name")
	}
	if f.LastName == "" {
		return fields{}, apperror.RequiredField("last_name")
	}

	if v := strings.TrimSpace(in.BirthDate); v != "" {
		d, err := time.Parse(apperror.DateLayout, v)
		if err != nil {
			return fields{}, stafferrors.ErrInvalidBirthDate
		}
		f.BirthDate = &d
	}
	if v := strings.TrimSpace(in.UnitID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fields{}, stafferrors.ErrInvalidUnitID
		}
		f.UnitID = &id
	}
	return f, nil
}

func mapToResponse(st Staff) StaffResponse {
	resp := StaffResponse{
		ID:             st.ID.String(),
		StaffNumber:    st.StaffNumber,
		FirstName:      st.FirstName,
		LastName:       st.LastName,
		FullName:       st.FullName(),
		Email:          st.Email,
		IdentityNumber: st.IdentityNumber,
		Phone:          st.Phone,
		Address:        st.Address,
		Gender:         st.Gender,
		Position:       st.Position,
		Role:           string(st.Role),
		CreatedAt:      st.CreatedAt.Format(time.RFC3339),
	}
	if st.BirthDate != nil {
		d := st.BirthDate.Format(apperror.DateLayout)
		resp.BirthDate = &d
	}
	if st.UnitID != nil {
		id := st.UnitID.String()
		resp.UnitID = &id
	}
	if st.Unit != nil {
		name := st.Unit.Name
		resp.UnitName = &name
	}
	return resp
}

func mapToListResponse(items []Staff) []StaffResponse {
	res := make([]StaffResponse, len(items))
	for i, st := range items {
		res[i] = mapToResponse(st)
	}
	return res
}
