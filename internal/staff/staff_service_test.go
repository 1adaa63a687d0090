package staff_test

import (
	"context"
	"database/sql"
	"testing"

	counterMock "go-hrms/internal/shared/counter/mock"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/scope"
	"go-hrms/internal/staff"
	stafferrors "go-hrms/internal/staff/errors"
	staffMock "go-hrms/internal/staff/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service staff.Service
	repo    *staffMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { _ = db.Close() })

	repo := staffMock.NewMockRepository(ctrl)
	counter := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: staff.NewService(db, repo, counter, zap.NewNop()),
		repo:    repo,
		counter: counter,
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func admin() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}
}

func manager() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Role: identity.RoleManager}
}

func validFields(role string) staff.StaffFields {
	return staff.StaffFields{
		FirstName:      "  jANE ",
		LastName:       "doe",
		Email:          " Jane.Doe@Example.com ",
		IdentityNumber: "12345678901",
		Phone:          "05551234567",
		Address:        "Main street 1",
		BirthDate:      "1990-04-12",
		Gender:         "female",
		Position:       "software engineer",
		Role:           role,
	}
}

func pgErr(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestStaffService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a staff number and normalizes fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		unitID := uuid.New()
		req := staff.CreateStaffRequest{StaffFields: validFields("staff"), Password: "s3cret-pass"}
		req.UnitID = unitID.String()

		var created *staff.Staff
		expectTx(deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, "staff_number").Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *staff.Staff) error {
			created = s
			return nil
		})
		deps.repo.EXPECT().FindByID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*staff.Staff, error) {
			cp := *created
			cp.Unit = &staff.UnitRef{ID: unitID, Name: "Engineering"}
			return &cp, nil
		})

		resp, err := deps.service.Create(ctx, admin(), req)

		assert.NoError(t, err)
		assert.Equal(t, "STF-000007", resp.StaffNumber)
		assert.Equal(t, "Jane", resp.FirstName)
		assert.Equal(t, "Doe", resp.LastName)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.Equal(t, "jane.doe@example.com", resp.Email)
		assert.Equal(t, "Software Engineer", resp.Position)
		assert.Equal(t, "1990-04-12", *resp.BirthDate)
		assert.Equal(t, "Engineering", *resp.UnitName)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager cannot create a manager", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, manager(), staff.CreateStaffRequest{StaffFields: validFields("manager")})

		assert.ErrorIs(t, err, stafferrors.ErrRoleNotAllowed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, "staff_number").Return(int64(8), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(pgErr("23505", "uq_users_email"))

		_, err := deps.service.Create(ctx, manager(), staff.CreateStaffRequest{StaffFields: validFields("staff")})

		assert.ErrorIs(t, err, stafferrors.ErrEmailTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := staff.CreateStaffRequest{StaffFields: validFields("staff")}
		req.UnitID = uuid.NewString()

		expectTx(deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, "staff_number").Return(int64(9), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(pgErr("23503", "fk_users_unit"))

		_, err := deps.service.Create(ctx, admin(), req)

		assert.ErrorIs(t, err, stafferrors.ErrUnitNotFound)
	})

	t.Run("malformed birth date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := staff.CreateStaffRequest{StaffFields: validFields("staff")}
		req.BirthDate = "12/04/1990"

		_, err := deps.service.Create(ctx, admin(), req)

		assert.ErrorIs(t, err, stafferrors.ErrInvalidBirthDate)
	})
}

func TestStaffService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("manager cannot edit an admin", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&staff.Staff{ID: id, Role: identity.RoleAdmin}, nil)

		_, err := deps.service.Update(ctx, manager(), id.String(), staff.UpdateStaffRequest{StaffFields: validFields("admin")})

		assert.ErrorIs(t, err, stafferrors.ErrTargetProtected)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager cannot promote", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&staff.Staff{ID: id, Role: identity.RoleStaff}, nil)

		_, err := deps.service.Update(ctx, manager(), id.String(), staff.UpdateStaffRequest{StaffFields: validFields("manager")})

		assert.ErrorIs(t, err, stafferrors.ErrRoleNotAllowed)
	})

	t.Run("admin changes role and password", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &staff.Staff{ID: id, StaffNumber: "STF-000001", Role: identity.RoleStaff, Password: "old"}

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *staff.Staff) error {
			assert.Equal(t, identity.RoleManager, s.Role)
			assert.Equal(t, "STF-000001", s.StaffNumber)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.Password), []byte("new-password")))
			return nil
		})
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)

		resp, err := deps.service.Update(ctx, admin(), id.String(), staff.UpdateStaffRequest{
			StaffFields: validFields("manager"),
			Password:    "new-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, "manager", resp.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, admin(), id.String(), staff.UpdateStaffRequest{StaffFields: validFields("staff")})

		assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	})
}

func TestStaffService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("self", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := admin()

		err := deps.service.Delete(ctx, actor, actor.ID())

		assert.ErrorIs(t, err, stafferrors.ErrCannotDeleteSelf)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager deletes staff", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&staff.Staff{ID: id, Role: identity.RoleStaff}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, manager(), id.String()))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager cannot delete another manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&staff.Staff{ID: id, Role: identity.RoleManager}, nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, manager(), id.String()), stafferrors.ErrTargetProtected)
	})

	t.Run("reviewer of existing leaves is kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&staff.Staff{ID: id, Role: identity.RoleManager}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(pgErr("23503", "fk_leaves_reviewer"))

		err := deps.service.Delete(ctx, admin(), id.String())

		assert.ErrorIs(t, err, stafferrors.ErrHasReviewedLeaves)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestStaffService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}
	hash, _ := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.MinCost)

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, actor.UserID).Return(&staff.Staff{ID: actor.UserID, Password: string(hash)}, nil)

		err := deps.service.ChangePassword(ctx, actor, staff.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "brand-new-pass"})

		assert.ErrorIs(t, err, stafferrors.ErrWrongPassword)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, actor.UserID).Return(&staff.Staff{ID: actor.UserID, Password: string(hash)}, nil)
		deps.repo.EXPECT().UpdatePassword(ctx, actor.UserID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("brand-new-pass")))
			return nil
		})

		err := deps.service.ChangePassword(ctx, actor, staff.ChangePasswordRequest{CurrentPassword: "current-pass", NewPassword: "brand-new-pass"})

		assert.NoError(t, err)
	})
}

func TestStaffService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by role and unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		unitID := uuid.New()
		q := staff.ListQuery{ListQuery: scope.ListQuery{Search: "eng", Page: 1, PageSize: 10}, Role: "Manager", UnitID: unitID.String()}

		deps.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f staff.ListFilter) ([]staff.Staff, int64, error) {
			assert.Equal(t, identity.RoleManager, *f.Role)
			assert.Equal(t, unitID, *f.UnitID)
			assert.Equal(t, "eng", f.Query.Search)
			return []staff.Staff{{ID: uuid.New(), FirstName: "Ann", LastName: "Lee", Role: identity.RoleManager}}, 1, nil
		})

		items, total, err := deps.service.GetAll(ctx, q)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Ann Lee", items[0].FullName)
		assert.Nil(t, items[0].UnitName)
	})

	t.Run("unknown role filter", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, err := deps.service.GetAll(ctx, staff.ListQuery{Role: "intern"})

		assert.ErrorIs(t, err, stafferrors.ErrInvalidRole)
	})
}
