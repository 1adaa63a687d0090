package salary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/salary"
	salaryerrors "go-hrms/internal/salary/errors"
	salaryMock "go-hrms/internal/salary/mock"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salary.Service
	repo    *salaryMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { _ = db.Close() })

	repo := salaryMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: salary.NewService(db, repo, zap.NewNop()),
		repo:    repo,
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

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var admin = identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}

func validRequest(userID uuid.UUID) salary.SalaryRequest {
	return salary.SalaryRequest{
		UserID:    userID.String(),
		PayDate:   "2025-06-30",
		NetSalary: amount("42500.5"),
		Notes:     "  june payroll ",
	}
}

func TestSalaryService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		var created *salary.Salary

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *salary.Salary) error {
			created = s
			return nil
		})
		deps.repo.EXPECT().FindByID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID) (*salary.Salary, error) {
			cp := *created
			cp.User = &salary.UserRef{ID: userID, StaffNumber: "STF-000003", FirstName: "Ali", LastName: "Kaya"}
			return &cp, nil
		})

		resp, err := deps.service.Create(ctx, admin, validRequest(userID))

		assert.NoError(t, err)
		assert.Equal(t, "42500.50", resp.NetSalary)
		assert.Equal(t, "0.00", resp.GrossSalary)
		assert.Equal(t, "2025-06-30", resp.PayDate)
		assert.Equal(t, "june payroll", resp.Notes)
		assert.Equal(t, "Ali Kaya", *resp.UserName)
		assert.Equal(t, time.June, created.PayDate.Month())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("same user and pay date", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salaries_user_pay_date"})

		_, err := deps.service.Create(ctx, admin, validRequest(userID))

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_salaries_user"})

		_, err := deps.service.Create(ctx, admin, validRequest(userID))

		assert.ErrorIs(t, err, salaryerrors.ErrUserNotFound)
	})

	t.Run("amount checks", func(t *testing.T) {
		cases := []struct {
			name  string
			net   string
			gross string
			want  error
		}{
			{"negative net", "-1", "", salaryerrors.ErrInvalidNetSalary},
			{"three decimals", "10.125", "", salaryerrors.ErrInvalidNetSalary},
			{"too large", "10000000000000", "", salaryerrors.ErrInvalidNetSalary},
			{"negative gross", "10", "-0.01", salaryerrors.ErrInvalidGrossSalary},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				req := validRequest(userID)
				req.NetSalary = amount(tc.net)
				if tc.gross != "" {
					req.GrossSalary = amount(tc.gross)
				}

				_, err := deps.service.Create(ctx, admin, req)

				assert.ErrorIs(t, err, tc.want)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("trailing zeros are fine", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest(userID)
		req.NetSalary = amount("100.500")

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, gomock.Any()).Return(&salary.Salary{NetSalary: decimal.RequireFromString("100.5")}, nil)

		resp, err := deps.service.Create(ctx, admin, req)

		assert.NoError(t, err)
		assert.Equal(t, "100.50", resp.NetSalary)
	})
}

func TestSalaryService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	t.Run("missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, admin, id.String(), validRequest(userID))

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})

	t.Run("moves to a taken pay date", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&salary.Salary{ID: id, UserID: userID}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salaries_user_pay_date"})

		_, err := deps.service.Update(ctx, admin, id.String(), validRequest(userID))

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryExists)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &salary.Salary{ID: id, UserID: userID, NetSalary: decimal.NewFromInt(1)}
		req := validRequest(userID)
		req.GrossSalary = amount("50000")

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)

		resp, err := deps.service.Update(ctx, admin, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "50000.00", resp.GrossSalary)
		assert.Equal(t, "42500.50", resp.NetSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestSalaryService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New()

	deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, deps.service.Delete(ctx, admin, id.String()), salaryerrors.ErrSalaryNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, admin, "not-a-uuid"), salaryerrors.ErrSalaryNotFound)
}

func TestSalaryService_Own(t *testing.T) {
	ctx := context.Background()
	me := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}

	t.Run("list is scoped to the caller and ignores search", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f salary.ListFilter) ([]salary.Salary, int64, error) {
			assert.Equal(t, me.UserID, *f.UserID)
			assert.Empty(t, f.Query.Search)
			assert.Equal(t, 2, f.Query.Page)
			return []salary.Salary{{ID: uuid.New(), UserID: me.UserID}}, 11, nil
		})

		items, total, err := deps.service.ListMine(ctx, me, scope.ListQuery{Search: "someone", Page: 2, PageSize: 10})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(11), total)
	})

	t.Run("another user's record is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id).Return(&salary.Salary{ID: id, UserID: uuid.New()}, nil)

		_, err := deps.service.GetMine(ctx, me, id.String())

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}
