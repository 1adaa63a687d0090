package dashboard_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/dashboard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (dashboard.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return dashboard.NewRepository(db), mock
}

func TestDashboardRepository_Counts(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "units"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	staff, err := repo.CountStaff(ctx)
	require.NoError(t, err)
	units, err := repo.CountUnits(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(7), staff)
	assert.Equal(t, int64(2), units)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_UnitDistribution(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT units.name AS name, COUNT\(users.id\) AS value FROM "units" LEFT JOIN users ON users.unit_id = units.id GROUP BY units.id, units.name ORDER BY units.name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow("Finance", 4).AddRow("Legal", 0))

	rows, err := repo.UnitDistribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dashboard.UnitShare{{Name: "Finance", Value: 4}, {Name: "Legal", Value: 0}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_RecentlyHired(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, created_at FROM "users" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "created_at"}).
			AddRow(id.String(), "Ada", "Lee", "ada@example.com", time.Now()))

	rows, err := repo.RecentlyHired(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "Ada Lee", rows[0].FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_UpcomingBirthdays(t *testing.T) {
	repo, mock := newRepo(t)
	birth := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE birth_date IS NOT NULL\s+ORDER BY to_char\(birth_date, 'MMDD'\) < \$1, to_char\(birth_date, 'MMDD'\), first_name\s+LIMIT \$2`).
		WithArgs("1230", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "birth_date"}).
			AddRow(uuid.NewString(), "Cy", "Ng", birth))

	rows, err := repo.UpcomingBirthdays(context.Background(), time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), 5)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].BirthDate)
	assert.True(t, birth.Equal(*rows[0].BirthDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}
