package scope_test

import (
	"testing"

	"go-hrms/internal/shared/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID   string
	Name string
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func TestListQuery_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := scope.ListQuery{Search: "  ali  "}.Normalize()
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, scope.DefaultPageSize, q.PageSize)
		assert.Equal(t, "ali", q.Search)
		assert.Equal(t, 0, q.Offset())
	})

	t.Run("caps page size", func(t *testing.T) {
		q := scope.ListQuery{Page: 3, PageSize: 1000}.Normalize()
		assert.Equal(t, scope.MaxPageSize, q.PageSize)
		assert.Equal(t, 200, q.Offset())
	})
}

func TestSearch(t *testing.T) {
	db := dryRunDB(t)

	t.Run("ors all columns", func(t *testing.T) {
		var rows []row
		stmt := db.Table("rows").Scopes(scope.Search("50%", "name", "CAST(id AS TEXT)")).Find(&rows).Statement

		assert.Contains(t, stmt.SQL.String(), "(name ILIKE $1 OR CAST(id AS TEXT) ILIKE $2)")
		assert.Equal(t, []any{`%50\%%`, `%50\%%`}, stmt.Vars)
	})

	t.Run("empty term is a no-op", func(t *testing.T) {
		var rows []row
		stmt := db.Table("rows").Scopes(scope.Search("   ", "name")).Find(&rows).Statement

		assert.NotContains(t, stmt.SQL.String(), "ILIKE")
	})
}

func TestPaginate(t *testing.T) {
	db := dryRunDB(t)

	var rows []row
	stmt := db.Table("rows").Scopes(scope.Paginate(scope.ListQuery{Page: 2, PageSize: 5})).Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
}
