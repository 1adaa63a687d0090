package app

import (
	"database/sql"
	"errors"

	"go-hrms/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Migrator applies the SQL files under a migrations directory.
type Migrator struct {
	m      *migrate.Migrate
	db     *sql.DB
	logger *zap.Logger
}

func NewMigrator(cfg *config.Config, dir string) (*Migrator, error) {
	db, err := sql.Open("postgres", cfg.Postgres.Options().URL())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Migrator{m: m, db: db, logger: zap.L().Named("app.migrator")}, nil
}

func (mg *Migrator) Up() error {
	return mg.report("up", mg.m.Up())
}

// Down rolls back steps migrations, or all of them when steps is 0.
func (mg *Migrator) Down(steps int) error {
	if steps > 0 {
		return mg.report("down", mg.m.Steps(-steps))
	}
	return mg.report("down", mg.m.Down())
}

func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr, mg.db.Close())
}

func (mg *Migrator) report(direction string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("no migration to apply", zap.String("direction", direction))
		return nil
	}
	if err != nil {
		return err
	}
	v, dirty, _ := mg.Version()
	mg.logger.Info("migration applied",
		zap.String("direction", direction),
		zap.Uint("version", v),
		zap.Bool("dirty", dirty),
	)
	return nil
}
