package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/filex"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/accounts"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// dialect groups everything that differs between the supported databases.
type dialect struct {
	driver        string
	gooseDialect  string
	migrationsDir string
	bindType      int
}

var dialects = map[string]dialect{
	DriverPostgres: {driver: DriverPostgres, gooseDialect: "postgres", migrationsDir: "postgres", bindType: sqlx.DOLLAR},
	DriverSQLite:   {driver: DriverSQLite, gooseDialect: "sqlite3", migrationsDir: "sqlite", bindType: sqlx.QUESTION},
}

// SQLRepositoryManager vends SQL-backed repositories for one dialect.
type SQLRepositoryManager struct {
	dialect dialect
	logger  logging.Logger
}

type Option func(*SQLRepositoryManager)

// WithLogger receives migration progress. Without it goose output is dropped.
func WithLogger(l logging.Logger) Option {
	return func(m *SQLRepositoryManager) {
		m.logger = l.With("module", "migrations")
	}
}

// NewSQLRepositoryManager returns a manager for driver ("pgx" or "sqlite").
func NewSQLRepositoryManager(driver string, opts ...Option) (RepositoryManager, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	m := &SQLRepositoryManager{dialect: d, logger: logging.Nop{}}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db, m.dialect.bindType)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, log: m.logger})
	if err := goose.SetDialect(m.dialect.gooseDialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dialect.migrationsDir); err != nil {
		return err
	}
	return nil
}

// Open connects to the database and checks it is reachable. SQLite is
// limited to one connection so writers never contend for the file lock.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if driver == DriverSQLite {
		if path := sqliteFilePath(dsn); path != "" {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db dir error: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// sqliteFilePath returns the database file named by a SQLite DSN, or ""
// for in-memory databases.
func sqliteFilePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}
