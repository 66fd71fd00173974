package database

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver   string `yaml:"driver" envconfig:"DB_DRIVER" default:"pgx"`
	Host     string `yaml:"host" envconfig:"DB_HOST"`
	Port     string `yaml:"port" envconfig:"DB_PORT"`
	User     string `yaml:"user" envconfig:"DB_USER"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	NAME     string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	// Path is the SQLite file, ":memory:" for a private in-memory database.
	Path string `yaml:"path" envconfig:"DB_PATH"`
}

func (c *DB) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.NAME,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewDB connects and applies the migrations found in migrations/<dialect>,
// where dialect is "postgres" or "sqlite".
func NewDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sqlx.DB, error) {
	dialect, err := gooseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Open")
	}
	if cfg.Driver == DriverSQLite {
		// every new connection to :memory: is an empty database
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "sqlite pragma")
		}
	} else {
		db.SetMaxOpenConns(20)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	if migrations != nil {
		if err := migrate(db, dialect, migrations); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

func migrate(db *sqlx.DB, dialect string, migrations fs.FS) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite"
	}
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return errors.Wrap(err, "goose up")
	}
	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

// StatementBuilder returns a squirrel builder using the driver's placeholders.
func StatementBuilder(db *sqlx.DB) sq.StatementBuilderType {
	if db.DriverName() == DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
