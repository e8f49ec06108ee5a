package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"companyapi/internal/config"
)

// DriverName is the pgx stdlib driver; sqlx also keys its bind style on it.
const DriverName = "pgx"

const pingTimeout = 5 * time.Second

// sqlOpen is swapped in tests.
var sqlOpen = sql.Open

// BuildPostgresDSN returns c.URL when set, otherwise a postgres:// URL assembled from the discrete fields.
func BuildPostgresDSN(c config.DatabaseConfig) (string, error) {
	if c.URL != "" {
		return c.URL, nil
	}
	if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
		return "", errors.New("database config: host, port, user and name are required when DATABASE_URL is empty")
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String(), nil
}

// NewPostgres opens a traced pgx pool sized from c and verifies it answers within pingTimeout.
// The pool is closed again when the ping fails.
func NewPostgres(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := BuildPostgresDSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register(DriverName,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register traced driver: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	configurePool(db, c)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func configurePool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}

// Wrap exposes an open *sql.DB through sqlx using PostgreSQL ($n) bind variables.
func Wrap(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, DriverName)
}
