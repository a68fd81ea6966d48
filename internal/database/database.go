package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/etaubman/annotations/internal/config"
)

var sqlOpen = sql.Open

// Driver names understood by Open. The driver is derived from the
// connection string: postgres:// selects pgx, anything else is treated
// as a sqlite database file path.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DriverFor returns the database/sql driver name for the given
// connection string.
func DriverFor(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// dsnFor builds the driver-specific DSN. For sqlite the foreign_keys
// pragma must be enabled explicitly or the annotations FK is not
// enforced.
func dsnFor(driver, url string) string {
	if driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on", url)
	}
	return url
}

// Open opens a database/sql connection for the configured connection
// string and applies pooling settings. The connection is wrapped with
// otelsql so every query is traced.
func Open(c config.DatabaseConfig) (*sql.DB, error) {
	driver := DriverFor(c.URL)

	sysAttr := semconv.DBSystemSqlite
	if driver == DriverPostgres {
		sysAttr = semconv.DBSystemPostgreSQL
	}

	driverName, err := otelsql.Register(driver,
		otelsql.WithAttributes(sysAttr, attribute.String("service.component", "annotations-db")),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsnFor(driver, c.URL))
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	// Apply connection pool settings if provided
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}

	// Verify connectivity with a short timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}
