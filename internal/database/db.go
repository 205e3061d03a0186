// Package database constructs the MySQL connection pool the
// repositories run on.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Config carries the connection parameters for the catalog database,
// taken from the DB_* environment variables.
type Config struct {
	User string
	Pass string // empty means passwordless (local dev)
	Host string
	Port string
	Name string
}

// dsn renders the go-sql-driver connection string. parseTime turns
// DATETIME columns into time.Time, loc=UTC matches the timestamps the
// service writes, and the binary collation keeps string literal
// comparisons consistent with the utf8mb4_bin username column.
func dsn(cfg Config) string {
	auth := cfg.User
	if cfg.Pass != "" {
		auth = cfg.User + ":" + cfg.Pass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&collation=utf8mb4_bin&parseTime=true&loc=UTC",
		auth, cfg.Host, cfg.Port, cfg.Name)
}

// Open connects to MySQL, configures the pool and verifies the
// connection with a bounded ping. The limits are sized for a single
// instance of this service: requests issue at most one query each, so a
// small pool with recycled connections is enough.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
