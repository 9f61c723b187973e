package sql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to open a relational store.
type Config struct {
	// Driver is one of sqlite, mysql or postgres.
	Driver  string
	DSN     string
	Timeout time.Duration
}

// Connect opens the database, verifies connectivity with a ping and migrates
// the schema. Constraint violations are translated to gorm.ErrDuplicatedKey.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s open: %w", cfg.Driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := Ping(pingCtx, db); err != nil {
		Close(db)
		return nil, err
	}

	if err := Migrate(db); err != nil {
		Close(db)
		return nil, err
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// Migrate creates or updates the accounts, articles and audit_events tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&accountModel{}, &articleModel{}, &auditModel{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if stmt := emailCollationDDL(db.Dialector.Name()); stmt != "" {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: email collation: %w", err)
		}
	}
	return nil
}

// emailCollationDDL returns the statement that makes account emails compare
// byte for byte. MySQL's default collation folds case, which would let
// A@gmail.com and a@gmail.com collide on the unique index.
func emailCollationDDL(dialect string) string {
	if dialect != "mysql" {
		return ""
	}
	return "ALTER TABLE accounts MODIFY email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"
}

// Ping checks that the underlying connection pool is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sql ping: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Pinger adapts a gorm handle to the readiness probe.
type Pinger struct {
	DB *gorm.DB
}

func (p Pinger) Ping(ctx context.Context) error {
	return Ping(ctx, p.DB)
}
