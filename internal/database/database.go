package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kisxo/ita-api/internal/logger"
	"github.com/kisxo/ita-api/internal/models"
)

// DB wraps the GORM handle together with its connection pool
type DB struct {
	*gorm.DB
	sqlDB *sql.DB
	log   logger.Logger
}

// Options tunes how the handle is opened
type Options struct {
	// Verbose logs every SQL statement at debug level
	Verbose bool
}

// New opens the database named by databaseURL. A postgres:// URL connects
// through lib/pq; anything else is treated as a SQLite file path, created
// on first use.
func New(databaseURL string, log logger.Logger, opts Options) (*DB, error) {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("component", "database")

	level := gormlogger.Warn
	if opts.Verbose {
		level = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger: newGormLogger(log, gormLogConfig{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var (
		gdb *gorm.DB
		err error
	)
	if isPostgresURL(databaseURL) {
		gdb, err = openPostgres(databaseURL, gormCfg)
	} else {
		gdb, err = openSQLite(databaseURL, gormCfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	if isPostgresURL(databaseURL) {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		log.Info("Connected to Postgres")
	} else {
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		log.Info("Opened SQLite database", "path", databaseURL)
	}

	return &DB{DB: gdb, sqlDB: sqlDB, log: log}, nil
}

func openPostgres(url string, cfg *gorm.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return gdb, nil
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is empty")
	}
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000"
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return gdb, nil
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Migrate creates the contestant table and its indexes if they do not exist
func (db *DB) Migrate() error {
	if err := db.DB.AutoMigrate(&models.Contestant{}); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	db.log.Info("Database schema ready")
	return nil
}

// HealthCheck pings the database
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// GetStats returns connection pool statistics
func (db *DB) GetStats() sql.DBStats {
	return db.sqlDB.Stats()
}

// Close logs final pool statistics and releases the connection pool
func (db *DB) Close() error {
	stats := db.GetStats()
	db.log.Info("Closing database",
		"open", stats.OpenConnections,
		"in_use", stats.InUse,
		"wait_count", stats.WaitCount,
		"wait_duration", stats.WaitDuration,
	)
	return db.sqlDB.Close()
}
