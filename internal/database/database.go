// Package database provides connection management for the SQL source tabkit reads columns from.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "modernc.org/sqlite"             // SQLite driver, registered as "sqlite"

	"github.com/dbsmedya/tabkit/internal/config"
	"github.com/dbsmedya/tabkit/internal/logger"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = time.Second
)

// Manager owns the connection to the configured source database.
type Manager struct {
	Source *sql.DB
	config *config.SourceConfig
	log    *logger.Logger

	maxRetries int
	backoff    time.Duration
	open       func(driver, dsn string) (*sql.DB, error)
}

// NewManager creates a new database manager from configuration.
func NewManager(cfg *config.SourceConfig, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		config:     cfg,
		log:        log,
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
		open:       sql.Open,
	}
}

// Connect opens and pings the source database, retrying with exponential backoff.
func (m *Manager) Connect(ctx context.Context) error {
	driver, err := DriverName(m.config.Driver)
	if err != nil {
		return err
	}
	dsn := DataSourceName(m.config)

	var db *sql.DB
	backoff := m.backoff
	for i := 0; i < m.maxRetries; i++ {
		db, err = m.connect(driver, dsn)
		if err == nil {
			if pingErr := db.PingContext(ctx); pingErr == nil {
				m.Source = db
				m.log.Debugw("connected to source", "driver", driver, "attempt", i+1)
				return nil
			} else {
				db.Close()
				err = pingErr
			}
		}

		m.log.Warnw("source connection failed", "driver", driver, "attempt", i+1, "error", err)
		if i < m.maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}
	}

	return fmt.Errorf("failed to connect to source database after %d retries: %w", m.maxRetries, err)
}

func (m *Manager) connect(driver, dsn string) (*sql.DB, error) {
	db, err := m.open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// An in-memory database lives and dies with its connection.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetConnMaxLifetime(10 * time.Minute)
	}
	return db, nil
}

// DriverName maps a configured driver to its database/sql name.
func DriverName(driver string) (string, error) {
	switch driver {
	case "mysql", "":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported source driver %q", driver)
}

// DataSourceName returns the DSN for the configured driver.
func DataSourceName(cfg *config.SourceConfig) string {
	if driver, _ := DriverName(cfg.Driver); driver == "sqlite" {
		return cfg.Path
	}
	return BuildDSN(cfg)
}

// BuildDSN constructs a MySQL DSN from configuration.
func BuildDSN(cfg *config.SourceConfig) string {
	// Format: user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}

	return dsn + params
}

// Close closes the source connection.
func (m *Manager) Close() error {
	if m.Source == nil {
		return nil
	}
	if err := m.Source.Close(); err != nil {
		return fmt.Errorf("source close: %w", err)
	}
	m.Source = nil
	return nil
}

// Ping verifies the source connection is alive.
func (m *Manager) Ping(ctx context.Context) error {
	if m.Source == nil {
		return fmt.Errorf("source is not connected")
	}
	if err := m.Source.PingContext(ctx); err != nil {
		return fmt.Errorf("source ping failed: %w", err)
	}
	return nil
}

// ReadColumn reads one column of the source database; see ReadColumn.
func (m *Manager) ReadColumn(ctx context.Context, table, column string) ([]interface{}, error) {
	if m.Source == nil {
		return nil, fmt.Errorf("source is not connected")
	}
	values, err := ReadColumn(ctx, m.Source, table, column)
	if err != nil {
		return nil, err
	}
	m.log.Debugw("read column", "table", table, "column", column, "rows", len(values))
	return values, nil
}
