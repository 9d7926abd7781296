package db

import (
	"database/sql"
	"fmt"
	"portfolio/pkg/utils"
	"sync"

	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"
)

const busyTimeoutMs = 5000

type sqlLiteDb struct {
	dbFilePath string
	rwMux      sync.RWMutex
	logger     hclog.Logger
	fs         afero.Fs
}

// DataStore hands out short lived connections to a single sqlite file.
// Every connection is closed before the callback's caller regains control.
type DataStore interface {
	OpenConnection() (*sql.DB, error)
	WithConnection(fn func(conn *sql.DB) error) error
	WithTransaction(fn func(tx *sql.Tx) error) error
	RunMigration() error
	GetFilePath() string
}

func NewSqliteDbConnection(logger hclog.Logger, dbFilePath string) DataStore {
	return &sqlLiteDb{
		dbFilePath: dbFilePath,
		logger:     logger.Named("datastore"),
		fs:         afero.NewOsFs(),
	}
}

func (db *sqlLiteDb) GetFilePath() string {
	return db.dbFilePath
}

// OpenConnection opens a database handle limited to one connection. Callers own the handle.
func (db *sqlLiteDb) OpenConnection() (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=%d", db.dbFilePath, busyTimeoutMs))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", db.dbFilePath, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", db.dbFilePath, err)
	}

	return conn, nil
}

// WithConnection runs fn against a fresh connection. Readers share the store lock.
func (db *sqlLiteDb) WithConnection(fn func(conn *sql.DB) error) error {
	db.rwMux.RLock()
	defer db.rwMux.RUnlock()

	conn, err := db.OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// WithTransaction runs fn inside a single transaction that is committed when fn
// returns nil and rolled back otherwise. Writers hold the store lock exclusively.
func (db *sqlLiteDb) WithTransaction(fn func(tx *sql.Tx) error) error {
	db.rwMux.Lock()
	defer db.rwMux.Unlock()

	conn, err := db.OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			db.logger.Error("failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RunMigration creates the projects table when it does not exist yet. Safe on every start.
func (db *sqlLiteDb) RunMigration() error {
	if err := utils.EnsureParentDir(db.fs, db.dbFilePath); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", db.dbFilePath, err)
	}

	err := db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(GetSetupSQL())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to run migration on %s: %w", db.dbFilePath, err)
	}

	db.logger.Debug("schema is up to date", "path", db.dbFilePath)
	return nil
}

func GetSetupSQL() string {
	return `
CREATE TABLE IF NOT EXISTS projects
(
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    Title         TEXT NOT NULL,
    Description   TEXT NOT NULL,
    ImageFileName TEXT,
    CreatedDate   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
}
