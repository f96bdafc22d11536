// Package sqlstore implementa los repositorios sobre database/sql.
// Postgres (pgx) y SQLite comparten las mismas consultas: placeholders $n en orden creciente.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"pet-care-hub/internal/adapters/storage/sqlstore/migrations"
	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/domain/reminders"
	"pet-care-hub/internal/domain/reports"
	"pet-care-hub/internal/domain/users"
)

// OpenPostgres abre un pool a Postgres usando pgx (database/sql).
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite abre un archivo SQLite (o ":memory:").
func OpenSQLite(path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path required")
	}

	dsn := "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Cada conexión a ":memory:" es una base distinta; una sola conexión para todo.
	// En archivo también: SQLite serializa las escrituras.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open elige el driver según dialect (migrations.Postgres o migrations.SQLite).
func Open(dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case migrations.Postgres:
		return OpenPostgres(dsn)
	case migrations.SQLite:
		return OpenSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// Store agrupa los repositorios sobre una misma conexión.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Users() users.Repository                 { return &UsersRepo{db: s.db} }
func (s *Store) Pets() pets.Repository                   { return &PetsRepo{db: s.db} }
func (s *Store) Reminders() reminders.Repository         { return &RemindersRepo{db: s.db} }
func (s *Store) Posts() posts.Repository                 { return &PostsRepo{db: s.db} }
func (s *Store) Reports() reports.Repository             { return &ReportsRepo{db: s.db} }
func (s *Store) Notifications() notifications.Repository { return &NotificationsRepo{db: s.db} }

// isUniqueViolation reconoce el error de clave duplicada de ambos drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// isForeignKeyViolation: la fila referenciada no existe (o se borró en paralelo).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// utc normaliza antes de escribir; SQLite guarda el offset como texto.
func utc(t time.Time) time.Time {
	return t.UTC()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

// withTx corre fn en una transacción; rollback si fn falla.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func rowsAffected(res sql.Result) int64 {
	n, _ := res.RowsAffected()
	return n
}
