package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUp_FreshDatabase(t *testing.T) {
	db := openTestDB(t)

	if err := MigrateUp(db, SQLite); err != nil {
		t.Fatalf("MigrateUp() failed: %v", err)
	}

	tables := []string{"users", "pets", "reminders", "posts", "post_comments", "post_likes", "reports", "notifications", "schema_migrations"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s was not created: %v", table, err)
		}
	}

	// Idempotente
	if err := MigrateUp(db, SQLite); err != nil {
		t.Fatalf("second MigrateUp() failed: %v", err)
	}
}

func TestCheckDBMigrationStatus(t *testing.T) {
	db := openTestDB(t)

	err := CheckDBMigrationStatus(db, SQLite)
	if err == nil || err.Error() != "database has no schema version (needs migration)" {
		t.Fatalf("expected needs-migration error, got %v", err)
	}

	if err := MigrateUp(db, SQLite); err != nil {
		t.Fatalf("MigrateUp() failed: %v", err)
	}
	if err := CheckDBMigrationStatus(db, SQLite); err != nil {
		t.Fatalf("expected up-to-date schema, got %v", err)
	}

	st, err := GetStatus(db, SQLite)
	if err != nil || st.Version != 2 || st.Latest != 2 || st.Dirty {
		t.Fatalf("unexpected status %#v err=%v", st, err)
	}
}

func TestUnsupportedDialect(t *testing.T) {
	if err := MigrateUp(openTestDB(t), "mongo"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
