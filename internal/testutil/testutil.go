package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
  image_path TEXT,
  items TEXT,
  cal_low INTEGER,
  cal_high INTEGER,
  protein_g INTEGER DEFAULT 0,
  carbs_g INTEGER DEFAULT 0,
  sugar_g INTEGER DEFAULT 0,
  fat_g INTEGER DEFAULT 0,
  confidence TEXT,
  notes TEXT
);
CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  name TEXT,
  age INTEGER,
  cal_target INTEGER,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Workspace is a temporary project directory for tests
type Workspace struct {
	Path string
	T    *testing.T
}

// NewWorkspace creates a workspace that is removed when the test ends
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{Path: t.TempDir(), T: t}
}

// File returns the absolute path of name inside the workspace
func (w *Workspace) File(name string) string {
	return filepath.Join(w.Path, name)
}

// CreateFile creates a file in the workspace
func (w *Workspace) CreateFile(name, content string) string {
	w.T.Helper()
	path := w.File(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
	return path
}

// ReadFile returns the content of a workspace file
func (w *Workspace) ReadFile(name string) string {
	w.T.Helper()
	data, err := os.ReadFile(w.File(name))
	if err != nil {
		w.T.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}

// CreateDatabase creates a nutrition database with the meals and profile tables.
// today meals are stamped with the current time, older ones with a fixed past date.
func (w *Workspace) CreateDatabase(name string, today, older int) string {
	w.T.Helper()

	path := w.File(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}

	db := w.open(path)
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		w.T.Fatalf("failed to create schema: %v", err)
	}

	for i := 0; i < today; i++ {
		if _, err := db.Exec(`INSERT INTO meals (items, cal_low, cal_high) VALUES ('[]', 300, 400)`); err != nil {
			w.T.Fatalf("failed to insert meal: %v", err)
		}
	}
	for i := 0; i < older; i++ {
		if _, err := db.Exec(`INSERT INTO meals (timestamp, items, cal_low, cal_high) VALUES ('2020-01-01 12:00:00', '[]', 300, 400)`); err != nil {
			w.T.Fatalf("failed to insert meal: %v", err)
		}
	}

	return path
}

// SetProfile writes the single profile row. nil values are stored as NULL.
func (w *Workspace) SetProfile(dbName string, name any, calTarget any) {
	w.T.Helper()

	db := w.open(w.File(dbName))
	defer db.Close()

	_, err := db.Exec(`INSERT OR REPLACE INTO profile (id, name, cal_target) VALUES (1, ?, ?)`, name, calTarget)
	if err != nil {
		w.T.Fatalf("failed to write profile: %v", err)
	}
}

// Exec runs raw SQL against a workspace database
func (w *Workspace) Exec(dbName, query string) {
	w.T.Helper()

	db := w.open(w.File(dbName))
	defer db.Close()

	if _, err := db.Exec(query); err != nil {
		w.T.Fatalf("failed to exec %q: %v", query, err)
	}
}

func (w *Workspace) open(path string) *sql.DB {
	w.T.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		w.T.Fatalf("failed to open database: %v", err)
	}
	return db
}
