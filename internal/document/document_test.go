package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CLAUDE.md")
	if err := os.WriteFile(path, []byte("before"), 0600); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "before" {
		t.Errorf("expected %q, got %q", "before", got)
	}

	if err := Write(path, "after"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err = Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "after" {
		t.Errorf("expected %q, got %q", "after", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected permissions to be kept, got %v", info.Mode().Perm())
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, ErrDocumentMissing) {
		t.Errorf("expected ErrDocumentMissing, got %v", err)
	}
}

func TestReadDirectory(t *testing.T) {
	_, err := Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if errors.Is(err, ErrDocumentMissing) {
		t.Error("directory should not be reported as missing")
	}
}
