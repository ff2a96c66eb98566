package collection

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	loader := NewLoader(zap.New(core))

	path := filepath.Join(t.TempDir(), "basics.txt")
	writeFile(t, path, "cat | kot\ncat | kotek\n")

	c, warnings, err := loader.LoadFile(path, 7)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.ID() != 7 {
		t.Errorf("Expected id 7, got %d", c.ID())
	}
	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning, got %d", len(warnings))
	}

	entries := logs.FilterMessage(WarningWordChanged.String()).All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 logged warning, got %d", len(entries))
	}
	if line := entries[0].ContextMap()["line"]; line != int64(2) {
		t.Errorf("Expected logged line 2, got %v", line)
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader := NewLoader(nil)

	_, _, err := loader.LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 1)
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

func TestLoader_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "$ name=A\ncat | kot\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "cat | \xff\n")
	writeFile(t, filepath.Join(dir, "c.txt"), "$ name=C\ndog | pies\n")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "nested", "d.txt"), "$ name=D\n")

	core, logs := observer.New(zapcore.WarnLevel)
	loader := NewLoader(zap.New(core))

	collections, err := loader.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if len(collections) != 2 {
		t.Fatalf("Expected 2 collections, got %d", len(collections))
	}
	if collections[0].Name() != "A" || collections[0].ID() != 1 {
		t.Errorf("Unexpected first collection: id=%d name=%s", collections[0].ID(), collections[0].Name())
	}
	if collections[1].Name() != "C" || collections[1].ID() != 3 {
		t.Errorf("Unexpected second collection: id=%d name=%s", collections[1].ID(), collections[1].Name())
	}

	if n := logs.FilterMessage("skipping collection file").Len(); n != 1 {
		t.Errorf("Expected 1 skipped file to be logged, got %d", n)
	}
}

func TestLoader_LoadDir_Errors(t *testing.T) {
	loader := NewLoader(nil)
	dir := t.TempDir()

	if _, err := loader.LoadDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO for a missing directory, got %v", err)
	}

	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "cat | kot\n")
	if _, err := loader.LoadDir(file); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
}

func TestLoader_LoadDir_Empty(t *testing.T) {
	collections, err := NewLoader(nil).LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(collections) != 0 {
		t.Errorf("Expected no collections, got %d", len(collections))
	}
}

func TestLoader_ScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "cat | kot\ncat | kotek\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "\xff\n")

	reports, err := NewLoader(nil).ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	if reports[0].Err != nil || reports[0].ID != 1 || len(reports[0].Warnings) != 1 {
		t.Errorf("Unexpected first report: %+v", reports[0])
	}
	if !errors.Is(reports[1].Err, ErrInvalidText) || reports[1].ID != 2 || reports[1].Collection != nil {
		t.Errorf("Unexpected second report: %+v", reports[1])
	}
}
