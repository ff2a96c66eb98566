package collection

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Loader reads collection files from disk and logs their parse warnings.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a loader. A nil logger discards all output.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadFile parses one collection file and assigns it id.
func (l *Loader) LoadFile(path string, id int) (*Collection, Warnings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	c, warnings, err := Parse(f, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, w := range warnings {
		l.log.Warn(w.Kind.String(),
			zap.String("file", path),
			zap.Int("line", w.Line),
			zap.String("detail", w.Message),
		)
	}

	return c, warnings, nil
}

// FileReport is the outcome of loading one file of a directory.
type FileReport struct {
	Path       string
	ID         int
	Collection *Collection
	Warnings   Warnings
	Err        error
}

// ScanDir loads every regular file directly inside dir, in directory
// order, numbering them from 1. A file that cannot be read keeps its id
// and carries the error in its report. Only a failure to list dir is an
// error.
func (l *Loader) ScanDir(dir string) ([]FileReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var reports []FileReport
	id := 0
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		id++

		path := filepath.Join(dir, entry.Name())
		c, warnings, err := l.LoadFile(path, id)
		if err != nil {
			l.log.Warn("skipping collection file", zap.String("file", path), zap.Error(err))
		}
		reports = append(reports, FileReport{Path: path, ID: id, Collection: c, Warnings: warnings, Err: err})
	}
	return reports, nil
}

// LoadDir returns the collections ScanDir could load; files that failed
// are logged and left out, and their ids are not reused.
func (l *Loader) LoadDir(dir string) ([]*Collection, error) {
	reports, err := l.ScanDir(dir)
	if err != nil {
		return nil, err
	}

	var collections []*Collection
	for _, r := range reports {
		if r.Err == nil {
			collections = append(collections, r.Collection)
		}
	}

	l.log.Debug("collections loaded",
		zap.String("dir", dir),
		zap.Int("count", len(collections)),
	)
	return collections, nil
}
