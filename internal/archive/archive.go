package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveResults moves the saved results directory into
// <parent>/archive/results-<timestamp> and returns the new path. A fresh
// results directory is created on the next save.
func ArchiveResults(resultsDir string) (string, error) {
	info, err := os.Stat(resultsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("results directory does not exist: %s", resultsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to inspect results directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("results path is not a directory: %s", resultsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(filepath.Clean(resultsDir))
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, "results-"+now.Format("20060102-150405"))

	// Two archives within the same second get sub-second precision
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, "results-"+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(resultsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive results directory: %w", err)
	}

	return archivePath, nil
}
