package result

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateRunDir makes a timestamped directory for one benchmark run and
// points the "latest" symlink at it.
func CreateRunDir(baseDir string) (string, error) {
	runsDir := filepath.Join(baseDir, "runs")
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	runDir := filepath.Join(runsDir, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(baseDir, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}

// LatestRunDir resolves the "latest" symlink under baseDir.
func LatestRunDir(baseDir string) (string, error) {
	resolved, err := filepath.EvalSymlinks(filepath.Join(baseDir, "latest"))
	if err != nil {
		return "", fmt.Errorf("resolving latest run dir: %w", err)
	}
	return resolved, nil
}

// TablePath is where one sweep's result document lives inside a run dir.
func TablePath(runDir, variable string) string {
	return filepath.Join(runDir, variable+".json")
}
