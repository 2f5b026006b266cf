package annotation

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxRootSearchDepth bounds how many directories FindProjectRoot inspects.
const maxRootSearchDepth = 6

// FindProjectRoot walks up from start looking for a directory holding
// photocheck.yaml or go.mod. When none is found start itself is returned.
func FindProjectRoot(start string) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("while resolving %q: %w", start, err)
	}
	dir := start
	for i := 0; i < maxRootSearchDepth; i++ {
		for _, marker := range []string{ConfigFileName, "go.mod"} {
			if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start, nil
}

// DefaultDatabasePath resolves cfg.Database against root and creates its directory.
func DefaultDatabasePath(root string, cfg *Config) (string, error) {
	p := cfg.Database
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("while resolving database path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("while creating database directory: %w", err)
	}
	return p, nil
}
