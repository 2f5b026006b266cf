package annotation

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	applog "github.com/lewtec/photocheck/internal/log"
)

// ImageUpserter is the part of the store ImportFolder writes to.
type ImageUpserter interface {
	BaseDir() string
	UpsertImage(ctx context.Context, filePath, displayName string) (int64, error)
}

type ImportOptions struct {
	// Extensions defaults to DefaultExtensions when empty.
	Extensions []string
	Recursive  bool
}

type ImportResult struct {
	Added   int
	Skipped int
}

// ImportFolder registers every recognized image file under folder.
// Paths are stored relative to the store's base directory when possible.
// Failures of single files are collected and the import goes on.
func ImportFolder(ctx context.Context, st ImageUpserter, folder string, opts ImportOptions) (ImportResult, error) {
	logger := applog.WithOperation(applog.WithComponent("import"), "folder")
	var result ImportResult

	folder, err := filepath.Abs(folder)
	if err != nil {
		return result, fmt.Errorf("while resolving folder: %w", err)
	}
	info, err := os.Stat(folder)
	if err != nil {
		return result, fmt.Errorf("while opening folder %q: %w", folder, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%q is not a folder", folder)
	}

	files, err := listFiles(folder, opts.Recursive)
	if err != nil {
		return result, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	recognized := make(map[string]bool, len(exts))
	for _, ext := range exts {
		recognized[strings.ToLower(ext)] = true
	}

	var errs *multierror.Error
	failed := 0
	baseDir := st.BaseDir()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}
		if !recognized[strings.ToLower(filepath.Ext(file))] {
			result.Skipped++
			continue
		}
		stored := storedPath(baseDir, file)
		if _, err := st.UpsertImage(ctx, stored, filepath.Base(file)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("while importing %q: %w", file, err))
			failed++
			continue
		}
		logger.Debug("image imported", slog.String("path", stored))
		result.Added++
	}

	logger.Info("import finished",
		slog.String("folder", folder),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", failed))
	return result, errs.ErrorOrNil()
}

func listFiles(folder string, recursive bool) ([]string, error) {
	var files []string
	if !recursive {
		entries, err := os.ReadDir(folder)
		if err != nil {
			return nil, fmt.Errorf("while listing %q: %w", folder, err)
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				files = append(files, filepath.Join(folder, e.Name()))
			}
		}
		return files, nil
	}
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("while walking %q: %w", folder, err)
	}
	return files, nil
}

// storedPath makes file relative to baseDir, falling back to the absolute path.
func storedPath(baseDir, file string) string {
	if baseDir == "" {
		return file
	}
	rel, err := filepath.Rel(baseDir, file)
	if err != nil {
		return file
	}
	return rel
}
