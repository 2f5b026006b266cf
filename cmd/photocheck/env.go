package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/annotation"
	applog "github.com/lewtec/photocheck/internal/log"
	"github.com/lewtec/photocheck/internal/store"
)

// env is what every subcommand needs: the resolved config and database location.
type env struct {
	cfg        *annotation.Config
	root       string
	configPath string
	dbPath     string
}

// current is set by the root command before any subcommand runs.
var current *env

// loadEnv resolves config, project root and database path, then sets up logging.
func loadEnv(cmd *cobra.Command) (*env, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	databaseFlag, _ := cmd.Flags().GetString("database")
	levelFlag, _ := cmd.Flags().GetString("log-level")

	e := &env{cfg: annotation.DefaultConfig()}
	if configFlag != "" {
		abs, err := filepath.Abs(configFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		e.configPath = abs
		e.root = filepath.Dir(abs)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		e.root, err = annotation.FindProjectRoot(wd)
		if err != nil {
			return nil, err
		}
		e.configPath = filepath.Join(e.root, annotation.ConfigFileName)
	}

	cfg, err := annotation.LoadConfig(e.configPath)
	switch {
	case err == nil:
		e.cfg = cfg
	case errors.Is(err, fs.ErrNotExist) && (configFlag == "" || cmd == initCmd):
	default:
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := e.cfg.LogOptions()
	if v := os.Getenv(applog.EnvLogLevel); v != "" {
		opts.Level = v
	}
	if levelFlag != "" {
		opts.Level = levelFlag
	}
	opts.Output = cmd.ErrOrStderr()
	applog.Init(opts)

	if databaseFlag != "" {
		e.dbPath, err = filepath.Abs(databaseFlag)
	} else {
		e.dbPath, err = annotation.DefaultDatabasePath(e.root, e.cfg)
	}
	if err != nil {
		return nil, err
	}

	applog.WithComponent("cli").Debug("environment resolved",
		slog.String("root", e.root),
		slog.String("config", e.configPath),
		slog.String("database", e.dbPath))
	return e, nil
}

func (e *env) openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, e.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
