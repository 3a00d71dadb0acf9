package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/config"
)

// New builds the RowStore selected by the storage configuration.
func New(cfg config.StorageConfig, logger *zap.Logger) (RowStore, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "csv":
		return NewCSVStore(cfg.DataDir, logger)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create data dir: %v", ErrUnavailable, err)
		}
		return NewSQLiteStore(cfg.SQLitePath, logger)
	case "xlsx":
		if err := os.MkdirAll(filepath.Dir(cfg.XLSXPath), 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create data dir: %v", ErrUnavailable, err)
		}
		return NewXLSXStore(cfg.XLSXPath, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
