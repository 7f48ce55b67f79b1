package storage

import (
	"fmt"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/config"
)

// New builds the repository set selected by STORAGE_BACKEND, plus a close
// function for shutdown.
func New(cfg *config.Config, logger internal.Logger) (*Repositories, func() error, error) {
	switch cfg.StorageKind {
	case "file":
		s, err := NewFileStorage(cfg.CheckinsFile, cfg.NotesFile, cfg.ContactsFile, logger)
		if err != nil {
			return nil, nil, err
		}
		return &Repositories{CheckIns: s, Notes: s, Contacts: s}, s.Close, nil
	case "sqlite":
		s, err := NewSQLiteStorage(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return &Repositories{CheckIns: s, Notes: s, Contacts: s}, s.Close, nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return &Repositories{CheckIns: s, Notes: s, Contacts: s}, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageKind)
	}
}
