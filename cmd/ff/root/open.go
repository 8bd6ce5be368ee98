package root

import (
	"context"

	"focusflow/internal/config"
	"focusflow/internal/engine"
	"focusflow/internal/logging"
	"focusflow/internal/storage"
)

func openEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	eng, err := engine.New(ctx, storage.NewStateStore(db), log)
	if err != nil {
		_ = db.Close()
		_ = log.Sync()
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return eng, cleanup, nil
}
