// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/menu-browser/pkg/types"
)

// Source is the one-shot remote catalog fetch. Consulted only when the
// local store is empty.
type Source interface {
	FetchMenu(ctx context.Context) ([]types.MenuItem, error)
}

// Storage is the store surface the bootstrap path writes through.
type Storage interface {
	EnsureSchema(ctx context.Context) error
	LoadAll(ctx context.Context) ([]types.MenuItem, error)
	UpsertAll(ctx context.Context, items []types.MenuItem) error
}

// Bootstrap prepares the working set at startup: ensure the schema,
// read the local store, and only if it is empty pull from the remote
// source and persist the result. A fetch failure degrades to an empty
// catalog (logged, not retried, not fatal); store failures propagate.
func Bootstrap(ctx context.Context, st Storage, src Source, log *zap.Logger) ([]types.MenuItem, error) {
	if err := st.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	items, err := st.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		log.Debug("using cached catalog", zap.Int("items", len(items)))
		return items, nil
	}

	fetched, err := src.FetchMenu(ctx)
	if err != nil {
		log.Warn("catalog fetch failed, starting with empty catalog", zap.Error(err))
		return []types.MenuItem{}, nil
	}

	if err := st.UpsertAll(ctx, fetched); err != nil {
		return nil, err
	}
	log.Info("catalog fetched and persisted", zap.Int("items", len(fetched)))
	return fetched, nil
}

// Refresh forces a fetch and persists whatever comes back, replacing
// rows that share an id. Existing rows are never deleted.
func Refresh(ctx context.Context, st Storage, src Source, log *zap.Logger) ([]types.MenuItem, error) {
	if err := st.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	fetched, err := src.FetchMenu(ctx)
	if err != nil {
		log.Warn("catalog fetch failed, keeping cached catalog", zap.Error(err))
		return st.LoadAll(ctx)
	}

	if err := st.UpsertAll(ctx, fetched); err != nil {
		return nil, err
	}
	log.Info("catalog refreshed", zap.Int("items", len(fetched)))
	return st.LoadAll(ctx)
}
