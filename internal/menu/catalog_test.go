// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/menu-browser/pkg/types"
)

// --- fakes ---

type fakeStorage struct {
	items     []types.MenuItem
	schemaErr error
	upserts   int
}

func (f *fakeStorage) EnsureSchema(ctx context.Context) error { return f.schemaErr }

func (f *fakeStorage) LoadAll(ctx context.Context) ([]types.MenuItem, error) {
	return f.items, nil
}

func (f *fakeStorage) UpsertAll(ctx context.Context, items []types.MenuItem) error {
	f.upserts++
	f.items = append(f.items, items...)
	return nil
}

type fakeSource struct {
	items []types.MenuItem
	err   error
	calls int
}

func (f *fakeSource) FetchMenu(ctx context.Context) ([]types.MenuItem, error) {
	f.calls++
	return f.items, f.err
}

// --- tests ---

func TestBootstrapFetchesWhenStoreEmpty(t *testing.T) {
	st := &fakeStorage{}
	src := &fakeSource{items: catalogItems()}

	items, err := Bootstrap(context.Background(), st, src, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Errorf("got %d items, want 4", len(items))
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}
	if st.upserts != 1 {
		t.Errorf("upserts = %d, want 1", st.upserts)
	}
}

func TestBootstrapSkipsFetchWhenStorePopulated(t *testing.T) {
	st := &fakeStorage{items: catalogItems()}
	src := &fakeSource{}

	items, err := Bootstrap(context.Background(), st, src, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Errorf("got %d items, want 4", len(items))
	}
	if src.calls != 0 {
		t.Errorf("source calls = %d, want 0", src.calls)
	}
}

func TestBootstrapDegradesToEmptyOnFetchFailure(t *testing.T) {
	st := &fakeStorage{}
	src := &fakeSource{err: errors.New("network down")}

	items, err := Bootstrap(context.Background(), st, src, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
	if st.upserts != 0 {
		t.Errorf("upserts = %d, want 0", st.upserts)
	}
}

func TestBootstrapPropagatesStoreError(t *testing.T) {
	schemaErr := errors.New("disk full")
	st := &fakeStorage{schemaErr: schemaErr}

	_, err := Bootstrap(context.Background(), st, &fakeSource{}, zap.NewNop())
	if !errors.Is(err, schemaErr) {
		t.Errorf("err = %v, want %v", err, schemaErr)
	}
}

func TestRefreshFetchesEvenWhenPopulated(t *testing.T) {
	st := &fakeStorage{items: catalogItems()[:1]}
	src := &fakeSource{items: catalogItems()[1:]}

	items, err := Refresh(context.Background(), st, src, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}
	if len(items) != 4 {
		t.Errorf("got %d items, want 4", len(items))
	}
}

func TestRefreshKeepsCacheOnFetchFailure(t *testing.T) {
	st := &fakeStorage{items: catalogItems()}
	src := &fakeSource{err: errors.New("timeout")}

	items, err := Refresh(context.Background(), st, src, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Errorf("got %d items, want 4", len(items))
	}
}
