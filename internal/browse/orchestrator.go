// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/menu-browser/internal/menu"
	"github.com/pdiddy/menu-browser/pkg/types"
)

// DefaultDebounceInterval is the quiet period before typed text is
// committed as the active query.
const DefaultDebounceInterval = 500 * time.Millisecond

// Filterer answers combined text-and-category queries. *menu.Engine
// implements it.
type Filterer interface {
	Filter(ctx context.Context, text string, sel menu.Selection) ([]types.MenuItem, error)
}

// Orchestrator ties search input to the local store. It mirrors raw
// text immediately, debounces query commits, re-queries on every state
// change, and publishes grouped sections. Re-queries run
// asynchronously; each carries a sequence number and stale completions
// are discarded, so the published view always reflects the most
// recently issued query.
type Orchestrator struct {
	engine Filterer
	known  []string
	log    *zap.Logger

	debounce *Debouncer

	// pubMu serializes publish decisions and their OnUpdate calls so
	// callbacks arrive in publish order while o.mu stays free.
	pubMu sync.Mutex

	mu        sync.Mutex
	rawText   string
	committed string
	flags     []bool
	issued    uint64
	published uint64
	view      []types.Section
	onUpdate  func([]types.Section)
	onError   func(error)
}

// New returns an Orchestrator over engine with one toggle per entry of
// cfg.Categories (DefaultCategories when empty). Callbacks are unset
// until OnUpdate/OnError are called.
func New(engine Filterer, cfg types.BrowseConfig, log *zap.Logger) *Orchestrator {
	known := cfg.Categories
	if len(known) == 0 {
		known = types.DefaultCategories
	}
	interval := cfg.DebounceInterval
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	o := &Orchestrator{
		engine: engine,
		known:  append([]string(nil), known...),
		log:    log,
		flags:  make([]bool, len(known)),
	}
	o.debounce = NewDebouncer(interval, func(text string) {
		o.commit(context.Background(), text)
	})
	return o
}

// OnUpdate registers the view-model sink. The callback runs on the
// re-query goroutine, one publish at a time and in publish order; it
// may read Orchestrator state.
func (o *Orchestrator) OnUpdate(fn func([]types.Section)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onUpdate = fn
}

// OnError registers the sink for failed re-queries. A failed re-query
// publishes nothing; the previous view model stays in place.
func (o *Orchestrator) OnError(fn func(error)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onError = fn
}

// Categories returns the fixed toggle labels, in display order.
func (o *Orchestrator) Categories() []string {
	return append([]string(nil), o.known...)
}

// RawText returns the text as last typed, ahead of any commit.
func (o *Orchestrator) RawText() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rawText
}

// CommittedQuery returns the text currently used for filtering.
func (o *Orchestrator) CommittedQuery() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.committed
}

// Flags returns a copy of the category toggle vector.
func (o *Orchestrator) Flags() []bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]bool(nil), o.flags...)
}

// View returns the currently published view model.
func (o *Orchestrator) View() []types.Section {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// SetText records a keystroke: raw text updates immediately for UI
// echo, and the commit is (re)scheduled so rapid edits coalesce into
// one re-query with the final text.
func (o *Orchestrator) SetText(text string) {
	o.mu.Lock()
	o.rawText = text
	o.mu.Unlock()
	o.debounce.Schedule(text)
}

// Toggle flips one category selection and re-queries immediately,
// without debouncing.
func (o *Orchestrator) Toggle(ctx context.Context, i int) {
	o.mu.Lock()
	if i < 0 || i >= len(o.flags) {
		o.mu.Unlock()
		return
	}
	o.flags[i] = !o.flags[i]
	o.mu.Unlock()
	o.requery(ctx)
}

// Refresh issues a re-query with the current committed state. Called
// once after bootstrap to publish the initial view model.
func (o *Orchestrator) Refresh(ctx context.Context) {
	o.requery(ctx)
}

func (o *Orchestrator) commit(ctx context.Context, text string) {
	o.mu.Lock()
	o.committed = text
	o.mu.Unlock()
	o.requery(ctx)
}

// requery snapshots the committed state under a fresh sequence number
// and resolves it asynchronously. Completions tagged older than the
// latest published one are dropped, never published.
func (o *Orchestrator) requery(ctx context.Context) {
	o.mu.Lock()
	o.issued++
	seq := o.issued
	text := o.committed
	sel := menu.SelectionFromFlags(o.known, o.flags)
	o.mu.Unlock()

	go func() {
		items, err := o.engine.Filter(ctx, text, sel)
		if err != nil {
			o.log.Error("re-query failed", zap.Uint64("seq", seq), zap.Error(err))
			o.mu.Lock()
			fn := o.onError
			o.mu.Unlock()
			if fn != nil {
				fn(err)
			}
			return
		}

		sections := menu.GroupSections(items)

		o.pubMu.Lock()
		defer o.pubMu.Unlock()

		o.mu.Lock()
		if seq < o.published {
			o.mu.Unlock()
			o.log.Debug("dropping stale result",
				zap.Uint64("seq", seq), zap.Uint64("published", o.published))
			return
		}
		o.published = seq
		o.view = sections
		fn := o.onUpdate
		o.mu.Unlock()

		if fn != nil {
			fn(sections)
		}
	}()
}
