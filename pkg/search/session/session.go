// Package session composes the ranker, debouncer and history store
// into a stateful search session for interactive use: the UI feeds raw
// keystrokes in, ranked results and recent queries come out.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/gidipin/gidisearch/pkg/debounce"
	"github.com/gidipin/gidisearch/pkg/models"
	"github.com/gidipin/gidisearch/pkg/search"
	"github.com/gidipin/gidisearch/pkg/search/history"
)

// Defaults applied by NewController when a Config field is left at its
// zero value.
const (
	DefaultMinQueryLength   = 2
	DefaultDebounceInterval = 250 * time.Millisecond
)

// Source supplies the current item collection for each search pass.
// Items are ranked fresh on every pass; the controller keeps no copy.
type Source func() []models.SearchableItem

// Config configures a search session.
type Config struct {
	MinQueryLength   int           // queries shorter than this clear results instead of searching
	DebounceInterval time.Duration // quiet period before a pass fires
	SaveHistory      bool          // record completed searches in the history store
	Ranker           search.Options
}

// DefaultConfig returns the session defaults, with history saving on.
func DefaultConfig() Config {
	return Config{
		MinQueryLength:   DefaultMinQueryLength,
		DebounceInterval: DefaultDebounceInterval,
		SaveHistory:      true,
		Ranker:           search.DefaultOptions(),
	}
}

// Controller is a stateful search session. SetQuery records the query
// immediately so the UI can echo it, then debounces the ranking pass;
// at most one pass is pending at any time, and a newer query
// supersedes an older pending one.
//
// State is mutex-guarded because the debounced pass runs on a timer
// goroutine while the UI reads from its own.
type Controller struct {
	mu        sync.RWMutex
	cfg       Config
	source    Source
	store     *history.Store
	debouncer *debounce.Debouncer

	query       string
	results     []models.SearchableItem
	isSearching bool
	history     []string

	updates chan struct{}
}

// NewController creates a session over the given item source. store may
// be nil, in which case no history is kept regardless of SaveHistory.
func NewController(source Source, store *history.Store, cfg Config) *Controller {
	if cfg.MinQueryLength == 0 {
		cfg.MinQueryLength = DefaultMinQueryLength
	}
	if cfg.DebounceInterval == 0 {
		cfg.DebounceInterval = DefaultDebounceInterval
	}

	c := &Controller{
		cfg:       cfg,
		source:    source,
		store:     store,
		debouncer: debounce.New(cfg.DebounceInterval),
		updates:   make(chan struct{}, 1),
	}

	if store != nil {
		c.history = store.Get()
	}

	return c
}

// SetQuery records q synchronously and schedules a debounced ranking
// pass for it.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.mu.Unlock()

	c.debouncer.Do(func() {
		c.runSearch(q)
	})
}

// Query returns the current raw query as last set.
func (c *Controller) Query() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Results returns the last computed ranked results.
func (c *Controller) Results() []models.SearchableItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.SearchableItem, len(c.results))
	copy(out, c.results)
	return out
}

// IsSearching reports whether a ranking pass is in progress.
func (c *Controller) IsSearching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isSearching
}

// History returns the recent queries, newest first.
func (c *Controller) History() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Updates returns a channel that receives a signal after each completed
// pass or history change. Signals coalesce; consumers re-read the
// current state rather than counting them.
func (c *Controller) Updates() <-chan struct{} {
	return c.updates
}

// ClearHistory empties the history store.
func (c *Controller) ClearHistory() {
	if c.store != nil {
		c.store.Clear()
	}
	c.refreshHistory()
	c.notify()
}

// RemoveFromHistory drops a single query from the history store.
func (c *Controller) RemoveFromHistory(q string) {
	if c.store != nil {
		c.store.Remove(q)
	}
	c.refreshHistory()
	c.notify()
}

// Close cancels any pending ranking pass.
func (c *Controller) Close() {
	c.debouncer.Cancel()
}

// runSearch is the debounced ranking pass.
func (c *Controller) runSearch(q string) {
	trimmed := strings.TrimSpace(q)

	c.mu.Lock()
	c.isSearching = true
	minLen := c.cfg.MinQueryLength

	if len(trimmed) < minLen {
		// Too short to search: clear results, record nothing.
		c.results = nil
		c.isSearching = false
		c.mu.Unlock()
		c.notify()
		return
	}
	c.mu.Unlock()

	var items []models.SearchableItem
	if c.source != nil {
		items = c.source()
	}
	ranked := search.Rank(items, q, c.cfg.Ranker)

	c.mu.Lock()
	c.results = ranked
	c.isSearching = false
	c.mu.Unlock()

	if c.cfg.SaveHistory && c.store != nil {
		c.store.Add(trimmed)
		c.refreshHistory()
	}

	c.notify()
}

func (c *Controller) refreshHistory() {
	if c.store == nil {
		return
	}
	entries := c.store.Get()
	c.mu.Lock()
	c.history = entries
	c.mu.Unlock()
}

// notify signals Updates without blocking; a signal already pending
// covers this one too.
func (c *Controller) notify() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
