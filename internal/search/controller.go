package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/logger"
	"storefront-core/internal/metrics"
	"storefront-core/internal/product"
)

// Navigator is called when the user commits a suggestion; it hands the
// selected product to the external routing layer.
type Navigator func(product.Product)

// Controller drives the debounced product-suggestion state machine.
//
// Two counters make cancellation deterministic instead of relying on
// closure capture: timerGen invalidates pending debounce timers on every
// keystroke, and queryGen advances whenever the term changes, so a response
// tagged with a stale queryGen can never overwrite newer state.
type Controller struct {
	mu       sync.Mutex
	repo     product.Repository
	navigate Navigator
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	term         string
	status       Status
	results      []product.Product
	selected     int
	lastSearched string
	errMessage   string
	open         bool

	timerGen    uint64
	queryGen    uint64
	timer       *time.Timer
	inFlight    bool
	inFlightGen uint64
	closed      bool
}

func NewController(repo product.Repository, navigate Navigator, debounce time.Duration) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		repo:     repo,
		navigate: navigate,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		status:   StatusIdle,
		selected: NoSelection,
	}
}

// Input handles a keystroke: it cancels any pending debounce timer and
// starts a new one, moving the machine to Debouncing regardless of its
// current state.
func (c *Controller) Input(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
		metrics.SearchDebounceCancelsTotal.Inc()
	}

	c.timerGen++
	if term != c.term {
		c.queryGen++
	}
	c.term = term
	c.status = StatusDebouncing
	c.open = true
	c.selected = NoSelection

	gen := c.timerGen
	c.timer = time.AfterFunc(c.debounce, func() { c.settle(gen) })
}

// settle runs when a debounce timer fires. A timer whose generation is no
// longer current was superseded by a later keystroke and does nothing.
func (c *Controller) settle(timerGen uint64) {
	c.mu.Lock()

	if c.closed || timerGen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	term := c.term
	if term == "" {
		c.status = StatusIdle
		c.results = nil
		c.selected = NoSelection
		// The cleared results no longer answer any term, so retyping
		// the last searched term must hit the backend again.
		c.lastSearched = ""
		c.mu.Unlock()
		return
	}

	// The current results already answer this exact term; re-searching
	// would be a redundant network call.
	if c.lastSearched == term && c.errMessage == "" {
		c.status = statusFor(c.results)
		c.mu.Unlock()
		return
	}

	// A request for this exact term is still in flight; wait for it.
	if c.inFlight && c.inFlightGen == c.queryGen {
		c.status = StatusLoading
		c.mu.Unlock()
		return
	}

	c.status = StatusLoading
	c.inFlight = true
	c.inFlightGen = c.queryGen
	gen := c.queryGen
	c.mu.Unlock()

	metrics.SearchRequestsTotal.Inc()
	go c.execute(gen, term)
}

// execute issues the single search request for a settled term and applies
// the response only if the term is still current.
func (c *Controller) execute(gen uint64, term string) {
	log := logger.L().With(
		zap.String("layer", "search"),
		zap.String("term", term),
	)

	results, err := c.repo.SearchProducts(c.ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if gen == c.inFlightGen {
		c.inFlight = false
	}
	if gen != c.queryGen {
		// The user kept typing; this response answers an older term.
		metrics.SearchStaleDroppedTotal.Inc()
		log.Debug("stale search response dropped")
		return
	}

	if err != nil {
		log.Warn("search failed", zap.Error(err))
		c.status = StatusError
		c.errMessage = err.Error()
		c.results = nil
		c.selected = NoSelection
		// Clearing the guard lets the user retry by retyping the term.
		c.lastSearched = ""
		return
	}

	c.lastSearched = term
	c.errMessage = ""
	c.results = results
	c.selected = NoSelection
	c.status = statusFor(results)
	log.Debug("search results applied", zap.Int("count", len(results)))
}

func statusFor(results []product.Product) Status {
	if len(results) == 0 {
		return StatusEmpty
	}
	return StatusResults
}

// SelectNext moves the highlight down one suggestion, wrapping from the
// last index to 0.
func (c *Controller) SelectNext() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.navigable() {
		return
	}
	c.selected = (c.selected + 1) % len(c.results)
}

// SelectPrev moves the highlight up one suggestion, wrapping from 0 to the
// last index.
func (c *Controller) SelectPrev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.navigable() {
		return
	}
	if c.selected <= 0 {
		c.selected = len(c.results) - 1
		return
	}
	c.selected--
}

// navigable reports whether keyboard navigation applies: a non-empty result
// list with the dropdown open.
func (c *Controller) navigable() bool {
	return !c.closed && c.open && c.status == StatusResults && len(c.results) > 0
}

// Commit picks the highlighted suggestion, or the first one when nothing is
// highlighted, resets the machine to Idle with a cleared term, and hands
// the product to the navigator.
func (c *Controller) Commit() (product.Product, bool) {
	c.mu.Lock()

	if !c.navigable() {
		c.mu.Unlock()
		return product.Product{}, false
	}

	idx := c.selected
	if idx == NoSelection {
		idx = 0
	}
	picked := c.results[idx]

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.term = ""
	c.status = StatusIdle
	c.results = nil
	c.selected = NoSelection
	c.open = false
	c.lastSearched = ""
	c.errMessage = ""
	c.timerGen++
	c.queryGen++
	c.mu.Unlock()

	if c.navigate != nil {
		c.navigate(picked)
	}
	return picked, true
}

// Dismiss closes the dropdown without clearing the term (escape key).
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

// CloseDropdown handles a click outside the search surface: the visible
// state reverts to Idle but the typed term is retained.
func (c *Controller) CloseDropdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = false
	c.status = StatusIdle
}

// Close tears the controller down: the pending timer is cancelled and any
// in-flight response is ignored when it resolves.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.cancel()
}

// Snapshot returns a copy of the current search state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]product.Product, len(c.results))
	copy(results, c.results)

	return Snapshot{
		Term:          c.term,
		Status:        c.status,
		Results:       results,
		SelectedIndex: c.selected,
		DropdownOpen:  c.open,
		ErrMessage:    c.errMessage,
	}
}
