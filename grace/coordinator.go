// Package grace delays finalization of detected matches. Each registered
// match gets a timer of the configured grace duration; until it fires the
// match can be reset (fresh timer, new callback) or removed outright. Once
// an entry is removed or reset, its previous callback will never run, even
// if the underlying timer already fired and is waiting on the lock.
package grace

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/letterfall/matcher"
)

// A Notifier receives fire-and-forget presentation events. Implementations
// must not block; a panicking notifier is logged and ignored so it cannot
// abort coordinator operations.
type Notifier interface {
	StartPendingPresentation(key string, m matcher.Match)
	ResetPendingPresentation(key string)
	ClearPendingPresentation(key string)
}

// An ExpiryFunc runs when a pending word's grace period elapses without the
// word being removed or reset.
type ExpiryFunc func(key string)

type entry struct {
	match matcher.Match
	timer TimerHandle
	// gen guards against a stale timer firing after a reset: the fire path
	// re-checks it under the lock before invoking the callback.
	gen       uint64
	onExpired ExpiryFunc
}

// Coordinator tracks pending words by key. All methods are safe for
// concurrent use; expiry callbacks run outside the lock.
type Coordinator struct {
	mu       sync.Mutex
	duration time.Duration
	columns  int
	sched    Scheduler
	notifier Notifier
	entries  map[string]*entry
}

// NewCoordinator creates a coordinator with the given grace duration. The
// column count is needed to derive anchor coordinates for keys. A nil
// scheduler defaults to the wall-clock one; a nil notifier is allowed.
func NewCoordinator(duration time.Duration, columns int, sched Scheduler, notifier Notifier) *Coordinator {
	if sched == nil {
		sched = NewTimerScheduler()
	}
	return &Coordinator{
		duration: duration,
		columns:  columns,
		sched:    sched,
		notifier: notifier,
		entries:  map[string]*entry{},
	}
}

// GenerateKey derives the deterministic key correlating repeated sightings
// of the same match occurrence: word, direction, and the anchor cell's
// row/col.
func (c *Coordinator) GenerateKey(m matcher.Match) string {
	row, col := m.Anchor(c.columns)
	return fmt.Sprintf("%s|%s|%d|%d", m.Word, m.Direction, row, col)
}

// AddPendingWord registers a match under its key and starts its grace
// timer. It returns the key. Registering a key that already has a live
// entry silently replaces the whole entry, presentation restart and all;
// callers wanting restart semantics should use ResetGracePeriod.
func (c *Coordinator) AddPendingWord(m matcher.Match, onExpired ExpiryFunc) string {
	key := c.GenerateKey(m)
	c.mu.Lock()
	if old, ok := c.entries[key]; ok {
		old.timer.Cancel()
		old.gen++
	}
	e := &entry{match: m, onExpired: onExpired}
	c.entries[key] = e
	e.timer = c.sched.Schedule(c.duration, c.expireFunc(key, e, e.gen))
	c.mu.Unlock()

	c.notify(func(n Notifier) { n.StartPendingPresentation(key, m) })
	return key
}

// ResetGracePeriod cancels the key's current timer and starts a fresh one
// of the full duration with the new callback. The superseded callback never
// runs. Unknown keys are a no-op; a nil callback means nothing happens on
// expiry beyond entry removal.
func (c *Coordinator) ResetGracePeriod(key string, onExpired ExpiryFunc) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	e.timer.Cancel()
	e.gen++
	e.onExpired = onExpired
	e.timer = c.sched.Schedule(c.duration, c.expireFunc(key, e, e.gen))
	c.mu.Unlock()

	c.notify(func(n Notifier) { n.ResetPendingPresentation(key) })
}

// RemovePendingWord cancels the key's timer and drops the entry without
// invoking its callback. Unknown keys are a no-op.
func (c *Coordinator) RemovePendingWord(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		e.timer.Cancel()
		e.gen++
		delete(c.entries, key)
	}
	c.mu.Unlock()
	if !ok {
		return
	}
	c.notify(func(n Notifier) { n.ClearPendingPresentation(key) })
}

// ClearAll cancels every live timer and empties the registry. No callback
// from any previously registered entry will run afterwards.
func (c *Coordinator) ClearAll() {
	c.mu.Lock()
	keys := make([]string, 0, len(c.entries))
	for key, e := range c.entries {
		e.timer.Cancel()
		e.gen++
		keys = append(keys, key)
	}
	c.entries = map[string]*entry{}
	c.mu.Unlock()

	for _, key := range keys {
		c.notify(func(n Notifier) { n.ClearPendingPresentation(key) })
	}
}

// AllPendingWords returns a snapshot of the live entries, keyed as
// registered. Mutating the result does not affect the coordinator.
func (c *Coordinator) AllPendingWords() map[string]matcher.Match {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[string]matcher.Match, len(c.entries))
	for key, e := range c.entries {
		m := e.match
		m.Positions = append([]int(nil), e.match.Positions...)
		snapshot[key] = m
	}
	return snapshot
}

// expireFunc builds the timer callback for one (key, entry, generation)
// triple. The identity and generation checks make expiry at-most-once: any
// reset, removal, or re-registration invalidates this callback before it
// can run.
func (c *Coordinator) expireFunc(key string, e *entry, gen uint64) func() {
	return func() {
		c.mu.Lock()
		cur, ok := c.entries[key]
		if !ok || cur != e || e.gen != gen {
			c.mu.Unlock()
			return
		}
		onExpired := e.onExpired
		delete(c.entries, key)
		c.mu.Unlock()

		c.notify(func(n Notifier) { n.ClearPendingPresentation(key) })
		if onExpired != nil {
			onExpired(key)
		}
	}
}

func (c *Coordinator) notify(fn func(Notifier)) {
	if c.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("pending-presentation notifier panicked")
		}
	}()
	fn(c.notifier)
}
