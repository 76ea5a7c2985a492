// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filter keeps the visible subset of a catalog in sync with the
// user's category and query selection. Recomputation is debounced: every
// change marks the result as computing and only the most recent change,
// once input has been quiet for the configured delay, is committed.
package filter

import (
	"log"
	"slices"
	"sync"
	"time"

	"github.com/cybrota/showcase/catalog"
)

// DefaultDelay is the debounce window used when no delay is configured.
const DefaultDelay = 300 * time.Millisecond

// State is the user-owned filter selection.
type State struct {
	Category catalog.Category
	Query    string
}

// Active reports whether the state narrows the catalog at all.
func (s State) Active() bool {
	return s.Category != catalog.All || s.Query != ""
}

// Result is a snapshot of the engine output.
type Result struct {
	// Items is the last committed subset in dataset order. While Computing is
	// true it still holds the previous commit.
	Items     []catalog.Item
	Computing bool
	// State is the selection Items was derived from.
	State State
}

// Engine owns the filter state, the pending debounce timer and the last
// committed result. It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	items []catalog.Item
	delay time.Duration
	sched Scheduler

	state     State
	committed State
	visible   []catalog.Item
	computing bool

	pending    Timer
	generation uint64
	recomputed int
	closed     bool

	subs   map[int]func(Result)
	nextID int
}

type Option func(*Engine)

// WithDelay sets the debounce window. Non-positive values commit on the next
// scheduler tick.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d < 0 {
			d = 0
		}
		e.delay = d
	}
}

// WithScheduler replaces the wall-clock timer source.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// New creates an engine over items. It starts settled with every item visible.
func New(items []catalog.Item, opts ...Option) *Engine {
	e := &Engine{
		items: items,
		delay: DefaultDelay,
		sched: wallClock{},
		subs:  make(map[int]func(Result)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.visible = catalog.Filter(items, catalog.All, "")
	return e
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Recomputations returns how many debounced recomputations have committed.
func (e *Engine) Recomputations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recomputed
}

func (e *Engine) SetCategory(c catalog.Category) {
	e.mu.Lock()
	next := e.state
	next.Category = c
	e.mu.Unlock()
	e.Update(next)
}

func (e *Engine) SetQuery(q string) {
	e.mu.Lock()
	next := e.state
	next.Query = q
	e.mu.Unlock()
	e.Update(next)
}

// Clear resets category and query together, costing a single debounce cycle.
func (e *Engine) Clear() {
	e.Update(State{Category: catalog.All})
}

// Update replaces the filter state. An unchanged state is ignored; otherwise
// the engine enters the computing state and re-arms the debounce timer.
func (e *Engine) Update(next State) {
	if !next.Category.Valid() {
		log.Printf("filter: ignoring invalid category %d", int(next.Category))
		return
	}

	e.mu.Lock()
	if e.closed || next == e.state {
		e.mu.Unlock()
		return
	}

	e.state = next
	e.computing = true
	if e.pending != nil {
		e.pending.Stop()
	}
	e.generation++
	gen := e.generation
	e.pending = e.sched.AfterFunc(e.delay, func() { e.commit(gen) })

	res, subs := e.snapshot(), e.subscribers()
	e.mu.Unlock()

	notify(subs, res)
}

func (e *Engine) commit(gen uint64) {
	e.mu.Lock()
	// A stale timer may still fire if Stop lost the race.
	if e.closed || gen != e.generation {
		e.mu.Unlock()
		return
	}

	e.visible = catalog.Filter(e.items, e.state.Category, e.state.Query)
	e.committed = e.state
	e.computing = false
	e.pending = nil
	e.recomputed++

	res, subs := e.snapshot(), e.subscribers()
	e.mu.Unlock()

	notify(subs, res)
}

// Subscribe registers fn to receive a snapshot after every transition.
// fn runs outside the engine lock, possibly on a timer goroutine.
func (e *Engine) Subscribe(fn func(Result)) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Close cancels any pending recomputation. After Close nothing is committed
// and further updates are ignored. Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	clear(e.subs)
}

func (e *Engine) snapshot() Result {
	return Result{
		Items:     slices.Clip(e.visible),
		Computing: e.computing,
		State:     e.committed,
	}
}

func (e *Engine) subscribers() []func(Result) {
	if len(e.subs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	subs := make([]func(Result), len(ids))
	for i, id := range ids {
		subs[i] = e.subs[id]
	}
	return subs
}

func notify(subs []func(Result), res Result) {
	for _, fn := range subs {
		fn(res)
	}
}
