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

package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/showcase/catalog"
	"github.com/cybrota/showcase/filter"
	"github.com/cybrota/showcase/filter/filtertest"
)

const delay = 300 * time.Millisecond

func newEngine(t *testing.T) (*filter.Engine, *filtertest.ManualScheduler) {
	t.Helper()
	sched := filtertest.NewManualScheduler()
	e := filter.New(catalog.Builtin(), filter.WithDelay(delay), filter.WithScheduler(sched))
	t.Cleanup(e.Close)
	return e, sched
}

func titles(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestEngineStartsSettledWithEverything(t *testing.T) {
	e, sched := newEngine(t)

	res := e.Result()
	assert.False(t, res.Computing)
	assert.Equal(t, titles(catalog.Builtin()), titles(res.Items))
	assert.Equal(t, filter.State{Category: catalog.All}, res.State)
	assert.Zero(t, sched.Pending())
}

func TestEngineDebouncesToSingleRecompute(t *testing.T) {
	e, sched := newEngine(t)

	e.SetCategory(catalog.Hardware)
	sched.Advance(100 * time.Millisecond)
	e.SetQuery("d")
	sched.Advance(100 * time.Millisecond)
	e.SetQuery("dr")
	sched.Advance(100 * time.Millisecond)
	e.SetCategory(catalog.Military)
	e.SetQuery("drone")

	require.True(t, e.Result().Computing)
	require.Equal(t, 1, sched.Pending(), "only one timer may be armed")

	sched.Advance(delay - time.Millisecond)
	assert.True(t, e.Result().Computing, "must not commit before the window closes")
	assert.Zero(t, e.Recomputations())

	sched.Advance(time.Millisecond)
	res := e.Result()
	assert.False(t, res.Computing)
	assert.Equal(t, 1, e.Recomputations())
	assert.Equal(t, filter.State{Category: catalog.Military, Query: "drone"}, res.State)
	assert.Equal(t, []string{"Anti-GPS Jamming System for Drones"}, titles(res.Items))
}

func TestEngineComputingKeepsPreviousItems(t *testing.T) {
	e, sched := newEngine(t)

	e.SetCategory(catalog.Agriculture)
	sched.Advance(delay)
	require.Len(t, e.Result().Items, 2)

	e.SetQuery("zzz")
	res := e.Result()
	assert.True(t, res.Computing)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, catalog.Agriculture, res.State.Category)
	assert.Equal(t, filter.State{Category: catalog.Agriculture, Query: "zzz"}, e.State())

	sched.Advance(delay)
	res = e.Result()
	assert.False(t, res.Computing)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestEngineUnchangedStateIsIgnored(t *testing.T) {
	e, sched := newEngine(t)

	e.SetCategory(catalog.All)
	e.SetQuery("")
	e.Clear()

	assert.False(t, e.Result().Computing)
	assert.Zero(t, sched.Pending())
}

func TestEngineClearIsOneCycle(t *testing.T) {
	e, sched := newEngine(t)

	e.SetCategory(catalog.IoT)
	e.SetQuery("esp")
	sched.Advance(delay)
	require.Equal(t, 1, e.Recomputations())
	require.Len(t, e.Result().Items, 3)

	var seen []filter.Result
	cancel := e.Subscribe(func(r filter.Result) { seen = append(seen, r) })
	defer cancel()

	e.Clear()
	require.Len(t, seen, 1, "clear must notify once on entering computing")
	assert.True(t, seen[0].Computing)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(delay)
	assert.Equal(t, 2, e.Recomputations())
	require.Len(t, seen, 2)
	assert.False(t, seen[1].Computing)
	assert.Equal(t, titles(catalog.Builtin()), titles(seen[1].Items))
}

func TestEngineCountsAgreeWithCategoryFilter(t *testing.T) {
	items := catalog.Builtin()
	counts := catalog.Tally(items)

	for _, cat := range catalog.Categories() {
		e, sched := newEngine(t)
		e.Update(filter.State{Category: cat, Query: "x"})
		e.SetQuery("")
		sched.Advance(delay)

		res := e.Result()
		assert.Len(t, res.Items, counts.Of(cat), "category %v", cat)
		for _, it := range res.Items {
			assert.True(t, cat == catalog.All || it.HasCategory(cat), "%q lacks %v", it.Title, cat)
		}
	}
}

func TestEngineCloseCancelsPending(t *testing.T) {
	e, sched := newEngine(t)

	notified := 0
	e.Subscribe(func(filter.Result) { notified++ })

	e.SetQuery("gps")
	require.Equal(t, 1, notified)

	e.Close()
	assert.Zero(t, sched.Pending())

	sched.Advance(delay)
	sched.FireStale()
	assert.Equal(t, 1, notified, "no commit after close")
	assert.Zero(t, e.Recomputations())

	e.SetQuery("drone")
	assert.Equal(t, "gps", e.State().Query, "updates after close are ignored")
	e.Close()
}

func TestEngineStaleTimerNeverCommits(t *testing.T) {
	e, sched := newEngine(t)

	e.SetQuery("gps")
	e.SetQuery("mesh")
	sched.FireStale()

	assert.True(t, e.Result().Computing)
	assert.Zero(t, e.Recomputations())

	sched.Advance(delay)
	assert.Equal(t, []string{"Mesh Network for Remote Areas"}, titles(e.Result().Items))
	assert.Equal(t, 1, e.Recomputations())
}

func TestEngineRejectsInvalidCategory(t *testing.T) {
	e, sched := newEngine(t)

	e.SetCategory(catalog.Category(42))
	assert.Equal(t, catalog.All, e.State().Category)
	assert.Zero(t, sched.Pending())
}

func TestEngineUnsubscribe(t *testing.T) {
	e, sched := newEngine(t)

	calls := 0
	cancel := e.Subscribe(func(filter.Result) { calls++ })
	e.SetQuery("a")
	cancel()
	sched.Advance(delay)

	assert.Equal(t, 1, calls)
}

func TestEngineEmptyDataset(t *testing.T) {
	sched := filtertest.NewManualScheduler()
	e := filter.New(nil, filter.WithScheduler(sched))
	defer e.Close()

	e.SetCategory(catalog.Hardware)
	sched.Advance(filter.DefaultDelay)

	res := e.Result()
	assert.False(t, res.Computing)
	assert.Empty(t, res.Items)
}

func TestEngineWallClock(t *testing.T) {
	e := filter.New(catalog.Builtin(), filter.WithDelay(5*time.Millisecond))
	defer e.Close()

	done := make(chan filter.Result, 4)
	e.Subscribe(func(r filter.Result) {
		if !r.Computing {
			done <- r
		}
	})

	e.SetQuery("laser")

	select {
	case r := <-done:
		assert.Equal(t, []string{"Laser Warning System for T-95 Tank"}, titles(r.Items))
	case <-time.After(2 * time.Second):
		t.Fatal("debounced recomputation never committed")
	}
}

func TestStateActive(t *testing.T) {
	assert.False(t, filter.State{}.Active())
	assert.True(t, filter.State{Category: catalog.IoT}.Active())
	assert.True(t, filter.State{Query: "x"}.Active())
}
