/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package store

import (
	"testing"

	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New("test", logger.NewTestLogger())
}

func TestNew_StartsEmpty(t *testing.T) {
	s := newTestStore()

	assert.Empty(t, s.GetAll())
	assert.Equal(t, Status{}, s.Status())
	assert.Equal(t, "test", s.Name())
}

func TestPush_AppendsNewKeysInOrder(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.Push(models.Record{"guid": "a", "name": "first"}))
	assert.True(t, s.Push(models.Record{"guid": "b", "name": "second"}))
	assert.True(t, s.Push(models.Record{"guid": "c"}))

	all := s.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].GUID(), all[1].GUID(), all[2].GUID()})
	assert.Equal(t, models.Record{"guid": "a", "name": "first"}, all[0])
}

func TestPush_MergesExistingInPlace(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a", "name": "adsfa"})
	s.Push(models.Record{"guid": "b"})

	changed := s.Push(models.Record{"guid": "a", "instances": []interface{}{map[string]interface{}{"guid": "dfs"}}})

	assert.True(t, changed)

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.Record{
		"guid":      "a",
		"name":      "adsfa",
		"instances": []interface{}{map[string]interface{}{"guid": "dfs"}},
	}, all[0])
	assert.Equal(t, "b", all[1].GUID())
}

func TestPush_IdenticalRecordReportsUnchanged(t *testing.T) {
	s := newTestStore()
	rec := models.Record{"guid": "a", "name": "x"}

	s.Push(rec)

	assert.False(t, s.Push(rec))
	assert.Equal(t, 1, s.Len())
}

func TestMergeOne_NoOpDoesNotEmit(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a", "host": "www"})

	emits := 0
	s.AddChangeListener(func() { emits++ })

	s.MergeOne("guid", models.Record{"guid": "a", "host": "www"}, func(changed bool) {
		if changed {
			s.EmitChange()
		}
	})

	assert.Equal(t, 0, emits)
}

func TestMergeOne_ByAlternateKey(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "r1", "domain_guid": "d1"})

	var got bool

	s.MergeOne("domain_guid", models.Record{"domain_guid": "d1", "domain": "example.gov"}, func(changed bool) {
		got = changed
	})

	assert.True(t, got)

	rec, ok := s.GetBy("domain_guid", "d1")
	require.True(t, ok)
	assert.Equal(t, models.Record{"guid": "r1", "domain_guid": "d1", "domain": "example.gov"}, rec)
}

func TestMergeOne_RecordWithoutKeyIsAppended(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a"})

	s.MergeOne("guid", models.Record{"name": "keyless"}, nil)

	assert.Equal(t, 2, s.Len())
}

func TestMergeMany_ReportsAnyChangeOnce(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a", "name": "same"})

	calls := 0

	var got bool

	s.MergeMany("guid", []models.Record{
		{"guid": "a", "name": "same"},
		{"guid": "b", "name": "new"},
	}, func(changed bool) {
		calls++
		got = changed
	})

	assert.Equal(t, 1, calls)
	assert.True(t, got)
	assert.Equal(t, 2, s.Len())

	s.MergeMany("guid", []models.Record{{"guid": "a", "name": "same"}}, func(changed bool) { got = changed })
	assert.False(t, got)

	s.MergeMany("guid", nil, func(changed bool) { got = changed })
	assert.False(t, got)
}

func TestMergeAll_AppliesToEveryMatchingRecordOnly(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "r1", "domain_guid": "d1"})
	s.Push(models.Record{"guid": "r2", "domain_guid": "d2"})
	s.Push(models.Record{"guid": "r3", "domain_guid": "d1"})
	s.Push(models.Record{"guid": "r4"})

	var got bool

	s.MergeAll("domain_guid", models.Record{"domain_guid": "d1", "domain": "a.gov"}, func(changed bool) { got = changed })

	assert.True(t, got)

	all := s.GetAll()
	assert.Equal(t, "a.gov", all[0]["domain"])
	assert.NotContains(t, all[1], "domain")
	assert.Equal(t, "a.gov", all[2]["domain"])
	assert.NotContains(t, all[3], "domain")

	s.MergeAll("domain_guid", models.Record{"domain_guid": "d1", "domain": "a.gov"}, func(changed bool) { got = changed })
	assert.False(t, got)
}

func TestMergeAll_NoMatchAppendsNothing(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "r1", "domain_guid": "d1"})

	var got = true

	s.MergeAll("domain_guid", models.Record{"domain_guid": "d9", "domain": "x"}, func(changed bool) { got = changed })
	assert.False(t, got)

	s.MergeAll("domain_guid", models.Record{"domain": "x"}, func(changed bool) { got = changed })
	assert.False(t, got)
	assert.Equal(t, 1, s.Len())
}

func TestCallbackRunsOutsideLock(t *testing.T) {
	s := newTestStore()

	s.MergeOne("guid", models.Record{"guid": "a"}, func(bool) {
		// would deadlock if the write lock were still held
		_, ok := s.Get("a")
		assert.True(t, ok)
		s.Push(models.Record{"guid": "b"})
	})

	assert.Equal(t, 2, s.Len())
}

func TestGetAll_ReturnsCopies(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a", "nested": map[string]interface{}{"k": "v"}})

	all := s.GetAll()
	all[0]["guid"] = "mutated"
	all[0]["nested"].(map[string]interface{})["k"] = "mutated"

	rec, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "v", rec["nested"].(map[string]interface{})["k"])

	rec["name"] = "mutated"
	again, _ := s.Get("a")
	assert.NotContains(t, again, "name")
}

func TestPush_DoesNotRetainCallerRecord(t *testing.T) {
	s := newTestStore()
	rec := models.Record{"guid": "a", "name": "x"}

	s.Push(rec)
	rec["name"] = "changed by caller"

	got, _ := s.Get("a")
	assert.Equal(t, "x", got["name"])
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore()

	rec, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestFilter(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a", "app_guid": "x"})
	s.Push(models.Record{"guid": "b", "app_guid": "y"})
	s.Push(models.Record{"guid": "c", "app_guid": "x"})

	got := s.Filter(func(r models.Record) bool { return r.String("app_guid") == "x" })

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].GUID())
	assert.Equal(t, "c", got[1].GUID())
}

func TestDelete(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a"})
	s.Push(models.Record{"guid": "b"})

	assert.True(t, s.Delete("guid", "a"))
	assert.False(t, s.Delete("guid", "a"))

	all := s.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].GUID())
}

func TestFlagsAndReset(t *testing.T) {
	s := newTestStore()
	s.Push(models.Record{"guid": "a"})
	s.SetFetching(true)
	s.SetFetched(true)
	s.SetWaitingOnRequests(true)

	assert.Equal(t, Status{Fetching: true, Fetched: true, WaitingOnRequests: true, Records: 1}, s.Status())

	s.SetFlags(false, true)
	assert.False(t, s.Fetching())
	assert.True(t, s.Fetched())

	emits := 0
	s.AddChangeListener(func() { emits++ })

	s.Reset()

	assert.Equal(t, Status{}, s.Status())
	assert.Equal(t, 1, s.ListenerCount(), "reset keeps listeners")
	assert.Equal(t, 0, emits)
}

func TestChangeListeners(t *testing.T) {
	s := newTestStore()

	var calls []string

	first := s.AddChangeListener(func() { calls = append(calls, "first") })
	s.AddChangeListener(func() { calls = append(calls, "second") })

	s.EmitChange()
	s.RemoveChangeListener(first)
	s.RemoveChangeListener(first)
	s.EmitChange()

	assert.Equal(t, []string{"first", "second", "second"}, calls)
	assert.Equal(t, 1, s.ListenerCount())
}

func TestRemoveChangeListener_DuringNotification(t *testing.T) {
	s := newTestStore()

	var (
		calls  []string
		second ListenerID
	)

	var first ListenerID

	first = s.AddChangeListener(func() {
		calls = append(calls, "first")
		s.RemoveChangeListener(first)
		s.RemoveChangeListener(second)
	})
	second = s.AddChangeListener(func() { calls = append(calls, "second") })
	s.AddChangeListener(func() { calls = append(calls, "third") })

	require.NotPanics(t, s.EmitChange)
	s.EmitChange()

	assert.Equal(t, []string{"first", "third", "third"}, calls)
}

func TestAddChangeListener_DuringNotification(t *testing.T) {
	s := newTestStore()

	added := 0

	s.AddChangeListener(func() {
		s.AddChangeListener(func() { added++ })
	})

	s.EmitChange()
	assert.Equal(t, 0, added, "listener added mid-emit waits for the next emit")

	s.EmitChange()
	assert.Equal(t, 1, added)
}

func TestSettle(t *testing.T) {
	s := newTestStore()

	assert.False(t, s.Settle())
	assert.True(t, s.Fetched())

	s.SetFlags(true, false)
	assert.True(t, s.Settle())
	assert.False(t, s.Fetching())
	assert.True(t, s.Fetched())
}
