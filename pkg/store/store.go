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

// Package store provides the merge-reconciling record collection every entity store
// is built on.
package store

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
)

// ChangeFunc receives whether a merge altered the collection. It runs after the store
// lock has been released, so it may read the store or dispatch.
type ChangeFunc func(changed bool)

// Store is an ordered collection of records, unique by key. New records are appended;
// existing records are merged in place and keep their position. Readers always receive
// deep copies.
type Store struct {
	name   string
	logger logger.Logger

	mu                sync.RWMutex
	data              []models.Record
	fetching          bool
	fetched           bool
	waitingOnRequests bool

	listeners listenerList
}

// New creates an empty store.
func New(name string, log logger.Logger) *Store {
	return &Store{
		name:   name,
		logger: logger.OrNop(log),
	}
}

// Name identifies the store in logs, metrics and change frames.
func (s *Store) Name() string {
	return s.name
}

// Push inserts rec, or merges it into the record sharing its guid. It reports whether
// the collection changed.
func (s *Store) Push(rec models.Record) bool {
	s.mu.Lock()
	changed := s.mergeLocked(models.KeyGUID, rec)
	s.mu.Unlock()

	return changed
}

// MergeOne merges rec into the record whose key field matches rec's, appending it when
// no record matches.
func (s *Store) MergeOne(key string, rec models.Record, cb ChangeFunc) {
	s.mu.Lock()
	changed := s.mergeLocked(key, rec)
	s.mu.Unlock()

	s.done(cb, changed)
}

// MergeMany merges each record in order. The callback runs once.
func (s *Store) MergeMany(key string, recs []models.Record, cb ChangeFunc) {
	changed := false

	s.mu.Lock()
	for _, rec := range recs {
		if s.mergeLocked(key, rec) {
			changed = true
		}
	}
	s.mu.Unlock()

	s.done(cb, changed)
}

// MergeAll applies rec to every record whose key field matches rec's. Records with
// other values, or without the field, are left alone. Nothing is appended.
func (s *Store) MergeAll(key string, rec models.Record, cb ChangeFunc) {
	changed := false

	s.mu.Lock()
	if value, ok := rec[key]; ok {
		for i, existing := range s.data {
			if !existing.Matches(key, value) {
				continue
			}

			merged, recChanged := models.Merge(existing, rec)
			if recChanged {
				s.data[i] = merged
				changed = true
			}
		}
	}
	s.mu.Unlock()

	s.done(cb, changed)
}

func (s *Store) mergeLocked(key string, rec models.Record) bool {
	if rec == nil {
		return false
	}

	if value, ok := rec[key]; ok {
		if i := s.indexLocked(key, value); i >= 0 {
			merged, changed := models.Merge(s.data[i], rec)
			if changed {
				s.data[i] = merged
			}

			return changed
		}
	}

	s.data = append(s.data, rec.Clone())

	return true
}

func (s *Store) indexLocked(key string, value interface{}) int {
	return slices.IndexFunc(s.data, func(r models.Record) bool {
		return r.Matches(key, value)
	})
}

func (s *Store) done(cb ChangeFunc, changed bool) {
	s.logger.Trace().
		Str("store", s.name).
		Bool("changed", changed).
		Msg("Merged records")

	if cb != nil {
		cb(changed)
	}
}

// Get returns the record with the given guid.
func (s *Store) Get(guid string) (models.Record, bool) {
	return s.GetBy(models.KeyGUID, guid)
}

// GetBy returns the first record whose key field equals value.
func (s *Store) GetBy(key string, value interface{}) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(key, value)
	if i < 0 {
		return nil, false
	}

	return s.data[i].Clone(), true
}

// GetAll returns a copy of every record in collection order.
func (s *Store) GetAll() []models.Record {
	return s.Filter(nil)
}

// Filter returns copies of the records match accepts, in collection order. A nil match
// accepts everything.
func (s *Store) Filter(match func(models.Record) bool) []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, 0, len(s.data))

	for _, rec := range s.data {
		if match == nil || match(rec) {
			out = append(out, rec.Clone())
		}
	}

	return out
}

// Len returns the number of records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Delete removes every record whose key field equals value and reports whether any
// was removed.
func (s *Store) Delete(key string, value interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.data)
	s.data = slices.DeleteFunc(s.data, func(r models.Record) bool {
		return r.Matches(key, value)
	})

	return len(s.data) != before
}

// Fetching reports whether a request for this store's data is in flight.
func (s *Store) Fetching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetching
}

// SetFetching marks whether a load is in flight.
func (s *Store) SetFetching(v bool) {
	s.mu.Lock()
	s.fetching = v
	s.mu.Unlock()
}

// Fetched reports whether at least one load has completed.
func (s *Store) Fetched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetched
}

// SetFetched marks whether a load has completed.
func (s *Store) SetFetched(v bool) {
	s.mu.Lock()
	s.fetched = v
	s.mu.Unlock()
}

// WaitingOnRequests reports whether dependent sub-fetches are outstanding.
func (s *Store) WaitingOnRequests() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.waitingOnRequests
}

// SetWaitingOnRequests marks whether dependent requests are outstanding.
func (s *Store) SetWaitingOnRequests(v bool) {
	s.mu.Lock()
	s.waitingOnRequests = v
	s.mu.Unlock()
}

// SetFlags sets fetching and fetched together.
func (s *Store) SetFlags(fetching, fetched bool) {
	s.mu.Lock()
	s.fetching = fetching
	s.fetched = fetched
	s.mu.Unlock()
}

// Settle marks a load complete: fetching false, fetched true. It reports whether a
// fetch was in flight.
func (s *Store) Settle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.fetching
	s.fetching = false
	s.fetched = true

	return was
}

// Status is a snapshot of the status flags.
type Status struct {
	Fetching          bool `json:"fetching"`
	Fetched           bool `json:"fetched"`
	WaitingOnRequests bool `json:"waitingOnRequests"`
	Records           int  `json:"records"`
}

// Status returns the flags and record count in one read.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Fetching:          s.fetching,
		Fetched:           s.fetched,
		WaitingOnRequests: s.waitingOnRequests,
		Records:           len(s.data),
	}
}

// Reset clears the collection and every flag. Listeners stay subscribed.
func (s *Store) Reset() {
	s.mu.Lock()
	s.data = nil
	s.fetching = false
	s.fetched = false
	s.waitingOnRequests = false
	s.mu.Unlock()
}

// EmitChange notifies every listener. The notification carries no payload; listeners
// re-read whatever state they need.
func (s *Store) EmitChange() {
	s.logger.Debug().Str("store", s.name).Msg("Emitting change")

	s.listeners.notify()
}

// AddChangeListener subscribes fn and returns the ID that removes it.
func (s *Store) AddChangeListener(fn func()) ListenerID {
	return s.listeners.add(fn)
}

// RemoveChangeListener unsubscribes a listener. It is safe to call from inside a
// notification; a removed listener is not called again, even by the emission in
// progress.
func (s *Store) RemoveChangeListener(id ListenerID) {
	s.listeners.remove(id)
}

// ListenerID identifies a change listener.
type ListenerID uint64

type listener struct {
	id      ListenerID
	fn      func()
	removed atomic.Bool
}

// listenerList is copy-on-write: notify iterates the slice it loaded while add and
// remove install new ones.
type listenerList struct {
	mu        sync.Mutex
	listeners []*listener
	nextID    ListenerID
}

func (l *listenerList) add(fn func()) ListenerID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++

	next := slices.Clone(l.listeners)
	next = append(next, &listener{id: l.nextID, fn: fn})
	l.listeners = next

	return l.nextID
}

func (l *listenerList) remove(id ListenerID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.listeners, func(ln *listener) bool { return ln.id == id })
	if i < 0 {
		return
	}

	l.listeners[i].removed.Store(true)
	l.listeners = slices.Delete(slices.Clone(l.listeners), i, i+1)
}

func (l *listenerList) notify() {
	l.mu.Lock()
	snapshot := l.listeners
	l.mu.Unlock()

	for _, ln := range snapshot {
		if ln.removed.Load() {
			continue
		}

		ln.fn()
	}
}

func (l *listenerList) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.listeners)
}

// ListenerCount returns the number of subscribed change listeners.
func (s *Store) ListenerCount() int {
	return s.listeners.len()
}
