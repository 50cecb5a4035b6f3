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

// Package metrics exposes dashboard activity as prometheus collectors.
package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cgdashboard"

// Collectors holds every dashboard metric. It observes the dispatcher, the API client
// and the stores.
type Collectors struct {
	ActionsDispatched  *prometheus.CounterVec
	APIRequests        *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	StoreChanges       *prometheus.CounterVec
	StoreRecords       *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg. Collectors that are already
// registered are reused.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		ActionsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_dispatched_total",
			Help:      "Actions broadcast by the dispatcher.",
		}, []string{"source", "type"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Platform API requests by endpoint and HTTP status. Status 0 is a transport error.",
		}, []string{"endpoint", "status"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Platform API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		StoreChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_changes_total",
			Help:      "Change notifications emitted per store.",
		}, []string{"store"}),
		StoreRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_records",
			Help:      "Records held per store, sampled on change.",
		}, []string{"store"}),
	}

	var err error

	c.ActionsDispatched, err = register(reg, c.ActionsDispatched)
	if err != nil {
		return nil, err
	}

	c.APIRequests, err = register(reg, c.APIRequests)
	if err != nil {
		return nil, err
	}

	c.APIRequestDuration, err = register(reg, c.APIRequestDuration)
	if err != nil {
		return nil, err
	}

	c.StoreChanges, err = register(reg, c.StoreChanges)
	if err != nil {
		return nil, err
	}

	c.StoreRecords, err = register(reg, c.StoreRecords)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return col, err
	}

	return col, nil
}

// ObserveAction counts a dispatched action.
func (c *Collectors) ObserveAction(p action.Payload) {
	if p.Action == nil {
		return
	}

	c.ActionsDispatched.WithLabelValues(string(p.Source), string(p.Action.Type())).Inc()
}

// ObserveAPIRequest records one platform API round trip.
func (c *Collectors) ObserveAPIRequest(endpoint string, status int, elapsed time.Duration) {
	c.APIRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	c.APIRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// WatchStores subscribes to every store's change notifications. The returned function
// removes the subscriptions.
func (c *Collectors) WatchStores(stores ...*store.Store) func() {
	type subscription struct {
		store *store.Store
		id    store.ListenerID
	}

	subs := make([]subscription, 0, len(stores))

	for _, s := range stores {
		s := s
		c.StoreRecords.WithLabelValues(s.Name()).Set(float64(s.Len()))

		id := s.AddChangeListener(func() {
			c.StoreChanges.WithLabelValues(s.Name()).Inc()
			c.StoreRecords.WithLabelValues(s.Name()).Set(float64(s.Len()))
		})

		subs = append(subs, subscription{store: s, id: id})
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			for _, sub := range subs {
				sub.store.RemoveChangeListener(sub.id)
			}
		})
	}
}
