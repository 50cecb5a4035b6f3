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

// Package dispatcher broadcasts actions to every registered store handler. Dispatch is
// serialized: one action reaches all handlers before the next one starts.
package dispatcher

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
)

// Handler receives every dispatched payload.
type Handler func(action.Payload)

// Token identifies a registered handler.
type Token uint64

// Observer sees every payload before the handlers do.
type Observer interface {
	ObserveAction(action.Payload)
}

type registration struct {
	token   Token
	handler Handler
}

// Dispatcher delivers actions to handlers in registration order. A dispatch issued
// while another is in flight, from a handler or from another goroutine, is queued and
// delivered by the goroutine already dispatching once the current action has reached
// every handler.
type Dispatcher struct {
	logger logger.Logger

	mu            sync.Mutex
	registrations []registration
	observers     []Observer
	nextToken     Token
	queue         []action.Payload
	dispatching   bool
}

// New creates a dispatcher.
func New(log logger.Logger, observers ...Observer) *Dispatcher {
	return &Dispatcher{
		logger:    logger.OrNop(log),
		observers: slices.Clone(observers),
	}
}

// Register adds a handler and returns the token that removes it.
func (d *Dispatcher) Register(h Handler) Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextToken++

	next := slices.Clone(d.registrations)
	next = append(next, registration{token: d.nextToken, handler: h})
	d.registrations = next

	return d.nextToken
}

// Unregister removes the handler registered under token. Unknown tokens are ignored.
func (d *Dispatcher) Unregister(token Token) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.registrations = slices.DeleteFunc(slices.Clone(d.registrations), func(r registration) bool {
		return r.token == token
	})
}

// AddObserver attaches an observer for subsequent dispatches.
func (d *Dispatcher) AddObserver(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := slices.Clone(d.observers)
	next = append(next, o)
	d.observers = next
}

// HandleViewAction dispatches an action originating from a view.
func (d *Dispatcher) HandleViewAction(a action.Action) {
	d.Dispatch(action.Payload{Source: action.SourceView, Action: a})
}

// HandleServerAction dispatches an action carrying an API response.
func (d *Dispatcher) HandleServerAction(a action.Action) {
	d.Dispatch(action.Payload{Source: action.SourceServer, Action: a})
}

// HandleUIAction dispatches a purely presentational action.
func (d *Dispatcher) HandleUIAction(a action.Action) {
	d.Dispatch(action.Payload{Source: action.SourceUI, Action: a})
}

// Dispatch delivers p to every handler. If a dispatch is already running, p is queued
// and Dispatch returns immediately.
func (d *Dispatcher) Dispatch(p action.Payload) {
	if p.Action == nil {
		d.logger.Warn().Str("source", string(p.Source)).Msg("Ignoring dispatch without an action")
		return
	}

	d.mu.Lock()
	d.queue = append(d.queue, p)

	if d.dispatching {
		d.mu.Unlock()

		d.logger.Trace().
			Str("type", string(p.Action.Type())).
			Msg("Queued action behind in-flight dispatch")

		return
	}

	d.dispatching = true
	d.mu.Unlock()

	d.drain()
}

// IsDispatching reports whether a dispatch is in flight.
func (d *Dispatcher) IsDispatching() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.dispatching
}

func (d *Dispatcher) drain() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.dispatching = false
			d.mu.Unlock()

			return
		}

		p := d.queue[0]
		d.queue[0] = action.Payload{}
		d.queue = d.queue[1:]
		registrations := d.registrations
		observers := d.observers
		d.mu.Unlock()

		d.deliver(p, observers, registrations)
	}
}

func (d *Dispatcher) deliver(p action.Payload, observers []Observer, registrations []registration) {
	d.logger.Debug().
		Str("source", string(p.Source)).
		Str("type", string(p.Action.Type())).
		Int("handlers", len(registrations)).
		Msg("Dispatching action")

	for _, o := range observers {
		d.safely(p, "observer", func() { o.ObserveAction(p) })
	}

	for _, r := range registrations {
		d.safely(p, "handler", func() { r.handler(p) })
	}
}

func (d *Dispatcher) safely(p action.Payload, kind string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error().
				Str("type", string(p.Action.Type())).
				Str("kind", kind).
				Str("panic", fmt.Sprint(rec)).
				Msg("Recovered from panic while dispatching action")
		}
	}()

	fn()
}
