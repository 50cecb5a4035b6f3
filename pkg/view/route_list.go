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

// Package view renders store state. Views hold no data of their own: every read is a
// projection of the store, recomputed when the store changes.
package view

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
)

const (
	// NoRoutesMessage replaces the table when the app has no routes.
	NoRoutesMessage = "No routes"
	// RoutesGuideURL documents how to create, modify or delete routes.
	RoutesGuideURL = "https://docs.cloud.gov/apps/custom-domains/#application-routes"
	// RoutesGuideText precedes the guide link.
	RoutesGuideText = "To create, modify, or delete a route for an app, follow the application routes guide"
)

// RouteSource is the part of the route store a route list reads.
type RouteSource interface {
	GetAll() []models.Record
	AddChangeListener(fn func()) store.ListenerID
	RemoveChangeListener(id store.ListenerID)
}

// Column is one fixed table column.
type Column struct {
	Label string
	Key   string
}

// Columns are the route list columns, in display order.
var Columns = []Column{
	{Label: "Host", Key: "host"},
	{Label: "Domain", Key: "domain"},
	{Label: "Path", Key: "path"},
}

// RouteList shows the routes of one app.
type RouteList struct {
	source RouteSource

	mu       sync.Mutex
	appGUID  string
	routes   []models.Record
	mounted  bool
	listener store.ListenerID
	notify   func()
}

// NewRouteList computes the initial rows for initialAppGUID. The list does not follow
// the store until Mount.
func NewRouteList(source RouteSource, initialAppGUID string) *RouteList {
	l := &RouteList{source: source, appGUID: initialAppGUID}
	l.routes = l.project(initialAppGUID)

	return l
}

func (l *RouteList) project(appGUID string) []models.Record {
	all := l.source.GetAll()
	out := make([]models.Record, 0, len(all))

	for _, route := range all {
		if route.String("app_guid") == appGUID {
			out = append(out, route)
		}
	}

	return out
}

// Mount recomputes the rows and subscribes to the store. notify, when non-nil, runs
// after every later recompute. A second Mount is a no-op.
func (l *RouteList) Mount(notify func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mounted {
		return
	}

	l.routes = l.project(l.appGUID)
	l.notify = notify
	l.mounted = true
	l.listener = l.source.AddChangeListener(l.onChange)
}

// Unmount unsubscribes. Requests already in flight still update the store.
func (l *RouteList) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted {
		return
	}

	l.source.RemoveChangeListener(l.listener)
	l.mounted = false
	l.notify = nil
}

// Mounted reports whether the list follows the store.
func (l *RouteList) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mounted
}

func (l *RouteList) onChange() {
	l.mu.Lock()
	l.routes = l.project(l.appGUID)
	notify := l.notify
	l.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// SetAppGUID switches the list to another app.
func (l *RouteList) SetAppGUID(appGUID string) {
	l.mu.Lock()
	l.appGUID = appGUID
	l.routes = l.project(appGUID)
	notify := l.notify
	l.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// AppGUID returns the app the list shows.
func (l *RouteList) AppGUID() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.appGUID
}

// Routes returns the displayed routes in store order.
func (l *RouteList) Routes() []models.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]models.Record(nil), l.routes...)
}

// Rows returns the displayed cells, one row per route in Columns order. Missing
// fields render empty.
func (l *RouteList) Rows() [][]string {
	return rowsOf(l.Routes())
}

func rowsOf(routes []models.Record) [][]string {
	rows := make([][]string, 0, len(routes))

	for _, route := range routes {
		row := make([]string, len(Columns))
		for i, col := range Columns {
			row[i] = route.String(col.Key)
		}

		rows = append(rows, row)
	}

	return rows
}

// Render draws the list as plain text: the table or the empty message, followed by the
// routes guide.
func (l *RouteList) Render() string {
	var b strings.Builder

	rows := l.Rows()
	if len(rows) == 0 {
		b.WriteString(NoRoutesMessage)
	} else {
		headers := make([]string, len(Columns))
		for i, col := range Columns {
			headers[i] = col.Label
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...)

		b.WriteString(t.Render())
	}

	b.WriteString("\n\n")
	b.WriteString(RoutesGuideText)
	b.WriteString(": ")
	b.WriteString(RoutesGuideURL)
	b.WriteString("\n")

	return b.String()
}

// RouteURL is the address a route answers on. It is empty when the domain is not
// resolved yet.
func RouteURL(route models.Record) string {
	domain := route.String("domain")
	if domain == "" {
		return ""
	}

	host := domain
	if h := route.String("host"); h != "" {
		host = h + "." + domain
	}

	path := route.String("path")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return "https://" + host + path
}
