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

package view

import (
	"testing"

	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteSource(t *testing.T, routes ...models.Record) *store.Store {
	t.Helper()

	s := store.New("routes", logger.NewTestLogger())
	for _, r := range routes {
		s.Push(r)
	}

	return s
}

func route(guid, appGUID, host, domain, path string) models.Record {
	return models.Record{"guid": guid, "app_guid": appGUID, "host": host, "domain": domain, "path": path}
}

func TestRouteList_ProjectsInitialApp(t *testing.T) {
	src := newRouteSource(t,
		route("r1", "app-a", "www", "example.gov", ""),
		route("r2", "app-b", "api", "example.gov", "/v1"),
		route("r3", "app-a", "docs", "example.gov", "/guide"),
	)

	l := NewRouteList(src, "app-a")

	routes := l.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "r1", routes[0].GUID())
	assert.Equal(t, "r3", routes[1].GUID())
	assert.Equal(t, [][]string{{"www", "example.gov", ""}, {"docs", "example.gov", "/guide"}}, l.Rows())
	assert.False(t, l.Mounted())
}

func TestRouteList_FollowsStoreWhileMounted(t *testing.T) {
	src := newRouteSource(t)
	l := NewRouteList(src, "app-a")

	notified := 0
	l.Mount(func() { notified++ })
	l.Mount(nil)

	assert.Equal(t, 1, src.ListenerCount())

	src.Push(route("r1", "app-a", "www", "example.gov", ""))
	src.EmitChange()

	assert.Equal(t, 1, notified)
	require.Len(t, l.Routes(), 1)

	src.MergeAll("domain", models.Record{"domain": "example.gov", "path": "/new"}, nil)
	src.EmitChange()

	assert.Equal(t, 2, notified)
	assert.Equal(t, "/new", l.Routes()[0].String("path"), "rows are recomputed, never cached")

	l.Unmount()
	l.Unmount()

	assert.Equal(t, 0, src.ListenerCount())

	src.Push(route("r2", "app-a", "api", "example.gov", ""))
	src.EmitChange()

	assert.Equal(t, 2, notified)
	assert.Len(t, l.Routes(), 1)
}

func TestRouteList_RemountRecomputes(t *testing.T) {
	src := newRouteSource(t, route("r1", "app-a", "www", "example.gov", ""))
	l := NewRouteList(src, "app-a")

	l.Mount(nil)
	l.Unmount()

	src.Push(route("r2", "app-a", "api", "example.gov", ""))
	src.EmitChange()
	require.Len(t, l.Routes(), 1)

	l.Mount(nil)

	assert.Len(t, l.Routes(), 2)
	assert.Equal(t, [][]string{{"www", "example.gov", ""}, {"api", "example.gov", ""}}, l.Rows())
}

func TestRouteList_SetAppGUID(t *testing.T) {
	src := newRouteSource(t,
		route("r1", "app-a", "www", "example.gov", ""),
		route("r2", "app-b", "api", "example.gov", ""),
	)

	l := NewRouteList(src, "app-a")

	notified := 0
	l.Mount(func() { notified++ })

	l.SetAppGUID("app-b")

	assert.Equal(t, "app-b", l.AppGUID())
	assert.Equal(t, 1, notified)
	require.Len(t, l.Routes(), 1)
	assert.Equal(t, "r2", l.Routes()[0].GUID())

	src.Push(route("r3", "app-b", "docs", "example.gov", ""))
	src.EmitChange()

	assert.Len(t, l.Routes(), 2, "change after an app switch projects the new app")
}

func TestRouteList_RenderEmpty(t *testing.T) {
	l := NewRouteList(newRouteSource(t), "app-a")

	out := l.Render()

	assert.Contains(t, out, NoRoutesMessage)
	assert.Contains(t, out, RoutesGuideURL)
	assert.NotContains(t, out, "Host")
}

func TestRouteList_RenderTable(t *testing.T) {
	l := NewRouteList(newRouteSource(t, route("r1", "app-a", "www", "example.gov", "/docs")), "app-a")

	out := l.Render()

	for _, want := range []string{"Host", "Domain", "Path", "www", "example.gov", "/docs", RoutesGuideURL} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, NoRoutesMessage)
}

func TestRouteURL(t *testing.T) {
	tests := []struct {
		name  string
		route models.Record
		want  string
	}{
		{"host and domain", models.Record{"host": "www", "domain": "example.gov"}, "https://www.example.gov"},
		{"with path", models.Record{"host": "www", "domain": "example.gov", "path": "/docs"}, "https://www.example.gov/docs"},
		{"path without slash", models.Record{"host": "www", "domain": "example.gov", "path": "docs"}, "https://www.example.gov/docs"},
		{"no host", models.Record{"domain": "example.gov"}, "https://example.gov"},
		{"unresolved domain", models.Record{"host": "www", "domain_guid": "d1"}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RouteURL(tc.route))
		})
	}
}
