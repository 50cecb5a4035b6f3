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

package stores

import (
	"testing"

	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteStore_StartsEmpty(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, f.stores.Routes.GetAll())
}

func TestRouteStore_RoutesForAppFetch(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes

	f.api.EXPECT().FetchRoutesForApp("app-x").Times(1)

	assert.False(t, routes.Fetching())

	f.actions.FetchRoutesForApp("app-x")

	assert.True(t, routes.Fetching())
	assert.False(t, routes.Fetched())
	assert.Empty(t, routes.GetAll(), "fetch does not touch the collection")
}

func TestRouteStore_RoutesForAppReceived(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes
	emits := countEmits(routes.Store)

	f.api.EXPECT().FetchRoutesForApp("X")
	f.api.EXPECT().FetchDomain("dom-1").Times(1)
	f.api.EXPECT().FetchDomain("dom-2").Times(1)

	f.actions.FetchRoutesForApp("X")
	f.actions.ReceivedRoutesForApp(wrapInRes(
		models.Record{"guid": "route-1", "host": "www", "domain_guid": "dom-1"},
		models.Record{"guid": "route-2", "host": "api", "domain_guid": "dom-2"},
	), "X")

	all := routes.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.Record{"guid": "route-1", "host": "www", "domain_guid": "dom-1", "app_guid": "X"}, all[0])
	assert.Equal(t, models.Record{"guid": "route-2", "host": "api", "domain_guid": "dom-2", "app_guid": "X"}, all[1])

	assert.False(t, routes.Fetching())
	assert.True(t, routes.Fetched())
	assert.Equal(t, 1, *emits)
}

func TestRouteStore_RoutesReceivedFetchesEachDomainOnce(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().FetchDomain("shared").Times(1)

	f.actions.ReceivedRoutesForApp(wrapInRes(
		models.Record{"guid": "r1", "domain_guid": "shared"},
		models.Record{"guid": "r2", "domain_guid": "shared"},
		models.Record{"guid": "r3"},
	), "X")

	assert.Len(t, f.stores.Routes.GetAll(), 3)
}

func TestRouteStore_UnchangedRoutesDoNotEmitButStillResolveDomains(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes
	raw := wrapInRes(models.Record{"guid": "r1", "host": "www", "domain_guid": "d1"})

	f.api.EXPECT().FetchDomain("d1").Times(2)

	f.actions.ReceivedRoutesForApp(raw, "X")

	emits := countEmits(routes.Store)
	f.actions.ReceivedRoutesForApp(raw, "X")

	assert.Equal(t, 0, *emits)
	assert.Len(t, routes.GetAll(), 1)
}

func TestRouteStore_DomainFetch(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().FetchDomain("d9").Times(1)

	f.actions.FetchDomain("d9")
}

func TestRouteStore_DomainReceivedBackfillsEveryRoute(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes

	routes.Push(models.Record{"guid": "r1", "domain_guid": "d1", "app_guid": "a"})
	routes.Push(models.Record{"guid": "r2", "domain_guid": "d1", "app_guid": "b"})
	routes.Push(models.Record{"guid": "r3", "domain_guid": "d2", "app_guid": "a"})
	routes.Push(models.Record{"guid": "r4", "domain_guid": "d1", "app_guid": "c"})

	emits := countEmits(routes.Store)

	f.actions.ReceivedDomain(models.Resource{
		Metadata: models.Record{"guid": "d1"},
		Entity:   models.Record{"name": "app.cloud.gov"},
	})

	for _, guid := range []string{"r1", "r2", "r4"} {
		rec, ok := routes.Get(guid)
		require.True(t, ok)
		assert.Equal(t, "app.cloud.gov", rec["domain"], guid)
	}

	unrelated, _ := routes.Get("r3")
	assert.Equal(t, models.Record{"guid": "r3", "domain_guid": "d2", "app_guid": "a"}, unrelated)
	assert.Equal(t, 1, *emits)

	f.actions.ReceivedDomain(models.Resource{
		Metadata: models.Record{"guid": "d1"},
		Entity:   models.Record{"name": "app.cloud.gov"},
	})
	assert.Equal(t, 1, *emits, "same domain again is a no-op")
}

func TestRouteStore_DomainReceivedWithoutMatchingRoutes(t *testing.T) {
	f := newFixture(t)
	emits := countEmits(f.stores.Routes.Store)

	f.actions.ReceivedDomain(models.Resource{Metadata: models.Record{"guid": "d1"}, Entity: models.Record{"name": "x"}})
	f.actions.ReceivedDomain(models.Resource{Entity: models.Record{"name": "no guid"}})

	assert.Empty(t, f.stores.Routes.GetAll())
	assert.Equal(t, 0, *emits)
}

func TestRouteStore_AppReceivedWithoutRoutes(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes
	routes.Push(models.Record{"guid": "r1", "domain_guid": "d1"})

	emits := countEmits(routes.Store)

	require.NotPanics(t, func() {
		f.actions.ReceivedApp(models.Record{"guid": "app"})
		f.actions.ReceivedApp(models.Record{"guid": "app", "routes": nil})
		f.actions.ReceivedApp(nil)
	})

	assert.Equal(t, []models.Record{{"guid": "r1", "domain_guid": "d1"}}, routes.GetAll())
	assert.Equal(t, 0, *emits)
}

func TestRouteStore_AppReceivedWithNestedRoutes(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes
	emits := countEmits(routes.Store)

	f.actions.ReceivedApp(models.Record{
		"guid": "app-1",
		"routes": []interface{}{
			map[string]interface{}{
				"guid":   "r1",
				"host":   "www",
				"path":   "/docs",
				"domain": map[string]interface{}{"guid": "d1", "name": "a.gov"},
			},
			map[string]interface{}{
				"guid":   "r2",
				"host":   "api",
				"domain": map[string]interface{}{"guid": "d2", "name": "b.gov"},
			},
			map[string]interface{}{"guid": "r3", "host": "nodomain"},
		},
	})

	all := routes.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.Record{
		"app_guid":    "app-1",
		"guid":        "r1",
		"host":        "www",
		"path":        "/docs",
		"domain_guid": "d1",
		"domain":      "a.gov",
	}, all[0])
	assert.Equal(t, "b.gov", all[1]["domain"])
	assert.Equal(t, 1, *emits)
}

func TestRouteStore_AppReceivedSkipsRoutesWithoutDomainGUID(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes
	emits := countEmits(routes.Store)

	f.actions.ReceivedApp(models.Record{
		"guid": "app-1",
		"routes": []interface{}{
			map[string]interface{}{
				"guid":   "r1",
				"host":   "a",
				"domain": map[string]interface{}{"name": "x.gov"},
			},
			map[string]interface{}{
				"guid":   "r2",
				"host":   "b",
				"domain": map[string]interface{}{"guid": "", "name": "y.gov"},
			},
		},
	})

	assert.Empty(t, routes.GetAll())
	assert.Equal(t, 0, *emits)

	f.actions.ReceivedApp(models.Record{
		"guid": "app-1",
		"routes": []interface{}{
			map[string]interface{}{
				"guid":   "r1",
				"host":   "a",
				"domain": map[string]interface{}{"name": "x.gov"},
			},
			map[string]interface{}{
				"guid":   "r3",
				"host":   "c",
				"domain": map[string]interface{}{"guid": "d3", "name": "z.gov"},
			},
		},
	})

	all := routes.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "r3", all[0].GUID())
	assert.Equal(t, "d3", all[0]["domain_guid"])
}

func TestRouteStore_BothIngestionPathsShareTheCollection(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes

	f.api.EXPECT().FetchDomain("d1")

	f.actions.ReceivedRoutesForApp(wrapInRes(
		models.Record{"guid": "r1", "host": "www", "domain_guid": "d1"},
	), "app-1")

	f.actions.ReceivedApp(models.Record{
		"guid": "app-1",
		"routes": []interface{}{
			map[string]interface{}{
				"guid":   "r1",
				"host":   "www2",
				"domain": map[string]interface{}{"guid": "d1", "name": "a.gov"},
			},
		},
	})

	all := routes.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "www2", all[0]["host"], "last merge wins")
	assert.Equal(t, "a.gov", all[0]["domain"])
}

func TestRouteStore_GetAllForApp(t *testing.T) {
	f := newFixture(t)
	routes := f.stores.Routes

	routes.Push(models.Record{"guid": "r1", "app_guid": "a"})
	routes.Push(models.Record{"guid": "r2", "app_guid": "b"})
	routes.Push(models.Record{"guid": "r3", "app_guid": "a"})

	got := routes.GetAllForApp("a")
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].GUID())
	assert.Equal(t, "r3", got[1].GUID())
	assert.Empty(t, routes.GetAllForApp("none"))
}

func TestRouteStore_IgnoresUnrelatedActions(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().FetchServiceBindings("app")
	f.api.EXPECT().FetchServiceInstances("space")

	emits := countEmits(f.stores.Routes.Store)

	f.actions.FetchServiceBindings("app")
	f.actions.FetchAllInstances("space")

	assert.Equal(t, 0, *emits)
	assert.False(t, f.stores.Routes.Fetching())
}
