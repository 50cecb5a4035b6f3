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

package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/dispatcher"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/metrics"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"github.com/cloud-gov/cg-dashboard/pkg/stores"
	"github.com/cloud-gov/cg-dashboard/pkg/view"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "refresh-key"

type fixture struct {
	api    *stores.MockAPI
	stores *stores.Stores
	server *Server
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := stores.NewMockAPI(ctrl)

	reg := prometheus.NewRegistry()
	collectors, err := metrics.New(reg)
	require.NoError(t, err)

	d := dispatcher.New(logger.NewTestLogger(), collectors)
	st := stores.New(d, api, logger.NewTestLogger())

	opts = append([]Option{WithLogger(logger.NewTestLogger()), WithGatherer(reg), WithAPIKey(testAPIKey)}, opts...)
	srv := NewServer(st, d, opts...)
	t.Cleanup(srv.Hub().Close)

	return &fixture{api: api, stores: st, server: srv}
}

func (f *fixture) do(t *testing.T, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}

	rr := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rr, req)

	return rr
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","version":"dev"}`, rr.Body.String())
}

func TestRoutesPage(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/apps/app-1/routes", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), view.NoRoutesMessage)
	assert.Contains(t, rr.Body.String(), view.RoutesGuideURL)
	assert.NotContains(t, rr.Body.String(), "<table>")

	f.stores.Routes.Push(models.Record{"guid": "r1", "app_guid": "app-1", "host": "www", "domain": "app.cloud.gov", "path": "/<docs>"})
	f.stores.Routes.Push(models.Record{"guid": "r2", "app_guid": "app-2", "host": "other", "domain": "app.cloud.gov"})

	rr = f.do(t, http.MethodGet, "/apps/app-1/routes", nil)
	body := rr.Body.String()

	assert.Contains(t, body, "<th>Host</th><th>Domain</th><th>Path</th>")
	assert.Contains(t, body, "<td>www</td><td>app.cloud.gov</td><td>/&lt;docs&gt;</td>")
	assert.NotContains(t, body, "other")
	assert.NotContains(t, body, view.NoRoutesMessage)
	assert.Contains(t, body, view.RoutesGuideURL)
}

func TestAPIApp(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/apps/app-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"app not found","status":404}`, rr.Body.String())

	f.stores.Apps.Push(models.Record{"guid": "app-1", "name": "dashboard"})

	rr = f.do(t, http.MethodGet, "/api/apps/app-1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"guid":"app-1","name":"dashboard"}`, rr.Body.String())
}

func TestAPIAppRoutesAndPlans(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/apps/app-1/routes", nil)
	assert.JSONEq(t, `[]`, rr.Body.String())

	f.stores.Routes.Push(models.Record{"guid": "r1", "app_guid": "app-1", "host": "www"})
	f.stores.ServicePlans.Push(models.Record{"guid": "p1", "service_guid": "svc-1", "name": "free"})
	f.stores.ServicePlans.Push(models.Record{"guid": "p2", "service_guid": "svc-2", "name": "paid"})

	rr = f.do(t, http.MethodGet, "/api/apps/app-1/routes", nil)
	assert.JSONEq(t, `[{"guid":"r1","app_guid":"app-1","host":"www"}]`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/api/services/svc-1/plans", nil)
	assert.JSONEq(t, `[{"guid":"p1","service_guid":"svc-1","name":"free"}]`, rr.Body.String())
}

func TestAPIStatus(t *testing.T) {
	f := newFixture(t)

	f.stores.Routes.SetFetching(true)
	f.stores.Routes.Push(models.Record{"guid": "r1"})

	rr := f.do(t, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var status map[string]store.Status
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))

	assert.Len(t, status, 6)
	assert.Equal(t, store.Status{Fetching: true, Records: 1}, status["routes"])
	assert.Equal(t, store.Status{}, status["apps"])
}

func TestRefreshRequiresAPIKey(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/api/apps/app-1/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/apps/app-1/routes/refresh", http.Header{"X-Api-Key": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRefreshDispatchesFetches(t *testing.T) {
	f := newFixture(t)
	key := http.Header{"X-Api-Key": {testAPIKey}}

	f.api.EXPECT().FetchAppAll("app-1")
	f.api.EXPECT().FetchRoutesForApp("app-1")

	rr := f.do(t, http.MethodPost, "/api/apps/app-1/refresh", key)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.True(t, f.stores.Apps.Fetching())

	rr = f.do(t, http.MethodPost, "/api/apps/app-1/routes/refresh", key)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"appGuid":"app-1","status":"fetching"}`, rr.Body.String())
	assert.True(t, f.stores.Routes.Fetching())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().FetchRoutesForApp("app-1")

	f.do(t, http.MethodPost, "/api/apps/app-1/routes/refresh", http.Header{"X-Api-Key": {testAPIKey}})

	rr := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `cgdashboard_actions_dispatched_total{source="view",type="ROUTES_FOR_APP_FETCH"} 1`)
}

func dialStream(t *testing.T, srv *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	return websocket.DefaultDialer.Dial(url, header)
}

func TestStream_ChangeFrames(t *testing.T) {
	f := newFixture(t)

	srv := httptest.NewServer(f.server.Handler())
	t.Cleanup(srv.Close)

	conn, _, err := dialStream(t, srv, nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello StreamMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "hello", hello.Type)
	assert.NotEmpty(t, hello.ClientID)
	assert.Equal(t, 1, f.server.Hub().ClientCount())

	f.stores.Routes.EmitChange()

	var change StreamMessage
	require.NoError(t, conn.ReadJSON(&change))
	assert.Equal(t, "change", change.Type)
	assert.Equal(t, "routes", change.Store)
}

func TestStream_RejectsForeignOrigin(t *testing.T) {
	f := newFixture(t, WithCORS(models.CORSConfig{AllowedOrigins: []string{"https://dashboard.example.gov"}}))

	srv := httptest.NewServer(f.server.Handler())
	t.Cleanup(srv.Close)

	_, resp, err := dialStream(t, srv, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := dialStream(t, srv, http.Header{"Origin": {"https://dashboard.example.gov"}})
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := NewHub(logger.NewTestLogger())

	c, ok := h.add(nil)
	require.True(t, ok)
	assert.Equal(t, 1, h.ClientCount())

	for i := 0; i < clientBuffer; i++ {
		h.Broadcast("routes")
	}

	assert.Equal(t, 0, h.ClientCount())

	n := 0
	for range c.send {
		n++
	}

	assert.Equal(t, clientBuffer, n, "queued frames survive the disconnect")
}

func TestHub_CloseUnsubscribes(t *testing.T) {
	h := NewHub(logger.NewTestLogger())

	routes := store.New("routes", logger.NewTestLogger())
	h.Watch(routes)
	assert.Equal(t, 1, routes.ListenerCount())

	_, ok := h.add(nil)
	require.True(t, ok)

	h.Close()

	assert.Equal(t, 0, routes.ListenerCount())
	assert.Equal(t, 0, h.ClientCount())

	_, ok = h.add(nil)
	assert.False(t, ok)
}
