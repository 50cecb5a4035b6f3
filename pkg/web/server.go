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

// Package web serves the dashboard over HTTP: an HTML route table, JSON reads of the
// stores, refresh triggers, a websocket change stream and prometheus metrics.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/actions"
	srHttp "github.com/cloud-gov/cg-dashboard/pkg/http"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"github.com/cloud-gov/cg-dashboard/pkg/stores"
	"github.com/cloud-gov/cg-dashboard/pkg/version"
	"github.com/cloud-gov/cg-dashboard/pkg/view"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Server is the dashboard's HTTP surface.
type Server struct {
	router   *mux.Router
	stores   *stores.Stores
	actions  *actions.Actions
	hub      *Hub
	gatherer prometheus.Gatherer
	cors     models.CORSConfig
	apiKey   string
	logger   logger.Logger
	upgrader websocket.Upgrader
}

// Option customizes a Server.
type Option func(*Server)

func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithGatherer serves g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithCORS sets the browser origins allowed to call the API and open the websocket.
func WithCORS(cfg models.CORSConfig) Option {
	return func(s *Server) { s.cors = cfg }
}

// WithAPIKey protects the refresh endpoints.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// NewServer builds the router over st. Refresh requests are dispatched through d.
func NewServer(st *stores.Stores, d actions.Dispatcher, opts ...Option) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		stores:  st,
		actions: actions.New(d),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = logger.OrNop(s.logger)
	s.hub = NewHub(s.logger)
	s.hub.Watch(st.All()...)

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkWebSocketOrigin,
	}

	s.setupRoutes()

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.cors, s.logger)
	})

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/apps/{guid}/routes", s.handleRoutesPage).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleStream).Methods(http.MethodGet)

	if s.gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/apps/{guid}", s.handleApp).Methods(http.MethodGet)
	api.HandleFunc("/apps/{guid}/routes", s.handleAppRoutes).Methods(http.MethodGet)
	api.HandleFunc("/services/{guid}/plans", s.handleServicePlans).Methods(http.MethodGet)

	refresh := api.NewRoute().Subrouter()
	refresh.Use(srHttp.APIKeyMiddlewareWithOptions(srHttp.APIKeyOptions{
		APIKey:          s.apiKey,
		LogUnauthorized: true,
		Logger:          s.logger,
	}))
	refresh.HandleFunc("/apps/{guid}/refresh", s.handleAppRefresh).Methods(http.MethodPost)
	refresh.HandleFunc("/apps/{guid}/routes/refresh", s.handleRoutesRefresh).Methods(http.MethodPost)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.GetVersion()})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	status := make(map[string]store.Status)
	for _, st := range s.stores.All() {
		status[st.Name()] = st.Status()
	}

	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleApp(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["guid"]

	app, ok := s.stores.Apps.Get(guid)
	if !ok {
		writeError(w, "app not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, app)
}

func (s *Server) handleAppRoutes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.stores.Routes.GetAllForApp(mux.Vars(r)["guid"])))
}

func (s *Server) handleServicePlans(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nonNil(s.stores.ServicePlans.GetAllFromService(mux.Vars(r)["guid"])))
}

func (s *Server) handleAppRefresh(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["guid"]

	s.actions.FetchAppAll(guid)
	s.writeJSON(w, http.StatusAccepted, map[string]string{"appGuid": guid, "status": "fetching"})
}

func (s *Server) handleRoutesRefresh(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["guid"]

	s.actions.FetchRoutesForApp(guid)
	s.writeJSON(w, http.StatusAccepted, map[string]string{"appGuid": guid, "status": "fetching"})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Str("origin", r.Header.Get("Origin")).
			Msg("Failed to upgrade to WebSocket")

		return
	}

	s.hub.serve(conn)
}

// checkWebSocketOrigin accepts same-origin requests, requests without an Origin header
// and the configured CORS origins.
func (s *Server) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}

	for _, allowed := range s.cors.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	s.logger.Warn().Str("origin", origin).Msg("Rejected WebSocket origin")

	return false
}

// Start serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.hub.Close()

		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	s.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Message: message, Status: statusCode}); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

func nonNil(recs []models.Record) []models.Record {
	if recs == nil {
		return []models.Record{}
	}

	return recs
}

var routesPage = template.Must(template.New("routes").Parse(`<!DOCTYPE html>
<html>
<head><title>Routes for {{.AppGUID}}</title></head>
<body>
<div class="tableWrapper">
{{- if .Rows}}
<table>
<thead><tr>{{range .Columns}}<th>{{.Label}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- else}}
<h4 class="test-none_message">{{.Empty}}</h4>
{{- end}}
<aside>
<p>To create, modify, or delete a route for an app, follow the <a href="{{.GuideURL}}" target="_blank">application routes guide</a>.</p>
</aside>
</div>
</body>
</html>
`))

type routesPageData struct {
	AppGUID  string
	Columns  []view.Column
	Rows     [][]string
	Empty    string
	GuideURL string
}

func (s *Server) handleRoutesPage(w http.ResponseWriter, r *http.Request) {
	list := view.NewRouteList(s.stores.Routes, mux.Vars(r)["guid"])

	data := routesPageData{
		AppGUID:  list.AppGUID(),
		Columns:  view.Columns,
		Rows:     list.Rows(),
		Empty:    view.NoRoutesMessage,
		GuideURL: view.RoutesGuideURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := routesPage.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render routes page")
	}
}
