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

// Package app wires the dashboard server: configuration, logging, tracing, the
// dispatcher and stores, the platform API client and the HTTP server.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	promcollectors "github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/cloud-gov/cg-dashboard/pkg/cfapi"
	"github.com/cloud-gov/cg-dashboard/pkg/config"
	"github.com/cloud-gov/cg-dashboard/pkg/dispatcher"
	"github.com/cloud-gov/cg-dashboard/pkg/lifecycle"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/metrics"
	"github.com/cloud-gov/cg-dashboard/pkg/natsutil"
	"github.com/cloud-gov/cg-dashboard/pkg/stores"
	"github.com/cloud-gov/cg-dashboard/pkg/version"
	"github.com/cloud-gov/cg-dashboard/pkg/web"
)

const journalFlushTimeout = 5 * time.Second

var _ stores.API = (*cfapi.Client)(nil)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the dashboard and blocks until ctx is canceled or a signal arrives.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	if err = lifecycle.InitializeLogger(cfg.Logging); err != nil {
		return err
	}

	mainLogger, err := lifecycle.CreateComponentLogger("dashboard-main", cfg.Logging)
	if err != nil {
		return err
	}

	tracing := logger.TracingConfig{
		ServiceName:    "cg-dashboard",
		ServiceVersion: version.GetVersion(),
		Debug:          true,
		Logger:         mainLogger,
	}
	if cfg.Logging != nil {
		tracing.OTel = &cfg.Logging.OTel
	}

	tp, ctx, rootSpan, err := logger.InitializeTracing(ctx, tracing)
	if err != nil {
		return err
	}

	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			mainLogger.Error().Err(err).Msg("Error shutting down tracer provider")
		}

		rootSpan.End()
	}()

	if sanitized, err := config.Sanitized(&cfg); err == nil {
		mainLogger.Debug().RawJSON("config", sanitized).Msg("Loaded configuration")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		promcollectors.NewGoCollector(),
		promcollectors.NewProcessCollector(promcollectors.ProcessCollectorOpts{}),
	)

	collectors, err := metrics.New(registry)
	if err != nil {
		return err
	}

	d := dispatcher.New(lifecycle.ChildLogger(mainLogger, "dispatcher"), collectors)

	if cfg.NATS.Enabled {
		nc, js, err := natsutil.Connect(ctx, cfg.NATS, lifecycle.ChildLogger(mainLogger, "nats"))
		if err != nil {
			return err
		}

		defer closeJournal(nc, js, mainLogger)

		d.AddObserver(natsutil.NewActionJournal(js, cfg.NATS.SubjectPrefix, lifecycle.ChildLogger(mainLogger, "journal")))
	}

	client, err := cfapi.NewClient(cfg.API, d,
		cfapi.WithLogger(lifecycle.ChildLogger(mainLogger, "cfapi")),
		cfapi.WithRequestObserver(collectors),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	st := stores.New(d, client, lifecycle.ChildLogger(mainLogger, "stores"))

	unwatch := collectors.WatchStores(st.All()...)
	defer unwatch()

	server := web.NewServer(st, d,
		web.WithLogger(lifecycle.ChildLogger(mainLogger, "web")),
		web.WithGatherer(registry),
		web.WithCORS(cfg.CORS),
		web.WithAPIKey(cfg.APIKey),
	)

	mainLogger.Info().
		Str("version", version.GetFullVersion()).
		Str("listen_addr", cfg.ListenAddr).
		Strs("app_guids", cfg.AppGUIDs).
		Dur("refresh_interval", time.Duration(cfg.RefreshInterval)).
		Msg("Starting dashboard")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start(gctx, cfg.ListenAddr)
	})

	g.Go(func() error {
		return newRefresher(d, &cfg, lifecycle.ChildLogger(mainLogger, "refresh")).run(gctx)
	})

	err = g.Wait()

	mainLogger.Info().Err(err).Msg("Dashboard stopped")

	return err
}

// closeJournal waits briefly for outstanding publishes, then drains the connection.
func closeJournal(nc *nats.Conn, js jetstream.JetStream, log logger.Logger) {
	select {
	case <-js.PublishAsyncComplete():
	case <-time.After(journalFlushTimeout):
		log.Warn().Int("pending", js.PublishAsyncPending()).Msg("Action journal flush timed out")
	}

	if err := nc.Drain(); err != nil {
		log.Warn().Err(err).Msg("Error draining NATS connection")
	}
}
