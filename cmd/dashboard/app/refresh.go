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

package app

import (
	"context"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/actions"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
)

// refresher periodically dispatches fetch actions for the configured apps, org and
// space. The stores turn each fetch into an API call.
type refresher struct {
	actions   *actions.Actions
	appGUIDs  []string
	orgGUID   string
	spaceGUID string
	interval  time.Duration
	logger    logger.Logger
}

func newRefresher(d actions.Dispatcher, cfg *Config, log logger.Logger) *refresher {
	return &refresher{
		actions:   actions.New(d),
		appGUIDs:  cfg.AppGUIDs,
		orgGUID:   cfg.OrgGUID,
		spaceGUID: cfg.SpaceGUID,
		interval:  time.Duration(cfg.RefreshInterval),
		logger:    logger.OrNop(log),
	}
}

// run refreshes once immediately and then on every tick until ctx is done.
func (r *refresher) run(ctx context.Context) error {
	r.refresh()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *refresher) refresh() {
	r.logger.Debug().
		Int("apps", len(r.appGUIDs)).
		Msg("Refreshing dashboard stores")

	for _, guid := range r.appGUIDs {
		r.actions.FetchAppAll(guid)
		r.actions.FetchRoutesForApp(guid)
		r.actions.FetchServiceBindings(guid)
	}

	if r.orgGUID != "" {
		r.actions.FetchAllServices(r.orgGUID)
	}

	if r.spaceGUID != "" {
		r.actions.FetchAllInstances(r.spaceGUID)
	}
}
