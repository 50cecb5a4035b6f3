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
	"sync"

	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
)

// AppStore holds applications and tracks which one the user is looking at.
type AppStore struct {
	*store.Store

	api    API
	logger logger.Logger

	mu             sync.RWMutex
	currentAppGUID string
}

// NewAppStore creates the app store and registers it with d.
func NewAppStore(d Registrar, api API, log logger.Logger) *AppStore {
	log = logger.OrNop(log)

	s := &AppStore{
		Store:  store.New("apps", log),
		api:    api,
		logger: log,
	}

	d.Register(s.handle)

	return s
}

func (s *AppStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.AppFetch:
		s.api.FetchApp(a.AppGUID)
	case action.AppStatsFetch:
		s.api.FetchAppStats(a.AppGUID)
	case action.AppAllFetch:
		s.SetFetching(true)
		s.api.FetchAppAll(a.AppGUID)
	case action.AppReceived:
		s.Settle()

		if a.App.GUID() == "" {
			s.logger.Debug().Msg("Received app without a guid")
			return
		}

		s.MergeOne(models.KeyGUID, a.App, s.emitIfChanged)
	case action.AppStatsReceived:
		app := a.App.Clone()
		if app == nil {
			app = models.Record{}
		}

		app[models.KeyGUID] = a.AppGUID

		s.MergeOne(models.KeyGUID, app, s.emitIfChanged)
	case action.AppAllReceived:
		s.Settle()
		s.EmitChange()
	case action.AppChangeCurrent:
		s.mu.Lock()
		s.currentAppGUID = a.AppGUID
		s.mu.Unlock()

		s.EmitChange()
	default:
	}
}

func (s *AppStore) emitIfChanged(changed bool) {
	if changed {
		s.EmitChange()
	}
}

// CurrentAppGUID returns the app last selected with AppChangeCurrent.
func (s *AppStore) CurrentAppGUID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentAppGUID
}

// Reset clears the collection, the flags and the current app.
func (s *AppStore) Reset() {
	s.Store.Reset()

	s.mu.Lock()
	s.currentAppGUID = ""
	s.mu.Unlock()
}
