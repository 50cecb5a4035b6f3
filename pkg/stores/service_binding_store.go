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
	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
)

// ServiceBindingStore holds the bindings between apps and service instances.
type ServiceBindingStore struct {
	*store.Store

	api API
}

// NewServiceBindingStore creates the service binding store and registers it with d.
func NewServiceBindingStore(d Registrar, api API, log logger.Logger) *ServiceBindingStore {
	s := &ServiceBindingStore{
		Store: store.New("service_bindings", log),
		api:   api,
	}

	d.Register(s.handle)

	return s
}

func (s *ServiceBindingStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.ServiceBindingsFetch:
		s.SetFlags(true, false)
		s.api.FetchServiceBindings(a.AppGUID)
	case action.ServiceBindingsReceived:
		wasFetching := s.Settle()

		s.MergeMany(models.KeyGUID, models.FormatSplitResponse(a.ServiceBindings), func(changed bool) {
			if changed || wasFetching {
				s.EmitChange()
			}
		})
	default:
	}
}

// GetAllForApp returns the bindings of appGUID.
func (s *ServiceBindingStore) GetAllForApp(appGUID string) []models.Record {
	return s.Filter(func(r models.Record) bool {
		return r.String(keyAppGUID) == appGUID
	})
}
