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

// ServiceStore holds the service catalog of an organization.
type ServiceStore struct {
	*store.Store

	api API
}

// NewServiceStore creates the service store and registers it with d.
func NewServiceStore(d Registrar, api API, log logger.Logger) *ServiceStore {
	s := &ServiceStore{
		Store: store.New("services", log),
		api:   api,
	}

	d.Register(s.handle)

	return s
}

func (s *ServiceStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.ServicesFetch:
		s.SetFlags(true, false)
		s.api.FetchAllServices(a.OrgGUID)
	case action.ServicesReceived:
		wasFetching := s.Settle()

		s.MergeMany(models.KeyGUID, models.FormatSplitResponse(a.Services), func(changed bool) {
			if changed || wasFetching {
				s.EmitChange()
			}
		})
	default:
	}
}
