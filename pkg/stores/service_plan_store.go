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

const (
	keyServiceGUID     = "service_guid"
	keyServicePlanGUID = "service_plan_guid"
)

// ServicePlanStore holds service plans. Plans are loaded per service when the catalog
// arrives, and one by one for the plans the space's instances use.
type ServicePlanStore struct {
	*store.Store

	api    API
	logger logger.Logger

	mu          sync.Mutex
	outstanding map[string]struct{}
}

// NewServicePlanStore creates the service plan store and registers it with d.
func NewServicePlanStore(d Registrar, api API, log logger.Logger) *ServicePlanStore {
	log = logger.OrNop(log)

	s := &ServicePlanStore{
		Store:       store.New("service_plans", log),
		api:         api,
		logger:      log,
		outstanding: make(map[string]struct{}),
	}

	d.Register(s.handle)

	return s
}

func (s *ServicePlanStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.ServicePlansFetch:
		s.SetFlags(true, false)
		s.api.FetchAllServicePlans(a.ServiceGUID)
	case action.ServicePlanFetch:
		s.api.FetchServicePlan(a.ServicePlanGUID)
	case action.ServicesReceived:
		s.SetFlags(true, false)

		for _, serviceGUID := range distinct(models.FormatSplitResponse(a.Services), models.KeyGUID) {
			s.api.FetchAllServicePlans(serviceGUID)
		}
	case action.ServiceInstancesReceived:
		s.instancesReceived(a)
	case action.ServicePlanReceived:
		s.planReceived(a)
	case action.ServicePlansReceived:
		s.plansReceived(a)
	default:
	}
}

func (s *ServicePlanStore) instancesReceived(a action.ServiceInstancesReceived) {
	planGUIDs := distinct(models.FormatSplitResponse(a.ServiceInstances), keyServicePlanGUID)

	s.mu.Lock()
	for _, planGUID := range planGUIDs {
		s.outstanding[planGUID] = struct{}{}
	}
	waiting := len(s.outstanding) > 0
	s.mu.Unlock()

	s.SetFlags(true, false)
	s.SetWaitingOnRequests(waiting)

	for _, planGUID := range planGUIDs {
		s.api.FetchServicePlan(planGUID)
	}

	s.EmitChange()
}

func (s *ServicePlanStore) planReceived(a action.ServicePlanReceived) {
	plan := models.ParseExtra(a.ServicePlan.Flatten())

	settled := false

	// Only plans requested for the space's instances settle the store.
	s.mu.Lock()
	if _, ok := s.outstanding[plan.GUID()]; ok {
		delete(s.outstanding, plan.GUID())
		settled = len(s.outstanding) == 0
	}
	s.mu.Unlock()

	if settled {
		s.SetWaitingOnRequests(false)
		s.Settle()
	}

	s.MergeOne(models.KeyGUID, plan, func(changed bool) {
		if changed || settled {
			s.EmitChange()
		}
	})
}

func (s *ServicePlanStore) plansReceived(a action.ServicePlansReceived) {
	if len(a.ServicePlans) == 0 {
		return
	}

	plans := models.FormatSplitResponse(a.ServicePlans)
	for i := range plans {
		plans[i] = models.ParseExtra(plans[i])
	}

	if !s.WaitingOnRequests() {
		s.Settle()
	}

	s.MergeMany(models.KeyGUID, plans, func(changed bool) {
		if changed {
			s.EmitChange()
		}
	})
}

// GetAllFromService returns the plans offered by serviceGUID.
func (s *ServicePlanStore) GetAllFromService(serviceGUID string) []models.Record {
	return s.Filter(func(r models.Record) bool {
		return r.String(keyServiceGUID) == serviceGUID
	})
}

// Reset clears the collection, the flags and the outstanding plan requests.
func (s *ServicePlanStore) Reset() {
	s.Store.Reset()

	s.mu.Lock()
	s.outstanding = make(map[string]struct{})
	s.mu.Unlock()
}
