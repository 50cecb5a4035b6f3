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

// Package stores holds one store per platform entity. Each store registers a single
// handler with the dispatcher and reconciles API responses into its collection.
package stores

import (
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
)

// Stores is every entity store of one dashboard, constructed by the composition root.
type Stores struct {
	Apps             *AppStore
	Routes           *RouteStore
	Services         *ServiceStore
	ServicePlans     *ServicePlanStore
	ServiceInstances *ServiceInstanceStore
	ServiceBindings  *ServiceBindingStore
}

// New constructs and registers every store. Registration order is dispatch order.
func New(d Registrar, api API, log logger.Logger) *Stores {
	return &Stores{
		Apps:             NewAppStore(d, api, log),
		Routes:           NewRouteStore(d, api, log),
		Services:         NewServiceStore(d, api, log),
		ServicePlans:     NewServicePlanStore(d, api, log),
		ServiceInstances: NewServiceInstanceStore(d, api, log),
		ServiceBindings:  NewServiceBindingStore(d, api, log),
	}
}

// All returns the base stores in registration order.
func (s *Stores) All() []*store.Store {
	return []*store.Store{
		s.Apps.Store,
		s.Routes.Store,
		s.Services.Store,
		s.ServicePlans.Store,
		s.ServiceInstances.Store,
		s.ServiceBindings.Store,
	}
}

// Reset returns every store to its initial state.
func (s *Stores) Reset() {
	s.Apps.Reset()
	s.Routes.Reset()
	s.Services.Reset()
	s.ServicePlans.Reset()
	s.ServiceInstances.Reset()
	s.ServiceBindings.Reset()
}
