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

package actions

import (
	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
)

func (a *Actions) FetchRoutesForApp(appGUID string) {
	a.dispatcher.HandleViewAction(action.RoutesForAppFetch{AppGUID: appGUID})
}

// ReceivedRoutesForApp delivers every route resource of an app, unflattened.
func (a *Actions) ReceivedRoutesForApp(routes []models.Resource, appGUID string) {
	a.dispatcher.HandleServerAction(action.RoutesForAppReceived{AppGUID: appGUID, Routes: routes})
}

func (a *Actions) FetchDomain(domainGUID string) {
	a.dispatcher.HandleViewAction(action.DomainFetch{DomainGUID: domainGUID})
}

func (a *Actions) ReceivedDomain(domain models.Resource) {
	a.dispatcher.HandleServerAction(action.DomainReceived{Domain: domain})
}
