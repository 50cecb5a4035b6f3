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

func (a *Actions) FetchApp(appGUID string) {
	a.dispatcher.HandleViewAction(action.AppFetch{AppGUID: appGUID})
}

func (a *Actions) ReceivedApp(app models.Record) {
	a.dispatcher.HandleServerAction(action.AppReceived{App: app})
}

func (a *Actions) FetchAppStats(appGUID string) {
	a.dispatcher.HandleViewAction(action.AppStatsFetch{AppGUID: appGUID})
}

// ReceivedAppStats delivers the stats of one app. The payload is merged onto the app
// with the given guid.
func (a *Actions) ReceivedAppStats(appGUID string, app models.Record) {
	a.dispatcher.HandleServerAction(action.AppStatsReceived{AppGUID: appGUID, App: app})
}

// FetchAppAll loads an app's summary and stats together.
func (a *Actions) FetchAppAll(appGUID string) {
	a.dispatcher.HandleViewAction(action.AppAllFetch{AppGUID: appGUID})
}

func (a *Actions) ReceivedAppAll(appGUID string) {
	a.dispatcher.HandleServerAction(action.AppAllReceived{AppGUID: appGUID})
}

func (a *Actions) ChangeCurrentApp(appGUID string) {
	a.dispatcher.HandleViewAction(action.AppChangeCurrent{AppGUID: appGUID})
}
