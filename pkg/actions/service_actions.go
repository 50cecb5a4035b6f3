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

func (a *Actions) FetchAllServices(orgGUID string) {
	a.dispatcher.HandleViewAction(action.ServicesFetch{OrgGUID: orgGUID})
}

func (a *Actions) ReceivedServices(services []models.Resource) {
	a.dispatcher.HandleServerAction(action.ServicesReceived{Services: services})
}

func (a *Actions) FetchServicePlan(servicePlanGUID string) {
	a.dispatcher.HandleViewAction(action.ServicePlanFetch{ServicePlanGUID: servicePlanGUID})
}

func (a *Actions) ReceivedPlan(servicePlan models.Resource) {
	a.dispatcher.HandleServerAction(action.ServicePlanReceived{ServicePlan: servicePlan})
}

func (a *Actions) FetchAllPlans(serviceGUID string) {
	a.dispatcher.HandleViewAction(action.ServicePlansFetch{ServiceGUID: serviceGUID})
}

func (a *Actions) ReceivedPlans(servicePlans []models.Resource) {
	a.dispatcher.HandleServerAction(action.ServicePlansReceived{ServicePlans: servicePlans})
}

func (a *Actions) FetchAllInstances(spaceGUID string) {
	a.dispatcher.HandleViewAction(action.ServiceInstancesFetch{SpaceGUID: spaceGUID})
}

func (a *Actions) ReceivedInstances(serviceInstances []models.Resource) {
	a.dispatcher.HandleServerAction(action.ServiceInstancesReceived{ServiceInstances: serviceInstances})
}

func (a *Actions) ReceivedInstance(serviceInstance models.Resource) {
	a.dispatcher.HandleServerAction(action.ServiceInstanceReceived{ServiceInstance: serviceInstance})
}

// CreateInstanceForm opens the create form for a plan of a service.
func (a *Actions) CreateInstanceForm(serviceGUID, servicePlanGUID string) {
	a.dispatcher.HandleViewAction(action.ServiceInstanceCreateForm{
		ServiceGUID:     serviceGUID,
		ServicePlanGUID: servicePlanGUID,
	})
}

func (a *Actions) CreateInstanceFormCancel() {
	a.dispatcher.HandleUIAction(action.ServiceInstanceCreateFormCancel{})
}

func (a *Actions) CreateInstance(name, spaceGUID, servicePlanGUID string) {
	a.dispatcher.HandleViewAction(action.ServiceInstanceCreate{
		Name:            name,
		SpaceGUID:       spaceGUID,
		ServicePlanGUID: servicePlanGUID,
	})
}

func (a *Actions) CreatedInstance(serviceInstance models.Resource) {
	a.dispatcher.HandleServerAction(action.ServiceInstanceCreated{ServiceInstance: serviceInstance})
}

// ErrorCreateInstance reports a failed create. status is the HTTP status, or 0 when
// the request never got a response.
func (a *Actions) ErrorCreateInstance(status int, message string, err error) {
	a.dispatcher.HandleServerAction(action.ServiceInstanceError{
		StatusCode: status,
		Message:    message,
		Err:        err,
	})
}

func (a *Actions) DeleteInstanceConfirm(serviceInstanceGUID string) {
	a.dispatcher.HandleUIAction(action.ServiceInstanceDeleteConfirm{ServiceInstanceGUID: serviceInstanceGUID})
}

func (a *Actions) DeleteInstanceCancel(serviceInstanceGUID string) {
	a.dispatcher.HandleUIAction(action.ServiceInstanceDeleteCancel{ServiceInstanceGUID: serviceInstanceGUID})
}

func (a *Actions) DeleteInstance(serviceInstanceGUID string) {
	a.dispatcher.HandleViewAction(action.ServiceInstanceDelete{ServiceInstanceGUID: serviceInstanceGUID})
}

func (a *Actions) DeletedInstance(serviceInstanceGUID string) {
	a.dispatcher.HandleServerAction(action.ServiceInstanceDeleted{ServiceInstanceGUID: serviceInstanceGUID})
}

func (a *Actions) FetchServiceBindings(appGUID string) {
	a.dispatcher.HandleViewAction(action.ServiceBindingsFetch{AppGUID: appGUID})
}

func (a *Actions) ReceivedServiceBindings(serviceBindings []models.Resource) {
	a.dispatcher.HandleServerAction(action.ServiceBindingsReceived{ServiceBindings: serviceBindings})
}
