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

package action

import "github.com/cloud-gov/cg-dashboard/pkg/models"

// Apps

type AppFetch struct {
	AppGUID string `json:"appGuid"`
}

// AppReceived carries a full app payload. The summary form nests the app's routes,
// each with its resolved domain.
type AppReceived struct {
	App models.Record `json:"app"`
}

type AppStatsFetch struct {
	AppGUID string `json:"appGuid"`
}

type AppStatsReceived struct {
	AppGUID string        `json:"appGuid"`
	App     models.Record `json:"app"`
}

type AppAllFetch struct {
	AppGUID string `json:"appGuid"`
}

type AppAllReceived struct {
	AppGUID string `json:"appGuid"`
}

type AppChangeCurrent struct {
	AppGUID string `json:"appGuid"`
}

// Routes and domains

type RoutesForAppFetch struct {
	AppGUID string `json:"appGuid"`
}

// RoutesForAppReceived carries every route resource of one app, all pages joined.
type RoutesForAppReceived struct {
	AppGUID string            `json:"appGuid"`
	Routes  []models.Resource `json:"routes"`
}

type DomainFetch struct {
	DomainGUID string `json:"domainGuid"`
}

type DomainReceived struct {
	Domain models.Resource `json:"domain"`
}

// Service catalog

type ServicesFetch struct {
	OrgGUID string `json:"orgGuid"`
}

type ServicesReceived struct {
	Services []models.Resource `json:"services"`
}

type ServicePlanFetch struct {
	ServicePlanGUID string `json:"servicePlanGuid"`
}

type ServicePlanReceived struct {
	ServicePlan models.Resource `json:"servicePlan"`
}

type ServicePlansFetch struct {
	ServiceGUID string `json:"serviceGuid"`
}

type ServicePlansReceived struct {
	ServicePlans []models.Resource `json:"servicePlans"`
}

// Service instances

type ServiceInstancesFetch struct {
	SpaceGUID string `json:"spaceGuid"`
}

type ServiceInstancesReceived struct {
	ServiceInstances []models.Resource `json:"serviceInstances"`
}

type ServiceInstanceReceived struct {
	ServiceInstance models.Resource `json:"serviceInstance"`
}

type ServiceInstanceCreateForm struct {
	ServiceGUID     string `json:"serviceGuid"`
	ServicePlanGUID string `json:"servicePlanGuid"`
}

type ServiceInstanceCreateFormCancel struct{}

type ServiceInstanceCreate struct {
	Name            string `json:"name"`
	SpaceGUID       string `json:"spaceGuid"`
	ServicePlanGUID string `json:"servicePlanGuid"`
}

type ServiceInstanceCreated struct {
	ServiceInstance models.Resource `json:"serviceInstance"`
}

// ServiceInstanceError reports a failed instance creation. It is the only fetch flow
// with a modelled failure.
type ServiceInstanceError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

type ServiceInstanceDeleteConfirm struct {
	ServiceInstanceGUID string `json:"serviceInstanceGuid"`
}

type ServiceInstanceDeleteCancel struct {
	ServiceInstanceGUID string `json:"serviceInstanceGuid"`
}

type ServiceInstanceDelete struct {
	ServiceInstanceGUID string `json:"serviceInstanceGuid"`
}

type ServiceInstanceDeleted struct {
	ServiceInstanceGUID string `json:"serviceInstanceGuid"`
}

// Service bindings

type ServiceBindingsFetch struct {
	AppGUID string `json:"appGuid"`
}

type ServiceBindingsReceived struct {
	ServiceBindings []models.Resource `json:"serviceBindings"`
}

func (AppFetch) Type() Type         { return TypeAppFetch }
func (AppReceived) Type() Type      { return TypeAppReceived }
func (AppStatsFetch) Type() Type    { return TypeAppStatsFetch }
func (AppStatsReceived) Type() Type { return TypeAppStatsReceived }
func (AppAllFetch) Type() Type      { return TypeAppAllFetch }
func (AppAllReceived) Type() Type   { return TypeAppAllReceived }
func (AppChangeCurrent) Type() Type { return TypeAppChangeCurrent }

func (RoutesForAppFetch) Type() Type    { return TypeRoutesForAppFetch }
func (RoutesForAppReceived) Type() Type { return TypeRoutesForAppReceived }
func (DomainFetch) Type() Type          { return TypeDomainFetch }
func (DomainReceived) Type() Type       { return TypeDomainReceived }

func (ServicesFetch) Type() Type        { return TypeServicesFetch }
func (ServicesReceived) Type() Type     { return TypeServicesReceived }
func (ServicePlanFetch) Type() Type     { return TypeServicePlanFetch }
func (ServicePlanReceived) Type() Type  { return TypeServicePlanReceived }
func (ServicePlansFetch) Type() Type    { return TypeServicePlansFetch }
func (ServicePlansReceived) Type() Type { return TypeServicePlansReceived }

func (ServiceInstancesFetch) Type() Type           { return TypeServiceInstancesFetch }
func (ServiceInstancesReceived) Type() Type        { return TypeServiceInstancesReceived }
func (ServiceInstanceReceived) Type() Type         { return TypeServiceInstanceReceived }
func (ServiceInstanceCreateForm) Type() Type       { return TypeServiceInstanceCreateForm }
func (ServiceInstanceCreateFormCancel) Type() Type { return TypeServiceInstanceCreateFormCancel }
func (ServiceInstanceCreate) Type() Type           { return TypeServiceInstanceCreate }
func (ServiceInstanceCreated) Type() Type          { return TypeServiceInstanceCreated }
func (ServiceInstanceError) Type() Type            { return TypeServiceInstanceError }
func (ServiceInstanceDeleteConfirm) Type() Type    { return TypeServiceInstanceDeleteConfirm }
func (ServiceInstanceDeleteCancel) Type() Type     { return TypeServiceInstanceDeleteCancel }
func (ServiceInstanceDelete) Type() Type           { return TypeServiceInstanceDelete }
func (ServiceInstanceDeleted) Type() Type          { return TypeServiceInstanceDeleted }

func (ServiceBindingsFetch) Type() Type    { return TypeServiceBindingsFetch }
func (ServiceBindingsReceived) Type() Type { return TypeServiceBindingsReceived }

func (AppFetch) sealed()                        {}
func (AppReceived) sealed()                     {}
func (AppStatsFetch) sealed()                   {}
func (AppStatsReceived) sealed()                {}
func (AppAllFetch) sealed()                     {}
func (AppAllReceived) sealed()                  {}
func (AppChangeCurrent) sealed()                {}
func (RoutesForAppFetch) sealed()               {}
func (RoutesForAppReceived) sealed()            {}
func (DomainFetch) sealed()                     {}
func (DomainReceived) sealed()                  {}
func (ServicesFetch) sealed()                   {}
func (ServicesReceived) sealed()                {}
func (ServicePlanFetch) sealed()                {}
func (ServicePlanReceived) sealed()             {}
func (ServicePlansFetch) sealed()               {}
func (ServicePlansReceived) sealed()            {}
func (ServiceInstancesFetch) sealed()           {}
func (ServiceInstancesReceived) sealed()        {}
func (ServiceInstanceReceived) sealed()         {}
func (ServiceInstanceCreateForm) sealed()       {}
func (ServiceInstanceCreateFormCancel) sealed() {}
func (ServiceInstanceCreate) sealed()           {}
func (ServiceInstanceCreated) sealed()          {}
func (ServiceInstanceError) sealed()            {}
func (ServiceInstanceDeleteConfirm) sealed()    {}
func (ServiceInstanceDeleteCancel) sealed()     {}
func (ServiceInstanceDelete) sealed()           {}
func (ServiceInstanceDeleted) sealed()          {}
func (ServiceBindingsFetch) sealed()            {}
func (ServiceBindingsReceived) sealed()         {}
