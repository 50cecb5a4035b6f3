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

// Package action defines every action the dashboard dispatches. Action is a closed sum
// type: only the variants declared in this package implement it.
package action

// Type names an action variant. The string form is used in logs, metric labels and the
// action journal subject.
type Type string

// Source records which side of the dashboard produced an action. It is documentary:
// the dispatcher delivers every source the same way.
type Source string

const (
	SourceView   Source = "view"
	SourceServer Source = "server"
	SourceUI     Source = "ui"
)

// Action is implemented by every variant in this package.
//
//sumtype:decl
type Action interface {
	Type() Type
	sealed()
}

// Payload is what the dispatcher broadcasts: an action tagged with its source.
type Payload struct {
	Source Source
	Action Action
}

const (
	TypeAppFetch         Type = "APP_FETCH"
	TypeAppReceived      Type = "APP_RECEIVED"
	TypeAppStatsFetch    Type = "APP_STATS_FETCH"
	TypeAppStatsReceived Type = "APP_STATS_RECEIVED"
	TypeAppAllFetch      Type = "APP_ALL_FETCH"
	TypeAppAllReceived   Type = "APP_ALL_RECEIVED"
	TypeAppChangeCurrent Type = "APP_CHANGE_CURRENT"

	TypeRoutesForAppFetch    Type = "ROUTES_FOR_APP_FETCH"
	TypeRoutesForAppReceived Type = "ROUTES_FOR_APP_RECEIVED"

	TypeDomainFetch    Type = "DOMAIN_FETCH"
	TypeDomainReceived Type = "DOMAIN_RECEIVED"

	TypeServicesFetch    Type = "SERVICES_FETCH"
	TypeServicesReceived Type = "SERVICES_RECEIVED"

	TypeServicePlanFetch     Type = "SERVICE_PLAN_FETCH"
	TypeServicePlanReceived  Type = "SERVICE_PLAN_RECEIVED"
	TypeServicePlansFetch    Type = "SERVICE_PLANS_FETCH"
	TypeServicePlansReceived Type = "SERVICE_PLANS_RECEIVED"

	TypeServiceInstancesFetch           Type = "SERVICE_INSTANCES_FETCH"
	TypeServiceInstancesReceived        Type = "SERVICE_INSTANCES_RECEIVED"
	TypeServiceInstanceReceived         Type = "SERVICE_INSTANCE_RECEIVED"
	TypeServiceInstanceCreateForm       Type = "SERVICE_INSTANCE_CREATE_FORM"
	TypeServiceInstanceCreateFormCancel Type = "SERVICE_INSTANCE_CREATE_FORM_CANCEL"
	TypeServiceInstanceCreate           Type = "SERVICE_INSTANCE_CREATE"
	TypeServiceInstanceCreated          Type = "SERVICE_INSTANCE_CREATED"
	TypeServiceInstanceError            Type = "SERVICE_INSTANCE_ERROR"
	TypeServiceInstanceDeleteConfirm    Type = "SERVICE_INSTANCE_DELETE_CONFIRM"
	TypeServiceInstanceDeleteCancel     Type = "SERVICE_INSTANCE_DELETE_CANCEL"
	TypeServiceInstanceDelete           Type = "SERVICE_INSTANCE_DELETE"
	TypeServiceInstanceDeleted          Type = "SERVICE_INSTANCE_DELETED"

	TypeServiceBindingsFetch    Type = "SERVICE_BINDINGS_FETCH"
	TypeServiceBindingsReceived Type = "SERVICE_BINDINGS_RECEIVED"
)

// Types lists every action type in declaration order.
func Types() []Type {
	return []Type{
		TypeAppFetch, TypeAppReceived, TypeAppStatsFetch, TypeAppStatsReceived, TypeAppAllFetch, TypeAppAllReceived, TypeAppChangeCurrent,
		TypeRoutesForAppFetch, TypeRoutesForAppReceived,
		TypeDomainFetch, TypeDomainReceived,
		TypeServicesFetch, TypeServicesReceived,
		TypeServicePlanFetch, TypeServicePlanReceived, TypeServicePlansFetch, TypeServicePlansReceived,
		TypeServiceInstancesFetch, TypeServiceInstancesReceived, TypeServiceInstanceReceived,
		TypeServiceInstanceCreateForm, TypeServiceInstanceCreateFormCancel,
		TypeServiceInstanceCreate, TypeServiceInstanceCreated, TypeServiceInstanceError,
		TypeServiceInstanceDeleteConfirm, TypeServiceInstanceDeleteCancel,
		TypeServiceInstanceDelete, TypeServiceInstanceDeleted,
		TypeServiceBindingsFetch, TypeServiceBindingsReceived,
	}
}
