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
	"testing"

	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func instanceResources() []models.Resource {
	return []models.Resource{
		{
			Metadata: models.Record{"guid": "adsfadcvzczxcvxvz"},
			Entity:   models.Record{"service_plan_guid": "plan-a"},
		},
		{
			Metadata: models.Record{"guid": "adsfadcvb234zxva"},
			Entity: models.Record{
				"app_guid":          "2a3820bb-febd-4c90-ab66-80faa4362142",
				"service_plan_guid": "plan-b",
			},
		},
	}
}

func TestServicePlanStore_GetAllFromService(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	expected := []models.Record{
		{"service_guid": "svc", "guid": "zvcxklz"},
		{"service_guid": "svc", "guid": "zcvzcxvzzv"},
	}

	plans.Push(expected[0])
	plans.Push(models.Record{"service_guid": "zxklcjv", "guid": "qwpoerui"})
	plans.Push(expected[1])

	assert.Equal(t, expected, plans.GetAllFromService("svc"))
}

func TestServicePlanStore_InstancesReceived(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans
	emits := countEmits(plans.Store)

	f.api.EXPECT().FetchServicePlan("plan-a").Times(1)
	f.api.EXPECT().FetchServicePlan("plan-b").Times(1)

	f.actions.ReceivedInstances(instanceResources())

	assert.True(t, plans.Fetching())
	assert.False(t, plans.Fetched())
	assert.True(t, plans.WaitingOnRequests())
	assert.Equal(t, 1, *emits)
}

func TestServicePlanStore_InstancesReceivedSharedPlanFetchedOnce(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().FetchServicePlan("plan-a").Times(1)

	instances := instanceResources()
	instances[1].Entity["service_plan_guid"] = "plan-a"

	f.actions.ReceivedInstances(instances)
}

func TestServicePlanStore_EmptyInstancesDoNotWait(t *testing.T) {
	f := newFixture(t)
	emits := countEmits(f.stores.ServicePlans.Store)

	f.actions.ReceivedInstances(nil)

	assert.False(t, f.stores.ServicePlans.WaitingOnRequests())
	assert.Equal(t, 1, *emits)
}

func TestServicePlanStore_PlanReceivedSettlesOutstandingFetches(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	f.api.EXPECT().FetchServicePlan(gomock.Any()).Times(2)

	f.actions.ReceivedInstances(instanceResources())

	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-a"}, Entity: models.Record{"name": "small"}})
	assert.True(t, plans.WaitingOnRequests())
	assert.True(t, plans.Fetching())

	emits := countEmits(plans.Store)

	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-b"}, Entity: models.Record{"name": "large"}})
	assert.False(t, plans.WaitingOnRequests())
	assert.False(t, plans.Fetching())
	assert.True(t, plans.Fetched())
	assert.Equal(t, 1, *emits)
	assert.Len(t, plans.GetAll(), 2)

	// A late duplicate neither changes data nor re-settles.
	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-b"}, Entity: models.Record{"name": "large"}})
	assert.Equal(t, 1, *emits)
}

func TestServicePlanStore_UnrequestedPlanDoesNotSettle(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	f.api.EXPECT().FetchServicePlan("plan-a")
	f.api.EXPECT().FetchServicePlan("plan-b")
	f.api.EXPECT().FetchServicePlan("plan-c")

	f.actions.ReceivedInstances(instanceResources())
	f.actions.FetchServicePlan("plan-c")

	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-c"}, Entity: models.Record{"name": "extra"}})
	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-a"}, Entity: models.Record{"name": "small"}})

	assert.True(t, plans.WaitingOnRequests(), "plan-b is still outstanding")
	assert.True(t, plans.Fetching())
	assert.False(t, plans.Fetched())

	f.actions.ReceivedPlan(models.Resource{Metadata: models.Record{"guid": "plan-b"}, Entity: models.Record{"name": "large"}})

	assert.False(t, plans.WaitingOnRequests())
	assert.False(t, plans.Fetching())
	assert.True(t, plans.Fetched())
	assert.Len(t, plans.GetAll(), 3)
}

func TestServicePlanStore_ServicesReceived(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	f.api.EXPECT().FetchAllServicePlans("3981f").Times(1)

	f.actions.ReceivedServices(wrapInRes(models.Record{"guid": "3981f", "name": "adlfskzxcv"}))

	assert.True(t, plans.Fetching())
	assert.False(t, plans.Fetched())
}

func TestServicePlanStore_PlansFetch(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans
	plans.SetFetched(true)

	f.api.EXPECT().FetchAllServicePlans("zxncvz8xcvhn32").Times(1)

	f.actions.FetchAllPlans("zxncvz8xcvhn32")

	assert.True(t, plans.Fetching())
	assert.False(t, plans.Fetched())
}

func TestServicePlanStore_PlanFetch(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().FetchServicePlan("p1").Times(1)

	f.actions.FetchServicePlan("p1")
}

func TestServicePlanStore_PlansReceivedMerges(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	expected := []models.Record{
		{"guid": "zxvcjz", "name": "zxkjv"},
		{"guid": "3981f", "name": "adlfskzxcv"},
	}

	plans.Push(models.Record{"guid": "alkdjsfzxcv"})

	f.actions.ReceivedPlans(wrapInRes(expected...))

	assert.Len(t, plans.GetAll(), 3)

	got, ok := plans.Get("zxvcjz")
	require.True(t, ok)
	assert.Equal(t, expected[0], got)
}

func TestServicePlanStore_PlansReceivedParsesExtra(t *testing.T) {
	f := newFixture(t)

	f.actions.ReceivedPlans(wrapInRes(models.Record{"guid": "adslkjfzcxv", "extra": `{"amount":{"usd":0.1}}`}))

	got, ok := f.stores.ServicePlans.Get("adslkjfzcxv")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"amount": map[string]interface{}{"usd": 0.1}}, got["extra"])
}

func TestServicePlanStore_EmptyPlansReceivedDoesNothing(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans

	plans.Push(models.Record{"guid": "adsfklj"})
	plans.SetFetching(true)

	emits := countEmits(plans.Store)

	f.actions.ReceivedPlans(nil)

	assert.Equal(t, 0, *emits)
	assert.Len(t, plans.GetAll(), 1)
	assert.True(t, plans.Fetching())
}

func TestServicePlanStore_PlansReceivedSettlesFlags(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans
	plans.SetFetching(true)

	f.actions.ReceivedPlans(wrapInRes(models.Record{"guid": "adfklj"}))

	assert.False(t, plans.Fetching())
	assert.True(t, plans.Fetched())
}

func TestServicePlanStore_PlansReceivedWhileWaitingKeepsFetching(t *testing.T) {
	f := newFixture(t)
	plans := f.stores.ServicePlans
	plans.SetFetching(true)
	plans.SetWaitingOnRequests(true)

	f.actions.ReceivedPlans(wrapInRes(models.Record{"guid": "adfklj"}))

	assert.True(t, plans.Fetching())
	assert.False(t, plans.Fetched())
	assert.Len(t, plans.GetAll(), 1)
}
