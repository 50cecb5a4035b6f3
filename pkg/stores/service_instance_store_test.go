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
	"errors"
	"testing"

	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceInstanceStore_FetchAndReceive(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances

	f.api.EXPECT().FetchServiceInstances("space-1").Times(1)
	f.api.EXPECT().FetchServicePlan(gomock.Any()).AnyTimes()

	f.actions.FetchAllInstances("space-1")
	assert.True(t, instances.Fetching())

	emits := countEmits(instances.Store)

	f.actions.ReceivedInstances(instanceResources())

	assert.False(t, instances.Fetching())
	assert.True(t, instances.Fetched())
	assert.Len(t, instances.GetAll(), 2)
	assert.Equal(t, 1, *emits)

	got, ok := instances.Get("adsfadcvzczxcvxvz")
	require.True(t, ok)
	assert.Equal(t, "plan-a", got["service_plan_guid"])
}

func TestServiceInstanceStore_ReceivedOne(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances
	emits := countEmits(instances.Store)

	inst := models.Resource{Metadata: models.Record{"guid": "afds"}, Entity: models.Record{"type": "someasdf"}}

	f.actions.ReceivedInstance(inst)
	f.actions.ReceivedInstance(inst)

	assert.Equal(t, []models.Record{{"guid": "afds", "type": "someasdf"}}, instances.GetAll())
	assert.Equal(t, 1, *emits)
}

func TestServiceInstanceStore_CreateFormLifecycle(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances

	assert.Nil(t, instances.CreateForm())

	f.actions.CreateInstanceForm("svc", "plan")

	form := instances.CreateForm()
	require.NotNil(t, form)
	assert.Equal(t, CreateForm{ServiceGUID: "svc", ServicePlanGUID: "plan"}, *form)

	f.actions.CreateInstanceFormCancel()
	assert.Nil(t, instances.CreateForm())
}

func TestServiceInstanceStore_CreateSuccess(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances

	f.api.EXPECT().CreateServiceInstance("service", "space", "plan").Times(1)

	f.actions.CreateInstanceForm("svc", "plan")
	f.actions.CreateInstance("service", "space", "plan")

	require.NotNil(t, instances.CreateForm())
	assert.True(t, instances.CreateForm().Submitting)

	emits := countEmits(instances.Store)

	f.actions.CreatedInstance(models.Resource{
		Metadata: models.Record{"guid": "new-instance"},
		Entity:   models.Record{"name": "service"},
	})

	assert.Nil(t, instances.CreateForm())
	assert.Equal(t, 1, *emits)

	got, ok := instances.Get("new-instance")
	require.True(t, ok)
	assert.Equal(t, "service", got["name"])
}

func TestServiceInstanceStore_CreateError(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances
	cause := errors.New("400 Bad Request")

	f.api.EXPECT().CreateServiceInstance("service", "space", "plan")

	f.actions.CreateInstanceForm("svc", "plan")
	f.actions.CreateInstance("service", "space", "plan")
	f.actions.ErrorCreateInstance(400, "The service instance name is taken", cause)

	form := instances.CreateForm()
	require.NotNil(t, form)
	assert.False(t, form.Submitting)
	require.NotNil(t, form.Error)
	assert.Equal(t, 400, form.Error.StatusCode)
	assert.Equal(t, "The service instance name is taken", form.Error.Message)
	assert.ErrorIs(t, form.Error.Err, cause)
	assert.Empty(t, instances.GetAll())
}

func TestServiceInstanceStore_DeleteConfirmAndCancel(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances
	instances.Push(models.Record{"guid": "09zxcn1dsf", "name": "db"})

	f.actions.DeleteInstanceConfirm("09zxcn1dsf")

	got, _ := instances.Get("09zxcn1dsf")
	assert.Equal(t, true, got[KeyConfirmDelete])

	f.actions.DeleteInstanceCancel("09zxcn1dsf")

	got, _ = instances.Get("09zxcn1dsf")
	assert.Equal(t, false, got[KeyConfirmDelete])

	f.actions.DeleteInstanceConfirm("unknown")
	assert.Len(t, instances.GetAll(), 1, "confirming an unknown instance does not create it")
}

func TestServiceInstanceStore_Delete(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances
	instances.Push(models.Record{"guid": "asdfasdf"})
	instances.Push(models.Record{"guid": "keep"})

	f.api.EXPECT().DeleteServiceInstance("asdfasdf").Times(1)

	f.actions.DeleteInstance("asdfasdf")
	assert.Len(t, instances.GetAll(), 2, "delete waits for the server")

	emits := countEmits(instances.Store)

	f.actions.DeletedInstance("asdfasdf")
	f.actions.DeletedInstance("asdfasdf")

	assert.Equal(t, []models.Record{{"guid": "keep"}}, instances.GetAll())
	assert.Equal(t, 1, *emits)
}

func TestServiceInstanceStore_Reset(t *testing.T) {
	f := newFixture(t)
	instances := f.stores.ServiceInstances

	f.actions.CreateInstanceForm("svc", "plan")
	instances.Push(models.Record{"guid": "a"})

	instances.Reset()

	assert.Nil(t, instances.CreateForm())
	assert.Empty(t, instances.GetAll())
}
