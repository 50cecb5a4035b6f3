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

// KeyConfirmDelete marks an instance whose delete is awaiting confirmation.
const KeyConfirmDelete = "confirmDelete"

// CreateForm is the state of the open create-instance form.
type CreateForm struct {
	ServiceGUID     string                       `json:"serviceGuid"`
	ServicePlanGUID string                       `json:"servicePlanGuid"`
	Submitting      bool                         `json:"submitting"`
	Error           *action.ServiceInstanceError `json:"error,omitempty"`
}

// ServiceInstanceStore holds the service instances of a space, the create form and
// the delete confirmations.
type ServiceInstanceStore struct {
	*store.Store

	api    API
	logger logger.Logger

	mu   sync.RWMutex
	form *CreateForm
}

// NewServiceInstanceStore creates the service instance store and registers it with d.
func NewServiceInstanceStore(d Registrar, api API, log logger.Logger) *ServiceInstanceStore {
	log = logger.OrNop(log)

	s := &ServiceInstanceStore{
		Store:  store.New("service_instances", log),
		api:    api,
		logger: log,
	}

	d.Register(s.handle)

	return s
}

func (s *ServiceInstanceStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.ServiceInstancesFetch:
		s.SetFlags(true, false)
		s.api.FetchServiceInstances(a.SpaceGUID)
	case action.ServiceInstancesReceived:
		wasFetching := s.Settle()

		s.MergeMany(models.KeyGUID, models.FormatSplitResponse(a.ServiceInstances), func(changed bool) {
			if changed || wasFetching {
				s.EmitChange()
			}
		})
	case action.ServiceInstanceReceived:
		s.MergeOne(models.KeyGUID, a.ServiceInstance.Flatten(), s.emitIfChanged)
	case action.ServiceInstanceCreateForm:
		s.setForm(&CreateForm{ServiceGUID: a.ServiceGUID, ServicePlanGUID: a.ServicePlanGUID})
	case action.ServiceInstanceCreateFormCancel:
		s.setForm(nil)
	case action.ServiceInstanceCreate:
		s.updateForm(func(f *CreateForm) {
			f.Submitting = true
			f.Error = nil
		})
		s.api.CreateServiceInstance(a.Name, a.SpaceGUID, a.ServicePlanGUID)
	case action.ServiceInstanceCreated:
		s.mu.Lock()
		s.form = nil
		s.mu.Unlock()

		s.MergeOne(models.KeyGUID, a.ServiceInstance.Flatten(), func(bool) {
			s.EmitChange()
		})
	case action.ServiceInstanceError:
		s.logger.Warn().
			Int("status", a.StatusCode).
			Str("message", a.Message).
			Msg("Service instance create failed")

		errCopy := a
		s.updateForm(func(f *CreateForm) {
			f.Submitting = false
			f.Error = &errCopy
		})
	case action.ServiceInstanceDeleteConfirm:
		s.setConfirmDelete(a.ServiceInstanceGUID, true)
	case action.ServiceInstanceDeleteCancel:
		s.setConfirmDelete(a.ServiceInstanceGUID, false)
	case action.ServiceInstanceDelete:
		s.api.DeleteServiceInstance(a.ServiceInstanceGUID)
	case action.ServiceInstanceDeleted:
		if s.Delete(models.KeyGUID, a.ServiceInstanceGUID) {
			s.EmitChange()
		}
	default:
	}
}

func (s *ServiceInstanceStore) emitIfChanged(changed bool) {
	if changed {
		s.EmitChange()
	}
}

func (s *ServiceInstanceStore) setForm(f *CreateForm) {
	s.mu.Lock()
	s.form = f
	s.mu.Unlock()

	s.EmitChange()
}

// updateForm edits the open form, opening an empty one first if none is open.
func (s *ServiceInstanceStore) updateForm(edit func(*CreateForm)) {
	s.mu.Lock()
	if s.form == nil {
		s.form = &CreateForm{}
	}

	edit(s.form)
	s.mu.Unlock()

	s.EmitChange()
}

func (s *ServiceInstanceStore) setConfirmDelete(guid string, confirm bool) {
	if _, ok := s.Get(guid); !ok {
		return
	}

	s.MergeOne(models.KeyGUID, models.Record{
		models.KeyGUID:   guid,
		KeyConfirmDelete: confirm,
	}, s.emitIfChanged)
}

// CreateForm returns a copy of the open create form, or nil when it is closed.
func (s *ServiceInstanceStore) CreateForm() *CreateForm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.form == nil {
		return nil
	}

	f := *s.form

	return &f
}

// Reset clears the collection, the flags and the create form.
func (s *ServiceInstanceStore) Reset() {
	s.Store.Reset()

	s.mu.Lock()
	s.form = nil
	s.mu.Unlock()
}
