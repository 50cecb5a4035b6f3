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

	"github.com/cloud-gov/cg-dashboard/pkg/actions"
	"github.com/cloud-gov/cg-dashboard/pkg/dispatcher"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	api        *MockAPI
	dispatcher *dispatcher.Dispatcher
	stores     *Stores
	actions    *actions.Actions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := NewMockAPI(ctrl)
	d := dispatcher.New(logger.NewTestLogger())

	return &fixture{
		api:        api,
		dispatcher: d,
		stores:     New(d, api, logger.NewTestLogger()),
		actions:    actions.New(d),
	}
}

// countEmits counts change notifications from s.
func countEmits(s *store.Store) *int {
	n := 0
	s.AddChangeListener(func() { n++ })

	return &n
}

// wrapInRes wraps flat records in the metadata/entity envelope, guid in metadata.
func wrapInRes(recs ...models.Record) []models.Resource {
	out := make([]models.Resource, 0, len(recs))

	for _, r := range recs {
		entity := r.Clone()
		delete(entity, models.KeyGUID)

		out = append(out, models.Resource{
			Metadata: models.Record{models.KeyGUID: r.GUID()},
			Entity:   entity,
		})
	}

	return out
}
