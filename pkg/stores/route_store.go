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
	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/cloud-gov/cg-dashboard/pkg/store"
)

const (
	keyAppGUID    = "app_guid"
	keyDomainGUID = "domain_guid"
	keyDomain     = "domain"
)

// RouteStore holds every known route. Routes arrive from two sources: the app routes
// listing, whose domain names are resolved by follow-up domain fetches, and the routes
// nested in a full app payload, which already carry their domain.
type RouteStore struct {
	*store.Store

	api    API
	logger logger.Logger
}

// NewRouteStore creates the route store and registers it with d.
func NewRouteStore(d Registrar, api API, log logger.Logger) *RouteStore {
	log = logger.OrNop(log)

	s := &RouteStore{
		Store:  store.New("routes", log),
		api:    api,
		logger: log,
	}

	d.Register(s.handle)

	return s
}

func (s *RouteStore) handle(p action.Payload) {
	switch a := p.Action.(type) {
	case action.RoutesForAppFetch:
		s.SetFetching(true)
		s.api.FetchRoutesForApp(a.AppGUID)
	case action.RoutesForAppReceived:
		s.routesReceived(a)
	case action.DomainFetch:
		s.api.FetchDomain(a.DomainGUID)
	case action.DomainReceived:
		s.domainReceived(a)
	case action.AppReceived:
		s.appReceived(a)
	default:
	}
}

func (s *RouteStore) routesReceived(a action.RoutesForAppReceived) {
	routes := models.FormatSplitResponse(a.Routes)
	for _, route := range routes {
		route[keyAppGUID] = a.AppGUID
	}

	s.Settle()

	s.MergeMany(models.KeyGUID, routes, func(changed bool) {
		if changed {
			s.EmitChange()
		}

		domains := distinct(routes, keyDomainGUID)

		s.logger.Debug().
			Str("app_guid", a.AppGUID).
			Int("routes", len(routes)).
			Int("domains", len(domains)).
			Msg("Routes received, resolving domains")

		for _, domainGUID := range domains {
			s.api.FetchDomain(domainGUID)
		}
	})
}

func (s *RouteStore) domainReceived(a action.DomainReceived) {
	formatted := a.Domain.Flatten()

	domainGUID := formatted.GUID()
	if domainGUID == "" {
		s.logger.Warn().Msg("Ignoring domain without a guid")
		return
	}

	domain := models.Record{
		keyDomain:     formatted["name"],
		keyDomainGUID: domainGUID,
	}

	s.MergeAll(keyDomainGUID, domain, func(changed bool) {
		if changed {
			s.EmitChange()
		}
	})
}

func (s *RouteStore) appReceived(a action.AppReceived) {
	nested, ok := a.App["routes"]
	if !ok || nested == nil {
		return
	}

	appGUID := a.App.GUID()
	routes := make([]models.Record, 0)

	for _, route := range models.AsRecords(nested) {
		domain, ok := models.AsRecord(route[keyDomain])
		if !ok {
			s.logger.Debug().
				Str("app_guid", appGUID).
				Str("route_guid", route.GUID()).
				Msg("Skipping nested route without a domain")

			continue
		}

		domainGUID := domain.String(models.KeyGUID)
		if domainGUID == "" {
			s.logger.Debug().
				Str("app_guid", appGUID).
				Str("route_guid", route.GUID()).
				Msg("Skipping nested route whose domain has no guid")

			continue
		}

		r := models.Record{
			keyAppGUID:    appGUID,
			keyDomainGUID: domainGUID,
			keyDomain:     domain["name"],
		}

		for _, field := range []string{models.KeyGUID, "host", "path"} {
			if v, ok := route[field]; ok {
				r[field] = v
			}
		}

		routes = append(routes, r)
	}

	s.MergeMany(keyDomainGUID, routes, func(changed bool) {
		if changed {
			s.EmitChange()
		}
	})
}

// GetAllForApp returns the routes bound to appGUID, in collection order.
func (s *RouteStore) GetAllForApp(appGUID string) []models.Record {
	return s.Filter(func(r models.Record) bool {
		return r.String(keyAppGUID) == appGUID
	})
}

// distinct returns the non-empty string values of field, first occurrence order.
func distinct(recs []models.Record, field string) []string {
	seen := make(map[string]struct{}, len(recs))
	out := make([]string, 0, len(recs))

	for _, r := range recs {
		v := r.String(field)
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
