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

package cfapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"golang.org/x/sync/errgroup"
)

// fetchAllPages follows next_url until the last page and returns every resource in
// page order.
func (c *Client) fetchAllPages(ctx context.Context, endpoint, path string) ([]models.Resource, error) {
	q := url.Values{}
	q.Set("results-per-page", strconv.Itoa(c.config.PageSize))

	next := path + "?" + q.Encode()
	seen := make(map[string]struct{})

	var resources []models.Resource

	for next != "" {
		if _, ok := seen[next]; ok {
			return nil, fmt.Errorf("%w: %s", errPaginationLoop, next)
		}

		seen[next] = struct{}{}

		var page models.Page
		if err := c.do(ctx, endpoint, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}

		resources = append(resources, page.Resources...)
		next = page.NextURL
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	return resources, nil
}

func (c *Client) fetchSummary(ctx context.Context, appGUID string) (models.Record, error) {
	var app models.Record

	err := c.do(ctx, "app_summary", http.MethodGet, "/v2/apps/"+url.PathEscape(appGUID)+"/summary", nil, &app)

	return app, err
}

// fetchStats returns the per-instance stats as {"app_instances": [...]}, ordered by
// instance index.
func (c *Client) fetchStats(ctx context.Context, appGUID string) (models.Record, error) {
	var byIndex map[string]interface{}

	if err := c.do(ctx, "app_stats", http.MethodGet, "/v2/apps/"+url.PathEscape(appGUID)+"/stats", nil, &byIndex); err != nil {
		return nil, err
	}

	indexes := make([]string, 0, len(byIndex))
	for k := range byIndex {
		indexes = append(indexes, k)
	}

	sort.Slice(indexes, func(i, j int) bool {
		a, errA := strconv.Atoi(indexes[i])
		b, errB := strconv.Atoi(indexes[j])

		if errA != nil || errB != nil {
			return indexes[i] < indexes[j]
		}

		return a < b
	})

	instances := make([]interface{}, 0, len(indexes))
	for _, k := range indexes {
		instances = append(instances, byIndex[k])
	}

	return models.Record{"app_instances": instances}, nil
}

// FetchApp loads the app summary, routes and domains included, and dispatches AppReceived.
func (c *Client) FetchApp(appGUID string) {
	c.spawn("fetch_app", appGUID, func(ctx context.Context) error {
		app, err := c.fetchSummary(ctx, appGUID)
		if err != nil {
			return err
		}

		c.actions.ReceivedApp(app)

		return nil
	})
}

// FetchAppStats loads per-instance stats and dispatches AppStatsReceived.
func (c *Client) FetchAppStats(appGUID string) {
	c.spawn("fetch_app_stats", appGUID, func(ctx context.Context) error {
		stats, err := c.fetchStats(ctx, appGUID)
		if err != nil {
			return err
		}

		c.actions.ReceivedAppStats(appGUID, stats)

		return nil
	})
}

// FetchAppAll loads the summary and the stats concurrently. Nothing is dispatched
// unless both succeed.
func (c *Client) FetchAppAll(appGUID string) {
	c.spawn("fetch_app_all", appGUID, func(ctx context.Context) error {
		var app, stats models.Record

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			app, err = c.fetchSummary(gctx, appGUID)

			return err
		})

		g.Go(func() error {
			var err error
			stats, err = c.fetchStats(gctx, appGUID)

			return err
		})

		if err := g.Wait(); err != nil {
			return err
		}

		c.actions.ReceivedApp(app)
		c.actions.ReceivedAppStats(appGUID, stats)
		c.actions.ReceivedAppAll(appGUID)

		return nil
	})
}

// FetchRoutesForApp loads every page of the app's routes and dispatches RoutesForAppReceived.
func (c *Client) FetchRoutesForApp(appGUID string) {
	c.spawn("fetch_routes_for_app", appGUID, func(ctx context.Context) error {
		routes, err := c.fetchAllPages(ctx, "app_routes", "/v2/apps/"+url.PathEscape(appGUID)+"/routes")
		if err != nil {
			return err
		}

		c.actions.ReceivedRoutesForApp(routes, appGUID)

		return nil
	})
}

// FetchDomain loads one domain and dispatches DomainReceived.
func (c *Client) FetchDomain(domainGUID string) {
	c.spawn("fetch_domain", domainGUID, func(ctx context.Context) error {
		var domain models.Resource
		if err := c.do(ctx, "domain", http.MethodGet, "/v2/domains/"+url.PathEscape(domainGUID), nil, &domain); err != nil {
			return err
		}

		c.actions.ReceivedDomain(domain)

		return nil
	})
}

// FetchAllServices loads the services visible to an org and dispatches ServicesReceived.
func (c *Client) FetchAllServices(orgGUID string) {
	c.spawn("fetch_all_services", orgGUID, func(ctx context.Context) error {
		services, err := c.fetchAllPages(ctx, "org_services", "/v2/organizations/"+url.PathEscape(orgGUID)+"/services")
		if err != nil {
			return err
		}

		c.actions.ReceivedServices(services)

		return nil
	})
}

// FetchAllServicePlans loads the plans of one service and dispatches ServicePlansReceived.
func (c *Client) FetchAllServicePlans(serviceGUID string) {
	c.spawn("fetch_all_service_plans", serviceGUID, func(ctx context.Context) error {
		plans, err := c.fetchAllPages(ctx, "service_plans", "/v2/services/"+url.PathEscape(serviceGUID)+"/service_plans")
		if err != nil {
			return err
		}

		c.actions.ReceivedPlans(plans)

		return nil
	})
}

// FetchServicePlan loads one plan and dispatches ServicePlanReceived.
func (c *Client) FetchServicePlan(servicePlanGUID string) {
	c.spawn("fetch_service_plan", servicePlanGUID, func(ctx context.Context) error {
		var plan models.Resource
		if err := c.do(ctx, "service_plan", http.MethodGet, "/v2/service_plans/"+url.PathEscape(servicePlanGUID), nil, &plan); err != nil {
			return err
		}

		c.actions.ReceivedPlan(plan)

		return nil
	})
}

// FetchServiceInstances loads a space's instances and dispatches ServiceInstancesReceived.
func (c *Client) FetchServiceInstances(spaceGUID string) {
	c.spawn("fetch_service_instances", spaceGUID, func(ctx context.Context) error {
		instances, err := c.fetchAllPages(ctx, "space_service_instances",
			"/v2/spaces/"+url.PathEscape(spaceGUID)+"/service_instances")
		if err != nil {
			return err
		}

		c.actions.ReceivedInstances(instances)

		return nil
	})
}

type createInstanceRequest struct {
	Name            string `json:"name"`
	SpaceGUID       string `json:"space_guid"`
	ServicePlanGUID string `json:"service_plan_guid"`
}

// CreateServiceInstance is the one call whose failure is dispatched, as a
// ServiceInstanceError.
func (c *Client) CreateServiceInstance(name, spaceGUID, servicePlanGUID string) {
	c.spawn("create_service_instance", servicePlanGUID, func(ctx context.Context) error {
		body := createInstanceRequest{Name: name, SpaceGUID: spaceGUID, ServicePlanGUID: servicePlanGUID}

		var instance models.Resource

		err := c.do(ctx, "create_service_instance", http.MethodPost,
			"/v2/service_instances?accepts_incomplete=true", body, &instance)
		if err != nil {
			status, message := describe(err)
			c.actions.ErrorCreateInstance(status, message, err)

			return err
		}

		c.actions.CreatedInstance(instance)

		return nil
	})
}

// DeleteServiceInstance deletes an instance and dispatches ServiceInstanceDeleted.
func (c *Client) DeleteServiceInstance(serviceInstanceGUID string) {
	c.spawn("delete_service_instance", serviceInstanceGUID, func(ctx context.Context) error {
		err := c.do(ctx, "delete_service_instance", http.MethodDelete,
			"/v2/service_instances/"+url.PathEscape(serviceInstanceGUID)+"?accepts_incomplete=true", nil, nil)
		if err != nil {
			return err
		}

		c.actions.DeletedInstance(serviceInstanceGUID)

		return nil
	})
}

// FetchServiceBindings loads an app's bindings and dispatches ServiceBindingsReceived.
func (c *Client) FetchServiceBindings(appGUID string) {
	c.spawn("fetch_service_bindings", appGUID, func(ctx context.Context) error {
		bindings, err := c.fetchAllPages(ctx, "app_service_bindings",
			"/v2/apps/"+url.PathEscape(appGUID)+"/service_bindings")
		if err != nil {
			return err
		}

		c.actions.ReceivedServiceBindings(bindings)

		return nil
	})
}
