package stores

import "github.com/cloud-gov/cg-dashboard/pkg/dispatcher"

//go:generate mockgen -destination=mock_stores.go -package=stores github.com/cloud-gov/cg-dashboard/pkg/stores API

// API is the platform client as the stores see it. Every call returns immediately;
// results arrive later as dispatched server actions.
type API interface {
	FetchApp(appGUID string)
	FetchAppStats(appGUID string)
	FetchAppAll(appGUID string)
	FetchRoutesForApp(appGUID string)
	FetchDomain(domainGUID string)
	FetchAllServices(orgGUID string)
	FetchAllServicePlans(serviceGUID string)
	FetchServicePlan(servicePlanGUID string)
	FetchServiceInstances(spaceGUID string)
	CreateServiceInstance(name, spaceGUID, servicePlanGUID string)
	DeleteServiceInstance(serviceInstanceGUID string)
	FetchServiceBindings(appGUID string)
}

// Registrar is where a store registers its action handler.
type Registrar interface {
	Register(h dispatcher.Handler) dispatcher.Token
}
