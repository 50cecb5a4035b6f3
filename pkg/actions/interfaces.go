package actions

import "github.com/cloud-gov/cg-dashboard/pkg/action"

//go:generate mockgen -destination=mock_dispatcher.go -package=actions github.com/cloud-gov/cg-dashboard/pkg/actions Dispatcher

// Dispatcher is the part of the dispatcher the action creators need.
type Dispatcher interface {
	HandleViewAction(a action.Action)
	HandleServerAction(a action.Action)
	HandleUIAction(a action.Action)
}
