package cfapi

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -destination=mock_cfapi.go -package=cfapi github.com/cloud-gov/cg-dashboard/pkg/cfapi HTTPClient,TokenProvider,RequestObserver

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider defines the interface for obtaining access tokens.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// RequestObserver is told about every completed API request. status is 0 when no
// response arrived.
type RequestObserver interface {
	ObserveAPIRequest(endpoint string, status int, elapsed time.Duration)
}

// tokenInvalidator is implemented by token providers that cache.
type tokenInvalidator interface {
	InvalidateToken()
}
