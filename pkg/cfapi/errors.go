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
	"errors"
	"fmt"
)

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
	errAuthFailed           = errors.New("authentication failed")
	errPaginationLoop       = errors.New("pagination revisited a page")
	errMissingURL           = errors.New("api url is required")
	errMissingCredentials   = errors.New("client_id and client_secret are required with token_url")
	errInvalidPageSize      = errors.New("page_size must be between 1 and 100")
)

// StatusError is a non-2xx answer from the platform API. Description and ErrorCode come
// from the platform's error document when it sent one.
type StatusError struct {
	StatusCode  int
	Description string
	ErrorCode   string
}

func (e *StatusError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%v: %d (%s: %s)", errUnexpectedStatusCode, e.StatusCode, e.ErrorCode, e.Description)
	}

	return fmt.Sprintf("%v: %d", errUnexpectedStatusCode, e.StatusCode)
}

func (*StatusError) Unwrap() error {
	return errUnexpectedStatusCode
}
