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
	"strings"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/models"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 50
	maxPageSize     = 100
	defaultTokenTTL = 10 * time.Minute
)

// Config points the client at a platform API.
type Config struct {
	URL          string          `json:"url"`
	TokenURL     string          `json:"token_url,omitempty"`
	ClientID     string          `json:"client_id,omitempty"`
	ClientSecret string          `json:"client_secret,omitempty" sensitive:"true"`
	Token        string          `json:"token,omitempty" sensitive:"true"`
	TokenTTL     models.Duration `json:"token_ttl,omitempty"`
	Timeout      models.Duration `json:"timeout,omitempty"`
	PageSize     int             `json:"page_size,omitempty"`
}

// Validate fills defaults and checks the required fields.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errMissingURL
	}

	c.URL = strings.TrimRight(c.URL, "/")

	if c.TokenURL != "" && (c.ClientID == "" || c.ClientSecret == "") {
		return errMissingCredentials
	}

	if c.PageSize == 0 {
		c.PageSize = defaultPageSize
	}

	if c.PageSize < 1 || c.PageSize > maxPageSize {
		return errInvalidPageSize
	}

	if c.Timeout <= 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.TokenTTL <= 0 {
		c.TokenTTL = models.Duration(defaultTokenTTL)
	}

	return nil
}
