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

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/cfapi"
	"github.com/cloud-gov/cg-dashboard/pkg/config"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
)

const (
	defaultListenAddr      = ":8080"
	defaultRefreshInterval = time.Minute
)

var errInvalidRefreshInterval = errors.New("refresh_interval must not be negative")

// Config is the dashboard server's configuration file.
type Config struct {
	ListenAddr      string            `json:"listen_addr"`
	API             cfapi.Config      `json:"api"`
	NATS            models.NATSConfig `json:"nats"`
	CORS            models.CORSConfig `json:"cors"`
	APIKey          string            `json:"api_key,omitempty" sensitive:"true"`
	Logging         *logger.Config    `json:"logging,omitempty"`
	RefreshInterval models.Duration   `json:"refresh_interval"`
	AppGUIDs        []string          `json:"app_guids"`
	OrgGUID         string            `json:"org_guid,omitempty"`
	SpaceGUID       string            `json:"space_guid,omitempty"`
}

// Validate fills defaults and validates every section.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.RefreshInterval < 0 {
		return errInvalidRefreshInterval
	}

	if c.RefreshInterval == 0 {
		c.RefreshInterval = models.Duration(defaultRefreshInterval)
	}

	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.NATS.Validate(); err != nil {
		return fmt.Errorf("nats: %w", err)
	}

	return nil
}

// LoadConfig reads and validates the configuration at path.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	var cfg Config

	if err := config.NewConfig(nil).LoadAndValidate(ctx, path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
