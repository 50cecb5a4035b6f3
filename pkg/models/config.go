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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	errInvalidDuration = errors.New("invalid duration")
	errMissingNATSURL  = errors.New("nats url is required")
	errIncompleteTLS   = errors.New("tls requires ca_file, cert_file and key_file")
)

// Duration is a time.Duration that reads either a Go duration string ("30s") or a
// number of nanoseconds from JSON.
type Duration time.Duration

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// TLSConfig names the PEM files of a mutual TLS client.
type TLSConfig struct {
	CAFile     string `json:"ca_file"`
	CertFile   string `json:"cert_file"`
	KeyFile    string `json:"key_file"`
	ServerName string `json:"server_name,omitempty"`
}

// NATSConfig configures the optional action journal.
type NATSConfig struct {
	Enabled       bool       `json:"enabled"`
	URL           string     `json:"url"`
	Stream        string     `json:"stream"`
	SubjectPrefix string     `json:"subject_prefix"`
	Domain        string     `json:"domain,omitempty"`
	TLS           *TLSConfig `json:"tls,omitempty"`
}

// Validate fills defaults and rejects an enabled journal with no server.
func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.URL == "" {
		return errMissingNATSURL
	}

	if c.TLS != nil && (c.TLS.CAFile == "" || c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return errIncompleteTLS
	}

	if c.Stream == "" {
		c.Stream = "dashboard"
	}

	if c.SubjectPrefix == "" {
		c.SubjectPrefix = "dashboard.actions"
	}

	return nil
}

// CORSConfig lists the origins allowed to call the web API from a browser.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}
