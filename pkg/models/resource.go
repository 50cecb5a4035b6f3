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

import "encoding/json"

// Resource is the split metadata/entity envelope the v2 platform API wraps every
// entity in.
type Resource struct {
	Metadata Record `json:"metadata"`
	Entity   Record `json:"entity"`
}

// Page is one page of a paginated v2 list response.
type Page struct {
	TotalResults int        `json:"total_results"`
	TotalPages   int        `json:"total_pages"`
	PrevURL      string     `json:"prev_url,omitempty"`
	NextURL      string     `json:"next_url,omitempty"`
	Resources    []Resource `json:"resources"`
}

// Flatten folds metadata and entity into a single record. Metadata wins when both
// carry the same field so the guid always comes from metadata.
func (r Resource) Flatten() Record {
	out := make(Record, len(r.Entity)+len(r.Metadata))

	for k, v := range r.Entity {
		out[k] = cloneValue(v)
	}

	for k, v := range r.Metadata {
		out[k] = cloneValue(v)
	}

	return out
}

// FormatSplitResponse flattens a list of resources into records, preserving order.
func FormatSplitResponse(resources []Resource) []Record {
	out := make([]Record, 0, len(resources))
	for _, res := range resources {
		out = append(out, res.Flatten())
	}

	return out
}

// ParseExtra decodes the JSON document service plans and services carry as a string in
// their "extra" field. Values that are not valid JSON are left untouched.
func ParseExtra(rec Record) Record {
	raw, ok := rec["extra"].(string)
	if !ok || raw == "" {
		return rec
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return rec
	}

	out := rec.Clone()
	out["extra"] = decoded

	return out
}
