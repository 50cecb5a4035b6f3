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

// Package models holds the record and envelope types shared by the dashboard stores,
// the API client and the views.
package models

import (
	"fmt"
	"reflect"
)

const (
	// KeyGUID is the default identity field of every platform entity.
	KeyGUID = "guid"
)

// Record is a single entity as the platform API describes it: a flat mapping of field
// name to value. Most records carry a "guid".
type Record map[string]interface{}

// GUID returns the record's guid as a string, or "" when it has none.
func (r Record) GUID() string {
	return r.String(KeyGUID)
}

// String returns the named field when it holds a string.
func (r Record) String(field string) string {
	if r == nil {
		return ""
	}

	if s, ok := r[field].(string); ok {
		return s
	}

	return ""
}

// Has reports whether the field is present, even when its value is nil.
func (r Record) Has(field string) bool {
	if r == nil {
		return false
	}

	_, ok := r[field]

	return ok
}

// Clone returns a deep copy of the record. Nested maps and slices are copied so
// callers holding the clone cannot reach the original's storage.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]interface{}:
		return map[string]interface{}(Record(val).Clone())
	case []Record:
		out := make([]Record, len(val))
		for i := range val {
			out[i] = val[i].Clone()
		}

		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}

		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}

// Merge combines an existing record with a partial incoming record. Fields present in
// incoming take precedence; fields only present in existing are kept. Nested values are
// replaced wholesale, never merged recursively.
//
// The returned bool is true when at least one incoming field differs from the value the
// existing record held for it. Neither argument is modified.
func Merge(existing, incoming Record) (Record, bool) {
	merged := existing.Clone()
	if merged == nil {
		merged = make(Record, len(incoming))
	}

	changed := false

	for k, v := range incoming {
		old, ok := merged[k]
		if !ok || !reflect.DeepEqual(old, v) {
			changed = true
		}

		merged[k] = cloneValue(v)
	}

	return merged, changed
}

// Matches reports whether the record's field equals value. Numbers decoded from JSON
// and strings are compared by value.
func (r Record) Matches(field string, value interface{}) bool {
	if r == nil {
		return false
	}

	v, ok := r[field]
	if !ok {
		return false
	}

	return reflect.DeepEqual(v, value)
}

// AsRecord converts a decoded JSON object into a Record.
func AsRecord(v interface{}) (Record, bool) {
	switch val := v.(type) {
	case Record:
		return val, true
	case map[string]interface{}:
		return Record(val), true
	default:
		return nil, false
	}
}

// AsRecords converts a decoded JSON array of objects into records. Elements that are
// not objects are skipped.
func AsRecords(v interface{}) []Record {
	switch val := v.(type) {
	case []Record:
		return val
	case []map[string]interface{}:
		out := make([]Record, 0, len(val))
		for _, m := range val {
			out = append(out, Record(m))
		}

		return out
	case []interface{}:
		out := make([]Record, 0, len(val))
		for _, item := range val {
			if rec, ok := AsRecord(item); ok {
				out = append(out, rec)
			}
		}

		return out
	default:
		return nil
	}
}

// KeyString renders a key value for logging and metrics labels.
func KeyString(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
