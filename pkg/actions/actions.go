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

// Package actions holds the action creators: one helper per action kind that builds the
// typed action and dispatches it with the right source tag.
package actions

// Actions builds and dispatches every dashboard action.
type Actions struct {
	dispatcher Dispatcher
}

// New returns action creators dispatching through d.
func New(d Dispatcher) *Actions {
	return &Actions{dispatcher: d}
}
