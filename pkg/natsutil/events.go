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

// Package natsutil journals dispatched actions to NATS JetStream as CloudEvents.
package natsutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/action"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/models"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
)

const eventTypePrefix = "gov.cloud.dashboard.action."

// AsyncPublisher is the part of jetstream.JetStream the journal needs.
type AsyncPublisher interface {
	PublishAsync(subject string, payload []byte, opts ...jetstream.PublishOpt) (jetstream.PubAckFuture, error)
}

// ActionJournal is a dispatcher observer that mirrors every action to JetStream. Publish
// failures are logged and never reach the dispatcher.
type ActionJournal struct {
	js            AsyncPublisher
	subjectPrefix string
	logger        logger.Logger
	now           func() time.Time
}

// NewActionJournal creates a journal publishing under subjectPrefix.
func NewActionJournal(js AsyncPublisher, subjectPrefix string, log logger.Logger) *ActionJournal {
	return &ActionJournal{
		js:            js,
		subjectPrefix: strings.TrimSuffix(subjectPrefix, "."),
		logger:        logger.OrNop(log),
		now:           time.Now,
	}
}

// Subject returns the subject a payload is published on: <prefix>.<source>.<type>.
func (j *ActionJournal) Subject(p action.Payload) string {
	return fmt.Sprintf("%s.%s.%s", j.subjectPrefix, p.Source, strings.ToLower(string(p.Action.Type())))
}

// Event wraps a payload in a CloudEvent.
func (j *ActionJournal) Event(p action.Payload) models.CloudEvent {
	ts := j.now().UTC()
	typ := string(p.Action.Type())

	return models.CloudEvent{
		SpecVersion:     models.CloudEventSpecVersion,
		ID:              uuid.New().String(),
		Source:          models.CloudEventSource,
		Type:            eventTypePrefix + strings.ToLower(typ),
		DataContentType: "application/json",
		Subject:         j.Subject(p),
		Time:            &ts,
		Data: models.ActionEventData{
			Source: string(p.Source),
			Type:   typ,
			Action: p.Action,
		},
	}
}

// ObserveAction publishes p without waiting for the acknowledgement.
func (j *ActionJournal) ObserveAction(p action.Payload) {
	if p.Action == nil {
		return
	}

	event := j.Event(p)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		j.logger.Warn().Err(err).Str("type", string(p.Action.Type())).Msg("Failed to marshal action event")
		return
	}

	if _, err := j.js.PublishAsync(event.Subject, eventBytes); err != nil {
		j.logger.Warn().Err(err).Str("subject", event.Subject).Msg("Failed to publish action event")
		return
	}

	j.logger.Trace().Str("id", event.ID).Str("subject", event.Subject).Msg("Published action event")
}
