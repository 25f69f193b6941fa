/*
 * Copyright © 2026 Kaleido, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package tfapi

import "github.com/alexmedkex/forkly-sub001/pkg/tftypes"

type TaskStatus string

const (
	TaskStatusToDo    TaskStatus = "ToDo"
	TaskStatusPending TaskStatus = "Pending"
	TaskStatusDone    TaskStatus = "Done"
)

type TaskType string

const (
	TaskReviewRequestedLC   TaskType = "LC.ReviewRequested"
	TaskReviewIssuedLC      TaskType = "LC.ReviewIssued"
	TaskReviewRequestedSBLC TaskType = "SBLC.ReviewRequested"
	TaskReviewAmendment     TaskType = "LC.ReviewAmendment"
)

// TaskContext identifies the subject of a task, and is how tasks are found again
type TaskContext map[string]string

type NewTask struct {
	Type    TaskType    `json:"taskType"`
	Context TaskContext `json:"context"`
	Role    PartyRole   `json:"counterpartyRole,omitempty"`
	Summary string      `json:"summary"`
}

type Task struct {
	ID      string      `json:"id"`
	Type    TaskType    `json:"taskType"`
	Status  TaskStatus  `json:"status"`
	Context TaskContext `json:"context"`
	Summary string      `json:"summary,omitempty"`
}

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
)

type Notification struct {
	ProductID string            `json:"productId"`
	Type      string            `json:"type"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Context   TaskContext       `json:"context"`
}

type Document struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	Type      string      `json:"type"`
	Name      string      `json:"name,omitempty"`
	Context   TaskContext `json:"context"`
}

type ShareDocumentRequest struct {
	ProductID  string      `json:"productId"`
	DocumentID string      `json:"documentId"`
	Companies  []string    `json:"companies"`
	Context    TaskContext `json:"context"`
}

type TimerNotification struct {
	// offset before the timer fires at which the notification is raised
	Before  string `json:"before"`
	Message string `json:"message"`
}

type TimerRequest struct {
	DueAt         tftypes.Timestamp    `json:"dueAt"`
	Notifications []*TimerNotification `json:"notifications"`
	Context       TaskContext          `json:"context"`
}

type BridgeMessage struct {
	SourceSystem string            `json:"sourceSystem"`
	Reference    string            `json:"reference"`
	InstrumentID string            `json:"instrumentId"`
	Type         InstrumentType    `json:"type"`
	State        InstrumentState   `json:"state"`
	Performer    string            `json:"performer"`
	Timestamp    tftypes.Timestamp `json:"timestamp"`
}

// TransitionEvent is derived from a ledger log and the instrument it transitions
type TransitionEvent struct {
	State       InstrumentState `json:"state"`
	BlockNumber uint64          `json:"blockNumber"`
	PerformerID string          `json:"performerId"`
	Nonce       *uint64         `json:"nonce,omitempty"`
}
