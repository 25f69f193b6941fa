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

package components

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
)

type TaskManager interface {
	CreateTask(ctx context.Context, task *tfapi.NewTask) (*tfapi.Task, error)
	// FindTasks returns the tasks of the type matching the context, in any status
	FindTasks(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext) ([]*tfapi.Task, error)
	UpdateTaskStatus(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext, status tfapi.TaskStatus) error
	// ResolveTask completes the open tasks of the type matching the context
	ResolveTask(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext, outcome bool) error
	CreateNotification(ctx context.Context, notification *tfapi.Notification) error
}

type DocumentManager interface {
	ShareDocument(ctx context.Context, req *tfapi.ShareDocumentRequest) error
	DeleteDocument(ctx context.Context, productID, documentID string) error
	// GetDocument returns nil, nil if no document of the type exists in the context
	GetDocument(ctx context.Context, productID, docType string, docContext tfapi.TaskContext) (*tfapi.Document, error)
}

type TimerManager interface {
	Arm(ctx context.Context, req *tfapi.TimerRequest) (string, error)
	Disarm(ctx context.Context, timerID string) error
}

// Bridge relays state changes of instruments that originated on another network
type Bridge interface {
	SourceSystem() string
	Notify(ctx context.Context, msg *tfapi.BridgeMessage) error
}
