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

package sinks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

type taskManager struct {
	rc *restClient
}

type taskStatusUpdate struct {
	Status  tfapi.TaskStatus `json:"status"`
	Outcome *bool            `json:"outcome,omitempty"`
}

func NewTaskManager(ctx context.Context, conf *tfconf.HTTPClientConfig) (components.TaskManager, error) {
	rc, err := newRESTClient(ctx, "tasks", conf)
	if err != nil {
		return nil, err
	}
	return &taskManager{rc: rc}, nil
}

func (tm *taskManager) CreateTask(ctx context.Context, task *tfapi.NewTask) (*tfapi.Task, error) {
	var created tfapi.Task
	if _, err := tm.rc.do(ctx, &request{
		method: http.MethodPost,
		path:   "/tasks",
		body:   task,
		result: &created,
	}); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Created task %s (id=%s)", task.Type, created.ID)
	return &created, nil
}

func (tm *taskManager) FindTasks(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext) ([]*tfapi.Task, error) {
	var tasks []*tfapi.Task
	if _, err := tm.rc.do(ctx, &request{
		method: http.MethodGet,
		path:   "/tasks",
		query: map[string]string{
			"taskType": string(taskType),
			"context":  contextQuery(taskContext),
		},
		result: &tasks,
	}); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (tm *taskManager) findOpen(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext) ([]*tfapi.Task, error) {
	tasks, err := tm.FindTasks(ctx, taskType, taskContext)
	if err != nil {
		return nil, err
	}
	open := make([]*tfapi.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == tfapi.TaskStatusToDo || t.Status == tfapi.TaskStatusPending {
			open = append(open, t)
		}
	}
	return open, nil
}

func (tm *taskManager) patch(ctx context.Context, taskID string, update *taskStatusUpdate) error {
	_, err := tm.rc.do(ctx, &request{
		method: http.MethodPatch,
		path:   "/tasks/" + url.PathEscape(taskID),
		body:   update,
	})
	return err
}

// UpdateTaskStatus moves the open tasks of the type matching the context to the status
func (tm *taskManager) UpdateTaskStatus(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext, status tfapi.TaskStatus) error {
	open, err := tm.findOpen(ctx, taskType, taskContext)
	if err != nil {
		return err
	}
	for _, t := range open {
		if t.Status == status {
			continue
		}
		if err := tm.patch(ctx, t.ID, &taskStatusUpdate{Status: status}); err != nil {
			return err
		}
	}
	return nil
}

func (tm *taskManager) ResolveTask(ctx context.Context, taskType tfapi.TaskType, taskContext tfapi.TaskContext, outcome bool) error {
	open, err := tm.findOpen(ctx, taskType, taskContext)
	if err != nil {
		return err
	}
	for _, t := range open {
		if err := tm.patch(ctx, t.ID, &taskStatusUpdate{Status: tfapi.TaskStatusDone, Outcome: &outcome}); err != nil {
			return err
		}
		log.L(ctx).Infof("Resolved task %s (id=%s outcome=%t)", taskType, t.ID, outcome)
	}
	return nil
}

func (tm *taskManager) CreateNotification(ctx context.Context, notification *tfapi.Notification) error {
	_, err := tm.rc.do(ctx, &request{
		method: http.MethodPost,
		path:   "/notifications",
		body:   notification,
	})
	return err
}
