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
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type timerManager struct {
	rc *restClient
}

type timerResponse struct {
	ID string `json:"id"`
}

func NewTimerManager(ctx context.Context, conf *tfconf.HTTPClientConfig) (components.TimerManager, error) {
	rc, err := newRESTClient(ctx, "timers", conf)
	if err != nil {
		return nil, err
	}
	return &timerManager{rc: rc}, nil
}

func (tm *timerManager) Arm(ctx context.Context, req *tfapi.TimerRequest) (string, error) {
	var res timerResponse
	if _, err := tm.rc.do(ctx, &request{
		method: http.MethodPost,
		path:   "/timers",
		body:   req,
		result: &res,
	}); err != nil {
		return "", err
	}
	if res.ID == "" {
		return "", i18n.NewError(ctx, msgs.MsgContentNotFound, "timer id", "/timers")
	}
	log.L(ctx).Infof("Armed timer %s due at %s", res.ID, req.DueAt)
	return res.ID, nil
}

// Disarm succeeds if the timer has already fired or been removed
func (tm *timerManager) Disarm(ctx context.Context, timerID string) error {
	_, err := tm.rc.do(ctx, &request{
		method:   http.MethodDelete,
		path:     "/timers/" + url.PathEscape(timerID),
		okStatus: []int{http.StatusNotFound},
	})
	return err
}
