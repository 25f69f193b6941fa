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

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

type bridge struct {
	rc           *restClient
	sourceSystem string
}

// NewBridge returns nil when the bridge is disabled
func NewBridge(ctx context.Context, conf *tfconf.BridgeConfig) (components.Bridge, error) {
	if !conf.Enabled {
		return nil, nil
	}
	rc, err := newRESTClient(ctx, "bridge", &conf.HTTPClientConfig)
	if err != nil {
		return nil, err
	}
	return &bridge{rc: rc, sourceSystem: conf.SourceSystem}, nil
}

func (b *bridge) SourceSystem() string {
	return b.sourceSystem
}

func (b *bridge) Notify(ctx context.Context, msg *tfapi.BridgeMessage) error {
	_, err := b.rc.do(ctx, &request{
		method: http.MethodPost,
		path:   "/messages",
		body:   msg,
	})
	return err
}
