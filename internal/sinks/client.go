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
	"encoding/json"

	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tfresty"
	"github.com/go-resty/resty/v2"
)

type restClient struct {
	service string
	client  *resty.Client
}

func newRESTClient(ctx context.Context, service string, conf *tfconf.HTTPClientConfig) (*restClient, error) {
	client, err := tfresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &restClient{service: service, client: client}, nil
}

type request struct {
	method string
	path   string
	query  map[string]string
	body   interface{}
	result interface{}
	// okStatus lists non-2xx statuses that are not errors
	okStatus []int
}

func (rc *restClient) do(ctx context.Context, r *request) (int, error) {
	req := rc.client.R().SetContext(ctx)
	if r.query != nil {
		req = req.SetQueryParams(r.query)
	}
	if r.body != nil {
		req = req.SetBody(r.body)
	}
	if r.result != nil {
		req = req.SetResult(r.result)
	}
	log.L(ctx).Debugf("%s --> %s %s", rc.service, r.method, r.path)
	res, err := req.Execute(r.method, r.path)
	if err == nil && !res.IsSuccess() {
		for _, s := range r.okStatus {
			if res.StatusCode() == s {
				return s, nil
			}
		}
	}
	if err != nil || !res.IsSuccess() {
		err = tfresty.WrapRestErr(ctx, tfresty.TargetOf(r.method, r.path), res, err)
		log.L(ctx).Errorf("%s <-- %s %s failed: %s", rc.service, r.method, r.path, err)
		return -1, err
	}
	log.L(ctx).Debugf("%s <-- %s %s [%d]", rc.service, r.method, r.path, res.StatusCode())
	return res.StatusCode(), nil
}

// contextQuery encodes a task or document context as a query parameter
func contextQuery(c tfapi.TaskContext) string {
	b, _ := json.Marshal(c)
	return string(b)
}
