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

package tfresty

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithAuthHeadersAndRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "pass", pass)
		assert.Equal(t, "value1", r.Header.Get("X-Custom"))
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := New(context.Background(), &tfconf.HTTPClientConfig{
		URL:         server.URL + "/",
		HTTPHeaders: map[string]interface{}{"X-Custom": "value1"},
		Auth:        tfconf.HTTPBasicAuthConfig{Username: "user", Password: "pass"},
		Retry: tfconf.HTTPRetryConfig{
			Enabled:          true,
			Count:            confutil.P(2),
			InitialDelay:     confutil.P("1ms"),
			MaximumDelay:     confutil.P("5ms"),
			ErrorStatusCodes: ".*",
		},
	})
	require.NoError(t, err)

	var result map[string]bool
	res, err := client.R().SetContext(context.Background()).SetResult(&result).Get("/test")
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.True(t, result["ok"])
	assert.Equal(t, 2, calls)
}

func TestBadURL(t *testing.T) {
	_, err := New(context.Background(), &tfconf.HTTPClientConfig{URL: "ftp://nope"})
	assert.Regexp(t, "TF010300", err)
}

func TestWrapRestErr(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`pop`))
	}))
	defer server.Close()

	client, err := New(context.Background(), &tfconf.HTTPClientConfig{URL: server.URL})
	require.NoError(t, err)
	res, err := client.R().Post("/sign")
	require.NoError(t, err)
	err = WrapRestErr(context.Background(), TargetOf(http.MethodPost, "/sign"), res, nil)
	assert.Regexp(t, "TF010301.*POST /sign.*500.*pop", err)

	err = WrapRestErr(context.Background(), "target", nil, fmt.Errorf("refused"))
	assert.Regexp(t, "TF010300.*refused", err)
}
