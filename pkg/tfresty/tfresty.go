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
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/sirupsen/logrus"
)

type retryCtxKey struct{}

type retryCtx struct {
	id       string
	start    time.Time
	attempts uint
}

func onAfterResponse(resp *resty.Response) {
	if resp == nil {
		return
	}
	rCtx := resp.Request.Context()
	level := logrus.DebugLevel
	status := resp.StatusCode()
	if status >= 300 {
		level = logrus.ErrorLevel
	}
	var elapsed int64
	if rc, ok := rCtx.Value(retryCtxKey{}).(*retryCtx); ok {
		elapsed = time.Since(rc.start).Milliseconds()
	}
	log.L(rCtx).Logf(level, "<== %s %s [%d] (%dms)", resp.Request.Method, resp.Request.URL, status, elapsed)
}

// New builds a resty client from config, with request/response logging,
// basic auth, static headers and optional status code driven retry
func New(ctx context.Context, conf *tfconf.HTTPClientConfig) (*resty.Client, error) {
	defs := tfconf.DefaultHTTPConfig
	u, err := url.Parse(conf.URL)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgConnectionFailed, conf.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, i18n.NewError(ctx, msgs.MsgConnectionFailed, conf.URL)
	}

	connectionTimeout := confutil.DurationMin(conf.ConnectionTimeout, 0, *defs.ConnectionTimeout)
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connectionTimeout,
				KeepAlive: connectionTimeout,
			}).DialContext,
			ForceAttemptHTTP2: true,
		},
	})

	baseURL := strings.TrimSuffix(conf.URL, "/")
	client.SetBaseURL(baseURL)
	client.SetTimeout(confutil.DurationMin(conf.RequestTimeout, 0, *defs.RequestTimeout))
	log.L(ctx).Debugf("Created REST client to %s", baseURL)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rCtx := req.Context()
		if rCtx.Value(retryCtxKey{}) == nil {
			r := &retryCtx{id: tftypes.ShortID(), start: time.Now()}
			rCtx = context.WithValue(rCtx, retryCtxKey{}, r)
			rCtx = log.WithLogField(rCtx, "breq", r.id)
			req.SetContext(rCtx)
		}
		log.L(rCtx).Debugf("==> %s %s%s", req.Method, baseURL, req.URL)
		log.L(rCtx).Tracef("==> (body) %+v", req.Body)
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
		onAfterResponse(r)
		return nil
	})

	for k, v := range conf.HTTPHeaders {
		if vs, ok := v.(string); ok {
			client.SetHeader(k, vs)
		}
	}
	if conf.Auth.Username != "" && conf.Auth.Password != "" {
		client.SetBasicAuth(conf.Auth.Username, conf.Auth.Password)
	}

	if conf.Retry.Enabled {
		var retryStatusCodeRegex *regexp.Regexp
		if conf.Retry.ErrorStatusCodes != "" {
			retryStatusCodeRegex = regexp.MustCompile(conf.Retry.ErrorStatusCodes)
		}
		retryCount := confutil.IntMin(conf.Retry.Count, 0, *defs.Retry.Count)
		minTimeout := confutil.DurationMin(conf.Retry.InitialDelay, 0, *defs.Retry.InitialDelay)
		maxTimeout := confutil.DurationMin(conf.Retry.MaximumDelay, 0, *defs.Retry.MaximumDelay)
		client.
			SetRetryCount(retryCount).
			SetRetryWaitTime(minTimeout).
			SetRetryMaxWaitTime(maxTimeout).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.IsSuccess() {
					return false
				}
				if r.StatusCode() > 0 && retryStatusCodeRegex != nil && !retryStatusCodeRegex.MatchString(r.Status()) {
					return false
				}
				rCtx := r.Request.Context()
				if rc, ok := rCtx.Value(retryCtxKey{}).(*retryCtx); ok {
					rc.attempts++
					log.L(rCtx).Infof("retry %d/%d (min=%dms/max=%dms) status=%d", rc.attempts, retryCount, minTimeout.Milliseconds(), maxTimeout.Milliseconds(), r.StatusCode())
				}
				return true
			})
	}

	return client, nil
}

// WrapRestErr turns a transport error or a non-2xx reply into a ConnectionFailed error
func WrapRestErr(ctx context.Context, target string, res *resty.Response, err error) error {
	if err != nil {
		return i18n.WrapError(ctx, err, msgs.MsgConnectionFailed, target)
	}
	var respData string
	if res.RawBody() != nil {
		defer func() { _ = res.RawBody().Close() }()
		if r, err := io.ReadAll(res.RawBody()); err == nil {
			respData = string(r)
		}
	}
	if respData == "" {
		respData = res.String()
	}
	if len(respData) > 256 {
		respData = respData[0:256] + "..."
	}
	return i18n.NewError(ctx, msgs.MsgConnectionFailedStatus, target, res.StatusCode(), respData)
}

// TargetOf is the method and path of a request, for error messages
func TargetOf(method, path string) string {
	return fmt.Sprintf("%s %s", method, path)
}
