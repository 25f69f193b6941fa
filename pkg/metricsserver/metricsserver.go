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

package metricsserver

import (
	"context"
	"net"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/httpserver"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsServer interface {
	Start() error
	Stop()
	// Addr is nil when the server is disabled
	Addr() net.Addr
}

func NewMetricsServer(ctx context.Context, registry *prometheus.Registry, conf *tfconf.MetricsServerConfig) (MetricsServer, error) {
	s := &metricsServer{}
	if !confutil.Bool(conf.Enabled, *tfconf.MetricsServerDefaults.Enabled) {
		return s, nil
	}
	serverConf := conf.HTTPServerConfig
	if serverConf.Port == nil {
		serverConf.Port = tfconf.MetricsServerDefaults.Port
	}
	r, err := httpserver.NewRouter(ctx, "Metrics (HTTP)", &serverConf)
	if err != nil {
		return nil, err
	}
	r.HandleFunc("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	s.httpServer = r
	return s, nil
}

type metricsServer struct {
	httpServer httpserver.Server
}

func (s *metricsServer) Start() error {
	if s.httpServer != nil {
		return s.httpServer.Start()
	}
	return nil
}

func (s *metricsServer) Stop() {
	if s.httpServer != nil {
		s.httpServer.Stop()
	}
}

func (s *metricsServer) Addr() net.Addr {
	if s.httpServer != nil {
		return s.httpServer.Addr()
	}
	return nil
}
