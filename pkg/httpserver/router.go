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

package httpserver

import (
	"context"
	"net"
	"net/http"

	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/gorilla/mux"
)

// Router is a Server that dispatches with a gorilla mux
type Router interface {
	Server
	HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route
	PathPrefixHandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route
}

var _ Router = &router{}

type router struct {
	router *mux.Router
	server Server
}

func NewRouter(ctx context.Context, description string, conf *tfconf.HTTPServerConfig) (_ Router, err error) {
	r := &router{
		router: mux.NewRouter(),
	}
	if r.server, err = NewServer(ctx, description, conf, r.router); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return r.router.HandleFunc(path, f)
}

func (r *router) PathPrefixHandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return r.router.PathPrefix(path).HandlerFunc(f)
}

func (r *router) Addr() net.Addr {
	return r.server.Addr()
}

func (r *router) Start() error {
	return r.server.Start()
}

func (r *router) Stop() {
	r.server.Stop()
}
