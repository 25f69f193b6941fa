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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/httpserver"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const apiPrefix = "/api/v1"

type routes interface {
	HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route
}

type Server interface {
	Start() error
	Stop()
}

type apiServer struct {
	managers components.Managers
	router   httpserver.Router
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type TransactionResponse struct {
	TransactionHash *tftypes.Bytes32 `json:"transactionHash"`
}

type RejectRequest struct {
	Comments string `json:"comments"`
}

func NewServer(ctx context.Context, conf *tfconf.HTTPServerConfig, managers components.Managers) (Server, error) {
	router, err := httpserver.NewRouter(ctx, "API", conf)
	if err != nil {
		return nil, err
	}
	s := &apiServer{managers: managers, router: router}
	s.register(router)
	return s, nil
}

func (s *apiServer) Start() error {
	return s.router.Start()
}

func (s *apiServer) Stop() {
	s.router.Stop()
}

func (s *apiServer) register(r routes) {
	r.HandleFunc(apiPrefix+"/instruments/{type}", s.createInstrument).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/instruments/{type}/{id}", s.getInstrument).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/instruments/{type}/{id}/actions/{action}", s.executeAction).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/amendments", s.createAmendment).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/amendments/{id}", s.getAmendment).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/amendments/{id}/approve", s.approveAmendment).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/amendments/{id}/reject", s.rejectAmendment).Methods(http.MethodPost)
}

func (s *apiServer) instrumentManager(ctx context.Context, kind string) (components.InstrumentManager, error) {
	switch tfapi.InstrumentType(strings.ToUpper(kind)) {
	case tfapi.InstrumentTypeLC:
		return s.managers.LCManager(), nil
	case tfapi.InstrumentTypeSBLC:
		return s.managers.SBLCManager(), nil
	}
	return nil, i18n.NewError(ctx, msgs.MsgUnknownInstrumentType, kind)
}

func pathID(ctx context.Context, req *http.Request) (uuid.UUID, error) {
	s := mux.Vars(req)["id"]
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, i18n.WrapError(ctx, err, msgs.MsgInvalidUUID, s)
	}
	return id, nil
}

func readBody(ctx context.Context, req *http.Request, into interface{}) error {
	err := json.NewDecoder(req.Body).Decode(into)
	if err != nil && err != io.EOF {
		return i18n.WrapError(ctx, err, msgs.MsgInvalidRequestBody)
	}
	return nil
}

func writeJSON(ctx context.Context, res http.ResponseWriter, status int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(body); err != nil {
		log.L(ctx).Errorf("Failed to write response: %s", err)
	}
}

func statusOf(err error) int {
	var ffe i18n.FFError
	if errors.As(err, &ffe) && ffe.HTTPStatus() >= 400 {
		return ffe.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func writeError(ctx context.Context, res http.ResponseWriter, err error) {
	status := statusOf(err)
	log.L(ctx).Errorf("Request failed [%d]: %s", status, err)
	writeJSON(ctx, res, status, &ErrorResponse{Error: err.Error()})
}

func (s *apiServer) createInstrument(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	m, err := s.instrumentManager(ctx, mux.Vars(req)["type"])
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	var inst tfapi.Instrument
	if err := readBody(ctx, req, &inst); err != nil {
		writeError(ctx, res, err)
		return
	}
	created, err := m.CreateInstrument(ctx, &inst)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusCreated, created)
}

func (s *apiServer) getInstrument(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	m, err := s.instrumentManager(ctx, mux.Vars(req)["type"])
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	id, err := pathID(ctx, req)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	inst, err := m.GetInstrument(ctx, id)
	if err == nil && inst == nil {
		err = i18n.NewError(ctx, msgs.MsgInstrumentNotFound, id)
	}
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusOK, inst)
}

func (s *apiServer) executeAction(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	m, err := s.instrumentManager(ctx, mux.Vars(req)["type"])
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	id, err := pathID(ctx, req)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	extra := map[string]interface{}{}
	if err := readBody(ctx, req, &extra); err != nil {
		writeError(ctx, res, err)
		return
	}
	txHash, err := m.Execute(ctx, id, mux.Vars(req)["action"], extra)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusAccepted, &TransactionResponse{TransactionHash: txHash})
}

func (s *apiServer) createAmendment(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var a tfapi.Amendment
	if err := readBody(ctx, req, &a); err != nil {
		writeError(ctx, res, err)
		return
	}
	created, err := s.managers.AmendmentManager().CreateAmendment(ctx, &a)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusCreated, created)
}

func (s *apiServer) getAmendment(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := pathID(ctx, req)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	a, err := s.managers.AmendmentManager().GetAmendment(ctx, id)
	if err == nil && a == nil {
		err = i18n.NewError(ctx, msgs.MsgAmendmentNotFound, id)
	}
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusOK, a)
}

func (s *apiServer) approveAmendment(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := pathID(ctx, req)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	txHash, err := s.managers.AmendmentManager().Approve(ctx, id)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusAccepted, &TransactionResponse{TransactionHash: txHash})
}

func (s *apiServer) rejectAmendment(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := pathID(ctx, req)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	var body RejectRequest
	if err := readBody(ctx, req, &body); err != nil {
		writeError(ctx, res, err)
		return
	}
	txHash, err := s.managers.AmendmentManager().Reject(ctx, id, body.Comments)
	if err != nil {
		writeError(ctx, res, err)
		return
	}
	writeJSON(ctx, res, http.StatusAccepted, &TransactionResponse{TransactionHash: txHash})
}
