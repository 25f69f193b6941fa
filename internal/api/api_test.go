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
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/mocks/componentmocks"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testManagers struct {
	lc         *componentmocks.InstrumentManager
	sblc       *componentmocks.InstrumentManager
	amendments *componentmocks.AmendmentManager
}

func (tm *testManagers) LCManager() components.InstrumentManager       { return tm.lc }
func (tm *testManagers) SBLCManager() components.InstrumentManager     { return tm.sblc }
func (tm *testManagers) AmendmentManager() components.AmendmentManager { return tm.amendments }

func newTestAPI(t *testing.T) (*testManagers, http.Handler) {
	tm := &testManagers{
		lc:         componentmocks.NewInstrumentManager(t),
		sblc:       componentmocks.NewInstrumentManager(t),
		amendments: componentmocks.NewAmendmentManager(t),
	}
	r := mux.NewRouter()
	(&apiServer{managers: tm}).register(r)
	return tm, r
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &out))
	return res.Code, out
}

func TestCreateInstrument(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	tm.sblc.On("CreateInstrument", mock.Anything, mock.MatchedBy(func(inst *tfapi.Instrument) bool {
		return inst.Reference == "SBLC-7"
	})).Return(&tfapi.Instrument{ID: id, Reference: "SBLC-7"}, nil)

	status, body := call(t, h, http.MethodPost, "/api/v1/instruments/sblc", `{"reference":"SBLC-7"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, id.String(), body["id"])
}

func TestCreateInstrumentErrors(t *testing.T) {
	tm, h := newTestAPI(t)

	status, body := call(t, h, http.MethodPost, "/api/v1/instruments/guarantee", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010121", body["error"])

	status, body = call(t, h, http.MethodPost, "/api/v1/instruments/lc", `{"reference":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010115", body["error"])

	tm.lc.On("CreateInstrument", mock.Anything, mock.Anything).Return(nil, i18n.NewError(context.Background(), msgs.MsgForbiddenRole, "benef1", "Beneficiary", "create", "Applicant"))
	status, body = call(t, h, http.MethodPost, "/api/v1/instruments/LC", `{}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Regexp(t, "TF010200", body["error"])
}

func TestGetInstrument(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	tm.lc.On("GetInstrument", mock.Anything, id).Return(&tfapi.Instrument{ID: id, Reference: "LC-1"}, nil)

	status, body := call(t, h, http.MethodGet, "/api/v1/instruments/lc/"+id.String(), "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "LC-1", body["reference"])
}

func TestGetInstrumentNotFound(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	tm.lc.On("GetInstrument", mock.Anything, id).Return(nil, nil)

	status, body := call(t, h, http.MethodGet, "/api/v1/instruments/lc/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Regexp(t, "TF010402", body["error"])

	status, body = call(t, h, http.MethodGet, "/api/v1/instruments/lc/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010123", body["error"])
}

func TestGetInstrumentUnexpectedError(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	tm.sblc.On("GetInstrument", mock.Anything, id).Return(nil, fmt.Errorf("pop"))

	status, body := call(t, h, http.MethodGet, "/api/v1/instruments/sblc/"+id.String(), "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "pop", body["error"])
}

func TestExecuteAction(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	txHash := tftypes.RandBytes32()
	tm.lc.On("Execute", mock.Anything, id, "issue", map[string]interface{}{"swiftReference": "SW-1"}).Return(&txHash, nil)

	status, body := call(t, h, http.MethodPost, "/api/v1/instruments/lc/"+id.String()+"/actions/issue", `{"swiftReference":"SW-1"}`)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, txHash.String(), body["transactionHash"])
}

func TestExecuteActionNoBody(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	txHash := tftypes.RandBytes32()
	tm.lc.On("Execute", mock.Anything, id, "acknowledge", map[string]interface{}{}).Return(&txHash, nil)

	status, _ := call(t, h, http.MethodPost, "/api/v1/instruments/lc/"+id.String()+"/actions/acknowledge", "")
	assert.Equal(t, http.StatusAccepted, status)
}

func TestExecuteActionErrors(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	ctx := context.Background()

	status, body := call(t, h, http.MethodPost, "/api/v1/instruments/lc/bad/actions/issue", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010123", body["error"])

	status, body = call(t, h, http.MethodPost, "/api/v1/instruments/lc/"+id.String()+"/actions/issue", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010115", body["error"])

	tm.lc.On("Execute", mock.Anything, id, "advise", mock.Anything).Return(nil, i18n.NewError(ctx, msgs.MsgInvalidState, id, "Requested", "advise", "Issued"))
	status, body = call(t, h, http.MethodPost, "/api/v1/instruments/lc/"+id.String()+"/actions/advise", `{}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Regexp(t, "TF010201", body["error"])
}

func TestCreateAmendment(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	tm.amendments.On("CreateAmendment", mock.Anything, mock.Anything).Return(&tfapi.Amendment{StaticID: id, Version: 2}, nil)

	status, body := call(t, h, http.MethodPost, "/api/v1/amendments", `{"lcStaticId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, id.String(), body["staticId"])

	status, body = call(t, h, http.MethodPost, "/api/v1/amendments", `not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010115", body["error"])
}

func TestGetAmendment(t *testing.T) {
	tm, h := newTestAPI(t)
	found := uuid.New()
	missing := uuid.New()
	tm.amendments.On("GetAmendment", mock.Anything, found).Return(&tfapi.Amendment{StaticID: found}, nil)
	tm.amendments.On("GetAmendment", mock.Anything, missing).Return(nil, nil)

	status, body := call(t, h, http.MethodGet, "/api/v1/amendments/"+found.String(), "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, found.String(), body["staticId"])

	status, body = call(t, h, http.MethodGet, "/api/v1/amendments/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Regexp(t, "TF010404", body["error"])
}

func TestApproveAndRejectAmendment(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	txHash := tftypes.RandBytes32()
	tm.amendments.On("Approve", mock.Anything, id).Return(&txHash, nil)
	tm.amendments.On("Reject", mock.Anything, id, "wrong amount").Return(&txHash, nil)

	status, body := call(t, h, http.MethodPost, "/api/v1/amendments/"+id.String()+"/approve", "")
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, txHash.String(), body["transactionHash"])

	status, _ = call(t, h, http.MethodPost, "/api/v1/amendments/"+id.String()+"/reject", `{"comments":"wrong amount"}`)
	assert.Equal(t, http.StatusAccepted, status)
}

func TestApproveAndRejectErrors(t *testing.T) {
	tm, h := newTestAPI(t)
	id := uuid.New()
	ctx := context.Background()
	tm.amendments.On("Approve", mock.Anything, id).Return(nil, i18n.NewError(ctx, msgs.MsgAmendmentNotFound, id))

	status, body := call(t, h, http.MethodPost, "/api/v1/amendments/"+id.String()+"/approve", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Regexp(t, "TF010404", body["error"])

	status, body = call(t, h, http.MethodPost, "/api/v1/amendments/xyz/reject", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010123", body["error"])

	status, body = call(t, h, http.MethodPost, "/api/v1/amendments/"+id.String()+"/reject", `{"comments":false}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Regexp(t, "TF010115", body["error"])
}

func TestNewServerBadConfig(t *testing.T) {
	_, err := NewServer(context.Background(), &tfconf.HTTPServerConfig{}, &testManagers{})
	assert.Regexp(t, "TF010008", err)
}
