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

package components

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/google/uuid"
)

// LogHandler receives decoded ledger logs from the event listener, in block order
type LogHandler interface {
	Name() string
	Topics() []tftypes.Bytes32
	HandleLog(ctx context.Context, l *ethclient.LogJSONRPC) error
}

type InstrumentManager interface {
	ManagerLifecycle
	LogHandler
	CreateInstrument(ctx context.Context, inst *tfapi.Instrument) (*tfapi.Instrument, error)
	GetInstrument(ctx context.Context, id uuid.UUID) (*tfapi.Instrument, error)
	Execute(ctx context.Context, id uuid.UUID, action string, extra map[string]interface{}) (*tftypes.Bytes32, error)
}

type AmendmentManager interface {
	ManagerLifecycle
	LogHandler
	CreateAmendment(ctx context.Context, a *tfapi.Amendment) (*tfapi.Amendment, error)
	GetAmendment(ctx context.Context, staticID uuid.UUID) (*tfapi.Amendment, error)
	Approve(ctx context.Context, staticID uuid.UUID) (*tftypes.Bytes32, error)
	Reject(ctx context.Context, staticID uuid.UUID, comments string) (*tftypes.Bytes32, error)
}
