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

package statemachine

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// InvokeFn submits the ledger transaction of the action
type InvokeFn func(ctx context.Context, inst *tfapi.Instrument, extra map[string]interface{}) (*tftypes.Bytes32, error)

type Config struct {
	Name             string
	RequiredState    tfapi.InstrumentState
	RequiredRole     tfapi.PartyRole
	DestinationState tfapi.InstrumentState
	// StateCheck replaces the RequiredState comparison when set
	StateCheck func(inst *tfapi.Instrument) bool
	// Task is the task owed by the local party that this action completes
	Task   tfapi.TaskType
	Invoke InvokeFn
}

// Machine runs one lifecycle action for the local party.
// Only the guard checks and the ledger call decide the outcome, task status
// and destination state bookkeeping is best-effort.
type Machine struct {
	conf  *Config
	self  string
	store components.Store
	tasks components.TaskManager
}

func New(conf *Config, self string, store components.Store, tasks components.TaskManager) *Machine {
	return &Machine{
		conf:  conf,
		self:  self,
		store: store,
		tasks: tasks,
	}
}

func (m *Machine) Name() string {
	return m.conf.Name
}

func (m *Machine) DestinationState() tfapi.InstrumentState {
	return m.conf.DestinationState
}

func (m *Machine) checkState(inst *tfapi.Instrument) bool {
	if m.conf.StateCheck != nil {
		return m.conf.StateCheck(inst)
	}
	return inst.Status == m.conf.RequiredState
}

// Guard fails if the local party cannot run the action on the instrument as it is cached
func (m *Machine) Guard(ctx context.Context, inst *tfapi.Instrument) error {
	role := tfapi.RoleOf(m.self, inst)
	if role != m.conf.RequiredRole {
		return i18n.NewError(ctx, msgs.MsgForbiddenRole, m.self, role, m.conf.Name, m.conf.RequiredRole)
	}
	if !m.checkState(inst) {
		return i18n.NewError(ctx, msgs.MsgInvalidState, inst.IDString(), inst.Status, m.conf.Name, m.conf.RequiredState)
	}
	if inst.DestinationState != nil && *inst.DestinationState == m.conf.DestinationState {
		return i18n.NewError(ctx, msgs.MsgAlreadyInProgress, inst.IDString(), m.conf.DestinationState)
	}
	return nil
}

func (m *Machine) Execute(ctx context.Context, inst *tfapi.Instrument, extra map[string]interface{}) (*tftypes.Bytes32, error) {
	ctx = log.WithLogField(ctx, "instrument", inst.IDString())
	ctx = log.WithLogField(ctx, "action", m.conf.Name)
	if err := m.Guard(ctx, inst); err != nil {
		log.L(ctx).Errorf("Action rejected: %s", err)
		return nil, err
	}

	claimed, err := m.store.ClaimDestinationState(ctx, inst.ID, m.conf.DestinationState)
	switch {
	case err != nil:
		log.L(ctx).Warnf("Failed to record destination state %s: %s", m.conf.DestinationState, err)
	case !claimed:
		return nil, i18n.NewError(ctx, msgs.MsgAlreadyInProgress, inst.IDString(), m.conf.DestinationState)
	}

	m.setTaskStatus(ctx, inst, tfapi.TaskStatusPending)

	txHash, invokeErr := m.conf.Invoke(ctx, inst, extra)
	if invokeErr != nil {
		if claimed {
			if err := m.store.ReleaseDestinationState(ctx, inst.ID, m.conf.DestinationState); err != nil {
				log.L(ctx).Warnf("Failed to release destination state %s: %s", m.conf.DestinationState, err)
			}
		}
		m.setTaskStatus(ctx, inst, tfapi.TaskStatusToDo)
		return nil, invokeErr
	}

	d := m.conf.DestinationState
	inst.DestinationState = &d
	log.L(ctx).Infof("Submitted transition to %s tx=%s", m.conf.DestinationState, txHash)
	return txHash, nil
}

func (m *Machine) setTaskStatus(ctx context.Context, inst *tfapi.Instrument, status tfapi.TaskStatus) {
	if m.conf.Task == "" {
		return
	}
	if err := m.tasks.UpdateTaskStatus(ctx, m.conf.Task, inst.TaskContext(), status); err != nil {
		log.L(ctx).Warnf("Failed to set %s task to %s: %s", m.conf.Task, status, err)
	}
}
