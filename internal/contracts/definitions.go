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

package contracts

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

//go:embed abis/LetterOfCredit.json
var letterOfCreditABI []byte

//go:embed abis/StandbyLetterOfCredit.json
var standbyLetterOfCreditABI []byte

//go:embed abis/Amendment.json
var amendmentABI []byte

type LCAction string

const (
	LCIssue                LCAction = "issue"
	LCAdvise               LCAction = "advise"
	LCAcknowledge          LCAction = "acknowledge"
	LCRequestReject        LCAction = "requestReject"
	LCRejectByBeneficiary  LCAction = "issuedLCRejectByBeneficiary"
	LCRejectByAdvisingBank LCAction = "issuedLCRejectByAdvisingBank"
)

type SBLCAction string

const (
	SBLCIssue         SBLCAction = "issue"
	SBLCRequestReject SBLCAction = "requestReject"
)

type AmendmentAction string

const (
	AmendmentApprove AmendmentAction = "approve"
	AmendmentReject  AmendmentAction = "reject"
)

type (
	LCBinding        = Binding[LCAction, tfapi.InstrumentState]
	SBLCBinding      = Binding[SBLCAction, tfapi.InstrumentState]
	AmendmentBinding = Binding[AmendmentAction, tfapi.AmendmentStatus]
)

var LetterOfCredit = &Definition[LCAction, tfapi.InstrumentState]{
	Name:         "LetterOfCredit",
	ABI:          letterOfCreditABI,
	Actions:      []LCAction{LCIssue, LCAdvise, LCAcknowledge, LCRequestReject, LCRejectByBeneficiary, LCRejectByAdvisingBank},
	States:       []tfapi.InstrumentState{tfapi.StateRequested, tfapi.StateRequestRejected, tfapi.StateIssued, tfapi.StateIssuedRejected, tfapi.StateAdvised, tfapi.StateAcknowledged},
	CreatedEvent: "LetterOfCreditCreated",
}

var StandbyLetterOfCredit = &Definition[SBLCAction, tfapi.InstrumentState]{
	Name:         "StandbyLetterOfCredit",
	ABI:          standbyLetterOfCreditABI,
	Actions:      []SBLCAction{SBLCIssue, SBLCRequestReject},
	States:       []tfapi.InstrumentState{tfapi.StateRequested, tfapi.StateRequestRejected, tfapi.StateIssued},
	CreatedEvent: "StandbyLetterOfCreditCreated",
}

var Amendment = &Definition[AmendmentAction, tfapi.AmendmentStatus]{
	Name:         "Amendment",
	ABI:          amendmentABI,
	Actions:      []AmendmentAction{AmendmentApprove, AmendmentReject},
	States:       []tfapi.AmendmentStatus{tfapi.AmendmentRequested, tfapi.AmendmentApproved, tfapi.AmendmentRejectedByIssuingBank},
	CreatedEvent: "AmendmentCreated",
}

type Bindings struct {
	LetterOfCredit        *LCBinding
	StandbyLetterOfCredit *SBLCBinding
	Amendment             *AmendmentBinding
}

func NewBindings(ctx context.Context, conf *tfconf.ContractsConfig, ledger ethclient.EthClient) (*Bindings, error) {
	lcCode, err := LoadBytecode(ctx, LetterOfCredit.Name, &conf.LetterOfCredit)
	if err != nil {
		return nil, err
	}
	sblcCode, err := LoadBytecode(ctx, StandbyLetterOfCredit.Name, &conf.StandbyLetterOfCredit)
	if err != nil {
		return nil, err
	}
	amendmentCode, err := LoadBytecode(ctx, Amendment.Name, &conf.Amendment)
	if err != nil {
		return nil, err
	}
	b := &Bindings{}
	if b.LetterOfCredit, err = NewBinding(ctx, LetterOfCredit, lcCode, ledger); err != nil {
		return nil, err
	}
	if b.StandbyLetterOfCredit, err = NewBinding(ctx, StandbyLetterOfCredit, sblcCode, ledger); err != nil {
		return nil, err
	}
	if b.Amendment, err = NewBinding(ctx, Amendment, amendmentCode, ledger); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadBytecode reads the deploy bytecode from a build artifact, or from the
// inline configuration. A contract with neither can be bound, but not deployed.
func LoadBytecode(ctx context.Context, name string, conf *tfconf.ContractArtifactConfig) (tftypes.HexBytes, error) {
	if conf.ArtifactFile != "" {
		data, err := os.ReadFile(conf.ArtifactFile)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgContractArtifactLoad, conf.ArtifactFile, name)
		}
		var artifact struct {
			Bytecode tftypes.HexBytes `json:"bytecode"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgContractArtifactLoad, conf.ArtifactFile, name)
		}
		if len(artifact.Bytecode) == 0 {
			return nil, i18n.NewError(ctx, msgs.MsgContractArtifactNoBytecode, name)
		}
		return artifact.Bytecode, nil
	}
	if conf.Bytecode != "" {
		bytecode, err := tftypes.ParseHexBytes(ctx, conf.Bytecode)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgContractArtifactLoad, "bytecode", name)
		}
		return bytecode, nil
	}
	return nil, nil
}
