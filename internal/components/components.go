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
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/persistence"
)

// PreInitComponents are the clients and codecs the managers are built on.
// They do not depend on each other beyond configuration.
type PreInitComponents interface {
	Persistence() persistence.Persistence
	EthClient() ethclient.EthClient
	Contracts() *contracts.Bindings
	Compressor() hashcodec.Compressor
	Metrics() metrics.Metrics
	Store() Store
	SigningGateway() SigningGateway
	IdentityResolver() IdentityResolver
	TaskManager() TaskManager
	DocumentManager() DocumentManager
	TimerManager() TimerManager
	Bridge() Bridge
	SelfPartyID() string
	// Namespace is appended to party ids before they are domain hashed
	Namespace() string
}

type Managers interface {
	LCManager() InstrumentManager
	SBLCManager() InstrumentManager
	AmendmentManager() AmendmentManager
}

// All managers conform to a standard lifecycle
type ManagerLifecycle interface {
	// PostInit cross-binds to the other managers
	PostInit(AllComponents) error
	Start() error
	Stop()
}

type AllComponents interface {
	PreInitComponents
	Managers
}
