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

package tfconf

import (
	"context"
	"os"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"sigs.k8s.io/yaml"
)

type NodeConfig struct {
	Node           NodeIdentityConfig  `json:"node"`
	Log            LogConfig           `json:"log"`
	DB             DBConfig            `json:"db"`
	Blockchain     EthClientConfig     `json:"blockchain"`
	SigningGateway HTTPClientConfig    `json:"signingGateway"`
	Registry       RegistryConfig      `json:"registry"`
	Contracts      ContractsConfig     `json:"contracts"`
	EventListener  EventListenerConfig `json:"eventListener"`
	Services       ServicesConfig      `json:"services"`
	API            HTTPServerConfig    `json:"api"`
	Metrics        MetricsServerConfig `json:"metrics"`
	Compression    CompressionConfig   `json:"compression"`
	Instruments    InstrumentsConfig   `json:"instruments"`
}

type NodeIdentityConfig struct {
	// the static id of the company running this node
	PartyID string `json:"partyId"`
	// the namespace appended to party ids before domain hashing
	Namespace *string `json:"namespace"`
}

var NodeIdentityDefaults = &NodeIdentityConfig{
	Namespace: confutil.P("komgo"),
}

type CompressionConfig struct {
	// the compression applied to instrument data embedded in deploy payloads ('zlib', 'none')
	Algorithm *string `json:"algorithm"`
	// the largest payload accepted when decompressing data read from the ledger
	MaxDecompressedSize *string `json:"maxDecompressedSize"`
}

var CompressionDefaults = &CompressionConfig{
	Algorithm:           confutil.P("zlib"),
	MaxDecompressedSize: confutil.P("10Mb"),
}

type InstrumentsConfig struct {
	// time before the issue due date at which the issuing bank is reminded
	IssueReminderBefore *string `json:"issueReminderBefore"`
	// product id used for documents, tasks and notifications
	ProductID *string `json:"productId"`
}

var InstrumentsDefaults = &InstrumentsConfig{
	IssueReminderBefore: confutil.P("24h"),
	ProductID:           confutil.P("tradeFinance"),
}

func ReadAndParseYAMLFile(ctx context.Context, filePath string, config interface{}) error {
	// sigs.k8s.io/yaml honours the json tags on the config structs
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return i18n.NewError(ctx, msgs.MsgConfigFileMissing, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileReadError, filePath, err.Error())
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileParseError, err.Error())
	}
	return nil
}
