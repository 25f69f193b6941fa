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

package msgs

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const tradeLedgerPrefix = "TF01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(tradeLedgerPrefix, "Trade Ledger")
	})
	if !strings.HasPrefix(key, tradeLedgerPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", tradeLedgerPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Config and components TF0100XX
	MsgConfigFileMissing          = ffe("TF010000", "Configuration file '%s' does not exist")
	MsgConfigFileReadError        = ffe("TF010001", "Failed to read configuration file '%s': %s")
	MsgConfigFileParseError       = ffe("TF010002", "Failed to parse configuration: %s")
	MsgConfigNodeIDMissing        = ffe("TF010003", "The node.partyId of the local party must be configured")
	MsgContractArtifactLoad       = ffe("TF010004", "Failed to load contract artifact '%s' for %s")
	MsgContractArtifactNoBytecode = ffe("TF010005", "Contract artifact for %s does not contain deploy bytecode")
	MsgComponentInitError         = ffe("TF010006", "Error initializing %s")
	MsgComponentStartError        = ffe("TF010007", "Error starting %s")
	MsgHTTPServerMissingPort      = ffe("TF010008", "HTTP server port must be specified for '%s'")
	MsgHTTPServerStartFailed      = ffe("TF010009", "Failed to start server on '%s'")

	// Invalid input TF0101XX
	MsgHashInvalidAddress      = ffe("TF010100", "Address must be exactly 20 bytes (length=%d)", http.StatusBadRequest)
	MsgHashInvalidNonce        = ffe("TF010101", "Nonce must be greater than zero (nonce=%d)", http.StatusBadRequest)
	MsgHashEmptyMessage        = ffe("TF010102", "Message to hash must not be empty", http.StatusBadRequest)
	MsgHashEmptyCallData       = ffe("TF010103", "Call data to hash must not be empty", http.StatusBadRequest)
	MsgInvalidSignature        = ffe("TF010104", "Invalid signature", http.StatusBadRequest)
	MsgInvalidSignatureLength  = ffe("TF010105", "Signature must be 65 bytes in compact R,S,V format (length=%d)", http.StatusBadRequest)
	MsgBindingNotBound         = ffe("TF010106", "%s contract binding is not bound to an address", http.StatusBadRequest)
	MsgBindingUnknownAction    = ffe("TF010107", "Action '%s' not found in %s contract ABI", http.StatusBadRequest)
	MsgBindingEncodeFailed     = ffe("TF010108", "Failed to encode call data for %s", http.StatusBadRequest)
	MsgBindingDecodeFailed     = ffe("TF010109", "Failed to decode %s result from contract %s", http.StatusBadRequest)
	MsgInvalidInstrument       = ffe("TF010110", "Invalid instrument: %s", http.StatusBadRequest)
	MsgInvalidAmendment        = ffe("TF010111", "Invalid amendment: %s", http.StatusBadRequest)
	MsgInvalidEventData        = ffe("TF010112", "Failed to decode %s event data", http.StatusBadRequest)
	MsgUnknownLedgerState      = ffe("TF010113", "Unknown ledger state id %s for %s", http.StatusBadRequest)
	MsgUnknownAction           = ffe("TF010114", "Unknown action '%s' for %s", http.StatusBadRequest)
	MsgInvalidRequestBody      = ffe("TF010115", "Invalid request body", http.StatusBadRequest)
	MsgCompressionFailed       = ffe("TF010116", "Failed to compress payload", http.StatusBadRequest)
	MsgDecompressionFailed     = ffe("TF010117", "Failed to decompress payload", http.StatusBadRequest)
	MsgInvalidHex              = ffe("TF010118", "Invalid hex value", http.StatusBadRequest)
	MsgInvalidAddressString    = ffe("TF010119", "Invalid address '%s'", http.StatusBadRequest)
	MsgInvalidBytes32          = ffe("TF010120", "Value must be exactly 32 bytes (length=%d)", http.StatusBadRequest)
	MsgUnknownInstrumentType   = ffe("TF010121", "Unknown instrument type '%s'", http.StatusBadRequest)
	MsgMissingMandatoryParty   = ffe("TF010122", "Mandatory party '%s' is missing", http.StatusBadRequest)
	MsgInvalidUUID             = ffe("TF010123", "Invalid identifier '%s'", http.StatusBadRequest)
	MsgUnsupportedCompressAlgo = ffe("TF010124", "Unsupported compression algorithm '%s'", http.StatusBadRequest)
	MsgTypesScanFail           = ffe("TF010125", "Unable to scan type %T into type %T", http.StatusBadRequest)
	MsgTypesTimeParseFail      = ffe("TF010126", "Cannot parse time as RFC3339 or unix timestamp: %s", http.StatusBadRequest)
	MsgInvalidActionArg        = ffe("TF010127", "Missing or invalid '%s' for action '%s'", http.StatusBadRequest)
	MsgDecompressedTooLarge    = ffe("TF010128", "Decompressed payload exceeds the limit of %d bytes", http.StatusBadRequest)

	// Business rules TF0102XX
	MsgForbiddenRole            = ffe("TF010200", "Party '%s' acting as %s cannot perform '%s' (requires %s)", http.StatusForbidden)
	MsgInvalidState             = ffe("TF010201", "Instrument %s is in state %s and cannot perform '%s' (requires %s)", http.StatusConflict)
	MsgAlreadyInProgress        = ffe("TF010202", "Transition of instrument %s to %s is already in progress", http.StatusConflict)
	MsgNotMember                = ffe("TF010203", "Party '%s' is not a member of the network", http.StatusBadRequest)
	MsgAmendmentInvalidState    = ffe("TF010204", "Amendment %s is in status %s and cannot perform '%s' (requires %s)", http.StatusConflict)
	MsgAmendmentAlreadyProgress = ffe("TF010205", "Transition of amendment %s to %s is already in progress", http.StatusConflict)

	// Transport TF0103XX
	MsgConnectionFailed        = ffe("TF010300", "Connection to %s failed", http.StatusBadGateway)
	MsgConnectionFailedStatus  = ffe("TF010301", "Request to %s failed with status %d: %s", http.StatusBadGateway)
	MsgLedgerCallFailed        = ffe("TF010302", "Ledger call '%s' on contract %s failed", http.StatusBadGateway)
	MsgLedgerRPCFailed         = ffe("TF010303", "Ledger JSON/RPC %s failed", http.StatusBadGateway)
	MsgSigningGatewayEmptyResp = ffe("TF010304", "Signing gateway returned an empty %s", http.StatusBadGateway)
	MsgContextCanceled         = ffe("TF010305", "Context canceled")
	MsgLedgerTxNotFound        = ffe("TF010306", "Transaction %s not found on the ledger", http.StatusBadGateway)

	// Referential integrity TF0104XX
	MsgMissingParty            = ffe("TF010400", "No transport key is registered for party %s", http.StatusNotFound)
	MsgContentNotFound         = ffe("TF010401", "%s not found: %s", http.StatusNotFound)
	MsgInstrumentNotFound      = ffe("TF010402", "Instrument not found: %s", http.StatusNotFound)
	MsgAmendmentParentNotFound = ffe("TF010403", "Parent instrument %s not found for amendment", http.StatusNotFound)
	MsgAmendmentNotFound       = ffe("TF010404", "Amendment not found: %s", http.StatusNotFound)
	MsgDocumentNotFound        = ffe("TF010405", "Document of type %s not found for %s", http.StatusNotFound)
	MsgPartyNotFound           = ffe("TF010406", "Party '%s' not found in the registry", http.StatusNotFound)

	// Persistence TF0105XX
	MsgPersistenceInvalidType         = ffe("TF010500", "Invalid persistence type: %s")
	MsgPersistenceMissingDSN          = ffe("TF010501", "Missing database connection Data Source Name (DSN)")
	MsgPersistenceInitFailed          = ffe("TF010502", "Database init failed")
	MsgPersistenceMigrationFailed     = ffe("TF010503", "Database migration failed")
	MsgPersistenceMissingMigrationDir = ffe("TF010504", "Missing database migration directory for autoMigrate")

	// Event listener TF0106XX
	MsgListenerStopped     = ffe("TF010600", "Event listener stopped")
	MsgListenerLogNotKnown = ffe("TF010601", "No handler for log with topic %s")
)
