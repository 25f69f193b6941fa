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

type ContractsConfig struct {
	// build artifacts ({"abi":...,"bytecode":"0x..."}) providing the deploy bytecode per contract
	LetterOfCredit        ContractArtifactConfig `json:"letterOfCredit"`
	StandbyLetterOfCredit ContractArtifactConfig `json:"standbyLetterOfCredit"`
	Amendment             ContractArtifactConfig `json:"amendment"`
}

type ContractArtifactConfig struct {
	ArtifactFile string `json:"artifactFile"`
	// inline bytecode, used when no artifact file is configured
	Bytecode string `json:"bytecode"`
}
