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

package tfapi

type PartyRole string

const (
	RoleApplicant       PartyRole = "Applicant"
	RoleBeneficiary     PartyRole = "Beneficiary"
	RoleIssuingBank     PartyRole = "IssuingBank"
	RoleAdvisingBank    PartyRole = "AdvisingBank"
	RoleNegotiatingBank PartyRole = "NegotiatingBank"
	RoleNotParty        PartyRole = "NotParty"
)

// RoleOf derives the role the party self plays on the instrument.
// When one party holds several fields the bank roles win, issuing bank first.
func RoleOf(self string, i *Instrument) PartyRole {
	switch {
	case self == "" || i == nil:
		return RoleNotParty
	case self == i.IssuingBankID:
		return RoleIssuingBank
	case self == i.BeneficiaryBankID:
		if i.BeneficiaryBankRole == IntermediaryNegotiating {
			return RoleNegotiatingBank
		}
		return RoleAdvisingBank
	case self == i.BeneficiaryID:
		return RoleBeneficiary
	case self == i.ApplicantID:
		return RoleApplicant
	default:
		return RoleNotParty
	}
}

// PartyFor returns the party id holding a role, or "" for NotParty or an unset intermediary
func PartyFor(role PartyRole, i *Instrument) string {
	switch role {
	case RoleApplicant:
		return i.ApplicantID
	case RoleBeneficiary:
		return i.BeneficiaryID
	case RoleIssuingBank:
		return i.IssuingBankID
	case RoleAdvisingBank, RoleNegotiatingBank:
		return i.BeneficiaryBankID
	default:
		return ""
	}
}
