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

package lcmgr

import (
	"context"
	"fmt"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// argSpec maps a key of the extra data of a request to an argument of the ledger call
type argSpec struct {
	key      string
	arg      string
	bytes32  bool
	optional bool
}

func argsFrom(specs ...argSpec) func(ctx context.Context, action string, extra map[string]interface{}) (map[string]interface{}, error) {
	return func(ctx context.Context, action string, extra map[string]interface{}) (map[string]interface{}, error) {
		args := make(map[string]interface{}, len(specs))
		for _, s := range specs {
			var str string
			if v, ok := extra[s.key]; ok && v != nil {
				str = fmt.Sprintf("%v", v)
			}
			switch {
			case str == "" && !s.optional:
				return nil, i18n.NewError(ctx, msgs.MsgInvalidActionArg, s.key, action)
			case s.bytes32:
				b, err := tftypes.ParseBytes32(ctx, str)
				if err != nil {
					return nil, i18n.WrapError(ctx, err, msgs.MsgInvalidActionArg, s.key, action)
				}
				args[s.arg] = b.String()
			default:
				args[s.arg] = str
			}
		}
		return args, nil
	}
}

var commentsArg = argsFrom(argSpec{key: "comments", arg: "comments", optional: true})
