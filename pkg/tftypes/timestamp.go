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

package tftypes

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"time"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Timestamp is a unix nanosecond timestamp, serialized to JSON as RFC3339 UTC.
// It parses RFC3339 or unix seconds/millis/nanos.
type Timestamp int64

func TimestampNow() Timestamp {
	return Timestamp(time.Now().UnixNano())
}

func TimestampFromUnix(unixTime int64) Timestamp {
	if unixTime < 1e10 {
		unixTime *= 1e3
	}
	if unixTime < 1e15 {
		unixTime *= 1e6
	}
	return Timestamp(unixTime)
}

func ParseTimeString(str string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, str)
	if err == nil {
		return Timestamp(t.UnixNano()), nil
	}
	unixTime, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, i18n.NewError(context.Background(), msgs.MsgTypesTimeParseFail, str)
	}
	return TimestampFromUnix(unixTime), nil
}

func (ts Timestamp) Time() time.Time {
	return time.Unix(0, int64(ts))
}

func (ts Timestamp) String() string {
	if ts == 0 {
		return ""
	}
	return ts.Time().UTC().Format(time.RFC3339Nano)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts == 0 {
		return json.Marshal(nil)
	}
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var iVal interface{}
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&iVal); err != nil {
		return err
	}
	return ts.Scan(iVal)
}

func (ts *Timestamp) Scan(src interface{}) error {
	var err error
	switch src := src.(type) {
	case nil:
		*ts = 0
	case json.Number:
		*ts, err = ParseTimeString(src.String())
	case string:
		*ts, err = ParseTimeString(src)
	case int64:
		*ts = TimestampFromUnix(src)
	case time.Time:
		*ts = Timestamp(src.UnixNano())
	default:
		err = i18n.NewError(context.Background(), msgs.MsgTypesScanFail, src, ts)
	}
	return err
}

func (ts Timestamp) Value() (driver.Value, error) {
	return int64(ts), nil
}
