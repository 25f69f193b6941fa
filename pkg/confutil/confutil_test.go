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

package confutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntAccessors(t *testing.T) {
	assert.Equal(t, 5, Int(nil, 5))
	assert.Equal(t, 3, Int(P(3), 5))
	assert.Equal(t, 10, IntMin(P(1), 10, 20))
	assert.Equal(t, 20, IntMin(nil, 10, 20))
	assert.Equal(t, uint64(7), Uint64(nil, 7))
	assert.Equal(t, 2.5, Float64Min(P(1.0), 2.5, 3))
}

func TestStringAccessors(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "set", StringNotEmpty(P("set"), "def"))
	assert.Equal(t, "", StringOrEmpty(P(""), "def"))
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(P(false), true))
}

func TestDurationMin(t *testing.T) {
	assert.Equal(t, 5*time.Second, DurationMin(nil, 0, "5s"))
	assert.Equal(t, 5*time.Second, DurationMin(P("wrong"), 0, "5s"))
	assert.Equal(t, time.Second, DurationMin(P("1ms"), time.Second, "5s"))
	assert.Equal(t, time.Minute, DurationMin(P("1m"), time.Second, "5s"))
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, int64(1024*1024), ByteSize(nil, 0, "1Mb"))
	assert.Equal(t, int64(2048), ByteSize(P("2Kb"), 0, "1Mb"))
	assert.Equal(t, int64(4096), ByteSize(P("2Kb"), 4096, "1Mb"))
	assert.Equal(t, int64(1024*1024), ByteSize(P("bad"), 0, "1Mb"))
}
