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

package cache

import (
	"testing"
	"time"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/stretchr/testify/assert"
)

func TestLRUEviction(t *testing.T) {
	c := NewCache[string, int](&tfconf.CacheConfig{Capacity: confutil.P(2)}, tfconf.RegistryCacheDefaults)
	assert.Equal(t, 2, c.Capacity())

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	_, found := c.Get("a")
	assert.False(t, found)
	v, found := c.Get("c")
	assert.True(t, found)
	assert.Equal(t, 3, v)

	c.Delete("c")
	_, found = c.Get("c")
	assert.False(t, found)

	c.Clear()
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestExpiry(t *testing.T) {
	c := NewCache[string, int](&tfconf.CacheConfig{TTL: confutil.P("1ms")}, tfconf.RegistryCacheDefaults)
	c.Set("a", 1)
	time.Sleep(10 * time.Millisecond)
	_, found := c.Get("a")
	assert.False(t, found)
}
