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

package retry

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/stretchr/testify/assert"
)

func TestRetryEventualSuccess(t *testing.T) {
	r := NewRetry(&tfconf.RetryConfig{InitialDelay: confutil.P("1ms"), MaxDelay: confutil.P("2ms")})
	err := r.Do(context.Background(), func(attempt int) (bool, error) {
		if attempt < 3 {
			return true, fmt.Errorf("pop")
		}
		return true, nil
	})
	assert.NoError(t, err)
}

func TestRetryLimited(t *testing.T) {
	r := NewRetry(&tfconf.RetryConfig{InitialDelay: confutil.P("1ms"), MaxAttempts: confutil.P(2)})
	attempts := 0
	err := r.Do(context.Background(), func(attempt int) (bool, error) {
		attempts = attempt
		return true, fmt.Errorf("pop")
	})
	assert.EqualError(t, err, "pop")
	assert.Equal(t, 2, attempts)
}

func TestRetryNotRetryable(t *testing.T) {
	r := NewRetry(&tfconf.RetryConfig{})
	err := r.Do(context.Background(), func(attempt int) (bool, error) {
		return false, fmt.Errorf("fatal")
	})
	assert.EqualError(t, err, "fatal")
}

func TestRetryContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRetry(&tfconf.RetryConfig{InitialDelay: confutil.P("10s")})
	err := r.Do(ctx, func(attempt int) (bool, error) {
		return true, fmt.Errorf("pop")
	})
	assert.Regexp(t, "TF010305", err)
}
