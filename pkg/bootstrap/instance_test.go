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

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path"
	"syscall"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/componentmgr"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComponentManager struct {
	componentmgr.ComponentManager
	initErr     error
	startErr    error
	completeErr error
	started     chan struct{}
	stopped     bool
}

func (f *fakeComponentManager) Init() error {
	return f.initErr
}

func (f *fakeComponentManager) StartManagers() error {
	return f.startErr
}

func (f *fakeComponentManager) CompleteStart() error {
	if f.started != nil {
		close(f.started)
	}
	return f.completeErr
}

func (f *fakeComponentManager) Stop() {
	f.stopped = true
}

func setupTestConfig(t *testing.T, fake *fakeComponentManager) (configFile string, conf *tfconf.NodeConfig) {
	configFile = path.Join(t.TempDir(), "tradeledger.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
node:
  partyId: issuer1
api:
  port: 0
`), 0644))

	conf = &tfconf.NodeConfig{}
	origFactory := componentManagerFactory
	componentManagerFactory = func(ctx context.Context, c *tfconf.NodeConfig) componentmgr.ComponentManager {
		*conf = *c
		return fake
	}
	t.Cleanup(func() { componentManagerFactory = origFactory })
	return configFile, conf
}

func TestSignalHandlerStop(t *testing.T) {
	fake := &fakeComponentManager{started: make(chan struct{})}
	configFile, conf := setupTestConfig(t, fake)

	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()

	<-fake.started
	inst := running.Load()
	require.NotNil(t, inst)
	inst.signals <- syscall.SIGQUIT

	assert.Equal(t, RC_OK, <-completed)
	assert.True(t, fake.stopped)
	assert.Equal(t, "issuer1", conf.Node.PartyID)
	assert.Equal(t, 0, *conf.API.Port)
	assert.Nil(t, running.Load())
}

func TestStopFunction(t *testing.T) {
	fake := &fakeComponentManager{started: make(chan struct{})}
	configFile, _ := setupTestConfig(t, fake)

	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()

	<-fake.started
	Stop()
	assert.Equal(t, RC_OK, <-completed)
	Stop()
}

func TestBadConfigFile(t *testing.T) {
	fake := &fakeComponentManager{}
	setupTestConfig(t, fake)

	rc := Run(path.Join(t.TempDir(), "wrong.yaml"))
	assert.Equal(t, RC_FAIL, rc)
	assert.False(t, fake.stopped)
}

func TestComponentManagerInitFail(t *testing.T) {
	fake := &fakeComponentManager{initErr: fmt.Errorf("pop")}
	configFile, _ := setupTestConfig(t, fake)

	assert.Equal(t, RC_FAIL, Run(configFile))
	assert.True(t, fake.stopped)
}

func TestComponentManagerStartFail(t *testing.T) {
	fake := &fakeComponentManager{completeErr: fmt.Errorf("pop")}
	configFile, _ := setupTestConfig(t, fake)

	assert.Equal(t, RC_FAIL, Run(configFile))
	assert.True(t, fake.stopped)
}
