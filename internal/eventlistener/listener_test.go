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

package eventlistener

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/mocks/componentmocks"
	"github.com/alexmedkex/forkly-sub001/mocks/ethclientmocks"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testListener struct {
	*listener
	eth     *ethclientmocks.EthClient
	store   *componentmocks.Store
	handler *componentmocks.LogHandler
	topicA  tftypes.Bytes32
	topicB  tftypes.Bytes32
}

func newTestListener(t *testing.T, conf *tfconf.EventListenerConfig) *testListener {
	tl := &testListener{
		eth:     ethclientmocks.NewEthClient(t),
		store:   componentmocks.NewStore(t),
		handler: componentmocks.NewLogHandler(t),
		topicA:  tftypes.RandBytes32(),
		topicB:  tftypes.RandBytes32(),
	}
	conf.Retry = tfconf.RetryConfig{InitialDelay: confutil.P("1ms"), MaxDelay: confutil.P("1ms")}
	tl.handler.On("Topics").Return([]tftypes.Bytes32{tl.topicA, tl.topicB})
	tl.handler.On("Name").Return("LetterOfCredit").Maybe()
	tl.listener = newListener(context.Background(), "instruments", conf, tl.eth, tl.store, metrics.NewMetricsManager(context.Background()), tl.handler)
	return tl
}

func logAt(topic tftypes.Bytes32, block, index uint64) *ethclient.LogJSONRPC {
	return &ethclient.LogJSONRPC{
		BlockNumber: ethtypes.HexUint64(block),
		LogIndex:    ethtypes.HexUint64(index),
		Address:     tftypes.RandAddress().Address0xHex(),
		Topics:      []ethtypes.HexBytes0xPrefix{topic.Bytes()},
	}
}

func TestPollDispatchesInBlockOrder(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{BatchSize: confutil.P(10)})
	ctx := context.Background()

	first := logAt(tl.topicA, 5, 0)
	second := logAt(tl.topicB, 5, 1)
	third := logAt(tl.topicA, 7, 0)
	removed := logAt(tl.topicA, 6, 0)
	removed.Removed = true

	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(8), nil)
	tl.eth.On("GetLogs", mock.Anything, mock.MatchedBy(func(f *ethclient.LogFilter) bool {
		return f.FromBlock == 3 && f.ToBlock == 8 && len(f.Topics) == 1 && len(f.Topics[0]) == 2
	})).Return([]*ethclient.LogJSONRPC{third, second, removed, first}, nil)

	var order []*ethclient.LogJSONRPC
	tl.handler.On("HandleLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, args[1].(*ethclient.LogJSONRPC))
	}).Return(nil)
	tl.store.On("SetCheckpoint", mock.Anything, "instruments", uint64(8)).Return(nil)

	next, caughtUp, err := tl.poll(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), next)
	assert.True(t, caughtUp)
	assert.Equal(t, []*ethclient.LogJSONRPC{first, second, third}, order)
}

func TestPollBatches(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{BatchSize: confutil.P(2)})
	ctx := context.Background()

	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(100), nil)
	tl.eth.On("GetLogs", mock.Anything, mock.MatchedBy(func(f *ethclient.LogFilter) bool {
		return f.FromBlock == 10 && f.ToBlock == 11
	})).Return([]*ethclient.LogJSONRPC{}, nil)
	tl.store.On("SetCheckpoint", mock.Anything, "instruments", uint64(11)).Return(fmt.Errorf("db down"))

	next, caughtUp, err := tl.poll(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), next)
	assert.False(t, caughtUp)
}

func TestPollAheadOfHead(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(4), nil)

	next, caughtUp, err := tl.poll(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), next)
	assert.True(t, caughtUp)
}

func TestPollLedgerErrors(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	ctx := context.Background()

	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(0), fmt.Errorf("pop")).Once()
	_, _, err := tl.poll(ctx, 1)
	assert.Regexp(t, "pop", err)

	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil)
	tl.eth.On("GetLogs", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("bang"))
	next, _, err := tl.poll(ctx, 1)
	assert.Regexp(t, "bang", err)
	assert.Equal(t, uint64(1), next)
}

func TestDispatchRetriesTransientFailures(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	lg := logAt(tl.topicA, 1, 0)

	tl.handler.On("HandleLog", mock.Anything, lg).Return(fmt.Errorf("tasks down")).Twice()
	tl.handler.On("HandleLog", mock.Anything, lg).Return(nil).Once()

	err := tl.dispatch(context.Background(), tl.handler, lg)
	require.NoError(t, err)
	tl.handler.AssertNumberOfCalls(t, "HandleLog", 3)
}

func TestDispatchSkipsBadRequests(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	lg := logAt(tl.topicA, 1, 0)
	ctx := context.Background()

	tl.handler.On("HandleLog", mock.Anything, lg).Return(i18n.NewError(ctx, msgs.MsgInvalidEventData, "LetterOfCredit")).Once()

	err := tl.dispatch(ctx, tl.handler, lg)
	require.NoError(t, err)
}

func TestDispatchSkipsMissingResourceAfterBoundedAttempts(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{NotFoundAttempts: confutil.P(3)})
	lg := logAt(tl.topicA, 1, 0)
	ctx := context.Background()

	tl.handler.On("HandleLog", mock.Anything, lg).Return(i18n.NewError(ctx, msgs.MsgDocumentNotFound, "SWIFT-LC", "LC-1"))

	err := tl.dispatch(ctx, tl.handler, lg)
	require.NoError(t, err)
	tl.handler.AssertNumberOfCalls(t, "HandleLog", 3)
}

func TestDispatchMissingResourceRecovers(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	lg := logAt(tl.topicA, 1, 0)
	ctx := context.Background()

	tl.handler.On("HandleLog", mock.Anything, lg).Return(i18n.NewError(ctx, msgs.MsgDocumentNotFound, "SWIFT-LC", "LC-1")).Once()
	tl.handler.On("HandleLog", mock.Anything, lg).Return(nil).Once()

	err := tl.dispatch(ctx, tl.handler, lg)
	require.NoError(t, err)
	tl.handler.AssertNumberOfCalls(t, "HandleLog", 2)
}

func TestDispatchStopsOnCancel(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{})
	lg := logAt(tl.topicA, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())

	tl.handler.On("HandleLog", mock.Anything, lg).Run(func(args mock.Arguments) {
		cancel()
	}).Return(fmt.Errorf("tasks down"))

	err := tl.dispatch(ctx, tl.handler, lg)
	assert.Regexp(t, "TF010305", err)
}

func TestStartFromCheckpointAndStop(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{
		PollInterval: confutil.P("10ms"),
		FromBlock:    confutil.P(uint64(3)),
	})
	tl.utNotify = make(chan uint64)

	tl.store.On("GetCheckpoint", mock.Anything, "instruments").Return(confutil.P(uint64(41)), nil)
	tl.eth.On("BlockNumber", mock.Anything).Return(uint64(42), nil)
	tl.eth.On("GetLogs", mock.Anything, mock.MatchedBy(func(f *ethclient.LogFilter) bool {
		return f.FromBlock == 42 && f.ToBlock == 42
	})).Return([]*ethclient.LogJSONRPC{}, nil).Once()
	tl.store.On("SetCheckpoint", mock.Anything, "instruments", uint64(42)).Return(nil).Once()

	require.NoError(t, tl.Start())
	assert.Equal(t, uint64(43), <-tl.utNotify)
	assert.Equal(t, uint64(43), <-tl.utNotify)
	go func() {
		for range tl.utNotify {
		}
	}()
	tl.Stop()
	tl.Stop()
	close(tl.utNotify)
}

func TestStartFromConfiguredBlock(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{FromBlock: confutil.P(uint64(100))})
	tl.store.On("GetCheckpoint", mock.Anything, "instruments").Return(confutil.P(uint64(7)), nil)

	next, err := tl.restoreCheckpoint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), next)
}

func TestStartDisabled(t *testing.T) {
	tl := newTestListener(t, &tfconf.EventListenerConfig{Enabled: confutil.P(false)})
	require.NoError(t, tl.Start())
	tl.Stop()
}
