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
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/retry"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

type EventListener interface {
	Start() error
	Stop()
}

// Polls the ledger for the logs of every registered handler, from the block
// after the persisted checkpoint up to the head of the chain. Logs are
// dispatched in block order, and the checkpoint moves once a whole batch of
// blocks has been dispatched.
//
// A failing handler is retried in place so later logs never overtake it.
// Handler failures that report a bad request are logged and skipped, as
// replaying the same log cannot succeed. A missing referenced resource is
// retried a bounded number of times before the log is skipped the same way.
type listener struct {
	bgCtx        context.Context
	name         string
	ethClient    ethclient.EthClient
	store        components.Store
	metrics      metrics.Metrics
	handlers     map[tftypes.Bytes32][]components.LogHandler
	topics       []ethtypes.HexBytes0xPrefix
	retry        *retry.Retry
	enabled      bool
	pollInterval time.Duration
	batchSize    uint64
	fromBlock    uint64
	notFoundMax  int

	stateLock sync.Mutex
	cancelCtx context.CancelFunc
	done      chan struct{}
	utNotify  chan uint64
}

func NewEventListener(bgCtx context.Context, name string, conf *tfconf.EventListenerConfig, ethClient ethclient.EthClient, store components.Store, m metrics.Metrics, handlers ...components.LogHandler) EventListener {
	return newListener(bgCtx, name, conf, ethClient, store, m, handlers...)
}

func newListener(bgCtx context.Context, name string, conf *tfconf.EventListenerConfig, ethClient ethclient.EthClient, store components.Store, m metrics.Metrics, handlers ...components.LogHandler) *listener {
	def := tfconf.EventListenerDefaults
	l := &listener{
		bgCtx:        log.WithLogField(bgCtx, "role", "event_listener"),
		name:         name,
		ethClient:    ethClient,
		store:        store,
		metrics:      m,
		handlers:     make(map[tftypes.Bytes32][]components.LogHandler),
		retry:        retry.NewRetry(&conf.Retry),
		enabled:      confutil.Bool(conf.Enabled, *def.Enabled),
		pollInterval: confutil.DurationMin(conf.PollInterval, 10*time.Millisecond, *def.PollInterval),
		batchSize:    uint64(confutil.IntMin(conf.BatchSize, 1, *def.BatchSize)),
		fromBlock:    *def.FromBlock,
		notFoundMax:  confutil.IntMin(conf.NotFoundAttempts, 1, *def.NotFoundAttempts),
	}
	if conf.FromBlock != nil {
		l.fromBlock = *conf.FromBlock
	}
	for _, h := range handlers {
		for _, topic := range h.Topics() {
			if _, known := l.handlers[topic]; !known {
				l.topics = append(l.topics, ethtypes.HexBytes0xPrefix(topic.Bytes()))
			}
			l.handlers[topic] = append(l.handlers[topic], h)
		}
	}
	return l
}

func (l *listener) Start() error {
	if !l.enabled || len(l.topics) == 0 {
		log.L(l.bgCtx).Infof("Event listener %s disabled", l.name)
		return nil
	}
	l.Stop()
	l.stateLock.Lock()
	defer l.stateLock.Unlock()
	runCtx, cancelCtx := context.WithCancel(l.bgCtx)
	l.cancelCtx = cancelCtx
	l.done = make(chan struct{})
	go l.run(runCtx, l.done)
	return nil
}

func (l *listener) Stop() {
	l.stateLock.Lock()
	cancelCtx := l.cancelCtx
	done := l.done
	l.cancelCtx = nil
	l.done = nil
	l.stateLock.Unlock()

	if cancelCtx != nil {
		cancelCtx()
	}
	if done != nil {
		<-done
	}
}

func (l *listener) restoreCheckpoint(ctx context.Context) (next uint64, err error) {
	err = l.retry.Do(ctx, func(attempt int) (bool, error) {
		checkpoint, err := l.store.GetCheckpoint(ctx, l.name)
		if err != nil {
			return true, err
		}
		next = l.fromBlock
		if checkpoint != nil && *checkpoint+1 > next {
			next = *checkpoint + 1
		}
		return true, nil
	})
	return next, err
}

func (l *listener) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	next, err := l.restoreCheckpoint(ctx)
	if err != nil {
		log.L(ctx).Infof("Event listener %s stopped before restoring checkpoint: %s", l.name, err)
		return
	}
	log.L(ctx).Infof("Event listener %s starting from block %d", l.name, next)

	for {
		var caughtUp bool
		err := l.retry.Do(ctx, func(attempt int) (bool, error) {
			var err error
			next, caughtUp, err = l.poll(ctx, next)
			return true, err
		})
		if err != nil {
			log.L(ctx).Infof("Event listener %s stopped: %s", l.name, err)
			return
		}
		if l.utNotify != nil {
			l.utNotify <- next
		}
		if caughtUp {
			select {
			case <-time.After(l.pollInterval):
			case <-ctx.Done():
				log.L(ctx).Infof("Event listener %s stopped", l.name)
				return
			}
		}
	}
}

// poll dispatches the logs of one batch of blocks starting at next, returning
// the block to poll from next time
func (l *listener) poll(ctx context.Context, next uint64) (uint64, bool, error) {
	head, err := l.ethClient.BlockNumber(ctx)
	if err != nil {
		return next, false, err
	}
	if next > head {
		return next, true, nil
	}
	to := next + l.batchSize - 1
	if to > head {
		to = head
	}

	logs, err := l.ethClient.GetLogs(ctx, &ethclient.LogFilter{
		FromBlock: ethtypes.HexUint64(next),
		ToBlock:   ethtypes.HexUint64(to),
		Topics:    [][]ethtypes.HexBytes0xPrefix{l.topics},
	})
	if err != nil {
		return next, false, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].LogIndex < logs[j].LogIndex
	})

	dispatched := 0
	for _, lg := range logs {
		if lg.Removed || len(lg.Topics) == 0 {
			continue
		}
		for _, h := range l.handlers[tftypes.NewBytes32FromSlice(lg.Topics[0])] {
			if err := l.dispatch(ctx, h, lg); err != nil {
				return next, false, err
			}
			dispatched++
		}
	}
	l.metrics.LogsProcessed(l.name, dispatched)

	if err := l.store.SetCheckpoint(ctx, l.name, to); err != nil {
		// the batch is replayed after a restart, which the handlers tolerate
		log.L(ctx).Errorf("Failed to checkpoint block %d: %s", to, err)
		l.metrics.BookkeepingFailure("checkpoint")
	}
	log.L(ctx).Debugf("Dispatched %d logs from blocks %d-%d (head=%d)", dispatched, next, to, head)
	return to + 1, to == head, nil
}

func (l *listener) dispatch(ctx context.Context, h components.LogHandler, lg *ethclient.LogJSONRPC) error {
	ctx = log.WithLogField(ctx, "block", strconv.FormatUint(uint64(lg.BlockNumber), 10))
	return l.retry.Do(ctx, func(attempt int) (bool, error) {
		err := h.HandleLog(ctx, lg)
		if err == nil {
			return false, nil
		}
		status := errorStatus(err)
		if status == http.StatusNotFound && attempt < l.notFoundMax {
			log.L(ctx).Warnf("Log %d of tx %s references a missing resource (attempt=%d): %s", lg.LogIndex, lg.TransactionHash, attempt, err)
			return true, err
		}
		if status == http.StatusBadRequest || status == http.StatusNotFound {
			log.L(ctx).Errorf("Skipping log %d of tx %s rejected by %s: %s", lg.LogIndex, lg.TransactionHash, h.Name(), err)
			l.metrics.BookkeepingFailure("log")
			return false, nil
		}
		return true, err
	})
}

func errorStatus(err error) int {
	var ffe i18n.FFError
	if errors.As(err, &ffe) {
		return ffe.HTTPStatus()
	}
	return http.StatusInternalServerError
}
