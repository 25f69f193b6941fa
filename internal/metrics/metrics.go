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

package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tradeledger"

type Metrics interface {
	Registry() *prometheus.Registry
	// LedgerTransaction counts deploys and invocations by contract, operation and outcome
	LedgerTransaction(contract, operation string, err error)
	TransitionObserved(instrumentType, state string)
	LogsProcessed(listener string, count int)
	BookkeepingFailure(kind string)
}

type metricsManager struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	logs         *prometheus.CounterVec
	bookkeeping  *prometheus.CounterVec
}

func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_transactions_total",
			Help:      "Ledger transactions submitted through the signing gateway",
		}, []string{"contract", "operation", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transitions_total",
			Help:      "Instrument state transitions observed on the ledger",
		}, []string{"type", "state"}),
		logs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_logs_total",
			Help:      "Ledger logs dispatched by the event listener",
		}, []string{"listener"}),
		bookkeeping: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bookkeeping_failures_total",
			Help:      "Best-effort local updates that failed and were skipped",
		}, []string{"kind"}),
	}
	mm.registry.MustRegister(mm.transactions, mm.transitions, mm.logs, mm.bookkeeping)
	return mm
}

func (mm *metricsManager) Registry() *prometheus.Registry {
	return mm.registry
}

func (mm *metricsManager) LedgerTransaction(contract, operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	mm.transactions.With(prometheus.Labels{"contract": contract, "operation": operation, "outcome": outcome}).Inc()
}

func (mm *metricsManager) TransitionObserved(instrumentType, state string) {
	mm.transitions.With(prometheus.Labels{"type": instrumentType, "state": state}).Inc()
}

func (mm *metricsManager) LogsProcessed(listener string, count int) {
	mm.logs.With(prometheus.Labels{"listener": listener}).Add(float64(count))
}

func (mm *metricsManager) BookkeepingFailure(kind string) {
	mm.bookkeeping.With(prometheus.Labels{"kind": kind}).Inc()
}
