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

package componentmgr

import (
	"context"

	"github.com/alexmedkex/forkly-sub001/internal/amendmentmgr"
	"github.com/alexmedkex/forkly-sub001/internal/api"
	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/contracts"
	"github.com/alexmedkex/forkly-sub001/internal/eventlistener"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/identity"
	"github.com/alexmedkex/forkly-sub001/internal/lcmgr"
	"github.com/alexmedkex/forkly-sub001/internal/metrics"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/internal/signinggateway"
	"github.com/alexmedkex/forkly-sub001/internal/sinks"
	"github.com/alexmedkex/forkly-sub001/internal/store"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/ethclient"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/metricsserver"
	"github.com/alexmedkex/forkly-sub001/pkg/persistence"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const listenerName = "instruments"

type ComponentManager interface {
	components.AllComponents
	Init() error
	StartManagers() error
	CompleteStart() error
	Stop()
}

type componentManager struct {
	bgCtx context.Context
	conf  *tfconf.NodeConfig
	// pre-init
	persistence     persistence.Persistence
	store           components.Store
	ethClient       ethclient.EthClient
	contracts       *contracts.Bindings
	compressor      hashcodec.Compressor
	metricsManager  metrics.Metrics
	metricsServer   metricsserver.MetricsServer
	signingGateway  components.SigningGateway
	identity        components.IdentityResolver
	taskManager     components.TaskManager
	documentManager components.DocumentManager
	timerManager    components.TimerManager
	bridge          components.Bridge
	// managers
	lcManager        components.InstrumentManager
	sblcManager      components.InstrumentManager
	amendmentManager components.AmendmentManager
	// outer surfaces, started last
	eventListener eventlistener.EventListener
	apiServer     api.Server
	// keep track of everything we started
	started map[string]stoppable
	opened  map[string]closeable
}

type stoppable interface {
	Stop()
}

type closeable interface {
	Close()
}

func NewComponentManager(bgCtx context.Context, conf *tfconf.NodeConfig) ComponentManager {
	log.InitConfig(&conf.Log)
	return &componentManager{
		bgCtx:   bgCtx,
		conf:    conf,
		started: make(map[string]stoppable),
		opened:  make(map[string]closeable),
	}
}

func (cm *componentManager) Init() (err error) {
	if cm.conf.Node.PartyID == "" {
		return i18n.NewError(cm.bgCtx, msgs.MsgConfigNodeIDMissing)
	}
	cm.bgCtx = log.WithLogField(cm.bgCtx, "party", cm.conf.Node.PartyID)

	cm.persistence, err = persistence.NewPersistence(cm.bgCtx, &cm.conf.DB)
	err = cm.addIfOpened("database", cm.persistence, err)
	if err == nil {
		cm.store = store.NewStore(cm.persistence)
		cm.ethClient, err = ethclient.NewEthClient(cm.bgCtx, &cm.conf.Blockchain)
		err = cm.wrapIfErr(err, "ethclient")
	}
	if err == nil {
		cm.contracts, err = contracts.NewBindings(cm.bgCtx, &cm.conf.Contracts, cm.ethClient)
		err = cm.wrapIfErr(err, "contracts")
	}
	if err == nil {
		compression := &cm.conf.Compression
		cm.compressor, err = hashcodec.NewCompressor(cm.bgCtx,
			confutil.StringNotEmpty(compression.Algorithm, *tfconf.CompressionDefaults.Algorithm),
			confutil.ByteSize(compression.MaxDecompressedSize, 1024, *tfconf.CompressionDefaults.MaxDecompressedSize))
		err = cm.wrapIfErr(err, "compression")
	}
	if err == nil {
		cm.metricsManager = metrics.NewMetricsManager(cm.bgCtx)
		cm.metricsServer, err = metricsserver.NewMetricsServer(cm.bgCtx, cm.metricsManager.Registry(), &cm.conf.Metrics)
		err = cm.wrapIfErr(err, "metrics_server")
	}
	if err == nil {
		cm.signingGateway, err = signinggateway.NewSigningGateway(cm.bgCtx, &cm.conf.SigningGateway)
		err = cm.wrapIfErr(err, "signing_gateway")
	}
	if err == nil {
		cm.identity, err = identity.NewIdentityResolver(cm.bgCtx, cm.Namespace(), &cm.conf.Registry)
		err = cm.wrapIfErr(err, "identity_resolver")
	}
	if err == nil {
		err = cm.initSinks()
	}

	if err == nil {
		cm.lcManager = lcmgr.NewLCManager(cm.bgCtx, &cm.conf.Instruments)
		cm.sblcManager = lcmgr.NewSBLCManager(cm.bgCtx, &cm.conf.Instruments)
		cm.amendmentManager = amendmentmgr.NewAmendmentManager(cm.bgCtx, &cm.conf.Instruments)
		err = cm.postInit()
	}

	if err == nil {
		cm.eventListener = eventlistener.NewEventListener(cm.bgCtx, listenerName, &cm.conf.EventListener, cm.ethClient, cm.store, cm.metricsManager,
			cm.lcManager, cm.sblcManager, cm.amendmentManager)
		apiConf := cm.conf.API
		if apiConf.Port == nil {
			apiConf.Port = tfconf.APIDefaults.Port
		}
		cm.apiServer, err = api.NewServer(cm.bgCtx, &apiConf, cm)
		err = cm.wrapIfErr(err, "api")
	}
	return err
}

func (cm *componentManager) initSinks() (err error) {
	services := &cm.conf.Services
	cm.taskManager, err = sinks.NewTaskManager(cm.bgCtx, &services.Tasks)
	err = cm.wrapIfErr(err, "tasks")
	if err == nil {
		cm.documentManager, err = sinks.NewDocumentManager(cm.bgCtx, &services.Documents)
		err = cm.wrapIfErr(err, "documents")
	}
	if err == nil {
		cm.timerManager, err = sinks.NewTimerManager(cm.bgCtx, &services.Timers)
		err = cm.wrapIfErr(err, "timers")
	}
	if err == nil {
		cm.bridge, err = sinks.NewBridge(cm.bgCtx, &services.Bridge)
		err = cm.wrapIfErr(err, "bridge")
	}
	return err
}

func (cm *componentManager) postInit() (err error) {
	for name, m := range cm.managers() {
		if err == nil {
			err = cm.wrapIfErr(m.PostInit(cm), name)
		}
	}
	return err
}

func (cm *componentManager) managers() map[string]components.ManagerLifecycle {
	return map[string]components.ManagerLifecycle{
		"lc_manager":        cm.lcManager,
		"sblc_manager":      cm.sblcManager,
		"amendment_manager": cm.amendmentManager,
	}
}

func (cm *componentManager) StartManagers() (err error) {
	for name, m := range cm.managers() {
		if err == nil {
			err = cm.addIfStarted(name, m, m.Start())
		}
	}
	return err
}

// CompleteStart opens the outer surfaces once every manager is running
func (cm *componentManager) CompleteStart() error {
	err := cm.eventListener.Start()
	err = cm.addIfStarted("event_listener", cm.eventListener, err)

	if err == nil {
		err = cm.apiServer.Start()
		err = cm.addIfStarted("api_server", cm.apiServer, err)
	}

	if err == nil {
		err = cm.metricsServer.Start()
		err = cm.addIfStarted("metrics_server", cm.metricsServer, err)
	}

	if err == nil {
		log.L(cm.bgCtx).Infof("Startup complete")
	}
	return err
}

func (cm *componentManager) wrapIfErr(err error, desc string) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, msgs.MsgComponentInitError, desc)
	}
	return nil
}

func (cm *componentManager) addIfStarted(desc string, c stoppable, err error) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, msgs.MsgComponentStartError, desc)
	}
	cm.started[desc] = c
	return nil
}

func (cm *componentManager) addIfOpened(desc string, c closeable, err error) error {
	if err != nil {
		return i18n.WrapError(cm.bgCtx, err, msgs.MsgComponentInitError, desc)
	}
	cm.opened[desc] = c
	return nil
}

func (cm *componentManager) Stop() {
	log.L(cm.bgCtx).Info("Stopping")
	// the listener goes first, so no ledger log is dispatched to a stopped manager
	if l, ok := cm.started["event_listener"]; ok {
		l.Stop()
		delete(cm.started, "event_listener")
	}
	for name, c := range cm.started {
		log.L(cm.bgCtx).Infof("Stopping %s", name)
		c.Stop()
		log.L(cm.bgCtx).Debugf("Stopped %s", name)
	}
	for name, c := range cm.opened {
		log.L(cm.bgCtx).Infof("Closing %s", name)
		c.Close()
	}
	log.L(cm.bgCtx).Debug("Stopped")
}

func (cm *componentManager) Persistence() persistence.Persistence {
	return cm.persistence
}

func (cm *componentManager) EthClient() ethclient.EthClient {
	return cm.ethClient
}

func (cm *componentManager) Contracts() *contracts.Bindings {
	return cm.contracts
}

func (cm *componentManager) Compressor() hashcodec.Compressor {
	return cm.compressor
}

func (cm *componentManager) Metrics() metrics.Metrics {
	return cm.metricsManager
}

func (cm *componentManager) Store() components.Store {
	return cm.store
}

func (cm *componentManager) SigningGateway() components.SigningGateway {
	return cm.signingGateway
}

func (cm *componentManager) IdentityResolver() components.IdentityResolver {
	return cm.identity
}

func (cm *componentManager) TaskManager() components.TaskManager {
	return cm.taskManager
}

func (cm *componentManager) DocumentManager() components.DocumentManager {
	return cm.documentManager
}

func (cm *componentManager) TimerManager() components.TimerManager {
	return cm.timerManager
}

func (cm *componentManager) Bridge() components.Bridge {
	return cm.bridge
}

func (cm *componentManager) SelfPartyID() string {
	return cm.conf.Node.PartyID
}

func (cm *componentManager) Namespace() string {
	return confutil.StringNotEmpty(cm.conf.Node.Namespace, *tfconf.NodeIdentityDefaults.Namespace)
}

func (cm *componentManager) LCManager() components.InstrumentManager {
	return cm.lcManager
}

func (cm *componentManager) SBLCManager() components.InstrumentManager {
	return cm.sblcManager
}

func (cm *componentManager) AmendmentManager() components.AmendmentManager {
	return cm.amendmentManager
}
