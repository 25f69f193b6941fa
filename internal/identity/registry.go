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

package identity

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/cache"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tfresty"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Party is a registry entry, from configuration or from the remote company registry
type Party struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	TransportKey string `json:"transportKey"`
	Member       bool   `json:"member"`
}

type registry struct {
	namespace string
	static    map[string]*Party
	remote    *resty.Client
	cache     cache.Cache[string, *Party]

	hashLock sync.RWMutex
	byHash   map[tftypes.Bytes32]string
}

func NewIdentityResolver(ctx context.Context, namespace string, conf *tfconf.RegistryConfig) (components.IdentityResolver, error) {
	r := &registry{
		namespace: namespace,
		static:    make(map[string]*Party, len(conf.Parties)),
		byHash:    make(map[tftypes.Bytes32]string),
		cache:     cache.NewCache[string, *Party](&conf.Cache, tfconf.RegistryCacheDefaults),
	}
	for id, p := range conf.Parties {
		member := true
		if p.Member != nil {
			member = *p.Member
		}
		r.static[id] = &Party{
			ID:           id,
			DisplayName:  p.DisplayName,
			TransportKey: p.TransportKey,
			Member:       member,
		}
		r.byHash[hashcodec.DomainHash(id, namespace)] = id
	}
	if conf.Remote.Enabled {
		client, err := tfresty.New(ctx, &conf.Remote.HTTPClientConfig)
		if err != nil {
			return nil, err
		}
		r.remote = client
	}
	log.L(ctx).Infof("Registry initialized with %d static parties (remote=%t)", len(r.static), r.remote != nil)
	return r, nil
}

// Register makes the domain hash of a party resolvable
func (r *registry) Register(ctx context.Context, partyID string) error {
	r.hashLock.Lock()
	defer r.hashLock.Unlock()
	r.byHash[hashcodec.DomainHash(partyID, r.namespace)] = partyID
	return nil
}

func (r *registry) getParty(ctx context.Context, partyID string) (*Party, error) {
	if p := r.static[partyID]; p != nil {
		return p, nil
	}
	if p, ok := r.cache.Get(partyID); ok {
		return p, nil
	}
	if r.remote == nil {
		return nil, nil
	}
	return r.queryRemote(ctx, "/parties/"+url.PathEscape(partyID), nil)
}

func (r *registry) getPartyByHash(ctx context.Context, hash tftypes.Bytes32) (*Party, error) {
	r.hashLock.RLock()
	partyID, known := r.byHash[hash]
	r.hashLock.RUnlock()
	if known {
		return r.getParty(ctx, partyID)
	}
	if r.remote == nil {
		return nil, nil
	}
	return r.queryRemote(ctx, "/parties", map[string]string{"domainHash": hash.String()})
}

func (r *registry) queryRemote(ctx context.Context, path string, query map[string]string) (*Party, error) {
	var party Party
	res, err := r.remote.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&party).
		Get(path)
	if err == nil && res.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err != nil || !res.IsSuccess() {
		return nil, tfresty.WrapRestErr(ctx, tfresty.TargetOf(http.MethodGet, path), res, err)
	}
	if party.ID == "" {
		return nil, nil
	}
	r.cache.Set(party.ID, &party)
	_ = r.Register(ctx, party.ID)
	return &party, nil
}

func (r *registry) ResolveTransportKeys(ctx context.Context, partyHashes []tftypes.Bytes32) ([]string, error) {
	keys := make([]string, 0, len(partyHashes))
	for _, hash := range partyHashes {
		p, err := r.getPartyByHash(ctx, hash)
		if err != nil {
			return nil, err
		}
		if p == nil || p.TransportKey == "" {
			return nil, i18n.NewError(ctx, msgs.MsgMissingParty, hash)
		}
		keys = append(keys, p.TransportKey)
	}
	return keys, nil
}

func (r *registry) ResolveDisplayName(ctx context.Context, partyID string) (string, error) {
	p, err := r.getParty(ctx, partyID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", i18n.NewError(ctx, msgs.MsgPartyNotFound, partyID)
	}
	if p.DisplayName == "" {
		return partyID, nil
	}
	return p.DisplayName, nil
}

func (r *registry) IsMember(ctx context.Context, partyID string) (bool, error) {
	p, err := r.getParty(ctx, partyID)
	if err != nil || p == nil {
		return false, err
	}
	return p.Member, nil
}
