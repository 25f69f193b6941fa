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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/hashcodec"
	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticRegistry(t *testing.T) (context.Context, components.IdentityResolver) {
	ctx := context.Background()
	r, err := NewIdentityResolver(ctx, "komgo", &tfconf.RegistryConfig{
		Parties: map[string]*tfconf.RegistryPartyConfig{
			"bankA":    {DisplayName: "Bank A", TransportKey: "keyA"},
			"benef1":   {DisplayName: "Beneficiary One", TransportKey: "keyB"},
			"observer": {Member: confutil.P(false)},
		},
	})
	require.NoError(t, err)
	return ctx, r
}

func TestStaticResolution(t *testing.T) {
	ctx, r := newStaticRegistry(t)

	keys, err := r.ResolveTransportKeys(ctx, []tftypes.Bytes32{
		hashcodec.DomainHash("benef1", "komgo"),
		hashcodec.DomainHash("bankA", "komgo"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keyB", "keyA"}, keys)

	name, err := r.ResolveDisplayName(ctx, "bankA")
	require.NoError(t, err)
	assert.Equal(t, "Bank A", name)

	name, err = r.ResolveDisplayName(ctx, "observer")
	require.NoError(t, err)
	assert.Equal(t, "observer", name)

	_, err = r.ResolveDisplayName(ctx, "nobody")
	assert.Regexp(t, "TF010406", err)

	member, err := r.IsMember(ctx, "bankA")
	require.NoError(t, err)
	assert.True(t, member)

	member, err = r.IsMember(ctx, "observer")
	require.NoError(t, err)
	assert.False(t, member)

	member, err = r.IsMember(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestMissingTransportKey(t *testing.T) {
	ctx, r := newStaticRegistry(t)

	_, err := r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("observer", "komgo")})
	assert.Regexp(t, "TF010400", err)

	_, err = r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("unknown", "komgo")})
	assert.Regexp(t, "TF010400", err)

	// Registering makes the hash resolvable, but there is still no key
	require.NoError(t, r.Register(ctx, "unknown"))
	_, err = r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("unknown", "komgo")})
	assert.Regexp(t, "TF010400", err)
}

func TestRemoteLookupCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		switch {
		case req.URL.Path == "/parties/remote1":
			_ = json.NewEncoder(w).Encode(&Party{ID: "remote1", DisplayName: "Remote One", TransportKey: "keyR", Member: true})
		case req.URL.Path == "/parties" && req.URL.Query().Get("domainHash") == hashcodec.DomainHash("remote2", "komgo").String():
			_ = json.NewEncoder(w).Encode(&Party{ID: "remote2", TransportKey: "keyR2", Member: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	r, err := NewIdentityResolver(ctx, "komgo", &tfconf.RegistryConfig{
		Remote: tfconf.RemoteRegistryConfig{
			Enabled:          true,
			HTTPClientConfig: tfconf.HTTPClientConfig{URL: server.URL},
		},
	})
	require.NoError(t, err)

	name, err := r.ResolveDisplayName(ctx, "remote1")
	require.NoError(t, err)
	assert.Equal(t, "Remote One", name)
	name, err = r.ResolveDisplayName(ctx, "remote1")
	require.NoError(t, err)
	assert.Equal(t, "Remote One", name)
	assert.Equal(t, 1, calls)

	// Learned from the first lookup
	keys, err := r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("remote1", "komgo")})
	require.NoError(t, err)
	assert.Equal(t, []string{"keyR"}, keys)
	assert.Equal(t, 1, calls)

	keys, err = r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("remote2", "komgo")})
	require.NoError(t, err)
	assert.Equal(t, []string{"keyR2"}, keys)

	member, err := r.IsMember(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestRemoteLookupFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx := context.Background()
	r, err := NewIdentityResolver(ctx, "komgo", &tfconf.RegistryConfig{
		Remote: tfconf.RemoteRegistryConfig{
			Enabled:          true,
			HTTPClientConfig: tfconf.HTTPClientConfig{URL: server.URL},
		},
	})
	require.NoError(t, err)

	_, err = r.IsMember(ctx, "remote1")
	assert.Regexp(t, "TF010301", err)

	_, err = r.ResolveTransportKeys(ctx, []tftypes.Bytes32{hashcodec.DomainHash("remote1", "komgo")})
	assert.Regexp(t, "TF010301", err)
}

func TestRemoteBadURL(t *testing.T) {
	_, err := NewIdentityResolver(context.Background(), "komgo", &tfconf.RegistryConfig{
		Remote: tfconf.RemoteRegistryConfig{Enabled: true},
	})
	assert.Regexp(t, "TF010300", err)
}
