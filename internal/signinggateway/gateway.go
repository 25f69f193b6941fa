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

package signinggateway

import (
	"context"
	"net/http"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/alexmedkex/forkly-sub001/pkg/tfresty"
	"github.com/alexmedkex/forkly-sub001/pkg/tftypes"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

type gateway struct {
	client *resty.Client
}

type keyResponse struct {
	Address *tftypes.EthAddress `json:"address"`
}

type signRequest struct {
	Payload tftypes.HexBytes `json:"payload"`
}

type signResponse struct {
	Signature tftypes.HexBytes `json:"signature"`
}

type broadcastResponse struct {
	TransactionHash *tftypes.Bytes32 `json:"transactionHash"`
}

func NewSigningGateway(ctx context.Context, conf *tfconf.HTTPClientConfig) (components.SigningGateway, error) {
	client, err := tfresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &gateway{client: client}, nil
}

func (g *gateway) post(ctx context.Context, path string, body, result interface{}) error {
	req := g.client.R().SetContext(ctx).SetResult(result)
	if body != nil {
		req = req.SetBody(body)
	}
	res, err := req.Post(path)
	if err != nil || !res.IsSuccess() {
		return tfresty.WrapRestErr(ctx, tfresty.TargetOf(http.MethodPost, path), res, err)
	}
	return nil
}

func (g *gateway) ObtainKey(ctx context.Context) (tftypes.EthAddress, error) {
	var res keyResponse
	if err := g.post(ctx, "/key", nil, &res); err != nil {
		return tftypes.EthAddress{}, err
	}
	if res.Address == nil {
		return tftypes.EthAddress{}, i18n.NewError(ctx, msgs.MsgSigningGatewayEmptyResp, "address")
	}
	return *res.Address, nil
}

func (g *gateway) Sign(ctx context.Context, payload []byte) ([]byte, error) {
	var res signResponse
	if err := g.post(ctx, "/sign", &signRequest{Payload: payload}, &res); err != nil {
		return nil, err
	}
	if len(res.Signature) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgSigningGatewayEmptyResp, "signature")
	}
	return res.Signature, nil
}

func (g *gateway) Broadcast(ctx context.Context, tx *components.BroadcastRequest) (tftypes.Bytes32, error) {
	var res broadcastResponse
	if err := g.post(ctx, "/transaction", tx, &res); err != nil {
		return tftypes.Bytes32{}, err
	}
	if res.TransactionHash == nil {
		return tftypes.Bytes32{}, i18n.NewError(ctx, msgs.MsgSigningGatewayEmptyResp, "transactionHash")
	}
	log.L(ctx).Infof("Broadcast transaction %s from %s (privateFor=%d)", res.TransactionHash, tx.From, len(tx.PrivateFor))
	return *res.TransactionHash, nil
}
