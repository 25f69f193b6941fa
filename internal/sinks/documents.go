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

package sinks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alexmedkex/forkly-sub001/internal/components"
	"github.com/alexmedkex/forkly-sub001/pkg/log"
	"github.com/alexmedkex/forkly-sub001/pkg/tfapi"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

type documentManager struct {
	rc *restClient
}

func NewDocumentManager(ctx context.Context, conf *tfconf.HTTPClientConfig) (components.DocumentManager, error) {
	rc, err := newRESTClient(ctx, "documents", conf)
	if err != nil {
		return nil, err
	}
	return &documentManager{rc: rc}, nil
}

func productPath(productID string) string {
	return "/products/" + url.PathEscape(productID)
}

func (dm *documentManager) ShareDocument(ctx context.Context, req *tfapi.ShareDocumentRequest) error {
	if _, err := dm.rc.do(ctx, &request{
		method: http.MethodPost,
		path:   productPath(req.ProductID) + "/send-documents",
		body:   req,
	}); err != nil {
		return err
	}
	log.L(ctx).Infof("Shared document %s with %v", req.DocumentID, req.Companies)
	return nil
}

// DeleteDocument succeeds if the document is already gone
func (dm *documentManager) DeleteDocument(ctx context.Context, productID, documentID string) error {
	_, err := dm.rc.do(ctx, &request{
		method:   http.MethodDelete,
		path:     productPath(productID) + "/documents/" + url.PathEscape(documentID),
		okStatus: []int{http.StatusNotFound},
	})
	return err
}

func (dm *documentManager) GetDocument(ctx context.Context, productID, docType string, docContext tfapi.TaskContext) (*tfapi.Document, error) {
	var docs []*tfapi.Document
	if _, err := dm.rc.do(ctx, &request{
		method: http.MethodGet,
		path:   productPath(productID) + "/documents",
		query: map[string]string{
			"type":    docType,
			"context": contextQuery(docContext),
		},
		result: &docs,
	}); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}
