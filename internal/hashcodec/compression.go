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

package hashcodec

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"

	"github.com/alexmedkex/forkly-sub001/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Compressor is applied to application data before it is hashed and embedded
// in a deploy, and reversed when the data is read back from a creation event
type Compressor interface {
	Name() string
	Compress(ctx context.Context, data []byte) ([]byte, error)
	Decompress(ctx context.Context, data []byte) ([]byte, error)
}

const (
	CompressionZlib = "zlib"
	CompressionNone = "none"
)

// DefaultMaxDecompressedSize applies when NewCompressor is given no limit
const DefaultMaxDecompressedSize = 10 * 1024 * 1024

// NewCompressor returns the compressor for the algorithm. Decompressed output
// larger than maxDecompressed bytes is rejected.
func NewCompressor(ctx context.Context, algorithm string, maxDecompressed int64) (Compressor, error) {
	if maxDecompressed <= 0 {
		maxDecompressed = DefaultMaxDecompressedSize
	}
	switch algorithm {
	case CompressionZlib, "deflate", "":
		return &zlibCompressor{maxDecompressed: maxDecompressed}, nil
	case CompressionNone:
		return noCompression{}, nil
	default:
		return nil, i18n.NewError(ctx, msgs.MsgUnsupportedCompressAlgo, algorithm)
	}
}

type zlibCompressor struct {
	maxDecompressed int64
}

func (*zlibCompressor) Name() string { return CompressionZlib }

func (*zlibCompressor) Compress(ctx context.Context, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if _, err := w.Write(data); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgCompressionFailed)
	}
	if err := w.Close(); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgCompressionFailed)
	}
	return buf.Bytes(), nil
}

func (z *zlibCompressor) Decompress(ctx context.Context, data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgDecompressionFailed)
	}
	defer r.Close()
	// one byte past the limit is enough to know it was exceeded
	out, err := io.ReadAll(io.LimitReader(r, z.maxDecompressed+1))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgDecompressionFailed)
	}
	if int64(len(out)) > z.maxDecompressed {
		return nil, i18n.NewError(ctx, msgs.MsgDecompressedTooLarge, z.maxDecompressed)
	}
	return out, nil
}

type noCompression struct{}

func (noCompression) Name() string { return CompressionNone }

func (noCompression) Compress(_ context.Context, data []byte) ([]byte, error) {
	return data, nil
}

func (noCompression) Decompress(_ context.Context, data []byte) ([]byte, error) {
	return data, nil
}
