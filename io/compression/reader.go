// Copyright 2024 The sourcemaps-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compression

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	ExtGzip = ".gz"
	ExtZstd = ".zst"
)

// Extensions lists suffixes of pre-compressed assets, in lookup order.
var Extensions = []string{ExtGzip, ExtZstd}

// IsCompressed reports whether the name has a known compression suffix.
func IsCompressed(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Decompress wraps r with a decoder chosen by the name suffix.
// Names without a known suffix are returned as is.
// Closing the result closes both the decoder and r.
func Decompress(name string, r io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ExtGzip):
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorrupted, name, err)
		}

		return &reader{decoder: gzReader, r: r, name: name, closeFn: gzReader.Close}, nil
	case strings.HasSuffix(name, ExtZstd):
		zstdDecoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader for %s: %w", name, err)
		}

		return &reader{decoder: zstdDecoder, r: r, name: name, closeFn: func() error {
			zstdDecoder.Close()
			return nil
		}}, nil
	default:
		return r, nil
	}
}

type reader struct {
	decoder io.Reader
	r       io.Closer
	name    string
	closeFn func() error
}

func (cr *reader) Read(p []byte) (int, error) {
	n, err := cr.decoder.Read(p)
	if err != nil && IsCorruptedError(err) {
		return n, fmt.Errorf("%w: %s: %w", ErrCorrupted, cr.name, err)
	}

	return n, err
}

func (cr *reader) Close() error {
	if err := cr.closeFn(); err != nil {
		_ = cr.r.Close()
		return fmt.Errorf("failed to close decoder: %w", err)
	}

	return cr.r.Close()
}
