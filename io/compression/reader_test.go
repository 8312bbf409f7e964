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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const sourceMap = `{"version":3,"file":"app.js","sources":["app.ts"],"mappings":"AAAA"}`

func gzipped(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func zstded(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"app.map.gz", gzipped(t, sourceMap)},
		{"app.map.zst", zstded(t, sourceMap)},
		{"app.map", []byte(sourceMap)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &closeCounter{Reader: bytes.NewReader(tt.data)}
			r, err := Decompress(tt.name, src)
			require.NoError(t, err)

			content, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, sourceMap, string(content))

			require.NoError(t, r.Close())
			require.Equal(t, 1, src.closed)
		})
	}
}

func TestDecompress_Corrupted(t *testing.T) {
	t.Parallel()

	_, err := Decompress("app.map.gz", io.NopCloser(strings.NewReader("not gzip at all")))
	require.ErrorIs(t, err, ErrCorrupted)

	r, err := Decompress("app.map.zst", io.NopCloser(strings.NewReader("not zstd at all")))
	if err == nil {
		_, err = io.ReadAll(r)
	}
	require.Error(t, err)
}

func TestIsCompressed(t *testing.T) {
	t.Parallel()

	require.True(t, IsCompressed("app.map.gz"))
	require.True(t, IsCompressed("app.map.zst"))
	require.False(t, IsCompressed("app.map"))
	require.False(t, IsCompressed("app.gzip"))
}
