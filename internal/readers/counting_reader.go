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

package readers

import (
	"io"
	"sync/atomic"
)

// CountingReader adds the number of bytes read to count.
type CountingReader struct {
	reader io.Reader
	count  *atomic.Uint64
}

func NewCountingReader(r io.Reader, count *atomic.Uint64) *CountingReader {
	return &CountingReader{
		reader: r,
		count:  count,
	}
}

func (cr *CountingReader) Read(p []byte) (n int, err error) {
	n, err = cr.reader.Read(p)
	cr.count.Add(uint64(n))

	return n, err
}
