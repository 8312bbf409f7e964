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

package models

import (
	"sync/atomic"
	"time"
)

// UploadStats holds the counters of a single upload batch.
// Counters are safe for concurrent use by upload tasks.
type UploadStats struct {
	start    time.Time
	duration time.Duration
	// The number of script/map pairs found in the assets directory.
	pairs atomic.Uint64
	// The number of source maps accepted by Rollbar.
	uploaded atomic.Uint64
	// The number of pairs that failed.
	failed atomic.Uint64
	// The total number of source map bytes sent.
	BytesSent atomic.Uint64
}

// NewUploadStats returns empty stats.
func NewUploadStats() *UploadStats {
	return &UploadStats{}
}

func (s *UploadStats) Start() {
	s.start = time.Now()
}

func (s *UploadStats) Stop() {
	if s.duration == 0 {
		s.duration = time.Since(s.start)
	}
}

func (s *UploadStats) GetStartTime() time.Time {
	return s.start
}

func (s *UploadStats) GetDuration() time.Duration {
	return s.duration
}

func (s *UploadStats) SetPairs(num uint64) {
	s.pairs.Store(num)
}

func (s *UploadStats) GetPairs() uint64 {
	return s.pairs.Load()
}

func (s *UploadStats) IncUploaded() {
	s.uploaded.Add(1)
}

func (s *UploadStats) GetUploaded() uint64 {
	return s.uploaded.Load()
}

func (s *UploadStats) IncFailed() {
	s.failed.Add(1)
}

func (s *UploadStats) GetFailed() uint64 {
	return s.failed.Load()
}

func (s *UploadStats) GetBytesSent() uint64 {
	return s.BytesSent.Load()
}
