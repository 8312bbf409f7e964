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
	"fmt"
	"time"
)

const (
	DefaultRetryMaxAttempts       = 5
	DefaultRetryBackoffSeconds    = 1
	DefaultRetryMaxBackoffSeconds = 30
	DefaultRetryMultiplier        = 2
)

// Retry controls how failed asset reads from cloud storage are retried.
// One policy is shared by S3, GCS and Azure, only one of them is used per run.
// Uploads to Rollbar are never retried.
type Retry struct {
	// Attempts per request, the first one included. 1 disables retries.
	MaxAttempts int
	// Delay before the first retry, in seconds.
	BackoffSeconds int
	// Upper bound of a single delay, in seconds.
	MaxBackoffSeconds int
	// Growth factor of the delay between attempts.
	Multiplier float64
}

// NewDefaultRetry returns the retry policy used when nothing is configured.
func NewDefaultRetry() *Retry {
	return &Retry{
		MaxAttempts:       DefaultRetryMaxAttempts,
		BackoffSeconds:    DefaultRetryBackoffSeconds,
		MaxBackoffSeconds: DefaultRetryMaxBackoffSeconds,
		Multiplier:        DefaultRetryMultiplier,
	}
}

// Validate internal validation for struct params.
func (r *Retry) Validate() error {
	if r == nil {
		return fmt.Errorf("retry policy is required")
	}

	if r.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", r.MaxAttempts)
	}

	if r.BackoffSeconds < 0 {
		return fmt.Errorf("retry backoff must be non-negative")
	}

	if r.MaxBackoffSeconds < r.BackoffSeconds {
		return fmt.Errorf("retry max backoff %ds is less than backoff %ds", r.MaxBackoffSeconds, r.BackoffSeconds)
	}

	if r.Multiplier < 1 {
		return fmt.Errorf("retry multiplier must be greater than or equal to 1")
	}

	return nil
}

func (r *Retry) Backoff() time.Duration {
	return time.Duration(r.BackoffSeconds) * time.Second
}

func (r *Retry) MaxBackoff() time.Duration {
	return time.Duration(r.MaxBackoffSeconds) * time.Second
}
