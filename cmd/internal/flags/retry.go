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

package flags

import (
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
	"github.com/spf13/pflag"
)

// Retry holds the read retry policy shared by all cloud asset sources.
type Retry struct {
	models.Retry
}

func NewRetry() *Retry {
	return &Retry{}
}

func (f *Retry) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.IntVar(&f.MaxAttempts, "read-retry-max-attempts",
		models.DefaultRetryMaxAttempts,
		"Attempts per cloud storage request when listing or downloading assets, the first one included.\n"+
			"1 disables retries.")
	flagSet.IntVar(&f.BackoffSeconds, "read-retry-backoff",
		models.DefaultRetryBackoffSeconds,
		"Delay in seconds before the first retry of a failed read.")
	flagSet.IntVar(&f.MaxBackoffSeconds, "read-retry-max-backoff",
		models.DefaultRetryMaxBackoffSeconds,
		"Upper bound in seconds of the delay between read retries.")
	flagSet.Float64Var(&f.Multiplier, "read-retry-multiplier",
		models.DefaultRetryMultiplier,
		"Factor by which the delay grows after each failed read. Must be at least 1.")

	return flagSet
}

func (f *Retry) GetRetry() *models.Retry {
	return &f.Retry
}
