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

package storage

import (
	"io"
	"log/slog"
)

type Options struct {
	// Logger receives debug records about listings and opened objects.
	// Apply sets a discarding logger when none is given.
	Logger *slog.Logger
	// SkipDirCheck, if true, the assets directory or bucket won't be checked on reader creation.
	SkipDirCheck bool
	// WithNestedDir determines whether objects in nested directories are listed.
	// Nested objects are listed with their path relative to the listed directory.
	// Default: false
	WithNestedDir bool
}

type Opt func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Opt {
	return func(r *Options) {
		r.Logger = logger
	}
}

// WithSkipDirCheck adds skip dir check flag.
// Which means that the assets directory won't be checked for existence.
func WithSkipDirCheck() Opt {
	return func(r *Options) {
		r.SkipDirCheck = true
	}
}

// WithNestedDir adds WithNestedDir = true parameter. That means that we won't skip nested folders.
func WithNestedDir() Opt {
	return func(r *Options) {
		r.WithNestedDir = true
	}
}

// Apply returns Options with all opts applied.
func Apply(opts ...Opt) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
