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

package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// ToolName is attached to every record produced by NewLogger.
const ToolName = "upload-rollbar-sourcemaps"

// NewLogger returns a logger writing to w.
// level is honoured only in verbose mode, info is used otherwise.
func NewLogger(w io.Writer, level string, isVerbose, isJSON bool) (*slog.Logger, error) {
	loggerOpt := &slog.HandlerOptions{Level: slog.LevelInfo}

	if isVerbose {
		var logLvl slog.Level

		if err := logLvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}

		loggerOpt.Level = logLvl
	}

	var handler slog.Handler = slog.NewTextHandler(w, loggerOpt)
	if isJSON {
		handler = slog.NewJSONHandler(w, loggerOpt)
	}

	return slog.New(handler).With(slog.String("tool", ToolName)), nil
}
