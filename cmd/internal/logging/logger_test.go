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
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		isVerbose bool
		debug     bool
	}{
		{name: "verbose debug", level: "debug", isVerbose: true, debug: true},
		{name: "verbose warn", level: "warn", isVerbose: true, debug: false},
		{name: "quiet ignores level", level: "debug", isVerbose: false, debug: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := NewLogger(&bytes.Buffer{}, tt.level, tt.isVerbose, false)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, logger.Handler().Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(&bytes.Buffer{}, "loud", true, false)
	require.ErrorContains(t, err, `invalid log level "loud"`)

	// Level is not parsed outside verbose mode.
	_, err = NewLogger(&bytes.Buffer{}, "loud", false, false)
	require.NoError(t, err)
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "info", true, false)
	require.NoError(t, err)

	logger.Info("uploading source map", slog.String("script", "app.js"))

	assert.Contains(t, buf.String(), `msg="uploading source map"`)
	assert.Contains(t, buf.String(), "tool="+ToolName)
	assert.Contains(t, buf.String(), "script=app.js")
}

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "info", false, true)
	require.NoError(t, err)

	logger.Info("reported file", slog.Int("status", 200))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "reported file", record["msg"])
	assert.Equal(t, ToolName, record["tool"])
	assert.EqualValues(t, 200, record["status"])
}
