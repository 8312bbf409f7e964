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
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/releasetools/sourcemaps-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	fn()

	// Close writer and restore stdout
	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	return buf.String()
}

func testStats() *models.UploadStats {
	stats := models.NewUploadStats()
	stats.Start()
	stats.SetPairs(3)
	stats.IncUploaded()
	stats.IncUploaded()
	stats.IncFailed()
	stats.BytesSent.Add(4096)
	stats.Stop()

	return stats
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "Empty key",
			key:      "",
			expected: ":" + strings.Repeat(" ", 21),
		},
		{
			name:     "Short key",
			key:      "Key",
			expected: "Key:" + strings.Repeat(" ", 18),
		},
		{
			name:     "Exact 20 character key",
			key:      "12345678901234567890",
			expected: "12345678901234567890:" + strings.Repeat(" ", 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, indent(tt.key))
		})
	}
}

func TestPrintUploadReport(t *testing.T) {
	stats := testStats()

	output := captureStdout(t, func() {
		ReportUpload(stats, "1a2b3c4", false, nil)
	})

	assert.True(t, strings.HasPrefix(output, headerUploadReport+"\n"+strings.Repeat("-", len(headerUploadReport))))
	assert.Contains(t, output, "Version:"+strings.Repeat(" ", 21-len("Version"))+"1a2b3c4")
	assert.Contains(t, output, "Source Maps Found:"+strings.Repeat(" ", 21-len("Source Maps Found"))+"3")
	assert.Contains(t, output, "Uploaded:"+strings.Repeat(" ", 21-len("Uploaded"))+"2")
	assert.Contains(t, output, "Failed:"+strings.Repeat(" ", 21-len("Failed"))+"1")
	assert.Contains(t, output, "Bytes Sent:"+strings.Repeat(" ", 21-len("Bytes Sent"))+"4096")
	assert.Contains(t, output, "Start Time")
	assert.Contains(t, output, "Duration")
}

func TestLogUploadReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ReportUpload(testStats(), "1a2b3c4", true, logger)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "upload report", record["msg"])
	assert.Equal(t, "1a2b3c4", record["version"])
	assert.EqualValues(t, 3, record["source_maps_found"])
	assert.EqualValues(t, 2, record["uploaded"])
	assert.EqualValues(t, 1, record["failed"])
	assert.EqualValues(t, 4096, record["bytes_sent"])
}
