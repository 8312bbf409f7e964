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
	"log/slog"
	"strings"
	"time"

	"github.com/releasetools/sourcemaps-go/models"
)

const headerUploadReport = "Upload report"

// ReportUpload prints the upload report.
// if isJSON is true, it prints the report in JSON format, but logger must be passed
func ReportUpload(stats *models.UploadStats, version string, isJSON bool, logger *slog.Logger) {
	if isJSON {
		logUploadReport(stats, version, logger)
		return
	}

	printUploadReport(stats, version)
}

func printUploadReport(stats *models.UploadStats, version string) {
	fmt.Println(headerUploadReport)
	fmt.Println(strings.Repeat("-", len(headerUploadReport)))

	printMetric("Start Time", stats.GetStartTime().Format(time.RFC1123))
	printMetric("Duration", stats.GetDuration())
	printMetric("Version", version)

	fmt.Println()

	printMetric("Source Maps Found", stats.GetPairs())
	printMetric("Uploaded", stats.GetUploaded())
	printMetric("Failed", stats.GetFailed())

	fmt.Println()

	printMetric("Bytes Sent", stats.GetBytesSent())
}

func logUploadReport(stats *models.UploadStats, version string, logger *slog.Logger) {
	logger.Info("upload report",
		slog.Time("start_time", stats.GetStartTime()),
		slog.Duration("duration", stats.GetDuration()),
		slog.String("version", version),
		slog.Uint64("source_maps_found", stats.GetPairs()),
		slog.Uint64("uploaded", stats.GetUploaded()),
		slog.Uint64("failed", stats.GetFailed()),
		slog.Uint64("bytes_sent", stats.GetBytesSent()),
	)
}

func printMetric(key string, value any) {
	fmt.Printf("%s%v\n", indent(key), value)
}

func indent(key string) string {
	return fmt.Sprintf("%s:%s", key, strings.Repeat(" ", 21-len(key)))
}
