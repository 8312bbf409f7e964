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

package config

import (
	"fmt"

	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
)

// UploadParams contains all parameters of an upload run.
type UploadParams struct {
	App        *models.App
	Upload     *models.Upload
	AwsS3      *models.AwsS3
	GcpStorage *models.GcpStorage
	AzureBlob  *models.AzureBlob

	// Retry applies to reads from the configured cloud storage.
	Retry *models.Retry
}

// NewUploadParams returns UploadParams built from flags.
// If app.ConfigFilePath is set, the file replaces all flag values.
func NewUploadParams(
	app *models.App,
	upload *models.Upload,
	awsS3 *models.AwsS3,
	gcpStorage *models.GcpStorage,
	azureBlob *models.AzureBlob,
	retry *models.Retry,
) (*UploadParams, error) {
	// If we have a config file, load params from it.
	if app.ConfigFilePath != "" {
		params, err := decodeUploadParams(app.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", app.ConfigFilePath, err)
		}

		params.App.ConfigFilePath = app.ConfigFilePath

		return params, nil
	}

	return &UploadParams{
		App:        app,
		Upload:     upload,
		AwsS3:      awsS3,
		GcpStorage: gcpStorage,
		AzureBlob:  azureBlob,
		Retry:      retry,
	}, nil
}

// IsRemote reports whether assets are read from a cloud storage.
func (p *UploadParams) IsRemote() bool {
	return p.AwsS3.IsSet() || p.GcpStorage.IsSet() || p.AzureBlob.IsSet()
}
