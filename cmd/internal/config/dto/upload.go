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

package dto

import (
	"github.com/releasetools/sourcemaps-go"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
)

// Upload is used to map yaml config.
type Upload struct {
	App    App `yaml:"app"`
	Upload struct {
		Token       string `yaml:"token"`
		Host        string `yaml:"host"`
		Version     string `yaml:"version"`
		AssetsDir   string `yaml:"assets-dir"`
		AssetsURL   string `yaml:"assets-url"`
		Recursive   bool   `yaml:"assets-recursive"`
		ProjectRoot string `yaml:"project-root"`
		Parallel    int    `yaml:"parallel"`
		Timeout     int64  `yaml:"timeout"`
		Endpoint    string `yaml:"rollbar-endpoint"`
	} `yaml:"upload"`
	Aws struct {
		S3 AwsS3 `yaml:"s3"`
	} `yaml:"aws"`
	Gcp struct {
		Storage GcpStorage `yaml:"storage"`
	} `yaml:"gcp"`
	Azure struct {
		Blob AzureBlob `yaml:"blob"`
	} `yaml:"azure"`
	Retry Retry `yaml:"read-retry"`
}

// NewUpload returns a dto filled with flag defaults.
// Keys missing from the file keep these values.
func NewUpload() *Upload {
	u := &Upload{}
	u.App.LogLevel = "debug"
	u.Upload.AssetsDir = models.DefaultAssetsDir
	u.Upload.AssetsURL = models.DefaultAssetsURL
	u.Upload.Timeout = models.DefaultTimeout
	u.Upload.Endpoint = sourcemaps.DefaultEndpoint

	retry := models.NewDefaultRetry()
	u.Retry = Retry{
		MaxAttempts: retry.MaxAttempts,
		Backoff:     retry.BackoffSeconds,
		MaxBackoff:  retry.MaxBackoffSeconds,
		Multiplier:  retry.Multiplier,
	}

	return u
}

func (u *Upload) ToModelUpload() *models.Upload {
	return &models.Upload{
		Token:       u.Upload.Token,
		Host:        u.Upload.Host,
		Version:     u.Upload.Version,
		AssetsDir:   u.Upload.AssetsDir,
		AssetsURL:   u.Upload.AssetsURL,
		Recursive:   u.Upload.Recursive,
		ProjectRoot: u.Upload.ProjectRoot,
		Parallel:    u.Upload.Parallel,
		Timeout:     u.Upload.Timeout,
		Endpoint:    u.Upload.Endpoint,
	}
}
