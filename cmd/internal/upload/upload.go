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

package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/releasetools/sourcemaps-go"
	"github.com/releasetools/sourcemaps-go/cmd/internal/config"
	"github.com/releasetools/sourcemaps-go/cmd/internal/logging"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
	"github.com/releasetools/sourcemaps-go/cmd/internal/storage"
	"github.com/releasetools/sourcemaps-go/internal/version"
)

const idUpload = "upload-rollbar-sourcemaps-cli"

// Service uploads the source maps of one build.
type Service struct {
	client *sourcemaps.Client
	config *sourcemaps.ConfigUpload
	reader sourcemaps.AssetReader
	// dir is the assets directory or a bucket prefix.
	dir string

	isLogJSON bool

	logger *slog.Logger
}

// NewService resolves the configuration and initializes the client and the asset reader.
// Configuration errors are returned before any network request is made.
func NewService(
	ctx context.Context,
	params *config.UploadParams,
	logger *slog.Logger,
) (*Service, error) {
	// Validations.
	if err := config.ValidateStorages(params.AwsS3, params.GcpStorage, params.AzureBlob); err != nil {
		return nil, err
	}

	if params.IsRemote() && params.Retry != nil {
		if err := params.Retry.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate read retry: %w", err)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	projectRoot, err := config.ResolveProjectRoot(params.Upload.ProjectRoot, cwd)
	if err != nil {
		return nil, err
	}

	if err = config.ApplyEnv(params.Upload, projectRoot); err != nil {
		return nil, err
	}

	if err = params.Upload.Validate(); err != nil {
		return nil, err
	}

	releaseVersion := params.Upload.Version
	if releaseVersion == "" {
		releaseVersion, err = version.Resolve(projectRoot, version.DefaultLength)
		if err != nil {
			return nil, fmt.Errorf("failed to derive version, set --version: %w", err)
		}

		logger.Debug("version derived from git", slog.String("version", releaseVersion))
	}

	// Initializations.
	dir := params.Upload.AssetsDir
	if !params.IsRemote() && !filepath.IsAbs(dir) {
		dir = filepath.Join(projectRoot, dir)
	}

	reader, err := storage.NewAssetReader(ctx, params, logger)
	if err != nil {
		return nil, err
	}

	endpoint := params.Upload.Endpoint
	if endpoint == "" {
		endpoint = sourcemaps.DefaultEndpoint
	}

	client, err := sourcemaps.NewClient(
		sourcemaps.WithLogger(logger),
		sourcemaps.WithID(idUpload),
		sourcemaps.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload client: %w", err)
	}

	return &Service{
		client:    client,
		config:    mapUploadConfig(params.Upload, releaseVersion),
		reader:    reader,
		dir:       dir,
		isLogJSON: params.App.LogJSON,
		logger:    logger,
	}, nil
}

// Run uploads all source maps and prints the report.
func (s *Service) Run(ctx context.Context) error {
	h, err := s.client.Upload(ctx, s.config, s.reader, s.dir)
	if err != nil {
		return fmt.Errorf("failed to start upload: %w", err)
	}

	err = h.Wait(ctx)

	logging.ReportUpload(h.GetStats(), s.config.Version, s.isLogJSON, s.logger)

	if err != nil {
		return fmt.Errorf("failed to upload source maps: %w", err)
	}

	return nil
}

func mapUploadConfig(u *models.Upload, releaseVersion string) *sourcemaps.ConfigUpload {
	c := sourcemaps.NewDefaultUploadConfig()
	c.Host = u.Host
	c.AccessToken = u.Token
	c.Version = releaseVersion
	c.AssetsURL = u.AssetsURL
	c.Parallel = u.Parallel
	c.Timeout = time.Duration(u.Timeout) * time.Millisecond

	return c
}
