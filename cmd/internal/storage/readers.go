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
	"context"
	"fmt"
	"log/slog"

	"github.com/releasetools/sourcemaps-go"
	"github.com/releasetools/sourcemaps-go/cmd/internal/config"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/io/storage/aws/s3"
	"github.com/releasetools/sourcemaps-go/io/storage/azure/blob"
	gcpStorage "github.com/releasetools/sourcemaps-go/io/storage/gcp/storage"
	"github.com/releasetools/sourcemaps-go/io/storage/local"
)

// NewAssetReader returns a reader for the configured storage.
// Without a cloud provider, assets are read from the local filesystem.
func NewAssetReader(
	ctx context.Context,
	params *config.UploadParams,
	logger *slog.Logger,
) (sourcemaps.AssetReader, error) {
	opts := []ioStorage.Opt{ioStorage.WithLogger(logger)}
	if params.Upload.Recursive {
		opts = append(opts, ioStorage.WithNestedDir())
	}

	retry := params.Retry
	if retry == nil {
		retry = models.NewDefaultRetry()
	}

	switch {
	case params.AwsS3.IsSet():
		logger.Info("initializing S3 asset reader", slog.String("bucket", params.AwsS3.BucketName))

		client, err := newS3Client(ctx, params.AwsS3, retry)
		if err != nil {
			return nil, err
		}

		reader, err := s3.NewReader(ctx, client, params.AwsS3.BucketName, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 reader: %w", err)
		}

		return reader, nil
	case params.GcpStorage.IsSet():
		logger.Info("initializing GCP asset reader", slog.String("bucket", params.GcpStorage.BucketName))

		client, err := newGcpClient(ctx, params.GcpStorage, retry)
		if err != nil {
			return nil, err
		}

		reader, err := gcpStorage.NewReader(ctx, client, params.GcpStorage.BucketName, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create gcp reader: %w", err)
		}

		return reader, nil
	case params.AzureBlob.IsSet():
		logger.Info("initializing Azure asset reader", slog.String("container", params.AzureBlob.ContainerName))

		client, err := newAzureClient(params.AzureBlob, retry)
		if err != nil {
			return nil, err
		}

		reader, err := blob.NewReader(ctx, client, params.AzureBlob.ContainerName, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create azure reader: %w", err)
		}

		return reader, nil
	default:
		return local.NewReader(opts...), nil
	}
}
