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

package blob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/models"
)

// Reader represents Azure Blob storage reader.
type Reader struct {
	// Optional parameters.
	ioStorage.Options

	client Client

	// containerName contains the name of the container to read from.
	containerName string
}

// NewReader returns new Azure blob reader.
func NewReader(
	ctx context.Context,
	client Client,
	containerName string,
	opts ...ioStorage.Opt,
) (*Reader, error) {
	r := &Reader{
		Options:       ioStorage.Apply(opts...),
		client:        client,
		containerName: containerName,
	}
	r.Logger = r.Logger.With(slog.String("container", containerName))

	if !r.SkipDirCheck {
		// Check if container exists.
		if _, err := client.ServiceClient().NewContainerClient(containerName).GetProperties(ctx, nil); err != nil {
			return nil, fmt.Errorf("unable to get container properties: %w", err)
		}
	}

	return r, nil
}

// ListObjects lists all objects in the path. Names are returned relative to the path.
func (r *Reader) ListObjects(ctx context.Context, dir string) ([]string, error) {
	prefix := ioStorage.CleanPath(dir)

	pager := r.client.NewListBlobsFlatPager(r.containerName, &azblob.ListBlobsFlatOptions{
		Prefix: &prefix,
	})

	var pages int

	result := make([]string, 0)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get next page: %w", err)
		}

		pages++

		if page.Segment == nil {
			continue
		}

		r.Logger.Debug("listed assets page",
			slog.String("prefix", prefix),
			slog.Int("page", pages),
			slog.Int("objects", len(page.Segment.BlobItems)),
		)

		for _, blobItem := range page.Segment.BlobItems {
			if blobItem == nil || blobItem.Name == nil {
				continue
			}

			if ioStorage.IsDirectory(prefix, *blobItem.Name) && !r.WithNestedDir {
				continue
			}

			result = append(result, ioStorage.RelativeName(prefix, *blobItem.Name))
		}
	}

	r.Logger.Debug("listed assets", slog.String("prefix", prefix), slog.Int("objects", len(result)))

	return result, nil
}

// OpenObject opens the blob stored under key.
func (r *Reader) OpenObject(ctx context.Context, key string) (*models.File, error) {
	key = strings.TrimPrefix(key, "/")

	resp, err := r.client.DownloadStream(ctx, r.containerName, key, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ioStorage.ErrNotFound, key)
		}

		return nil, fmt.Errorf("failed to open file %s: %w", key, err)
	}

	size := models.SizeUnknown
	if resp.ContentLength != nil {
		size = *resp.ContentLength
	}

	r.Logger.Debug("opened asset", slog.String("key", key), slog.Int64("size", size))

	return &models.File{Reader: resp.Body, Name: path.Base(key), Size: size}, nil
}

// GetType returns the `azureBlobType` type of storage. Used in logging.
func (r *Reader) GetType() string {
	return azureBlobType
}
