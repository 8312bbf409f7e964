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
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/models"
	"google.golang.org/api/iterator"
)

const gcpStorageType = "gcp-storage"

// Reader represents GCP storage reader.
type Reader struct {
	// Optional parameters.
	ioStorage.Options

	// bucketHandle contains storage bucket handler for performing reading operations.
	bucketHandle *storage.BucketHandle

	// bucketName contains name of the bucket to read from.
	bucketName string
}

// NewReader returns new GCP storage reader.
func NewReader(
	ctx context.Context,
	client *storage.Client,
	bucketName string,
	opts ...ioStorage.Opt,
) (*Reader, error) {
	r := &Reader{
		Options:    ioStorage.Apply(opts...),
		bucketName: bucketName,
	}
	r.Logger = r.Logger.With(slog.String("bucket", bucketName))

	bucket := client.Bucket(bucketName)

	if !r.SkipDirCheck {
		// Check if bucket exists, to avoid errors.
		if _, err := bucket.Attrs(ctx); err != nil {
			return nil, fmt.Errorf("failed to get bucket %s attr: %w", bucketName, err)
		}
	}

	r.bucketHandle = bucket

	return r, nil
}

// ListObjects lists all objects in the path. Names are returned relative to the path.
func (r *Reader) ListObjects(ctx context.Context, dir string) ([]string, error) {
	prefix := ioStorage.CleanPath(dir)

	it := r.bucketHandle.Objects(ctx, &storage.Query{
		Prefix: prefix,
	})

	result := make([]string, 0)

	for {
		objAttrs, err := it.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, fmt.Errorf("failed to read object attr from bucket %s: %w", r.bucketName, err)
		}

		if ioStorage.IsDirectory(prefix, objAttrs.Name) && !r.WithNestedDir {
			continue
		}

		result = append(result, ioStorage.RelativeName(prefix, objAttrs.Name))
	}

	r.Logger.Debug("listed assets", slog.String("prefix", prefix), slog.Int("objects", len(result)))

	return result, nil
}

// OpenObject opens the object stored under key.
func (r *Reader) OpenObject(ctx context.Context, key string) (*models.File, error) {
	key = strings.TrimPrefix(key, "/")

	reader, err := r.bucketHandle.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", ioStorage.ErrNotFound, key)
		}

		return nil, fmt.Errorf("failed to open file %s: %w", key, err)
	}

	r.Logger.Debug("opened asset", slog.String("key", key), slog.Int64("size", reader.Attrs.Size))

	return &models.File{Reader: reader, Name: path.Base(key), Size: reader.Attrs.Size}, nil
}

// GetType returns the `gcpStorageType` type of storage. Used in logging.
func (r *Reader) GetType() string {
	return gcpStorageType
}
