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

package s3

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsHttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/models"
)

// Reader represents S3 storage reader.
type Reader struct {
	// Optional parameters.
	ioStorage.Options

	client Client

	// bucketName contains the name of the bucket to read from.
	bucketName string
}

// NewReader returns new S3 storage reader.
// For S3 compatible servers the client needs o.BaseEndpoint and o.UsePathStyle = true.
func NewReader(
	ctx context.Context,
	client Client,
	bucketName string,
	opts ...ioStorage.Opt,
) (*Reader, error) {
	r := &Reader{
		Options:    ioStorage.Apply(opts...),
		client:     client,
		bucketName: bucketName,
	}
	r.Logger = r.Logger.With(slog.String("bucket", bucketName))

	if !r.SkipDirCheck {
		// Check if the bucket exists and we have permissions.
		if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(bucketName),
		}); err != nil {
			return nil, fmt.Errorf("bucket %s does not exist or you don't have access: %w", bucketName, err)
		}
	}

	return r, nil
}

// ListObjects lists all objects in the path. Names are returned relative to the path.
func (r *Reader) ListObjects(ctx context.Context, dir string) ([]string, error) {
	prefix := ioStorage.CleanPath(dir)

	var (
		continuationToken *string
		pages             int
	)

	result := make([]string, 0)

	for {
		listResponse, err := r.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &r.bucketName,
			Prefix:            &prefix,
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		pages++
		r.Logger.Debug("listed assets page",
			slog.String("prefix", prefix),
			slog.Int("page", pages),
			slog.Int("objects", len(listResponse.Contents)),
		)

		for _, p := range listResponse.Contents {
			if r.shouldSkip(prefix, p.Key) {
				continue
			}

			result = append(result, ioStorage.RelativeName(prefix, *p.Key))
		}

		continuationToken = listResponse.NextContinuationToken
		if continuationToken == nil {
			break
		}
	}

	r.Logger.Debug("listed assets", slog.String("prefix", prefix), slog.Int("objects", len(result)))

	return result, nil
}

// OpenObject opens the object stored under key.
func (r *Reader) OpenObject(ctx context.Context, key string) (*models.File, error) {
	key = strings.TrimPrefix(key, "/")

	object, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &r.bucketName,
		Key:    &key,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ioStorage.ErrNotFound, key)
		}

		return nil, fmt.Errorf("failed to open file %s: %w", key, err)
	}

	size := models.SizeUnknown
	if object.ContentLength != nil {
		size = *object.ContentLength
	}

	r.Logger.Debug("opened asset", slog.String("key", key), slog.Int64("size", size))

	return &models.File{Reader: object.Body, Name: path.Base(key), Size: size}, nil
}

// GetType return `s3type` type of storage. Used in logging.
func (r *Reader) GetType() string {
	return s3type
}

// shouldSkip performs check, is we should skip files.
func (r *Reader) shouldSkip(prefix string, fileName *string) bool {
	return fileName == nil || ioStorage.IsDirectory(prefix, *fileName) && !r.WithNestedDir
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		var httpErr *awsHttp.ResponseError
		if errors.As(opErr.Err, &httpErr) && httpErr.HTTPStatusCode() == http.StatusNotFound {
			return true
		}
	}

	return false
}
