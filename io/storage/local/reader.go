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

package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/models"
)

const localType = "directory"

// Reader represents local storage reader.
type Reader struct {
	// Optional parameters.
	ioStorage.Options
}

// NewReader creates a new local directory Reader.
func NewReader(opts ...ioStorage.Opt) *Reader {
	return &Reader{Options: ioStorage.Apply(opts...)}
}

// ListObjects returns names of files in the path, in directory listing order.
// Nested directories are skipped unless WithNestedDir is set.
func (r *Reader) ListObjects(ctx context.Context, path string) ([]string, error) {
	if !r.SkipDirCheck {
		if err := checkDirectory(path); err != nil {
			return nil, err
		}
	}

	result := make([]string, 0)

	if err := r.listDirectory(ctx, path, "", &result); err != nil {
		return nil, err
	}

	r.Logger.Debug("listed assets",
		slog.String("dir", path),
		slog.Int("objects", len(result)),
		slog.Bool("nested", r.WithNestedDir),
	)

	return result, nil
}

func (r *Reader) listDirectory(ctx context.Context, root, rel string, result *[]string) error {
	dir := filepath.Join(root, rel)

	fileInfo, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read path %s: %w", dir, err)
	}

	for _, file := range fileInfo {
		if err = ctx.Err(); err != nil {
			return err
		}

		name := file.Name()
		if rel != "" {
			name = filepath.ToSlash(filepath.Join(rel, name))
		}

		if file.IsDir() {
			// Iterate over nested dirs recursively.
			if r.WithNestedDir {
				if err = r.listDirectory(ctx, root, name, result); err != nil {
					return err
				}
			}

			continue
		}

		*result = append(*result, name)
	}

	return nil
}

// OpenObject opens the file at path for reading.
func (r *Reader) OpenObject(ctx context.Context, path string) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ioStorage.ErrNotFound, path)
		}

		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	info, err := reader.Stat()
	if err != nil {
		_ = reader.Close()
		return nil, fmt.Errorf("failed to get file info %s: %w", path, err)
	}

	r.Logger.Debug("opened asset", slog.String("path", path), slog.Int64("size", info.Size()))

	return &models.File{Reader: reader, Name: filepath.Base(path), Size: info.Size()}, nil
}

// GetType returns the type of the reader.
func (r *Reader) GetType() string {
	return localType
}

// checkDirectory checks that the assets directory exists and is a directory.
func checkDirectory(dir string) error {
	dirInfo, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to get path info %s: %w", dir, err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("%w: %s", ioStorage.ErrNotDirectory, dir)
	}

	return nil
}
