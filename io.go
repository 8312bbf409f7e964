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

package sourcemaps

import (
	"context"

	"github.com/releasetools/sourcemaps-go/models"
)

// AssetReader defines an interface for reading build assets from a storage provider.
// Implementations, handling different storage types, are located within the io/storage package.
type AssetReader interface {
	// ListObjects returns names of files directly inside path, relative to it.
	ListObjects(ctx context.Context, path string) ([]string, error)

	// OpenObject opens the file at path. The caller must close File.Reader.
	OpenObject(ctx context.Context, path string) (*models.File, error)

	// GetType returns the type of storage. Used in logging.
	GetType() string
}
