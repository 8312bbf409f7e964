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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const projectMarker = "package.json"

// ResolveProjectRoot returns the absolute project root.
// An explicit root is used as is. Otherwise, the nearest ancestor of cwd with
// a package.json is used, falling back to cwd.
func ResolveProjectRoot(root, cwd string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve project root %s: %w", root, err)
		}

		return abs, nil
	}

	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	for dir := cwd; ; {
		_, err = os.Stat(filepath.Join(dir, projectMarker))
		switch {
		case err == nil:
			return dir, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("failed to check %s in %s: %w", projectMarker, dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}

		dir = parent
	}
}
