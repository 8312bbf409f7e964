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
	"fmt"
	"path"
	"strings"
)

// CleanPath is protection from incorrect input.
// It turns a directory into an object prefix: "dist/assets" becomes "dist/assets/",
// and the bucket root ("", "/", ".") becomes "".
func CleanPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return ""
	}

	if !strings.HasSuffix(p, "/") {
		p = fmt.Sprintf("%s/", p)
	}

	return p
}

// IsDirectory check if filename is directory in prefix or file.
func IsDirectory(prefix, fileName string) bool {
	// If file name ends with / it is 100% dir.
	if strings.HasSuffix(fileName, "/") {
		return true
	}

	// If we look inside some folder.
	if prefix != "" && strings.HasPrefix(fileName, prefix) {
		// For root folder we should add.
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}

		clean := strings.TrimPrefix(fileName, prefix)

		return strings.Contains(clean, "/")
	}
	// All other variants.
	return strings.Contains(fileName, "/")
}

// RelativeName returns the object key relative to prefix.
func RelativeName(prefix, key string) string {
	return strings.TrimPrefix(key, prefix)
}

// ObjectKey joins prefix and name into an object key.
func ObjectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return path.Join(prefix, name)
}
