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

package models

import "io"

// SizeUnknown is reported when storage can't tell the object size before reading it.
const SizeUnknown int64 = -1

// File represents an asset opened from storage.
type File struct {
	Name   string
	Reader io.ReadCloser
	// Size of the content that Reader returns, or SizeUnknown.
	Size int64
}
