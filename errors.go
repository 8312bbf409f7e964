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
	"errors"
	"fmt"
)

// ErrMissingSourceMap is returned when a script has no source map in the assets directory.
var ErrMissingSourceMap = errors.New("source map not found")

// ServiceError is returned when Rollbar answers an upload with a truthy err field.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("rollbar status: '%s'", e.Message)
}
