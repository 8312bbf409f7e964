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

	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
)

// ValidateStorages validates the configured cloud providers.
// At most one provider can be configured.
func ValidateStorages(
	awsS3 *models.AwsS3,
	gcpStorage *models.GcpStorage,
	azureBlob *models.AzureBlob,
) error {
	var (
		count int
		errs  []error
	)

	if awsS3.IsSet() {
		if err := awsS3.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate aws s3: %w", err))
		}

		count++
	}

	if gcpStorage.IsSet() {
		if err := gcpStorage.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate gcp storage: %w", err))
		}

		count++
	}

	if azureBlob.IsSet() {
		if err := azureBlob.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate azure blob: %w", err))
		}

		count++
	}

	if count > 1 {
		errs = append(errs, fmt.Errorf("only one cloud provider can be configured"))
	}

	return errors.Join(errs...)
}
