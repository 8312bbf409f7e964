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

import "fmt"

// AwsS3 represents the configuration for AWS S3 storage integration.
type AwsS3 struct {
	BucketName      string
	Region          string
	Profile         string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// IsSet reports whether any S3 parameter was provided.
func (a *AwsS3) IsSet() bool {
	return a != nil && (a.BucketName != "" || a.Region != "" || a.Profile != "" || a.Endpoint != "" ||
		a.AccessKeyID != "" || a.SecretAccessKey != "")
}

// Validate internal validation for struct params.
func (a *AwsS3) Validate() error {
	if a.BucketName == "" {
		return fmt.Errorf("bucket name is required")
	}

	if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
		return fmt.Errorf("access key id and secret access key must be set together")
	}

	return nil
}
