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

// AzureBlob represents the configuration for Azure Blob storage integration.
type AzureBlob struct {
	// Account name + key auth
	AccountName string
	AccountKey  string
	// Azure Active directory
	TenantID     string
	ClientID     string
	ClientSecret string

	Endpoint      string
	ContainerName string
}

// IsSet reports whether any Azure parameter was provided.
func (a *AzureBlob) IsSet() bool {
	return a != nil && (a.ContainerName != "" || a.AccountName != "" || a.AccountKey != "" ||
		a.Endpoint != "" || a.TenantID != "" || a.ClientID != "" || a.ClientSecret != "")
}

// Validate internal validation for struct params.
func (a *AzureBlob) Validate() error {
	if a.ContainerName == "" {
		return fmt.Errorf("container name is required")
	}

	if a.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}

	return nil
}
