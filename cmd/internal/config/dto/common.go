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

package dto

import (
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
)

// App is used to map yaml config.
type App struct {
	Verbose  bool   `yaml:"verbose"`
	LogLevel string `yaml:"log-level"`
	LogJSON  bool   `yaml:"log-json"`
}

func (a *App) ToModelApp() *models.App {
	return &models.App{
		Verbose:  a.Verbose,
		LogLevel: a.LogLevel,
		LogJSON:  a.LogJSON,
	}
}

// AwsS3 is the aws.s3 section of the config file.
type AwsS3 struct {
	BucketName       string `yaml:"bucket-name"`
	Region           string `yaml:"region"`
	Profile          string `yaml:"profile"`
	EndpointOverride string `yaml:"endpoint-override"`
	AccessKeyID      string `yaml:"access-key-id"`
	SecretAccessKey  string `yaml:"secret-access-key"`
}

func (a *AwsS3) ToModelAwsS3() *models.AwsS3 {
	return &models.AwsS3{
		BucketName:      a.BucketName,
		Region:          a.Region,
		Profile:         a.Profile,
		Endpoint:        a.EndpointOverride,
		AccessKeyID:     a.AccessKeyID,
		SecretAccessKey: a.SecretAccessKey,
	}
}

// GcpStorage is the gcp.storage section of the config file.
type GcpStorage struct {
	BucketName       string `yaml:"bucket-name"`
	KeyFile          string `yaml:"key-file"`
	EndpointOverride string `yaml:"endpoint-override"`
}

func (g *GcpStorage) ToModelGcpStorage() *models.GcpStorage {
	return &models.GcpStorage{
		BucketName: g.BucketName,
		KeyFile:    g.KeyFile,
		Endpoint:   g.EndpointOverride,
	}
}

// Retry is the read-retry section of the config file.
// It applies to whichever cloud storage is configured.
type Retry struct {
	MaxAttempts int     `yaml:"max-attempts"`
	Backoff     int     `yaml:"backoff"`
	MaxBackoff  int     `yaml:"max-backoff"`
	Multiplier  float64 `yaml:"multiplier"`
}

func (r *Retry) ToModelRetry() *models.Retry {
	return &models.Retry{
		MaxAttempts:       r.MaxAttempts,
		BackoffSeconds:    r.Backoff,
		MaxBackoffSeconds: r.MaxBackoff,
		Multiplier:        r.Multiplier,
	}
}

// AzureBlob is the azure.blob section of the config file.
type AzureBlob struct {
	AccountName      string `yaml:"account-name"`
	AccountKey       string `yaml:"account-key"`
	TenantID         string `yaml:"tenant-id"`
	ClientID         string `yaml:"client-id"`
	ClientSecret     string `yaml:"client-secret"`
	EndpointOverride string `yaml:"endpoint-override"`
	ContainerName    string `yaml:"container-name"`
}

func (a *AzureBlob) ToModelAzureBlob() *models.AzureBlob {
	return &models.AzureBlob{
		AccountName:   a.AccountName,
		AccountKey:    a.AccountKey,
		TenantID:      a.TenantID,
		ClientID:      a.ClientID,
		ClientSecret:  a.ClientSecret,
		Endpoint:      a.EndpointOverride,
		ContainerName: a.ContainerName,
	}
}
