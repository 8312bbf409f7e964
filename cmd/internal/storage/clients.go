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
	"context"
	"fmt"
	"net/http"

	gcpStorage "cloud.google.com/go/storage"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/googleapis/gax-go/v2"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
	"google.golang.org/api/option"
)

// appID identifies the tool in cloud request logs. Azure limits it to 24 characters.
const appID = "rollbar-sourcemaps"

// Asset readers only list and download objects. Clients below are set up for that:
// read-only scopes where the SDK has them, and retries for reads.

func newS3Client(ctx context.Context, a *models.AwsS3, r *models.Retry) (*s3.Client, error) {
	cfgOpts := []func(*config.LoadOptions) error{
		config.WithRetryer(newS3Retryer(r)),
		config.WithAppID(appID),
	}

	if a.Profile != "" {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(a.Profile))
	}

	if a.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(a.Region))
	}

	if a.AccessKeyID != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(a.AccessKeyID, a.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		// S3 compatible servers usually don't support virtual-hosted buckets.
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// newS3Retryer returns a standard retryer without the client-side retry quota.
// ListObjectsV2, HeadBucket and GetObject are all safe to repeat.
func newS3Retryer(r *models.Retry) func() aws.Retryer {
	return func() aws.Retryer {
		return retry.NewStandard(func(o *retry.StandardOptions) {
			o.MaxAttempts = r.MaxAttempts
			o.MaxBackoff = r.MaxBackoff()
			o.Backoff = retry.NewExponentialJitterBackoff(r.MaxBackoff())
			o.RateLimiter = ratelimit.None
		})
	}
}

func newGcpClient(ctx context.Context, g *models.GcpStorage, r *models.Retry) (*gcpStorage.Client, error) {
	opts := []option.ClientOption{option.WithUserAgent(appID)}

	switch {
	case g.Endpoint != "":
		// Emulators don't check credentials.
		opts = append(opts, option.WithEndpoint(g.Endpoint), option.WithoutAuthentication())
	case g.KeyFile != "":
		opts = append(opts,
			option.WithCredentialsFile(g.KeyFile),
			option.WithScopes(gcpStorage.ScopeReadOnly),
		)
	default:
		opts = append(opts, option.WithScopes(gcpStorage.ScopeReadOnly))
	}

	client, err := gcpStorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP client: %w", err)
	}

	// Listing and downloads are idempotent.
	client.SetRetry(
		gcpStorage.WithPolicy(gcpStorage.RetryIdempotent),
		gcpStorage.WithMaxAttempts(r.MaxAttempts),
		gcpStorage.WithBackoff(gax.Backoff{
			Initial:    r.Backoff(),
			Max:        r.MaxBackoff(),
			Multiplier: r.Multiplier,
		}),
	)

	return client, nil
}

func newAzureClient(a *models.AzureBlob, r *models.Retry) (*azblob.Client, error) {
	opts := &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry:     azureRetryOptions(r),
			Telemetry: policy.TelemetryOptions{ApplicationID: appID},
		},
	}

	switch {
	case a.AccountName != "" && a.AccountKey != "":
		cred, err := azblob.NewSharedKeyCredential(a.AccountName, a.AccountKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure shared key credentials: %w", err)
		}

		client, err := azblob.NewClientWithSharedKeyCredential(a.Endpoint, cred, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Blob client with shared key: %w", err)
		}

		return client, nil
	case a.TenantID != "" && a.ClientID != "" && a.ClientSecret != "":
		cred, err := azidentity.NewClientSecretCredential(a.TenantID, a.ClientID, a.ClientSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure AAD credentials: %w", err)
		}

		client, err := azblob.NewClient(a.Endpoint, cred, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Blob client with AAD: %w", err)
		}

		return client, nil
	default:
		// Public containers or a SAS token in the endpoint.
		client, err := azblob.NewClientWithNoCredential(a.Endpoint, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create anonymous Azure Blob client: %w", err)
		}

		return client, nil
	}
}

// azureRetryOptions maps the read retry policy to Azure. MaxRetries counts retries,
// not attempts, and a negative value disables them.
func azureRetryOptions(r *models.Retry) policy.RetryOptions {
	retries := int32(r.MaxAttempts - 1)
	if retries == 0 {
		retries = -1
	}

	return policy.RetryOptions{
		MaxRetries:    retries,
		RetryDelay:    r.Backoff(),
		MaxRetryDelay: r.MaxBackoff(),
		StatusCodes: []int{
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}
