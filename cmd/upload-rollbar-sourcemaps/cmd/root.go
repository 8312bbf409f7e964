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

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/releasetools/sourcemaps-go/cmd/internal/config"
	"github.com/releasetools/sourcemaps-go/cmd/internal/flags"
	"github.com/releasetools/sourcemaps-go/cmd/internal/logging"
	"github.com/releasetools/sourcemaps-go/cmd/internal/upload"
	"github.com/spf13/cobra"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp    *flags.App
	flagsUpload *flags.Upload
	flagsAws    *flags.AwsS3
	flagsGcp    *flags.GcpStorage
	flagsAzure  *flags.AzureBlob
	flagsRetry  *flags.Retry
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:    flags.NewApp(),
		flagsUpload: flags.NewUpload(),
		flagsAws:    flags.NewAwsS3(),
		flagsGcp:    flags.NewGcpStorage(),
		flagsAzure:  flags.NewAzureBlob(),
		flagsRetry:  flags.NewRetry(),
	}

	rootCmd := &cobra.Command{
		Use:   "upload-rollbar-sourcemaps",
		Short: "Upload JavaScript source maps of a build to Rollbar",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	uploadFlagSet := c.flagsUpload.NewFlagSet()
	awsFlagSet := c.flagsAws.NewFlagSet()
	gcpFlagSet := c.flagsGcp.NewFlagSet()
	azureFlagSet := c.flagsAzure.NewFlagSet()
	retryFlagSet := c.flagsRetry.NewFlagSet()

	// App flags.
	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)

	rootCmd.Flags().AddFlagSet(uploadFlagSet)

	rootCmd.PersistentFlags().AddFlagSet(awsFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(gcpFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(azureFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(retryFlagSet)

	// Beautify help and usage.
	helpFunc := func(w io.Writer) {
		fmt.Fprintln(w, "Welcome to the Rollbar source maps upload tool!")
		fmt.Fprintln(w, "-----------------------------------------------")
		fmt.Fprintln(w, "\nUsage:")
		fmt.Fprintln(w, "  upload-rollbar-sourcemaps [flags]")

		// Print section: App Flags
		fmt.Fprintln(w, "\nGeneral Flags:")
		fmt.Fprint(w, appFlagSet.FlagUsages())

		// Print section: Upload Flags
		fmt.Fprintln(w, "\nUpload Flags:\n"+
			"Every <name>.js in the assets directory is uploaded with <name>.map,\n"+
			"or with a pre-compressed <name>.map.gz / <name>.map.zst.")
		fmt.Fprint(w, uploadFlagSet.FlagUsages())

		// Print section: AWS Flags
		fmt.Fprintln(w, "\nAWS Flags:\n"+
			"To read assets from S3, set the bucket with --s3-bucket-name.\n"+
			"So --assets-dir will only contain the object prefix.\n"+
			"--s3-endpoint-override is used in case you want to use minio, instead of AWS.")
		fmt.Fprint(w, awsFlagSet.FlagUsages())

		// Print section: GCP Flags
		fmt.Fprintln(w, "\nGCP Flags:\n"+
			"To read assets from GCP storage, set the bucket with --gcp-bucket-name.\n"+
			"So --assets-dir will only contain the object prefix.")
		fmt.Fprint(w, gcpFlagSet.FlagUsages())

		// Print section: Azure Flags
		fmt.Fprintln(w, "\nAzure Flags:\n"+
			"To read assets from Azure, set the container with --azure-container-name.\n"+
			"So --assets-dir will only contain the object prefix.\n"+
			"For authentication you can use --azure-account-name and --azure-account-key, or \n"+
			"--azure-tenant-id, --azure-client-id and azure-client-secret.")
		fmt.Fprint(w, azureFlagSet.FlagUsages())

		// Print section: Retry Flags
		fmt.Fprintln(w, "\nRead Retry Flags:\n"+
			"Applied to listing and downloading assets from S3, GCP or Azure.\n"+
			"Uploads to Rollbar are not retried.")
		fmt.Fprint(w, retryFlagSet.FlagUsages())
	}

	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		helpFunc(cmd.OutOrStdout())
		return nil
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		helpFunc(cmd.OutOrStdout())
	})

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion(cmd.OutOrStdout())

		return nil
	}

	// Init logger.
	logger, err := logging.NewLogger(cmd.OutOrStdout(),
		c.flagsApp.LogLevel, c.flagsApp.Verbose, c.flagsApp.LogJSON)
	if err != nil {
		return err
	}

	// Init app.
	params, err := config.NewUploadParams(
		c.flagsApp.GetApp(),
		c.flagsUpload.GetUpload(),
		c.flagsAws.GetAwsS3(),
		c.flagsGcp.GetGcpStorage(),
		c.flagsAzure.GetAzureBlob(),
		c.flagsRetry.GetRetry(),
	)
	if err != nil {
		return err
	}

	// The config file may change logging settings.
	if params.App.ConfigFilePath != "" {
		logger, err = logging.NewLogger(cmd.OutOrStdout(),
			params.App.LogLevel, params.App.Verbose, params.App.LogJSON)
		if err != nil {
			return err
		}
	}

	svc, err := upload.NewService(cmd.Context(), params, logger)
	if err != nil {
		logger.Error("upload failed", slog.Any("error", err))

		return err
	}

	if err = svc.Run(cmd.Context()); err != nil {
		logger.Error("upload failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (c *Cmd) printVersion(w io.Writer) {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Fprintf(w, "version: %s\n", version)
}
