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

package flags

import (
	"github.com/releasetools/sourcemaps-go"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
	"github.com/spf13/pflag"
)

type Upload struct {
	models.Upload
}

func NewUpload() *Upload {
	return &Upload{}
}

func (f *Upload) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVarP(&f.Token, "token", "t",
		"",
		"Rollbar access token with post_server_item scope.\n"+
			"Falls back to ROLLBAR_ACCESS_TOKEN from the environment or the project .env file.")
	flagSet.StringVarP(&f.Host, "host", "h",
		"",
		"Public base URL the application is served from, e.g. https://example.com.\n"+
			"Falls back to ROLLBAR_HOST from the environment or the project .env file.")
	flagSet.StringVarP(&f.Version, "version", "v",
		"",
		"Release version to upload source maps for.\n"+
			"Defaults to the first 7 characters of the current git commit hash.")
	flagSet.StringVarP(&f.AssetsDir, "assets-dir", "d",
		models.DefaultAssetsDir,
		"Directory with built assets, relative to the project root.\n"+
			"With cloud storage, it is the object prefix inside the bucket.")
	flagSet.StringVarP(&f.AssetsURL, "assets-url", "p",
		models.DefaultAssetsURL,
		"Public path of the assets on the host.")
	flagSet.BoolVar(&f.Recursive, "assets-recursive",
		false,
		"Include scripts from nested directories of the assets directory.\n"+
			"Their minified URL keeps the nested path, e.g. {host}/{assets-url}/chunks/app.js.")
	flagSet.StringVarP(&f.ProjectRoot, "project-root", "r",
		"",
		"Project root directory. Defaults to the nearest directory with a package.json.")
	flagSet.IntVar(&f.Parallel, "parallel",
		0,
		"Maximum number of concurrent uploads. 0 uploads all source maps at once.")
	flagSet.Int64Var(&f.Timeout, "timeout",
		models.DefaultTimeout,
		"Timeout in milliseconds for a single upload request. 0 - no timeout.")
	flagSet.StringVar(&f.Endpoint, "rollbar-endpoint",
		sourcemaps.DefaultEndpoint,
		"Rollbar source map API endpoint.")

	return flagSet
}

func (f *Upload) GetUpload() *models.Upload {
	return &f.Upload
}
