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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/releasetools/sourcemaps-go/cmd/internal/models"
)

const (
	EnvAccessToken = "ROLLBAR_ACCESS_TOKEN"
	EnvHost        = "ROLLBAR_HOST"

	envFile = ".env"
)

// ApplyEnv fills an empty token and host from the environment.
// Variables of the process take precedence over the .env file in projectRoot.
func ApplyEnv(upload *models.Upload, projectRoot string) error {
	if upload.Token != "" && upload.Host != "" {
		return nil
	}

	fileEnv, err := readEnvFile(filepath.Join(projectRoot, envFile))
	if err != nil {
		return err
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}

		return fileEnv[key]
	}

	if upload.Token == "" {
		upload.Token = lookup(EnvAccessToken)
	}

	if upload.Host == "" {
		upload.Host = lookup(EnvHost)
	}

	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	return env, nil
}
