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

package logging

import "log/slog"

func WithClient(logger *slog.Logger, id string) *slog.Logger {
	group := slog.Group("client", "id", id)
	return logger.With(group)
}

type HandlerType string

const (
	HandlerTypeUnknown HandlerType = "unknown"
	HandlerTypeUpload  HandlerType = "upload"
)

func WithHandler(logger *slog.Logger, id string, handlerType HandlerType, storageType string) *slog.Logger {
	group := slog.Group("handler", "id", id, "type", handlerType, "storage", storageType)
	return logger.With(group)
}

// WithPair adds the script/map pair being uploaded.
func WithPair(logger *slog.Logger, script, sourceMap string) *slog.Logger {
	group := slog.Group("pair", "script", script, "map", sourceMap)
	return logger.With(group)
}
