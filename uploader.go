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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/releasetools/sourcemaps-go/models"
	"github.com/valyala/fastjson"
)

const (
	fieldVersion     = "version"
	fieldAccessToken = "access_token"
	fieldMinifiedURL = "minified_url"
	fieldSourceMap   = "source_map"

	// maxResponseSize limits how much of the Rollbar answer is read.
	maxResponseSize = 1 << 20
)

type formField struct {
	name  string
	value string
}

// UploadSourceMap posts a single source map for pair.Script to Rollbar.
// file is the opened source map, it is not closed here.
func (c *Client) UploadSourceMap(ctx context.Context, cfg *ConfigUpload, pair Pair, file *models.File) error {
	if file == nil || file.Reader == nil {
		return fmt.Errorf("source map %s is not opened", pair.Map)
	}

	minifiedURL := MinifiedURL(cfg.Host, cfg.AssetsURL, pair.Script)

	fields := []formField{
		{name: fieldVersion, value: cfg.Version},
		{name: fieldAccessToken, value: cfg.AccessToken},
		{name: fieldMinifiedURL, value: minifiedURL},
	}

	body, contentType, length, err := newMultipartBody(fields, fieldSourceMap, path.Base(pair.Map), file.Reader, file.Size)
	if err != nil {
		return fmt.Errorf("failed to build request body: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.ContentLength = length

	c.logger.Debug("sending source map",
		slog.String("minified_url", minifiedURL),
		slog.Int64("content_length", length),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response (status %d): %w", resp.StatusCode, err)
	}

	return parseResponse(resp.StatusCode, data)
}

// newMultipartBody returns a streaming multipart form: text fields, then one file part.
// length is -1 when size is unknown.
func newMultipartBody(fields []formField, fileField, fileName string, file io.Reader, size int64,
) (body io.Reader, contentType string, length int64, err error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err = w.WriteField(f.name, f.value); err != nil {
			return nil, "", 0, fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	if _, err = w.CreateFormFile(fileField, fileName); err != nil {
		return nil, "", 0, fmt.Errorf("failed to create file part: %w", err)
	}

	prefix := bytes.Clone(buf.Bytes())
	buf.Reset()

	// Close only writes the closing boundary.
	if err = w.Close(); err != nil {
		return nil, "", 0, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	suffix := bytes.Clone(buf.Bytes())

	length = models.SizeUnknown
	if size >= 0 {
		length = int64(len(prefix)) + size + int64(len(suffix))
	}

	body = io.MultiReader(bytes.NewReader(prefix), file, bytes.NewReader(suffix))

	return body, w.FormDataContentType(), length, nil
}

func parseResponse(statusCode int, data []byte) error {
	var p fastjson.Parser

	v, err := p.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("failed to parse rollbar response (status %d): %w", statusCode, err)
	}

	if v.Type() != fastjson.TypeObject {
		return fmt.Errorf("unexpected rollbar response (status %d): %s", statusCode, v.Type())
	}

	if !isTruthy(v.Get("err")) {
		return nil
	}

	message := string(v.GetStringBytes("message"))
	if message == "" {
		if m := v.Get("message"); m != nil {
			message = m.String()
		}
	}

	return &ServiceError{StatusCode: statusCode, Message: message}
}

// isTruthy follows JavaScript truthiness for JSON values. A missing value is falsy.
func isTruthy(v *fastjson.Value) bool {
	if v == nil {
		return false
	}

	switch v.Type() {
	case fastjson.TypeTrue, fastjson.TypeObject, fastjson.TypeArray:
		return true
	case fastjson.TypeNumber:
		return v.GetFloat64() != 0
	case fastjson.TypeString:
		return len(v.GetStringBytes()) > 0
	default:
		return false
	}
}
