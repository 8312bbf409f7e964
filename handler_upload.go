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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/releasetools/sourcemaps-go/internal/logging"
	"github.com/releasetools/sourcemaps-go/internal/readers"
	"github.com/releasetools/sourcemaps-go/io/compression"
	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/releasetools/sourcemaps-go/models"
	"golang.org/x/sync/errgroup"
)

// UploadHandler handles an upload job: one request per script/map pair.
type UploadHandler struct {
	// Global context for a whole upload process.
	ctx    context.Context
	cancel context.CancelFunc

	client *Client
	config *ConfigUpload
	reader AssetReader
	dir    string
	pairs  []Pair
	assets assetSet

	logger *slog.Logger
	id     string
	stats  *models.UploadStats

	errors chan error
	wg     sync.WaitGroup
	once   sync.Once
	err    error
}

// Upload starts uploading source maps found in dir.
//   - config is the upload configuration, see [ConfigUpload.Validate].
//   - reader lists and opens the assets.
//   - dir is the assets directory, or an object prefix for cloud readers.
//
// Listing happens before Upload returns; uploads run in the background,
// use [UploadHandler.Wait] to get the result.
func (c *Client) Upload(ctx context.Context, config *ConfigUpload, reader AssetReader, dir string,
) (*UploadHandler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate upload config: %w", err)
	}

	if reader == nil {
		return nil, errors.New("asset reader is required")
	}

	names, err := reader.ListObjects(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	handler := newUploadHandler(ctx, c, config, reader, dir, names)
	handler.run()

	return handler, nil
}

func newUploadHandler(
	ctx context.Context,
	client *Client,
	config *ConfigUpload,
	reader AssetReader,
	dir string,
	names []string,
) *UploadHandler {
	id := uuid.NewString()
	logger := logging.WithHandler(client.logger, id, logging.HandlerTypeUpload, reader.GetType())

	// Derive a new cancellable context from the existing one.
	ctx, cancel := context.WithCancel(ctx)

	pairs := PairAssets(names)

	stats := models.NewUploadStats()
	stats.SetPairs(uint64(len(pairs)))

	return &UploadHandler{
		ctx:    ctx,
		cancel: cancel,
		client: client,
		config: config,
		reader: reader,
		dir:    dir,
		pairs:  pairs,
		assets: newAssetSet(names),
		logger: logger,
		id:     id,
		stats:  stats,
		errors: make(chan error, 1),
	}
}

// run runs the upload job.
// currently this should only be run once.
func (h *UploadHandler) run() {
	h.wg.Add(1)
	h.stats.Start()

	h.logger.Info("uploading to rollbar",
		slog.Int("pairs", len(h.pairs)),
		slog.String("version", h.config.Version),
		slog.String("dir", h.dir),
	)

	go doWork(h.errors, h.logger, func() error {
		defer h.wg.Done()
		defer h.stats.Stop()

		return h.uploadAll(h.ctx)
	})
}

// uploadAll starts every pair and waits for all of them.
// A failed pair does not cancel the others.
func (h *UploadHandler) uploadAll(ctx context.Context) error {
	var g errgroup.Group

	if h.config.Parallel > 0 {
		g.SetLimit(h.config.Parallel)
	}

	for _, pair := range h.pairs {
		g.Go(func() error {
			return h.uploadPair(ctx, pair)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	h.logger.Info("uploading completed successfully", slog.Uint64("uploaded", h.stats.GetUploaded()))

	return nil
}

func (h *UploadHandler) uploadPair(ctx context.Context, pair Pair) error {
	logger := logging.WithPair(h.logger, pair.Script, pair.Map)
	logger.Info("uploading source map")

	if err := h.sendPair(ctx, pair); err != nil {
		h.stats.IncFailed()
		logger.Error("notifying error", slog.Any("error", err))

		return fmt.Errorf("failed to upload %s: %w", pair.Map, err)
	}

	h.stats.IncUploaded()
	logger.Info("reported file",
		slog.String("minified_url", MinifiedURL(h.config.Host, h.config.AssetsURL, pair.Script)),
	)

	return nil
}

func (h *UploadHandler) sendPair(ctx context.Context, pair Pair) error {
	name, err := h.assets.validatePair(pair)
	if err != nil {
		return err
	}

	file, err := h.reader.OpenObject(ctx, ioStorage.ObjectKey(h.dir, name))
	if err != nil {
		return fmt.Errorf("failed to open source map: %w", err)
	}

	if compression.IsCompressed(name) {
		decoded, err := compression.Decompress(name, file.Reader)
		if err != nil {
			_ = file.Reader.Close()
			return err
		}

		file = &models.File{Name: pair.Map, Reader: decoded, Size: models.SizeUnknown}
	}

	defer func() {
		if cErr := file.Reader.Close(); cErr != nil {
			h.logger.Warn("failed to close source map", slog.String("name", name), slog.Any("error", cErr))
		}
	}()

	counted := &models.File{
		Name:   file.Name,
		Reader: io.NopCloser(readers.NewCountingReader(file.Reader, &h.stats.BytesSent)),
		Size:   file.Size,
	}

	return h.client.UploadSourceMap(ctx, h.config, pair, counted)
}

// Wait waits for all uploads to finish and returns the first error.
// Cancelling ctx aborts in-flight requests.
func (h *UploadHandler) Wait(ctx context.Context) error {
	h.once.Do(func() {
		select {
		case <-ctx.Done():
			// When local context is done, we cancel global context.
			// Then wait until all routines finish their work properly.
			h.cancel()
			h.err = ctx.Err()
		case h.err = <-h.errors:
		}

		// Wait when all routines ended.
		h.wg.Wait()
		h.cancel()
	})

	return h.err
}

// GetStats returns the stats of the upload job.
func (h *UploadHandler) GetStats() *models.UploadStats {
	return h.stats
}

// Pairs returns the pairs found in the assets directory.
func (h *UploadHandler) Pairs() []Pair {
	return h.pairs
}

// ID returns the handler id used in logs.
func (h *UploadHandler) ID() string {
	return h.id
}
