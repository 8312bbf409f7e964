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

package local

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	ioStorage "github.com/releasetools/sourcemaps-go/io/storage"
	"github.com/stretchr/testify/require"
)

func createTmpFile(dir, fileName, content string) error {
	return os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o600)
}

func TestReader_ListObjects(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	require.NoError(t, createTmpFile(dir, "app.js", "js"))
	require.NoError(t, createTmpFile(dir, "app.map", "map"))
	require.NoError(t, createTmpFile(dir, "vendor.css", "css"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chunks"), os.ModePerm))
	require.NoError(t, createTmpFile(filepath.Join(dir, "chunks"), "chunk.js", "js"))

	r := NewReader()
	list, err := r.ListObjects(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{"app.js", "app.map", "vendor.css"}, list)
}

func TestReader_ListObjects_Nested(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	require.NoError(t, createTmpFile(dir, "app.js", "js"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chunks"), os.ModePerm))
	require.NoError(t, createTmpFile(filepath.Join(dir, "chunks"), "chunk.js", "js"))

	r := NewReader(ioStorage.WithNestedDir())
	list, err := r.ListObjects(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{"app.js", "chunks/chunk.js"}, list)
}

func TestReader_ListObjects_Empty(t *testing.T) {
	t.Parallel()

	r := NewReader()
	list, err := r.ListObjects(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestReader_ListObjects_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, createTmpFile(dir, "file.txt", "txt"))

	r := NewReader()

	_, err := r.ListObjects(context.Background(), filepath.Join(dir, "missing"))
	require.ErrorContains(t, err, "failed to get path info")

	_, err = r.ListObjects(context.Background(), filepath.Join(dir, "file.txt"))
	require.ErrorIs(t, err, ioStorage.ErrNotDirectory)
}

func TestReader_ListObjects_Canceled(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, createTmpFile(dir, "app.js", "js"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader().ListObjects(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReader_LogsListingAndOpen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, createTmpFile(dir, "app.js", "js"))
	require.NoError(t, createTmpFile(dir, "app.map", "{}"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := NewReader(ioStorage.WithLogger(logger))

	_, err := r.ListObjects(context.Background(), dir)
	require.NoError(t, err)

	f, err := r.OpenObject(context.Background(), filepath.Join(dir, "app.map"))
	require.NoError(t, err)
	require.NoError(t, f.Reader.Close())

	out := logs.String()
	require.Contains(t, out, `msg="listed assets"`)
	require.Contains(t, out, "objects=2")
	require.Contains(t, out, `msg="opened asset"`)
	require.Contains(t, out, "size=2")
}

func TestReader_OpenObject(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, createTmpFile(dir, "app.map", `{"version":3}`))

	r := NewReader()
	f, err := r.OpenObject(context.Background(), filepath.Join(dir, "app.map"))
	require.NoError(t, err)
	defer f.Reader.Close()

	require.Equal(t, "app.map", f.Name)
	require.Equal(t, int64(13), f.Size)

	content, err := io.ReadAll(f.Reader)
	require.NoError(t, err)
	require.Equal(t, `{"version":3}`, string(content))
}

func TestReader_OpenObject_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewReader().OpenObject(context.Background(), filepath.Join(t.TempDir(), "app.map"))
	require.ErrorIs(t, err, ioStorage.ErrNotFound)
}

func TestReader_GetType(t *testing.T) {
	t.Parallel()
	require.Equal(t, localType, NewReader().GetType())
}
