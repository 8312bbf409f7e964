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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairAssets(t *testing.T) {
	t.Parallel()

	names := []string{
		"app.js",
		"app.map",
		"vendor-1a2b3c.js",
		"vendor-1a2b3c.map",
		"app.css",
		"app.json",
		"app.js.gz",
		"engine.mjs",
	}

	pairs := PairAssets(names)
	require.Equal(t, []Pair{
		{Script: "app.js", Map: "app.map"},
		{Script: "vendor-1a2b3c.js", Map: "vendor-1a2b3c.map"},
	}, pairs)
}

func TestPairAssets_CountMatchesScripts(t *testing.T) {
	t.Parallel()

	for n := 0; n < 20; n++ {
		names := make([]string, 0, 2*n)
		for i := 0; i < n; i++ {
			names = append(names, fmt.Sprintf("chunk.%d.js", i), fmt.Sprintf("chunk.%d.css", i))
		}

		pairs := PairAssets(names)
		require.Len(t, pairs, n)

		for i, p := range pairs {
			require.Equal(t, fmt.Sprintf("chunk.%d.js", i), p.Script)
			require.Equal(t, fmt.Sprintf("chunk.%d.map", i), p.Map)
		}
	}
}

func TestPairAssets_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, PairAssets(nil))
	require.NotNil(t, PairAssets(nil))
	require.Empty(t, PairAssets([]string{"app.css", "index.html", "js"}))
}

func TestMapName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "app.map", MapName("app.js"))
	require.Equal(t, "js.map", MapName("js.js"))
	require.Equal(t, "app.min.map", MapName("app.min.js"))
}

func TestMinifiedURL(t *testing.T) {
	t.Parallel()

	const want = "https://example.com/assets/app.js"

	hosts := []string{"https://example.com", "https://example.com/", "https://example.com//"}
	prefixes := []string{"assets", "/assets", "assets/", "/assets/", "//assets//"}

	for _, host := range hosts {
		for _, prefix := range prefixes {
			require.Equal(t, want, MinifiedURL(host, prefix, "app.js"), "host %q prefix %q", host, prefix)
		}
	}
}

func TestMinifiedURL_Edges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host, prefix, script string
		want                 string
	}{
		{"https://example.com", "", "app.js", "https://example.com/app.js"},
		{"https://example.com/", "/", "app.js", "https://example.com/app.js"},
		{"https://cdn.example.com/app", "static/assets", "app.js", "https://cdn.example.com/app/static/assets/app.js"},
		{"//example.com", "assets", "chunks/app.js", "//example.com/assets/chunks/app.js"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, MinifiedURL(tt.host, tt.prefix, tt.script))
	}
}

func TestAssetSet_ResolveMap(t *testing.T) {
	t.Parallel()

	set := newAssetSet([]string{"app.js", "app.map", "vendor.js", "vendor.map.gz", "lazy.js", "lazy.map.zst", "orphan.js"})

	name, err := set.validatePair(Pair{Script: "app.js", Map: "app.map"})
	require.NoError(t, err)
	require.Equal(t, "app.map", name)

	name, err = set.validatePair(Pair{Script: "vendor.js", Map: "vendor.map"})
	require.NoError(t, err)
	require.Equal(t, "vendor.map.gz", name)

	name, err = set.validatePair(Pair{Script: "lazy.js", Map: "lazy.map"})
	require.NoError(t, err)
	require.Equal(t, "lazy.map.zst", name)

	_, err = set.validatePair(Pair{Script: "orphan.js", Map: "orphan.map"})
	require.ErrorIs(t, err, ErrMissingSourceMap)
	require.ErrorContains(t, err, "orphan.map (for orphan.js)")
}
