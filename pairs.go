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
	"strings"

	"github.com/releasetools/sourcemaps-go/io/compression"
)

const (
	extScript    = ".js"
	suffixScript = "js"
	suffixMap    = "map"
)

// Pair is a minified script and the source map built for it.
type Pair struct {
	Script string
	Map    string
}

// MapName returns the source map name for a script: the final "js" is replaced with "map".
func MapName(script string) string {
	return strings.TrimSuffix(script, suffixScript) + suffixMap
}

// PairAssets returns a pair for every ".js" name, in the order of names.
// Existence of the map is not checked here.
func PairAssets(names []string) []Pair {
	pairs := make([]Pair, 0)

	for _, name := range names {
		if !strings.HasSuffix(name, extScript) {
			continue
		}

		pairs = append(pairs, Pair{Script: name, Map: MapName(name)})
	}

	return pairs
}

// MinifiedURL returns the public URL of script: {host}/{assetsURL}/{script}.
// Slashes at the joints are normalized to exactly one.
func MinifiedURL(host, assetsURL, script string) string {
	parts := make([]string, 0, 3)
	parts = append(parts, strings.TrimRight(host, "/"))

	if prefix := strings.Trim(assetsURL, "/"); prefix != "" {
		parts = append(parts, prefix)
	}

	parts = append(parts, strings.TrimLeft(script, "/"))

	return strings.Join(parts, "/")
}

// assetSet is a set of names listed in the assets directory.
type assetSet map[string]struct{}

func newAssetSet(names []string) assetSet {
	set := make(assetSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// validatePair returns the name of the stored source map for the pair.
// A pre-compressed map is used when the plain one is absent.
func (s assetSet) validatePair(pair Pair) (string, error) {
	if _, ok := s[pair.Map]; ok {
		return pair.Map, nil
	}

	for _, ext := range compression.Extensions {
		if _, ok := s[pair.Map+ext]; ok {
			return pair.Map + ext, nil
		}
	}

	return "", fmt.Errorf("%w: %s (for %s)", ErrMissingSourceMap, pair.Map, pair.Script)
}
