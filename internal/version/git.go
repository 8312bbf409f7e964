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

package version

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultLength is the number of hash characters in a release version.
const DefaultLength = 7

var (
	// ErrNoRepository is returned when the path is not inside a git work tree.
	ErrNoRepository = errors.New("git repository not found")
	// ErrNoCommits is returned when HEAD doesn't point to a commit.
	ErrNoCommits = errors.New("git repository has no commits")
)

// Resolve returns the abbreviated hash of the HEAD commit of the repository
// containing path. Parent directories are searched for .git.
// If length is not positive, DefaultLength is used.
func Resolve(path string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNoRepository, path)
		}

		return "", fmt.Errorf("failed to open git repository %s: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNoCommits, path)
		}

		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	hash := head.Hash()
	if hash.IsZero() {
		return "", fmt.Errorf("%w: %s", ErrNoCommits, path)
	}

	sha := hash.String()
	if length < len(sha) {
		sha = sha[:length]
	}

	return sha, nil
}
