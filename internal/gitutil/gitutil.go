// Package gitutil reads metadata from a local Git repository. codepack only
// ever opens existing working trees; it never clones, fetches, or writes.
package gitutil

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository indicates the path is not inside a Git working tree.
var ErrNotRepository = errors.New("not a git repository")

// HeadSHA returns the HEAD commit hash of the repository at path. Callers
// treat ErrNotRepository as a non-event: snapshots of plain directories are
// just as valid as snapshots of repositories.
func HeadSHA(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("open repository at %s: %w", path, err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
