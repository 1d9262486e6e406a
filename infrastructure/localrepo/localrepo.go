// Package localrepo derives the locally installed version from an existing
// Git checkout when the caller does not supply one explicitly.
package localrepo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
)

// ErrNoTags is returned for repositories without any tags to derive a
// version from.
var ErrNoTags = errors.New("repository has no tags")

// LatestTag returns the highest version tag of the repository at path,
// ordered by semantic version with a lexicographic fallback for tags that
// are not valid semver.
func LatestTag(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %q: %w", path, err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []string
	forEachErr := iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if forEachErr != nil {
		return "", fmt.Errorf("failed to walk tags: %w", forEachErr)
	}

	if len(tags) == 0 {
		return "", ErrNoTags
	}

	sortVersionsDescending(tags)
	logger.Debugf("Found %d tags in %q, newest: %s", len(tags), path, tags[0])

	return tags[0], nil
}

// sortVersionsDescending orders tags newest-first, using semver ordering when
// both sides are valid and plain string comparison otherwise.
func sortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
