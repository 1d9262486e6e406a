package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// apiHostMarker identifies references that are already resolved API URLs.
const apiHostMarker = "api.github.com"

// repoPattern matches a GitHub web URL and captures owner and repository.
var repoPattern = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+)`)

// ReleaseEndpoint maps a repository reference to the releases-latest API
// endpoint. References already pointing at the API host pass through
// unchanged. A trailing ".git" on the repository name is stripped.
// Owner and repository are used verbatim; no percent-encoding is applied.
func ReleaseEndpoint(reference string) (string, error) {
	if strings.Contains(reference, apiHostMarker) {
		return reference, nil
	}

	m := repoPattern.FindStringSubmatch(reference)
	if m == nil {
		return "", &ValidationError{Reference: reference}
	}

	owner := m[1]
	repo := strings.TrimSuffix(m[2], ".git")

	return fmt.Sprintf(
		"https://%s/repos/%s/%s/releases/latest",
		apiHostMarker, owner, repo,
	), nil
}
