package application

import (
	"context"
	"encoding/json"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/relcheck/domain"
)

// CheckService orchestrates a single update check:
// normalize the reference, fetch the latest release, extract the tag,
// then compare remote against local. Each stage short-circuits on the
// first failure and no state survives between invocations.
type CheckService struct {
	fetcher domain.Fetcher
}

// NewCheckService creates a new service using the given fetcher.
func NewCheckService(fetcher domain.Fetcher) *CheckService {
	return &CheckService{fetcher: fetcher}
}

// Evaluate checks whether the repository behind reference has a published
// release newer than localVersion.
func (s *CheckService) Evaluate(
	ctx context.Context,
	reference string,
	localVersion string,
) (domain.Verdict, error) {
	endpoint, err := domain.ReleaseEndpoint(reference)
	if err != nil {
		return domain.Verdict{}, err
	}
	logger.Debugf("Resolved %q to %s", reference, endpoint)

	body, err := s.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return domain.Verdict{}, err
	}

	tag, err := extractTag(body)
	if err != nil {
		return domain.Verdict{}, err
	}
	logger.Debugf("Latest release tag: %s", tag)

	local, err := parseSide(domain.SideLocal, localVersion)
	if err != nil {
		return domain.Verdict{}, err
	}

	remote, err := parseSide(domain.SideRemote, tag)
	if err != nil {
		return domain.Verdict{}, err
	}

	return domain.Verdict{
		HasUpdate:     remote.After(local),
		LatestVersion: tag,
		LocalVersion:  localVersion,
	}, nil
}

// extractTag pulls the release tag out of the API payload. A payload with a
// "message" field instead of a tag follows the GitHub API error convention
// (e.g. "Not Found" for an unknown repository).
func extractTag(body []byte) (string, error) {
	var payload map[string]any
	if unmarshalErr := json.Unmarshal(body, &payload); unmarshalErr != nil || payload == nil {
		return "", &domain.PayloadError{Reason: "non-object JSON"}
	}

	if tag, ok := payload["tag_name"].(string); ok {
		return tag, nil
	}

	if msg, ok := payload["message"].(string); ok {
		return "", &domain.APIError{Message: msg}
	}

	return "", &domain.PayloadError{Reason: "no valid tag_name"}
}

func parseSide(side domain.Side, text string) (domain.Version, error) {
	v, err := domain.ParseVersion(text)
	if err != nil {
		return domain.Version{}, &domain.ParseError{Side: side, Input: text}
	}
	return v, nil
}
