package domain

import "fmt"

// Side identifies which version string failed to parse during an evaluation.
type Side string

const (
	SideLocal  Side = "local"
	SideRemote Side = "remote"
)

// ValidationError reports a repository reference that is neither a GitHub
// web URL nor an already-resolved API URL.
type ValidationError struct {
	Reference string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid GitHub URL: %s", e.Reference)
}

// NetworkError reports a transport failure while fetching release metadata.
// It carries the transport's own error without classifying it further.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// PayloadError reports a response body that is not a JSON object or carries
// neither a tag_name nor a message field.
type PayloadError struct {
	Reason string
}

func (e *PayloadError) Error() string {
	return "GitHub API returned " + e.Reason
}

// APIError reports an error delivered through the GitHub API's own error
// convention: a JSON object with a "message" field instead of a release.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "GitHub API error: " + e.Message
}

// ParseError reports a version string without a parseable semantic version.
// Side is set by the evaluator to point at the local or remote input and is
// empty when parsing happens outside an evaluation.
type ParseError struct {
	Side  Side
	Input string
}

func (e *ParseError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("invalid semantic version: %s", e.Input)
	}
	return fmt.Sprintf("invalid %s semantic version: %s", e.Side, e.Input)
}
