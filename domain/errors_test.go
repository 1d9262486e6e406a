package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/relcheck/domain"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("should name the offending reference in validation errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.ValidationError{Reference: "https://example.com/o/r"}

		// then
		assert.Equal(t, "invalid GitHub URL: https://example.com/o/r", err.Error())
	})

	t.Run("should surface the API message verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.APIError{Message: "Not Found"}

		// then
		assert.Equal(t, "GitHub API error: Not Found", err.Error())
	})

	t.Run("should describe the payload shape problem", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.PayloadError{Reason: "non-object JSON"}

		// then
		assert.Equal(t, "GitHub API returned non-object JSON", err.Error())
	})

	t.Run("should include the side in parse errors when set", func(t *testing.T) {
		t.Parallel()

		// given
		tagged := &domain.ParseError{Side: domain.SideLocal, Input: "abc"}
		untagged := &domain.ParseError{Input: "abc"}

		// then
		assert.Equal(t, "invalid local semantic version: abc", tagged.Error())
		assert.Equal(t, "invalid semantic version: abc", untagged.Error())
	})

	t.Run("should unwrap the transport error from network errors", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("connection refused")
		err := &domain.NetworkError{URL: "https://api.github.com/x", Err: cause}

		// then
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "https://api.github.com/x")
		assert.Contains(t, err.Error(), "connection refused")
	})
}
