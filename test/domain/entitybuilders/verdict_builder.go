package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/relcheck/domain"
)

// VerdictBuilder helps create test verdicts with a fluent interface.
type VerdictBuilder struct {
	*testkit.BaseBuilder
	hasUpdate     bool
	latestVersion string
	localVersion  string
}

// NewVerdictBuilder creates a new verdict builder with sensible defaults.
func NewVerdictBuilder() *VerdictBuilder {
	return &VerdictBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		hasUpdate:     false,
		latestVersion: "v1.0.0",
		localVersion:  "1.0.0",
	}
}

// WithHasUpdate sets the update flag.
func (b *VerdictBuilder) WithHasUpdate(hasUpdate bool) *VerdictBuilder {
	b.hasUpdate = hasUpdate
	return b
}

// WithLatestVersion sets the remote release tag text.
func (b *VerdictBuilder) WithLatestVersion(version string) *VerdictBuilder {
	b.latestVersion = version
	return b
}

// WithLocalVersion sets the local version text.
func (b *VerdictBuilder) WithLocalVersion(version string) *VerdictBuilder {
	b.localVersion = version
	return b
}

// Build creates the verdict (satisfies testkit.Builder interface).
func (b *VerdictBuilder) Build() interface{} {
	return b.BuildVerdict()
}

// BuildVerdict creates the verdict with a concrete return type.
func (b *VerdictBuilder) BuildVerdict() domain.Verdict {
	return domain.Verdict{
		HasUpdate:     b.hasUpdate,
		LatestVersion: b.latestVersion,
		LocalVersion:  b.localVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VerdictBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hasUpdate = false
	b.latestVersion = "v1.0.0"
	b.localVersion = "1.0.0"
	return b
}

// Clone creates a deep copy of the VerdictBuilder.
func (b *VerdictBuilder) Clone() testkit.Builder {
	return &VerdictBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hasUpdate:     b.hasUpdate,
		latestVersion: b.latestVersion,
		localVersion:  b.localVersion,
	}
}
