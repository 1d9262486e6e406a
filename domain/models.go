package domain

// Verdict is the outcome of a single update check. LatestVersion carries the
// release tag exactly as reported by the API, never a re-normalized form.
type Verdict struct {
	HasUpdate     bool
	LatestVersion string
	LocalVersion  string
}
