package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rios0rios0/relcheck/config"
	"github.com/rios0rios0/relcheck/domain"
)

// jsonVerdict is the wire shape of the --json rendering.
type jsonVerdict struct {
	HasUpdate     bool   `json:"has_update"`
	LatestVersion string `json:"latest_version"`
	LocalVersion  string `json:"local_version"`
}

// render writes the verdict in the selected output format.
func render(w io.Writer, verdict domain.Verdict, output string) error {
	if output == config.OutputJSON {
		return renderJSON(w, verdict)
	}
	renderText(w, verdict)
	return nil
}

func renderText(w io.Writer, verdict domain.Verdict) {
	state := color.GreenString("NO")
	if verdict.HasUpdate {
		state = color.YellowString("YES")
	}

	fmt.Fprintf(w, "Local version:  %s\n", verdict.LocalVersion)
	fmt.Fprintf(w, "Remote version: %s\n", verdict.LatestVersion)
	fmt.Fprintf(w, "Update:         %s\n", state)
}

func renderJSON(w io.Writer, verdict domain.Verdict) error {
	data, err := json.MarshalIndent(jsonVerdict{
		HasUpdate:     verdict.HasUpdate,
		LatestVersion: verdict.LatestVersion,
		LocalVersion:  verdict.LocalVersion,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render verdict: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}
