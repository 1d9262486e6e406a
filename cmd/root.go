package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/relcheck/config"
	"github.com/rios0rios0/relcheck/domain"
	"github.com/rios0rios0/relcheck/infrastructure/localrepo"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath     string
	timeoutSeconds int
	jsonOutput     bool
	verbose        bool
	gitDir         string

	// outcome of the last run, used for the exit-status mapping
	verdict *domain.Verdict
	started bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "relcheck <repository> [local-version]",
	Short: "Check whether a GitHub repository has a newer published release",
	Long: `Check whether a newer release of a GitHub repository has been published
than the version you have locally.

The repository may be given as a web URL (https://github.com/owner/repo,
optionally ending in .git) or as an already-resolved api.github.com URL.
The local version is either passed as the second argument or derived from
the newest tag of a local checkout via --git.

Exit status: 0 when up to date, 2 when an update is available,
1 on usage errors, 3 on runtime errors.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0,
		"HTTP timeout in seconds (overrides config)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Render the verdict as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.Flags().StringVar(&gitDir, "git", "",
		"Derive the local version from the newest tag of this repository")
}

// Execute runs the CLI and maps the outcome to the process exit status:
// 0 no update, 2 update available, 1 usage error, 3 runtime error.
func Execute() int {
	verdict = nil
	started = false

	if err := rootCmd.Execute(); err != nil {
		if !started {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			_ = rootCmd.Usage()
			return 1
		}
		logger.Errorf("Check failed: %v", err)
		return 3
	}

	if verdict != nil && verdict.HasUpdate {
		return 2
	}
	return 0
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) < 2 && gitDir == "" {
		return errors.New("a local version argument or --git is required")
	}
	started = true

	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	localVersion, err := resolveLocalVersion(args)
	if err != nil {
		return err
	}

	svc, err := injectCheckService(cfg)
	if err != nil {
		return err
	}

	result, err := svc.Evaluate(ctx, args[0], localVersion)
	if err != nil {
		return err
	}
	verdict = &result

	return render(cmd.OutOrStdout(), result, cfg.Output)
}

// loadConfig resolves the effective configuration: explicit --config path,
// then auto-detected file, then built-in defaults, with CLI flags on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := configPath
	if path == "" {
		if found, findErr := config.FindConfigFile(); findErr == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Using config file: %s", path)
		cfg = loaded
	}

	if timeoutSeconds > 0 {
		cfg.TimeoutSeconds = timeoutSeconds
	}
	if jsonOutput {
		cfg.Output = config.OutputJSON
	}

	return cfg, nil
}

// resolveLocalVersion prefers the positional argument and falls back to the
// newest tag of the repository named by --git.
func resolveLocalVersion(args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}

	tag, err := localrepo.LatestTag(gitDir)
	if err != nil {
		return "", fmt.Errorf("failed to derive local version from %q: %w", gitDir, err)
	}
	logger.Infof("Using local version %s from %s", tag, gitDir)

	return tag, nil
}
