package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "lightning-bot/sanctum-go"

var checkOnly bool

// updateCmd replaces the running binary with the latest GitLab release
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update sanctumctl to the latest release",
	Long: `Check GitLab for a newer sanctumctl release and install it in place of the
running binary. Use --check to only report whether an update is available.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipClientAnnotation: "true"},
	RunE:        runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	source, err := selfupdate.NewGitLabSource(selfupdate.GitLabConfig{})
	if err != nil {
		return fmt.Errorf("failed to create release source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		fmt.Fprintln(out, "No release found for this platform.")
		return nil
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("release has invalid version %q: %w", latest.Version(), err)
	}

	if !latestVersion.GT(current) {
		fmt.Fprintf(out, "✓ sanctumctl %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Update available: %s → %s\n", current, latestVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", latestVersion.String()).
		Msg("Updating sanctumctl")

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated sanctumctl to %s\n", latestVersion)
	return nil
}
