package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// repositorySlug is where releases are published
const repositorySlug = "s0up4200/myshows"

var updateYes bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update myshows to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "update without asking")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion()
	if err != nil {
		return fmt.Errorf("cannot self-update: %w", err)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return errors.New("no release found for this platform")
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Already up to date (v%s)\n", current)
		return nil
	}

	if !updateYes {
		confirm := survey.Confirm{
			Message: fmt.Sprintf("Update v%s to v%s?", current, latest.Version()),
			Default: true,
		}
		var proceed bool
		if err := survey.AskOne(&confirm, &proceed); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if !proceed {
			return nil
		}
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().Str("from", current.String()).Str("to", latest.Version()).Str("asset", latest.AssetName).Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated to v%s\n", latest.Version())
	return nil
}
