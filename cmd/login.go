package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/myshows"
	"github.com/s0up4200/myshows/sessionstore"
)

var loginAPIs []string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the issued sessions",
	Long: `Exchange the configured credentials for v2 and v3 sessions and keep them
in the OS keyring. Missing username or password are prompted for.`,
	RunE: runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored sessions",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringSliceVar(&loginAPIs, "api", []string{"v2", "v3"}, "API versions to log in to")
}

func runLogin(cmd *cobra.Command, args []string) error {
	versions, err := parseVersions(loginAPIs)
	if err != nil {
		return err
	}

	if err := promptCredentials(); err != nil {
		return err
	}

	// Credentials may have changed; rebuild client and store for the account
	c, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MyShows client: %w", err)
	}
	store = newStore(cfg)

	ctx := cmd.Context()
	for _, v := range versions {
		var session *myshows.Session
		switch v {
		case myshows.V2:
			session, err = c.Login(ctx)
		case myshows.V3:
			session, err = c.LoginV3(ctx)
		}
		if err != nil {
			return fmt.Errorf("%s login failed: %w", v, err)
		}

		if err := store.Save(session); err != nil {
			logger.Warn().Err(err).Str("version", v.String()).Msg("Failed to store session")
		}
		c = c.WithSession(session)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in to %s as %s\n", v, cfg.Credentials.Username)
	}

	if _, ok := store.(sessionstore.Nop); ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Session persistence is disabled; sessions last for this run only.")
	}

	client = c
	return nil
}

// promptCredentials asks for whatever account details config left empty
func promptCredentials() error {
	if cfg.Credentials.Username == "" {
		input := survey.Input{
			Message: "MyShows login:",
		}
		if err := survey.AskOne(&input, &cfg.Credentials.Username, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	if cfg.Credentials.Password == "" {
		password := survey.Password{
			Message: fmt.Sprintf("Password for %s:", cfg.Credentials.Username),
		}
		if err := survey.AskOne(&password, &cfg.Credentials.Password, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	for _, v := range []myshows.APIVersion{myshows.V2, myshows.V3} {
		if err := store.Delete(v); err != nil {
			return fmt.Errorf("failed to delete %s session: %w", v, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Stored sessions removed")
	return nil
}

// parseVersions maps "v2"/"v3" flag values to API versions
func parseVersions(values []string) ([]myshows.APIVersion, error) {
	versions := make([]myshows.APIVersion, 0, len(values))
	for _, s := range lo.Uniq(values) {
		v, ok := myshows.ParseAPIVersion(s)
		if !ok {
			return nil, fmt.Errorf("unknown API version %q (want v2 or v3)", s)
		}
		versions = append(versions, v)
	}
	return versions, nil
}
