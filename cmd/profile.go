package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/myshows"
)

// profileCmd prints a user profile; the subcommands cover the rest of the
// profile namespace
var profileCmd = &cobra.Command{
	Use:   "profile [login]",
	Short: "Show a user profile (defaults to you)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.Profile(cmd.Context(), firstArg(args))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

// loginCommand builds a profile subcommand taking an optional login
func loginCommand(use, short string, call func(*myshows.Client, context.Context, string) (*myshows.Reply[json.RawMessage], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [login]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := call(client, cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

// selfCommand builds a profile subcommand about the logged in user
func selfCommand(use, short string, call func(*myshows.Client, context.Context) (*myshows.Reply[json.RawMessage], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := call(client, cmd.Context())
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

var profileShowsCmd = &cobra.Command{
	Use:   "shows [login]",
	Short: "List the shows on a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.ProfileShows(cmd.Context(), firstArg(args))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var profileEpisodesCmd = &cobra.Command{
	Use:   "episodes <show-id>",
	Short: "List your watched episodes of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		reply, err := client.ProfileEpisodes(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.AddCommand(
		loginCommand("feed", "Show a profile's activity feed", (*myshows.Client).ProfileFeed),
		loginCommand("friends", "List a profile's friends", (*myshows.Client).ProfileFriends),
		loginCommand("followers", "List a profile's followers", (*myshows.Client).ProfileFollowers),
		selfCommand("friends-feed", "Show your friends' activity", (*myshows.Client).ProfileFriendsFeed),
		selfCommand("achievements", "List your achievements", (*myshows.Client).ProfileAchievements),
		selfCommand("comments", "List new replies to your comments", (*myshows.Client).ProfileNewComments),
		profileShowsCmd,
		profileEpisodesCmd,
	)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
