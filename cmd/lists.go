package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/myshows"
)

var episodeList string

// listsCmd groups the list commands. Lists default to favorites.
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage your show and episode lists",
}

var listsShowsCmd = &cobra.Command{
	Use:   "shows [list]",
	Short: "List the shows on a list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.ListShows(cmd.Context(), myshows.List(firstArg(args)))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var listsEpisodesCmd = &cobra.Command{
	Use:       "episodes [list]",
	Short:     "List the episodes on a list",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"favorites", "ignored", "unwatched", "next"},
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.ListEpisodes(cmd.Context(), myshows.List(firstArg(args)))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

// listEdit builds an add/remove command for one id
func listEdit(use, short string, run func(cmd *cobra.Command, id int) (*myshows.Reply[bool], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			reply, err := run(cmd, ids[0])
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

func init() {
	rootCmd.AddCommand(listsCmd)

	addEpisode := listEdit("add-episode", "Add an episode to a list", func(cmd *cobra.Command, id int) (*myshows.Reply[bool], error) {
		return client.AddEpisodeToList(cmd.Context(), id, myshows.List(episodeList))
	})
	removeEpisode := listEdit("remove-episode", "Remove an episode from a list", func(cmd *cobra.Command, id int) (*myshows.Reply[bool], error) {
		return client.RemoveEpisodeFromList(cmd.Context(), id, myshows.List(episodeList))
	})
	for _, c := range []*cobra.Command{addEpisode, removeEpisode} {
		c.Flags().StringVar(&episodeList, "list", string(myshows.ListFavorites), "target list (favorites, ignored, unwatched, next)")
	}

	listsCmd.AddCommand(
		listsShowsCmd,
		listsEpisodesCmd,
		listEdit("add-show", "Add a show to favorites", func(cmd *cobra.Command, id int) (*myshows.Reply[bool], error) {
			return client.AddShowToList(cmd.Context(), id)
		}),
		listEdit("remove-show", "Remove a show from favorites", func(cmd *cobra.Command, id int) (*myshows.Reply[bool], error) {
			return client.RemoveShowFromList(cmd.Context(), id)
		}),
		addEpisode,
		removeEpisode,
	)
}
