package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/myshows"
)

var (
	moviesPage     int
	moviesPageSize int
)

// moviesCmd groups the v3 movie commands
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse and manage movies (v3)",
}

var moviesGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Get movies by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			reply, err := client.GetMovieByID(cmd.Context(), ids[0])
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		}

		batch := client.GetMoviesByID(cmd.Context(), ids, concurrency)
		return printBatch(cmd.OutOrStdout(), ids, batch)
	},
}

var moviesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the movie catalogue",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.SearchMovies(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var moviesStatusCmd = &cobra.Command{
	Use:       "status <id> <finished|later|remove>",
	Short:     "Set the watch status of a movie",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"finished", "later", "remove"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}
		reply, err := client.SetMovieStatus(cmd.Context(), ids[0], myshows.MovieStatus(args[1]))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var moviesWatchedCmd = &cobra.Command{
	Use:   "watched [query]",
	Short: "List watched movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.WatchedMovies(cmd.Context(), strings.Join(args, " "), moviesPage, moviesPageSize)
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var moviesUnwatchedCmd = &cobra.Command{
	Use:   "unwatched [query]",
	Short: "List movies marked to watch later",
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.UnwatchedMovies(cmd.Context(), strings.Join(args, " "), moviesPage, moviesPageSize)
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

func init() {
	rootCmd.AddCommand(moviesCmd)

	moviesCmd.AddCommand(moviesGetCmd, moviesSearchCmd, moviesStatusCmd, moviesWatchedCmd, moviesUnwatchedCmd)

	moviesGetCmd.Flags().IntVar(&concurrency, "concurrency", myshows.DefaultConcurrency, "parallel requests when several ids are given")

	for _, c := range []*cobra.Command{moviesWatchedCmd, moviesUnwatchedCmd} {
		c.Flags().IntVar(&moviesPage, "page", 0, "page number")
		c.Flags().IntVar(&moviesPageSize, "page-size", myshows.DefaultCatalogPageSize, "movies per page")
	}
}
