package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows/myshows"
)

var (
	noEpisodes   bool
	concurrency  int
	externalFrom string
	topGender    string
	topCount     int
	checkRating  int
)

// showsCmd groups the show commands
var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "Browse and manage shows",
}

var showsGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Get shows by id",
	Long:  `Get one or more shows. Several ids are fetched concurrently.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		var opts []myshows.ShowOption
		if noEpisodes {
			opts = append(opts, myshows.WithoutEpisodes())
		}

		if len(ids) == 1 {
			reply, err := client.GetShowByID(cmd.Context(), ids[0], opts...)
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		}

		batch := client.GetShowsByID(cmd.Context(), ids, concurrency, opts...)
		return printBatch(cmd.OutOrStdout(), ids, batch)
	},
}

var showsExternalCmd = &cobra.Command{
	Use:   "external <id>",
	Short: "Resolve a show from a foreign catalogue id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		reply, err := client.GetShowByExternalID(cmd.Context(), ids[0], myshows.ShowSource(externalFrom))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shows by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.SearchShows(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsEpisodeCmd = &cobra.Command{
	Use:   "episode <id>",
	Short: "Get an episode by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		reply, err := client.GetEpisode(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List show genres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.Genres(cmd.Context())
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List top rated shows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := client.TopShows(cmd.Context(), myshows.GenderVote(topGender), topCount)
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsStatusCmd = &cobra.Command{
	Use:       "status <id> <watching|later|cancelled|remove>",
	Short:     "Set the watch status of a show",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"watching", "later", "cancelled", "remove"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}
		reply, err := client.SetShowStatus(cmd.Context(), ids[0], myshows.ShowStatus(args[1]))
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsRateCmd = &cobra.Command{
	Use:   "rate <id> <1-5>",
	Short: "Rate a show",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}
		rating, err := ratingArg(args[1])
		if err != nil {
			return err
		}
		reply, err := client.RateShow(cmd.Context(), ids[0], rating)
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsCheckCmd = &cobra.Command{
	Use:   "check <episode-id>",
	Short: "Mark an episode as watched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		rating := mo.None[myshows.Rating]()
		if cmd.Flags().Changed("rating") {
			rating = mo.Some(myshows.Rating(checkRating))
		}

		reply, err := client.CheckEpisode(cmd.Context(), ids[0], rating)
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

var showsUncheckCmd = &cobra.Command{
	Use:   "uncheck <episode-id>",
	Short: "Mark an episode as not watched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		reply, err := client.UnCheckEpisode(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), reply)
	},
}

func init() {
	rootCmd.AddCommand(showsCmd)

	showsCmd.AddCommand(showsGetCmd, showsExternalCmd, showsSearchCmd, showsEpisodeCmd,
		showsGenresCmd, showsTopCmd, showsStatusCmd, showsRateCmd, showsCheckCmd, showsUncheckCmd)

	showsGetCmd.Flags().BoolVar(&noEpisodes, "no-episodes", false, "leave the episode list out")
	showsGetCmd.Flags().IntVar(&concurrency, "concurrency", myshows.DefaultConcurrency, "parallel requests when several ids are given")

	showsExternalCmd.Flags().StringVar(&externalFrom, "source", string(myshows.ShowSourceIMDB),
		"catalogue the id comes from (tvrage, tvmaze, thetvdb, imdb, kinopoisk)")

	showsTopCmd.Flags().StringVar(&topGender, "gender", string(myshows.GenderVoteAll), "whose votes rank the list (m, f, all)")
	showsTopCmd.Flags().IntVar(&topCount, "count", myshows.DefaultTopCount, "number of shows")

	showsCheckCmd.Flags().IntVar(&checkRating, "rating", 0, "also rate the episode "+strconv.Itoa(int(myshows.RatingMin))+"-"+strconv.Itoa(int(myshows.RatingMax)))
}

// ratingArg parses a 1-5 rating argument
func ratingArg(s string) (myshows.Rating, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: %w", s, err)
	}
	return myshows.Rating(n), nil
}
