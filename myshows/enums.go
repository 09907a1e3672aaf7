package myshows

// APIVersion selects one of the two disjoint endpoint families
type APIVersion int

const (
	// V2 is the legacy JSON-RPC API authenticated with an OAuth bearer token
	V2 APIVersion = iota + 2
	// V3 is the newer JSON-RPC API authenticated with a session cookie
	V3
)

// String returns the string representation of an APIVersion
func (v APIVersion) String() string {
	switch v {
	case V2:
		return "v2"
	case V3:
		return "v3"
	default:
		return "unknown"
	}
}

// ParseAPIVersion parses "v2"/"v3" (or "2"/"3")
func ParseAPIVersion(s string) (APIVersion, bool) {
	switch s {
	case "v2", "2":
		return V2, true
	case "v3", "3":
		return V3, true
	default:
		return 0, false
	}
}

// List is a user list name
type List string

const (
	// ListFavorites is the favorites list, the default for list operations
	ListFavorites List = "favorites"
	// ListIgnored holds ignored episodes
	ListIgnored List = "ignored"
	// ListUnwatched holds unwatched episodes
	ListUnwatched List = "unwatched"
	// ListNext holds the next episodes to watch
	ListNext List = "next"
)

// Gender is a user gender filter
type Gender string

const (
	GenderMale    Gender = "m"
	GenderFemale  Gender = "f"
	GenderUnknown Gender = "x"
)

// GenderVote selects whose votes rank the top list
type GenderVote string

const (
	GenderVoteMale   GenderVote = "m"
	GenderVoteFemale GenderVote = "f"
	GenderVoteAll    GenderVote = "all"
)

// SpentTime is a wasted-time interval used by user search
type SpentTime int

const (
	SpentTimeNone SpentTime = iota + 1
	SpentTimeHour
	SpentTimeDay
	SpentTimeWeek
	SpentTimeMonth
	SpentTimeYear
)

// ShowSource is an external catalogue a show id can come from
type ShowSource string

const (
	ShowSourceTVRage    ShowSource = "tvrage"
	ShowSourceTVMaze    ShowSource = "tvmaze"
	ShowSourceTheTVDB   ShowSource = "thetvdb"
	ShowSourceIMDB      ShowSource = "imdb"
	ShowSourceKinopoisk ShowSource = "kinopoisk"
)

// ShowStatus is the watch status of a show on the user's profile
type ShowStatus string

const (
	ShowStatusWatching  ShowStatus = "watching"
	ShowStatusLater     ShowStatus = "later"
	ShowStatusCancelled ShowStatus = "cancelled"
	ShowStatusRemove    ShowStatus = "remove"
)

// MovieStatus is the watch status of a movie on the user's profile
type MovieStatus string

const (
	MovieStatusFinished MovieStatus = "finished"
	MovieStatusLater    MovieStatus = "later"
	MovieStatusRemove   MovieStatus = "remove"
)

// Rating is a 1-5 star rating. The server validates the range.
type Rating int

const (
	RatingMin Rating = 1
	RatingMax Rating = 5
)

// InRange reports whether the rating lies within 1-5
func (r Rating) InRange() bool {
	return r >= RatingMin && r <= RatingMax
}
