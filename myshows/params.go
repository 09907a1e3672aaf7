package myshows

// Param shapes sent as the "params" member. Field names follow the wire
// names; zero-valued optional fields are omitted.

// NoParams encodes as an empty object
type NoParams struct{}

// LoginParams selects a user profile
type LoginParams struct {
	Login string `json:"login"`
}

// IDParams identifies a show or an episode
type IDParams struct {
	ID int `json:"id"`
}

// ShowIDParams identifies a show
type ShowIDParams struct {
	ShowID int `json:"showId"`
}

// ShowByIDParams requests a show, optionally with its episodes
type ShowByIDParams struct {
	ShowID       int  `json:"showId"`
	WithEpisodes bool `json:"withEpisodes"`
}

// ExternalIDParams identifies a show by a foreign catalogue id
type ExternalIDParams struct {
	ID     int        `json:"id"`
	Source ShowSource `json:"source"`
}

// QueryParams is a free-text query
type QueryParams struct {
	Query string `json:"query"`
}

// FileParams is a media file name to match
type FileParams struct {
	File string `json:"file"`
}

// IdsParams pages through show ids
type IdsParams struct {
	FromID int `json:"fromId"`
	Count  int `json:"count"`
}

// TopParams ranks shows by votes
type TopParams struct {
	Mode  GenderVote `json:"mode"`
	Count int        `json:"count"`
}

// CountParams limits the number of items returned
type CountParams struct {
	Count int `json:"count"`
}

// ListParams selects a user list
type ListParams struct {
	List List `json:"list"`
}

// ListItemParams adds or removes one item of a list
type ListItemParams struct {
	ID   int  `json:"id"`
	List List `json:"list"`
}

// ShowStatusParams sets a show's watch status
type ShowStatusParams struct {
	ID     int        `json:"id"`
	Status ShowStatus `json:"status"`
}

// MovieStatusParams sets a movie's watch status
type MovieStatusParams struct {
	MovieID int         `json:"movieId"`
	Status  MovieStatus `json:"status"`
}

// RatingParams rates a show or an episode
type RatingParams struct {
	ID     int    `json:"id"`
	Rating Rating `json:"rating"`
}

// CheckEpisodeParams marks an episode watched with an optional rating
type CheckEpisodeParams struct {
	ID     int     `json:"id"`
	Rating *Rating `json:"rating,omitempty"`
}

// RateEpisodesBulkParams groups episode ids by the rating to apply
type RateEpisodesBulkParams struct {
	ID int   `json:"id,omitempty"`
	R1 []int `json:"r1"`
	R2 []int `json:"r2"`
	R3 []int `json:"r3"`
	R4 []int `json:"r4"`
	R5 []int `json:"r5"`
}

// SyncEpisodesParams replaces the set of watched episodes of a show
type SyncEpisodesParams struct {
	ShowID     int   `json:"showId"`
	EpisodeIDs []int `json:"episodeIds"`
}

// SyncEpisodesDeltaParams checks and unchecks episodes of a show
type SyncEpisodesDeltaParams struct {
	ShowID       int   `json:"showId"`
	CheckedIDs   []int `json:"checkedIds"`
	UnCheckedIDs []int `json:"unCheckedIds"`
}

// EpisodeCommentsParams identifies an episode's comment thread
type EpisodeCommentsParams struct {
	EpisodeID int `json:"episodeId"`
}

// TrackCommentsParams subscribes to an episode's comment thread
type TrackCommentsParams struct {
	EpisodeID int  `json:"episodeId"`
	IsTracked bool `json:"isTracked"`
}

// VoteCommentParams votes on a comment
type VoteCommentParams struct {
	CommentID  int  `json:"commentId"`
	IsPositive bool `json:"isPositive"`
}

// PostCommentParams posts an episode comment, optionally as a reply
type PostCommentParams struct {
	EpisodeID       int    `json:"episodeId"`
	Text            string `json:"text"`
	Image           string `json:"image,omitempty"`
	ParentCommentID int    `json:"parentCommentId,omitempty"`
}

// TranslateCommentParams requests a comment translation
type TranslateCommentParams struct {
	CommentID int    `json:"commentId"`
	Language  string `json:"language"`
}

// UserSearch filters users. Only the four known fields are ever sent.
type UserSearch struct {
	Query  string    `json:"query,omitempty"`
	Wasted SpentTime `json:"wasted,omitempty"`
	Year   int       `json:"year,omitempty"`
	Gender Gender    `json:"gender,omitempty"`
}

// SearchParams wraps a search object
type SearchParams[S any] struct {
	Search S `json:"search"`
}

// PagedSearchParams wraps a search object with paging
type PagedSearchParams[S any] struct {
	Search   S   `json:"search"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NotesSearch filters notes by what they are attached to
type NotesSearch struct {
	IsShow    bool `json:"isShow"`
	IsEpisode bool `json:"isEpisode"`
}

// NoteSaveParams attaches a note to a show or an episode
type NoteSaveParams struct {
	ShowID    int    `json:"showId,omitempty"`
	EpisodeID int    `json:"episodeId,omitempty"`
	Text      string `json:"text"`
}

// NewsSearch filters news items
type NewsSearch struct {
	ShowID         int    `json:"showId,omitempty"`
	EpisodeID      int    `json:"episodeId,omitempty"`
	Category       string `json:"category,omitempty"`
	Tag            string `json:"tag,omitempty"`
	IsTrailer      bool   `json:"isTrailer,omitempty"`
	SimilarNewsID  int    `json:"similarNewsId,omitempty"`
	ForCurrentUser bool   `json:"forCurrentUser,omitempty"`
}

// NewsIDParams identifies a news item
type NewsIDParams struct {
	NewsID int `json:"newsId"`
}

// MetaParams asks for page metadata
type MetaParams struct {
	URL string `json:"url"`
}

// MovieSearchQuery filters the movie catalogue
type MovieSearchQuery struct {
	Query string `json:"query,omitempty"`
}
