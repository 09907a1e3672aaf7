package myshows

// Episode is a show episode
type Episode struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	ShowID        int      `json:"showId"`
	SeasonNumber  int      `json:"seasonNumber"`
	EpisodeNumber int      `json:"episodeNumber"`
	AirDate       string   `json:"airDate"`
	AirDateUTC    string   `json:"airDateUTC"`
	Images        []string `json:"images"`
	Image         string   `json:"image"`
	ShortName     string   `json:"shortName"`
	CommentsCount int      `json:"commentsCount"`
	IsSpecial     int      `json:"isSpecial"`
}

// OuterLink is a link to an external streaming or info page
type OuterLink struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}

// Kinopoisk holds the Kinopoisk cross-reference; every field may be null
type Kinopoisk struct {
	KinopoiskID     *int     `json:"kinopoiskId,omitempty"`
	KinopoiskRating *float64 `json:"kinopoiskRating,omitempty"`
	KinopoiskVoted  *int     `json:"kinopoiskVoted,omitempty"`
	KinopoiskURL    *string  `json:"kinopoiskUrl,omitempty"`
}

// IMDB holds the IMDb cross-reference; every field may be null
type IMDB struct {
	IMDBID     *int     `json:"imdbId,omitempty"`
	IMDBRating *float64 `json:"imdbRating,omitempty"`
	IMDBVoted  *int     `json:"imdbVoted,omitempty"`
	IMDBURL    *string  `json:"imdbUrl,omitempty"`
}

// Media holds the fields shows and movies share
type Media struct {
	Kinopoisk
	IMDB

	ID            int     `json:"id"`
	Title         string  `json:"title"`
	TitleOriginal string  `json:"titleOriginal"`
	Description   string  `json:"description,omitempty"`
	Status        string  `json:"status"`
	Year          int     `json:"year"`
	WatchingTotal int     `json:"watchingTotal,omitempty"`
	Voted         int     `json:"voted"`
	Rating        float64 `json:"rating"`
	Runtime       int     `json:"runtime"`
	Image         string  `json:"image"`
	GenreIDs      []int   `json:"genreIds"`
}

// Network is a broadcaster
type Network struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Country string `json:"country"`
}

// Show is a TV show. Episodes is nil unless requested.
type Show struct {
	Media

	Started             string      `json:"started"`
	Ended               string      `json:"ended"`
	TotalSeasons        int         `json:"totalSeasons"`
	Episodes            []Episode   `json:"episodes"`
	OnlineLinks         []OuterLink `json:"onlineLinks"`
	OnlineLinkExclusive *OuterLink  `json:"onlineLinkExclusive"`
	Country             string      `json:"country"`
	CountryTitle        string      `json:"countryTitle"`
	TVRageID            int         `json:"tvrageId"`
	Watching            int         `json:"watching"`
	RuntimeTotal        string      `json:"runtimeTotal"`
	Images              []string    `json:"images"`
	Network             Network     `json:"network"`
}

// ImageInfo describes a movie poster
type ImageInfo struct {
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Blurhash   string `json:"blurhash,omitempty"`
}

// Country is a production country
type Country struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// Company is a production company
type Company struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Movie is a film served by the v3 API
type Movie struct {
	Media

	Countries           []Country `json:"countries"`
	ProductionCompanies []Company `json:"productionCompanies,omitempty"`
	ReleaseDate         string    `json:"releaseDate"`
	Watched             int       `json:"watched"`
	RuntimeText         string    `json:"runtimeText"`
	ImageInfo           ImageInfo `json:"imageInfo"`
	HasBackgroundImage  bool      `json:"hasBackgroundImage,omitempty"`
	CommentsTotal       int       `json:"commentsTotal,omitempty"`
	CommentsNew         int       `json:"commentsNew,omitempty"`
}

// UserMovie is the signed-in user's state for a movie
type UserMovie struct {
	ID          int     `json:"id"`
	WatchStatus *string `json:"watchStatus"`
	Rating      *int    `json:"rating"`
	IsFavorite  bool    `json:"isFavorite"`
	Note        *string `json:"note"`
	WatchCount  int     `json:"watchCount"`
}

// CatalogMovie is a movie as listed by the catalogue
type CatalogMovie struct {
	Movie

	OnlineCount int       `json:"onlineCount"`
	UserMovie   UserMovie `json:"userMovie"`
}

// MovieSearch is one catalogue hit
type MovieSearch struct {
	Movie    CatalogMovie `json:"movie"`
	Audience int          `json:"audience"`
	Status   MovieStatus  `json:"status"`
}
