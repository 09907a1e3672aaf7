package myshows

import (
	"slices"
	"strings"
)

// Method is a remote procedure name, "namespace.Procedure"
type Method string

// Profile procedures
const (
	MethodProfileGet                   Method = "profile.Get"
	MethodProfileFeed                  Method = "profile.Feed"
	MethodProfileFriends               Method = "profile.Friends"
	MethodProfileFollowers             Method = "profile.Followers"
	MethodProfileFriendship            Method = "profile.Friendship"
	MethodProfileFriendsFeed           Method = "profile.FriendsFeed"
	MethodProfileShows                 Method = "profile.Shows"
	MethodProfileShowStatuses          Method = "profile.ShowStatuses"
	MethodProfileEpisodes              Method = "profile.Episodes"
	MethodProfileShow                  Method = "profile.Show"
	MethodProfileEpisode               Method = "profile.Episode"
	MethodProfileAchievements          Method = "profile.Achievements"
	MethodProfileAchievement           Method = "profile.Achievement"
	MethodProfileNewComments           Method = "profile.NewComments"
	MethodProfileNewNewsComments       Method = "profile.NewNewsComments"
	MethodProfileNewCommentReplies     Method = "profile.NewCommentReplies"
	MethodProfileNewNewsCommentReplies Method = "profile.NewNewsCommentReplies"
	MethodProfileCounters              Method = "profile.Counters"
	MethodProfileSettings              Method = "profile.Settings"
	MethodProfileSaveSettings          Method = "profile.SaveSettings"
	MethodProfileEpisodeCommentsCount  Method = "profile.EpisodeCommentsCount"
	MethodProfileEpisodeComments       Method = "profile.EpisodeComments"
	MethodProfileNewsCommentsCount     Method = "profile.NewsCommentsCount"
	MethodProfileNewsComments          Method = "profile.NewsComments"
	MethodProfileMarkCommentsAsViewed  Method = "profile.MarkCommentsAsViewed"
)

// Shows procedures
const (
	MethodShowsGet                     Method = "shows.Get"
	MethodShowsCount                   Method = "shows.Count"
	MethodShowsFilters                 Method = "shows.Filters"
	MethodShowsGetByID                 Method = "shows.GetById"
	MethodShowsGetByExternalID         Method = "shows.GetByExternalId"
	MethodShowsSearch                  Method = "shows.Search"
	MethodShowsSearchByFile            Method = "shows.SearchByFile"
	MethodShowsIds                     Method = "shows.Ids"
	MethodShowsEpisode                 Method = "shows.Episode"
	MethodShowsGenres                  Method = "shows.Genres"
	MethodShowsTop                     Method = "shows.Top"
	MethodShowsEpisodeComments         Method = "shows.EpisodeComments"
	MethodShowsViewEpisodeComments     Method = "shows.ViewEpisodeComments"
	MethodShowsTrackEpisodeComments    Method = "shows.TrackEpisodeComments"
	MethodShowsVoteEpisodeComment      Method = "shows.VoteEpisodeComment"
	MethodShowsPostEpisodeComment      Method = "shows.PostEpisodeComment"
	MethodShowsUpdateEpisodeComment    Method = "shows.UpdateEpisodeComment"
	MethodShowsDeleteEpisodeComment    Method = "shows.DeleteEpisodeComment"
	MethodShowsTranslateEpisodeComment Method = "shows.TranslateEpisodeComment"
)

// Lists procedures
const (
	MethodListsEpisodes      Method = "lists.Episodes"
	MethodListsAddEpisode    Method = "lists.AddEpisode"
	MethodListsRemoveEpisode Method = "lists.RemoveEpisode"
	MethodListsShows         Method = "lists.Shows"
	MethodListsAddShow       Method = "lists.AddShow"
	MethodListsRemoveShow    Method = "lists.RemoveShow"
)

// Manage procedures
const (
	MethodManageSetShowStatus     Method = "manage.SetShowStatus"
	MethodManageSetMovieStatus    Method = "manage.SetMovieStatus"
	MethodManageRateShow          Method = "manage.RateShow"
	MethodManageCheckEpisode      Method = "manage.CheckEpisode"
	MethodManageUnCheckEpisode    Method = "manage.UnCheckEpisode"
	MethodManageRateEpisode       Method = "manage.RateEpisode"
	MethodManageRateEpisodesBulk  Method = "manage.RateEpisodesBulk"
	MethodManageSyncEpisodes      Method = "manage.SyncEpisodes"
	MethodManageSyncEpisodesDelta Method = "manage.SyncEpisodesDelta"
	MethodManageMoveEpisodeDate   Method = "manage.MoveEpisodeDate"
)

// Users procedures
const (
	MethodUsersSearch          Method = "users.Search"
	MethodUsersCount           Method = "users.Count"
	MethodUsersFilters         Method = "users.Filters"
	MethodUsersFollow          Method = "users.Follow"
	MethodUsersUnFollow        Method = "users.UnFollow"
	MethodUsersFiltersCounters Method = "users.FiltersCounters"
)

// Notes procedures
const (
	MethodNotesGet     Method = "notes.Get"
	MethodNotesCount   Method = "notes.Count"
	MethodNotesSave    Method = "notes.Save"
	MethodNotesDelete  Method = "notes.Delete"
	MethodNotesRestore Method = "notes.Restore"
)

// Auth procedures
const (
	MethodAuthRegister            Method = "auth.Register"
	MethodAuthLoginByAppleID      Method = "auth.LoginByAppleID"
	MethodAuthUnlinkSocialProfile Method = "auth.UnlinkSocialProfile"
	MethodAuthLinkSocialProfile   Method = "auth.LinkSocialProfile"
)

// In-app purchase procedures
const (
	MethodIAPValidateReceiptIOS     Method = "iap.ValidateReceiptIOS"
	MethodIAPValidateReceiptAndroid Method = "iap.ValidateReceiptAndroid"
)

// Site procedures
const (
	MethodSiteMeta                 Method = "site.Meta"
	MethodSiteCounters             Method = "site.Counters"
	MethodSiteShowsPopular         Method = "site.ShowsPopular"
	MethodSiteShowsOnline          Method = "site.ShowsOnline"
	MethodSiteShowsOnlinePromo     Method = "site.ShowsOnlinePromo"
	MethodSiteTopEpisodeComments   Method = "site.TopEpisodeComments"
	MethodSitePaymentTypes         Method = "site.PaymentTypes"
	MethodSiteProducts             Method = "site.Products"
	MethodSiteCreateProTransaction Method = "site.CreateProTransaction"
)

// News procedures
const (
	MethodNewsGet              Method = "news.Get"
	MethodNewsCount            Method = "news.Count"
	MethodNewsGetByID          Method = "news.GetById"
	MethodNewsCategories       Method = "news.Categories"
	MethodNewsComments         Method = "news.Comments"
	MethodNewsViewComments     Method = "news.ViewComments"
	MethodNewsTrackComments    Method = "news.TrackComments"
	MethodNewsVoteComment      Method = "news.VoteComment"
	MethodNewsPostComment      Method = "news.PostComment"
	MethodNewsUpdateComment    Method = "news.UpdateComment"
	MethodNewsDeleteComment    Method = "news.DeleteComment"
	MethodNewsTranslateComment Method = "news.TranslateComment"
)

// Push notification procedures
const (
	MethodPushRegisterTokenIOS     Method = "push.RegisterTokenIOS"
	MethodPushRegisterTokenAndroid Method = "push.RegisterTokenAndroid"
	MethodPushRegisterTokenWeb     Method = "push.RegisterTokenWeb"
	MethodPushSendTestAndroid      Method = "push.SendTestAndroid"
	MethodPushSendTestIOS          Method = "push.SendTestIOS"
)

// Recommendation procedures
const (
	MethodRecommendationGet        Method = "recommendation.Get"
	MethodRecommendationReject     Method = "recommendation.Reject"
	MethodRecommendationUndoReject Method = "recommendation.UndoReject"
)

// v3 procedures
const (
	MethodMoviesGetCatalog              Method = "movies.GetCatalog"
	MethodMoviesGetByID                 Method = "movies.GetById"
	MethodProfileUnwatchedMovies        Method = "profile.UnwatchedMovies"
	MethodProfileUnwatchedMoviesFilters Method = "profile.UnwatchedMoviesFilters"
	MethodProfileUnwatchedMoviesCount   Method = "profile.UnwatchedMoviesCount"
	MethodProfileWatchedMovies          Method = "profile.WatchedMovies"
	MethodProfileWatchedMoviesFilters   Method = "profile.WatchedMoviesFilters"
	MethodProfileWatchedMoviesCount     Method = "profile.WatchedMoviesCount"
)

var methodsV2 = []Method{
	MethodProfileGet, MethodProfileFeed, MethodProfileFriends, MethodProfileFollowers,
	MethodProfileFriendship, MethodProfileFriendsFeed, MethodProfileShows, MethodProfileShowStatuses,
	MethodProfileEpisodes, MethodProfileShow, MethodProfileEpisode, MethodProfileAchievements,
	MethodProfileAchievement, MethodProfileNewComments, MethodProfileNewNewsComments,
	MethodProfileNewCommentReplies, MethodProfileNewNewsCommentReplies, MethodProfileCounters,
	MethodProfileSettings, MethodProfileSaveSettings, MethodProfileEpisodeCommentsCount,
	MethodProfileEpisodeComments, MethodProfileNewsCommentsCount, MethodProfileNewsComments,
	MethodProfileMarkCommentsAsViewed,

	MethodShowsGet, MethodShowsCount, MethodShowsFilters, MethodShowsGetByID, MethodShowsGetByExternalID,
	MethodShowsSearch, MethodShowsSearchByFile, MethodShowsIds, MethodShowsEpisode, MethodShowsGenres,
	MethodShowsTop, MethodShowsEpisodeComments, MethodShowsViewEpisodeComments,
	MethodShowsTrackEpisodeComments, MethodShowsVoteEpisodeComment, MethodShowsPostEpisodeComment,
	MethodShowsUpdateEpisodeComment, MethodShowsDeleteEpisodeComment, MethodShowsTranslateEpisodeComment,

	MethodListsEpisodes, MethodListsAddEpisode, MethodListsRemoveEpisode,
	MethodListsShows, MethodListsAddShow, MethodListsRemoveShow,

	MethodManageSetShowStatus, MethodManageRateShow, MethodManageCheckEpisode, MethodManageUnCheckEpisode,
	MethodManageRateEpisode, MethodManageRateEpisodesBulk, MethodManageSyncEpisodes,
	MethodManageSyncEpisodesDelta, MethodManageMoveEpisodeDate,

	MethodUsersSearch, MethodUsersCount, MethodUsersFilters, MethodUsersFollow, MethodUsersUnFollow,
	MethodUsersFiltersCounters,

	MethodNotesGet, MethodNotesCount, MethodNotesSave, MethodNotesDelete, MethodNotesRestore,

	MethodAuthRegister, MethodAuthLoginByAppleID, MethodAuthUnlinkSocialProfile, MethodAuthLinkSocialProfile,

	MethodIAPValidateReceiptIOS, MethodIAPValidateReceiptAndroid,

	MethodSiteMeta, MethodSiteCounters, MethodSiteShowsPopular, MethodSiteShowsOnline,
	MethodSiteShowsOnlinePromo, MethodSiteTopEpisodeComments, MethodSitePaymentTypes, MethodSiteProducts,
	MethodSiteCreateProTransaction,

	MethodNewsGet, MethodNewsCount, MethodNewsGetByID, MethodNewsCategories, MethodNewsComments,
	MethodNewsViewComments, MethodNewsTrackComments, MethodNewsVoteComment, MethodNewsPostComment,
	MethodNewsUpdateComment, MethodNewsDeleteComment, MethodNewsTranslateComment,

	MethodPushRegisterTokenIOS, MethodPushRegisterTokenAndroid, MethodPushRegisterTokenWeb,
	MethodPushSendTestAndroid, MethodPushSendTestIOS,

	MethodRecommendationGet, MethodRecommendationReject, MethodRecommendationUndoReject,
}

var methodsV3 = []Method{
	MethodManageSetMovieStatus,
	MethodMoviesGetCatalog,
	MethodMoviesGetByID,
	MethodProfileUnwatchedMovies,
	MethodProfileUnwatchedMoviesFilters,
	MethodProfileUnwatchedMoviesCount,
	MethodProfileWatchedMovies,
	MethodProfileWatchedMoviesFilters,
	MethodProfileWatchedMoviesCount,
}

var methodVersions = func() map[Method]APIVersion {
	m := make(map[Method]APIVersion, len(methodsV2)+len(methodsV3))
	for _, method := range methodsV2 {
		m[method] = V2
	}
	for _, method := range methodsV3 {
		m[method] = V3
	}
	return m
}()

// Methods returns every known procedure for the given API version
func Methods(version APIVersion) []Method {
	switch version {
	case V2:
		return slices.Clone(methodsV2)
	case V3:
		return slices.Clone(methodsV3)
	default:
		return nil
	}
}

// Valid reports whether the method belongs to the known procedure set
func (m Method) Valid() bool {
	_, ok := methodVersions[m]
	return ok
}

// Version returns the API version serving the method. Unknown methods
// default to V2.
func (m Method) Version() APIVersion {
	if v, ok := methodVersions[m]; ok {
		return v
	}
	return V2
}

// Namespace returns the part before the dot, e.g. "shows"
func (m Method) Namespace() string {
	ns, _, _ := strings.Cut(string(m), ".")
	return ns
}

// String returns the wire name
func (m Method) String() string {
	return string(m)
}
