package myshows

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodVersion(t *testing.T) {
	tests := []struct {
		method    Method
		valid     bool
		version   APIVersion
		namespace string
	}{
		{MethodShowsGetByID, true, V2, "shows"},
		{MethodUsersCount, true, V2, "users"},
		{MethodProfileGet, true, V2, "profile"},
		{MethodManageSetShowStatus, true, V2, "manage"},
		{MethodManageSetMovieStatus, true, V3, "manage"},
		{MethodMoviesGetCatalog, true, V3, "movies"},
		{MethodProfileWatchedMoviesCount, true, V3, "profile"},
		{Method("shows.Unknown"), false, V2, "shows"},
		{Method("nodot"), false, V2, "nodot"},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.method.Valid())
			assert.Equal(t, tt.version, tt.method.Version())
			assert.Equal(t, tt.namespace, tt.method.Namespace())
		})
	}
}

func TestMethodSetsAreDisjoint(t *testing.T) {
	v2 := Methods(V2)
	v3 := Methods(V3)
	require.Len(t, v3, 9)

	seen := make(map[Method]bool, len(v2))
	for _, m := range v2 {
		assert.False(t, seen[m], "duplicate %s", m)
		seen[m] = true
	}
	for _, m := range v3 {
		assert.False(t, seen[m], "%s listed for both versions", m)
	}

	v2[0] = "mutated"
	assert.Equal(t, MethodProfileGet, Methods(V2)[0])
	assert.Nil(t, Methods(APIVersion(7)))
}

func TestParseAPIVersion(t *testing.T) {
	v, ok := ParseAPIVersion("v3")
	assert.True(t, ok)
	assert.Equal(t, V3, v)

	v, ok = ParseAPIVersion("2")
	assert.True(t, ok)
	assert.Equal(t, V2, v)

	_, ok = ParseAPIVersion("v4")
	assert.False(t, ok)
	assert.Equal(t, "unknown", APIVersion(4).String())
}

func TestErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "rpc with code",
			err:  &Error{Kind: KindRPC, Method: MethodShowsGetByID, Code: 404, Message: "Show not found"},
			want: "myshows shows.GetById: rpc error 404: Show not found",
		},
		{
			name: "auth without method",
			err:  &Error{Kind: KindAuth, Code: 400, Message: "bad password"},
			want: "myshows: auth error 400: bad password",
		},
		{
			name: "transport without code",
			err:  transportError(MethodUsersCount, 0, "", inner),
			want: "myshows users.Count: transport error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	assert.ErrorIs(t, tests[2].err, inner)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, (&Error{Code: http.StatusUnauthorized}).IsUnauthorized())
	assert.True(t, (&Error{Code: http.StatusForbidden}).IsUnauthorized())
	assert.False(t, (&Error{Code: http.StatusNotFound}).IsUnauthorized())

	e := authError(http.StatusUnauthorized, oauthError{Error: "invalid_grant"})
	assert.True(t, e.IsAuth())
	assert.False(t, e.IsRPC())
	assert.Equal(t, "invalid_grant", e.Message)

	_, ok := AsError(errors.New("plain"))
	assert.False(t, ok)
}
