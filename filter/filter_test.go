package filter

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) []Item {
	t.Helper()
	items, err := DecodeItems(json.RawMessage(s))
	require.NoError(t, err)
	return items
}

const catalogue = `[
	{"id": 1, "title": "Lost", "year": 2004, "rating": 4.6, "genreIds": [18, 9], "started": "Sep/22/2004"},
	{"id": 2, "title": "Star Trek", "year": 1966, "rating": 4.1, "genreIds": [10]},
	{"id": 3, "title": "Dark", "year": 2017, "rating": 4.8, "genreIds": [18]},
	"not an object"
]`

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `rating >= 4 and year > 2010`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `lower(title) contains "unclosed`,
			wantErr:    true,
		},
		{
			name:       "helpers",
			expression: `hasGenre(18) and lower(title) startsWith "l"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewExprCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CompilationError
				assert.True(t, errors.As(err, &ce))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestSelect(t *testing.T) {
	items := decode(t, catalogue)
	require.Len(t, items, 3)

	tests := []struct {
		expression string
		wantIDs    []float64
	}{
		{`rating >= 4.5`, []float64{1, 3}},
		{`year > 2010`, []float64{3}},
		{`hasGenre(18)`, []float64{1, 3}},
		{`lower(title) contains "star"`, []float64{2}},
		{`title endsWith "k"`, []float64{2, 3}},
		{`item.id == 2`, []float64{2}},
		{`daysSince(parseDate(started)) > 365`, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			got := Select(f, items)
			ids := make([]float64, 0, len(got))
			for _, item := range got {
				ids = append(ids, item["id"].(float64))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEvaluateSurfacesErrors(t *testing.T) {
	f, err := CompileFilter(`year > 2000`)
	require.NoError(t, err)

	ok, err := f.Evaluate(Item{"id": 9.0})
	require.Error(t, err)
	assert.False(t, ok)

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 9.0, ee.ItemID)
	assert.False(t, f.Match(Item{"id": 9.0}))
}

func TestDaysSinceWithoutDate(t *testing.T) {
	f, err := CompileFilter(`daysSince(parseDate(started)) > 365`)
	require.NoError(t, err)

	for _, item := range []Item{
		{"id": 2.0, "title": "no date"},
		{"id": 4.0, "started": "someday"},
	} {
		ok, err := f.Evaluate(item)
		var ee *EvaluationError
		require.ErrorAs(t, err, &ee)
		assert.Contains(t, ee.Err.Error(), ErrNoDate.Error())
		assert.False(t, ok)
		assert.False(t, f.Match(item))
	}

	assert.True(t, f.Match(Item{"id": 1.0, "started": "2004-09-22"}))
}

func TestCompilerCache(t *testing.T) {
	c := NewExprCompiler(WithCache(2))

	first, err := c.Compile(`year > 1`)
	require.NoError(t, err)
	again, err := c.Compile(`  year > 1  `)
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, err = c.Compile(`year > 2`)
	require.NoError(t, err)
	_, err = c.Compile(`year > 3`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	evicted, err := c.Compile(`year > 1`)
	require.NoError(t, err)
	assert.NotSame(t, first, evicted)

	c.Clear()
	assert.Zero(t, c.Size())

	uncached := NewExprCompiler(WithCache(0))
	_, err = uncached.Compile(`year > 1`)
	require.NoError(t, err)
	assert.Zero(t, uncached.Size())
}

func TestCustomFunctions(t *testing.T) {
	c := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isClassic": func(year float64) bool { return year < 1980 },
	}))

	f, err := c.Compile(`isClassic(year)`)
	require.NoError(t, err)
	assert.Len(t, Select(f, decode(t, catalogue)), 1)
}

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Size())
}

func TestDecodeItems(t *testing.T) {
	items := decode(t, `{"id": 5, "title": "Solo"}`)
	require.Len(t, items, 1)
	assert.Equal(t, "Solo", items[0]["title"])

	_, err := DecodeItems(json.RawMessage(`42`))
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2004, 9, 22, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2004-09-22", "Sep/22/2004", "2004-09-22T00:00:00+0000", "2004-09-22T00:00:00Z"} {
		assert.True(t, parseDate(s).Equal(want), s)
	}
	assert.True(t, parseDate("someday").IsZero())
}
