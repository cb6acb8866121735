package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestIdentityAggregateEncodesEmpty(t *testing.T) {
	b, err := json.Marshal(NewSettings())
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(b))
}

func TestSparseDocumentOnlyContainsRequestedGroups(t *testing.T) {
	s := NewSettings().
		WithStopWords([]string{"a", "the", "of"}).
		WithPagination(PaginationSettings{MaxTotalHits: 100})

	b, err := json.Marshal(s)
	require.NoError(t, err)

	require.JSONEq(t, `{"stopWords":["a","the","of"],"pagination":{"maxTotalHits":100}}`, string(b))

	// other groups must not leak in as null or empty values
	doc := gjson.ParseBytes(b)
	require.Len(t, doc.Map(), 2)
	require.False(t, doc.Get("synonyms").Exists())
	require.False(t, doc.Get("typoTolerance").Exists())
}

func TestBuilderReturnsCopies(t *testing.T) {
	base := NewSettings()
	derived := base.WithStopWords([]string{"the"})

	require.Nil(t, base.StopWords)
	require.Equal(t, []string{"the"}, derived.StopWords)
}

func TestBuilderInputIsNotAliased(t *testing.T) {
	words := []string{"a", "the"}
	s := NewSettings().WithStopWords(words)
	words[0] = "changed"
	require.Equal(t, []string{"a", "the"}, s.StopWords)

	synonyms := map[string][]string{"wolverine": {"logan"}}
	s = NewSettings().WithSynonyms(synonyms)
	synonyms["wolverine"][0] = "changed"
	require.Equal(t, []string{"logan"}, s.Synonyms["wolverine"])
}

func TestSameFieldLastWriteWins(t *testing.T) {
	s := NewSettings().
		WithStopWords([]string{"a"}).
		WithStopWords([]string{"b"})

	require.Equal(t, []string{"b"}, s.StopWords)
}

func TestDisjointFieldsCommute(t *testing.T) {
	a := NewSettings().
		WithDistinctAttribute("movie_id").
		WithRankingRules([]string{"words", "typo"})
	b := NewSettings().
		WithRankingRules([]string{"words", "typo"}).
		WithDistinctAttribute("movie_id")

	require.Equal(t, a, b)
}

func TestEmptyListIsPresentNotAbsent(t *testing.T) {
	// replacing with an empty list is a real instruction, distinct from
	// leaving the group unchanged
	b, err := json.Marshal(NewSettings().WithStopWords(nil))
	require.NoError(t, err)

	v := gjson.GetBytes(b, "stopWords")
	require.True(t, v.Exists())
	require.True(t, v.IsArray())
	require.Empty(t, v.Array())
}

func TestAllGroupsEncodeUnderDocumentedKeys(t *testing.T) {
	s := NewSettings().
		WithSynonyms(map[string][]string{"wow": {"world of warcraft"}}).
		WithStopWords([]string{"the"}).
		WithRankingRules([]string{"words"}).
		WithFilterableAttributes([]string{"genre"}).
		WithSortableAttributes([]string{"release_date"}).
		WithDistinctAttribute("movie_id").
		WithSearchableAttributes([]string{"title"}).
		WithDisplayedAttributes([]string{"title", "poster"}).
		WithPagination(PaginationSettings{MaxTotalHits: 1000}).
		WithFaceting(FacetingSettings{MaxValuesPerFacet: 100}).
		WithTypoTolerance(NewTypoToleranceSettings())

	b, err := json.Marshal(s)
	require.NoError(t, err)

	doc := gjson.ParseBytes(b)
	for _, key := range []string{
		"synonyms", "stopWords", "rankingRules", "filterableAttributes",
		"sortableAttributes", "distinctAttribute", "searchableAttributes",
		"displayedAttributes", "pagination", "faceting", "typoTolerance",
	} {
		require.True(t, doc.Get(key).Exists(), "missing key %q", key)
	}
	require.Len(t, doc.Map(), 11)
}

func TestDecodeReadResponse(t *testing.T) {
	// shape of a GET /settings response: every group resolved
	raw := `{
		"synonyms": {"wow": ["world of warcraft"]},
		"stopWords": ["the", "of"],
		"rankingRules": ["words", "typo", "proximity", "attribute", "sort", "exactness"],
		"filterableAttributes": [],
		"sortableAttributes": [],
		"distinctAttribute": null,
		"searchableAttributes": ["*"],
		"displayedAttributes": ["*"],
		"pagination": {"maxTotalHits": 1000},
		"faceting": {"maxValuesPerFacet": 100},
		"typoTolerance": {
			"enabled": true,
			"disableOnAttributes": [],
			"disableOnWords": [],
			"minWordSizeForTypos": {"oneTypo": 5, "twoTypos": 9}
		}
	}`

	var got Settings
	require.NoError(t, json.Unmarshal([]byte(raw), &got))

	require.Equal(t, []string{"the", "of"}, got.StopWords)
	require.Nil(t, got.DistinctAttribute)
	require.Equal(t, uint64(1000), got.Pagination.MaxTotalHits)
	require.Equal(t, uint64(100), got.Faceting.MaxValuesPerFacet)
	require.Equal(t, Set(true), got.TypoTolerance.Enabled)
}
