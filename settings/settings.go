// SPDX-License-Identifier: LGPL-3.0-or-later

// Package settings models the sparse configuration document of a search
// index. Every field of the aggregate is optional: a nil field carries no
// instruction and is omitted from the encoded document, a present field
// replaces the remote value wholesale. Tri-state sub-fields additionally
// distinguish an explicit restore-to-default from both absence and any
// concrete value.
package settings

import "slices"

// Settings is the sparse settings document for one index. The zero value
// carries no instruction at all; dispatching it changes nothing. Values
// are immutable by convention: the With* methods return modified copies
// and never touch the receiver.
type Settings struct {
	// Synonyms maps a word to the words treated as its equivalents.
	Synonyms map[string][]string `json:"synonyms,omitzero"`
	// StopWords are ignored when found in search queries.
	StopWords []string `json:"stopWords,omitzero"`
	// RankingRules are ordered by decreasing importance.
	RankingRules []string `json:"rankingRules,omitzero"`
	// FilterableAttributes can be used in filter expressions and facets.
	FilterableAttributes []string `json:"filterableAttributes,omitzero"`
	// SortableAttributes can be used in sort expressions.
	SortableAttributes []string `json:"sortableAttributes,omitzero"`
	// DistinctAttribute deduplicates results sharing a value of this field.
	DistinctAttribute *string `json:"distinctAttribute,omitzero"`
	// SearchableAttributes are matched against the query, ordered by
	// decreasing importance.
	SearchableAttributes []string `json:"searchableAttributes,omitzero"`
	// DisplayedAttributes are returned in documents.
	DisplayedAttributes []string               `json:"displayedAttributes,omitzero"`
	Pagination          *PaginationSettings    `json:"pagination,omitzero"`
	Faceting            *FacetingSettings      `json:"faceting,omitzero"`
	TypoTolerance       *TypoToleranceSettings `json:"typoTolerance,omitzero"`
}

// NewSettings returns a settings document with every field absent.
func NewSettings() Settings {
	return Settings{}
}

// WithSynonyms returns a copy with the synonym map replaced. The map is
// deep-copied; an empty map clears all synonyms on dispatch.
func (s Settings) WithSynonyms(synonyms map[string][]string) Settings {
	m := make(map[string][]string, len(synonyms))
	for k, v := range synonyms {
		m[k] = cloneList(v)
	}
	s.Synonyms = m
	return s
}

// WithStopWords returns a copy with the stop-word list replaced.
func (s Settings) WithStopWords(words []string) Settings {
	s.StopWords = cloneList(words)
	return s
}

// WithRankingRules returns a copy with the ranking-rule list replaced.
func (s Settings) WithRankingRules(rules []string) Settings {
	s.RankingRules = cloneList(rules)
	return s
}

// WithFilterableAttributes returns a copy with the filterable-attribute
// list replaced.
func (s Settings) WithFilterableAttributes(attributes []string) Settings {
	s.FilterableAttributes = cloneList(attributes)
	return s
}

// WithSortableAttributes returns a copy with the sortable-attribute list
// replaced.
func (s Settings) WithSortableAttributes(attributes []string) Settings {
	s.SortableAttributes = cloneList(attributes)
	return s
}

// WithDistinctAttribute returns a copy with the distinct attribute set.
func (s Settings) WithDistinctAttribute(attribute string) Settings {
	s.DistinctAttribute = &attribute
	return s
}

// WithSearchableAttributes returns a copy with the searchable-attribute
// list replaced.
func (s Settings) WithSearchableAttributes(attributes []string) Settings {
	s.SearchableAttributes = cloneList(attributes)
	return s
}

// WithDisplayedAttributes returns a copy with the displayed-attribute
// list replaced.
func (s Settings) WithDisplayedAttributes(attributes []string) Settings {
	s.DisplayedAttributes = cloneList(attributes)
	return s
}

// WithPagination returns a copy with the pagination group set.
func (s Settings) WithPagination(pagination PaginationSettings) Settings {
	s.Pagination = &pagination
	return s
}

// WithFaceting returns a copy with the faceting group set.
func (s Settings) WithFaceting(faceting FacetingSettings) Settings {
	s.Faceting = &faceting
	return s
}

// WithTypoTolerance returns a copy with the typo-tolerance group set.
func (s Settings) WithTypoTolerance(typoTolerance TypoToleranceSettings) Settings {
	s.TypoTolerance = &typoTolerance
	return s
}

// cloneList copies a string list, mapping nil to an empty list so the
// result always encodes as a present key.
func cloneList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return slices.Clone(list)
}
