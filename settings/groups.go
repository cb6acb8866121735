// SPDX-License-Identifier: LGPL-3.0-or-later

package settings

import "encoding/json"

// PaginationSettings configures the pagination group. The default for
// MaxTotalHits is resolved server-side.
type PaginationSettings struct {
	MaxTotalHits uint64 `json:"maxTotalHits"`
}

// FacetingSettings configures the faceting group.
type FacetingSettings struct {
	MaxValuesPerFacet uint64 `json:"maxValuesPerFacet"`
}

// MinWordSizeForTypos sets the word lengths at which one and two typos
// are tolerated. The service requires OneTypo <= TwoTypos; that rule is
// enforced remotely, not here.
type MinWordSizeForTypos struct {
	OneTypo  *uint8 `json:"oneTypo,omitempty"`
	TwoTypos *uint8 `json:"twoTypos,omitempty"`
}

// DefaultMinWordSizeForTypos returns the documented service defaults.
func DefaultMinWordSizeForTypos() MinWordSizeForTypos {
	one, two := uint8(5), uint8(9)
	return MinWordSizeForTypos{OneTypo: &one, TwoTypos: &two}
}

// TypoToleranceSettings configures the typo-tolerance group. Enabled is
// tri-state: resetting it to the service default is a distinct
// instruction from setting it to true or false.
type TypoToleranceSettings struct {
	Enabled             Setting[bool]       `json:"enabled,omitzero"`
	DisableOnAttributes []string            `json:"disableOnAttributes"`
	DisableOnWords      []string            `json:"disableOnWords"`
	MinWordSizeForTypos MinWordSizeForTypos `json:"minWordSizeForTypos"`
}

// NewTypoToleranceSettings returns typo tolerance enabled with the
// service defaults, ready for builder-style refinement.
func NewTypoToleranceSettings() TypoToleranceSettings {
	return TypoToleranceSettings{
		Enabled:             Set(true),
		DisableOnAttributes: []string{},
		DisableOnWords:      []string{},
		MinWordSizeForTypos: DefaultMinWordSizeForTypos(),
	}
}

// WithEnabled returns a copy with the enabled flag set explicitly.
func (t TypoToleranceSettings) WithEnabled(enabled bool) TypoToleranceSettings {
	t.Enabled = Set(enabled)
	return t
}

// WithEnabledReset returns a copy instructing the service to restore the
// enabled flag to its default.
func (t TypoToleranceSettings) WithEnabledReset() TypoToleranceSettings {
	t.Enabled = Reset[bool]()
	return t
}

// WithDisableOnAttributes returns a copy with the attribute exclusion
// list replaced.
func (t TypoToleranceSettings) WithDisableOnAttributes(attributes []string) TypoToleranceSettings {
	t.DisableOnAttributes = cloneList(attributes)
	return t
}

// WithDisableOnWords returns a copy with the word exclusion list replaced.
func (t TypoToleranceSettings) WithDisableOnWords(words []string) TypoToleranceSettings {
	t.DisableOnWords = cloneList(words)
	return t
}

// WithMinWordSizeForTypos returns a copy with the typo word sizes replaced.
func (t TypoToleranceSettings) WithMinWordSizeForTypos(m MinWordSizeForTypos) TypoToleranceSettings {
	t.MinWordSizeForTypos = m
	return t
}

// typoToleranceWire avoids marshal/unmarshal recursion on the exported type.
type typoToleranceWire struct {
	Enabled             Setting[bool]       `json:"enabled,omitzero"`
	DisableOnAttributes []string            `json:"disableOnAttributes"`
	DisableOnWords      []string            `json:"disableOnWords"`
	MinWordSizeForTypos MinWordSizeForTypos `json:"minWordSizeForTypos"`
}

// MarshalJSON normalizes nil exclusion lists to empty arrays so a
// hand-assembled value matches what the service expects.
func (t TypoToleranceSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(typoToleranceWire{
		Enabled:             t.Enabled,
		DisableOnAttributes: cloneList(t.DisableOnAttributes),
		DisableOnWords:      cloneList(t.DisableOnWords),
		MinWordSizeForTypos: t.MinWordSizeForTypos,
	})
}

// UnmarshalJSON pre-fills the min-word-size defaults so a read response
// omitting the minWordSizeForTypos key falls back to {5, 9}. Enabled is
// left at NotSet when the key is absent.
func (t *TypoToleranceSettings) UnmarshalJSON(data []byte) error {
	aux := typoToleranceWire{
		MinWordSizeForTypos: DefaultMinWordSizeForTypos(),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = TypoToleranceSettings(aux)
	return nil
}
