// SPDX-License-Identifier: LGPL-3.0-or-later

package client

import (
	"context"
	"net/http"

	"github.com/meiliops/indexctl/settings"
)

// Index is a handle on one index of the service
type Index struct {
	uid    string
	client *Client
}

// UID returns the index uid
func (i *Index) UID() string {
	return i.uid
}

func (i *Index) settingsPath(suffix string) string {
	p := "/indexes/" + i.uid + "/settings"
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (i *Index) getSetting(ctx context.Context, suffix string, out any) error {
	return i.client.do(ctx, http.MethodGet, i.settingsPath(suffix), nil, out, http.StatusOK)
}

func (i *Index) writeSetting(ctx context.Context, method, suffix string, body any) (*TaskInfo, error) {
	var info TaskInfo
	if err := i.client.do(ctx, method, i.settingsPath(suffix), body, &info, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &info, nil
}

func (i *Index) resetSetting(ctx context.Context, suffix string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodDelete, suffix, nil)
}

// GetSettings fetches the whole settings document with every group
// resolved to its current value.
func (i *Index) GetSettings(ctx context.Context) (*settings.Settings, error) {
	var s settings.Settings
	if err := i.getSetting(ctx, "", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSettings applies a sparse settings document. Only groups present
// in s are touched; absent groups keep their current value. Present
// list and map groups replace the remote value wholesale.
func (i *Index) UpdateSettings(ctx context.Context, s settings.Settings) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPatch, "", s)
}

// ResetSettings restores every settings group to the service default
func (i *Index) ResetSettings(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "")
}

// GetSynonyms fetches the synonym map
func (i *Index) GetSynonyms(ctx context.Context) (map[string][]string, error) {
	var m map[string][]string
	if err := i.getSetting(ctx, "synonyms", &m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateSynonyms replaces the synonym map
func (i *Index) UpdateSynonyms(ctx context.Context, synonyms map[string][]string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "synonyms", synonyms)
}

// ResetSynonyms restores the synonym map to the service default
func (i *Index) ResetSynonyms(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "synonyms")
}

// GetStopWords fetches the stop-word list
func (i *Index) GetStopWords(ctx context.Context) ([]string, error) {
	var words []string
	if err := i.getSetting(ctx, "stop-words", &words); err != nil {
		return nil, err
	}
	return words, nil
}

// UpdateStopWords replaces the stop-word list
func (i *Index) UpdateStopWords(ctx context.Context, words []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "stop-words", words)
}

// ResetStopWords restores the stop-word list to the service default
func (i *Index) ResetStopWords(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "stop-words")
}

// GetRankingRules fetches the ranking-rule list, ordered by importance
func (i *Index) GetRankingRules(ctx context.Context) ([]string, error) {
	var rules []string
	if err := i.getSetting(ctx, "ranking-rules", &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// UpdateRankingRules replaces the ranking-rule list
func (i *Index) UpdateRankingRules(ctx context.Context, rules []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "ranking-rules", rules)
}

// ResetRankingRules restores the ranking rules to the service default
func (i *Index) ResetRankingRules(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "ranking-rules")
}

// GetFilterableAttributes fetches the filterable-attribute list
func (i *Index) GetFilterableAttributes(ctx context.Context) ([]string, error) {
	var attrs []string
	if err := i.getSetting(ctx, "filterable-attributes", &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UpdateFilterableAttributes replaces the filterable-attribute list
func (i *Index) UpdateFilterableAttributes(ctx context.Context, attrs []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "filterable-attributes", attrs)
}

// ResetFilterableAttributes restores the filterable attributes to the
// service default
func (i *Index) ResetFilterableAttributes(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "filterable-attributes")
}

// GetSortableAttributes fetches the sortable-attribute list
func (i *Index) GetSortableAttributes(ctx context.Context) ([]string, error) {
	var attrs []string
	if err := i.getSetting(ctx, "sortable-attributes", &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UpdateSortableAttributes replaces the sortable-attribute list
func (i *Index) UpdateSortableAttributes(ctx context.Context, attrs []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "sortable-attributes", attrs)
}

// ResetSortableAttributes restores the sortable attributes to the
// service default
func (i *Index) ResetSortableAttributes(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "sortable-attributes")
}

// GetDistinctAttribute fetches the distinct attribute; nil means none is
// configured
func (i *Index) GetDistinctAttribute(ctx context.Context) (*string, error) {
	var attr *string
	if err := i.getSetting(ctx, "distinct-attribute", &attr); err != nil {
		return nil, err
	}
	return attr, nil
}

// UpdateDistinctAttribute replaces the distinct attribute
func (i *Index) UpdateDistinctAttribute(ctx context.Context, attr string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "distinct-attribute", attr)
}

// ResetDistinctAttribute removes the distinct attribute
func (i *Index) ResetDistinctAttribute(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "distinct-attribute")
}

// GetSearchableAttributes fetches the searchable-attribute list, ordered
// by importance
func (i *Index) GetSearchableAttributes(ctx context.Context) ([]string, error) {
	var attrs []string
	if err := i.getSetting(ctx, "searchable-attributes", &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UpdateSearchableAttributes replaces the searchable-attribute list
func (i *Index) UpdateSearchableAttributes(ctx context.Context, attrs []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "searchable-attributes", attrs)
}

// ResetSearchableAttributes restores the searchable attributes to the
// service default
func (i *Index) ResetSearchableAttributes(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "searchable-attributes")
}

// GetDisplayedAttributes fetches the displayed-attribute list
func (i *Index) GetDisplayedAttributes(ctx context.Context) ([]string, error) {
	var attrs []string
	if err := i.getSetting(ctx, "displayed-attributes", &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UpdateDisplayedAttributes replaces the displayed-attribute list
func (i *Index) UpdateDisplayedAttributes(ctx context.Context, attrs []string) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPut, "displayed-attributes", attrs)
}

// ResetDisplayedAttributes restores the displayed attributes to the
// service default
func (i *Index) ResetDisplayedAttributes(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "displayed-attributes")
}

// GetPagination fetches the resolved pagination settings
func (i *Index) GetPagination(ctx context.Context) (*settings.PaginationSettings, error) {
	var p settings.PaginationSettings
	if err := i.getSetting(ctx, "pagination", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePagination merges the given pagination settings into the group
func (i *Index) UpdatePagination(ctx context.Context, p settings.PaginationSettings) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPatch, "pagination", p)
}

// ResetPagination restores pagination to the service default
func (i *Index) ResetPagination(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "pagination")
}

// GetFaceting fetches the resolved faceting settings
func (i *Index) GetFaceting(ctx context.Context) (*settings.FacetingSettings, error) {
	var f settings.FacetingSettings
	if err := i.getSetting(ctx, "faceting", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFaceting merges the given faceting settings into the group
func (i *Index) UpdateFaceting(ctx context.Context, f settings.FacetingSettings) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPatch, "faceting", f)
}

// ResetFaceting restores faceting to the service default
func (i *Index) ResetFaceting(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "faceting")
}

// GetTypoTolerance fetches the resolved typo-tolerance settings
func (i *Index) GetTypoTolerance(ctx context.Context) (*settings.TypoToleranceSettings, error) {
	var tt settings.TypoToleranceSettings
	if err := i.getSetting(ctx, "typo-tolerance", &tt); err != nil {
		return nil, err
	}
	return &tt, nil
}

// UpdateTypoTolerance merges the given typo-tolerance settings into the
// group. Sub-fields absent from the encoded document (a NotSet Enabled)
// keep their current value.
func (i *Index) UpdateTypoTolerance(ctx context.Context, tt settings.TypoToleranceSettings) (*TaskInfo, error) {
	return i.writeSetting(ctx, http.MethodPatch, "typo-tolerance", tt)
}

// ResetTypoTolerance restores typo tolerance to the service default
func (i *Index) ResetTypoTolerance(ctx context.Context) (*TaskInfo, error) {
	return i.resetSetting(ctx, "typo-tolerance")
}
