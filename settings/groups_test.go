package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func TestDefaultMinWordSizeForTypos(t *testing.T) {
	m := DefaultMinWordSizeForTypos()
	require.Equal(t, uint8(5), *m.OneTypo)
	require.Equal(t, uint8(9), *m.TwoTypos)
}

func TestMinWordSizeOmitsNilFields(t *testing.T) {
	one := uint8(4)
	b, err := json.Marshal(MinWordSizeForTypos{OneTypo: &one})
	require.NoError(t, err)

	require.JSONEq(t, `{"oneTypo":4}`, string(b))
	require.False(t, gjson.GetBytes(b, "twoTypos").Exists())
}

func TestTypoToleranceResetRoundTrip(t *testing.T) {
	tt := NewTypoToleranceSettings().WithEnabledReset()

	b, err := json.Marshal(tt)
	require.NoError(t, err)

	doc := gjson.ParseBytes(b)
	enabled := doc.Get("enabled")
	require.True(t, enabled.Exists())
	require.Equal(t, gjson.Null, enabled.Type)
	require.True(t, doc.Get("disableOnAttributes").IsArray())
	require.True(t, doc.Get("disableOnWords").IsArray())
	require.Equal(t, int64(5), doc.Get("minWordSizeForTypos.oneTypo").Int())
	require.Equal(t, int64(9), doc.Get("minWordSizeForTypos.twoTypos").Int())

	var got TypoToleranceSettings
	require.NoError(t, json.Unmarshal(b, &got))
	require.True(t, got.Enabled.IsReset())
}

func TestTypoToleranceNilListsEncodeAsEmptyArrays(t *testing.T) {
	b, err := json.Marshal(TypoToleranceSettings{Enabled: Set(false)})
	require.NoError(t, err)

	doc := gjson.ParseBytes(b)
	require.True(t, doc.Get("disableOnAttributes").IsArray())
	require.True(t, doc.Get("disableOnWords").IsArray())
}

func TestTypoToleranceDecodeFallsBackToDefaultWordSizes(t *testing.T) {
	// read responses may omit whole sub-groups
	raw := `{"enabled": true, "disableOnAttributes": [], "disableOnWords": []}`

	var got TypoToleranceSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &got))

	require.Equal(t, Set(true), got.Enabled)
	require.Equal(t, uint8(5), *got.MinWordSizeForTypos.OneTypo)
	require.Equal(t, uint8(9), *got.MinWordSizeForTypos.TwoTypos)
}

func TestTypoToleranceDecodePartialWordSizes(t *testing.T) {
	raw, err := sjson.Set(`{"enabled": true}`, "minWordSizeForTypos.oneTypo", 3)
	require.NoError(t, err)

	var got TypoToleranceSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &got))

	require.Equal(t, uint8(3), *got.MinWordSizeForTypos.OneTypo)
	require.Equal(t, uint8(9), *got.MinWordSizeForTypos.TwoTypos)
}

func TestTypoToleranceDecodeAbsentEnabledIsNotSet(t *testing.T) {
	var got TypoToleranceSettings
	require.NoError(t, json.Unmarshal([]byte(`{}`), &got))
	require.True(t, got.Enabled.IsNotSet())
}

func TestTypoToleranceBuilder(t *testing.T) {
	base := NewTypoToleranceSettings()
	derived := base.
		WithEnabled(false).
		WithDisableOnAttributes([]string{"title"}).
		WithDisableOnWords([]string{"shrek"})

	require.Equal(t, Set(true), base.Enabled)
	require.Empty(t, base.DisableOnAttributes)

	require.Equal(t, Set(false), derived.Enabled)
	require.Equal(t, []string{"title"}, derived.DisableOnAttributes)
	require.Equal(t, []string{"shrek"}, derived.DisableOnWords)
}
