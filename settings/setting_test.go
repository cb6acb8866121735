package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type gatedDoc struct {
	Enabled Setting[bool]   `json:"enabled,omitzero"`
	Limit   Setting[uint64] `json:"limit,omitzero"`
}

func TestZeroValueIsNotSet(t *testing.T) {
	var s Setting[int]
	require.True(t, s.IsNotSet())
	require.False(t, s.IsSet())
	require.False(t, s.IsReset())
	require.True(t, s.IsZero())
}

func TestSetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  gatedDoc
	}{
		{name: "bool", doc: gatedDoc{Enabled: Set(true)}},
		{name: "bool false", doc: gatedDoc{Enabled: Set(false)}},
		{name: "uint", doc: gatedDoc{Limit: Set(uint64(1000))}},
		{name: "both", doc: gatedDoc{Enabled: Set(false), Limit: Set(uint64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.doc)
			require.NoError(t, err)

			var got gatedDoc
			require.NoError(t, json.Unmarshal(b, &got))
			require.Equal(t, tt.doc, got)
		})
	}
}

func TestNotSetOmitsKey(t *testing.T) {
	b, err := json.Marshal(gatedDoc{Limit: Set(uint64(5))})
	require.NoError(t, err)

	require.False(t, gjson.GetBytes(b, "enabled").Exists())
	require.True(t, gjson.GetBytes(b, "limit").Exists())
}

func TestResetEncodesExplicitNull(t *testing.T) {
	b, err := json.Marshal(gatedDoc{Enabled: Reset[bool]()})
	require.NoError(t, err)

	// Reset must stay distinguishable from NotSet: present key, null value.
	v := gjson.GetBytes(b, "enabled")
	require.True(t, v.Exists())
	require.Equal(t, gjson.Null, v.Type)
	require.False(t, gjson.GetBytes(b, "limit").Exists())
}

func TestAbsentKeyDecodesNotSet(t *testing.T) {
	var got gatedDoc
	require.NoError(t, json.Unmarshal([]byte(`{}`), &got))
	require.True(t, got.Enabled.IsNotSet())
	require.True(t, got.Limit.IsNotSet())
}

func TestNullDecodesReset(t *testing.T) {
	var got gatedDoc
	require.NoError(t, json.Unmarshal([]byte(`{"enabled":null}`), &got))
	require.True(t, got.Enabled.IsReset())
	require.True(t, got.Limit.IsNotSet())
}

func TestDecodeTypeMismatchFails(t *testing.T) {
	var got gatedDoc
	err := json.Unmarshal([]byte(`{"limit":"many"}`), &got)
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	v, ok := Set(42).Get()
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = Reset[int]().Get()
	require.False(t, ok)

	_, ok = NotSet[int]().Get()
	require.False(t, ok)
}

func TestOrReset(t *testing.T) {
	require.Equal(t, Set(7), Reset[int]().OrReset(7))
	require.Equal(t, Set(3), Set(3).OrReset(7))
	require.Equal(t, NotSet[int](), NotSet[int]().OrReset(7))
}

func TestString(t *testing.T) {
	require.Equal(t, `Set(true)`, Set(true).String())
	require.Equal(t, "Reset", Reset[bool]().String())
	require.Equal(t, "NotSet", NotSet[bool]().String())
}
