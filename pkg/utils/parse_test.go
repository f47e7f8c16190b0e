package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice_Strings(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"plain", "129.99", "129.99"},
		{"dollar sign", "$449.00", "449"},
		{"thousands separator", "$1,299.99", "1299.99"},
		{"surrounding spaces", "  59 ", "59"},
		{"float input", 219.0, "219"},
		{"int input", 89, "89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.raw)
			require.NotNil(t, got)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParsePrice_UnknownIsNil(t *testing.T) {
	assert.Nil(t, ParsePrice(nil))
	assert.Nil(t, ParsePrice(""))
	assert.Nil(t, ParsePrice("   "))
	assert.Nil(t, ParsePrice("call for price"))
	assert.Nil(t, ParsePrice(-49.99))
	assert.Nil(t, ParsePrice("-10"))
	assert.Nil(t, ParsePrice([]string{"129.99"}))
}

func TestParseRating_ClampsToScale(t *testing.T) {
	got := ParseRating(7.2)
	require.NotNil(t, got)
	assert.Equal(t, 5.0, *got)

	got = ParseRating(-1.0)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)
}

func TestParseRating_OutOfPhrase(t *testing.T) {
	got := ParseRating("4.5 out of 5")
	require.NotNil(t, got)
	assert.Equal(t, 4.5, *got)

	got = ParseRating("4.5 OUT OF 5 stars")
	require.NotNil(t, got)
	assert.Equal(t, 4.5, *got)
}

func TestParseRating_UnknownIsNil(t *testing.T) {
	assert.Nil(t, ParseRating(nil))
	assert.Nil(t, ParseRating(""))
	assert.Nil(t, ParseRating("no ratings yet"))
}

func TestParseCount(t *testing.T) {
	got := ParseCount("12,500")
	require.NotNil(t, got)
	assert.Equal(t, 12500, *got)

	got = ParseCount(340)
	require.NotNil(t, got)
	assert.Equal(t, 340, *got)

	assert.Nil(t, ParseCount(nil))
	assert.Nil(t, ParseCount(-3))
	assert.Nil(t, ParseCount("n/a"))
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []any{"Yes", "true", "1", "y", true, 1} {
		got := ParseBool(truthy)
		require.NotNil(t, got, "input %v", truthy)
		assert.True(t, *got, "input %v", truthy)
	}

	for _, falsy := range []any{"No", "false", "0", "maybe", false, 0} {
		got := ParseBool(falsy)
		require.NotNil(t, got, "input %v", falsy)
		assert.False(t, *got, "input %v", falsy)
	}

	assert.Nil(t, ParseBool(nil))
}

func TestSplitFeatureTags(t *testing.T) {
	tags := SplitFeatureTags("Split, Tented, Contoured keywells, Thumb clusters")
	assert.Equal(t, []string{"contoured keywells", "split", "tented", "thumb clusters"}, tags)
}

func TestSplitFeatureTags_PipeSeparatorAndDuplicates(t *testing.T) {
	tags := SplitFeatureTags("Split | split |  Knob")
	assert.Equal(t, []string{"knob", "split"}, tags)
}

func TestSplitFeatureTags_Empty(t *testing.T) {
	assert.Nil(t, SplitFeatureTags(""))
	assert.Nil(t, SplitFeatureTags("  "))
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Keychron Q11 QMK Split", "keychron_q11_qmk_split"},
		{"  Logitech   Ergo K860 ", "logitech_ergo_k860"},
		{"Feker/MechLands", "feker_mechlands"},
		{"PERIBOARD-535", "periboard_535"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeIdentifier(tt.raw), "input %q", tt.raw)
	}
}
