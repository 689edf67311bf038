package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"12", 12},
		{"12,50", 12.5},
		{"-12,50", -12.5},
		{"1.234,56", 1234.56},
		{"€ 1.234,56", 1234.56},
		{"€ -99,95", -99.95},
		{"1.234", 1234},
		{"1.234.567", 1234567},
		{"12.5", 12.5},
		{"1234.56", 1234.56},
		{"100 EUR", 100},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{"abc", "12,5,0", "NaN"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestParseDate(t *testing.T) {
	for in, want := range map[string]string{
		"2024-03-15": "2024-03-15",
		"15-03-2024": "2024-03-15",
		"5-3-2024":   "2024-03-05",
		"15.03.2024": "2024-03-15",
		"15/03/2024": "2024-03-15",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDate("")
	assert.Error(t, err)
	_, err = ParseDate("gisteren")
	assert.Error(t, err)
}

func TestParsePercentage(t *testing.T) {
	v, err := ParsePercentage("21%")
	require.NoError(t, err)
	assert.Equal(t, 21.0, v)

	v, err = ParsePercentage("33,3")
	require.NoError(t, err)
	assert.InDelta(t, 33.3, v, 1e-9)
}

func TestParseSplit(t *testing.T) {
	split, err := ParseSplit("sh1:60; sh2:40%")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"sh1": 60, "sh2": 40}, split)

	split, err = ParseSplit("")
	require.NoError(t, err)
	assert.Nil(t, split)

	_, err = ParseSplit("sh1=60")
	assert.Error(t, err)
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings(map[string]string{"Handmatige_Correctie": "2.500,00", "onbekend": "x"})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, s.ManualCorrection)

	s, err = ParseSettings(nil)
	require.NoError(t, err)
	assert.Zero(t, s.ManualCorrection)

	_, err = ParseSettings(map[string]string{"handmatige_correctie": "veel"})
	assert.ErrorIs(t, err, ErrInvalidSetting)
}
