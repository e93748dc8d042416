package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration_HoursAndMinutes(t *testing.T) {
	d, err := ParseISODuration("PT2H30M")

	require.NoError(t, err)
	assert.Equal(t, 2, d.Hours)
	assert.Equal(t, 30, d.Minutes)
	assert.Equal(t, 150, d.TotalMinutes)
	assert.Equal(t, "2h 30m", d.Formatted)
}

func TestParseISODuration_MissingMinutes(t *testing.T) {
	d, err := ParseISODuration("PT11H")

	require.NoError(t, err)
	assert.Equal(t, 11, d.Hours)
	assert.Equal(t, 0, d.Minutes)
	assert.Equal(t, 660, d.TotalMinutes)
	assert.Equal(t, "11h 0m", d.Formatted)
}

func TestParseISODuration_MissingHours(t *testing.T) {
	d, err := ParseISODuration("PT45M")

	require.NoError(t, err)
	assert.Equal(t, 0, d.Hours)
	assert.Equal(t, 45, d.Minutes)
	assert.Equal(t, 45, d.TotalMinutes)
	assert.Equal(t, "45m", d.Formatted)
}

func TestParseISODuration_Invalid(t *testing.T) {
	for _, raw := range []string{"", "2h30m", "P1DT2H", "PT2H30M10S", "PTXXH"} {
		_, err := ParseISODuration(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParseISODuration_TotalMinutesInvariant(t *testing.T) {
	cases := []string{"PT0M", "PT1H", "PT23H59M", "PT90M", "PT10H5M"}

	for _, raw := range cases {
		d, err := ParseISODuration(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, d.Hours*60+d.Minutes, d.TotalMinutes, raw)
	}
}

func TestFormatDuration_StableUnderRenormalization(t *testing.T) {
	d, err := ParseISODuration("PT3H5M")
	require.NoError(t, err)

	again := NewDuration(d.Hours, d.Minutes)
	assert.Equal(t, d, again)
}
