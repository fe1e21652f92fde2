package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHM(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	got, err := ParseHM(date, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC), got)

	_, err = ParseHM(date, "9:30am")
	assert.Error(t, err)

	_, err = ParseHM(date, "25:00")
	assert.Error(t, err)

	_, err = ParseHM(date, "")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 14, got.Day())

	_, err = ParseDate("14/09/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 9, 14, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}
