package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntSetting(t *testing.T) {
	assert.Equal(t, 15, ParseIntSetting("15", 30))
	assert.Equal(t, 15, ParseIntSetting(" 15 ", 30))
	assert.Equal(t, 0, ParseIntSetting("0", 30), "zero is a legitimate value")
	assert.Equal(t, 30, ParseIntSetting("-5", 30))
	assert.Equal(t, 30, ParseIntSetting("abc", 30))
	assert.Equal(t, 30, ParseIntSetting("", 30))
}

func TestParseBoolSetting(t *testing.T) {
	assert.True(t, ParseBoolSetting("true", false))
	assert.True(t, ParseBoolSetting("1", false))
	assert.False(t, ParseBoolSetting("false", true))
	assert.False(t, ParseBoolSetting("0", true))
	assert.True(t, ParseBoolSetting("garbage", true))
	assert.False(t, ParseBoolSetting("", false))
}
