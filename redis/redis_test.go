package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityKey(t *testing.T) {
	assert.Equal(t, "avail:3:2026-09-14:all", AvailabilityKey(3, "2026-09-14", nil))

	emp := uint(7)
	assert.Equal(t, "avail:3:2026-09-14:7", AvailabilityKey(3, "2026-09-14", &emp))
}

func TestNilClientDegradesGracefully(t *testing.T) {
	Client = nil

	assert.Empty(t, GetAvailability("avail:1:2026-09-14:all"))
	assert.NotPanics(t, func() { SetAvailability("avail:1:2026-09-14:all", "{}") })
	assert.NotPanics(t, func() { InvalidateAvailability("2026-09-14") })
	assert.NotPanics(t, func() { InvalidateAllAvailability() })
}
