package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelAddrs(t *testing.T) {
	t.Setenv("REDIS_SENTINEL_ADDRS", "sentinel-0:26379, sentinel-1:26379 ,,sentinel-2:26379")

	assert.Equal(t, []string{
		"sentinel-0:26379",
		"sentinel-1:26379",
		"sentinel-2:26379",
	}, sentinelAddrs())
}

func TestSentinelAddrsUnset(t *testing.T) {
	t.Setenv("REDIS_SENTINEL_ADDRS", "")

	assert.Empty(t, sentinelAddrs())
}
