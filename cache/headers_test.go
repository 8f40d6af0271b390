package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlHeader(t *testing.T) {
	assert.Equal(t,
		"public, max-age=300, s-maxage=300, stale-while-revalidate=600",
		ControlHeader(PresetWipeData))

	assert.Equal(t,
		"public, max-age=900, s-maxage=900, stale-while-revalidate=3600",
		ControlHeader(PresetConfirmed))

	assert.Equal(t,
		"public, max-age=60, s-maxage=60, stale-while-revalidate=300",
		ControlHeader(PresetDynamic))

	assert.Equal(t,
		"private, max-age=0, s-maxage=0, stale-while-revalidate=0",
		ControlHeader(PresetNoCache))
}
