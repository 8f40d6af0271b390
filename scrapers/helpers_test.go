package scrapers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleEstimate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	data := cycleEstimate(testSpec, 30, "src", "note")(now)

	require.NotNil(t, data.NextWipe)
	assert.Equal(t, time.Date(2025, time.July, 15, 19, 0, 0, 0, time.UTC), *data.NextWipe)
	assert.Equal(t, data.NextWipe.Add(-testSpec.Cycle()), *data.LastWipe)
	assert.False(t, data.Confirmed)
	assert.Equal(t, "src", data.Source)
}

func TestAnchorEstimateRollsForward(t *testing.T) {
	anchor := time.Date(2025, time.January, 8, 21, 0, 0, 0, time.UTC)
	spec := testSpec
	spec.CycleDays = 60

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	data := anchorEstimate(spec, anchor, "src", "")(now)

	// Jan 8 + 60d = Mar 9, + 60d = May 8, + 60d = Jul 7: first projection past now.
	require.NotNil(t, data.NextWipe)
	assert.Equal(t, time.Date(2025, time.July, 7, 21, 0, 0, 0, time.UTC), *data.NextWipe)
	assert.Equal(t, time.Date(2025, time.May, 8, 21, 0, 0, 0, time.UTC), *data.LastWipe)
}

func TestAnchorEstimateFutureAnchorKept(t *testing.T) {
	anchor := time.Date(2025, time.December, 3, 18, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	data := anchorEstimate(testSpec, anchor, "src", "")(now)
	require.NotNil(t, data.NextWipe)
	assert.Equal(t, anchor, *data.NextWipe)
}

func TestScheduleEstimate(t *testing.T) {
	spec := testSpec
	schedule := [][2]int{{3, 15}, {6, 15}, {9, 15}, {12, 15}}

	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	data := scheduleEstimate(spec, schedule, "src", "")(now)
	require.NotNil(t, data.NextWipe)
	assert.Equal(t, time.Date(2025, time.September, 15, 19, 0, 0, 0, time.UTC), *data.NextWipe)

	// Past the last slot of the year it wraps into next year.
	now = time.Date(2025, time.December, 20, 12, 0, 0, 0, time.UTC)
	data = scheduleEstimate(spec, schedule, "src", "")(now)
	require.NotNil(t, data.NextWipe)
	assert.Equal(t, time.Date(2026, time.March, 15, 19, 0, 0, 0, time.UTC), *data.NextWipe)
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("New SEASON starts soon", []string{"season"}))
	assert.False(t, containsAny("patch notes", []string{"season", "wipe"}))
	assert.False(t, containsAny("anything", nil) || containsAny("anything", []string{}))
}

func TestPageText(t *testing.T) {
	html := `<html><head><script>var x = "January 1, 1999";</script></head>
		<body><p>Wipe lands December 3, 2025</p><style>.x{}</style></body></html>`

	text, err := pageText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Wipe lands December 3, 2025")
	assert.NotContains(t, text, "January 1, 1999")
}
