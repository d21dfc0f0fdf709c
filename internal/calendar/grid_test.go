package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_SlotCountAndOrder(t *testing.T) {
	for start := 0; start < 24; start++ {
		for end := start + 1; end <= 24; end++ {
			g := BuildGrid(start, end)
			require.Equal(t, (end-start)*4, g.Len(), "grid %d-%d", start, end)

			seen := make(map[string]bool, g.Len())
			for i, s := range g.Slots {
				assert.False(t, seen[s.Key], "duplicate key %s", s.Key)
				seen[s.Key] = true
				if i > 0 {
					prev := g.Slots[i-1]
					assert.Less(t, prev.Minutes(), s.Minutes())
					assert.Less(t, prev.Key, s.Key)
				}
			}
		}
	}
}

func TestBuildGrid_Bounds(t *testing.T) {
	g := BuildGrid(7, 23)

	first, ok := g.First()
	require.True(t, ok)
	last, _ := g.Last()

	assert.Equal(t, 64, g.Len())
	assert.Equal(t, "07:00", first.Key)
	assert.Equal(t, "22:45", last.Key)
	assert.False(t, g.Has("23:00"))
	assert.True(t, g.Has("12:30"))
}

func TestBuildGrid_InvalidRangeIsEmpty(t *testing.T) {
	for _, tc := range [][2]int{{9, 9}, {10, 9}, {-1, 5}, {20, 25}} {
		g := BuildGrid(tc[0], tc[1])
		require.NotNil(t, g)
		assert.True(t, g.IsEmpty(), "range %v", tc)
		assert.Empty(t, g.Slots)

		_, ok := g.First()
		assert.False(t, ok)
	}
}

func TestSlotKeyFromTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "14:00", SlotKeyFromTime(time.Date(2026, 5, 4, 14, 7, 0, 0, loc), loc))
	assert.Equal(t, "14:15", SlotKeyFromTime(time.Date(2026, 5, 4, 14, 15, 0, 0, loc), loc))
	assert.Equal(t, "14:45", SlotKeyFromTime(time.Date(2026, 5, 4, 14, 59, 59, 0, loc), loc))

	// Stored in UTC, rendered in the unit timezone
	utc := time.Date(2026, 5, 4, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "14:30", SlotKeyFromTime(utc, loc))
}
