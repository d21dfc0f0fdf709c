package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorOffset(t *testing.T) {
	grid := BuildGrid(7, 23)
	day := time.Date(2026, 4, 21, 0, 0, 0, 0, saoPaulo)

	offset, ok := IndicatorOffset(day.Add(8*time.Hour), grid, 28)
	assert.True(t, ok)
	assert.Equal(t, 112.0, offset)

	_, ok = IndicatorOffset(day.Add(23*time.Hour), grid, 28)
	assert.False(t, ok)

	_, ok = IndicatorOffset(day.Add(6*time.Hour+59*time.Minute), grid, 28)
	assert.False(t, ok)

	offset, ok = IndicatorOffset(day.Add(22*time.Hour+59*time.Minute), grid, 28)
	assert.True(t, ok)
	assert.InDelta(t, 63.0*28+14.0/15*28, offset, 1e-9)
}

func TestIndicatorOffset_IsContinuous(t *testing.T) {
	grid := BuildGrid(7, 23)
	day := time.Date(2026, 4, 21, 0, 0, 0, 0, saoPaulo)

	offset, ok := IndicatorOffset(day.Add(7*time.Hour+7*time.Minute), grid, 30)
	assert.True(t, ok)
	assert.InDelta(t, 14.0, offset, 1e-9)
}

func TestIndicatorOffset_EmptyGrid(t *testing.T) {
	_, ok := IndicatorOffset(time.Now(), BuildGrid(9, 9), 28)
	assert.False(t, ok)
}

func TestSlotHeight(t *testing.T) {
	assert.Equal(t, 28, SlotHeight(false, 900, DayHeaderHeightPx, 64, DefaultSlotHeightPx))
	assert.Equal(t, 28, SlotHeight(true, 0, DayHeaderHeightPx, 64, DefaultSlotHeightPx))
	// (1000-64)/36 = 26
	assert.Equal(t, 26, SlotHeight(true, 1000, DayHeaderHeightPx, 36, DefaultSlotHeightPx))
	assert.Equal(t, MinSlotHeightPx, SlotHeight(true, 600, WeekHeaderHeightPx, 64, DefaultSlotHeightPx))
}
