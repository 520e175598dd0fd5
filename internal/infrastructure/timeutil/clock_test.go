package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	initialTime := time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)
	newTime := time.Date(2025, 12, 15, 14, 30, 0, 0, time.UTC)

	clock := NewMockClock(initialTime)
	clock.Set(newTime)

	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC), clock.Now())

	clock.AdvanceDays(5)
	assert.Equal(t, time.Date(2025, 12, 20, 10, 30, 0, 0, time.UTC), clock.Now())

	clock.Advance(-2 * time.Hour)
	assert.Equal(t, time.Date(2025, 12, 20, 8, 30, 0, 0, time.UTC), clock.Now())
}

func TestMockClock_ConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(time.Millisecond)
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, start.Add(100*time.Millisecond), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-12-15T10:30:00Z")
	assert.Equal(t, time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("invalid-time")
	})
}

func TestToday(t *testing.T) {
	// 01:30 UTC is still the previous day in São Paulo (UTC-3)
	clock := NewMockClock(time.Date(2025, 6, 10, 1, 30, 0, 0, time.UTC))

	saoPaulo := MustGetLocation(BRT)
	today := Today(clock, saoPaulo)
	assert.Equal(t, "2025-06-09", FormatDate(today))
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, saoPaulo, today.Location())

	assert.Equal(t, "2025-06-10", FormatDate(Today(clock, nil)))
}
