package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation(BRT)
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	loc, err = GetLocation(UTC)
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Invalid/Timezone")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	loc1, err := GetLocation(BRT)
	require.NoError(t, err)

	loc2, err := GetLocation(BRT)
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	locations := []string{UTC, BRT, "America/Manaus", "Europe/Lisbon"}

	for i := 0; i < 50; i++ {
		for _, tz := range locations {
			wg.Add(1)
			go func(timezone string) {
				defer wg.Done()
				loc, err := GetLocation(timezone)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(tz)
		}
	}

	wg.Wait()
}

func TestMustGetLocation(t *testing.T) {
	ClearLocationCache()

	assert.NotNil(t, MustGetLocation(UTC))
	assert.Panics(t, func() {
		MustGetLocation("Invalid/Timezone")
	})
}

func TestInTimezone(t *testing.T) {
	utcTime := time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)

	spTime, err := InTimezone(utcTime, BRT)
	require.NoError(t, err)

	// São Paulo is UTC-3 with no daylight saving since 2019
	assert.Equal(t, 7, spTime.Hour())
	assert.Equal(t, BRT, spTime.Location().String())

	_, err = InTimezone(utcTime, "Invalid/Timezone")
	assert.Error(t, err)
}

func TestStartOfDay_PreservesLocation(t *testing.T) {
	loc := MustGetLocation(BRT)
	tm := time.Date(2025, 12, 15, 14, 35, 22, 123, loc)

	result := StartOfDay(tm)

	assert.Equal(t, "2025-12-15", FormatDate(result))
	assert.Equal(t, 0, result.Hour())
	assert.Equal(t, 0, result.Nanosecond())
	assert.Equal(t, loc, result.Location())
}
