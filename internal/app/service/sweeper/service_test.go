package sweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStaleCutoff(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 2026-03-10 02:30 UTC is still 2026-03-09 21:30 in Bogota (UTC-5)
	now := time.Date(2026, 3, 10, 2, 30, 0, 0, time.UTC)
	horizon := 720 * time.Hour

	cutoff := staleCutoff(now, bogota, horizon)

	require.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, bogota).Add(-horizon), cutoff)
	require.True(t, cutoff.Before(now))
}

func TestStaleCutoffTimezoneShiftsInstant(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 2, 30, 0, 0, time.UTC)
	horizon := 720 * time.Hour

	utcCutoff := staleCutoff(now, time.UTC, horizon)
	bogotaCutoff := staleCutoff(now, bogota, horizon)

	// same wall clock reading, different day boundary: the instants differ
	require.False(t, utcCutoff.Equal(bogotaCutoff))
}
