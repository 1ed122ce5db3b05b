package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_SameCalendarDay(t *testing.T) {
	t.Run("same day, different clock times", func(t *testing.T) {
		require.True(t, SameCalendarDay(
			time.Date(2020, 5, 4, 1, 0, 0, 0, time.UTC),
			time.Date(2020, 5, 4, 23, 59, 0, 0, time.UTC),
		))
	})

	t.Run("midnight boundary", func(t *testing.T) {
		require.False(t, SameCalendarDay(
			time.Date(2020, 5, 4, 23, 59, 0, 0, time.UTC),
			time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC),
		))
	})

	t.Run("compares in utc", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		require.False(t, SameCalendarDay(
			// 2020-05-05 in UTC
			time.Date(2020, 5, 4, 22, 0, 0, 0, est),
			time.Date(2020, 5, 4, 12, 0, 0, 0, time.UTC),
		))
	})
}

func Test_TruncateToDay(t *testing.T) {
	got := TruncateToDay(time.Date(2020, 5, 4, 13, 45, 12, 99, time.UTC))
	require.True(t, got.Equal(NewDate(2020, 5, 4)))
}
