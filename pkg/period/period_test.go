package period

import (
	"testing"
	"time"

	"anoa.com/communityhub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly", "yearly", "all_time"} {
		p, err := Parse(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	_, err := Parse("fortnightly")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRange(t *testing.T) {
	// A Wednesday afternoon.
	now := time.Date(2026, time.August, 26, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		period Period
		start  time.Time
	}{
		{Daily, time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)},
		{Weekly, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)}, // Sunday
		{Monthly, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{Yearly, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{AllTime, time.Unix(0, 0)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end, err := tt.period.Range(now)
			require.NoError(t, err)
			assert.True(t, start.Equal(tt.start), "start: got %v want %v", start, tt.start)
			assert.True(t, end.Equal(now))
		})
	}
}

func TestRangeOnSunday(t *testing.T) {
	// Weekly anchored on a Sunday starts that same day.
	now := time.Date(2026, time.August, 23, 9, 0, 0, 0, time.UTC)

	start, _, err := Weekly.Range(now)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)))
}

func TestRangeUnknownPeriod(t *testing.T) {
	_, _, err := Period("quarterly").Range(time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
