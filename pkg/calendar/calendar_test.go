package calendar_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/calendar"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, time.February, 27, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		n    int
		want time.Time
	}{
		{name: "zero", n: 0, want: base},
		{name: "leap day", n: 2, want: time.Date(2024, time.February, 29, 15, 30, 0, 0, time.UTC)},
		{name: "month rollover", n: 3, want: time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)},
		{name: "negative", n: -27, want: time.Date(2024, time.January, 31, 15, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, calendar.AddDays(base, tt.n))
		})
	}
}

func TestIsWeekday(t *testing.T) {
	t.Parallel()
	saturday := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)

	require.True(t, calendar.IsWeekday(saturday, time.Saturday))
	require.False(t, calendar.IsWeekday(saturday, time.Sunday))
	require.True(t, calendar.IsWeekday(calendar.AddDays(saturday, 1), time.Sunday))
}

func TestSameDate(t *testing.T) {
	t.Parallel()
	morning := time.Date(2024, time.March, 2, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2024, time.March, 2, 23, 59, 59, 0, time.UTC)

	require.True(t, calendar.SameDate(morning, evening))
	require.False(t, calendar.SameDate(morning, calendar.AddDays(morning, 1)))
	require.False(t, calendar.SameDate(morning, morning.AddDate(1, 0, 0)))
}

func TestClock_OffsetFromNow(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)
	clock := calendar.Clock(func() time.Time { return now })

	require.Equal(t, now, clock.Now())
	require.Equal(t, time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC), clock.OffsetFromNow(3))
	require.Equal(t, time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC), clock.OffsetFromNow(-2))
}

func TestDateWithOffsetFromNow(t *testing.T) {
	t.Parallel()
	got := calendar.DateWithOffsetFromNow(2)
	require.True(t, calendar.SameDate(time.Now().AddDate(0, 0, 2), got))
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{in: "sunday", want: time.Sunday},
		{in: "Saturday", want: time.Saturday},
		{in: " MON ", want: time.Monday},
		{in: "wed", want: time.Wednesday},
		{in: "", wantErr: true},
		{in: "someday", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := calendar.ParseWeekday(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
