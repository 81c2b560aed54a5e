package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "time/tzdata"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "with negative offset",
			value: "2024-02-10T09:00:00-05:00",
			want:  time.Date(2024, 2, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "with zulu suffix",
			value: "2024-02-10T14:00:00Z",
			want:  time.Date(2024, 2, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "with positive offset",
			value: "2024-06-01T10:30:00+02:00",
			want:  time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "without offset is treated as UTC",
			value: "2024-02-10T14:00:00",
			want:  time.Date(2024, 2, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "with fractional seconds",
			value: "2024-02-10T14:00:00.500000-05:00",
			want:  time.Date(2024, 2, 10, 19, 0, 0, 500000000, time.UTC),
		},
		{
			name:  "with space separator",
			value: "2024-02-10 14:00:00",
			want:  time.Date(2024, 2, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2024-02-10",
			want:  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, value := range []string{"invalid-datetime", "", "10/02/2024 09:00", "2024-13-40T09:00:00"} {
		_, err := ParseTimestamp(value)
		require.Error(t, err, "value %q", value)

		parseErr, ok := err.(*ParseError)
		require.True(t, ok)
		assert.Contains(t, parseErr.Error(), "Invalid ISO 8601 datetime format")
	}
}

func TestValidateInterval(t *testing.T) {
	base := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"valid eight hours", base, base.Add(8 * time.Hour), nil},
		{"exactly twelve hours", base, base.Add(12 * time.Hour), nil},
		{"one second over twelve hours", base, base.Add(12*time.Hour + time.Second), ErrDurationExceeded},
		{"twenty five hours", base, base.Add(25 * time.Hour), ErrDurationExceeded},
		{"end equals start", base, base, ErrInvalidInterval},
		{"end before start", base, base.Add(-time.Hour), ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterval(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 2, 10, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{"identical intervals", [2]int{9, 17}, [2]int{9, 17}, true},
		{"partial overlap", [2]int{9, 13}, [2]int{12, 17}, true},
		{"contained interval", [2]int{9, 17}, [2]int{11, 12}, true},
		{"touching boundary is not overlap", [2]int{9, 13}, [2]int{13, 17}, false},
		{"touching boundary reversed", [2]int{13, 17}, [2]int{9, 13}, false},
		{"disjoint", [2]int{9, 11}, [2]int{14, 17}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(at(tt.a[0]), at(tt.a[1]), at(tt.b[0]), at(tt.b[1]))
			assert.Equal(t, tt.want, got)

			// overlap is symmetric
			assert.Equal(t, tt.want, overlaps(at(tt.b[0]), at(tt.b[1]), at(tt.a[0]), at(tt.a[1])))
		})
	}
}
