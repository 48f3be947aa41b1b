package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_ParseGranularity(t *testing.T) {
	tests := []struct {
		input string
		want  Granularity
	}{
		{"monthly", GranularityMonthly},
		{"Month", GranularityMonthly},
		{"QUARTERLY", GranularityQuarterly},
		{"quarter", GranularityQuarterly},
		{"yearly", GranularityYearly},
		{"year", GranularityYearly},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseGranularity(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown granularity", func(t *testing.T) {
		_, err := ParseGranularity("weekly")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func Test_GranularityLabel(t *testing.T) {
	d := time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2023-11", GranularityMonthly.Label(d))
	require.Equal(t, "2023-Q4", GranularityQuarterly.Label(d))
	require.Equal(t, "2023", GranularityYearly.Label(d))

	march := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2023-Q1", GranularityQuarterly.Label(march))
	april := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2023-Q2", GranularityQuarterly.Label(april))
}
