package docsync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    any
		want  string // "" means null
		isErr error
	}{
		{"nil", nil, "", nil},
		{"float64", 12.34, "12.34", nil},
		{"float32", float32(0.5), "0.5", nil},
		{"int", 56, "56", nil},
		{"int64", int64(-7), "-7", nil},
		{"uint64", uint64(18446744073709551615), "18446744073709551615", nil},
		{"json number", json.Number("3.14159"), "3.14159", nil},
		{"numeric string", " 12.34 ", "12.34", nil},
		{"empty string", "", "", nil},
		{"decimal", decimal.RequireFromString("1.10"), "1.1", nil},
		{"word", "douze", "", ErrNotNumeric},
		{"nan", nan(), "", ErrNotNumeric},
		{"bool", true, "", ErrUnrecognizedType},
		{"map", map[string]any{}, "", ErrUnrecognizedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := toDecimal(tt.in)
			if tt.isErr != nil {
				require.ErrorIs(t, err, tt.isErr)
				return
			}
			require.NoError(t, err)
			if tt.want == "" {
				require.False(t, got.Valid)
				return
			}
			require.True(t, got.Valid)
			require.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)), "got %s", got.Decimal)
		})
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func TestDecimalFieldNamesTheField(t *testing.T) {
	t.Parallel()

	_, err := decimalField(map[string]any{"budget": []int{1}}, "budget")
	require.ErrorIs(t, err, ErrUnrecognizedType)
	require.Contains(t, err.Error(), `"budget"`)

	got, err := decimalField(map[string]any{}, "budget")
	require.NoError(t, err)
	require.False(t, got.Valid)
}

func TestStringField(t *testing.T) {
	t.Parallel()

	fields := map[string]any{
		"s":     " abc ",
		"n":     float64(42),
		"i":     int64(7),
		"frac":  1.5,
		"slice": []string{"x"},
	}

	got, err := stringField(fields, "s")
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	got, err = stringField(fields, "n")
	require.NoError(t, err)
	require.Equal(t, "42", got)

	got, err = stringField(fields, "i")
	require.NoError(t, err)
	require.Equal(t, "7", got)

	got, err = stringField(fields, "absent")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = stringField(fields, "frac")
	require.ErrorIs(t, err, ErrUnrecognizedType)
	_, err = stringField(fields, "slice")
	require.ErrorIs(t, err, ErrUnrecognizedType)
}

func TestTimeAndDateFields(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 5, 1, 22, 30, 0, 0, time.UTC)
	fields := map[string]any{
		"ts":  at,
		"str": "2026-05-01T22:30:00Z",
		"bad": 17,
	}

	got, ok, err := timeField(fields, "ts")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, got.Equal(at))

	got, ok, err = timeField(fields, "str")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, got.Equal(at))

	_, ok, err = timeField(fields, "absent")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = timeField(fields, "bad")
	require.ErrorIs(t, err, ErrUnrecognizedType)

	day, err := dateField(fields, "ts")
	require.NoError(t, err)
	local := at.In(time.Local)
	require.Equal(t, time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local), *day)

	day, err = dateField(fields, "absent")
	require.NoError(t, err)
	require.Nil(t, day)
}
