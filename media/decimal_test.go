package media

import (
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestNewDecimalValue(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "integer", input: 90, want: "90000000000000000000"},
		{name: "zero", input: 0, want: "0"},
		{name: "four decimals kept", input: 10.1234, want: "10123400000000000000"},
		{name: "fifth decimal truncated not rounded", input: 10.12349, want: "10123400000000000000"},
		{name: "hundred", input: 100, want: "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDecimalValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Value.Cmp(mustBig(t, tt.want)), "got %s", got.Value)
		})
	}
}

func TestNewDecimalValueInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{name: "negative", input: -1},
		{name: "nan", input: math.NaN()},
		{name: "positive inf", input: math.Inf(1)},
		{name: "negative inf", input: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecimalValue(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))
		})
	}
}

func TestDecimalValueString(t *testing.T) {
	d, err := NewDecimalValue(10.5)
	require.NoError(t, err)
	assert.Equal(t, "10.5", d.String())

	assert.Equal(t, "100", HundredPercent().String())
}

func TestDecimalValueIsValid(t *testing.T) {
	assert.False(t, DecimalValue{}.IsValid())
	assert.True(t, MustDecimalValue(1).IsValid())
}
