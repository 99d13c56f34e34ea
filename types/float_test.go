package types

import (
	"math"
	"testing"
)

func TestFloatToStringSpecialValues(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{1.5, "1.5"},
	}
	for _, tc := range tests {
		if got := NewFloat(tc.v).ToString(); got != tc.want {
			t.Errorf("ToString(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFloatTruthyAlwaysTrue(t *testing.T) {
	if !NewFloat(0.0).Truthy() {
		t.Error("0.0 must still be truthy; only null and false are falsy")
	}
}

func TestFloatEqualNaN(t *testing.T) {
	nan := NewFloat(math.NaN())
	if nan.Equal(nan) {
		t.Error("NaN must never equal itself")
	}
}
