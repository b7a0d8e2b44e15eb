package numeric

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "Integer", in: 10, want: "10.0"},
		{name: "Fraction", in: 2.5, want: "2.5"},
		{name: "DisplayDefault", in: 24.5, want: "24.5"},
		{name: "Hundred", in: 100, want: "100.0"},
		{name: "Zero", in: 0, want: "0.0"},
		{name: "NegativeZero", in: math.Copysign(0, -1), want: "-0.0"},
		{name: "Negative", in: -4, want: "-4.0"},
		{name: "Half", in: 0.5, want: "0.5"},
		{name: "ShortestRoundTrip", in: 0.30000000000000004, want: "0.30000000000000004"},
		{name: "SmallFixed", in: 0.0001, want: "0.0001"},
		{name: "SmallScientific", in: 0.00001, want: "1.0e-05"},
		{name: "SmallScientificDigits", in: 0.0000123, want: "1.23e-05"},
		{name: "LargestFixed", in: 1e15, want: "1000000000000000.0"},
		{name: "LargeFixedFraction", in: 1234567.125, want: "1234567.125"},
		{name: "LargeScientific", in: 1e16, want: "1.0e+16"},
		{name: "HugeScientific", in: 1.5e300, want: "1.5e+300"},
		{name: "NegativeScientific", in: -2.5e-7, want: "-2.5e-07"},
		{name: "NaN", in: math.NaN(), want: "NaN"},
		{name: "PositiveInfinity", in: math.Inf(1), want: "Infinity"},
		{name: "NegativeInfinity", in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEcho(t *testing.T) {
	t.Parallel()

	if got, want := Echo(10, 20), "calc(10.0, 20.0)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := Echo(10, 24.5), "calc(10.0, 24.5)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRuntimeSum(t *testing.T) {
	t.Parallel()

	a, b := 0.1, 0.2
	if got, want := Format(a+b), "0.30000000000000004"; got != want {
		t.Fatalf("Format(%v) = %q, want %q", a+b, got, want)
	}
}
