package units

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Unit
	}{
		{"t", Tonne},
		{"T", Tonne},
		{" t ", Tonne},
		{"ton", Tonne},
		{"tons", Tonne},
		{"tonne", Tonne},
		{"tonnes", Tonne},
		{"Tonnes", Tonne},
		{"metric tons", Tonne},
		{"kg", Kilogram},
		{"KG", Kilogram},
		{"kilograms", Kilogram},
		{"", Kilogram},
		{"lbs", Kilogram},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestToKilograms(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     Unit
		want     float64
	}{
		{"kilograms pass through", 42, Kilogram, 42},
		{"tonnes scale up", 12.5, Tonne, 12500},
		{"zero", 0, Tonne, 0},
		// Unknown tags keep the tonne-scale default.
		{"unknown tag", 2, Unit("bogus"), 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToKilograms(tt.quantity, tt.unit); got != tt.want {
				t.Errorf("ToKilograms(%v, %q) = %v, want %v", tt.quantity, tt.unit, got, tt.want)
			}
		})
	}
}

// TestRoundTrip checks ToKilograms/FromKilograms are inverse for every
// recognized unit spelling.
func TestRoundTrip(t *testing.T) {
	quantities := []float64{0.001, 1, 12.5, 2000, 1e6}
	for _, raw := range []string{"kg", "t", "tonnes", "tons"} {
		unit := Normalize(raw)
		for _, q := range quantities {
			got := FromKilograms(ToKilograms(q, unit), unit)
			if math.Abs(got-q) > 1e-9 {
				t.Errorf("round trip %v %s: got %v", q, raw, got)
			}
		}
	}
}
