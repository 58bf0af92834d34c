package stats

import (
	"math"
	"testing"
)

func TestTrimmedMean_SmallSetPlainMean(t *testing.T) {
	got, err := TrimmedMean([]float64{10, 20, 30, 1000}, 0.10, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := (10 + 20 + 30 + 1000) / 4.0
	if got != want {
		t.Errorf("got %.2f, want %.2f (4 samples must not trim)", got, want)
	}
}

func TestTrimmedMean_DropsExtremes(t *testing.T) {
	// 7 samples, ceil(0.7)=1 trimmed from each end: 1 and 100 must go.
	got, err := TrimmedMean([]float64{1, 2, 3, 4, 5, 6, 100}, 0.10, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := (2 + 3 + 4 + 5 + 6) / 5.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %.4f, want %.4f", got, want)
	}
}

func TestTrimmedMean_UnsortedInput(t *testing.T) {
	got, err := TrimmedMean([]float64{100, 4, 1, 6, 3, 5, 2}, 0.10, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %.4f, want %.4f", got, want)
	}
}

func TestTrimmedMean_Empty(t *testing.T) {
	if _, err := TrimmedMean(nil, 0.10, 4); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestMinMax(t *testing.T) {
	min, max, err := MinMax([]float64{5, 1, 9, 3})
	if err != nil {
		t.Fatal(err)
	}
	if min != 1 || max != 9 {
		t.Errorf("got (%.0f, %.0f), want (1, 9)", min, max)
	}
}

func TestImpliedUnitPrice(t *testing.T) {
	if got := ImpliedUnitPrice(5000, 100); got != 50 {
		t.Errorf("got %.2f, want 50", got)
	}
	if got := ImpliedUnitPrice(42, 0); got != 42 {
		t.Errorf("zero multiplier must pass through, got %.2f", got)
	}
}

func TestPerUnitIsNoise(t *testing.T) {
	tests := []struct {
		rawAvg  float64
		implied float64
		want    bool
	}{
		{500, 50, true},  // 10x above implied
		{5, 50, true},    // 0.1x below implied
		{60, 50, false},  // within band
		{250, 50, false}, // exactly 5x is still accepted
		{10, 50, false},  // exactly 0.2x is still accepted
	}
	for _, tt := range tests {
		if got := PerUnitIsNoise(tt.rawAvg, tt.implied, 5.0, 0.2); got != tt.want {
			t.Errorf("raw=%.0f implied=%.0f: got %v, want %v", tt.rawAvg, tt.implied, got, tt.want)
		}
	}
}
