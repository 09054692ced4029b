package vmath

import (
	"math"
	"testing"
)

// Monitor used in the reference setup: 34.5 cm wide, 1728 px, viewed at 60 cm
const (
	testDistanceCm = 60.0
	testWidthCm    = 34.5
	testWidthPx    = 1728.0
)

func TestDegToPixelsZero(t *testing.T) {
	got := DegToPixels(0, testDistanceCm, testWidthCm, testWidthPx)
	if got != 0 {
		t.Errorf("Expected 0 px for 0°, got %v", got)
	}
}

func TestDegToPixelsKnownValue(t *testing.T) {
	// 1° at 60 cm subtends 2*60*tan(0.5°) ≈ 1.0472 cm
	wantCm := 2 * testDistanceCm * math.Tan(math.Pi/360)
	want := wantCm / testWidthCm * testWidthPx

	got := DegToPixels(1, testDistanceCm, testWidthCm, testWidthPx)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v px for 1°, got %v", want, got)
	}
}

func TestDegToPixelsMonotonic(t *testing.T) {
	prev := DegToPixels(0, testDistanceCm, testWidthCm, testWidthPx)
	for deg := 1.0; deg <= 90.0; deg++ {
		cur := DegToPixels(deg, testDistanceCm, testWidthCm, testWidthPx)
		if cur <= prev {
			t.Fatalf("Expected monotonic increase, but %g° (%v px) <= %g° (%v px)", deg, cur, deg-1, prev)
		}
		prev = cur
	}
}

func TestDegToPixelsMirrored(t *testing.T) {
	pos := DegToPixels(4, testDistanceCm, testWidthCm, testWidthPx)
	neg := DegToPixels(-4, testDistanceCm, testWidthCm, testWidthPx)
	if math.Abs(pos+neg) > 1e-9 {
		t.Errorf("Expected -4° to mirror 4°: got %v and %v", pos, neg)
	}
}

func TestDegToPixelsCheckedDomain(t *testing.T) {
	if _, err := DegToPixelsChecked(180, testDistanceCm, testWidthCm, testWidthPx); err == nil {
		t.Error("Expected domain error at 180°, got nil")
	}
	if _, err := DegToPixelsChecked(-180, testDistanceCm, testWidthCm, testWidthPx); err == nil {
		t.Error("Expected domain error at -180°, got nil")
	}
	got, err := DegToPixelsChecked(8, testDistanceCm, testWidthCm, testWidthPx)
	if err != nil {
		t.Fatalf("Expected no error for 8°, got %v", err)
	}
	if got <= 0 {
		t.Errorf("Expected positive offset for 8°, got %v", got)
	}
}
