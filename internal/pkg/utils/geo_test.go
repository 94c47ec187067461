package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// Same point
	if d := CalculateHaversineDistance(28.6139, 77.2090, 28.6139, 77.2090); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// New Delhi to Mumbai, roughly 1150 km
	d := CalculateHaversineDistance(28.6139, 77.2090, 19.0760, 72.8777)
	if math.Abs(d-1150000) > 20000 {
		t.Errorf("Delhi-Mumbai distance = %f m, want ~1150000", d)
	}

	// 100 m offset should be close to 100 m
	d = CalculateHaversineDistance(28.613900, 77.209000, 28.614800, 77.209000)
	if math.Abs(d-100) > 2 {
		t.Errorf("100m offset distance = %f m, want ~100", d)
	}
}
