package progress

import (
	"math"
	"testing"
	"time"
)

func TestExponentialMovingAverage(t *testing.T) {
	e := NewEMA(0.5)

	// Feeding a constant converges toward it from the zero start
	want := []float64{5, 7.5, 8.75, 9.375}
	for i, w := range want {
		got := e.Update(10, time.Second)
		if math.Abs(got-w) > 1e-9 {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
}

func TestEMAAlphaOneTracksInput(t *testing.T) {
	e := NewEMA(1)
	for _, v := range []float64{3, 8, 1} {
		if got := e.Update(v, time.Second); got != v {
			t.Errorf("Update(%v) = %v", v, got)
		}
	}
}

func TestDoubleExponentialMovingAverage(t *testing.T) {
	d := NewDEMA(0.5)

	want := []float64{7.5, 10, 10.625}
	for i, w := range want {
		got := d.Update(10, time.Second)
		if math.Abs(got-w) > 1e-9 {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
}

func TestDEMALessLagThanEMA(t *testing.T) {
	e := NewEMA(0.3)
	d := NewDEMA(0.3)

	var emaOut, demaOut float64
	for i := 0; i < 10; i++ {
		emaOut = e.Update(100, time.Second)
		demaOut = d.Update(100, time.Second)
	}
	if demaOut <= emaOut {
		t.Errorf("DEMA %v not ahead of EMA %v on a step input", demaOut, emaOut)
	}
}
