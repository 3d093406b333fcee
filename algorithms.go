package progress

import "time"

// SmoothingAlgorithm smooths a noisy series of instantaneous measurements,
// typically rates feeding ETA widgets. The elapsed argument exists for
// interface uniformity with time-aware algorithms a caller might add; the
// moving averages here ignore it.
type SmoothingAlgorithm interface {
	Update(value float64, elapsed time.Duration) float64
}

// ExponentialMovingAverage is an exponentially weighted moving average.
// It reduces the lag of a simple moving average and responds faster to
// recent changes.
type ExponentialMovingAverage struct {
	Alpha float64
	value float64
}

// NewEMA returns an EMA with the given smoothing factor and a zero initial
// state.
func NewEMA(alpha float64) *ExponentialMovingAverage {
	return &ExponentialMovingAverage{Alpha: alpha}
}

// Update folds a new observation in and returns the smoothed value.
func (e *ExponentialMovingAverage) Update(value float64, _ time.Duration) float64 {
	e.value = e.Alpha*value + (1-e.Alpha)*e.value
	return e.value
}

// DoubleExponentialMovingAverage is an EMA of an EMA, which cancels most
// of the lag a single EMA retains.
type DoubleExponentialMovingAverage struct {
	Alpha      float64
	ema1, ema2 float64
}

// NewDEMA returns a DEMA with the given smoothing factor and zero initial
// state.
func NewDEMA(alpha float64) *DoubleExponentialMovingAverage {
	return &DoubleExponentialMovingAverage{Alpha: alpha}
}

// Update folds a new observation in and returns 2*ema1 - ema2.
func (d *DoubleExponentialMovingAverage) Update(value float64, _ time.Duration) float64 {
	d.ema1 = d.Alpha*value + (1-d.Alpha)*d.ema1
	d.ema2 = d.Alpha*d.ema1 + (1-d.Alpha)*d.ema2
	return 2*d.ema1 - d.ema2
}
