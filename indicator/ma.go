package indicator

import (
	"math"

	"github.com/evdnx/gomentum/types"
)

// SMA computes the rolling simple moving average. The first period-1
// positions are undefined.
func SMA(values []float64, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = types.F(sum / float64(period))
		}
	}
	return out
}

// SMAFloat averages over a column that may carry undefined markers; a
// window produces a value only when every member is defined, so warm-up
// gaps propagate instead of being zeroed.
func SMAFloat(values []types.Float, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		defined := true
		for j := i - period + 1; j <= i; j++ {
			if !values[j].Valid {
				defined = false
				break
			}
			sum += values[j].Float64
		}
		if defined {
			out[i] = types.F(sum / float64(period))
		}
	}
	return out
}

// StdDev computes the rolling population standard deviation.
func StdDev(values []float64, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)
		variance := 0.0
		for _, v := range window {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(period)
		out[i] = types.F(math.Sqrt(variance))
	}
	return out
}

// EMA computes the exponential moving average, seeded with the SMA of the
// first period values. Defined from position period-1.
func EMA(values []float64, period int) []types.Float {
	wrapped := make([]types.Float, len(values))
	for i, v := range values {
		wrapped[i] = types.F(v)
	}
	return EMAFloat(wrapped, period)
}

// EMAFloat is EMA over a column with an undefined warm-up prefix: the
// average seeds once period defined values have been seen, so a derived
// column (e.g. the MACD signal line) starts exactly where its input allows.
func EMAFloat(values []types.Float, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	seen := 0
	sum := 0.0
	prev := 0.0
	seeded := false
	for i, v := range values {
		if !v.Valid {
			continue
		}
		if !seeded {
			sum += v.Float64
			seen++
			if seen == period {
				prev = sum / float64(period)
				out[i] = types.F(prev)
				seeded = true
			}
			continue
		}
		prev += alpha * (v.Float64 - prev)
		out[i] = types.F(prev)
	}
	return out
}

// PctChange computes the n-period percent change: values[i]/values[i-n] - 1.
// The first n positions are undefined.
func PctChange(values []float64, n int) []types.Float {
	out := make([]types.Float, len(values))
	if n <= 0 {
		return out
	}
	for i := n; i < len(values); i++ {
		if values[i-n] != 0 {
			out[i] = types.F(values[i]/values[i-n] - 1)
		}
	}
	return out
}

// Ratio divides values by a rolling baseline, undefined wherever the
// baseline is undefined or zero.
func Ratio(values []float64, baseline []types.Float) []types.Float {
	out := make([]types.Float, len(values))
	for i := range values {
		if i < len(baseline) && baseline[i].Valid && baseline[i].Float64 != 0 {
			out[i] = types.F(values[i] / baseline[i].Float64)
		}
	}
	return out
}

// rollingMax computes the period-window running maximum.
func rollingMax(values []float64, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		best := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] > best {
				best = values[j]
			}
		}
		out[i] = types.F(best)
	}
	return out
}

// rollingMin computes the period-window running minimum.
func rollingMin(values []float64, period int) []types.Float {
	out := make([]types.Float, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		best := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if values[j] < best {
				best = values[j]
			}
		}
		out[i] = types.F(best)
	}
	return out
}
