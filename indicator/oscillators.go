package indicator

import (
	"math"

	"github.com/evdnx/gomentum/types"
)

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if d := math.Abs(high - prevClose); d > tr {
		tr = d
	}
	if d := math.Abs(low - prevClose); d > tr {
		tr = d
	}
	return tr
}

// ADX computes Wilder's average directional index. The first defined
// value sits at position 2*period-1: one window to seed the smoothed
// TR/DM sums, a second to average the first period DX values.
func ADX(highs, lows, closes []float64, period int) []types.Float {
	n := len(closes)
	out := make([]types.Float, n)
	if period <= 0 || n < 2*period {
		return out
	}

	var trSum, plusSum, minusSum float64
	var adx, dxSum float64

	for i := 1; i < n; i++ {
		tr := trueRange(highs[i], lows[i], closes[i-1])
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		plusDM, minusDM := 0.0, 0.0
		if upMove > downMove && upMove > 0 {
			plusDM = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM = downMove
		}

		if i <= period {
			trSum += tr
			plusSum += plusDM
			minusSum += minusDM
			if i < period {
				continue
			}
		} else {
			trSum += tr - trSum/float64(period)
			plusSum += plusDM - plusSum/float64(period)
			minusSum += minusDM - minusSum/float64(period)
		}

		dx := 0.0
		if trSum != 0 {
			plusDI := 100 * plusSum / trSum
			minusDI := 100 * minusSum / trSum
			if sum := plusDI + minusDI; sum != 0 {
				dx = 100 * math.Abs(plusDI-minusDI) / sum
			}
		}

		switch {
		case i < 2*period-1:
			dxSum += dx
		case i == 2*period-1:
			dxSum += dx
			adx = dxSum / float64(period)
			out[i] = types.F(adx)
		default:
			adx = (adx*float64(period-1) + dx) / float64(period)
			out[i] = types.F(adx)
		}
	}
	return out
}

// Stochastic computes the slow stochastic oscillator: raw %K over the
// fastK window, smoothed by slowK into %K and again by slowD into %D.
// Zero-range windows stay undefined rather than reporting a fake level.
func Stochastic(highs, lows, closes []float64, fastK, slowK, slowD int) (k, d []types.Float) {
	n := len(closes)
	raw := make([]types.Float, n)
	hh := rollingMax(highs, fastK)
	ll := rollingMin(lows, fastK)
	for i := 0; i < n; i++ {
		if !hh[i].Valid || !ll[i].Valid {
			continue
		}
		if rng := hh[i].Float64 - ll[i].Float64; rng != 0 {
			raw[i] = types.F(100 * (closes[i] - ll[i].Float64) / rng)
		}
	}
	k = SMAFloat(raw, slowK)
	d = SMAFloat(k, slowD)
	return k, d
}

// WilliamsR computes Williams %R over the given window, bounded [-100, 0].
func WilliamsR(highs, lows, closes []float64, period int) []types.Float {
	n := len(closes)
	out := make([]types.Float, n)
	hh := rollingMax(highs, period)
	ll := rollingMin(lows, period)
	for i := 0; i < n; i++ {
		if !hh[i].Valid || !ll[i].Valid {
			continue
		}
		if rng := hh[i].Float64 - ll[i].Float64; rng != 0 {
			out[i] = types.F(-100 * (hh[i].Float64 - closes[i]) / rng)
		}
	}
	return out
}

// CCI computes the commodity channel index over typical prices with the
// conventional 0.015 scaling constant.
func CCI(highs, lows, closes []float64, period int) []types.Float {
	n := len(closes)
	out := make([]types.Float, n)
	if period <= 0 || n < period {
		return out
	}
	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3
	}
	sma := SMA(tp, period)
	for i := period - 1; i < n; i++ {
		if !sma[i].Valid {
			continue
		}
		meanDev := 0.0
		for j := i - period + 1; j <= i; j++ {
			meanDev += math.Abs(tp[j] - sma[i].Float64)
		}
		meanDev /= float64(period)
		if meanDev != 0 {
			out[i] = types.F((tp[i] - sma[i].Float64) / (0.015 * meanDev))
		}
	}
	return out
}
