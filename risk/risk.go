package risk

import (
	"math"
	"time"
)

// graceWindow is how long after trade open the default stop stays in
// force regardless of profit, so the stop does not react to open-candle
// noise.
const graceWindow = 600 * time.Second

// Leverage derives the effective leverage for a new trade from recent
// volatility. With fewer than 20 candles of history it returns the
// conservative min(proposed, base). Otherwise it takes the worse of two
// volatility estimates — the sample standard deviation of bar-over-bar
// returns, and the latest 14-bar high-low range relative to the last
// close — and tiers the base leverage down as volatility rises. The
// result is clamped to [1, min(maxLeverage, hostMax)].
func Leverage(closes, highs, lows []float64, base, maxLeverage, volThreshold, proposed, hostMax float64) float64 {
	if len(closes) < 20 {
		return math.Min(proposed, base)
	}

	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			rets = append(rets, closes[i]/closes[i-1]-1)
		}
	}
	retVol := stdDev(rets)

	rangeVol := 0.02
	if len(highs) >= 14 && len(lows) >= 14 {
		hh := highs[len(highs)-14]
		for _, h := range highs[len(highs)-14:] {
			if h > hh {
				hh = h
			}
		}
		ll := lows[len(lows)-14]
		for _, l := range lows[len(lows)-14:] {
			if l < ll {
				ll = l
			}
		}
		if last := closes[len(closes)-1]; last != 0 {
			rangeVol = (hh - ll) / last
		}
	}

	combined := math.Max(retVol, rangeVol)

	multiplier := 1.0
	switch {
	case combined > volThreshold:
		multiplier = 0.5
	case combined > volThreshold*0.7:
		multiplier = 0.75
	}

	lev := math.Min(base*multiplier, math.Min(maxLeverage, hostMax))
	return math.Max(1, lev)
}

// stdDev is the sample standard deviation (n-1 denominator).
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}

// StopDistance returns the stop ratio relative to the current price,
// recomputed statelessly on every call. Longs get a negative ratio (stop
// below price), shorts a positive one; when profit is too small for the
// trailing tiers the default stop is returned with its own sign
// untouched. The host is responsible for only ever tightening the
// effective stop.
func StopDistance(sinceOpen time.Duration, isShort bool, currentProfit, defaultStop float64) float64 {
	if sinceOpen < graceWindow {
		return defaultStop
	}

	var magnitude float64
	switch {
	case currentProfit > 0.02:
		magnitude = 0.02
	case currentProfit > 0.01:
		magnitude = 0.015
	default:
		return defaultStop
	}

	if isShort {
		return magnitude
	}
	return -magnitude
}
