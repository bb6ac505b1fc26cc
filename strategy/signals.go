package strategy

import (
	"github.com/evdnx/gomentum/metrics"
	"github.com/evdnx/gomentum/types"
)

// above reports whether v is defined and strictly greater than x.
func above(v types.Float, x float64) bool { return v.Valid && v.Float64 > x }

// below reports whether v is defined and strictly less than x.
func below(v types.Float, x float64) bool { return v.Valid && v.Float64 < x }

// within reports whether v is defined and strictly between lo and hi.
func within(v types.Float, lo, hi float64) bool {
	return v.Valid && v.Float64 > lo && v.Float64 < hi
}

// ComputeSignals derives the four decision columns from an annotated
// frame, using only values at or before each position. Entries are
// AND-combined confluence checks and an undefined value in any required
// column keeps the position false; exits are OR-combined so a single
// disconfirming signal cuts exposure. The long/short threshold pairings
// (80/20, -20/-80, 100/-100, 0.8/0.2, 0.9/0.1) are deliberate and must
// not be "symmetrized".
func (m *Momentum) ComputeSignals(f *IndicatorFrame) *SignalFrame {
	n := f.Len()
	s := &SignalFrame{
		IndicatorFrame: *f,
		EnterLong:      make([]bool, n),
		EnterShort:     make([]bool, n),
		ExitLong:       make([]bool, n),
		ExitShort:      make([]bool, n),
	}
	cfg := m.Cfg

	for i := 0; i < n; i++ {
		close := f.Candles[i].Close

		s.EnterLong[i] = f.MACDCrossUp[i] &&
			above(f.VolumeRatio[i], cfg.VolumeFactor) &&
			above(f.PriceMomentum[i], 0.01) &&
			within(f.RSI[i], cfg.RSIOversold, cfg.RSIOverbought) &&
			f.EMA20[i].Valid && close > f.EMA20[i].Float64 &&
			above(f.ADX[i], 25) &&
			below(f.StochK[i], 80) && below(f.StochD[i], 80) &&
			above(f.WilliamsR[i], -20) &&
			below(f.CCI[i], 100) &&
			below(f.BBPercent[i], 0.8)

		s.EnterShort[i] = f.MACDCrossDown[i] &&
			above(f.VolumeRatio[i], cfg.VolumeFactor) &&
			below(f.PriceMomentum[i], -0.01) &&
			within(f.RSI[i], cfg.RSIOversold, cfg.RSIOverbought) &&
			f.EMA20[i].Valid && close < f.EMA20[i].Float64 &&
			above(f.ADX[i], 25) &&
			above(f.StochK[i], 20) && above(f.StochD[i], 20) &&
			below(f.WilliamsR[i], -80) &&
			above(f.CCI[i], -100) &&
			above(f.BBPercent[i], 0.2)

		s.ExitLong[i] = f.MACDCrossDown[i] ||
			above(f.RSI[i], cfg.RSIOverbought) ||
			above(f.BBPercent[i], 0.9) ||
			above(f.StochK[i], 80) || above(f.StochD[i], 80) ||
			below(f.WilliamsR[i], -20) ||
			above(f.CCI[i], 100) ||
			below(f.PriceMomentum[i], -0.02)

		s.ExitShort[i] = f.MACDCrossUp[i] ||
			below(f.RSI[i], cfg.RSIOversold) ||
			below(f.BBPercent[i], 0.1) ||
			below(f.StochK[i], 20) || below(f.StochD[i], 20) ||
			above(f.WilliamsR[i], -80) ||
			below(f.CCI[i], -100) ||
			above(f.PriceMomentum[i], 0.02)

		if s.EnterLong[i] {
			metrics.EntrySignals.WithLabelValues("long").Inc()
		}
		if s.EnterShort[i] {
			metrics.EntrySignals.WithLabelValues("short").Inc()
		}
		if s.ExitLong[i] {
			metrics.ExitSignals.WithLabelValues("long").Inc()
		}
		if s.ExitShort[i] {
			metrics.ExitSignals.WithLabelValues("short").Inc()
		}
	}

	metrics.Evaluations.WithLabelValues("signals").Inc()
	return s
}
