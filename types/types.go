package types

import (
	"fmt"
	"time"
)

// Float is a nullable numeric value. Indicator columns use it so that
// warm-up positions carry an explicit undefined marker instead of a
// misleading zero or a poisoned NaN.
type Float struct {
	Float64 float64
	Valid   bool
}

// F wraps a defined value.
func F(v float64) Float { return Float{Float64: v, Valid: true} }

// Undefined returns the warm-up marker.
func Undefined() Float { return Float{} }

// Candle is one fixed-interval OHLCV bar.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// CandleSeries is an ordered sequence of candles, one per interval,
// timestamps non-decreasing.
type CandleSeries []Candle

// Validate rejects malformed input before any computation: unordered
// timestamps, non-positive prices, an inverted high/low pair or negative
// volume. High/low bracketing of open/close is assumed from the upstream
// feed and not enforced here.
func (s CandleSeries) Validate() error {
	for i, c := range s {
		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
			return fmt.Errorf("candle %d: non-positive price field", i)
		}
		if c.High < c.Low {
			return fmt.Errorf("candle %d: high %f below low %f", i, c.High, c.Low)
		}
		if c.Volume < 0 {
			return fmt.Errorf("candle %d: negative volume", i)
		}
		if i > 0 && c.Timestamp.Before(s[i-1].Timestamp) {
			return fmt.Errorf("candle %d: timestamp %s before predecessor %s",
				i, c.Timestamp.Format(time.RFC3339), s[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

// Closes extracts the close column.
func (s CandleSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high column.
func (s CandleSeries) Highs() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low column.
func (s CandleSeries) Lows() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts the volume column.
func (s CandleSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Volume
	}
	return out
}

// TradeContext is the host-owned state of one open trade. The core only
// ever reads it.
type TradeContext struct {
	OpenTime      time.Time
	IsShort       bool
	CurrentProfit float64 // live profit ratio, e.g. 0.02 = 2 %
}
