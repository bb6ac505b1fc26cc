package strategy

import "github.com/evdnx/gomentum/types"

// IndicatorFrame is a CandleSeries annotated with the derived columns the
// signal rules consume. Every column is positionally aligned with the
// candle index; warm-up positions carry the undefined marker. A frame is
// built fresh per evaluation and never mutated by downstream consumers.
type IndicatorFrame struct {
	Candles types.CandleSeries

	MACD       []types.Float
	MACDSignal []types.Float
	MACDHist   []types.Float

	RSI []types.Float

	BBLower   []types.Float
	BBMiddle  []types.Float
	BBUpper   []types.Float
	BBPercent []types.Float
	BBWidth   []types.Float

	VolumeMean  []types.Float
	VolumeRatio []types.Float

	PriceChange   []types.Float
	PriceMomentum []types.Float

	EMA20 []types.Float
	EMA50 []types.Float

	ADX       []types.Float
	StochK    []types.Float
	StochD    []types.Float
	WilliamsR []types.Float
	CCI       []types.Float

	MACDCrossUp   []bool
	MACDCrossDown []bool
}

// Len reports the number of candle positions in the frame.
func (f *IndicatorFrame) Len() int { return len(f.Candles) }

// SignalFrame layers the four per-position decision columns onto an
// IndicatorFrame.
type SignalFrame struct {
	IndicatorFrame

	EnterLong  []bool
	EnterShort []bool
	ExitLong   []bool
	ExitShort  []bool
}
