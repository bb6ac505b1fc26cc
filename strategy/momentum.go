package strategy

import (
	"time"

	"github.com/evdnx/gomentum/config"
	"github.com/evdnx/gomentum/indicator"
	"github.com/evdnx/gomentum/logger"
	"github.com/evdnx/gomentum/metrics"
	"github.com/evdnx/gomentum/risk"
	"github.com/evdnx/gomentum/types"
)

// Momentum is a MACD-with-volume-confirmation strategy core. It is a set
// of pure functions over candle snapshots: the host owns order routing,
// trade state and data retrieval, and calls in here once per candle
// batch. Instances hold only the validated config and a logger, so
// evaluations for different pairs may run concurrently.
type Momentum struct {
	Cfg config.StrategyConfig
	Log logger.Logger
}

// New validates the config and builds a strategy instance. A nil logger
// falls back to a no-op.
func New(cfg config.StrategyConfig, log logger.Logger) (*Momentum, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Momentum{Cfg: cfg, Log: log}, nil
}

// ComputeIndicators annotates a candle series with every derived column.
// The frame always has the same length as the input; a series shorter
// than the longest lookback simply carries undefined markers — warm-up is
// a supported state, not an error. Only a malformed series is rejected.
func (m *Momentum) ComputeIndicators(series types.CandleSeries) (*IndicatorFrame, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	volumes := series.Volumes()

	f := &IndicatorFrame{Candles: series}
	f.MACD, f.MACDSignal, f.MACDHist = indicator.MACD(closes, m.Cfg.MACDFast, m.Cfg.MACDSlow, m.Cfg.MACDSignal)
	f.MACDCrossUp = indicator.CrossUp(f.MACD, f.MACDSignal)
	f.MACDCrossDown = indicator.CrossDown(f.MACD, f.MACDSignal)
	f.RSI = indicator.RSI(closes, m.Cfg.RSIPeriod)
	f.BBLower, f.BBMiddle, f.BBUpper, f.BBPercent, f.BBWidth = indicator.Bollinger(closes, 20, 2)
	f.VolumeMean = indicator.SMA(volumes, 20)
	f.VolumeRatio = indicator.Ratio(volumes, f.VolumeMean)
	f.PriceChange = indicator.PctChange(closes, 5)
	f.PriceMomentum = indicator.PctChange(closes, 5)
	f.EMA20 = indicator.EMA(closes, 20)
	f.EMA50 = indicator.EMA(closes, 50)
	f.ADX = indicator.ADX(highs, lows, closes, 14)
	f.StochK, f.StochD = indicator.Stochastic(highs, lows, closes, 14, 3, 3)
	f.WilliamsR = indicator.WilliamsR(highs, lows, closes, 14)
	f.CCI = indicator.CCI(highs, lows, closes, 20)

	if len(series) < m.Cfg.StartupCandles {
		m.Log.Info("indicator_warmup",
			logger.Int("candles", len(series)),
			logger.Int("startup_candles", m.Cfg.StartupCandles),
		)
	}
	metrics.Evaluations.WithLabelValues("indicators").Inc()
	return f, nil
}

// Evaluate runs both stages on a raw series: indicators, then signals.
func (m *Momentum) Evaluate(series types.CandleSeries) (*SignalFrame, error) {
	f, err := m.ComputeIndicators(series)
	if err != nil {
		return nil, err
	}
	return m.ComputeSignals(f), nil
}

// Leverage computes the leverage for a new trade from the recent price
// window the host supplies. Deterministic, no state between calls.
func (m *Momentum) Leverage(closes, highs, lows []float64, proposed, hostMax float64) float64 {
	lev := risk.Leverage(closes, highs, lows,
		m.Cfg.BaseLeverage, m.Cfg.MaxLeverage, m.Cfg.VolatilityThreshold,
		proposed, hostMax)
	if lev < m.Cfg.BaseLeverage {
		metrics.LeverageReductions.Inc()
		m.Log.Info("leverage_reduced",
			logger.Float64("leverage", lev),
			logger.Float64("base_leverage", m.Cfg.BaseLeverage),
		)
	}
	return lev
}

// StopDistance returns the current stop ratio for an open trade, signed
// relative to the current price (negative for longs, positive for shorts).
func (m *Momentum) StopDistance(sinceOpen time.Duration, isShort bool, currentProfit float64) float64 {
	return risk.StopDistance(sinceOpen, isShort, currentProfit, m.Cfg.DefaultStopRatio)
}

// StopDistanceFor is StopDistance fed from a host-owned TradeContext at
// the given clock time.
func (m *Momentum) StopDistanceFor(trade types.TradeContext, now time.Time) float64 {
	return m.StopDistance(now.Sub(trade.OpenTime), trade.IsShort, trade.CurrentProfit)
}

// MinimalROI returns the profit target the host should apply for a trade
// of the given age.
func (m *Momentum) MinimalROI(age time.Duration) float64 {
	return m.Cfg.MinimalROI(age)
}
