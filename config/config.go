package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ROIStep is one rung of the minimal-ROI ladder: once a trade is older
// than After, Target is the profit ratio the host should be content with.
type ROIStep struct {
	After  time.Duration `mapstructure:"after"`
	Target float64       `mapstructure:"target"`
}

// StrategyConfig holds every tunable parameter of the momentum strategy.
// Values are read-only during an evaluation session; the host's optimizer
// may rebuild the config between runs. Each field has a declared valid
// range enforced by Validate — out-of-range values are a configuration
// error, never silently clamped.
type StrategyConfig struct {
	// MACD periods
	MACDFast   int `mapstructure:"macd_fast"`   // 8..16, default 12
	MACDSlow   int `mapstructure:"macd_slow"`   // 20..30, default 26
	MACDSignal int `mapstructure:"macd_signal"` // 7..12, default 9

	// Volume confirmation
	VolumeFactor float64 `mapstructure:"volume_factor"` // 1.0..3.0, default 1.5

	// RSI
	RSIPeriod     int     `mapstructure:"rsi_period"`     // 10..20, default 14
	RSIOversold   float64 `mapstructure:"rsi_oversold"`   // 20..40, default 30
	RSIOverbought float64 `mapstructure:"rsi_overbought"` // 60..80, default 70

	// Exit tuning
	ExitMACDThreshold float64 `mapstructure:"exit_macd_threshold"` // -0.001..0.001, default 0

	// Leverage
	BaseLeverage        float64 `mapstructure:"base_leverage"`        // 5..20, default 10
	MaxLeverage         float64 `mapstructure:"max_leverage"`         // 10..50, default 20
	VolatilityThreshold float64 `mapstructure:"volatility_threshold"` // 0.02..0.10, default 0.05

	// Stop-loss / trailing settings the host consumes
	DefaultStopRatio       float64 `mapstructure:"default_stop_ratio"` // -1..0, default -0.10
	TrailingStop           bool    `mapstructure:"trailing_stop"`
	TrailingStopPositive   float64 `mapstructure:"trailing_stop_positive"`
	TrailingStopOffset     float64 `mapstructure:"trailing_stop_offset"`
	TrailingOnlyWhenOffset bool    `mapstructure:"trailing_only_when_offset"`

	// Minimal-ROI ladder, most-patient rung first after sorting.
	ROITable []ROIStep `mapstructure:"roi_table"`

	// Strategy metadata the host queries.
	Timeframe      string `mapstructure:"timeframe"`
	CanShort       bool   `mapstructure:"can_short"`
	StartupCandles int    `mapstructure:"startup_candles"`

	// Order placement hints for the host. Stops go out as market orders so
	// they cannot rest unfilled in a fast move.
	EntryOrderType    string `mapstructure:"entry_order_type"`    // "limit" or "market"
	ExitOrderType     string `mapstructure:"exit_order_type"`     // "limit" or "market"
	StoplossOrderType string `mapstructure:"stoploss_order_type"` // "limit" or "market"
	TimeInForce       string `mapstructure:"time_in_force"`       // e.g. "GTC"
}

// Default returns the optimizer defaults of the strategy.
func Default() StrategyConfig {
	return StrategyConfig{
		MACDFast:               12,
		MACDSlow:               26,
		MACDSignal:             9,
		VolumeFactor:           1.5,
		RSIPeriod:              14,
		RSIOversold:            30,
		RSIOverbought:          70,
		ExitMACDThreshold:      0,
		BaseLeverage:           10,
		MaxLeverage:            20,
		VolatilityThreshold:    0.05,
		DefaultStopRatio:       -0.10,
		TrailingStop:           true,
		TrailingStopPositive:   0.01,
		TrailingStopOffset:     0.02,
		TrailingOnlyWhenOffset: true,
		ROITable: []ROIStep{
			{After: 0, Target: 0.04},
			{After: 30 * time.Minute, Target: 0.02},
			{After: 60 * time.Minute, Target: 0.01},
		},
		Timeframe:      "15m",
		CanShort:       true,
		StartupCandles: 50,

		EntryOrderType:    "limit",
		ExitOrderType:     "limit",
		StoplossOrderType: "market",
		TimeInForce:       "GTC",
	}
}

// Validate checks every parameter against its declared range and returns
// the first violation, so a broken config surfaces before any evaluation.
func (c *StrategyConfig) Validate() error {
	if c.MACDFast < 8 || c.MACDFast > 16 {
		return fmt.Errorf("macd_fast (%d) must be within [8, 16]", c.MACDFast)
	}
	if c.MACDSlow < 20 || c.MACDSlow > 30 {
		return fmt.Errorf("macd_slow (%d) must be within [20, 30]", c.MACDSlow)
	}
	if c.MACDFast >= c.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be below macd_slow (%d)", c.MACDFast, c.MACDSlow)
	}
	if c.MACDSignal < 7 || c.MACDSignal > 12 {
		return fmt.Errorf("macd_signal (%d) must be within [7, 12]", c.MACDSignal)
	}
	if c.VolumeFactor < 1.0 || c.VolumeFactor > 3.0 {
		return fmt.Errorf("volume_factor (%f) must be within [1.0, 3.0]", c.VolumeFactor)
	}
	if c.RSIPeriod < 10 || c.RSIPeriod > 20 {
		return fmt.Errorf("rsi_period (%d) must be within [10, 20]", c.RSIPeriod)
	}
	if c.RSIOversold < 20 || c.RSIOversold > 40 {
		return fmt.Errorf("rsi_oversold (%f) must be within [20, 40]", c.RSIOversold)
	}
	if c.RSIOverbought < 60 || c.RSIOverbought > 80 {
		return fmt.Errorf("rsi_overbought (%f) must be within [60, 80]", c.RSIOverbought)
	}
	if c.ExitMACDThreshold < -0.001 || c.ExitMACDThreshold > 0.001 {
		return fmt.Errorf("exit_macd_threshold (%f) must be within [-0.001, 0.001]", c.ExitMACDThreshold)
	}
	if c.BaseLeverage < 5 || c.BaseLeverage > 20 {
		return fmt.Errorf("base_leverage (%f) must be within [5, 20]", c.BaseLeverage)
	}
	if c.MaxLeverage < 10 || c.MaxLeverage > 50 {
		return fmt.Errorf("max_leverage (%f) must be within [10, 50]", c.MaxLeverage)
	}
	if c.VolatilityThreshold < 0.02 || c.VolatilityThreshold > 0.10 {
		return fmt.Errorf("volatility_threshold (%f) must be within [0.02, 0.10]", c.VolatilityThreshold)
	}
	if c.DefaultStopRatio >= 0 || c.DefaultStopRatio < -1 {
		return fmt.Errorf("default_stop_ratio (%f) must be negative and above -1", c.DefaultStopRatio)
	}
	if c.StartupCandles <= 0 {
		return fmt.Errorf("startup_candles (%d) must be positive", c.StartupCandles)
	}
	orderTypes := []struct{ field, val string }{
		{"entry_order_type", c.EntryOrderType},
		{"exit_order_type", c.ExitOrderType},
		{"stoploss_order_type", c.StoplossOrderType},
	}
	for _, ot := range orderTypes {
		if ot.val != "limit" && ot.val != "market" {
			return fmt.Errorf("%s (%q) must be \"limit\" or \"market\"", ot.field, ot.val)
		}
	}
	for i, step := range c.ROITable {
		if step.After < 0 {
			return fmt.Errorf("roi_table[%d]: negative age", i)
		}
		if step.Target < 0 {
			return fmt.Errorf("roi_table[%d]: negative target", i)
		}
	}
	return nil
}

// MinimalROI returns the active profit target for a trade of the given
// age: the rung with the largest After not exceeding the age. A config
// without a ladder returns 0 (no ROI exit).
func (c *StrategyConfig) MinimalROI(age time.Duration) float64 {
	steps := append([]ROIStep(nil), c.ROITable...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].After < steps[j].After })
	target := 0.0
	for _, s := range steps {
		if age >= s.After {
			target = s.Target
		}
	}
	return target
}

// Load reads a config file ("config.yml" in the supplied directory) with
// environment-variable overrides, layered on top of Default(). The result
// is validated before it is returned.
func Load(path string) (StrategyConfig, error) {
	cfg := Default()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
