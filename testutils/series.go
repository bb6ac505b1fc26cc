package testutils

import (
	"time"

	"github.com/evdnx/gomentum/types"
)

// Synthetic 15m candle series used across the package tests. The shapes
// are fully deterministic so indicator and signal expectations stay
// bit-identical between runs.

const (
	baseVolume  = 1000.0
	spikeVolume = 2200.0
	wickRatio   = 0.0025
)

// cycle shape shared by the trending builders: a shallow 4-candle
// pullback, a 10-candle drifting floor, then a 6-candle advance on
// elevated volume. The floor lets the 14-bar oscillators unwind while the
// advance stays close enough to the 20-bar mean to satisfy the entry
// confluence checks.
var (
	trendRises = []float64{0.0100, 0.0095, 0.0070, 0.0075, 0.0065, 0.0090}

	trendDeclineLen  = 4
	trendDeclineStep = -0.008
	trendFloorLen    = 10
	trendFloorStep   = -0.0001
)

func buildSeries(n int, start float64, direction float64) types.CandleSeries {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cycle := trendDeclineLen + trendFloorLen + len(trendRises)

	closes := make([]float64, n)
	volumes := make([]float64, n)
	closes[0] = start
	volumes[0] = baseVolume
	for i := 1; i < n; i++ {
		var step, vol float64
		switch phase := i % cycle; {
		case phase < trendDeclineLen:
			step, vol = trendDeclineStep, baseVolume
		case phase < trendDeclineLen+trendFloorLen:
			step, vol = trendFloorStep, baseVolume
		default:
			step, vol = trendRises[phase-trendDeclineLen-trendFloorLen], spikeVolume
		}
		closes[i] = closes[i-1] * (1 + direction*step)
		volumes[i] = vol
	}

	series := make(types.CandleSeries, n)
	for i := 0; i < n; i++ {
		open := closes[0]
		if i > 0 {
			open = closes[i-1]
		}
		hi, lo := open, closes[i]
		if closes[i] > open {
			hi, lo = closes[i], open
		}
		series[i] = types.Candle{
			Timestamp: t0.Add(time.Duration(i) * 15 * time.Minute),
			Open:      open,
			High:      hi * (1 + wickRatio),
			Low:       lo * (1 - wickRatio),
			Close:     closes[i],
			Volume:    volumes[i],
		}
	}
	return series
}

// UptrendSeries returns n candles drifting upward (~1.9 % per 20-candle
// cycle) with volume spikes on the advances.
func UptrendSeries(n int, start float64) types.CandleSeries {
	return buildSeries(n, start, 1)
}

// DowntrendSeries mirrors UptrendSeries: advances become declines.
func DowntrendSeries(n int, start float64) types.CandleSeries {
	return buildSeries(n, start, -1)
}

// FlatSeries returns n identical candles. Every rolling window on it has
// zero range, which exercises the zero-width band and zero-deviation
// edge cases.
func FlatSeries(n int, price float64) types.CandleSeries {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(types.CandleSeries, n)
	for i := 0; i < n; i++ {
		series[i] = types.Candle{
			Timestamp: t0.Add(time.Duration(i) * 15 * time.Minute),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    baseVolume,
		}
	}
	return series
}

// SeriesFromCloses wraps a close column into candles with small
// symmetric wicks, evenly spaced timestamps and constant volume.
func SeriesFromCloses(closes []float64) types.CandleSeries {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(types.CandleSeries, len(closes))
	for i, c := range closes {
		open := closes[0]
		if i > 0 {
			open = closes[i-1]
		}
		hi, lo := open, c
		if c > open {
			hi, lo = c, open
		}
		series[i] = types.Candle{
			Timestamp: t0.Add(time.Duration(i) * 15 * time.Minute),
			Open:      open,
			High:      hi * (1 + wickRatio),
			Low:       lo * (1 - wickRatio),
			Close:     c,
			Volume:    baseVolume,
		}
	}
	return series
}
