package indicator

import (
	"math"
	"testing"

	"github.com/evdnx/gomentum/types"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// ---------------------------------------------------------------------
// Moving averages
// ---------------------------------------------------------------------

func TestSMAWarmupAndValues(t *testing.T) {
	out := SMA([]float64{1, 2, 3, 4, 5}, 3)
	if len(out) != 5 {
		t.Fatalf("length not preserved: got %d", len(out))
	}
	for i := 0; i < 2; i++ {
		if out[i].Valid {
			t.Fatalf("position %d should be undefined during warm-up", i)
		}
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		got := out[i+2]
		if !got.Valid || !almostEqual(got.Float64, w) {
			t.Fatalf("sma[%d]: got %+v, want %f", i+2, got, w)
		}
	}
}

func TestEMASeedsWithSMA(t *testing.T) {
	out := EMA([]float64{1, 2, 3, 4, 5}, 3)
	if out[0].Valid || out[1].Valid {
		t.Fatal("ema defined before one full window")
	}
	// seed = sma(1,2,3) = 2; alpha = 0.5; then 3, 4
	want := []float64{2, 3, 4}
	for i, w := range want {
		got := out[i+2]
		if !got.Valid || !almostEqual(got.Float64, w) {
			t.Fatalf("ema[%d]: got %+v, want %f", i+2, got, w)
		}
	}
}

func TestEMAFloatStartsAfterUndefinedPrefix(t *testing.T) {
	in := []types.Float{{}, {}, types.F(1), types.F(2), types.F(3), types.F(4)}
	out := EMAFloat(in, 3)
	for i := 0; i < 4; i++ {
		if out[i].Valid {
			t.Fatalf("position %d should still be undefined", i)
		}
	}
	if !out[4].Valid || !almostEqual(out[4].Float64, 2) {
		t.Fatalf("seed: got %+v, want 2", out[4])
	}
	if !out[5].Valid || !almostEqual(out[5].Float64, 3) {
		t.Fatalf("first smoothed value: got %+v, want 3", out[5])
	}
}

func TestPctChange(t *testing.T) {
	out := PctChange([]float64{100, 101, 102, 103, 104, 110}, 5)
	for i := 0; i < 5; i++ {
		if out[i].Valid {
			t.Fatalf("position %d should be undefined", i)
		}
	}
	if !out[5].Valid || !almostEqual(out[5].Float64, 0.10) {
		t.Fatalf("pct change: got %+v, want 0.10", out[5])
	}
}

func TestRatioUndefinedBaseline(t *testing.T) {
	base := []types.Float{{}, types.F(2), types.F(0)}
	out := Ratio([]float64{10, 10, 10}, base)
	if out[0].Valid {
		t.Fatal("undefined baseline must propagate")
	}
	if !out[1].Valid || !almostEqual(out[1].Float64, 5) {
		t.Fatalf("ratio: got %+v, want 5", out[1])
	}
	if out[2].Valid {
		t.Fatal("zero baseline must stay undefined, not Inf")
	}
}

// ---------------------------------------------------------------------
// MACD and crossovers
// ---------------------------------------------------------------------

func TestMACDWarmupIndexes(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i) + 3*math.Sin(float64(i)/3)
	}
	line, signal, hist := MACD(closes, 12, 26, 9)

	firstDefined := func(col []types.Float) int {
		for i, v := range col {
			if v.Valid {
				return i
			}
		}
		return -1
	}
	if got := firstDefined(line); got != 25 {
		t.Fatalf("macd line first defined at %d, want 25", got)
	}
	if got := firstDefined(signal); got != 33 {
		t.Fatalf("signal line first defined at %d, want 33", got)
	}
	if got := firstDefined(hist); got != 33 {
		t.Fatalf("histogram first defined at %d, want 33", got)
	}
	for i := range hist {
		if hist[i].Valid && !almostEqual(hist[i].Float64, line[i].Float64-signal[i].Float64) {
			t.Fatalf("histogram mismatch at %d", i)
		}
	}
}

func TestCrossUpAndDown(t *testing.T) {
	a := []types.Float{types.F(1), types.F(3), types.F(1.5), types.F(0)}
	b := []types.Float{types.F(2), types.F(2), types.F(2), types.F(2)}

	up := CrossUp(a, b)
	down := CrossDown(a, b)

	if up[0] || down[0] {
		t.Fatal("position 0 can never be a crossover")
	}
	if !up[1] {
		t.Fatal("expected cross-up at position 1")
	}
	if up[2] || !down[2] {
		t.Fatalf("expected cross-down at position 2, got up=%v down=%v", up[2], down[2])
	}
	if down[3] {
		t.Fatal("no fresh cross-down at position 3: already below")
	}
}

func TestCrossRequiresDefinedInputs(t *testing.T) {
	a := []types.Float{{}, types.F(3)}
	b := []types.Float{types.F(2), types.F(2)}
	if CrossUp(a, b)[1] {
		t.Fatal("crossover must be false when the predecessor is undefined")
	}
}

// ---------------------------------------------------------------------
// RSI
// ---------------------------------------------------------------------

func TestRSIBoundsAndExtremes(t *testing.T) {
	up := make([]float64, 30)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	out := RSI(up, 14)
	for i := 0; i < 14; i++ {
		if out[i].Valid {
			t.Fatalf("rsi[%d] should be undefined during warm-up", i)
		}
	}
	for i := 14; i < len(out); i++ {
		if !out[i].Valid || !almostEqual(out[i].Float64, 100) {
			t.Fatalf("rsi of a pure uptrend should be 100, got %+v at %d", out[i], i)
		}
	}

	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 100
	}
	out = RSI(flat, 14)
	if !out[14].Valid || !almostEqual(out[14].Float64, 50) {
		t.Fatalf("rsi of a flat series should be 50, got %+v", out[14])
	}

	mixed := []float64{10, 12, 9, 14, 11, 13, 10, 15, 12, 16, 13, 17, 14, 18, 15, 19, 16, 20}
	for i, v := range RSI(mixed, 14) {
		if v.Valid && (v.Float64 < 0 || v.Float64 > 100) {
			t.Fatalf("rsi[%d]=%f outside [0,100]", i, v.Float64)
		}
	}
}

// ---------------------------------------------------------------------
// Bollinger bands
// ---------------------------------------------------------------------

func TestBollingerZeroWidthBand(t *testing.T) {
	flat := make([]float64, 25)
	for i := range flat {
		flat[i] = 100
	}
	lower, middle, upper, percent, width := Bollinger(flat, 20, 2)
	if !middle[19].Valid || !almostEqual(middle[19].Float64, 100) {
		t.Fatalf("middle band: got %+v", middle[19])
	}
	if !almostEqual(lower[19].Float64, upper[19].Float64) {
		t.Fatal("flat series should collapse the band")
	}
	if percent[19].Valid {
		t.Fatal("%B must be undefined on a zero-width band")
	}
	if !width[19].Valid || !almostEqual(width[19].Float64, 0) {
		t.Fatalf("width: got %+v, want 0", width[19])
	}
}

func TestBollingerOrdering(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/2)
	}
	lower, middle, upper, _, _ := Bollinger(closes, 20, 2)
	for i := 19; i < len(closes); i++ {
		if !(lower[i].Float64 <= middle[i].Float64 && middle[i].Float64 <= upper[i].Float64) {
			t.Fatalf("band ordering violated at %d", i)
		}
	}
}

// ---------------------------------------------------------------------
// Oscillators
// ---------------------------------------------------------------------

func oscFixture(n int) (highs, lows, closes []float64) {
	highs = make([]float64, n)
	lows = make([]float64, n)
	closes = make([]float64, n)
	for i := 0; i < n; i++ {
		c := 100 + 4*math.Sin(float64(i)/2) + float64(i)/10
		closes[i] = c
		highs[i] = c + 1
		lows[i] = c - 1
	}
	return highs, lows, closes
}

func TestADXWarmupAndRange(t *testing.T) {
	highs, lows, closes := oscFixture(60)
	out := ADX(highs, lows, closes, 14)
	for i := 0; i < 27; i++ {
		if out[i].Valid {
			t.Fatalf("adx[%d] should be undefined (lookback 2*period-1)", i)
		}
	}
	if !out[27].Valid {
		t.Fatal("adx[27] should be the first defined value")
	}
	for i := 27; i < len(out); i++ {
		if out[i].Float64 < 0 || out[i].Float64 > 100 {
			t.Fatalf("adx[%d]=%f outside [0,100]", i, out[i].Float64)
		}
	}
}

func TestStochasticWarmupAndBounds(t *testing.T) {
	highs, lows, closes := oscFixture(60)
	k, d := Stochastic(highs, lows, closes, 14, 3, 3)
	for i := 0; i < 15; i++ {
		if k[i].Valid {
			t.Fatalf("%%K[%d] should be undefined", i)
		}
	}
	if !k[15].Valid || !d[17].Valid || d[16].Valid {
		t.Fatal("slow %K defined from 15, %D from 17")
	}
	for i := range k {
		if k[i].Valid && (k[i].Float64 < 0 || k[i].Float64 > 100) {
			t.Fatalf("%%K[%d]=%f outside [0,100]", i, k[i].Float64)
		}
	}
}

func TestWilliamsRAtRangeTop(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = 100 + float64(i)
		highs[i] = closes[i]
		lows[i] = closes[i] - 2
	}
	out := WilliamsR(highs, lows, closes, 14)
	// close sits on the window high: %R = 0, the top of its range
	if !out[15].Valid || !almostEqual(out[15].Float64, 0) {
		t.Fatalf("williams %%R at range top: got %+v, want 0", out[15])
	}
}

func TestCCIFlatSeriesUndefined(t *testing.T) {
	n := 25
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i], lows[i], closes[i] = 100, 100, 100
	}
	out := CCI(highs, lows, closes, 20)
	for i := range out {
		if out[i].Valid {
			t.Fatalf("cci[%d] should be undefined with zero mean deviation", i)
		}
	}
}

func TestLengthPreservedOnShortInput(t *testing.T) {
	short := []float64{1, 2, 3}
	if got := len(SMA(short, 20)); got != 3 {
		t.Fatalf("sma length %d, want 3", got)
	}
	if got := len(RSI(short, 14)); got != 3 {
		t.Fatalf("rsi length %d, want 3", got)
	}
	if got := len(ADX(short, short, short, 14)); got != 3 {
		t.Fatalf("adx length %d, want 3", got)
	}
}
