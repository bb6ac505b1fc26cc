package indicator

import "github.com/evdnx/gomentum/types"

// MACD computes the MACD line (EMA fast - EMA slow), its signal line
// (EMA of the MACD line) and the histogram (line - signal). Each output
// is defined only where every input it depends on is defined.
func MACD(closes []float64, fast, slow, signal int) (line, signalLine, hist []types.Float) {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	n := len(closes)
	line = make([]types.Float, n)
	for i := 0; i < n; i++ {
		if emaFast[i].Valid && emaSlow[i].Valid {
			line[i] = types.F(emaFast[i].Float64 - emaSlow[i].Float64)
		}
	}

	signalLine = EMAFloat(line, signal)

	hist = make([]types.Float, n)
	for i := 0; i < n; i++ {
		if line[i].Valid && signalLine[i].Valid {
			hist[i] = types.F(line[i].Float64 - signalLine[i].Float64)
		}
	}
	return line, signalLine, hist
}

// CrossUp flags positions where column a crosses above column b: a > b at
// the position while a <= b at the predecessor. Position 0 has no
// predecessor and is never a crossover; positions with undefined inputs
// are false.
func CrossUp(a, b []types.Float) []bool {
	out := make([]bool, len(a))
	for i := 1; i < len(a) && i < len(b); i++ {
		if a[i].Valid && b[i].Valid && a[i-1].Valid && b[i-1].Valid {
			out[i] = a[i].Float64 > b[i].Float64 && a[i-1].Float64 <= b[i-1].Float64
		}
	}
	return out
}

// CrossDown is the mirror of CrossUp (strictly below now, at or above before).
func CrossDown(a, b []types.Float) []bool {
	out := make([]bool, len(a))
	for i := 1; i < len(a) && i < len(b); i++ {
		if a[i].Valid && b[i].Valid && a[i-1].Valid && b[i-1].Valid {
			out[i] = a[i].Float64 < b[i].Float64 && a[i-1].Float64 >= b[i-1].Float64
		}
	}
	return out
}
