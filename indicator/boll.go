package indicator

import "github.com/evdnx/gomentum/types"

// Bollinger computes the classic bands (SMA ± dev standard deviations)
// plus the two derived columns the signal rules read: %B, the position of
// the close inside the band (undefined when the band has zero width), and
// the band width relative to the middle band.
func Bollinger(closes []float64, period int, dev float64) (lower, middle, upper, percent, width []types.Float) {
	middle = SMA(closes, period)
	sd := StdDev(closes, period)

	n := len(closes)
	lower = make([]types.Float, n)
	upper = make([]types.Float, n)
	percent = make([]types.Float, n)
	width = make([]types.Float, n)

	for i := 0; i < n; i++ {
		if !middle[i].Valid || !sd[i].Valid {
			continue
		}
		u := middle[i].Float64 + dev*sd[i].Float64
		l := middle[i].Float64 - dev*sd[i].Float64
		upper[i] = types.F(u)
		lower[i] = types.F(l)
		if u != l {
			percent[i] = types.F((closes[i] - l) / (u - l))
		}
		if middle[i].Float64 != 0 {
			width[i] = types.F((u - l) / middle[i].Float64)
		}
	}
	return lower, middle, upper, percent, width
}
