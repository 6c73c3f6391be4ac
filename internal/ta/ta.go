package ta

import "math"

// All series functions return a slice aligned with the input: out[i] is the
// indicator value at closes[i], math.NaN() where the value is undefined.

func SMASeries(closes []float64, window int) []float64 {
	out := undefinedSeries(len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMASeries is the recursive span EMA seeded from the first observation,
// alpha = 2/(span+1), with no bias correction. Defined from index 0.
func EMASeries(closes []float64, span int) []float64 {
	out := undefinedSeries(len(closes))
	if span <= 0 || len(closes) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	ema := closes[0]
	out[0] = ema
	for i := 1; i < len(closes); i++ {
		ema = alpha*closes[i] + (1-alpha)*ema
		out[i] = ema
	}
	return out
}

// MACDSeries returns the MACD line, its signal line and the histogram.
// All three are defined for every point of a non-empty series.
func MACDSeries(closes []float64, short, long, signal int) (macd, sig, hist []float64) {
	emaShort := EMASeries(closes, short)
	emaLong := EMASeries(closes, long)
	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = emaShort[i] - emaLong[i]
	}
	sig = EMASeries(macd, signal)
	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = macd[i] - sig[i]
	}
	return macd, sig, hist
}

// RSISeries uses a rolling simple mean of gains and losses (not Wilder
// smoothing). The first period points are undefined, as is any point where
// the average loss is zero.
func RSISeries(closes []float64, period int) []float64 {
	out := undefinedSeries(len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gains[i] = d
		} else {
			losses[i] = -d
		}
	}
	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		if avgLoss == 0 {
			continue // RS undefined, leave NaN
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}

// Last returns the final value of a series, NaN for an empty one.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// Defined reports whether an indicator value is usable.
func Defined(v float64) bool { return !math.IsNaN(v) }

func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
