package calculator

import (
	"errors"

	"SymbolWatch/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// Closes extracts the close prices of samples.
func Closes(samples []model.OHLCV) []float64 {
	closes := make([]float64, len(samples))
	for i, b := range samples {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the close of the most recent sample.
func LastClose(samples []model.OHLCV) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	return samples[len(samples)-1].Close, true
}
