package calculator

import (
	"errors"
	"math"

	"SymbolWatch/internal/model"
)

// ErrNoSamples is returned by statistics over an empty series.
var ErrNoSamples = errors.New("no samples provided")

// SessionRange scans all samples and returns the high and low.
func SessionRange(samples []model.OHLCV) (high, low float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrNoSamples
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, s := range samples {
		if s.High > high {
			high = s.High
		}
		if s.Low < low {
			low = s.Low
		}
	}
	return high, low, nil
}

// ChangePercent returns the move from the first open to the last close, in percent.
func ChangePercent(samples []model.OHLCV) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	open := samples[0].Open
	if open == 0 {
		return 0, errors.New("opening price is zero")
	}
	last := samples[len(samples)-1].Close
	return (last - open) / open * 100, nil
}
