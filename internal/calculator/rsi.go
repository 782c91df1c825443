package calculator

import (
	"errors"
	"fmt"
)

// RSI computes Wilder's relative strength index of closes over period.
// It needs at least period+1 closes; a flat window yields 50.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return 0, fmt.Errorf("rsi(%d) needs %d closes, have %d", period, period+1, len(closes))
	}

	var up, down float64
	for i := 1; i <= period; i++ {
		gain, loss := split(closes[i] - closes[i-1])
		up += gain
		down += loss
	}
	up /= float64(period)
	down /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		gain, loss := split(closes[i] - closes[i-1])
		up = (up*float64(period-1) + gain) / float64(period)
		down = (down*float64(period-1) + loss) / float64(period)
	}

	switch {
	case up == 0 && down == 0:
		return 50, nil
	case down == 0:
		return 100, nil
	}
	return 100 - 100/(1+up/down), nil
}

func split(change float64) (gain, loss float64) {
	if change > 0 {
		return change, 0
	}
	return 0, -change
}
