package model

import "time"

// UpdateStatus is the outcome of refreshing one symbol.
type UpdateStatus string

const (
	StatusUpdated     UpdateStatus = "UPDATED"
	StatusUnavailable UpdateStatus = "UNAVAILABLE"
	StatusFailed      UpdateStatus = "FAILED"
)

// NotAvailable is the display text of a symbol without price data.
const NotAvailable = "N/A"

// UpdateEvent is emitted once per symbol per refresh cycle.
type UpdateEvent struct {
	Symbol      string
	Status      UpdateStatus
	LatestClose float64 // zero unless Status is StatusUpdated
	Currency    string
	DisplayText string // two-decimal close or NotAvailable
	Err         error
	At          time.Time
}

// OK reports whether the event carries a price.
func (e UpdateEvent) OK() bool {
	return e.Status == StatusUpdated
}
