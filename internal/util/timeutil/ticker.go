package timeutil

import "time"

var _ Ticker = (*timeTicker)(nil)

// Ticker wraps `time.Ticker` in an interface so polling loops can be driven
// manually in tests.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// NewTickerFunc is a factory function that creates a new `Ticker`.
type NewTickerFunc func(d time.Duration) Ticker

// NewTicker creates a `Ticker` backed by `time.NewTicker`.
func NewTicker(d time.Duration) Ticker {
	return &timeTicker{time.NewTicker(d)}
}

type timeTicker struct {
	*time.Ticker
}

func (t *timeTicker) Chan() <-chan time.Time {
	return t.C
}
