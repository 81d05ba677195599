package timeutil

import "time"

var _ Ticker = (*FakeTicker)(nil)

// FakeTicker only ticks when Tick is called.
type FakeTicker struct {
	ch chan time.Time
}

func NewFakeTicker() *FakeTicker {
	return &FakeTicker{make(chan time.Time)}
}

func (t *FakeTicker) Chan() <-chan time.Time {
	return t.ch
}

func (t *FakeTicker) Stop() {}

// Tick delivers one tick and blocks until the loop receives it.
func (t *FakeTicker) Tick() {
	t.ch <- time.Now()
}

// WrapFakeTicker returns a NewTickerFunc that always hands out ticker,
// ignoring the requested interval.
func WrapFakeTicker(ticker *FakeTicker) NewTickerFunc {
	return func(d time.Duration) Ticker {
		return ticker
	}
}
