package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticker is the current best bid/ask for a symbol. Timestamp provenance is
// adapter-specific: upstream event time when the exchange supplies one,
// receipt time otherwise.
type Ticker struct {
	Symbol    Symbol
	Bid       decimal.Decimal
	Ask       decimal.Decimal
	Timestamp time.Time
}

type BookLevel struct {
	Price decimal.Decimal
	Qty   decimal.Decimal
}

// OrderBook is a depth-bounded snapshot. Bids are ordered best (highest)
// first, asks best (lowest) first.
type OrderBook struct {
	Symbol    Symbol
	Bids      []BookLevel
	Asks      []BookLevel
	Timestamp time.Time
}

// Ohlcv is one candle; sequences are time-ordered ascending by OpenTime.
type Ohlcv struct {
	OpenTime time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	Volume   decimal.Decimal
}
