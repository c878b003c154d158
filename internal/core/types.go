package core

import "time"

// Symbol is an opaque trading-pair identifier. Equality is exact-string;
// adapters derive wire-normalized forms locally and never mutate the value
// the caller supplied.
type Symbol string

func (s Symbol) String() string { return string(s) }

// ExchangeOrderID is the exchange-assigned identifier, authoritative once an
// order has been accepted. ClientOrderID is the optional caller-assigned
// identifier used for idempotent lookup and cancel.
type (
	ExchangeOrderID string
	ClientOrderID   string
)

func (id ExchangeOrderID) String() string { return string(id) }
func (id ClientOrderID) String() string   { return string(id) }

type Side string

type OrderType string

type TimeInForce string

type OrderStatus string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

const (
	Market OrderType = "MARKET"
	Limit  OrderType = "LIMIT"
)

const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

const (
	OrderNew             OrderStatus = "NEW"
	OrderPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderFilled          OrderStatus = "FILLED"
	OrderCanceled        OrderStatus = "CANCELED"
	OrderRejected        OrderStatus = "REJECTED"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderFilled, OrderCanceled, OrderRejected:
		return true
	}
	return false
}

// Interval is an OHLCV candle interval.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
)

func (i Interval) Duration() time.Duration {
	switch i {
	case Interval3m:
		return 3 * time.Minute
	case Interval5m:
		return 5 * time.Minute
	case Interval15m:
		return 15 * time.Minute
	case Interval30m:
		return 30 * time.Minute
	case Interval1h:
		return time.Hour
	case Interval4h:
		return 4 * time.Hour
	case Interval1d:
		return 24 * time.Hour
	default:
		return time.Minute
	}
}

// Page is an ordered sequence plus an opaque continuation token. An empty
// NextCursor means the listing is exhausted; the token format is
// adapter-private and must not be interpreted by callers.
type Page[T any] struct {
	Items      []T
	NextCursor string
}
