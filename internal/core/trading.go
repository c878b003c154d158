package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest describes a new order. A zero Price means "no explicit
// price" (required for LIMIT, optional for MARKET). An empty TIF defaults to
// the adapter's notion of good-till-cancel.
type PlaceOrderRequest struct {
	Symbol        Symbol
	Side          Side
	Type          OrderType
	Qty           decimal.Decimal
	Price         decimal.Decimal
	TIF           TimeInForce
	ClientOrderID ClientOrderID
	ReduceOnly    bool
	PostOnly      bool
	Tag           string
}

// OrderRef names one order within an adapter instance. ExchangeOrderID never
// changes for the life of the order.
type OrderRef struct {
	ExchangeOrderID ExchangeOrderID
	ClientOrderID   ClientOrderID
	Symbol          Symbol
}

// OrderSnapshot is a point-in-time view of an order, produced fresh on every
// placement/query/cancel. It is not a fill log; each fetch may overwrite the
// previous view.
type OrderSnapshot struct {
	Ref         OrderRef
	Status      OrderStatus
	ExecutedQty decimal.Decimal
	AvgPrice    decimal.Decimal
	UpdatedAt   time.Time
}

// OrderExecution is one fill event. Informational only; snapshot state does
// not depend on it.
type OrderExecution struct {
	Symbol     Symbol
	Side       Side
	Price      decimal.Decimal
	Qty        decimal.Decimal
	ExecutedAt time.Time
}

// CancelOrderRequest cancels by exchange id or client id; at least one must
// be set.
type CancelOrderRequest struct {
	Symbol          Symbol
	ExchangeOrderID ExchangeOrderID
	ClientOrderID   ClientOrderID
}

// GetOrderRequest fetches one order's current snapshot by either id.
type GetOrderRequest struct {
	Symbol          Symbol
	ExchangeOrderID ExchangeOrderID
	ClientOrderID   ClientOrderID
}
