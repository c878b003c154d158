// Package exchange defines the vendor-neutral capability contract adapters
// implement. The surface is uniform: an adapter that does not support an
// operation still implements it and fails with code NotImplemented, so
// callers program against one interface regardless of backend completeness.
package exchange

import (
	"context"
	"time"

	"github.com/tkoba0410/ExchangeApi/internal/core"
)

type MarketDataAPI interface {
	// GetTicker returns the current best bid/ask for symbol.
	GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker]
	// GetOrderBook returns a book snapshot with at most depth levels per side.
	GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook]
	// GetOhlcv returns up to limit candles ascending by open time, optionally
	// starting at since (zero time means no lower bound).
	GetOhlcv(ctx context.Context, symbol core.Symbol, interval core.Interval, limit int, since time.Time) core.Result[[]core.Ohlcv]
}

type TradingAPI interface {
	PlaceOrder(ctx context.Context, req core.PlaceOrderRequest) core.Result[core.OrderSnapshot]
	// CancelOrder cancels by exchange id or client id; at least one is required.
	CancelOrder(ctx context.Context, req core.CancelOrderRequest) core.Result[core.OrderSnapshot]
	GetOrder(ctx context.Context, req core.GetOrderRequest) core.Result[core.OrderSnapshot]
	// ListOpenOrders pages through non-terminal orders. The cursor is
	// adapter-private; an empty NextCursor terminates the listing.
	ListOpenOrders(ctx context.Context, symbol core.Symbol, cursor string, limit int) core.Result[core.Page[core.OrderSnapshot]]
}

type AccountAPI interface {
	GetBalances(ctx context.Context) core.Result[[]core.Balance]
	GetAccountInfo(ctx context.Context) core.Result[core.AccountInfo]
}

type Exchange interface {
	MarketDataAPI
	TradingAPI
	AccountAPI

	Name() string
	GetPrecision(ctx context.Context, symbol core.Symbol) core.Result[core.Precision]
}
