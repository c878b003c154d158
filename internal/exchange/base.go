package exchange

import (
	"context"
	"time"

	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/transport"
)

// NotImplemented builds the uniform failure for an unsupported operation.
func NotImplemented[T any](op string) core.Result[T] {
	return core.Fail[T](core.NewError(core.CodeNotImplemented, op+" is not supported by this adapter"))
}

// Base holds the transport handle and covers the full capability surface
// with NotImplemented failures. Concrete adapters embed it and override only
// the operations they support; adapters must not construct their own
// transport.
type Base struct {
	Transport transport.Transport
}

func NewBase(t transport.Transport) Base {
	return Base{Transport: t}
}

func (Base) GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker] {
	return NotImplemented[core.Ticker]("GetTicker")
}

func (Base) GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook] {
	return NotImplemented[core.OrderBook]("GetOrderBook")
}

func (Base) GetOhlcv(ctx context.Context, symbol core.Symbol, interval core.Interval, limit int, since time.Time) core.Result[[]core.Ohlcv] {
	return NotImplemented[[]core.Ohlcv]("GetOhlcv")
}

func (Base) PlaceOrder(ctx context.Context, req core.PlaceOrderRequest) core.Result[core.OrderSnapshot] {
	return NotImplemented[core.OrderSnapshot]("PlaceOrder")
}

func (Base) CancelOrder(ctx context.Context, req core.CancelOrderRequest) core.Result[core.OrderSnapshot] {
	return NotImplemented[core.OrderSnapshot]("CancelOrder")
}

func (Base) GetOrder(ctx context.Context, req core.GetOrderRequest) core.Result[core.OrderSnapshot] {
	return NotImplemented[core.OrderSnapshot]("GetOrder")
}

func (Base) ListOpenOrders(ctx context.Context, symbol core.Symbol, cursor string, limit int) core.Result[core.Page[core.OrderSnapshot]] {
	return NotImplemented[core.Page[core.OrderSnapshot]]("ListOpenOrders")
}

func (Base) GetBalances(ctx context.Context) core.Result[[]core.Balance] {
	return NotImplemented[[]core.Balance]("GetBalances")
}

func (Base) GetAccountInfo(ctx context.Context) core.Result[core.AccountInfo] {
	return NotImplemented[core.AccountInfo]("GetAccountInfo")
}

func (Base) GetPrecision(ctx context.Context, symbol core.Symbol) core.Result[core.Precision] {
	return NotImplemented[core.Precision]("GetPrecision")
}
