// Package service exposes the exchange capability surface to callers. It is
// a pure pass-through: no business logic, no reshaping of Results.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/exchange"
)

type Service struct {
	ex exchange.Exchange
}

func New(ex exchange.Exchange) (*Service, error) {
	if ex == nil {
		return nil, errors.New("service: exchange is required")
	}
	return &Service{ex: ex}, nil
}

func (s *Service) Name() string { return s.ex.Name() }

func (s *Service) GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker] {
	return s.ex.GetTicker(ctx, symbol)
}

func (s *Service) GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook] {
	return s.ex.GetOrderBook(ctx, symbol, depth)
}

func (s *Service) GetOhlcv(ctx context.Context, symbol core.Symbol, interval core.Interval, limit int, since time.Time) core.Result[[]core.Ohlcv] {
	return s.ex.GetOhlcv(ctx, symbol, interval, limit, since)
}

func (s *Service) PlaceOrder(ctx context.Context, req core.PlaceOrderRequest) core.Result[core.OrderSnapshot] {
	return s.ex.PlaceOrder(ctx, req)
}

func (s *Service) CancelOrder(ctx context.Context, req core.CancelOrderRequest) core.Result[core.OrderSnapshot] {
	return s.ex.CancelOrder(ctx, req)
}

func (s *Service) GetOrder(ctx context.Context, req core.GetOrderRequest) core.Result[core.OrderSnapshot] {
	return s.ex.GetOrder(ctx, req)
}

func (s *Service) ListOpenOrders(ctx context.Context, symbol core.Symbol, cursor string, limit int) core.Result[core.Page[core.OrderSnapshot]] {
	return s.ex.ListOpenOrders(ctx, symbol, cursor, limit)
}

func (s *Service) GetBalances(ctx context.Context) core.Result[[]core.Balance] {
	return s.ex.GetBalances(ctx)
}

func (s *Service) GetAccountInfo(ctx context.Context) core.Result[core.AccountInfo] {
	return s.ex.GetAccountInfo(ctx)
}

func (s *Service) GetPrecision(ctx context.Context, symbol core.Symbol) core.Result[core.Precision] {
	return s.ex.GetPrecision(ctx, symbol)
}
