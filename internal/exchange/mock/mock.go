// Package mock is the in-memory reference adapter. It answers synchronously
// with synthetic data and simulates the order lifecycle without network
// access. Instance state is not synchronized; share across goroutines only
// with external locking.
package mock

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/exchange"
	"github.com/tkoba0410/ExchangeApi/internal/transport"
)

const defaultPageLimit = 50

// Synthetic reference prices. A market order without an explicit price is
// filled at the price for its side, so filled snapshots always carry a
// populated average price.
var (
	refAsk = decimal.NewFromInt(101)
	refBid = decimal.NewFromInt(100)
)

type Exchange struct {
	exchange.Base

	orders   map[string]core.OrderSnapshot
	orderIDs []string
	execs    []core.OrderExecution
}

func New(t transport.Transport) *Exchange {
	return &Exchange{
		Base:   exchange.NewBase(t),
		orders: make(map[string]core.OrderSnapshot),
	}
}

var _ exchange.Exchange = (*Exchange)(nil)

func (e *Exchange) Name() string { return "mock" }

func (e *Exchange) GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker] {
	return core.Ok(core.Ticker{
		Symbol:    symbol,
		Bid:       refBid,
		Ask:       refAsk,
		Timestamp: time.Now().UTC(),
	})
}

func (e *Exchange) GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook] {
	if depth <= 0 {
		depth = 25
	}
	bids := make([]core.BookLevel, 0, depth)
	asks := make([]core.BookLevel, 0, depth)
	for i := 0; i < depth; i++ {
		step := decimal.NewFromInt(int64(i))
		qty := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.01").Mul(step))
		bids = append(bids, core.BookLevel{Price: refBid.Sub(step), Qty: qty})
		asks = append(asks, core.BookLevel{Price: refAsk.Add(step), Qty: qty})
	}
	return core.Ok(core.OrderBook{
		Symbol:    symbol,
		Bids:      bids,
		Asks:      asks,
		Timestamp: time.Now().UTC(),
	})
}

func (e *Exchange) GetOhlcv(ctx context.Context, symbol core.Symbol, interval core.Interval, limit int, since time.Time) core.Result[[]core.Ohlcv] {
	if limit <= 0 {
		limit = 500
	}
	step := interval.Duration()
	start := since
	if start.IsZero() {
		start = time.Now().UTC().Add(-time.Duration(limit) * step)
	}
	rng := rand.New(rand.NewSource(42))
	candles := make([]core.Ohlcv, 0, limit)
	price := decimal.NewFromInt(100)
	openTime := start
	for i := 0; i < limit; i++ {
		open := price
		high := open.Add(decimal.NewFromFloat(rng.Float64()))
		low := open.Sub(decimal.NewFromFloat(rng.Float64()))
		closePx := low.Add(decimal.NewFromFloat(rng.Float64()).Mul(high.Sub(low)))
		volume := decimal.NewFromFloat(rng.Float64() * 5)
		candles = append(candles, core.Ohlcv{
			OpenTime: openTime,
			Open:     open,
			High:     high,
			Low:      low,
			Close:    closePx,
			Volume:   volume,
		})
		price = closePx
		openTime = openTime.Add(step)
	}
	return core.Ok(candles)
}

func (e *Exchange) PlaceOrder(ctx context.Context, req core.PlaceOrderRequest) core.Result[core.OrderSnapshot] {
	if req.Qty.Cmp(decimal.Zero) <= 0 {
		return core.Fail[core.OrderSnapshot](core.NewError(core.CodeBadRequest, "quantity must be positive"))
	}
	if req.Type == core.Limit && req.Price.Cmp(decimal.Zero) <= 0 {
		return core.Fail[core.OrderSnapshot](core.NewError(core.CodeBadRequest, "limit order requires a price"))
	}
	price := req.Price
	if price.Cmp(decimal.Zero) <= 0 {
		if req.Side == core.Buy {
			price = refAsk
		} else {
			price = refBid
		}
	}

	now := time.Now().UTC()
	exID := core.ExchangeOrderID(strings.ReplaceAll(uuid.NewString(), "-", ""))
	snap := core.OrderSnapshot{
		Ref: core.OrderRef{
			ExchangeOrderID: exID,
			ClientOrderID:   req.ClientOrderID,
			Symbol:          req.Symbol,
		},
		UpdatedAt: now,
	}
	if req.Type == core.Market {
		snap.Status = core.OrderFilled
		snap.ExecutedQty = req.Qty
		snap.AvgPrice = price
		e.execs = append(e.execs, core.OrderExecution{
			Symbol:     req.Symbol,
			Side:       req.Side,
			Price:      price,
			Qty:        req.Qty,
			ExecutedAt: now,
		})
	} else {
		snap.Status = core.OrderNew
		snap.ExecutedQty = decimal.Zero
		snap.AvgPrice = decimal.Zero
	}
	e.store(snap)
	return core.Ok(snap)
}

func (e *Exchange) CancelOrder(ctx context.Context, req core.CancelOrderRequest) core.Result[core.OrderSnapshot] {
	if req.ExchangeOrderID == "" && req.ClientOrderID == "" {
		return core.Fail[core.OrderSnapshot](core.NewError(core.CodeBadRequest, "ExchangeOrderId or ClientOrderId is required"))
	}

	var key string
	if req.ExchangeOrderID != "" {
		key = string(req.ExchangeOrderID)
		if _, ok := e.orders[key]; !ok {
			return core.Fail[core.OrderSnapshot](core.NewError(core.CodeNotFound, "order not found"))
		}
	} else {
		// No client-id index; reverse scan over all known orders.
		for _, id := range e.orderIDs {
			if e.orders[id].Ref.ClientOrderID == req.ClientOrderID {
				key = id
				break
			}
		}
		if key == "" {
			return core.Fail[core.OrderSnapshot](core.NewError(core.CodeNotFound, "order not found for ClientOrderId"))
		}
	}

	// Last-write-wins: the canceled snapshot replaces any prior fill state.
	snap := e.orders[key]
	snap.Status = core.OrderCanceled
	snap.ExecutedQty = decimal.Zero
	snap.AvgPrice = decimal.Zero
	snap.UpdatedAt = time.Now().UTC()
	e.orders[key] = snap
	return core.Ok(snap)
}

func (e *Exchange) GetOrder(ctx context.Context, req core.GetOrderRequest) core.Result[core.OrderSnapshot] {
	if req.ExchangeOrderID != "" {
		if snap, ok := e.orders[string(req.ExchangeOrderID)]; ok {
			return core.Ok(snap)
		}
		return core.Fail[core.OrderSnapshot](core.NewError(core.CodeNotFound, "order not found"))
	}
	if req.ClientOrderID != "" {
		// Capability absent, not order absent: the store has no client-id
		// index for lookup.
		return core.Fail[core.OrderSnapshot](core.NewError(core.CodeNotImplemented, "lookup by ClientOrderId is not supported"))
	}
	return core.Fail[core.OrderSnapshot](core.NewError(core.CodeBadRequest, "ExchangeOrderId or ClientOrderId is required"))
}

func (e *Exchange) ListOpenOrders(ctx context.Context, symbol core.Symbol, cursor string, limit int) core.Result[core.Page[core.OrderSnapshot]] {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	offset := 0
	if cursor != "" {
		n, err := decodeCursor(cursor)
		if err != nil {
			return core.Fail[core.Page[core.OrderSnapshot]](core.NewError(core.CodeBadRequest, "invalid cursor"))
		}
		offset = n
	}

	open := make([]core.OrderSnapshot, 0)
	for _, id := range e.orderIDs {
		snap := e.orders[id]
		if snap.Ref.Symbol != symbol || snap.Status.Terminal() {
			continue
		}
		open = append(open, snap)
	}

	if offset >= len(open) {
		return core.Ok(core.Page[core.OrderSnapshot]{Items: []core.OrderSnapshot{}})
	}
	end := offset + limit
	next := ""
	if end < len(open) {
		next = encodeCursor(end)
	} else {
		end = len(open)
	}
	return core.Ok(core.Page[core.OrderSnapshot]{Items: open[offset:end], NextCursor: next})
}

func (e *Exchange) GetBalances(ctx context.Context) core.Result[[]core.Balance] {
	return core.Ok([]core.Balance{
		{Asset: "JPY", Free: decimal.NewFromInt(1_000_000), Locked: decimal.Zero},
	})
}

func (e *Exchange) GetAccountInfo(ctx context.Context) core.Result[core.AccountInfo] {
	return core.Ok(core.AccountInfo{AccountID: "mock-account"})
}

func (e *Exchange) GetPrecision(ctx context.Context, symbol core.Symbol) core.Result[core.Precision] {
	return core.Ok(core.Precision{
		PriceDecimals:    0,
		QuantityDecimals: 5,
		MinNotional:      decimal.NewFromInt(1),
		MinQty:           decimal.RequireFromString("0.00001"),
	})
}

// Executions returns the fill events recorded so far, oldest first.
func (e *Exchange) Executions() []core.OrderExecution {
	out := make([]core.OrderExecution, len(e.execs))
	copy(out, e.execs)
	return out
}

func (e *Exchange) store(snap core.OrderSnapshot) {
	key := string(snap.Ref.ExchangeOrderID)
	if _, ok := e.orders[key]; !ok {
		e.orderIDs = append(e.orderIDs, key)
	}
	e.orders[key] = snap
}

func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, err
	}
	s := string(raw)
	if !strings.HasPrefix(s, "o:") {
		return 0, fmt.Errorf("unexpected cursor payload %q", s)
	}
	n, err := strconv.Atoi(s[2:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("unexpected cursor offset %q", s)
	}
	return n, nil
}
