package mock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tkoba0410/ExchangeApi/internal/core"
)

func TestMarketBuyFillsAtReferenceAsk(t *testing.T) {
	ex := New(nil)
	res := ex.PlaceOrder(context.Background(), core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Buy,
		Type:   core.Market,
		Qty:    decimal.RequireFromString("0.01"),
	})
	if !res.IsSuccess() {
		t.Fatalf("PlaceOrder() failed: %v", res.Err())
	}
	snap := res.Value()
	if snap.Status != core.OrderFilled {
		t.Fatalf("Status = %s, want %s", snap.Status, core.OrderFilled)
	}
	if !snap.AvgPrice.Equal(decimal.NewFromInt(101)) {
		t.Fatalf("AvgPrice = %s, want 101", snap.AvgPrice)
	}
	if !snap.ExecutedQty.Equal(decimal.RequireFromString("0.01")) {
		t.Fatalf("ExecutedQty = %s, want 0.01", snap.ExecutedQty)
	}
	if snap.Ref.ExchangeOrderID == "" {
		t.Fatalf("placement did not assign an ExchangeOrderId")
	}

	execs := ex.Executions()
	if len(execs) != 1 {
		t.Fatalf("Executions() len = %d, want 1", len(execs))
	}
	if !execs[0].Price.Equal(decimal.NewFromInt(101)) {
		t.Fatalf("execution price = %s, want 101", execs[0].Price)
	}
}

func TestMarketSellFillsAtReferenceBid(t *testing.T) {
	ex := New(nil)
	res := ex.PlaceOrder(context.Background(), core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Sell,
		Type:   core.Market,
		Qty:    decimal.RequireFromString("0.5"),
	})
	if !res.IsSuccess() {
		t.Fatalf("PlaceOrder() failed: %v", res.Err())
	}
	if !res.Value().AvgPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("AvgPrice = %s, want 100", res.Value().AvgPrice)
	}
}

func TestPlaceThenGetReturnsSameExchangeOrderID(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()
	placed := ex.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Buy,
		Type:   core.Market,
		Qty:    decimal.RequireFromString("0.01"),
	})
	if !placed.IsSuccess() {
		t.Fatalf("PlaceOrder() failed: %v", placed.Err())
	}
	exID := placed.Value().Ref.ExchangeOrderID

	got := ex.GetOrder(ctx, core.GetOrderRequest{Symbol: "BTCJPY", ExchangeOrderID: exID})
	if !got.IsSuccess() {
		t.Fatalf("GetOrder() failed: %v", got.Err())
	}
	if got.Value().Ref.ExchangeOrderID != exID {
		t.Fatalf("Ref.ExchangeOrderID = %s, want %s", got.Value().Ref.ExchangeOrderID, exID)
	}
}

func TestCancelOverwritesSnapshot(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()
	placed := ex.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Buy,
		Type:   core.Market,
		Qty:    decimal.RequireFromString("0.01"),
	})
	exID := placed.Value().Ref.ExchangeOrderID

	canceled := ex.CancelOrder(ctx, core.CancelOrderRequest{Symbol: "BTCJPY", ExchangeOrderID: exID})
	if !canceled.IsSuccess() {
		t.Fatalf("CancelOrder() failed: %v", canceled.Err())
	}
	snap := canceled.Value()
	if snap.Status != core.OrderCanceled {
		t.Fatalf("Status = %s, want %s", snap.Status, core.OrderCanceled)
	}
	if !snap.ExecutedQty.IsZero() || !snap.AvgPrice.IsZero() {
		t.Fatalf("cancel did not zero fill state: qty=%s avg=%s", snap.ExecutedQty, snap.AvgPrice)
	}

	// Last write wins: a subsequent fetch reflects the canceled state.
	got := ex.GetOrder(ctx, core.GetOrderRequest{Symbol: "BTCJPY", ExchangeOrderID: exID})
	if !got.IsSuccess() {
		t.Fatalf("GetOrder() after cancel failed: %v", got.Err())
	}
	if got.Value().Status != core.OrderCanceled {
		t.Fatalf("post-cancel Status = %s, want %s", got.Value().Status, core.OrderCanceled)
	}
	if got.Value().Ref.ExchangeOrderID != exID {
		t.Fatalf("cancel changed the ExchangeOrderId: %s", got.Value().Ref.ExchangeOrderID)
	}
}

func TestCancelWithoutIdentifiers(t *testing.T) {
	ex := New(nil)
	res := ex.CancelOrder(context.Background(), core.CancelOrderRequest{Symbol: "BTCJPY"})
	if res.IsSuccess() || !res.Err().Is(core.CodeBadRequest) {
		t.Fatalf("CancelOrder() = %v, want BadRequest", res.Err())
	}
}

func TestCancelByClientOrderIDScans(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()
	ex.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Buy,
		Type:   core.Market,
		Qty:    decimal.RequireFromString("0.01"),
	})
	placed := ex.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol:        "BTCJPY",
		Side:          core.Buy,
		Type:          core.Limit,
		Price:         decimal.NewFromInt(95),
		Qty:           decimal.RequireFromString("0.02"),
		ClientOrderID: "cid-7",
	})
	if !placed.IsSuccess() {
		t.Fatalf("PlaceOrder() failed: %v", placed.Err())
	}

	canceled := ex.CancelOrder(ctx, core.CancelOrderRequest{Symbol: "BTCJPY", ClientOrderID: "cid-7"})
	if !canceled.IsSuccess() {
		t.Fatalf("CancelOrder(clientID) failed: %v", canceled.Err())
	}
	if canceled.Value().Ref.ExchangeOrderID != placed.Value().Ref.ExchangeOrderID {
		t.Fatalf("canceled wrong order: %s", canceled.Value().Ref.ExchangeOrderID)
	}

	miss := ex.CancelOrder(ctx, core.CancelOrderRequest{Symbol: "BTCJPY", ClientOrderID: "cid-missing"})
	if miss.IsSuccess() || !miss.Err().Is(core.CodeNotFound) {
		t.Fatalf("CancelOrder(unknown clientID) = %v, want NotFound", miss.Err())
	}
}

func TestGetOrderNotFoundAndNotImplemented(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()

	res := ex.GetOrder(ctx, core.GetOrderRequest{Symbol: "BTCJPY", ExchangeOrderID: "missing"})
	if res.IsSuccess() || !res.Err().Is(core.CodeNotFound) {
		t.Fatalf("GetOrder(unknown) = %v, want NotFound", res.Err())
	}

	res = ex.GetOrder(ctx, core.GetOrderRequest{Symbol: "BTCJPY", ClientOrderID: "cid-1"})
	if res.IsSuccess() || !res.Err().Is(core.CodeNotImplemented) {
		t.Fatalf("GetOrder(clientID) = %v, want NotImplemented", res.Err())
	}

	res = ex.GetOrder(ctx, core.GetOrderRequest{Symbol: "BTCJPY"})
	if res.IsSuccess() || !res.Err().Is(core.CodeBadRequest) {
		t.Fatalf("GetOrder(no ids) = %v, want BadRequest", res.Err())
	}
}

func TestListOpenOrdersEmpty(t *testing.T) {
	ex := New(nil)
	res := ex.ListOpenOrders(context.Background(), "BTCJPY", "", 0)
	if !res.IsSuccess() {
		t.Fatalf("ListOpenOrders() failed: %v", res.Err())
	}
	page := res.Value()
	if len(page.Items) != 0 {
		t.Fatalf("Items len = %d, want 0", len(page.Items))
	}
	if page.NextCursor != "" {
		t.Fatalf("NextCursor = %q, want empty (terminal pagination)", page.NextCursor)
	}
}

func TestListOpenOrdersPagination(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		res := ex.PlaceOrder(ctx, core.PlaceOrderRequest{
			Symbol:        "BTCJPY",
			Side:          core.Buy,
			Type:          core.Limit,
			Price:         decimal.NewFromInt(int64(90 + i)),
			Qty:           decimal.RequireFromString("0.01"),
			ClientOrderID: core.ClientOrderID(fmt.Sprintf("cid-%d", i)),
		})
		if !res.IsSuccess() {
			t.Fatalf("PlaceOrder(%d) failed: %v", i, res.Err())
		}
	}
	// A filled market order and a foreign symbol must not show up.
	ex.PlaceOrder(ctx, core.PlaceOrderRequest{Symbol: "BTCJPY", Side: core.Buy, Type: core.Market, Qty: decimal.RequireFromString("0.01")})
	ex.PlaceOrder(ctx, core.PlaceOrderRequest{Symbol: "ETHJPY", Side: core.Buy, Type: core.Limit, Price: decimal.NewFromInt(10), Qty: decimal.RequireFromString("1")})

	seen := make([]core.ClientOrderID, 0, 5)
	cursor := ""
	pages := 0
	for {
		res := ex.ListOpenOrders(ctx, "BTCJPY", cursor, 2)
		if !res.IsSuccess() {
			t.Fatalf("ListOpenOrders() failed: %v", res.Err())
		}
		page := res.Value()
		for _, snap := range page.Items {
			if snap.Status.Terminal() {
				t.Fatalf("listed terminal order %s", snap.Ref.ExchangeOrderID)
			}
			seen = append(seen, snap.Ref.ClientOrderID)
		}
		pages++
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
	if len(seen) != 5 {
		t.Fatalf("listed %d orders, want 5", len(seen))
	}
	for i, cid := range seen {
		if want := core.ClientOrderID(fmt.Sprintf("cid-%d", i)); cid != want {
			t.Fatalf("order %d = %s, want %s (insertion order)", i, cid, want)
		}
	}
}

func TestListOpenOrdersInvalidCursor(t *testing.T) {
	ex := New(nil)
	res := ex.ListOpenOrders(context.Background(), "BTCJPY", "not-a-cursor!!", 10)
	if res.IsSuccess() || !res.Err().Is(core.CodeBadRequest) {
		t.Fatalf("ListOpenOrders(bad cursor) = %v, want BadRequest", res.Err())
	}
}

func TestCanceledLimitOrderLeavesListing(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()
	placed := ex.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol: "BTCJPY",
		Side:   core.Sell,
		Type:   core.Limit,
		Price:  decimal.NewFromInt(120),
		Qty:    decimal.RequireFromString("0.03"),
	})
	ex.CancelOrder(ctx, core.CancelOrderRequest{Symbol: "BTCJPY", ExchangeOrderID: placed.Value().Ref.ExchangeOrderID})

	res := ex.ListOpenOrders(ctx, "BTCJPY", "", 0)
	if !res.IsSuccess() || len(res.Value().Items) != 0 {
		t.Fatalf("canceled order still listed: %+v", res.Value().Items)
	}
}

func TestBalancesNonEmpty(t *testing.T) {
	ex := New(nil)
	res := ex.GetBalances(context.Background())
	if !res.IsSuccess() {
		t.Fatalf("GetBalances() failed: %v", res.Err())
	}
	balances := res.Value()
	if len(balances) == 0 {
		t.Fatalf("GetBalances() returned no entries")
	}
	if balances[0].Free.Cmp(decimal.Zero) <= 0 {
		t.Fatalf("free balance = %s, want > 0", balances[0].Free)
	}
}

func TestAccountInfoAndPrecision(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()

	info := ex.GetAccountInfo(ctx)
	if !info.IsSuccess() || info.Value().AccountID != "mock-account" {
		t.Fatalf("GetAccountInfo() = %+v (%v)", info.Value(), info.Err())
	}

	prec := ex.GetPrecision(ctx, "BTCJPY")
	if !prec.IsSuccess() {
		t.Fatalf("GetPrecision() failed: %v", prec.Err())
	}
	p := prec.Value()
	if p.QuantityDecimals != 5 || !p.MinQty.Equal(decimal.RequireFromString("0.00001")) {
		t.Fatalf("unexpected precision: %+v", p)
	}
}

func TestMarketDataShapes(t *testing.T) {
	ex := New(nil)
	ctx := context.Background()

	ticker := ex.GetTicker(ctx, "btcjpy")
	if !ticker.IsSuccess() {
		t.Fatalf("GetTicker() failed: %v", ticker.Err())
	}
	if ticker.Value().Symbol != "btcjpy" {
		t.Fatalf("ticker did not echo caller symbol: %s", ticker.Value().Symbol)
	}
	if !ticker.Value().Bid.LessThan(ticker.Value().Ask) {
		t.Fatalf("bid %s >= ask %s", ticker.Value().Bid, ticker.Value().Ask)
	}

	book := ex.GetOrderBook(ctx, "BTCJPY", 5)
	if !book.IsSuccess() {
		t.Fatalf("GetOrderBook() failed: %v", book.Err())
	}
	if len(book.Value().Bids) != 5 || len(book.Value().Asks) != 5 {
		t.Fatalf("book depth = %d/%d, want 5/5", len(book.Value().Bids), len(book.Value().Asks))
	}

	candles := ex.GetOhlcv(ctx, "BTCJPY", core.Interval5m, 10, time.Time{})
	if !candles.IsSuccess() {
		t.Fatalf("GetOhlcv() failed: %v", candles.Err())
	}
	rows := candles.Value()
	if len(rows) != 10 {
		t.Fatalf("candle count = %d, want 10", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i].OpenTime.After(rows[i-1].OpenTime) {
			t.Fatalf("candles not time-ordered at %d", i)
		}
	}
}
