package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tkoba0410/ExchangeApi/internal/config"
	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/exchange"
	"github.com/tkoba0410/ExchangeApi/internal/exchange/bitflyer"
	"github.com/tkoba0410/ExchangeApi/internal/exchange/bybit"
	"github.com/tkoba0410/ExchangeApi/internal/exchange/mock"
	"github.com/tkoba0410/ExchangeApi/internal/service"
	"github.com/tkoba0410/ExchangeApi/internal/transport"
)

func main() {
	var (
		configPath   string
		exchangeName string
		symbolRaw    string
	)
	flag.StringVar(&configPath, "config", "", "path to yaml config (optional)")
	flag.StringVar(&exchangeName, "exchange", "", "exchange backend: mock/bybit/bitflyer (overrides config)")
	flag.StringVar(&symbolRaw, "symbol", "", "trading pair symbol (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fatal(err.Error())
		}
		cfg = loaded
	}
	if exchangeName != "" {
		cfg.Exchange = strings.ToLower(strings.TrimSpace(exchangeName))
	}
	if symbolRaw != "" {
		cfg.Symbol = symbolRaw
	}

	tp := transport.New(time.Duration(cfg.HTTPTimeoutSec) * time.Second)
	ex, err := buildExchange(cfg, tp)
	if err != nil {
		fatal(err.Error())
	}
	svc, err := service.New(ex)
	if err != nil {
		fatal(err.Error())
	}

	ctx := context.Background()
	symbol := core.Symbol(cfg.Symbol)
	fmt.Printf("exchange: %s\n", svc.Name())

	if res := svc.GetTicker(ctx, symbol); res.IsSuccess() {
		t := res.Value()
		fmt.Printf("ticker %s: bid=%s ask=%s @ %s\n", t.Symbol, t.Bid, t.Ask, t.Timestamp.Format(time.RFC3339))
	} else {
		printFailure("ticker", res.Err())
	}

	if res := svc.GetPrecision(ctx, symbol); res.IsSuccess() {
		p := res.Value()
		fmt.Printf("precision %s: price=%ddp qty=%ddp minQty=%s minNotional=%s\n", symbol, p.PriceDecimals, p.QuantityDecimals, p.MinQty, p.MinNotional)
	} else {
		printFailure("precision", res.Err())
	}

	placed := svc.PlaceOrder(ctx, core.PlaceOrderRequest{
		Symbol: symbol,
		Side:   core.Buy,
		Type:   core.Market,
		Qty:    cfg.Order.Qty.Decimal,
	})
	if placed.IsSuccess() {
		o := placed.Value()
		fmt.Printf("order %s: status=%s executed=%s avgPrice=%s\n", o.Ref.ExchangeOrderID, o.Status, o.ExecutedQty, o.AvgPrice)
	} else {
		printFailure("place order", placed.Err())
	}

	if placed.IsSuccess() {
		exID := placed.Value().Ref.ExchangeOrderID
		if res := svc.GetOrder(ctx, core.GetOrderRequest{Symbol: symbol, ExchangeOrderID: exID}); res.IsSuccess() {
			fmt.Printf("get order: status=%s\n", res.Value().Status)
		} else {
			printFailure("get order", res.Err())
		}
		if res := svc.CancelOrder(ctx, core.CancelOrderRequest{Symbol: symbol, ExchangeOrderID: exID}); res.IsSuccess() {
			fmt.Printf("cancel order: status=%s executed=%s\n", res.Value().Status, res.Value().ExecutedQty)
		} else {
			printFailure("cancel order", res.Err())
		}
	}

	if res := svc.ListOpenOrders(ctx, symbol, "", 0); res.IsSuccess() {
		fmt.Printf("open orders: %d\n", len(res.Value().Items))
	} else {
		printFailure("open orders", res.Err())
	}

	if res := svc.GetBalances(ctx); res.IsSuccess() {
		for _, b := range res.Value() {
			fmt.Printf("balance %s: free=%s locked=%s\n", b.Asset, b.Free, b.Locked)
		}
	} else {
		printFailure("balances", res.Err())
	}

	if res := svc.GetAccountInfo(ctx); res.IsSuccess() {
		fmt.Printf("account: %s\n", res.Value().AccountID)
	} else {
		printFailure("account info", res.Err())
	}
}

func buildExchange(cfg config.Config, tp transport.Transport) (exchange.Exchange, error) {
	switch cfg.Exchange {
	case config.ExchangeMock:
		return mock.New(tp), nil
	case config.ExchangeBybit:
		return bybit.New(tp, bybit.Options{BaseURL: cfg.Bybit.BaseURL})
	case config.ExchangeBitflyer:
		return bitflyer.New(tp, bitflyer.Options{BaseURL: cfg.Bitflyer.BaseURL})
	}
	return nil, fmt.Errorf("unknown exchange %q", cfg.Exchange)
}

// printFailure shows code and message only; Error.Detail is diagnostic and
// stays out of the compact output.
func printFailure(op string, err *core.Error) {
	fmt.Printf("%s: FAIL -> %s %s\n", op, err.Code, err.Message)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
