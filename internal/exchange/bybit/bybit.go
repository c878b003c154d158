// Package bybit adapts the capability contract to the Bybit V5 public REST
// API (spot category). Only market data and precision lookup are supported;
// trading and account operations require signed endpoints and fail with
// NotImplemented.
package bybit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/exchange"
	"github.com/tkoba0410/ExchangeApi/internal/transport"
)

const defaultBaseURL = "https://api.bybit.com"

type Options struct {
	BaseURL string
}

type Exchange struct {
	exchange.Base
	baseURL string

	mu             sync.Mutex
	precisionCache map[core.Symbol]core.Precision
}

func New(t transport.Transport, opts Options) (*Exchange, error) {
	if t == nil {
		return nil, errors.New("bybit: transport is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Exchange{
		Base:           exchange.NewBase(t),
		baseURL:        baseURL,
		precisionCache: make(map[core.Symbol]core.Precision),
	}, nil
}

var _ exchange.Exchange = (*Exchange)(nil)

func (e *Exchange) Name() string { return "bybit" }

func (e *Exchange) GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker] {
	params := url.Values{}
	params.Set("category", "spot")
	params.Set("symbol", wireSymbol(symbol))
	raw, body, errE := e.getResult(ctx, "/v5/market/tickers", params)
	if errE != nil {
		return core.Fail[core.Ticker](errE)
	}
	var result tickersResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return core.Fail[core.Ticker](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	if len(result.List) == 0 {
		return core.Fail[core.Ticker](core.NewErrorDetail(core.CodeAPIError, "empty ticker list", string(body)))
	}
	item := result.List[0]
	// The envelope time is request-serving time, not an event timestamp, so
	// receipt time is used; a documented approximation.
	return core.Ok(core.Ticker{
		Symbol:    symbol,
		Bid:       exchange.ParseDecimal(item.Bid1Price),
		Ask:       exchange.ParseDecimal(item.Ask1Price),
		Timestamp: time.Now().UTC(),
	})
}

func (e *Exchange) GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook] {
	if depth <= 0 {
		depth = 25
	}
	params := url.Values{}
	params.Set("category", "spot")
	params.Set("symbol", wireSymbol(symbol))
	params.Set("limit", strconv.Itoa(depth))
	raw, body, errE := e.getResult(ctx, "/v5/market/orderbook", params)
	if errE != nil {
		return core.Fail[core.OrderBook](errE)
	}
	var result orderbookResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return core.Fail[core.OrderBook](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	ts := time.Now().UTC()
	if result.Ts > 0 {
		ts = time.UnixMilli(result.Ts).UTC()
	}
	return core.Ok(core.OrderBook{
		Symbol:    symbol,
		Bids:      parseLevels(result.Bids, depth),
		Asks:      parseLevels(result.Asks, depth),
		Timestamp: ts,
	})
}

func (e *Exchange) GetOhlcv(ctx context.Context, symbol core.Symbol, interval core.Interval, limit int, since time.Time) core.Result[[]core.Ohlcv] {
	wireInterval, ok := klineInterval(interval)
	if !ok {
		return core.Fail[[]core.Ohlcv](core.NewError(core.CodeBadRequest, "unsupported interval "+string(interval)))
	}
	if limit <= 0 {
		limit = 500
	}
	params := url.Values{}
	params.Set("category", "spot")
	params.Set("symbol", wireSymbol(symbol))
	params.Set("interval", wireInterval)
	params.Set("limit", strconv.Itoa(limit))
	if !since.IsZero() {
		params.Set("start", strconv.FormatInt(since.UnixMilli(), 10))
	}
	raw, body, errE := e.getResult(ctx, "/v5/market/kline", params)
	if errE != nil {
		return core.Fail[[]core.Ohlcv](errE)
	}
	var result klineResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return core.Fail[[]core.Ohlcv](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	// Rows arrive newest first; callers get them ascending by open time.
	candles := make([]core.Ohlcv, 0, len(result.List))
	for i := len(result.List) - 1; i >= 0; i-- {
		row := result.List[i]
		if len(row) < 6 {
			continue
		}
		openMs, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		candles = append(candles, core.Ohlcv{
			OpenTime: time.UnixMilli(openMs).UTC(),
			Open:     exchange.ParseDecimal(row[1]),
			High:     exchange.ParseDecimal(row[2]),
			Low:      exchange.ParseDecimal(row[3]),
			Close:    exchange.ParseDecimal(row[4]),
			Volume:   exchange.ParseDecimal(row[5]),
		})
	}
	return core.Ok(candles)
}

func (e *Exchange) GetPrecision(ctx context.Context, symbol core.Symbol) core.Result[core.Precision] {
	e.mu.Lock()
	if p, ok := e.precisionCache[symbol]; ok {
		e.mu.Unlock()
		return core.Ok(p)
	}
	e.mu.Unlock()

	params := url.Values{}
	params.Set("category", "spot")
	params.Set("symbol", wireSymbol(symbol))
	raw, body, errE := e.getResult(ctx, "/v5/market/instruments-info", params)
	if errE != nil {
		return core.Fail[core.Precision](errE)
	}
	var result instrumentsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return core.Fail[core.Precision](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	if len(result.List) == 0 {
		return core.Fail[core.Precision](core.NewErrorDetail(core.CodeNotFound, "symbol not found", string(body)))
	}
	item := result.List[0]
	p := core.Precision{
		PriceDecimals:    decimalsOf(exchange.ParseDecimal(item.PriceFilter.TickSize)),
		QuantityDecimals: decimalsOf(exchange.ParseDecimal(item.LotSizeFilter.BasePrecision)),
		MinNotional:      exchange.ParseDecimal(item.LotSizeFilter.MinOrderAmt),
		MinQty:           exchange.ParseDecimal(item.LotSizeFilter.MinOrderQty),
	}

	e.mu.Lock()
	e.precisionCache[symbol] = p
	e.mu.Unlock()
	return core.Ok(p)
}

// getResult performs one GET and validates both layers: a non-2xx transport
// status maps to HttpError, a non-zero retCode to ApiError, both carrying
// the raw body as detail.
func (e *Exchange) getResult(ctx context.Context, path string, params url.Values) (json.RawMessage, []byte, *core.Error) {
	urlStr := e.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		urlStr += "?" + encoded
	}
	resp, err := e.Transport.Do(ctx, transport.Request{Method: http.MethodGet, URL: urlStr})
	if err != nil {
		return nil, nil, core.NewError(core.CodeHTTPError, err.Error())
	}
	if resp.StatusCode/100 != 2 {
		return nil, nil, core.NewErrorDetail(core.CodeHTTPError, fmt.Sprintf("status %d", resp.StatusCode), string(resp.Body))
	}
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, nil, core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(resp.Body))
	}
	if env.RetCode != 0 {
		return nil, nil, core.NewErrorDetail(core.CodeAPIError, env.RetMsg, string(resp.Body))
	}
	return env.Result, resp.Body, nil
}

// wireSymbol maps the caller's Symbol to Bybit's uppercase convention. The
// caller-supplied value is echoed back in responses unchanged.
func wireSymbol(symbol core.Symbol) string {
	return strings.ToUpper(strings.TrimSpace(string(symbol)))
}

func parseLevels(rows [][]string, depth int) []core.BookLevel {
	levels := make([]core.BookLevel, 0, depth)
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		levels = append(levels, core.BookLevel{
			Price: exchange.ParseDecimal(row[0]),
			Qty:   exchange.ParseDecimal(row[1]),
		})
		if len(levels) == depth {
			break
		}
	}
	return levels
}

func klineInterval(interval core.Interval) (string, bool) {
	switch interval {
	case core.Interval1m:
		return "1", true
	case core.Interval3m:
		return "3", true
	case core.Interval5m:
		return "5", true
	case core.Interval15m:
		return "15", true
	case core.Interval30m:
		return "30", true
	case core.Interval1h:
		return "60", true
	case core.Interval4h:
		return "240", true
	case core.Interval1d:
		return "D", true
	}
	return "", false
}

func decimalsOf(step decimal.Decimal) int {
	if step.Cmp(decimal.Zero) <= 0 {
		return 0
	}
	if exp := step.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}
