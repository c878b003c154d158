// Package bitflyer adapts the capability contract to the bitFlyer public
// REST API. Unlike Bybit there is no application-level status envelope; a
// 2xx body is the payload itself. bitFlyer responses carry an authoritative
// event timestamp, which is used when it parses.
package bitflyer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/tkoba0410/ExchangeApi/internal/core"
	"github.com/tkoba0410/ExchangeApi/internal/exchange"
	"github.com/tkoba0410/ExchangeApi/internal/transport"
)

const defaultBaseURL = "https://api.bitflyer.com"

// bitFlyer timestamps are zone-less UTC, e.g. "2015-07-08T02:50:59.97".
const timestampLayout = "2006-01-02T15:04:05.999999999"

type Options struct {
	BaseURL string
}

type Exchange struct {
	exchange.Base
	baseURL string
}

type tickerResponse struct {
	ProductCode string      `json:"product_code"`
	State       string      `json:"state"`
	Timestamp   string      `json:"timestamp"`
	BestBid     json.Number `json:"best_bid"`
	BestAsk     json.Number `json:"best_ask"`
	Ltp         json.Number `json:"ltp"`
}

type boardResponse struct {
	MidPrice json.Number  `json:"mid_price"`
	Bids     []boardLevel `json:"bids"`
	Asks     []boardLevel `json:"asks"`
}

type boardLevel struct {
	Price json.Number `json:"price"`
	Size  json.Number `json:"size"`
}

func New(t transport.Transport, opts Options) (*Exchange, error) {
	if t == nil {
		return nil, errors.New("bitflyer: transport is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Exchange{Base: exchange.NewBase(t), baseURL: baseURL}, nil
}

var _ exchange.Exchange = (*Exchange)(nil)

func (e *Exchange) Name() string { return "bitflyer" }

func (e *Exchange) GetTicker(ctx context.Context, symbol core.Symbol) core.Result[core.Ticker] {
	body, errE := e.get(ctx, "/v1/getticker", symbol)
	if errE != nil {
		return core.Fail[core.Ticker](errE)
	}
	var resp tickerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return core.Fail[core.Ticker](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	ts := time.Now().UTC()
	if parsed, err := time.Parse(timestampLayout, resp.Timestamp); err == nil {
		ts = parsed.UTC()
	}
	return core.Ok(core.Ticker{
		Symbol:    symbol,
		Bid:       exchange.ParseDecimal(resp.BestBid.String()),
		Ask:       exchange.ParseDecimal(resp.BestAsk.String()),
		Timestamp: ts,
	})
}

func (e *Exchange) GetOrderBook(ctx context.Context, symbol core.Symbol, depth int) core.Result[core.OrderBook] {
	if depth <= 0 {
		depth = 25
	}
	body, errE := e.get(ctx, "/v1/getboard", symbol)
	if errE != nil {
		return core.Fail[core.OrderBook](errE)
	}
	var resp boardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return core.Fail[core.OrderBook](core.NewErrorDetail(core.CodeDeserializeError, err.Error(), string(body)))
	}
	// The board endpoint carries no timestamp; receipt time is the best
	// available approximation.
	return core.Ok(core.OrderBook{
		Symbol:    symbol,
		Bids:      parseBoardLevels(resp.Bids, depth),
		Asks:      parseBoardLevels(resp.Asks, depth),
		Timestamp: time.Now().UTC(),
	})
}

func (e *Exchange) get(ctx context.Context, path string, symbol core.Symbol) ([]byte, *core.Error) {
	params := url.Values{}
	params.Set("product_code", productCode(symbol))
	resp, err := e.Transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    e.baseURL + path + "?" + params.Encode(),
	})
	if err != nil {
		return nil, core.NewError(core.CodeHTTPError, err.Error())
	}
	if resp.StatusCode/100 != 2 {
		return nil, core.NewErrorDetail(core.CodeHTTPError, fmt.Sprintf("status %d", resp.StatusCode), string(resp.Body))
	}
	return resp.Body, nil
}

// productCode maps the caller's Symbol to bitFlyer's underscore convention
// ("btc/jpy" -> "BTC_JPY"). The Symbol echoed back in responses stays as the
// caller supplied it.
func productCode(symbol core.Symbol) string {
	code := strings.ToUpper(strings.TrimSpace(string(symbol)))
	code = strings.ReplaceAll(code, "/", "_")
	code = strings.ReplaceAll(code, "-", "_")
	return code
}

func parseBoardLevels(rows []boardLevel, depth int) []core.BookLevel {
	levels := make([]core.BookLevel, 0, depth)
	for _, row := range rows {
		levels = append(levels, core.BookLevel{
			Price: exchange.ParseDecimal(row.Price.String()),
			Qty:   exchange.ParseDecimal(row.Size.String()),
		})
		if len(levels) == depth {
			break
		}
	}
	return levels
}
