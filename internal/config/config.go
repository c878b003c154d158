package config

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	ExchangeMock     = "mock"
	ExchangeBybit    = "bybit"
	ExchangeBitflyer = "bitflyer"
)

type Config struct {
	Exchange       string        `yaml:"exchange"`
	Symbol         string        `yaml:"symbol"`
	HTTPTimeoutSec int64         `yaml:"http_timeout_sec"`
	Order          OrderConfig   `yaml:"order"`
	Bybit          AdapterConfig `yaml:"bybit"`
	Bitflyer       AdapterConfig `yaml:"bitflyer"`
}

type AdapterConfig struct {
	BaseURL string `yaml:"base_url"`
}

// OrderConfig drives the CLI demo order.
type OrderConfig struct {
	Qty Decimal `yaml:"qty"`
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Exchange == "" {
		c.Exchange = ExchangeMock
	}
	c.Exchange = strings.ToLower(strings.TrimSpace(c.Exchange))
	if c.Symbol == "" {
		c.Symbol = "BTCJPY"
	}
	if c.HTTPTimeoutSec <= 0 {
		c.HTTPTimeoutSec = 15
	}
	if c.Order.Qty.Cmp(decimal.Zero) <= 0 {
		c.Order.Qty = NewDecimal(decimal.RequireFromString("0.01"))
	}
}

func (c Config) validate() error {
	switch c.Exchange {
	case ExchangeMock, ExchangeBybit, ExchangeBitflyer:
	default:
		return fmt.Errorf("unknown exchange %q", c.Exchange)
	}
	for name, baseURL := range map[string]string{
		"bybit":    c.Bybit.BaseURL,
		"bitflyer": c.Bitflyer.BaseURL,
	} {
		if baseURL == "" {
			continue
		}
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s.base_url %q is not a valid URL", name, baseURL)
		}
	}
	return nil
}
