package core

import "github.com/shopspring/decimal"

// Precision is the per-symbol numeric contract: decimal places for price and
// quantity plus the exchange minimums. Adapters that cannot supply it fail
// rather than guess.
type Precision struct {
	PriceDecimals    int
	QuantityDecimals int
	MinNotional      decimal.Decimal
	MinQty           decimal.Decimal
}

func (p Precision) PriceStep() decimal.Decimal {
	return decimal.New(1, int32(-p.PriceDecimals))
}

func (p Precision) QtyStep() decimal.Decimal {
	return decimal.New(1, int32(-p.QuantityDecimals))
}

// ValidateOrder checks a request against the symbol's precision contract
// before submission. It rounds quantity and price down to the allowed steps
// and returns a BadRequest error when a minimum is violated.
func ValidateOrder(req PlaceOrderRequest, p Precision) *Error {
	if req.Qty.Cmp(decimal.Zero) <= 0 {
		return NewError(CodeBadRequest, "quantity must be positive")
	}
	qty := RoundDown(req.Qty, p.QtyStep())
	if qty.Cmp(decimal.Zero) <= 0 {
		return NewError(CodeBadRequest, "quantity rounds to zero")
	}
	if p.MinQty.Cmp(decimal.Zero) > 0 && qty.Cmp(p.MinQty) < 0 {
		return NewError(CodeBadRequest, "quantity below exchange minimum")
	}
	price := req.Price
	if req.Type == Limit {
		if price.Cmp(decimal.Zero) <= 0 {
			return NewError(CodeBadRequest, "limit order requires a price")
		}
		price = RoundDown(price, p.PriceStep())
		if price.Cmp(decimal.Zero) <= 0 {
			return NewError(CodeBadRequest, "price rounds to zero")
		}
	}
	if price.Cmp(decimal.Zero) > 0 && p.MinNotional.Cmp(decimal.Zero) > 0 {
		if price.Mul(qty).Cmp(p.MinNotional) < 0 {
			return NewError(CodeBadRequest, "notional below exchange minimum")
		}
	}
	return nil
}

func RoundDown(value, step decimal.Decimal) decimal.Decimal {
	if step.Cmp(decimal.Zero) <= 0 {
		return value
	}
	return value.Div(step).Floor().Mul(step)
}
