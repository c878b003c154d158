package core

import "github.com/shopspring/decimal"

// Balance is one asset's free/locked amounts. Free+locked is not asserted
// equal to any prior total; funding and withdrawals happen out of band.
type Balance struct {
	Asset  string
	Free   decimal.Decimal
	Locked decimal.Decimal
}

type AccountInfo struct {
	AccountID    string
	SubAccountID string
}
