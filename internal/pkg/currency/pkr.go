package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PKR renders an amount as "PKR 1,500,000". Paisa are shown only when the
// amount is not whole.
func PKR(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.PKR)
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, "PKR ", "$1")
	if amount.IsInteger() {
		return f.Format(amount.IntPart())
	}
	f.Fraction = cur.Fraction
	return f.Format(amount.Shift(int32(cur.Fraction)).Round(0).IntPart())
}
