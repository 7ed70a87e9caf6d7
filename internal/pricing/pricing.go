package pricing

import (
	"github.com/haeun/go-diary-store/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// FreeShippingThreshold is the subtotal at or above which the flat
	// shipping fee is waived. The comparison is strict below the
	// threshold: a subtotal of exactly 30000 ships free, 29999 does not.
	FreeShippingThreshold = decimal.NewFromInt(30000)

	// FlatShippingFee applies to every order below the threshold,
	// including an empty cart with a zero subtotal.
	FlatShippingFee = decimal.NewFromInt(3000)

	hundred = decimal.NewFromInt(100)
)

// Totals is the payment breakdown shown on the order summary.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
}

// EffectiveUnitPrice returns the product price after applying its own
// discount percentage. The result is left unrounded; rounding happens
// once at the subtotal so it does not compound across quantity.
func EffectiveUnitPrice(p *models.Product) decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	rate := hundred.Sub(decimal.NewFromInt(int64(p.Discount))).Div(hundred)
	return p.Price.Mul(rate)
}

// CartSubtotal sums effective unit price times quantity over the line
// items, rounded to whole currency. The sum is order-independent; an
// empty slice yields zero.
func CartSubtotal(items []models.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for i := range items {
		unit := EffectiveUnitPrice(&items[i].Product)
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}
	return subtotal.Round(0)
}

// ShippingFee returns the flat fee for subtotals strictly below the
// free-shipping threshold, zero otherwise.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// FinalTotal is the cart subtotal plus its shipping fee.
func FinalTotal(items []models.CartItem) decimal.Decimal {
	subtotal := CartSubtotal(items)
	return subtotal.Add(ShippingFee(subtotal))
}

// PaymentTotal returns the full breakdown for the order summary.
func PaymentTotal(items []models.CartItem) Totals {
	subtotal := CartSubtotal(items)
	fee := ShippingFee(subtotal)
	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// TotalItems is the sum of line quantities.
func TotalItems(items []models.CartItem) int {
	total := 0
	for i := range items {
		total += items[i].Quantity
	}
	return total
}

// DiscountAmount returns the rounded amount taken off a price by the
// given percentage rate.
func DiscountAmount(price decimal.Decimal, rate int) decimal.Decimal {
	if rate <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(rate))).Div(hundred).Round(0)
}

// DiscountRate derives the percentage saved between an original and a
// current price, rounded to the nearest whole percent. Zero when the
// original price is not positive.
func DiscountRate(originalPrice, price decimal.Decimal) int {
	if !originalPrice.IsPositive() {
		return 0
	}
	rate := originalPrice.Sub(price).Div(originalPrice).Mul(hundred).Round(0)
	return int(rate.IntPart())
}
