package product

import "github.com/shopspring/decimal"

// EffectivePrice derives the price actually charged from a base price and a
// discount percentage. A non-positive discount (or non-positive base) leaves
// the base price untouched. The result is rounded to two decimal places.
func EffectivePrice(basePrice float64, discountPercent int) float64 {
	if discountPercent <= 0 || basePrice <= 0 {
		return basePrice
	}
	base := decimal.NewFromFloat(basePrice)
	factor := decimal.NewFromInt(int64(100 - ClampDiscount(discountPercent))).Div(decimal.NewFromInt(100))
	out, _ := base.Mul(factor).Round(2).Float64()
	return out
}

// ImpliedDiscount recovers the discount percentage from a manually edited
// effective price. It only yields a discount when the effective price is
// strictly below a positive base price; anything else is 0%.
func ImpliedDiscount(basePrice, effectivePrice float64) int {
	if basePrice <= 0 || effectivePrice >= basePrice {
		return 0
	}
	base := decimal.NewFromFloat(basePrice)
	diff := base.Sub(decimal.NewFromFloat(effectivePrice))
	pct := diff.Div(base).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return ClampDiscount(int(pct))
}

// ClampDiscount forces a discount percentage into the valid [0, 100] range.
func ClampDiscount(discountPercent int) int {
	if discountPercent < 0 {
		return 0
	}
	if discountPercent > 100 {
		return 100
	}
	return discountPercent
}

// normalizePricing applies the pricing invariant to a product before it is
// persisted: when a base price and discount are present the effective price
// is derived from them, and a base price edited below the effective price
// never produces a negative discount.
func normalizePricing(p *Product) {
	if p.DiscountPercent != nil {
		clamped := ClampDiscount(*p.DiscountPercent)
		p.DiscountPercent = &clamped
	}
	if p.BasePrice == nil {
		return
	}
	if *p.BasePrice <= 0 {
		zero := 0
		p.DiscountPercent = &zero
		return
	}
	if p.DiscountPercent != nil && *p.DiscountPercent > 0 {
		p.Price = EffectivePrice(*p.BasePrice, *p.DiscountPercent)
		return
	}
	// discount field untouched: derive it from the edited effective price
	implied := ImpliedDiscount(*p.BasePrice, p.Price)
	p.DiscountPercent = &implied
}
