package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
)

// PriceBreakdown is the derived price record returned to callers. Priced is
// false for the degraded states a strategy can legitimately land in: a
// discounted item without a discount record, a tiered item without tiers, or
// a dynamic item outside every window. Totals are still computed in those
// states so callers can tell "free" apart from "not currently priceable".
type PriceBreakdown struct {
	AppliedRule string          `json:"applied_rule"`
	Priced      bool            `json:"priced"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	AddonsTotal decimal.Decimal `json:"addons_total"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// QuoteInput carries the per-request pricing parameters. Now is required so
// dynamic items price deterministically under test.
type QuoteInput struct {
	Hours  int
	Addons []models.Addon
	Now    time.Time
}

var oneHundred = decimal.NewFromInt(100)

// Quote computes the price breakdown for an item. Pure function of the item,
// the input, and input.Now.
func Quote(item *models.MenuItem, input QuoteInput) PriceBreakdown {
	if input.Hours <= 0 {
		input.Hours = 1
	}

	base := decimal.Zero
	discount := decimal.Zero
	rule := ""
	priced := true

	switch item.PricingType {
	case enums.PricingTypeStatic:
		if item.StaticPrice != nil {
			base = *item.StaticPrice
		}
		rule = "Fixed price"

	case enums.PricingTypeTiered:
		base, rule, priced = tieredPrice(item.PriceTiers, input.Hours)

	case enums.PricingTypeComplimentary:
		rule = "Complimentary"

	case enums.PricingTypeDiscounted:
		if item.Discount == nil {
			rule = "No discount configured"
			priced = false
			break
		}
		base = item.Discount.BasePrice
		if item.Discount.DiscountType == enums.DiscountTypeFlat {
			discount = item.Discount.DiscountValue
			rule = fmt.Sprintf("Flat %s off", item.Discount.DiscountValue.String())
		} else {
			discount = base.Mul(item.Discount.DiscountValue).Div(oneHundred)
			rule = fmt.Sprintf("%s%% off", item.Discount.DiscountValue.String())
		}

	case enums.PricingTypeDynamic:
		base, rule, priced = dynamicPrice(item.DynamicWindows, input.Now)

	default:
		rule = "Unknown pricing strategy"
		priced = false
	}

	subtotal := base.Sub(discount)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}
	taxRate := EffectiveTaxRate(item)
	taxAmount := subtotal.Mul(taxRate).Div(oneHundred)
	addonsTotal := decimal.Zero
	for _, addon := range input.Addons {
		addonsTotal = addonsTotal.Add(addon.Price)
	}

	return PriceBreakdown{
		AppliedRule: rule,
		Priced:      priced,
		BasePrice:   base,
		Discount:    discount,
		Subtotal:    subtotal,
		TaxRate:     taxRate,
		TaxAmount:   taxAmount,
		AddonsTotal: addonsTotal,
		GrandTotal:  subtotal.Add(taxAmount).Add(addonsTotal),
	}
}

func tieredPrice(tiers []models.PriceTier, hours int) (decimal.Decimal, string, bool) {
	if len(tiers) == 0 {
		return decimal.Zero, "No tiered pricing", false
	}

	sorted := make([]models.PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].UpToHours < sorted[j].UpToHours })

	for _, tier := range sorted {
		if hours <= tier.UpToHours {
			unit := "hours"
			if tier.UpToHours == 1 {
				unit = "hour"
			}
			return tier.Price, fmt.Sprintf("Up to %d %s", tier.UpToHours, unit), true
		}
	}

	// Requested duration exceeds every ceiling. Degrade to the largest tier
	// rather than failing.
	max := sorted[len(sorted)-1]
	return max.Price, fmt.Sprintf("%d+ hours (max tier)", max.UpToHours), true
}

func dynamicPrice(windows []models.DynamicPriceWindow, now time.Time) (decimal.Decimal, string, bool) {
	clock := now.Format("15:04")
	for _, window := range windows {
		if clock >= window.StartTime && clock < window.EndTime {
			return window.Price, fmt.Sprintf("Time-based: %s-%s", window.StartTime, window.EndTime), true
		}
	}
	return decimal.Zero, "Currently unavailable", false
}
