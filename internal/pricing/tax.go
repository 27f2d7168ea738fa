package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
)

// EffectiveTaxRate resolves the tax rate for an item through the
// item, subcategory, category override chain. The first level with both
// tax fields non-null wins outright. applicable=false alongside a numeric
// rate is a deliberate zero at that level, not a fall-through.
func EffectiveTaxRate(item *models.MenuItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}

	if item.TaxApplicable != nil && item.TaxPercentage != nil {
		if *item.TaxApplicable {
			return *item.TaxPercentage
		}
		return decimal.Zero
	}

	if sub := item.Subcategory; sub != nil {
		if sub.TaxApplicable != nil && sub.TaxPercentage != nil {
			if *sub.TaxApplicable {
				return *sub.TaxPercentage
			}
			return decimal.Zero
		}
	}

	// Category is the last stop and uses truthy semantics: a zero rate here
	// behaves the same as no rate at all.
	if cat := item.Category; cat != nil && cat.TaxApplicable {
		if cat.TaxPercentage != nil && !cat.TaxPercentage.IsZero() {
			return *cat.TaxPercentage
		}
	}

	return decimal.Zero
}
