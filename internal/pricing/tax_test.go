package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
)

func boolPtr(v bool) *bool { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestEffectiveTaxRateItemOverrideWins(t *testing.T) {
	item := &models.MenuItem{
		TaxApplicable: boolPtr(true),
		TaxPercentage: decPtr("12"),
		Subcategory: &models.Subcategory{
			TaxApplicable: boolPtr(true),
			TaxPercentage: decPtr("99"),
		},
		Category: &models.Category{
			TaxApplicable: true,
			TaxPercentage: decPtr("50"),
		},
	}

	if got := EffectiveTaxRate(item); !got.Equal(decimal.RequireFromString("12")) {
		t.Fatalf("expected item rate 12, got %s", got)
	}

	// Changing parents must not change the result while the item pair is set.
	item.Subcategory.TaxPercentage = decPtr("1")
	item.Category.TaxPercentage = decPtr("2")
	if got := EffectiveTaxRate(item); !got.Equal(decimal.RequireFromString("12")) {
		t.Fatalf("parent change leaked into item override, got %s", got)
	}
}

func TestEffectiveTaxRateApplicableFalseIsDeliberateZero(t *testing.T) {
	item := &models.MenuItem{
		Subcategory: &models.Subcategory{
			TaxApplicable: boolPtr(false),
			TaxPercentage: decPtr("18"),
		},
		Category: &models.Category{
			TaxApplicable: true,
			TaxPercentage: decPtr("10"),
		},
	}

	// The subcategory pair is non-null, so it short-circuits to zero and the
	// category rate never applies.
	if got := EffectiveTaxRate(item); !got.IsZero() {
		t.Fatalf("expected deliberate zero, got %s", got)
	}
}

func TestEffectiveTaxRateFallsThroughNullPairs(t *testing.T) {
	item := &models.MenuItem{
		TaxApplicable: boolPtr(true), // percentage null, pair incomplete
		Subcategory: &models.Subcategory{
			TaxPercentage: decPtr("5"), // applicable null, pair incomplete
		},
		Category: &models.Category{
			TaxApplicable: true,
			TaxPercentage: decPtr("7.5"),
		},
	}

	if got := EffectiveTaxRate(item); !got.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("expected category rate 7.5, got %s", got)
	}
}

func TestEffectiveTaxRateCategoryNeedsTruthyRate(t *testing.T) {
	item := &models.MenuItem{
		Category: &models.Category{
			TaxApplicable: true,
			TaxPercentage: decPtr("0"),
		},
	}
	if got := EffectiveTaxRate(item); !got.IsZero() {
		t.Fatalf("expected zero for zero category rate, got %s", got)
	}

	item.Category.TaxPercentage = nil
	if got := EffectiveTaxRate(item); !got.IsZero() {
		t.Fatalf("expected zero for null category rate, got %s", got)
	}

	item.Category = nil
	item.Subcategory = nil
	if got := EffectiveTaxRate(item); !got.IsZero() {
		t.Fatalf("expected default zero, got %s", got)
	}
}
