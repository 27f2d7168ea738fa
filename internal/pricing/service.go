package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/metrics"
)

// Service exposes price resolution for catalog items.
type Service interface {
	PriceItem(ctx context.Context, itemID uuid.UUID, hours int, addonIDs []uuid.UUID) (*ItemQuote, error)
}

// ItemQuote pairs the breakdown with the item identity callers display.
type ItemQuote struct {
	ItemID      uuid.UUID      `json:"item_id"`
	ItemName    string         `json:"item_name"`
	PricingType string         `json:"pricing_type"`
	Breakdown   PriceBreakdown `json:"breakdown"`
}

type itemLoader interface {
	HydratedItem(ctx context.Context, itemID uuid.UUID) (*models.MenuItem, error)
}

type service struct {
	items   itemLoader
	metrics *metrics.EngineMetrics
	now     func() time.Time
}

// NewService constructs a pricing service instance.
func NewService(items itemLoader, engineMetrics *metrics.EngineMetrics) (Service, error) {
	if items == nil {
		return nil, fmt.Errorf("item loader required")
	}
	return &service{
		items:   items,
		metrics: engineMetrics,
		now:     time.Now,
	}, nil
}

// PriceItem loads the hydrated item and resolves its breakdown. Addon ids
// that do not belong to the item are dropped, matching the storefront which
// only ever submits ids it rendered.
func (s *service) PriceItem(ctx context.Context, itemID uuid.UUID, hours int, addonIDs []uuid.UUID) (*ItemQuote, error) {
	if hours < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "hours must not be negative")
	}

	started := s.now()
	item, err := s.items.HydratedItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	breakdown := Quote(item, QuoteInput{
		Hours:  hours,
		Addons: selectAddons(item.Addons, addonIDs),
		Now:    s.now(),
	})
	s.metrics.ObservePricing(item.PricingType.String(), s.now().Sub(started))

	return &ItemQuote{
		ItemID:      item.ID,
		ItemName:    item.Name,
		PricingType: item.PricingType.String(),
		Breakdown:   breakdown,
	}, nil
}

func selectAddons(available []models.Addon, requested []uuid.UUID) []models.Addon {
	if len(requested) == 0 {
		return nil
	}
	wanted := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}
	var selected []models.Addon
	for _, addon := range available {
		if _, ok := wanted[addon.ID]; ok {
			selected = append(selected, addon)
		}
	}
	return selected
}
