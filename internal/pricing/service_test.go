package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mesabook/mesabook-backend/pkg/db/models"
	"github.com/mesabook/mesabook-backend/pkg/enums"
	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
	"github.com/mesabook/mesabook-backend/pkg/metrics"
)

type stubItemLoader struct {
	item *models.MenuItem
	err  error
}

func (s *stubItemLoader) HydratedItem(_ context.Context, _ uuid.UUID) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func TestPriceItemFiltersUnknownAddons(t *testing.T) {
	known := uuid.New()
	price := dec("500")
	item := &models.MenuItem{
		ID:          uuid.New(),
		Name:        "Banquet Hall",
		PricingType: enums.PricingTypeStatic,
		StaticPrice: &price,
		Addons: []models.Addon{
			{ID: known, Name: "Decor", Price: dec("75")},
			{ID: uuid.New(), Name: "Valet", Price: dec("120")},
		},
	}

	svc, err := NewService(&stubItemLoader{item: item}, metrics.NewEngineMetrics(nil))
	require.NoError(t, err)

	quote, err := svc.PriceItem(context.Background(), item.ID, 1, []uuid.UUID{known, uuid.New()})
	require.NoError(t, err)
	require.Equal(t, item.Name, quote.ItemName)
	require.Equal(t, "static", quote.PricingType)
	require.True(t, quote.Breakdown.AddonsTotal.Equal(dec("75")), "unknown addon must be ignored, got %s", quote.Breakdown.AddonsTotal)
	require.True(t, quote.Breakdown.GrandTotal.Equal(dec("575")))
}

func TestPriceItemPropagatesNotFound(t *testing.T) {
	loader := &stubItemLoader{err: pkgerrors.New(pkgerrors.CodeNotFound, "item not found")}
	svc, err := NewService(loader, nil)
	require.NoError(t, err)

	_, err = svc.PriceItem(context.Background(), uuid.New(), 1, nil)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestPriceItemRejectsNegativeHours(t *testing.T) {
	svc, err := NewService(&stubItemLoader{item: &models.MenuItem{}}, nil)
	require.NoError(t, err)

	_, err = svc.PriceItem(context.Background(), uuid.New(), -2, nil)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestNewServiceRequiresLoader(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}
