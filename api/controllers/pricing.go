package controllers

import (
	"net/http"

	"github.com/mesabook/mesabook-backend/api/responses"
	"github.com/mesabook/mesabook-backend/api/validators"
	pricingsvc "github.com/mesabook/mesabook-backend/internal/pricing"
	"github.com/mesabook/mesabook-backend/pkg/logger"
)

const maxQuoteHours = 24

// GetItemPrice resolves the price breakdown for an item.
func GetItemPrice(svc pricingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseItemID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		hours, err := validators.ParseQueryInt(r, "hours", 1, 1, maxQuoteHours)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		addonIDs, err := validators.ParseQueryUUIDList(r, "addons")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.PriceItem(r.Context(), itemID, hours, addonIDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}
