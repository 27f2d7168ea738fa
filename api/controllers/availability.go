package controllers

import (
	"net/http"
	"strings"

	"github.com/mesabook/mesabook-backend/api/responses"
	availabilitysvc "github.com/mesabook/mesabook-backend/internal/availability"
	"github.com/mesabook/mesabook-backend/pkg/logger"
)

// GetItemAvailability answers which slots are free for an item on a date.
func GetItemAvailability(svc availabilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseItemID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// The service validates the date so missing and malformed values get
		// the same error shape on every path.
		date := strings.TrimSpace(r.URL.Query().Get("date"))
		day, err := svc.ItemAvailability(r.Context(), itemID, date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, day)
	}
}
