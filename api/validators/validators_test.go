package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/mesabook/mesabook-backend/pkg/errors"
)

type samplePayload struct {
	ItemID string  `json:"item_id" validate:"required,uuid"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Hours  int     `json:"hours" validate:"omitempty,min=1"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	body := `{"item_id":"` + uuid.NewString() + `","hours":2}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var payload samplePayload
	require.NoError(t, DecodeJSONBody(req, &payload))
	require.Equal(t, 2, payload.Hours)
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"item_id":`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	body := `{"item_id":"` + uuid.NewString() + `","surprise":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDecodeJSONBodyReportsFieldsByJSONTag(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"item_id":"nope","email":"not-an-email"}`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	require.Equal(t, "must be a valid uuid", details["item_id"])
	require.Equal(t, "must be a valid email", details["email"])
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?hours=3", nil)
	got, err := ParseQueryInt(req, "hours", 1, 1, 24)
	require.NoError(t, err)
	require.Equal(t, 3, got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	got, err = ParseQueryInt(req, "hours", 1, 1, 24)
	require.NoError(t, err)
	require.Equal(t, 1, got, "absent parameter yields default")

	req = httptest.NewRequest(http.MethodGet, "/?hours=abc", nil)
	_, err = ParseQueryInt(req, "hours", 1, 1, 24)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	req = httptest.NewRequest(http.MethodGet, "/?hours=25", nil)
	_, err = ParseQueryInt(req, "hours", 1, 1, 24)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseQueryDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?date=2024-06-01", nil)
	raw, day, err := ParseQueryDate(req, "date")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", raw)
	require.Equal(t, 2024, day.Year())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err = ParseQueryDate(req, "date")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	req = httptest.NewRequest(http.MethodGet, "/?date=01-06-2024", nil)
	_, _, err = ParseQueryDate(req, "date")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseQueryUUID(t *testing.T) {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/?category_id="+id.String(), nil)
	got, err := ParseQueryUUID(req, "category_id")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, id, *got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	got, err = ParseQueryUUID(req, "category_id")
	require.NoError(t, err)
	require.Nil(t, got)

	req = httptest.NewRequest(http.MethodGet, "/?category_id=nope", nil)
	_, err = ParseQueryUUID(req, "category_id")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseQueryUUIDList(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/?addons="+a.String()+",,"+b.String(), nil)
	got, err := ParseQueryUUIDList(req, "addons")
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{a, b}, got, "empty parts are skipped")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	got, err = ParseQueryUUIDList(req, "addons")
	require.NoError(t, err)
	require.Nil(t, got)

	req = httptest.NewRequest(http.MethodGet, "/?addons="+a.String()+",broken", nil)
	_, err = ParseQueryUUIDList(req, "addons")
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
