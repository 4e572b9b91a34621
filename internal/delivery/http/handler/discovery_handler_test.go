package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/delivery/http/handler"
	"github.com/ecoleta-discovery/internal/domain"
	apperrors "github.com/ecoleta-discovery/internal/pkg/errors"
	"github.com/ecoleta-discovery/internal/usecase/dto"
)

func discoveryApp(session handler.DiscoverySession) *fiber.App {
	h := handler.NewDiscoveryHandler(session, zap.NewNop())

	app := fiber.New()
	app.Get("/discovery", h.GetViewModel)
	app.Get("/discovery/markers", h.GetMarkers)
	app.Post("/discovery/categories/:id/toggle", h.ToggleCategory)
	app.Post("/discovery/retry/location", h.RetryLocation)
	app.Post("/discovery/retry/catalog", h.RetryCatalog)
	return app
}

func sampleViewModel() domain.DiscoveryViewModel {
	return domain.DiscoveryViewModel{
		SessionID: "session-1",
		Categories: []domain.Category{
			{ID: 1, Title: "Lâmpadas", ImageURL: "http://localhost:3333/uploads/lampadas.svg"},
			{ID: 2, Title: "Pilhas e Baterias", ImageURL: "http://localhost:3333/uploads/baterias.svg"},
		},
		Selection: []int64{2},
		Position:  domain.ResolvedPosition(-8.28, -35.97),
		Points: []domain.CollectionPoint{
			{ID: 7, Name: "Ponto Centro", Latitude: -8.283, Longitude: -35.975},
		},
	}
}

type envelope struct {
	Data struct {
		SessionID  string `json:"session_id"`
		Categories []struct {
			ID       int64 `json:"id"`
			Selected bool  `json:"selected"`
		} `json:"categories"`
		Selection []int64                  `json:"selection"`
		Points    []domain.CollectionPoint `json:"points"`
		Position  domain.GeoPosition       `json:"position"`
	} `json:"data"`
	Meta struct {
		Total     int    `json:"total"`
		SessionID string `json:"session_id"`
	} `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, target string) (int, envelope, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env, body
}

func TestDiscoveryHandler_GetViewModel(t *testing.T) {
	app := discoveryApp(newFakeSession(sampleViewModel()))

	status, env, _ := do(t, app, http.MethodGet, "/discovery")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "session-1", env.Data.SessionID)
	require.Len(t, env.Data.Categories, 2)
	assert.False(t, env.Data.Categories[0].Selected)
	assert.True(t, env.Data.Categories[1].Selected)
	assert.Equal(t, []int64{2}, env.Data.Selection)
	assert.Equal(t, domain.PositionResolved, env.Data.Position.Status)
	assert.Len(t, env.Data.Points, 1)
	assert.Equal(t, 1, env.Meta.Total)
	assert.Equal(t, "session-1", env.Meta.SessionID)
}

func TestDiscoveryHandler_ToggleCategory(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		session := newFakeSession(sampleViewModel())
		app := discoveryApp(session)

		status, env, _ := do(t, app, http.MethodPost, "/discovery/categories/1/toggle")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, []int64{1}, session.toggled)
		assert.Equal(t, []int64{1, 2}, env.Data.Selection)
	})

	cases := []struct {
		name string
		id   string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := newFakeSession(sampleViewModel())
			app := discoveryApp(session)

			status, env, _ := do(t, app, http.MethodPost, "/discovery/categories/"+tc.id+"/toggle")

			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_CATEGORY_ID", env.Error.Code)
			assert.Empty(t, session.toggled)
		})
	}
}

func TestDiscoveryHandler_Retry(t *testing.T) {
	session := newFakeSession(sampleViewModel())
	app := discoveryApp(session)

	status, _, _ := do(t, app, http.MethodPost, "/discovery/retry/location")
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = do(t, app, http.MethodPost, "/discovery/retry/catalog")
	assert.Equal(t, http.StatusOK, status)

	assert.Equal(t, 1, session.retries["location"])
	assert.Equal(t, 1, session.retries["catalog"])
}

func TestDiscoveryHandler_StoppedSession(t *testing.T) {
	session := newFakeSession(sampleViewModel())
	session.syncErr = apperrors.ErrControllerStopped
	app := discoveryApp(session)

	status, env, _ := do(t, app, http.MethodPost, "/discovery/retry/catalog")

	assert.Equal(t, http.StatusServiceUnavailable, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONTROLLER_STOPPED", env.Error.Code)
}

func TestDiscoveryHandler_GetMarkers(t *testing.T) {
	app := discoveryApp(newFakeSession(sampleViewModel()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/discovery/markers", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/geo+json")

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, dto.KindPoint, fc.Features[0].Properties["kind"])
	assert.Equal(t, dto.KindDevice, fc.Features[1].Properties["kind"])
}
