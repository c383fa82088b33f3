// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/mock"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCookie = "encryptedjwt"

type testMocks struct {
	auth    *mock.MockAuthService
	vault   *mock.MockVaultService
	profile *mock.MockProfileService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler on gomock services.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		vault:   mock.NewMockVaultService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		VaultService:   m.vault,
		ProfileService: m.profile,
		AppInfoService: m.appInfo,
	}
	return NewHandler(services, Settings{CookieName: testCookie}, logger.Nop()), m
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Message
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestNewHandler_DefaultCookieName(t *testing.T) {
	h := NewHandler(&service.Services{}, Settings{}, logger.Nop())

	assert.Equal(t, config.DefaultCookieName, h.settings.CookieName)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{CookieName: "sid", CookieInsecure: true},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	assert.Equal(t, Settings{CookieName: "sid", CookieInsecure: true, RequestTimeout: 5 * time.Second}, SettingsFromConfig(cfg))
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nope"},
		{name: "wrong method on register", method: http.MethodGet, path: "/register"},
		{name: "wrong method on delete", method: http.MethodDelete, path: "/vault/items/delete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not found", decodeMessage(t, rec))
		})
	}
}

func TestInit_ProtectedRoutesRequireCookie(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/vault/items"},
		{http.MethodGet, "/vault/items"},
		{http.MethodGet, "/vault/items/7"},
		{http.MethodGet, "/vault/items/note?ref=abc"},
		{http.MethodGet, "/vault/items/password?ref=abc"},
		{http.MethodPost, "/vault/items/delete"},
		{http.MethodGet, "/profile"},
		{http.MethodDelete, "/profile"},
		{http.MethodPost, "/profile/password"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "authentication failed", decodeMessage(t, rec))
		})
	}
}
