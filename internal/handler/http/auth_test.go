// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	req := models.RegisterRequest{Email: "a@b.com", Password: "Str0ngPass!1", Name: "Alice"}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "conflict", serviceErr: fmt.Errorf("%w: taken", service.ErrConflict), wantStatus: http.StatusConflict, wantMsg: "conflict"},
		{name: "validation", serviceErr: fmt.Errorf("%w: weak", service.ErrValidation), wantStatus: http.StatusBadRequest, wantMsg: "invalid request"},
		{name: "internal", serviceErr: fmt.Errorf("%w: db down", service.ErrInternal), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	t.Run("success", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Register(gomock.Any(), req).Return("otpauth://totp/SatuPassword:Alice?issuer=SatuPassword&secret=ABC", nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, req)))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.RegisterResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, strings.HasPrefix(resp.OTPURL, "otpauth://totp/"))
		assert.Nil(t, sessionCookie(rec), "registration does not log in")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Register(gomock.Any(), req).Return("", tt.serviceErr)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, req)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.NotContains(t, body, "db down")
			assert.NotContains(t, body, "weak")
			var resp models.MessageResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request", decodeMessage(t, rec))
	})
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	h, m := newTestHandler(t)
	expires := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"}).
		Return(models.Session{Token: "sealed-token", ExpiresAt: expires}, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged in", decodeMessage(t, rec))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "sealed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.Expires.Equal(expires))
	assert.Positive(t, cookie.MaxAge)
}

func TestLogin_InsecureCookieForLocalRuns(t *testing.T) {
	h, m := newTestHandler(t)
	h.settings.CookieInsecure = true
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{Token: "t", ExpiresAt: time.Now().Add(time.Minute)}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, models.LoginRequest{Email: "a@b.com", Password: "x"})))

	require.NotNil(t, sessionCookie(rec))
	assert.False(t, sessionCookie(rec).Secure)
}

// Wrong password and a corrupted wrapped key must be indistinguishable.
func TestLogin_FailuresLookTheSame(t *testing.T) {
	causes := []error{
		fmt.Errorf("%w: wrong password", service.ErrAuthentication),
		fmt.Errorf("%w: %w", service.ErrAuthentication, crypto.ErrIntegrity),
		fmt.Errorf("%w: unknown email", service.ErrAuthentication),
	}

	var bodies []string
	for _, cause := range causes {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, cause)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, models.LoginRequest{Email: "a@b.com", Password: "x"})))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sessionCookie(rec))
		bodies = append(bodies, rec.Body.String())
	}

	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
