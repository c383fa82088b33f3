// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoBody(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Write(body)
}

func TestGZip(t *testing.T) {
	payload := strings.Repeat(`{"message":"note decrypted"}`, 50)

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(http.HandlerFunc(echoBody)).ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		gr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(gr)
		require.NoError(t, err)
		assert.Equal(t, payload, string(got))
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		withGZip(http.HandlerFunc(echoBody)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload)))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("inflates gzip request", func(t *testing.T) {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		_, err := gw.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, gw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(http.HandlerFunc(echoBody)).ServeHTTP(rec, req)

		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("rejects broken gzip request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(http.HandlerFunc(echoBody)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status only response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestWithTraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, Settings{}, logger.Nop())
	known := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated", incoming: ""},
		{name: "echoed", incoming: known, wantSame: true},
		{name: "garbage replaced", incoming: "x\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tt.wantSame {
				assert.Equal(t, known, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
			assert.True(t, called)
		})
	}
}

func TestWithLogging_OmitsQueryString(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, Settings{}, logger.NewLogger("test", logger.WithOutput(&buf)))

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("abc"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vault/items/note?ref=SECRETREF", nil))

	line := buf.String()
	assert.Contains(t, line, `"path":"/vault/items/note"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":3`)
	assert.Contains(t, line, `"trace_id"`)
	assert.NotContains(t, line, "SECRETREF")
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello"))
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status, "implicit 200 is kept")
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}
