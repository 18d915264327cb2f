package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sparmeets/portfolio-backend/internal/auth"
	"github.com/sparmeets/portfolio-backend/internal/portfolio"
	"github.com/sparmeets/portfolio-backend/internal/visits"
)

const testPassword = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *portfolio.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := portfolio.NewStore(filepath.Join(dir, "portfolio-data.json"))
	require.NoError(t, store.Init())
	gate := auth.NewGate(testPassword)

	r := gin.New()
	setupPortfolioRoutes(r, store, gate)
	setupAuthRoutes(r, gate)
	setupVisitRoutes(r, visits.NewCounter(filepath.Join(dir, "visit-count.json")))
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
