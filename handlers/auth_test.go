package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vitrine/auth"
	"vitrine/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) (*gin.Engine, *fakeProjectStore, *fakeAssetStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	journal := &[]string{}
	store := newFakeStore(journal)
	assets := newFakeAssets(journal)

	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	creds := auth.Credentials{Email: "admin@example.com", Password: "hunter2!"}

	r := gin.New()
	r.POST("/api/admin/login", Login(creds, tokens))
	r.POST("/api/projects", middleware.AuthRequired(tokens), CreateProject(store, assets))
	return r, store, assets
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _, _ := newAuthEnv(t)

	w := login(t, r, "admin@example.com", "hunter2!")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _, _ := newAuthEnv(t)

	w := login(t, r, "admin@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	r, _, _ := newAuthEnv(t)

	w := login(t, r, "admin@example.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProject_RequiresAuth(t *testing.T) {
	r, store, assets := newAuthEnv(t)

	body, contentType := multipartBody(t, map[string]string{"title": "Site"}, []byte("x"), "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.projects, "no record without auth")
	assert.Zero(t, assets.uploads, "no upload without auth")
}

func TestLogin_TokenAcceptedByGate(t *testing.T) {
	r, store, _ := newAuthEnv(t)

	w := login(t, r, "admin@example.com", "hunter2!")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	body, contentType := multipartBody(t, map[string]string{"title": "Site"}, []byte("x"), "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, store.projects, 1)
}
