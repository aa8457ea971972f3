package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/internal/identity"
	"agencyportal/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture(t *testing.T) (*gin.Engine, *docstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	tokens := identity.NewTokenManager("test-secret", time.Minute)
	provider := identity.NewStoreProvider(store, tokens, time.Hour, identity.FederatedConfig{})
	h := NewAuthHandler(NewBaseHandler(validator.New()), provider)

	r := gin.New()
	r.POST("/register", h.Register)
	return r, store
}

func postJSON(r *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_MismatchedConfirmationRejectedBeforeCreate(t *testing.T) {
	r, store := authFixture(t)

	w := postJSON(r, "/register", map[string]string{
		"email":           "kira@example.com",
		"password":        "hunter22",
		"confirmPassword": "different",
		"displayName":     "Kira",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The rejection happens at the boundary: no account document exists.
	records, err := store.List(context.Background(), "accounts", docstore.Query{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRegister_CreatesAccountAndSession(t *testing.T) {
	r, store := authFixture(t)

	w := postJSON(r, "/register", map[string]string{
		"email":           "kira@example.com",
		"password":        "hunter22",
		"confirmPassword": "hunter22",
		"displayName":     "Kira",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "kira@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	records, err := store.List(context.Background(), "accounts", docstore.Query{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
