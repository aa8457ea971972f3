package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/internal/identity"
	"agencyportal/internal/logger"
	"agencyportal/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundaryDeps struct {
	store    docstore.Store
	tokens   *identity.TokenManager
	provider identity.Provider
	grants   repositories.AdminGrantRepository
}

func boundaryFixture(t *testing.T) (*gin.Engine, boundaryDeps) {
	t.Helper()
	logger.Init("test")
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	tokens := identity.NewTokenManager("test-secret", time.Minute)
	provider := identity.NewStoreProvider(store, tokens, time.Hour, identity.FederatedConfig{})
	grants := repositories.NewAdminGrantRepository(store)
	gate := identity.NewGate(store)

	r := gin.New()
	admin := r.Group("/admin", AuthMiddleware(tokens), AdminBoundary(gate, "/login"))
	admin.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, boundaryDeps{store: store, tokens: tokens, provider: provider, grants: grants}
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminBoundary_AnonymousRejected(t *testing.T) {
	r, _ := boundaryFixture(t)

	w := get(r, "/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminBoundary_UngrantedIdentityRedirected(t *testing.T) {
	r, deps := boundaryFixture(t)

	sess, err := deps.provider.Register(context.Background(), "user@example.com", "hunter22", "User")
	require.NoError(t, err)

	w := get(r, "/admin/dashboard", sess.AccessToken)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdminBoundary_GrantedIdentityPasses(t *testing.T) {
	r, deps := boundaryFixture(t)
	ctx := context.Background()

	sess, err := deps.provider.Register(ctx, "boss@example.com", "hunter22", "Boss")
	require.NoError(t, err)
	_, err = deps.grants.Grant(ctx, "boss@example.com")
	require.NoError(t, err)

	w := get(r, "/admin/dashboard", sess.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminBoundary_NoCachingAcrossEntries(t *testing.T) {
	r, deps := boundaryFixture(t)
	ctx := context.Background()

	sess, err := deps.provider.Register(ctx, "boss@example.com", "hunter22", "Boss")
	require.NoError(t, err)
	_, err = deps.grants.Grant(ctx, "boss@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/admin/dashboard", sess.AccessToken).Code)

	// Revoking the grant takes effect on the very next entry.
	records, err := deps.store.List(ctx, docstore.CollectionAdmins, docstore.Query{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NoError(t, deps.store.Delete(ctx, docstore.CollectionAdmins, records[0].ID))

	assert.Equal(t, http.StatusSeeOther, get(r, "/admin/dashboard", sess.AccessToken).Code)
}

func TestAdminBoundary_ExpiredTokenRejected(t *testing.T) {
	r, _ := boundaryFixture(t)

	expired := identity.NewTokenManager("test-secret", -time.Minute)
	token, err := expired.Generate(identity.Identity{ID: "x", Email: "boss@example.com"})
	require.NoError(t, err)

	w := get(r, "/admin/dashboard", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
