package identity

import (
	"context"
	"testing"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *StoreProvider {
	return NewStoreProvider(
		docstore.NewMemoryStore(),
		NewTokenManager("test-secret", time.Hour),
		24*time.Hour,
		FederatedConfig{Issuer: "federation.test", Secret: "fed-secret"},
	)
}

func TestRegister_WeakPasswordRejectedBeforeCreate(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Register(ctx, "new@test.com", "short", "New User")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// No account was created by the failed registration.
	_, err = p.Authenticate(ctx, "new@test.com", "short")
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Register(ctx, "dup@test.com", "password1", "First")
	require.NoError(t, err)

	_, err = p.Register(ctx, "dup@test.com", "password2", "Second")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Register(ctx, "user@test.com", "secret123", "User")
	require.NoError(t, err)

	sess, err := p.Authenticate(ctx, "user@test.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user@test.com", sess.Identity.Email)
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)

	_, err = p.Authenticate(ctx, "user@test.com", "wrong")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	_, err = p.Authenticate(ctx, "nobody@test.com", "secret123")
	assert.Error(t, err)
}

func TestRefresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	sess, err := p.Register(ctx, "user@test.com", "secret123", "User")
	require.NoError(t, err)

	next, err := p.Refresh(ctx, sess.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, sess.RefreshToken, next.RefreshToken)

	// The presented token is spent.
	_, err = p.Refresh(ctx, sess.RefreshToken)
	assert.Error(t, err)
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	sess, err := p.Register(ctx, "user@test.com", "secret123", "User")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(ctx, sess.RefreshToken))
	_, err = p.Refresh(ctx, sess.RefreshToken)
	assert.Error(t, err)

	// Signing out an already-invalidated session is not an error.
	require.NoError(t, p.SignOut(ctx, sess.RefreshToken))
}

func TestAuthenticateFederated_ProvisionsAccount(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	claims := jwt.MapClaims{
		"iss":   "federation.test",
		"email": "fed@test.com",
		"name":  "Federated User",
		"exp":   time.Now().Add(time.Minute).Unix(),
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("fed-secret"))
	require.NoError(t, err)

	sess, err := p.AuthenticateFederated(ctx, assertion)
	require.NoError(t, err)
	assert.Equal(t, "fed@test.com", sess.Identity.Email)
	assert.Equal(t, "Federated User", sess.Identity.DisplayName)

	// Second sign-in reuses the provisioned account.
	again, err := p.AuthenticateFederated(ctx, assertion)
	require.NoError(t, err)
	assert.Equal(t, sess.Identity.ID, again.Identity.ID)

	// Federated accounts have no password sign-in.
	_, err = p.Authenticate(ctx, "fed@test.com", "anything")
	assert.Error(t, err)
}

func TestAuthenticateFederated_RejectsBadSignature(t *testing.T) {
	p := newTestProvider()

	claims := jwt.MapClaims{
		"iss":   "federation.test",
		"email": "fed@test.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = p.AuthenticateFederated(context.Background(), assertion)
	assert.Error(t, err)
}

func TestUpdateProfile_NotifiesListeners(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	sess, err := p.Register(ctx, "user@test.com", "secret123", "Old Name")
	require.NoError(t, err)

	var seen []*Identity
	p.OnIdentityChange(func(ident *Identity) {
		seen = append(seen, ident)
	})

	name := "New Name"
	ident, err := p.UpdateProfile(ctx, sess.Identity.ID, ProfileUpdate{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", ident.DisplayName)

	require.Len(t, seen, 1)
	assert.Equal(t, "New Name", seen[0].DisplayName)

	require.NoError(t, p.SignOut(ctx, sess.RefreshToken))
	require.Len(t, seen, 2)
	assert.Nil(t, seen[1], "sign-out delivers nil identity")
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	sess, err := p.Register(ctx, "user@test.com", "secret123", "User")
	require.NoError(t, err)

	err = p.ChangePassword(ctx, sess.Identity.ID, "wrong", "newsecret")
	assert.Error(t, err)

	require.NoError(t, p.ChangePassword(ctx, sess.Identity.ID, "secret123", "newsecret"))

	_, err = p.Authenticate(ctx, "user@test.com", "secret123")
	assert.Error(t, err)
	_, err = p.Authenticate(ctx, "user@test.com", "newsecret")
	assert.NoError(t, err)
}

func TestTokenManager_Expiry(t *testing.T) {
	tm := NewTokenManager("s", -time.Minute)
	token, err := tm.Generate(Identity{ID: "1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTokenExpired, appErr.Code)
}
