package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/internal/logger"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account collections are owned by the provider, separate from the domain
// collections in docstore.
const (
	collectionAccounts      = "accounts"
	collectionRefreshTokens = "refresh_tokens"
)

type accountRecord struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	DisplayName  string `json:"displayName"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Federated    bool   `json:"federated,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type refreshRecord struct {
	AccountID string `json:"accountId"`
	ExpiresAt string `json:"expiresAt"`
	CreatedAt string `json:"createdAt"`
}

// FederatedConfig describes the external federation endpoint whose signed
// assertions AuthenticateFederated accepts.
type FederatedConfig struct {
	Issuer string
	Secret string
}

// StoreProvider implements Provider over the document store.
type StoreProvider struct {
	store      docstore.Store
	tokens     *TokenManager
	refreshTTL time.Duration
	federated  FederatedConfig

	mu        sync.RWMutex
	listeners []Listener
}

func NewStoreProvider(store docstore.Store, tokens *TokenManager, refreshTTL time.Duration, federated FederatedConfig) *StoreProvider {
	return &StoreProvider{
		store:      store,
		tokens:     tokens,
		refreshTTL: refreshTTL,
		federated:  federated,
	}
}

func (p *StoreProvider) Register(ctx context.Context, email, password, displayName string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	if _, _, err := p.findByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rec := accountRecord{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    models.NowISO(),
	}
	doc, err := docstore.Encode(rec)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	id, err := p.store.Create(ctx, collectionAccounts, doc)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	return p.openSession(ctx, Identity{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
	})
}

func (p *StoreProvider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	id, rec, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if rec.PasswordHash == "" {
		// Federated-only account, no password sign-in.
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return p.openSession(ctx, identityFrom(id, rec))
}

// AuthenticateFederated verifies a signed assertion from the configured
// federation endpoint and provisions the account on first sign-in.
func (p *StoreProvider) AuthenticateFederated(ctx context.Context, assertion string) (*Session, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(assertion, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(p.federated.Secret), nil
	}, jwt.WithIssuer(p.federated.Issuer))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return nil, apperrors.ErrInvalidToken
	}
	email = strings.ToLower(email)

	id, rec, err := p.findByEmail(ctx, email)
	if err != nil {
		if !apperrors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrStoreUnavailable(err)
		}
		rec = accountRecord{
			Email:       email,
			DisplayName: name,
			Federated:   true,
			CreatedAt:   models.NowISO(),
		}
		doc, encErr := docstore.Encode(rec)
		if encErr != nil {
			return nil, apperrors.InternalError(encErr)
		}
		id, err = p.store.Create(ctx, collectionAccounts, doc)
		if err != nil {
			return nil, apperrors.ErrStoreUnavailable(err)
		}
	}

	return p.openSession(ctx, identityFrom(id, rec))
}

func (p *StoreProvider) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	rec, err := p.store.Get(ctx, collectionRefreshTokens, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	var rt refreshRecord
	if err := docstore.Decode(rec.Data, &rt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if rt.ExpiresAt < models.NowISO() {
		_ = p.store.Delete(ctx, collectionRefreshTokens, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	ident, err := p.GetIdentity(ctx, rt.AccountID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented token is spent.
	_ = p.store.Delete(ctx, collectionRefreshTokens, refreshToken)
	return p.openSession(ctx, *ident)
}

func (p *StoreProvider) SignOut(ctx context.Context, refreshToken string) error {
	err := p.store.Delete(ctx, collectionRefreshTokens, refreshToken)
	if err != nil && !apperrors.Is(err, docstore.ErrNotFound) {
		return apperrors.ErrStoreUnavailable(err)
	}
	p.notify(nil)
	return nil
}

func (p *StoreProvider) GetIdentity(ctx context.Context, id string) (*Identity, error) {
	rec, err := p.store.Get(ctx, collectionAccounts, id)
	if err != nil {
		if apperrors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	var acc accountRecord
	if err := docstore.Decode(rec.Data, &acc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	ident := identityFrom(id, acc)
	return &ident, nil
}

func (p *StoreProvider) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Identity, error) {
	partial := docstore.Document{}
	if upd.DisplayName != nil {
		partial["displayName"] = *upd.DisplayName
	}
	if upd.AvatarURL != nil {
		partial["avatarUrl"] = *upd.AvatarURL
	}
	if len(partial) == 0 {
		return p.GetIdentity(ctx, id)
	}

	if err := p.store.Update(ctx, collectionAccounts, id, partial); err != nil {
		if apperrors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	ident, err := p.GetIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	p.notify(ident)
	return ident, nil
}

func (p *StoreProvider) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperrors.ErrWeakPassword
	}

	rec, err := p.store.Get(ctx, collectionAccounts, id)
	if err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	var acc accountRecord
	if err := docstore.Decode(rec.Data, &acc); err != nil {
		return apperrors.InternalError(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(currentPassword)) != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := p.store.Update(ctx, collectionAccounts, id, docstore.Document{"passwordHash": string(hash)}); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (p *StoreProvider) OnIdentityChange(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *StoreProvider) notify(ident *Identity) {
	p.mu.RLock()
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.RUnlock()

	for _, l := range listeners {
		l(ident)
	}
}

func (p *StoreProvider) openSession(ctx context.Context, ident Identity) (*Session, error) {
	access, err := p.tokens.Generate(ident)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := uuid.NewString()
	rt := refreshRecord{
		AccountID: ident.ID,
		ExpiresAt: models.FormatISO(time.Now().Add(p.refreshTTL)),
		CreatedAt: models.NowISO(),
	}
	doc, err := docstore.Encode(rt)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := p.store.Set(ctx, collectionRefreshTokens, refresh, doc); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	p.notify(&ident)
	return &Session{
		Identity:     ident,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (p *StoreProvider) findByEmail(ctx context.Context, email string) (string, accountRecord, error) {
	records, err := p.store.List(ctx, collectionAccounts,
		docstore.Query{}.Where("email", docstore.OpEqual, email))
	if err != nil {
		logger.WithError(err).Warn("account lookup failed")
		return "", accountRecord{}, err
	}
	if len(records) == 0 {
		return "", accountRecord{}, docstore.ErrNotFound
	}

	var acc accountRecord
	if err := docstore.Decode(records[0].Data, &acc); err != nil {
		return "", accountRecord{}, err
	}
	return records[0].ID, acc, nil
}

func identityFrom(id string, rec accountRecord) Identity {
	return Identity{
		ID:          id,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		AvatarURL:   rec.AvatarURL,
	}
}
