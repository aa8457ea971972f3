package identity

import "context"

// Identity is an authenticated caller's stable id, email and display name.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Session is the result of a successful sign-in.
type Session struct {
	Identity     Identity `json:"identity"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// ProfileUpdate names the identity-record fields a caller may change.
type ProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
}

// Listener receives the current identity on every change: the signed-in
// identity after sign-in or profile update, nil after sign-out.
type Listener func(ident *Identity)

// Provider is the identity provider boundary. It authenticates callers and
// owns their account records; domain privilege is decided separately by the
// Gate against the admins collection.
type Provider interface {
	Register(ctx context.Context, email, password, displayName string) (*Session, error)
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	AuthenticateFederated(ctx context.Context, assertion string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, refreshToken string) error
	GetIdentity(ctx context.Context, id string) (*Identity, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Identity, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	OnIdentityChange(l Listener)
}
