package identity

import (
	"context"

	"agencyportal/internal/docstore"
	"agencyportal/internal/logger"
)

// Gate decides whether a caller may reach administrative functionality.
// The sole privilege signal is a document in the admins collection whose
// email matches the identity's email.
type Gate struct {
	store docstore.Store
}

func NewGate(store docstore.Store) *Gate {
	return &Gate{store: store}
}

// IsPrivileged reports whether ident holds an admin grant. It never fails:
// a missing identity or a store error yields false, with the failure
// logged. Callers invoke it once per protected-route entry and must not
// persist the result, so grants changing between sessions take effect.
func (g *Gate) IsPrivileged(ctx context.Context, ident *Identity) bool {
	if ident == nil {
		return false
	}

	records, err := g.store.List(ctx, docstore.CollectionAdmins,
		docstore.Query{}.Where("email", docstore.OpEqual, ident.Email))
	if err != nil {
		logger.WithError(err).Error("admin grant lookup failed", "email", ident.Email)
		return false
	}
	return len(records) > 0
}
