package contextkeys

// Custom key type to avoid collisions with other packages' context values.
type contextKey string

// IdentityContextKey holds the authenticated *identity.Identity for the
// current request. The identity is threaded explicitly through context to
// every repository call that needs it, never read from global state.
const IdentityContextKey = contextKey("identity")

// RequestIDContextKey holds the request id assigned by the logging middleware.
const RequestIDContextKey = contextKey("request_id")
