package common

// Persisted storage keys for the current session. The three entries are
// written and cleared together: the access token and user must be present
// or absent as a pair.
const (
	StorageKeyAccessToken  = "access_token"
	StorageKeyRefreshToken = "refresh_token"
	StorageKeyUser         = "user"
)

// AuthorizationHeader carries the bearer access token on authenticated calls.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries a client-generated id for request correlation.
const RequestIDHeader = "X-Request-Id"

// Navigation routes handed to the Router collaborator.
const (
	RouteHome  = "/home"
	RouteLogin = "/login"
)
