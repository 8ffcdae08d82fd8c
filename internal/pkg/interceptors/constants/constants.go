package constants

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const (
	HeaderXRequestId      = "x-request-id"
	HeaderXIdempotencyKey = "x-idempotency-key"
	// HeaderXEmployee carries the name of the staff member acting, for the order log.
	HeaderXEmployee = "x-employee"

	// ContextKeyRequestID is the context key for the request ID.
	ContextKeyRequestID contextKey = HeaderXRequestId
	// ContextKeyIdempotencyKey is the context key for the idempotency key.
	ContextKeyIdempotencyKey contextKey = HeaderXIdempotencyKey
	ContextKeyEmployee       contextKey = HeaderXEmployee
)

// KeyFor returns the context key under which the value of a metadata header is stored.
func KeyFor(header string) any {
	return contextKey(header)
}
