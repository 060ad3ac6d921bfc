package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyClaims ctxKey = "claims"
)

// UserIDFromContext returns the authenticated caller id injected by
// AuthnMiddleware, or empty when the request is unauthenticated. Handlers
// pass it onward as an explicit argument; nothing below the HTTP layer reads
// request context for identity.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
