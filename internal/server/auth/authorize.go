package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
)

// AnyRole accepts every authenticated identity regardless of role.
const AnyRole = "any"

type ctxKey string

const claimsKey ctxKey = "claims"

// Authorize runs the bearer gate for one request.
//
// A missing header, a scheme other than Bearer or an empty token give
// common.ErrAuthorizationMissing. A token that fails VerifyToken gives its
// error. A valid token whose role differs from requiredRole gives
// common.ErrorForbidden, unless requiredRole is AnyRole.
func Authorize(header string, requiredRole string, secret []byte) (*Claims, error) {
	token, ok := bearerToken(header)
	if !ok {
		return nil, common.ErrAuthorizationMissing
	}

	claims, err := VerifyToken(token, secret)
	if err != nil {
		return nil, err
	}

	if requiredRole != AnyRole && claims.Role != requiredRole {
		return nil, common.ErrorForbidden
	}

	return claims, nil
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(common.BearerPrefix) || !strings.EqualFold(header[:len(common.BearerPrefix)], common.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(common.BearerPrefix):])
	return token, token != ""
}

// WithClaims returns a copy of ctx carrying the authenticated identity.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromContext returns the identity stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}
