// Package auth owns credentials and session tokens: bcrypt password
// hashes, HS256 JWT issue/verify, and the bearer/role gate used by the
// HTTP middleware.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// now is the clock used for iat/exp and for expiry checks.
var now = time.Now

// Claims is the identity carried by a session token. The registered
// claims contribute iat and exp (epoch seconds).
type Claims struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	jwt.RegisteredClaims
}

// IssueToken signs claims with secret using HS256, stamping iat with the
// current time and exp with iat+ttl. An empty secret is a configuration
// error and is reported before anything is signed.
func IssueToken(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", common.ErrMissingSecret
	}

	issuedAt := now()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns
// its claims. Expired tokens yield common.ErrTokenExpired; any other
// problem (bad signature, wrong algorithm, malformed input, missing exp)
// yields common.ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, common.ErrMissingSecret
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
