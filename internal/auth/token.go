package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints the opaque access token carried inside a session.
// The shell never inspects tokens it issued; the claim set exists for
// the backend API the token is eventually presented to.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs an HS256 token for the account: sub is the login email,
// role and user_id mirror the account record.
func (t *TokenIssuer) Issue(acct Account) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":     acct.Email,
		"role":    string(acct.Role),
		"user_id": acct.UserID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return signed, nil
}
