package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"volunteer-hub/app/domain"
)

// minimum secret length for HS256 signing
const minSecretLength = 32

// TokenConfig holds session cookie token configuration.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// sessionClaims represents the JWT claims carried by the session cookie.
// The role claim is server-issued from the upstream login response; the
// client never supplies it.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session cookie values.
// Implements port.TokenIssuer.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer creates a new token issuer, rejecting weak secrets.
func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, domain.ErrSecretTooWeak
	}
	return &TokenIssuer{cfg: cfg}, nil
}

// Issue generates a signed JWT bound to the session and its identity.
func (t *TokenIssuer) Issue(session *domain.Session) (string, error) {
	if !session.IsValid() {
		return "", domain.ErrTokenGeneration
	}

	now := time.Now()
	claims := sessionClaims{
		Email: session.Identity.Email,
		Role:  string(session.Identity.Role),
		Sid:   session.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			Subject:   fmt.Sprintf("%d", session.Identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a presented cookie value and
// returns the session ID and role claims.
func (t *TokenIssuer) Verify(signed string) (string, domain.Role, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(t.cfg.Secret), nil
	},
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithAudience(t.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", "", fmt.Errorf("%w: %w", domain.ErrTokenInvalid, err)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return "", "", fmt.Errorf("%w: bad role claim", domain.ErrTokenInvalid)
	}
	if claims.Sid == "" {
		return "", "", fmt.Errorf("%w: missing sid claim", domain.ErrTokenInvalid)
	}

	return claims.Sid, role, nil
}
