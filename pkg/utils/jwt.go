package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InstallerClaims are the claims embedded in an issued token. The branch
// claim is the sole authorization scope for inventory operations.
type InstallerClaims struct {
	Number string `json:"Int_number"`
	Code   string `json:"Int_code"`
	Role   string `json:"role"`
	Branch string `json:"branch"`
	jwt.RegisteredClaims
}

// TokenConfig carries the externally configured signing parameters.
type TokenConfig struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

// GenerateToken issues a compact HS256 token for the given installer
// identity tuple, expiring ExpiryMinutes from now.
func GenerateToken(number, code, role, branch string, cfg TokenConfig) (string, error) {
	now := time.Now()
	claims := InstallerClaims{
		Number: number,
		Code:   code,
		Role:   role,
		Branch: branch,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpiryMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies signature, issuer, audience and lifetime, and
// returns the embedded claims.
func ValidateToken(tokenString string, cfg TokenConfig) (*InstallerClaims, error) {
	claims := &InstallerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}
