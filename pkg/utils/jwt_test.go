package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenConfig = TokenConfig{
	Secret:        "test-secret-key",
	Issuer:        "installer-track",
	Audience:      "installer-app",
	ExpiryMinutes: 60,
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("100", "A1", "installer", "NORTH", testTokenConfig)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testTokenConfig)
	require.NoError(t, err)

	assert.Equal(t, "100", claims.Number)
	assert.Equal(t, "A1", claims.Code)
	assert.Equal(t, "installer", claims.Role)
	assert.Equal(t, "NORTH", claims.Branch)
	assert.Equal(t, testTokenConfig.Issuer, claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("100", "A1", "installer", "NORTH", testTokenConfig)
	require.NoError(t, err)

	wrong := testTokenConfig
	wrong.Secret = "another-secret"
	_, err = ValidateToken(token, wrong)
	assert.Error(t, err)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	token, err := GenerateToken("100", "A1", "installer", "NORTH", testTokenConfig)
	require.NoError(t, err)

	wrong := testTokenConfig
	wrong.Issuer = "someone-else"
	_, err = ValidateToken(token, wrong)
	assert.Error(t, err)
}

func TestValidateTokenWrongAudience(t *testing.T) {
	token, err := GenerateToken("100", "A1", "installer", "NORTH", testTokenConfig)
	require.NoError(t, err)

	wrong := testTokenConfig
	wrong.Audience = "other-app"
	_, err = ValidateToken(token, wrong)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	now := time.Now()
	claims := InstallerClaims{
		Number: "100",
		Code:   "A1",
		Branch: "NORTH",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testTokenConfig.Issuer,
			Audience:  jwt.ClaimStrings{testTokenConfig.Audience},
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testTokenConfig.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(signed, testTokenConfig)
	assert.Error(t, err)
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"branch": "NORTH"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, testTokenConfig)
	assert.Error(t, err)
}
