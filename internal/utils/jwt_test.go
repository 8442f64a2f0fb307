package utils

import (
	"testing"
	"time"

	"github.com/bachelormess/mess-manager/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "mess-manager"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-1", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, models.RoleMember, token.Role)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		userID  string
		ttl     time.Duration
		signKey string
	}{
		{"empty issuer", "", "user-1", time.Hour, testSignKey},
		{"empty user id", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, "user-1", 0, testSignKey},
		{"empty sign key", testIssuer, "user-1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, models.RoleMember, tt.ttl, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-42", models.RoleAdmin, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-42", parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-42", models.RoleMember, time.Minute, testSignKey)
	require.NoError(t, err)

	// Move the verifier's clock past the expiry instead of sleeping.
	future := func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, jwt.WithTimeFunc(future))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-42", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("other-service", "user-42", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..sig"} {
		_, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-42", models.RoleMember, time.Hour, testSignKey)
	require.NoError(t, err)

	tampered := issued.SignedString[:len(issued.SignedString)-4] + "AAAA"
	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
