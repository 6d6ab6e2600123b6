package auth

import (
	"testing"
	"time"

	"resumebuilder/config"
	"resumebuilder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret
	cfg.SecretKey.TokenTTL = time.Hour

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	raw, err := svc.Issue("alice@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_SignatureFromOtherKey(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig("first_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testTokenConfig("second_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	raw, err := issuer.Issue("alice@x.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative validity window produces a token that is already expired.
	svc := &jwtService{secret: []byte("test_token_secret_key_very_long_for_testing"), ttl: -time.Minute}

	raw, err := svc.Issue("alice@x.com")
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := &jwtService{secret: []byte("test_token_secret_key_very_long_for_testing"), ttl: time.Hour}

	raw, err := svc.Issue("")
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_MissingConfig(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)

	cfg := testTokenConfig("secret")
	cfg.SecretKey.TokenTTL = 0
	svc, err = NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
