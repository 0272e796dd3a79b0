// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/itinera/internal/platform/sec"
)

func signToken(t *testing.T, key *rsa.PrivateKey, issuer, role string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops-1",
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

/*
TestVerifyToken covers signature, issuer and expiry checks.
*/
func TestVerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := sec.NewTokenVerifierFromKey(&key.PublicKey, "itinera.app")

	t.Run("valid_admin_token", func(t *testing.T) {
		claims, err := verifier.VerifyToken(signToken(t, key, "itinera.app", "admin", time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "ops-1", claims.Subject)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, "someone.else", "admin", time.Hour))
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, "itinera.app", "admin", -time.Minute))
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("foreign_key", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, otherKey, "itinera.app", "admin", time.Hour))
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.VerifyToken("not.a.jwt")
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	})
}

/*
TestRole_AtLeast checks the role hierarchy.
*/
func TestRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAdmin))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleOperator))
	assert.False(t, sec.RoleOperator.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.Role("guest").AtLeast(sec.RoleOperator))
}
