package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "a@example.com", "secret", time.Hour, "fiscal-balance", time.Now())
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "fiscal-balance")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)

	_, err = ParseAndValidateJWT(token, "other-secret", "fiscal-balance")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "", "secret", time.Minute, "iss", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(token, "secret", "iss")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong horse", hash))

	_, err = HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestFormatWithCurrencyPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(amount, domain.Currency{Precision: 2}))
	assert.Equal(t, "12", FormatWithCurrencyPrecision(amount, domain.Currency{Precision: 0}))
	assert.Equal(t, "12.300", FormatWithPrecision(decimal.RequireFromString("12.3"), 3))
}
