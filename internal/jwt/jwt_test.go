package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/goblog-dev/goblog/internal/domain"
	internal_errors "github.com/goblog-dev/goblog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("test-key", time.Hour)
	user := domain.User{Id: 1, Email: "alice@example.com", Name: "Alice"}

	tokenStr, err := svc.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "Alice", claims["name"])
	assert.EqualValues(t, 1, claims["uid"])
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	signer := New("key-one", time.Hour)
	verifier := New("key-two", time.Hour)

	tokenStr, err := signer.NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = verifier.DecodeToken(tokenStr)
	require.Error(t, err)

	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, 401, e.StatusCode)
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	svc := New("test-key", -time.Minute)

	tokenStr, err := svc.NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = svc.DecodeToken(tokenStr)
	require.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	svc := New("test-key", time.Hour)

	_, err := svc.DecodeToken("not.a.token")
	require.Error(t, err)

	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, 401, e.StatusCode)
}
