package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/goblog-dev/goblog/internal/domain"
	internal_errors "github.com/goblog-dev/goblog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockAuthStorage mocks the AuthStorage interface.
type MockAuthStorage struct {
	userByEmailFunc func(email domain.Email) (domain.User, error)
}

func (m *MockAuthStorage) UserByEmail(email domain.Email) (domain.User, error) {
	if m.userByEmailFunc != nil {
		return m.userByEmailFunc(email)
	}
	return domain.User{}, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func notFoundErr() error {
	return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
}

func TestAuthenticate(t *testing.T) {
	passHash := mustHash(t, "correct horse")
	stored := domain.User{Id: 1, Email: "alice@example.com", Name: "Alice", PassHash: passHash}

	storage := &MockAuthStorage{
		userByEmailFunc: func(email domain.Email) (domain.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return domain.User{}, notFoundErr()
		},
	}
	auth := NewAuth(storage)

	t.Run("valid credentials return user without hash", func(t *testing.T) {
		user, err := auth.Authenticate("alice@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, stored.Id, user.Id)
		assert.Equal(t, stored.Email, user.Email)
		assert.Empty(t, user.PassHash)
	})

	t.Run("wrong password fails uniformly", func(t *testing.T) {
		_, err := auth.Authenticate("alice@example.com", "correct horsex")
		require.Error(t, err)
		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
		assert.Equal(t, "Invalid credentials", e.Message)
	})

	t.Run("unknown email fails with identical shape", func(t *testing.T) {
		_, wrongPassErr := auth.Authenticate("alice@example.com", "nope")
		_, unknownErr := auth.Authenticate("nobody@example.com", "anything")
		require.Error(t, unknownErr)
		assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
		e, ok := unknownErr.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
	})

	t.Run("email matching is exact", func(t *testing.T) {
		_, err := auth.Authenticate("Alice@Example.com", "correct horse")
		require.Error(t, err)
		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
	})

	t.Run("account without password always fails", func(t *testing.T) {
		storage := &MockAuthStorage{
			userByEmailFunc: func(email domain.Email) (domain.User, error) {
				return domain.User{Id: 2, Email: email, Name: "No Pass"}, nil
			},
		}
		auth := NewAuth(storage)

		_, err := auth.Authenticate("nopass@example.com", "whatever")
		require.Error(t, err)
		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
		assert.Equal(t, "Invalid credentials", e.Message)
	})

	t.Run("storage failure is not masked as 401", func(t *testing.T) {
		storage := &MockAuthStorage{
			userByEmailFunc: func(email domain.Email) (domain.User, error) {
				return domain.User{}, errors.New("connection reset")
			},
		}
		auth := NewAuth(storage)

		_, err := auth.Authenticate("alice@example.com", "correct horse")
		require.Error(t, err)
		_, ok := err.(*internal_errors.ErrorWithStatusCode)
		assert.False(t, ok)
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret ")))
}
