package service

import (
	"net/http"

	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/errors"
	"github.com/goblog-dev/goblog/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// to mock service in tests
type AuthService interface {
	Authenticate(email domain.Email, password domain.Password) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
}

type AuthStorage interface {
	UserByEmail(email domain.Email) (domain.User, error)
}

func NewAuth(storage AuthStorage) *Auth {
	return &Auth{storage}
}

// uniform response for unknown email, passwordless account and wrong
// password, so callers can't probe which accounts exist
func invalidCredentials() error {
	return &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
}

// Authenticate checks email+password against the stored bcrypt hash and
// returns the user with the hash stripped. Emails match exactly as stored.
func (a *Auth) Authenticate(email domain.Email, password domain.Password) (domain.User, error) {
	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, invalidCredentials()
		}
		return domain.User{}, err
	}

	// an account may exist without a usable password; login always fails for it
	if user.PassHash == "" {
		return domain.User{}, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return domain.User{}, invalidCredentials()
	}

	return user.WithoutPassword(), nil
}

// HashPassword runs the one-way hash applied to every password before it
// is persisted. The plaintext is never stored or logged.
func HashPassword(password domain.Password) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
