package service

import (
	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/logger"
)

type UserService interface {
	Create(data UserData) (domain.User, error)
	Get(id domain.UserId) (domain.User, error)
	List() ([]domain.User, error)
	Update(id domain.UserId, data UserData) (domain.User, error)
}

// UserData carries creation/update input. Password is optional: empty
// means "no usable password" on create and "keep the current one" on
// update.
type UserData struct {
	Email    domain.Email
	Name     string
	Password domain.Password
}

type User struct {
	storage UserStorage
}

type UserStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	Users() ([]domain.User, error)
	UpdateUser(id domain.UserId, email domain.Email, name string, newHash *string) (domain.User, error)
}

func NewUser(storage UserStorage) *User {
	return &User{storage}
}

func (u *User) Create(data UserData) (domain.User, error) {
	var passHash string
	if data.Password != "" {
		var err error
		if passHash, err = HashPassword(data.Password); err != nil {
			logger.Log.Error("failed to hash password", "error", err)
			return domain.User{}, err
		}
	}

	saved, err := u.storage.SaveUser(domain.User{Email: data.Email, Name: data.Name, PassHash: passHash})
	if err != nil {
		return domain.User{}, err
	}
	return saved.WithoutPassword(), nil
}

func (u *User) Get(id domain.UserId) (domain.User, error) {
	user, err := u.storage.UserById(id)
	if err != nil {
		return domain.User{}, err
	}
	return user.WithoutPassword(), nil
}

func (u *User) List() ([]domain.User, error) {
	users, err := u.storage.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].WithoutPassword()
	}
	return users, nil
}

func (u *User) Update(id domain.UserId, data UserData) (domain.User, error) {
	var newHash *string
	if data.Password != "" {
		hash, err := HashPassword(data.Password)
		if err != nil {
			logger.Log.Error("failed to hash password", "error", err)
			return domain.User{}, err
		}
		newHash = &hash
	}

	updated, err := u.storage.UpdateUser(id, data.Email, data.Name, newHash)
	if err != nil {
		return domain.User{}, err
	}
	return updated.WithoutPassword(), nil
}
