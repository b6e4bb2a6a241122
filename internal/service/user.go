package service

import (
	"strings"

	"github.com/orcahelper/orcahelper/internal/config"
	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/utils/password"
)

type UserService interface {
	Create(name, email, plainPassword string) (domain.User, error)
	ById(id domain.UserId) (domain.User, error)
	List(skip, limit int) ([]domain.User, error)
	Update(id domain.UserId, name, email, plainPassword string) (domain.User, error)
	Delete(id domain.UserId) error
}

type UserStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	Users(skip, limit int) ([]domain.User, error)
	UpdateUser(user domain.User) error
	DeleteUser(id domain.UserId) error
}

type Users struct {
	storage UserStorage
	cfg     *config.Config
}

func NewUsers(storage UserStorage, cfg *config.Config) *Users {
	return &Users{storage: storage, cfg: cfg}
}

// Create registers a new account. The email is stored lowercased; a
// duplicate surfaces as a conflict from storage.
func (u *Users) Create(name, email, plainPassword string) (domain.User, error) {
	passHash, err := password.Hash(plainPassword, u.cfg.BcryptCost())
	if err != nil {
		return domain.User{}, err
	}

	return u.storage.SaveUser(domain.User{
		Name:     name,
		Email:    strings.ToLower(email),
		PassHash: passHash,
	})
}

func (u *Users) ById(id domain.UserId) (domain.User, error) {
	return u.storage.UserById(id)
}

func (u *Users) List(skip, limit int) ([]domain.User, error) {
	return u.storage.Users(skip, limit)
}

// Update overwrites the fields that were supplied; empty ones keep their
// stored value. A new password gets re-hashed.
func (u *Users) Update(id domain.UserId, name, email, plainPassword string) (domain.User, error) {
	user, err := u.storage.UserById(id)
	if err != nil {
		return domain.User{}, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = strings.ToLower(email)
	}
	if plainPassword != "" {
		passHash, err := password.Hash(plainPassword, u.cfg.BcryptCost())
		if err != nil {
			return domain.User{}, err
		}
		user.PassHash = passHash
	}

	if err := u.storage.UpdateUser(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *Users) Delete(id domain.UserId) error {
	return u.storage.DeleteUser(id)
}

var _ UserService = (*Users)(nil)
