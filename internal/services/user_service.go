package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/isdelr/accounts-api/internal/apperr"
	"github.com/isdelr/accounts-api/internal/models"
	"github.com/isdelr/accounts-api/internal/repository"
	"github.com/isdelr/accounts-api/internal/validation"
)

// loginFailedMessage is deliberately identical for an unknown email and a
// wrong password so the response does not reveal whether the account exists.
const loginFailedMessage = "Invalid email or password"

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(input models.CreateUserInput) (models.User, error)
	GetUser(id int64) (models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(id int64, input models.UpdateUserInput) (models.User, error)
	DeleteUser(id int64) error
	LoginUser(input models.LoginInput) (models.User, error)
}

// UserService provides the account management use cases. It is stateless
// beyond its injected repository and safe to share across requests.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser validates the input, checks email uniqueness, and persists a new
// account with a bcrypt-hashed password.
func (s *UserService) CreateUser(input models.CreateUserInput) (models.User, error) {
	if err := validation.Check(input); err != nil {
		return models.User{}, err
	}

	_, err := s.repo.FindByEmail(input.Email)
	if err == nil {
		return models.User{}, apperr.Validation("Email already in use")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	// Concurrent creates can race past the pre-check above; the UNIQUE
	// constraint on email then rejects the insert and the failure surfaces
	// here instead of being swallowed.
	if err := s.repo.Create(&user); err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return user, nil
}

// GetUser retrieves a single user by their ID.
func (s *UserService) GetUser(id int64) (models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperr.NotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return models.User{}, apperr.Internal(err)
	}
	return user, nil
}

// GetAllUsers retrieves every user account.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// UpdateUser overwrites only the fields present in the input; absent fields
// keep their prior values. Updating with an empty input is a no-op.
func (s *UserService) UpdateUser(id int64, input models.UpdateUserInput) (models.User, error) {
	if err := validation.Check(input); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperr.NotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return models.User{}, apperr.Internal(err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, apperr.Internal(err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return user, nil
}

// DeleteUser removes an existing user.
func (s *UserService) DeleteUser(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return apperr.Internal(err)
	}

	if err := s.repo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// LoginUser verifies a user's credentials. bcrypt's comparison is
// constant-time over the hash.
func (s *UserService) LoginUser(input models.LoginInput) (models.User, error) {
	if err := validation.Check(input); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperr.Unauthorized(loginFailedMessage)
		}
		return models.User{}, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return models.User{}, apperr.Unauthorized(loginFailedMessage)
	}
	return user, nil
}
