package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/validators"
	"github.com/majoduan/poa-backend/pkg/config"
)

// ErrInvalidCredentials is returned on a failed login; handlers map it to 401.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	userRepo *repositories.UserRepository
	roleRepo *repositories.RoleRepository
	store    validators.Store
}

func NewUserService(userRepo *repositories.UserRepository, roleRepo *repositories.RoleRepository, store validators.Store) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		store:    store,
	}
}

// Register validates and creates a new user with a bcrypt password hash.
func (s *UserService) Register(name, email, password string, roleID string) (*models.User, error) {
	name, err := validators.ValidateUsername(name)
	if err != nil {
		return nil, err
	}

	email, err = validators.ValidateEmailFormat(email)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	role, err := parseID(roleID, "role")
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(name, email, string(hash), role)

	if err := validators.ValidateUserRules(s.store, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an HS256 access token.
func (s *UserService) Login(email, password string) (string, *models.User, error) {
	email, err := validators.ValidateEmailFormat(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	if _, err := parseID(id, "user"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("user not found")
		}
		return nil, err
	}

	return user, nil
}

// GetRoles retrieves all roles
func (s *UserService) GetRoles() ([]*models.Role, error) {
	return s.roleRepo.GetAll()
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	cfg := config.AppConfig.JWT

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.ExpireMinutes) * time.Minute)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}
