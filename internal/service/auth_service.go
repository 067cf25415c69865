package service

import (
	"context"
	"strings"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService struct {
	users      repository.UserRepository
	jwtSecret  string
	expiration time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, expirationHours int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		expiration: time.Duration(expirationHours) * time.Hour,
	}
}

// Register creates a regular account. The stored display name is
// "<name> <last name>".
func (s *AuthService) Register(ctx context.Context, name, lastName, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	lastName = strings.TrimSpace(lastName)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apierror.Validation("El nombre es obligatorio")
	}
	if lastName == "" {
		return nil, apierror.Validation("El apellido es obligatorio")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, apierror.Validation("Correo electronico invalido")
	}
	if len(password) < 6 {
		return nil, apierror.Validation("La contrasena debe tener al menos 6 caracteres")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflict("Ese correo ya esta registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name + " " + lastName,
		PasswordHash: string(hash),
		Role:         "user",
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, apierror.Unauthorized("Correo o contrasena incorrectos")
	}

	now := time.Now()
	claims := &middleware.JWTClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me returns the account behind an authenticated email.
func (s *AuthService) Me(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.NotFound("Usuario no existe")
	}
	return user, nil
}
