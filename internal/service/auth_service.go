package service

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAuthNotConfigured  = errors.New("authentication is not configured")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService validates the shared admin credential against the email
// allow-list and mints/verifies the bearer tokens the admin routes run on.
type AuthService interface {
	Login(input domain.LoginInput) (*domain.AuthUser, string, error)
	ValidateToken(token string) (*Claims, error)
	Identify(authHeader string) *domain.AuthUser
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(input domain.LoginInput) (*domain.AuthUser, string, error) {
	// Missing secrets means the deployment is broken, which must not look
	// like a wrong password to the caller.
	if s.cfg.AdminPassword == "" || s.cfg.JWTSecret == "" || len(s.cfg.AllowedEmails) == 0 {
		return nil, "", ErrAuthNotConfigured
	}

	email := strings.ToLower(input.Email)

	allowed := false
	for _, candidate := range s.cfg.AllowedEmails {
		if strings.ToLower(candidate) == email {
			allowed = true
			break
		}
	}

	// The password is a single shared secret compared verbatim; this is the
	// documented product behavior for a low-stakes admin gate, not a bug.
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.cfg.AdminPassword)) == 1

	if !allowed || !passwordOK {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.mintToken(email)
	if err != nil {
		return nil, "", err
	}

	return &domain.AuthUser{Email: email}, token, nil
}

func (s *authService) mintToken(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Identify is the non-failing read path behind /auth/check: a missing,
// malformed, or expired token means "not authenticated", never an error.
func (s *authService) Identify(authHeader string) *domain.AuthUser {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	claims, err := s.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	return &domain.AuthUser{Email: claims.Email}
}
