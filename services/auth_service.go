package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"staylux-backend/models"
)

// Mock authentication. Accounts live in memory for the process lifetime and
// passwords are bcrypt-hashed, but none of this is a real identity system:
// the session email is only an informal correlation key for bookings.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired session token")
)

type AuthService struct {
	mu     sync.Mutex
	users  map[string]models.User
	secret []byte
	ttl    time.Duration
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{
		users:  map[string]models.User{},
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

// Signup registers a mock account. Shape validation (required fields, email
// contains "@", password length/match) happens in the controller via
// binding; this only guards uniqueness.
func (s *AuthService) Signup(name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return models.User{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Name: strings.TrimSpace(name), Email: email, PasswordHash: string(hash)}
	s.users[email] = user
	return user, nil
}

// Login verifies a known account's password. Unknown emails auto-provision a
// mock account on the spot -- the original accepted any well-formed
// credentials, and that permissiveness is kept.
func (s *AuthService) Login(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	user, exists := s.users[email]
	s.mu.Unlock()

	if exists {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return user, nil
	}

	name := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		name = email[:i]
	}
	return s.Signup(name, email, password)
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IssueToken mints the session token handed to the browser at login.
func (s *AuthService) IssueToken(user models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a bearer token and returns the session it carries.
func (s *AuthService) ParseToken(tokenString string) (models.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Email == "" {
		return models.Session{}, ErrInvalidToken
	}
	return models.Session{Email: claims.Email, Name: claims.Name}, nil
}
