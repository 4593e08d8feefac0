package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"pos-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a username/password pair may log in.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// FixedAccountVerifier accepts exactly one configured account. It exists so a
// single till can be used out of the box and is not meant for production.
type FixedAccountVerifier struct {
	username string
	hash     []byte
}

func NewFixedAccountVerifier(username, password string) (*FixedAccountVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}
	return &FixedAccountVerifier{username: username, hash: hash}, nil
}

func (v *FixedAccountVerifier) Verify(username, password string) bool {
	if username != v.username {
		// keep the timing close to a real comparison
		_ = bcrypt.CompareHashAndPassword(v.hash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
}

type AuthUser struct {
	Username string `json:"username"`
}

type AuthService struct {
	verifier  CredentialVerifier
	jwtSecret string
	jwtTTL    time.Duration
	log       *slog.Logger
}

func NewAuthService(v CredentialVerifier, secret string, ttl time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{verifier: v, jwtSecret: secret, jwtTTL: ttl, log: log.With("component", "auth")}
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(username, password string) (string, *AuthUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, invalid("", "username and password are required")
	}
	if !s.verifier.Verify(username, password) {
		s.log.Warn("login failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	s.log.Info("login", "username", username)
	return token, &AuthUser{Username: username}, nil
}
