package auth

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates the single administrative user and manages the
// persisted session.
type Service struct {
	sessions     *Sessions
	secret       string
	username     string
	passwordHash string
	name         string
	ttl          time.Duration
}

func NewService(sessions *Sessions, secret, username, password, name string, ttl time.Duration) (*Service, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Service{
		sessions:     sessions,
		secret:       secret,
		username:     username,
		passwordHash: hash,
		name:         name,
		ttl:          ttl,
	}, nil
}

// Login verifies the credentials, issues a token and persists the session.
func (s *Service) Login(username, password string) (string, Profile, error) {
	if username != s.username {
		return "", Profile{}, ErrInvalidCredentials
	}
	if err := CheckPassword(s.passwordHash, password); err != nil {
		return "", Profile{}, ErrInvalidCredentials
	}

	profile := Profile{Username: s.username, Name: s.name, Role: "admin"}
	token, err := GenerateToken(s.secret, Claims{
		Username: profile.Username,
		Name:     profile.Name,
		Role:     profile.Role,
	}, s.ttl)
	if err != nil {
		return "", Profile{}, err
	}
	if err := s.sessions.Save(TokenHash(token), profile); err != nil {
		return "", Profile{}, err
	}
	return token, profile, nil
}

// Authenticate validates a bearer token against both its signature and the
// persisted session slot.
func (s *Service) Authenticate(token string) (Profile, bool) {
	if _, err := ParseToken(s.secret, token); err != nil {
		return Profile{}, false
	}
	return s.sessions.Active(TokenHash(token))
}

func (s *Service) Logout() error {
	return s.sessions.Clear()
}
