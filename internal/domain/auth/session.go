package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/rs/zerolog"

	"simgaji/internal/platform/kv"
	"simgaji/internal/platform/logger"
)

// Slot names for the current session. The token slot holds the SHA-256 of
// the issued token, the user slot the serialized profile.
const (
	TokenSlot = "ditjen_auth_token"
	UserSlot  = "ditjen_auth_user"
)

type Profile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Sessions persists the single active session. There is exactly one
// administrative user, so one live session is all the product supports;
// a new login replaces the previous one.
type Sessions struct {
	kv  *kv.Store
	log zerolog.Logger
}

func NewSessions(kvs *kv.Store) *Sessions {
	return &Sessions{kv: kvs, log: logger.WithComponent("auth.sessions")}
}

func TokenHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Sessions) Save(tokenHash string, profile Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.kv.Put(TokenSlot, []byte(tokenHash)); err != nil {
		return err
	}
	return s.kv.Put(UserSlot, raw)
}

// Active reports whether tokenHash matches the stored session and returns
// the stored profile. Read failures degrade to "no session".
func (s *Sessions) Active(tokenHash string) (Profile, bool) {
	stored, err := s.kv.Get(TokenSlot)
	if err != nil {
		s.log.Error().Err(err).Msg("reading session slot failed")
		return Profile{}, false
	}
	if stored == nil || string(stored) != tokenHash {
		return Profile{}, false
	}
	raw, err := s.kv.Get(UserSlot)
	if err != nil || raw == nil {
		return Profile{}, false
	}
	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.log.Error().Err(err).Msg("session profile is corrupt")
		return Profile{}, false
	}
	return profile, true
}

func (s *Sessions) Clear() error {
	if err := s.kv.Delete(TokenSlot); err != nil {
		return err
	}
	return s.kv.Delete(UserSlot)
}
