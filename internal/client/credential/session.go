package credential

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Session owns the credential for one client instance. The primary store is
// consulted first; a token found only in the fallback is copied up.
type Session struct {
	primary  Store
	fallback Store
	log      *zap.Logger
	mu       sync.Mutex
}

// NewSession builds a Session over the two tiers. fallback may be nil.
func NewSession(primary, fallback Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{primary: primary, fallback: fallback, log: log}
}

// Token resolves the current token. ok is false when neither tier has one.
func (s *Session) Token() (token string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err = s.primary.Get()
	if err != nil {
		return "", false, fmt.Errorf("read primary credential: %w", err)
	}
	if ok || s.fallback == nil {
		return token, ok, nil
	}

	token, ok, err = s.fallback.Get()
	if err != nil {
		return "", false, fmt.Errorf("read fallback credential: %w", err)
	}
	if !ok {
		return "", false, nil
	}

	// the copy-up is opportunistic: the token is usable even if it fails
	if err := s.primary.Set(token); err != nil {
		s.log.Warn("failed to copy fallback credential to primary store", zap.Error(err))
	}
	return token, true, nil
}

// SetToken stores token in the primary tier.
func (s *Session) SetToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.primary.Set(token); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// ClearToken removes the token from both tiers so the fallback cannot
// resurrect it on the next resolution.
func (s *Session) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.primary.Delete()
	if s.fallback != nil {
		err = errors.Join(err, s.fallback.Delete())
	}
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
