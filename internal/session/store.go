package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Store is the single owner of the session. Other components read
// snapshots through Current; only the authentication callbacks mutate it.
type Store struct {
	mu        sync.RWMutex
	current   Session
	persister Persister
	logger    *zap.Logger
	now       func() time.Time
}

func NewStore(persister Persister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if persister == nil {
		persister = &MemoryPersister{}
	}

	return &Store{
		current:   Anonymous(),
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// Initialize restores the session from persisted storage. Any missing or
// malformed field yields the anonymous session; partial state is never
// trusted.
func (s *Store) Initialize() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Anonymous()

	record, err := s.persister.Load()
	if err != nil {
		s.logger.Debug("ignoring unreadable session", zap.Error(err))
		return s.current
	}
	if record == nil {
		return s.current
	}

	restored, err := s.fromRecord(*record)
	if err != nil {
		s.logger.Debug("ignoring persisted session", zap.Error(err))
		return s.current
	}

	s.current = restored
	s.logger.Debug("session restored",
		zap.String("username", restored.Username),
		zap.String("role", restored.Role.String()),
	)

	return s.current
}

func (s *Store) fromRecord(record Record) (Session, error) {
	token := strings.TrimSpace(record.Token)
	username := strings.TrimSpace(record.Username)

	if token == "" {
		return Session{}, errors.New("token is missing")
	}
	if username == "" {
		return Session{}, errors.New("username is missing")
	}

	role, err := ParseRole(record.UserType)
	if err != nil {
		return Session{}, err
	}

	if err := s.checkToken(token, role); err != nil {
		return Session{}, err
	}

	return Session{State: StateAuthenticated, Username: username, Role: role, Token: token}, nil
}

// checkToken rejects tokens that look like JWTs but are malformed, expired
// or issued for another role. Tokens that are not JWTs are treated as
// opaque. Signatures cannot be verified client side.
func (s *Store) checkToken(token string, role Role) error {
	if strings.Count(token, ".") != 2 {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("malformed token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("malformed token expiry: %w", err)
	}
	if exp != nil && !s.now().Before(exp.Time) {
		return fmt.Errorf("token expired at %s", exp.Time.UTC().Format(time.RFC3339))
	}

	if userType, ok := claims["user_type"].(string); ok && userType != "" {
		claimed, err := ParseRole(userType)
		if err != nil || claimed != role {
			return fmt.Errorf("token issued for role %q", userType)
		}
	}

	return nil
}

// CommitLogin stores the credentials returned by a successful login or
// registration and switches to the authenticated state, clearing guest mode.
func (s *Store) CommitLogin(token, username string, role Role) (Session, error) {
	token = strings.TrimSpace(token)
	username = strings.TrimSpace(username)

	if token == "" || username == "" {
		return s.Current(), errors.New("token and username are required")
	}
	if role != RoleCandidate && role != RoleRecruiter {
		return s.Current(), fmt.Errorf("unknown role %q", string(role))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := Record{Token: token, Username: username, UserType: string(role)}
	if err := s.persister.Save(record); err != nil {
		return s.current, fmt.Errorf("persisting session: %w", err)
	}

	s.current = Session{State: StateAuthenticated, Username: username, Role: role, Token: token}
	s.logger.Debug("session authenticated", zap.String("username", username), zap.String("role", role.String()))

	return s.current, nil
}

// CommitGuest enters guest mode for role. Guest sessions carry no token and
// are not persisted; any stored credentials are erased.
func (s *Store) CommitGuest(role Role) (Session, error) {
	if role != RoleCandidate && role != RoleRecruiter {
		return s.Current(), fmt.Errorf("unknown role %q", string(role))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Erase(); err != nil {
		return s.current, err
	}

	s.current = Session{State: StateGuest, Role: role}
	s.logger.Debug("session entered guest mode", zap.String("role", role.String()))

	return s.current, nil
}

// Clear erases persisted state and returns to anonymous. Used for logout and
// for leaving guest mode. When erasing fails the session is left as it was.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Erase(); err != nil {
		return err
	}
	s.current = Anonymous()

	s.logger.Debug("session cleared")
	return nil
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Token implements hiring.TokenSource.
func (s *Store) Token() string {
	return s.Current().Token
}
