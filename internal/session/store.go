package session

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/Muhammad-true/mm-shop-admin/internal/kvstore"
)

const (
	keyToken        = "session.token"
	keyRole         = "session.role"
	keyLastActivity = "session.last_activity_ms"
	keyProfile      = "session.profile"
)

// Store is the single source of truth for the auth token. Other
// components may read it immediately before use but never cache it
// beyond one call.
type Store struct {
	kv kvstore.Store

	mu   sync.RWMutex
	cur  Session
	have bool
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Restore reads the persisted session. Any missing or malformed field
// yields an absent session; restore never fails hard. An idle-expired
// session is cleared from storage and reported as absent.
func (s *Store) Restore(now time.Time) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err1 := s.kv.Get(keyToken)
	role, err2 := s.kv.Get(keyRole)
	lastMs, err3 := s.kv.Get(keyLastActivity)
	if err1 != nil || err2 != nil || err3 != nil {
		s.clearLocked()
		return Session{}
	}

	ms, err := strconv.ParseInt(lastMs, 10, 64)
	if err != nil || tok == "" || !Role(role).Valid() {
		s.clearLocked()
		return Session{}
	}

	sess := Session{
		Token:        tok,
		Role:         Role(role),
		LastActivity: time.UnixMilli(ms),
	}
	if sess.IsExpired(now) {
		s.clearLocked()
		return Session{}
	}

	s.cur = sess
	s.have = true
	return sess
}

// Establish writes all three fields together and replaces any current session.
func (s *Store) Establish(token string, role Role, now time.Time) error {
	if token == "" || !role.Valid() {
		return errors.New("session: token and role are both required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Token: token, Role: role, LastActivity: now}
	if err := s.persistLocked(sess); err != nil {
		return err
	}
	s.cur = sess
	s.have = true
	return nil
}

// Touch refreshes the activity timestamp. Called on every user-visible
// navigation action; a no-op without a session.
func (s *Store) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.have {
		return
	}
	s.cur.LastActivity = now
	_ = s.kv.Set(keyLastActivity, strconv.FormatInt(now.UnixMilli(), 10))
}

// Clear removes the session from memory and storage. Used on logout,
// idle expiry, or any upstream 401.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Current returns the in-memory session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, s.have
}

// Token returns the bearer token for the next outbound call, or "" when
// logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.have {
		return ""
	}
	return s.cur.Token
}

// SaveProfile caches the raw profile payload so the shell can render the
// user header before the profile fetch resolves after a restart.
func (s *Store) SaveProfile(raw string) {
	_ = s.kv.Set(keyProfile, raw)
}

// CachedProfile returns the last cached profile payload, if any.
func (s *Store) CachedProfile() (string, bool) {
	v, err := s.kv.Get(keyProfile)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) persistLocked(sess Session) error {
	if err := s.kv.Set(keyToken, sess.Token); err != nil {
		return err
	}
	if err := s.kv.Set(keyRole, string(sess.Role)); err != nil {
		return err
	}
	return s.kv.Set(keyLastActivity, strconv.FormatInt(sess.LastActivity.UnixMilli(), 10))
}

func (s *Store) clearLocked() {
	s.cur = Session{}
	s.have = false
	_ = s.kv.Delete(keyToken)
	_ = s.kv.Delete(keyRole)
	_ = s.kv.Delete(keyLastActivity)
	_ = s.kv.Delete(keyProfile)
}
