package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-true/mm-shop-admin/internal/kvstore"
)

func TestEstablishAndRestore(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	s := NewStore(kv)
	require.NoError(t, s.Establish("tok-1", RoleAdmin, now))

	// A fresh store over the same kv sees the session.
	s2 := NewStore(kv)
	sess := s2.Restore(now.Add(time.Hour))
	require.True(t, sess.Present())
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, RoleAdmin, sess.Role)
	assert.Equal(t, now.UnixMilli(), sess.LastActivity.UnixMilli())
}

func TestEstablishRequiresBothFields(t *testing.T) {
	s := NewStore(kvstore.NewMemory())
	now := time.Now()

	assert.Error(t, s.Establish("", RoleAdmin, now))
	assert.Error(t, s.Establish("tok", Role("owner"), now))
	_, have := s.Current()
	assert.False(t, have)
}

func TestRestoreWithinIdleWindow(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, NewStore(kv).Establish("tok-1", RoleShopOwner, now))

	// Exactly at the window boundary the session still counts.
	sess := NewStore(kv).Restore(now.Add(IdleWindow))
	assert.True(t, sess.Present())
}

func TestRestoreExpiredClearsStorage(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, NewStore(kv).Establish("tok-1", RoleAdmin, now))

	sess := NewStore(kv).Restore(now.Add(IdleWindow + time.Millisecond))
	assert.False(t, sess.Present())

	// Expiry is not just a read-side decision: the keys are gone.
	_, err := kv.Get(keyToken)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
	_, err = kv.Get(keyRole)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
	_, err = kv.Get(keyLastActivity)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestRestoreFailsClosedOnPartialState(t *testing.T) {
	now := time.Now()

	cases := map[string]map[string]string{
		"missing role":  {keyToken: "tok", keyLastActivity: "123"},
		"missing token": {keyRole: "admin", keyLastActivity: "123"},
		"bad timestamp": {keyToken: "tok", keyRole: "admin", keyLastActivity: "soon"},
		"unknown role":  {keyToken: "tok", keyRole: "owner", keyLastActivity: "123"},
	}
	for name, state := range cases {
		t.Run(name, func(t *testing.T) {
			kv := kvstore.NewMemory()
			for k, v := range state {
				require.NoError(t, kv.Set(k, v))
			}
			sess := NewStore(kv).Restore(now)
			assert.False(t, sess.Present())
		})
	}
}

func TestTouchExtendsIdleWindow(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	s := NewStore(kv)
	require.NoError(t, s.Establish("tok-1", RoleAdmin, now))
	s.Touch(now.Add(20 * time.Hour))

	// 30h after login but only 10h after the last touch.
	sess := NewStore(kv).Restore(now.Add(30 * time.Hour))
	assert.True(t, sess.Present())
}

func TestTouchWithoutSessionIsNoop(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewStore(kv)
	s.Touch(time.Now())
	_, err := kv.Get(keyLastActivity)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestClearRemovesEverything(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Now()

	s := NewStore(kv)
	require.NoError(t, s.Establish("tok-1", RoleAdmin, now))
	s.SaveProfile(`{"id":"u-1"}`)

	s.Clear()

	assert.Empty(t, s.Token())
	_, have := s.Current()
	assert.False(t, have)
	_, ok := s.CachedProfile()
	assert.False(t, ok)
}

func TestCachedProfileSurvivesRestart(t *testing.T) {
	kv := kvstore.NewMemory()
	now := time.Now()

	s := NewStore(kv)
	require.NoError(t, s.Establish("tok-1", RoleAdmin, now))
	s.SaveProfile(`{"id":"u-1","name":"Ada"}`)

	raw, ok := NewStore(kv).CachedProfile()
	require.True(t, ok)
	assert.Contains(t, raw, "Ada")
}
