package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timer-skill/internal/skill/session"
)

func TestAttributes(t *testing.T) {
	seed := map[string]any{"a": 1}
	attrs := session.NewAttributes("s1", seed)
	seed["a"] = 2

	v, ok := attrs.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v, "seed must be copied")

	_, ok = attrs.GetString(session.KeyLastTimerID)
	assert.False(t, ok)

	attrs.Set(session.KeyLastTimerID, "t1")
	id, ok := attrs.GetString(session.KeyLastTimerID)
	assert.True(t, ok)
	assert.Equal(t, "t1", id)

	attrs.Set("empty", "")
	_, ok = attrs.GetString("empty")
	assert.False(t, ok, "empty strings read as absent")

	attrs.Set("number", 3)
	_, ok = attrs.GetString("number")
	assert.False(t, ok)

	snap := attrs.Snapshot()
	attrs.Delete(session.KeyLastTimerID)
	assert.Equal(t, "t1", snap[session.KeyLastTimerID], "snapshot must not alias")
	_, ok = attrs.Get(session.KeyLastTimerID)
	assert.False(t, ok)
}

func TestStoreLifecycle(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	attrs := store.Load("s1", nil)
	assert.Equal(t, "s1", attrs.ID())
	_, ok := attrs.Get(session.KeyLastTimerID)
	assert.False(t, ok, "new session starts empty")

	attrs.Set(session.KeyLastTimerID, "t1")
	store.Save(attrs)
	assert.Equal(t, 1, store.Len())

	again := store.Load("s1", nil)
	id, ok := again.GetString(session.KeyLastTimerID)
	require.True(t, ok)
	assert.Equal(t, "t1", id)

	other := store.Load("s2", nil)
	_, ok = other.Get(session.KeyLastTimerID)
	assert.False(t, ok, "sessions must not share state")

	store.Delete("s1")
	assert.Equal(t, 0, store.Len())
	_, ok = store.Load("s1", nil).Get(session.KeyLastTimerID)
	assert.False(t, ok)
}

func TestStoreCommit(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	attrs := store.Load("s1", nil)
	attrs.Set(session.KeyLastTimerID, "t1")
	assert.Same(t, attrs, store.Commit(attrs, false))
	assert.Equal(t, 1, store.Len())

	assert.Nil(t, store.Commit(attrs, true))
	assert.Equal(t, 0, store.Len())

	assert.Nil(t, store.Commit(nil, false))
}

func TestStoreSeedOverridesStored(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	attrs := store.Load("s1", nil)
	attrs.Set(session.KeyLastTimerID, "old")
	attrs.Set("other", "kept")
	store.Save(attrs)

	loaded := store.Load("s1", map[string]any{session.KeyLastTimerID: "new"})
	id, _ := loaded.GetString(session.KeyLastTimerID)
	other, _ := loaded.GetString("other")
	assert.Equal(t, "new", id)
	assert.Equal(t, "kept", other)
}

func TestStoreIgnoresEmptySessionID(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	attrs := store.Load("", map[string]any{"k": "v"})
	attrs.Set("x", "y")
	store.Save(attrs)

	assert.Equal(t, 0, store.Len())
	store.Save(nil)
}

func TestStoreExpiry(t *testing.T) {
	store := session.NewStore(10, 50*time.Millisecond)

	attrs := store.Load("s1", nil)
	attrs.Set(session.KeyLastTimerID, "t1")
	store.Save(attrs)

	time.Sleep(120 * time.Millisecond)

	_, ok := store.Load("s1", nil).Get(session.KeyLastTimerID)
	assert.False(t, ok, "expired sessions must be dropped")
}
