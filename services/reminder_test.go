package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReminderStoreCooldown(t *testing.T) {
	current := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryReminderStore()
	store.now = func() time.Time { return current }

	ctx := context.Background()

	ok, err := store.MarkIfAbsent(ctx, "reminder:h1:a:b", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "first mark must succeed")

	ok, err = store.MarkIfAbsent(ctx, "reminder:h1:a:b", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "second mark within the cooldown must be suppressed")

	// A different pair is independent.
	ok, err = store.MarkIfAbsent(ctx, "reminder:h1:b:c", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// After the cooldown expires the pair is eligible again.
	current = current.Add(time.Hour + time.Minute)
	ok, err = store.MarkIfAbsent(ctx, "reminder:h1:a:b", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryReminderStoreEvictsExpired(t *testing.T) {
	current := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryReminderStore()
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.MarkIfAbsent(ctx, "a", time.Minute)
	store.MarkIfAbsent(ctx, "b", time.Hour)

	current = current.Add(30 * time.Minute)
	store.MarkIfAbsent(ctx, "c", time.Hour)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.NotContains(t, store.entries, "a")
	assert.Contains(t, store.entries, "b")
	assert.Contains(t, store.entries, "c")
}
