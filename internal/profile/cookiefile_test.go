package profile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookieFile(t *testing.T) *CookieFile {
	t.Helper()
	return NewCookieFile(filepath.Join(t.TempDir(), "cookies.json"))
}

func TestCookieFile_SetGet(t *testing.T) {
	c := newTestCookieFile(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyCustomerName, "Ana"))

	value, err := c.Get(ctx, KeyCustomerName)
	require.NoError(t, err)
	assert.Equal(t, "Ana", value)
}

func TestCookieFile_GetMissing(t *testing.T) {
	c := newTestCookieFile(t)

	_, err := c.Get(context.Background(), KeyCustomerName)
	assert.ErrorIs(t, err, ErrNotFound, "a never-written file counts as absent")
}

func TestCookieFile_ExpiredCountsAsAbsent(t *testing.T) {
	c := newTestCookieFile(t)
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, KeyCustomerName, "Ana"))

	// Just before the TTL the value is still there.
	c.now = func() time.Time { return now.Add(cookieTTL - time.Minute) }
	value, err := c.Get(ctx, KeyCustomerName)
	require.NoError(t, err)
	assert.Equal(t, "Ana", value)

	// Past the TTL it is gone.
	c.now = func() time.Time { return now.Add(cookieTTL + time.Minute) }
	_, err = c.Get(ctx, KeyCustomerName)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCookieFile_Delete(t *testing.T) {
	c := newTestCookieFile(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyCustomerName, "Ana"))
	require.NoError(t, c.Delete(ctx, KeyCustomerName))

	_, err := c.Get(ctx, KeyCustomerName)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, c.Delete(ctx, KeyCustomerName), "deleting an absent key is idempotent")
}

func TestCookieFile_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	c := NewCookieFile(filepath.Join(dir, "nested", "deep", "cookies.json"))
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyOrderNote, "sin servilletas"))

	value, err := c.Get(ctx, KeyOrderNote)
	require.NoError(t, err)
	assert.Equal(t, "sin servilletas", value)
}
