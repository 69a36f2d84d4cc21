package redis

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func TestNewTokenDenylistRequiresAddr(t *testing.T) {
	_, err := NewTokenDenylist(testLogger(t), Config{Addr: "  "})
	require.Error(t, err)

	_, err = NewTokenDenylist(nil, Config{Addr: "localhost:6379"})
	require.Error(t, err)
}

func TestNilDenylistReportsNotInitialized(t *testing.T) {
	var d *tokenDenylist
	assert.Error(t, d.Revoke(context.Background(), "jti", time.Now().Add(time.Hour)))
	_, err := d.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
	assert.NoError(t, d.Close())
}

// Needs a live server: TEST_REDIS_ADDR=localhost:6379.
func TestTokenDenylistRoundTrip(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	prefix := "artistdash-test:" + uuid.NewString() + ":"
	d, err := NewTokenDenylist(testLogger(t), Config{Addr: addr, KeyPrefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	ctx := context.Background()
	revoked, err := d.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "live", time.Now().Add(time.Minute)))
	revoked, err = d.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Already expired tokens are not stored.
	require.NoError(t, d.Revoke(ctx, "stale", time.Now().Add(-time.Minute)))
	revoked, err = d.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.Error(t, d.Revoke(ctx, " ", time.Now().Add(time.Minute)))
}
