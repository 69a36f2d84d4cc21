package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/artistdash-backend/internal/data/repos"
	"github.com/yungbote/artistdash-backend/internal/data/repos/testutil"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
)

const testSecret = "test-secret-please-ignore"

func newTestAuthService(t *testing.T, denylist *memoryDenylist) AuthService {
	t.Helper()
	db := testutil.SQLite(t)
	userRepo := repos.NewUserRepo(db, testutil.Logger(t))
	_, err := CreateUser(dbctx.Context{Ctx: context.Background()}, userRepo, "maria", "s3cret", authz.RoleManager)
	require.NoError(t, err)

	cfg := AuthConfig{JWTSecret: testSecret, TokenTTL: time.Hour, Issuer: "artistdash-test"}
	var svc AuthService
	if denylist != nil {
		svc, err = NewAuthService(testutil.Logger(t), userRepo, denylist, cfg)
	} else {
		svc, err = NewAuthService(testutil.Logger(t), userRepo, nil, cfg)
	}
	require.NoError(t, err)
	return svc
}

func TestLoginAndParseRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, newMemoryDenylist())
	ctx := context.Background()

	res, err := svc.Login(ctx, " maria ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "maria", res.Capability.Username)
	assert.Equal(t, authz.RoleManager, res.Capability.Role)
	assert.NotZero(t, res.Capability.UserID)

	rd, err := svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Capability, rd.Capability)
	assert.NotEmpty(t, rd.TokenID)
	assert.Equal(t, res.ExpiresAt.Unix(), rd.ExpiresAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t, nil)
	ctx := context.Background()

	for _, tc := range []struct{ user, pass string }{
		{"maria", "wrong"},
		{"nobody", "s3cret"},
		{"", ""},
	} {
		_, err := svc.Login(ctx, tc.user, tc.pass)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized, "user=%q", tc.user)
	}
}

func TestParseTokenRejects(t *testing.T) {
	svc := newTestAuthService(t, nil)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = svc.ParseToken(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CapabilityClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "x",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, forged)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CapabilityClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "y",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, expired)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestLogoutRevokesToken(t *testing.T) {
	denylist := newMemoryDenylist()
	svc := newTestAuthService(t, denylist)
	ctx := context.Background()

	res, err := svc.Login(ctx, "maria", "s3cret")
	require.NoError(t, err)
	rd, err := svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, rd))
	_, err = svc.ParseToken(ctx, res.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestLogoutWithoutDenylistIsNoop(t *testing.T) {
	svc := newTestAuthService(t, nil)
	ctx := context.Background()

	res, err := svc.Login(ctx, "maria", "s3cret")
	require.NoError(t, err)
	rd, err := svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, rd))
	_, err = svc.ParseToken(ctx, res.Token)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Logout(ctx, nil), apperr.ErrUnauthorized)
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService(testutil.Logger(t), nil, nil, AuthConfig{})
	assert.Error(t, err)
}

func TestCreateUserRejectsDuplicate(t *testing.T) {
	db := testutil.SQLite(t)
	userRepo := repos.NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	u, err := CreateUser(dbc, userRepo, "ana", "pw", authz.RoleViewer)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", u.PasswordHash)

	_, err = CreateUser(dbc, userRepo, "ana", "pw2", authz.RoleViewer)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}
