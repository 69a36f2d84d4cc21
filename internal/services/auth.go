package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/artistdash-backend/internal/clients/redis"
	"github.com/yungbote/artistdash-backend/internal/data/repos"
	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// CapabilityClaims is the signed form of authz.Capability.
type CapabilityClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token      string           `json:"token"`
	ExpiresAt  time.Time        `json:"expires_at"`
	Capability authz.Capability `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// ParseToken verifies a bearer token and returns the request data it carries.
	ParseToken(ctx context.Context, token string) (*ctxutil.RequestData, error)
	Logout(ctx context.Context, rd *ctxutil.RequestData) error
}

type authService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	denylist redis.TokenDenylist
	cfg      AuthConfig
	now      func() time.Time
}

// NewAuthService builds the login/token service. denylist may be nil, in which
// case logout cannot revoke tokens before they expire.
func NewAuthService(baseLog *logger.Logger, userRepo repos.UserRepo, denylist redis.TokenDenylist, cfg AuthConfig) (AuthService, error) {
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("auth: jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 12 * time.Hour
	}
	return &authService{
		log:      baseLog.With("service", "AuthService"),
		userRepo: userRepo,
		denylist: denylist,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

func (as *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperr.ErrUnauthorized)
	}

	user, err := as.userRepo.GetByUsername(dbctx.Context{Ctx: ctx}, username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		as.log.Info("login rejected", "username", username)
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	capability := authz.Capability{UserID: user.ID, Username: user.Username, Role: authz.ParseRole(user.Role)}
	token, expiresAt, err := as.issue(capability)
	if err != nil {
		return nil, err
	}
	as.log.Info("login accepted", "user_id", user.ID, "role", capability.Role)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Capability: capability}, nil
}

func (as *authService) issue(c authz.Capability) (string, time.Time, error) {
	now := as.now()
	expiresAt := now.Add(as.cfg.TokenTTL)
	claims := CapabilityClaims{
		Name: c.Username,
		Role: string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(c.UserID), 10),
			ID:        uuid.NewString(),
			Issuer:    as.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (as *authService) ParseToken(ctx context.Context, token string) (*ctxutil.RequestData, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", apperr.ErrUnauthorized)
	}
	claims := &CapabilityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(as.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(as.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", apperr.ErrUnauthorized)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("malformed token claims: %w", apperr.ErrUnauthorized)
	}

	if as.denylist != nil {
		revoked, err := as.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("token revoked: %w", apperr.ErrUnauthorized)
		}
	}

	return &ctxutil.RequestData{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Unix(),
		Capability: authz.Capability{
			UserID:   uint(userID),
			Username: claims.Name,
			Role:     authz.ParseRole(claims.Role),
		},
	}, nil
}

func (as *authService) Logout(ctx context.Context, rd *ctxutil.RequestData) error {
	if rd == nil || rd.TokenID == "" {
		return fmt.Errorf("no token to revoke: %w", apperr.ErrUnauthorized)
	}
	if as.denylist == nil {
		as.log.Warn("logout without revocation store; token stays valid until expiry", "user_id", rd.Capability.UserID)
		return nil
	}
	if err := as.denylist.Revoke(ctx, rd.TokenID, time.Unix(rd.ExpiresAt, 0)); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	as.log.Info("token revoked", "user_id", rd.Capability.UserID)
	return nil
}

// HashPassword returns the bcrypt hash stored for a new account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser stores a new account with a hashed password. Used by the seed
// command.
func CreateUser(dbc dbctx.Context, userRepo repos.UserRepo, username, password string, role authz.Role) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperr.ErrInvalidArgument)
	}
	exists, err := userRepo.UsernameExists(dbc, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("user %q already exists: %w", username, apperr.ErrConflict)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	created, err := userRepo.Create(dbc, []*types.User{{
		Username:     username,
		PasswordHash: hash,
		Role:         string(role),
	}})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created[0], nil
}
