// Package authz holds the caller capability passed explicitly into every service
// call and the closed role -> operation table.
package authz

import (
	"fmt"
	"strings"

	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// ParseRole normalizes a stored role; unknown roles map to viewer.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	default:
		return RoleViewer
	}
}

type Operation string

const (
	OpReadReports Operation = "reports:read"
	OpInsert      Operation = "catalog:insert"
	OpDelete      Operation = "catalog:delete"
)

var grants = map[Operation][]Role{
	OpReadReports: {RoleAdmin, RoleManager, RoleViewer},
	OpInsert:      {RoleAdmin, RoleManager},
	OpDelete:      {RoleAdmin},
}

// Capability identifies an authenticated caller. The zero value grants nothing.
type Capability struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (c Capability) Authenticated() bool {
	return c.UserID != 0 && c.Role != ""
}

func (c Capability) Allows(op Operation) bool {
	if !c.Authenticated() {
		return false
	}
	for _, r := range grants[op] {
		if r == c.Role {
			return true
		}
	}
	return false
}

// Require returns ErrUnauthorized for an anonymous capability and ErrForbidden when
// the role does not grant op.
func (c Capability) Require(op Operation) error {
	if !c.Authenticated() {
		return apperr.ErrUnauthorized
	}
	if !c.Allows(op) {
		return fmt.Errorf("%s requires another role than %q: %w", op, c.Role, apperr.ErrForbidden)
	}
	return nil
}
