package identity

import (
	"strings"

	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// gin context keys written by the auth middleware
const (
	KeyUserID = "user_id"
	KeyRole   = "role"
)

func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Privileged reports whether the role belongs to administrative staff.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// Actor is the authenticated caller, passed explicitly into service operations.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) ID() string {
	return a.UserID.String()
}

func FromGin(c *gin.Context) (Actor, error) {
	uid, err := uuid.Parse(c.GetString(KeyUserID))
	if err != nil {
		return Actor{}, apperror.ErrUnauthorized
	}
	role, ok := ParseRole(c.GetString(KeyRole))
	if !ok {
		return Actor{}, apperror.ErrForbidden
	}
	return Actor{UserID: uid, Role: role}, nil
}

// Set is the inverse of FromGin, used by the auth middleware and tests.
func Set(c *gin.Context, a Actor) {
	c.Set(KeyUserID, a.UserID.String())
	c.Set(KeyRole, string(a.Role))
}
