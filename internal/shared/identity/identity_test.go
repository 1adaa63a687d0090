package identity_test

import (
	"net/http/httptest"
	"testing"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := identity.ParseRole(" Manager ")
	assert.True(t, ok)
	assert.Equal(t, identity.RoleManager, r)
	assert.True(t, r.Privileged())

	_, ok = identity.ParseRole("owner")
	assert.False(t, ok)
	assert.False(t, identity.RoleStaff.Privileged())
}

func TestFromGin(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		want := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}
		identity.Set(c, want)

		got, err := identity.FromGin(c)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing user id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(identity.KeyRole, "admin")

		_, err := identity.FromGin(c)

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("unknown role", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(identity.KeyUserID, uuid.NewString())
		c.Set(identity.KeyRole, "root")

		_, err := identity.FromGin(c)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}
