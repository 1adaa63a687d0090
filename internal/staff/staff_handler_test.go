package staff_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/staff"
	stafferrors "go-hrms/internal/staff/errors"
	staffMock "go-hrms/internal/staff/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

func newRouter(t *testing.T, svc staff.Service, actor identity.Actor) *gin.Engine {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	rbacSvc := rbac.NewService(enforcer)
	assert.NoError(t, rbacSvc.LoadPolicy(rbac.DefaultPolicy()))

	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) { identity.Set(c, actor); c.Next() })
	staff.RegisterRoutes(api, api.Group("/management"), staff.NewHandler(svc), rbacSvc)
	return r
}

const createBody = `{"first_name":"jane","last_name":"doe","email":"jane@example.com","identity_number":"12345678901","phone":"05551234567","role":"staff"}`

func TestStaffHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := staffMock.NewMockService(ctrl)
		actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleManager}

		svc.EXPECT().Create(gomock.Any(), actor, gomock.Any()).
			Return(staff.StaffResponse{ID: uuid.NewString(), StaffNumber: "STF-000001"}, nil)

		w := httptest.NewRecorder()
		newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/management/users", strings.NewReader(createBody)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"staff_number":"STF-000001"`)
	})

	t.Run("identity number must have eleven digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := staffMock.NewMockService(ctrl)
		body := strings.Replace(createBody, "12345678901", "123", 1)

		w := httptest.NewRecorder()
		newRouter(t, svc, identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/management/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"identity_number"`)
	})

	t.Run("staff role is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := staffMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		newRouter(t, svc, identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/management/users", strings.NewReader(createBody)))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStaffHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := staffMock.NewMockService(ctrl)
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}

	svc.EXPECT().Profile(gomock.Any(), actor).Return(staff.StaffResponse{ID: actor.ID(), FullName: "Jane Doe"}, nil)

	w := httptest.NewRecorder()
	newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_name":"Jane Doe"`)
}

func TestStaffHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := staffMock.NewMockService(ctrl)
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}

	svc.EXPECT().Delete(gomock.Any(), actor, actor.ID()).Return(stafferrors.ErrCannotDeleteSelf)

	w := httptest.NewRecorder()
	newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/management/users/"+actor.ID(), nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"FORBIDDEN"`)
}
