package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	lastReq EnforceRequest
}

func (m *stubService) LoadPolicy(map[identity.Role][]Permission) error { return nil }

func (m *stubService) Enforce(req EnforceRequest) (bool, error) {
	m.lastReq = req
	return req.Role == "manager" && req.Resource == "leave" && req.Action == "review", nil
}

func (m *stubService) PermissionsFor(role string) ([]string, error) {
	return []string{"leave:review"}, nil
}

func newRouter(h *Handler, role identity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		identity.Set(c, identity.Actor{UserID: uuid.New(), Role: role})
		c.Next()
	})
	RegisterRoutes(router.Group(""), h)
	return router
}

func TestHandler_Enforce(t *testing.T) {
	svc := &stubService{}
	router := newRouter(NewHandler(svc), identity.RoleManager)

	body, _ := json.Marshal(EnforceRequest{Role: "admin", Resource: "leave", Action: "review"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Ok   bool            `json:"ok"`
		Data EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Data.Allowed)
	// the caller cannot ask on behalf of another role
	assert.Equal(t, "manager", svc.lastReq.Role)
}

func TestHandler_MyPermissions(t *testing.T) {
	router := newRouter(NewHandler(&stubService{}), identity.RoleManager)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leave:review")
}
