package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeService struct {
	listMine    func(ctx context.Context, actor identity.Actor, q notification.ListQuery) ([]notification.NotificationResponse, int64, error)
	unreadCount func(ctx context.Context, actor identity.Actor) (int64, error)
	markRead    func(ctx context.Context, actor identity.Actor, id string) error
	markAllRead func(ctx context.Context, actor identity.Actor) (int64, error)
}

func (f *fakeService) NotifyLeaveReviewed(context.Context, string, events.LeaveReviewedEvent) error {
	return nil
}

func (f *fakeService) ListMine(ctx context.Context, actor identity.Actor, q notification.ListQuery) ([]notification.NotificationResponse, int64, error) {
	return f.listMine(ctx, actor, q)
}

func (f *fakeService) UnreadCount(ctx context.Context, actor identity.Actor) (int64, error) {
	return f.unreadCount(ctx, actor)
}

func (f *fakeService) MarkRead(ctx context.Context, actor identity.Actor, id string) error {
	return f.markRead(ctx, actor, id)
}

func (f *fakeService) MarkAllRead(ctx context.Context, actor identity.Actor) (int64, error) {
	return f.markAllRead(ctx, actor)
}

func newRouter(t *testing.T, svc notification.Service, actor identity.Actor) *gin.Engine {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	rbacSvc := rbac.NewService(enforcer)
	assert.NoError(t, rbacSvc.LoadPolicy(rbac.DefaultPolicy()))

	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) { identity.Set(c, actor); c.Next() })
	notification.RegisterRoutes(api, notification.NewHandler(svc), rbacSvc)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}
	var got notification.ListQuery
	svc := &fakeService{
		listMine: func(_ context.Context, a identity.Actor, q notification.ListQuery) ([]notification.NotificationResponse, int64, error) {
			assert.Equal(t, actor, a)
			got = q
			return []notification.NotificationResponse{{ID: uuid.NewString(), Title: "Leave request Approved"}}, 12, nil
		},
	}

	w := httptest.NewRecorder()
	newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications?unread=true&page=2&page_size=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.Unread)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.PageSize)

	var env struct {
		Ok   bool `json:"ok"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, int64(12), env.Meta.Total)
	assert.Equal(t, 3, env.Meta.TotalPages)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleStaff}
	id := uuid.NewString()

	t.Run("no content", func(t *testing.T) {
		svc := &fakeService{markRead: func(_ context.Context, _ identity.Actor, got string) error {
			assert.Equal(t, id, got)
			return nil
		}}

		w := httptest.NewRecorder()
		newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/"+id+"/read", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{markRead: func(context.Context, identity.Actor, string) error {
			return notificationerrors.ErrNotificationNotFound
		}}

		w := httptest.NewRecorder()
		newRouter(t, svc, actor).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/"+id+"/read", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
	})
}

func TestNotificationHandler_Counts(t *testing.T) {
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleManager}
	svc := &fakeService{
		unreadCount: func(context.Context, identity.Actor) (int64, error) { return 7, nil },
		markAllRead: func(context.Context, identity.Actor) (int64, error) { return 7, nil },
	}
	r := newRouter(t, svc, actor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unread":7`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":7`)
}
