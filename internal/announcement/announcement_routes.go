package announcement

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(self, management *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	feed := self.Group("/announcements")
	{
		feed.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionView), h.Feed)
		feed.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionView), h.GetById)
	}

	announcements := management.Group("/announcements")
	{
		announcements.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionView), h.GetAll)
		announcements.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionCreate), h.Create)
		announcements.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionView), h.GetById)
		announcements.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionUpdate), h.Update)
		announcements.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionDelete), h.Delete)
	}
}
