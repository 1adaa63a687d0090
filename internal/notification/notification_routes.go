package notification

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	n := r.Group("/notifications")
	{
		n.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnNotification, rbac.ActionView), handler.List)
		n.GET("/unread-count", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnNotification, rbac.ActionView), handler.UnreadCount)
		n.PATCH("/:id/read", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnNotification, rbac.ActionUpdate), handler.MarkRead)
		n.POST("/read-all", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnNotification, rbac.ActionUpdate), handler.MarkAllRead)
	}
}
