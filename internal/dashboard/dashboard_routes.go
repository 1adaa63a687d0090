package dashboard

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(management *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	management.GET("/dashboard", middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionView), h.Summary)
}
