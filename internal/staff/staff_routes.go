package staff

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(self, management *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	me := self.Group("/me")
	{
		me.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionView), h.Profile)
		me.PUT("/password", middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionUpdate), h.ChangePassword)
	}

	users := management.Group("/users")
	{
		users.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionView), h.GetAll)
		users.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionCreate), h.Create)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionView), h.GetById)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate), h.Update)
		users.PUT("/:id/password", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate), h.ResetPassword)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionDelete), h.Delete)
	}
}
