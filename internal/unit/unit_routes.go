package unit

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(management *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	units := management.Group("/units")
	{
		units.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceUnit, rbac.ActionView), h.GetAll)
		units.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceUnit, rbac.ActionCreate), h.Create)
		units.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUnit, rbac.ActionView), h.GetById)
		units.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUnit, rbac.ActionUpdate), h.Update)
		units.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUnit, rbac.ActionDelete), h.Delete)
	}
}
