package salary

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(self, management *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	own := self.Group("/salaries")
	{
		own.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnSalary, rbac.ActionView), h.ListMine)
		own.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnSalary, rbac.ActionView), h.GetMine)
	}

	salaries := management.Group("/salaries")
	{
		salaries.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionView), h.GetAll)
		salaries.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionCreate), h.Create)
		salaries.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionView), h.GetById)
		salaries.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionUpdate), h.Update)
		salaries.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionDelete), h.Delete)
	}
}
