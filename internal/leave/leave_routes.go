package leave

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the self-service routes on self and the
// administrative ones on management. Both groups must already run
// AuthMiddleware; management must also be restricted to privileged roles.
// rdb enables Idempotency-Key handling on creates and may be nil.
func RegisterRoutes(
	self *gin.RouterGroup,
	management *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	idempotent := func(c *gin.Context) { c.Next() }
	if rdb != nil {
		idempotent = middleware.Idempotency(rdb)
	}

	own := self.Group("/leaves")
	{
		own.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionView), handler.ListMine)
		own.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionView), handler.GetMine)
		own.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionCreate), idempotent, handler.Submit)
		own.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionUpdate), handler.UpdateMine)
		own.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceOwnLeave, rbac.ActionDelete), handler.DeleteMine)
	}

	leaves := management.Group("/leaves")
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionView), handler.GetAll)
		leaves.GET("/review", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReview), handler.ReviewQueue)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionView), handler.GetById)
		leaves.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate), idempotent, handler.Create)
		leaves.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionUpdate), handler.Update)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReview), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReview), handler.Reject)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionDelete), handler.Delete)
	}
}
