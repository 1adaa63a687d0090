package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the permission introspection endpoints. Any
// authenticated role may call them, so r must already carry AuthMiddleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rbac := r.Group("/rbac")
	rbac.GET("/permissions", handler.MyPermissions)
	rbac.POST("/enforce", handler.Enforce)
}
