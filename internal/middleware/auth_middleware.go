package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

// AuthMiddleware validates an HS256 token issued elsewhere and exposes the
// caller as identity.Actor. Tokens must carry user_id and role claims.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.CodeUnauthorized, "Token not found")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = apperror.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, apperror.ErrInvalidToken.HTTPStatus, apperror.CodeInvalidToken, "Invalid token claims")
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			response.Abort(c, apperror.ErrInvalidToken.HTTPStatus, apperror.CodeInvalidToken, "User ID not found in token")
			return
		}

		rawRole, _ := claims["role"].(string)
		role, ok := identity.ParseRole(rawRole)
		if !ok {
			response.Abort(c, apperror.ErrInvalidToken.HTTPStatus, apperror.CodeInvalidToken, "Role not found in token")
			return
		}

		c.Set(identity.KeyUserID, userID)
		c.Set(identity.KeyRole, string(role))

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithRole(ctx, string(role))
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", userID),
			zap.String("role", string(role)),
		)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a whole route group by role, before any RBAC check.
func RequireRoles(allowedRoles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := identity.ParseRole(c.GetString(identity.KeyRole))
		if !ok {
			abortWith(c, apperror.ErrForbidden)
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abortWith(c, apperror.ErrForbidden)
	}
}

// RequirePrivileged admits admins and managers only.
func RequirePrivileged() gin.HandlerFunc {
	return RequireRoles(identity.RoleAdmin, identity.RoleManager)
}
