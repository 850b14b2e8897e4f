package middleware

import (
	"strings"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 认证中间件，校验访问令牌并检查最低角色要求
// 令牌优先从 Cookie 读取（浏览器端），也接受 Authorization: Bearer（API 调用）
func Auth(minRole model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 登出后的令牌在黑名单中，直到自然过期
		if blacklisted, err := database.TokenBlacklisted(c.Request.Context(), payload.ID); err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			c.Abort()
			return
		} else if blacklisted {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if payload.Role < minRole {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(jwt.CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
