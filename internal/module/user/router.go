package user

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
// 所有认证相关端点以 /auth 为前缀
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	// 注册与登录无需携带令牌
	authGroup.POST("/register", Register)
	authGroup.POST("/login", Login)

	authGroup.Use(middleware.Auth(model.RoleStudent))
	{
		// 登出需要有效令牌，以便拉黑其 jti
		authGroup.POST("/logout", Logout)

		// 校验当前令牌是否有效
		authGroup.GET("/check", Check)

		// 获取当前用户信息
		authGroup.GET("/user/home", Home)
	}
}
