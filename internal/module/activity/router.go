package activity

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化活动模块的路由
// 查询端点对所有登录用户开放，写操作要求干事及以上角色
func (m *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")

	activityGroup.Use(middleware.Auth(model.RoleStudent))
	{
		// 活动缩略图列表（首页卡片）
		activityGroup.GET("/thumbnails", ListThumbnails)

		// 活动完整列表
		activityGroup.GET("", ListActivities)
	}

	officerGroup := r.Group("/activities")
	officerGroup.Use(middleware.Auth(model.RoleOfficer))
	{
		// 创建活动（multipart，可携带图片文件）
		officerGroup.POST("", CreateActivity)

		// 部分更新活动
		officerGroup.PATCH("/:id", UpdateActivity)

		// 删除活动及其图片目录
		officerGroup.DELETE("/:id", DeleteActivity)

		// 生成前端直传图片的预签名 URL
		officerGroup.POST("/presign", PresignUpload)
	}
}
