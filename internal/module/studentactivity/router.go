package studentactivity

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化学生活动参与模块的路由
func (m *ModuleStudentActivity) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/student-activities")

	group.Use(middleware.Auth(model.RoleStudent))
	{
		// 加入活动（至多一次）
		group.POST("", JoinActivity)

		// 当日已加入的活动
		group.GET("/daily", DailyActivities)
		group.GET("/daily/:date", DailyActivities)

		// 当月已加入的活动
		group.GET("/monthly", MonthlyActivities)
	}
}
