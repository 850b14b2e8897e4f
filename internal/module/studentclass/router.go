package studentclass

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化课程模块的路由
func (m *ModuleStudentClass) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/student-classes")

	group.Use(middleware.Auth(model.RoleStudent))
	{
		// 当日课表
		group.GET("/daily", DailySchedule)
		group.GET("/daily/:date", DailySchedule)

		// 当月课表
		group.GET("/monthly", MonthlySchedule)

		// 当月课表导出为 Excel
		group.GET("/monthly/export", ExportMonthlySchedule)

		// 停课可由学生本人发起，权限在事务内由停课鉴权判定
		group.POST("/cancel", CancelMeeting)
	}

	officerGroup := r.Group("/student-classes")
	officerGroup.Use(middleware.Auth(model.RoleOfficer))
	{
		// 创建课程及其每周时段（单事务）
		officerGroup.POST("", CreateClass)
	}
}
