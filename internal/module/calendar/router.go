package calendar

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化日历模块的路由
func (m *ModuleCalendar) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/calendar")

	group.Use(middleware.Auth(model.RoleStudent))
	{
		// 合并的当日视图：课表 + 活动
		group.GET("/daily", DailyCalendar)
		group.GET("/daily/:date", DailyCalendar)

		// 合并的当月视图
		group.GET("/monthly", MonthlyCalendar)
	}
}
