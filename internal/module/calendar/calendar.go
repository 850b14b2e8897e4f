package calendar

import (
	"time"

	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/module/studentactivity"
	"campus-activity-system/internal/module/studentclass"
	"campus-activity-system/internal/schedule"

	"github.com/gin-gonic/gin"
)

// CalendarView 日历视图：同一时间窗内的课表与活动
type CalendarView struct {
	Date       string                `json:"date"` // YYYY-MM-DD（月视图为当月首日）
	Classes    []schedule.Occurrence `json:"classes"`
	Activities []model.Activity      `json:"activities"`
}

// parseDate 解析 YYYY-MM-DD，缺省为当前 UTC 日期
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(schedule.DateLayout, raw)
}

// DailyCalendar 获取某天的合并日历：实际要上的课 + 当天相关的活动
func DailyCalendar(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	day, err := parseDate(c.Param("date"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("日期格式应为 YYYY-MM-DD"))
		return
	}

	occurrences, err := studentclass.DailyOccurrences(payload.StudentID, day)
	if err != nil {
		log.Error("查询当日课表失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	activities, err := studentactivity.JoinedActivitiesBetween(payload.StudentID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Error("查询当日活动失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, CalendarView{
		Date:       day.Format(schedule.DateLayout),
		Classes:    occurrences,
		Activities: activities,
	})
}

// MonthlyCalendar 获取某月的合并日历
func MonthlyCalendar(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	anyDay, err := parseDate(c.Query("date"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("日期格式应为 YYYY-MM-DD"))
		return
	}

	occurrences, err := studentclass.MonthlyOccurrences(payload.StudentID, anyDay)
	if err != nil {
		log.Error("查询当月课表失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	monthStart, nextMonthStart := schedule.MonthRange(anyDay)
	activities, err := studentactivity.JoinedActivitiesBetween(payload.StudentID, monthStart, nextMonthStart)
	if err != nil {
		log.Error("查询当月活动失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, CalendarView{
		Date:       monthStart.Format(schedule.DateLayout),
		Classes:    occurrences,
		Activities: activities,
	})
}
