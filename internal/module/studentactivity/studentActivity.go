package studentactivity

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// JoinReq 定义加入活动请求的结构体
type JoinReq struct {
	ActivityID string `json:"activity_id" binding:"required"`
}

// JoinActivity 处理学生加入活动请求
// 同一学生对同一活动至多加入一次：先查已有记录，唯一索引兜底并发窗口
func JoinActivity(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req JoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定加入活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 活动必须存在
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", req.ActivityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "activity_id", req.ActivityID)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "activity_id", req.ActivityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var existing model.StudentActivity
	err := database.DB.Where("student_id = ? AND activity_id = ?", payload.StudentID, req.ActivityID).
		First(&existing).Error
	if err == nil {
		log.Warn("重复加入活动", "student_id", payload.StudentID, "activity_id", req.ActivityID)
		response.Fail(c, response.ErrAlreadyExists.WithTips("已加入该活动"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("查询参与记录失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	record := model.StudentActivity{
		ID:         uuid.NewString(),
		StudentID:  payload.StudentID,
		ActivityID: req.ActivityID,
		AddedAt:    time.Now().UTC(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("重复加入活动", "student_id", payload.StudentID, "activity_id", req.ActivityID)
			response.Fail(c, response.ErrAlreadyExists.WithTips("已加入该活动"))
			return
		}
		log.Error("创建参与记录失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("加入活动成功",
		"student_id", payload.StudentID,
		"activity_id", req.ActivityID)

	response.Success(c, record)
}

// JoinedActivitiesBetween 查询学生已加入且与给定时间窗重叠的活动
// 重叠判定：start_at < windowEnd AND end_at > windowStart
func JoinedActivitiesBetween(studentID string, windowStart, windowEnd time.Time) ([]model.Activity, error) {
	var activities []model.Activity
	err := database.DB.Model(&model.Activity{}).
		Joins("JOIN student_activity ON student_activity.activity_id = activity.id").
		Where("student_activity.student_id = ?", studentID).
		Where("activity.start_at < ? AND activity.end_at > ?", windowEnd, windowStart).
		Order("activity.start_at ASC").
		Find(&activities).Error
	return activities, err
}

// parseDate 解析 YYYY-MM-DD，缺省为当前 UTC 日期
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(schedule.DateLayout, raw)
}

// DailyActivities 获取某天与学生相关的活动，按开始时间升序
func DailyActivities(c *gin.Context) {
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

	activities, err := JoinedActivitiesBetween(payload.StudentID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Error("查询当日活动失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, activities)
}

// MonthlyActivities 获取某月与学生相关的活动，按开始时间升序
func MonthlyActivities(c *gin.Context) {
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

	monthStart, nextMonthStart := schedule.MonthRange(anyDay)
	activities, err := JoinedActivitiesBetween(payload.StudentID, monthStart, nextMonthStart)
	if err != nil {
		log.Error("查询当月活动失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, activities)
}
