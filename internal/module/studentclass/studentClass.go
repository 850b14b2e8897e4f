package studentclass

import (
	"fmt"
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/schedule"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// MeetingReq 定义课程时段的请求结构体
type MeetingReq struct {
	Weekday   int    `json:"weekday"`                      // 0=周日 .. 6=周六
	StartTime string `json:"start_time" binding:"required"` // HH:MM:SS
	EndTime   string `json:"end_time" binding:"required"`
}

// ClassCreateReq 定义创建课程请求的结构体
type ClassCreateReq struct {
	StudentID string       `json:"student_id" binding:"required"` // 上课学生学号
	ClassCode string       `json:"class_code" binding:"required"`
	ClassName string       `json:"class_name" binding:"required"`
	StartDate string       `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string       `json:"end_date" binding:"required"`
	Location  string       `json:"location"`
	Section   string       `json:"section"`
	Notes     string       `json:"notes"`
	Meetings  []MeetingReq `json:"meetings" binding:"required,min=1"`
}

const timeOfDayLayout = "15:04:05"

// validateMeeting 校验单个时段：星期在 0..6，时间格式合法且结束晚于开始
func validateMeeting(m MeetingReq) error {
	if m.Weekday < 0 || m.Weekday > 6 {
		return errors.New("星期必须在 0（周日）到 6（周六）之间")
	}
	start, err := time.Parse(timeOfDayLayout, m.StartTime)
	if err != nil {
		return errors.New("开始时间格式应为 HH:MM:SS")
	}
	end, err := time.Parse(timeOfDayLayout, m.EndTime)
	if err != nil {
		return errors.New("结束时间格式应为 HH:MM:SS")
	}
	if !end.After(start) {
		return errors.New("时段结束时间必须晚于开始时间")
	}
	return nil
}

// CreateClass 处理创建课程请求，课程及其全部时段在同一事务中写入
func CreateClass(c *gin.Context) {
	var req ClassCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建课程请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	startDate, err := time.Parse(schedule.DateLayout, req.StartDate)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("开始日期格式应为 YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse(schedule.DateLayout, req.EndDate)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("结束日期格式应为 YYYY-MM-DD"))
		return
	}
	if endDate.Before(startDate) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("结束日期不能早于开始日期"))
		return
	}

	for _, m := range req.Meetings {
		if err := validateMeeting(m); err != nil {
			log.Warn("课程时段校验失败", "error", err, "class_code", req.ClassCode)
			response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
			return
		}
	}

	class := model.StudentClass{
		Model:     model.Model{ID: uuid.NewString()},
		StudentID: req.StudentID,
		ClassCode: req.ClassCode,
		ClassName: req.ClassName,
		StartDate: startDate,
		EndDate:   endDate,
		Location:  req.Location,
		Section:   req.Section,
		Notes:     req.Notes,
	}
	for _, m := range req.Meetings {
		class.Meetings = append(class.Meetings, model.ClassMeeting{
			Model:          model.Model{ID: uuid.NewString()},
			StudentClassID: class.ID,
			Weekday:        m.Weekday,
			StartTime:      m.StartTime,
			EndTime:        m.EndTime,
			RepeatRule:     "weekly",
		})
	}

	// 课程与时段要么全部写入，要么全部不写
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&class).Error
	}); err != nil {
		log.Error("创建课程失败", "error", err, "class_code", req.ClassCode)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("课程创建成功",
		"id", class.ID,
		"class_code", class.ClassCode,
		"student_id", class.StudentID,
		"meetings", len(class.Meetings))

	response.Success(c, class)
}

// parseDate 解析 YYYY-MM-DD，缺省为当前 UTC 日期
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(schedule.DateLayout, raw)
}

// DailySchedule 获取某天实际要上的课
func DailySchedule(c *gin.Context) {
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

	occurrences, err := DailyOccurrences(payload.StudentID, day)
	if err != nil {
		log.Error("查询当日课表失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, occurrences)
}

// MonthlySchedule 获取某月实际要上的课
func MonthlySchedule(c *gin.Context) {
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

	occurrences, err := MonthlyOccurrences(payload.StudentID, anyDay)
	if err != nil {
		log.Error("查询当月课表失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, occurrences)
}

// scheduleExportRow 课表导出的 Excel 行
type scheduleExportRow struct {
	Date      string `excel:"日期"`
	ClassCode string `excel:"课程代码"`
	ClassName string `excel:"课程名称"`
	StartTime string `excel:"开始时间"`
	EndTime   string `excel:"结束时间"`
	Location  string `excel:"地点"`
	Section   string `excel:"节次"`
}

// ExportMonthlySchedule 将某月课表导出为 Excel 文件
func ExportMonthlySchedule(c *gin.Context) {
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

	occurrences, err := MonthlyOccurrences(payload.StudentID, anyDay)
	if err != nil {
		log.Error("查询当月课表失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]scheduleExportRow, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, scheduleExportRow{
			Date:      occ.Date,
			ClassCode: occ.ClassCode,
			ClassName: occ.ClassName,
			StartTime: occ.StartTime,
			EndTime:   occ.EndTime,
			Location:  occ.Location,
			Section:   occ.Section,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	monthStart, _ := schedule.MonthRange(anyDay)
	sheet := monthStart.Format("2006-01")
	if err := tools.ExportToExcel(f, sheet, rows); err != nil {
		log.Error("生成课表 Excel 失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("课表_%s.xlsx", sheet)
	if err := tools.SendExcel(c, f, fileName); err != nil {
		log.Error("下发课表 Excel 失败", "error", err, "student_id", payload.StudentID)
	}
}

// CancelReq 定义停课请求的结构体
type CancelReq struct {
	ClassMeetingID   string `json:"class_meeting_id" binding:"required"`
	CancellationDate string `json:"cancellation_date" binding:"required"` // YYYY-MM-DD
	Reason           string `json:"reason"`
}

// CancelMeeting 处理停课请求
// 所有权查询、鉴权与写入在同一事务内完成，避免查完权限后时段被改动
func CancelMeeting(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定停课请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	cancellationDate, err := time.Parse(schedule.DateLayout, req.CancellationDate)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("停课日期格式应为 YYYY-MM-DD"))
		return
	}

	var cancellation model.ClassCancellation
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		// 查出时段所属课程的学生
		var owner struct{ StudentID string }
		err := tx.Model(&model.ClassMeeting{}).
			Select("student_class.student_id").
			Joins("JOIN student_class ON student_class.id = class_meeting.student_class_id").
			Where("class_meeting.id = ?", req.ClassMeetingID).
			Take(&owner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("课程时段不存在", "class_meeting_id", req.ClassMeetingID)
				return response.ErrNotFound.WithTips("课程时段不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if !schedule.CanCancel(payload.Role, payload.StudentID, owner.StudentID) {
			log.Warn("无权限停课",
				"class_meeting_id", req.ClassMeetingID,
				"student_id", payload.StudentID,
				"owner_id", owner.StudentID)
			return response.ErrForbidden.WithTips("无权限对该课程停课")
		}

		cancellation = model.ClassCancellation{
			ID:               uuid.NewString(),
			ClassMeetingID:   req.ClassMeetingID,
			CancellationDate: cancellationDate,
			CreatedBy:        payload.StudentID,
			Reason:           req.Reason,
		}
		if err := tx.Create(&cancellation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("该时段当日已停课",
					"class_meeting_id", req.ClassMeetingID,
					"date", req.CancellationDate)
				return response.ErrAlreadyExists.WithTips("该时段当日已停课")
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return response.ErrNotFound.WithTips("课程时段不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		return nil
	})
	if txErr != nil {
		response.Fail(c, txErr)
		return
	}

	log.Info("停课成功",
		"class_meeting_id", req.ClassMeetingID,
		"date", req.CancellationDate,
		"created_by", payload.StudentID)

	response.Success(c, cancellation)
}
