package studentclass

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/schedule"
)

// meetingRow 课表查询的扁平行：时段字段 + 所属课程元数据
type meetingRow struct {
	ID             string
	StudentClassID string
	Weekday        int
	StartTime      string
	EndTime        string
	ClassCode      string
	ClassName      string
	Location       string
	Section        string
	StartDate      time.Time
	EndDate        time.Time
}

// meetingsForStudent 加载学生全部课程的每周时段
func meetingsForStudent(studentID string) ([]schedule.Meeting, error) {
	var rows []meetingRow
	err := database.DB.Model(&model.ClassMeeting{}).
		Select("class_meeting.id, class_meeting.student_class_id, class_meeting.weekday, "+
			"class_meeting.start_time, class_meeting.end_time, "+
			"student_class.class_code, student_class.class_name, student_class.location, "+
			"student_class.section, student_class.start_date, student_class.end_date").
		Joins("JOIN student_class ON student_class.id = class_meeting.student_class_id").
		Where("student_class.student_id = ?", studentID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	meetings := make([]schedule.Meeting, 0, len(rows))
	for _, row := range rows {
		meetings = append(meetings, schedule.Meeting{
			ID:         row.ID,
			ClassID:    row.StudentClassID,
			ClassCode:  row.ClassCode,
			ClassName:  row.ClassName,
			Location:   row.Location,
			Section:    row.Section,
			Weekday:    row.Weekday,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
			ClassStart: row.StartDate,
			ClassEnd:   row.EndDate,
		})
	}
	return meetings, nil
}

// cancellationsForStudent 加载学生课程在 [from, to) 内的全部停课记录
func cancellationsForStudent(studentID string, from, to time.Time) ([]schedule.Cancellation, error) {
	var rows []model.ClassCancellation
	err := database.DB.Model(&model.ClassCancellation{}).
		Joins("JOIN class_meeting ON class_meeting.id = class_cancellation.class_meeting_id").
		Joins("JOIN student_class ON student_class.id = class_meeting.student_class_id").
		Where("student_class.student_id = ?", studentID).
		Where("class_cancellation.cancellation_date >= ? AND class_cancellation.cancellation_date < ?", from, to).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cancellations := make([]schedule.Cancellation, 0, len(rows))
	for _, row := range rows {
		cancellations = append(cancellations, schedule.Cancellation{
			MeetingID: row.ClassMeetingID,
			Date:      row.CancellationDate,
		})
	}
	return cancellations, nil
}

// DailyOccurrences 计算学生某天实际要上的课
func DailyOccurrences(studentID string, day time.Time) ([]schedule.Occurrence, error) {
	meetings, err := meetingsForStudent(studentID)
	if err != nil {
		return nil, err
	}
	cancellations, err := cancellationsForStudent(studentID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return schedule.ResolveDaily(meetings, cancellations, day), nil
}

// MonthlyOccurrences 计算学生某月实际要上的课
func MonthlyOccurrences(studentID string, anyDayInMonth time.Time) ([]schedule.Occurrence, error) {
	meetings, err := meetingsForStudent(studentID)
	if err != nil {
		return nil, err
	}
	monthStart, nextMonthStart := schedule.MonthRange(anyDayInMonth)
	cancellations, err := cancellationsForStudent(studentID, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}
	return schedule.ResolveMonthly(meetings, cancellations, anyDayInMonth), nil
}
