package model

// ClassMeeting 课程的一个每周重复时段，与所属课程在同一事务中创建
// Weekday 约定：0=周日 .. 6=周六，与 time.Weekday 一致
type ClassMeeting struct {
	Model
	StudentClassID string `gorm:"type:char(36);not null;index" json:"student_class_id"`
	Weekday        int    `gorm:"not null" json:"weekday"`
	StartTime      string `gorm:"type:time;not null" json:"start_time"` // HH:MM:SS
	EndTime        string `gorm:"type:time;not null" json:"end_time"`   // 必须晚于 StartTime
	RepeatRule     string `gorm:"type:varchar(16);not null;default:weekly" json:"repeat_rule"`
}
