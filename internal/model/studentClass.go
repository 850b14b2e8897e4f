package model

import "time"

// StudentClass 学生的一门课程，创建后不再修改
// 有效期窗口 [StartDate, EndDate] 闭区间，按日期粒度比较
type StudentClass struct {
	Model
	StudentID string    `gorm:"type:varchar(20);not null;index" json:"student_id"`
	ClassCode string    `gorm:"type:varchar(32);not null" json:"class_code"`
	ClassName string    `gorm:"type:varchar(255);not null" json:"class_name"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Section   string    `gorm:"type:varchar(32)" json:"section"`
	Notes     string    `gorm:"type:text" json:"notes"`

	Meetings []ClassMeeting `gorm:"foreignKey:StudentClassID" json:"meetings"`
}
