package model

import "time"

// StudentActivity 学生-活动参与关系
// (student_id, activity_id) 唯一索引保证同一学生对同一活动至多加入一次，
// 并发重复请求也由该约束兜底
type StudentActivity struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	StudentID  string    `gorm:"type:varchar(20);not null;uniqueIndex:uk_student_activity" json:"student_id"`
	ActivityID string    `gorm:"type:char(36);not null;uniqueIndex:uk_student_activity" json:"activity_id"`
	AddedAt    time.Time `gorm:"not null" json:"added_at"`
}
