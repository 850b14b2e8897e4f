package model

import "time"

// ClassCancellation 某个时段在某一天的停课记录
// (class_meeting_id, cancellation_date) 唯一索引保证同一时段同一天至多取消一次
type ClassCancellation struct {
	ID               string    `gorm:"type:char(36);primaryKey" json:"id"`
	ClassMeetingID   string    `gorm:"type:char(36);not null;uniqueIndex:uk_meeting_date" json:"class_meeting_id"`
	CancellationDate time.Time `gorm:"type:date;not null;uniqueIndex:uk_meeting_date" json:"cancellation_date"`
	CreatedBy        string    `gorm:"type:varchar(20);not null" json:"created_by"`
	Reason           string    `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}
