package model

import (
	"encoding/json"
	"time"
)

// ActivityStatus 活动状态枚举
type ActivityStatus string

const (
	StatusUpcoming  ActivityStatus = "upcoming"
	StatusRunning   ActivityStatus = "running"
	StatusFinished  ActivityStatus = "finished"
	StatusCancelled ActivityStatus = "cancelled"
)

func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusRunning, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// ActivityCategory 活动分类枚举，同时作为图片存储路径的一级目录
type ActivityCategory string

const (
	CategoryAcademics   ActivityCategory = "academics"
	CategoryRecreations ActivityCategory = "recreations"
	CategorySocials     ActivityCategory = "socials"
	CategoryOther       ActivityCategory = "other"
)

func (c ActivityCategory) Valid() bool {
	switch c {
	case CategoryAcademics, CategoryRecreations, CategorySocials, CategoryOther:
		return true
	}
	return false
}

// ContactInfo 联系方式，渠道名 -> 联系值，存储为 JSON 列
type ContactInfo map[string]string

type Activity struct {
	Model
	CreatedBy    string           `gorm:"type:varchar(20);not null;index" json:"created_by"` // 创建者学号
	Title        string           `gorm:"type:varchar(255);not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	StartAt      time.Time        `gorm:"not null" json:"start_at"`
	EndAt        time.Time        `gorm:"not null" json:"end_at"` // 必须晚于 StartAt
	LocationText string           `gorm:"type:varchar(255)" json:"location_text"`
	ContactInfo  ContactInfo      `gorm:"serializer:json" json:"contact_info"`
	ImagePath    string           `gorm:"type:varchar(512)" json:"image_path"`
	Status       ActivityStatus   `gorm:"type:varchar(16);not null" json:"status"`
	Category     ActivityCategory `gorm:"type:varchar(16);not null" json:"category"`
}

// ActivityThumbnail 活动缩略图视图，仅含列表页需要的列
type ActivityThumbnail struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	ImagePath string           `json:"image_path"`
	StartAt   time.Time        `json:"start_at"`
	Status    ActivityStatus   `json:"status"`
	Category  ActivityCategory `json:"category"`
}

// ParseContactInfo 解析 multipart 表单中的 contact_info JSON 字符串
func ParseContactInfo(raw string) (ContactInfo, error) {
	var info ContactInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, err
	}
	return info, nil
}
