package model

import (
	"time"
)

// Model 业务实体公共字段，主键为应用侧生成的 UUID
// 课程/取消/成员关系等行创建后不再修改，因此不携带软删除字段
type Model struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
