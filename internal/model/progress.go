// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassContentProgress は教材と受講登録の結合エンティティです。
// 最初の操作で遅延作成され、以後はトグルされる。
type ClassContentProgress struct {
	ContentProgressID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"content_progress_id"`
	ContentID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_content_enrollment,unique" json:"content_id"` // 複合ユニークインデックスの一部
	EnrollmentID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_content_enrollment,unique" json:"enrollment_id"`
	IsCompleted       bool       `gorm:"not null;default:false" json:"is_completed"`
	StartedAt         time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// 関連 (Preload用)
	Content *ClassContent `gorm:"foreignKey:ContentID;references:ContentID" json:"-"`
}

func (ClassContentProgress) TableName() string {
	return "class_content_progress"
}
