// internal/model/class.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscipleshipClass は定期開催される弟子訓練クラスを表します
type DiscipleshipClass struct {
	ClassID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"class_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description,omitempty"`
	MentorID    uuid.UUID      `gorm:"type:uuid;not null" json:"mentor_id"` // 承認者として記録されるメンター
	Capacity    int            `gorm:"not null" json:"capacity"`            // 1以上
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DiscipleshipClass) TableName() string {
	return "discipleship_classes"
}

// ClassSession はクラスの1回分の集会を表します
type ClassSession struct {
	SessionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	ClassID     uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	SessionDate time.Time `gorm:"not null" json:"session_date"`
	Topic       string    `json:"topic,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Class *DiscipleshipClass `gorm:"foreignKey:ClassID;references:ClassID" json:"-"`
}

func (ClassSession) TableName() string {
	return "class_sessions"
}

// ClassContent はクラス教材の1単位 (レッスン・課題など) を表します。
// 進捗計算の対象になるのは IsPublished = true のものだけ。
type ClassContent struct {
	ContentID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"content_id"`
	ClassID     uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	Title       string    `gorm:"not null" json:"title"`
	ContentType string    `gorm:"type:varchar(30);not null;default:'lesson'" json:"content_type"`
	WeekNumber  *int      `json:"week_number,omitempty"`
	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ClassContent) TableName() string {
	return "class_contents"
}

// ContentWithProgress は教材一覧レスポンス用に、呼び出し元メンバーの完了状態を載せたDTO
type ContentWithProgress struct {
	Content     *ClassContent `json:"content"`
	IsCompleted bool          `json:"is_completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}
