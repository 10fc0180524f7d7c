package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// メンバーの基本情報。認証基盤 (外部) のユーザーと任意で紐づく。
type Member struct {
	MemberID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"member_id"`
	UserID      *uuid.UUID     `gorm:"type:uuid;uniqueIndex" json:"-"` // 外部認証基盤のユーザーID (未連携ならNULL)
	FullName    string         `gorm:"not null" json:"full_name"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	ConvertedOn *time.Time     `json:"converted_on,omitempty"` // 信仰告白日
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// HasUser は通知の宛先となるユーザーアカウントが紐づいているかを返します。
func (m *Member) HasUser() bool {
	return m != nil && m.UserID != nil
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// MemberResponse はクライアントに返すメンバー情報の構造体
type MemberResponse struct {
	MemberID    uuid.UUID  `json:"member_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email,omitempty"`
	ConvertedOn *time.Time `json:"converted_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
