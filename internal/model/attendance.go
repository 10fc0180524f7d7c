// internal/model/attendance.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid は記録可能な出席ステータスかを返します。
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	default:
		return false
	}
}

// Attendance はセッションとメンバーの結合エンティティです。
// (session_id, member_id) でユニーク。再マークは更新であり挿入ではない。
type Attendance struct {
	AttendanceID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"attendance_id"`
	SessionID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_session_member,unique" json:"session_id"`
	MemberID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_session_member,unique" json:"member_id"`
	Status       AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	Notes        string           `json:"notes,omitempty"`
	MarkedBy     uuid.UUID        `gorm:"type:uuid;not null" json:"marked_by"`
	MarkedAt     time.Time        `gorm:"not null" json:"marked_at"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// 出席マーク (単体) リクエストDTO
type MarkAttendanceRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Status   string    `json:"status" validate:"required"`
	Notes    string    `json:"notes" validate:"omitempty,max=500"`
}

// 出席マーク (一括) リクエストDTO
type BulkAttendanceRequest struct {
	Entries []BulkAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type BulkAttendanceEntry struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Status   string    `json:"status" validate:"required"`
	Notes    string    `json:"notes" validate:"omitempty,max=500"`
}

// BulkAttendanceFailure は一括マークで失敗した1エントリの内訳
type BulkAttendanceFailure struct {
	MemberID uuid.UUID `json:"member_id"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
}

// BulkAttendanceResult は一括マークの部分成功サマリ。
// 1件の不正エントリで残りの有効な記録を失わないよう、全か無かでは返さない。
type BulkAttendanceResult struct {
	Applied int                     `json:"applied"`
	Failed  []BulkAttendanceFailure `json:"failed"`
}
