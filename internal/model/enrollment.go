// internal/model/enrollment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentApproved  EnrollmentStatus = "approved"
	EnrollmentRejected  EnrollmentStatus = "rejected"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// enrollmentTransitions は許可される状態遷移の一覧。
// 現行の運用では pending は即時承認で通過するだけだが、将来の手動承認モードの
// ために遷移表としてすべての状態を保持する。終了状態からの遷移は存在しない。
var enrollmentTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	EnrollmentPending:   {EnrollmentApproved, EnrollmentRejected, EnrollmentCancelled},
	EnrollmentApproved:  {EnrollmentCompleted, EnrollmentCancelled},
	EnrollmentRejected:  {},
	EnrollmentCompleted: {},
	EnrollmentCancelled: {},
}

// CanTransitionTo は遷移表に基づいて s -> next が許可されるかを返します。
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	for _, allowed := range enrollmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive は定員にカウントされる「受講中」状態かを返します。
func (s EnrollmentStatus) IsActive() bool {
	return s == EnrollmentPending || s == EnrollmentApproved
}

// IsTerminal は以後の遷移が存在しない終了状態かを返します。
func (s EnrollmentStatus) IsTerminal() bool {
	return len(enrollmentTransitions[s]) == 0 && s != ""
}

// ClassEnrollment はメンバーとクラスの受講関係を表す中心エンティティです。
// (class_id, member_id) の組は生涯で1行のみ。行の物理削除は行わない。
// CompletedLessons / ProgressPercentage / AttendanceRate は Recompute だけが
// 書き込む導出キャッシュで、事実テーブルからいつでも再計算できる。
type ClassEnrollment struct {
	EnrollmentID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	ClassID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_class_member,unique" json:"class_id"`
	MemberID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_class_member,unique" json:"member_id"`
	Status       EnrollmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes        string           `json:"notes,omitempty"`
	EnrolledAt   time.Time        `gorm:"not null" json:"enrolled_at"`
	ApprovedAt   *time.Time       `json:"approved_at,omitempty"`
	ApprovedBy   *uuid.UUID       `gorm:"type:uuid" json:"approved_by,omitempty"`

	CompletedLessons   int     `gorm:"not null;default:0" json:"completed_lessons"`
	ProgressPercentage float64 `gorm:"not null;default:0" json:"progress_percentage"`
	AttendanceRate     float64 `gorm:"not null;default:0" json:"attendance_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Class  *DiscipleshipClass `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
	Member *Member            `gorm:"foreignKey:MemberID;references:MemberID" json:"member,omitempty"`
}

func (ClassEnrollment) TableName() string {
	return "class_enrollments"
}

// 受講申込リクエストDTO
type RequestEnrollmentRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Notes   string    `json:"notes" validate:"omitempty,max=500"`
}

// EnrollmentResult は申込操作の結果。AlreadyEnrolled はエラーではなく、
// 同一クラスへの再申込が既存の登録で満たされたことを示すシグナル。
type EnrollmentResult struct {
	Enrollment      *ClassEnrollment `json:"enrollment"`
	AlreadyEnrolled bool             `json:"already_enrolled"`
}

// ClassRosterResponse は名簿取得のレスポンスDTO。AvailableSpots は
// max(0, capacity - 受講中件数)。pending も席を消費するため分子に含む。
type ClassRosterResponse struct {
	ClassID        uuid.UUID          `json:"class_id"`
	Capacity       int                `json:"capacity"`
	AvailableSpots int                `json:"available_spots"`
	Enrollments    []*ClassEnrollment `json:"enrollments"`
}

// ProgressSummaryResponse は進捗ダッシュボード用のレスポンスDTO。
// 教材進捗と出席率は独立したシグナルとして別々に返す (合成スコアは作らない)。
type ProgressSummaryResponse struct {
	EnrollmentID       uuid.UUID `json:"enrollment_id"`
	CompletedLessons   int       `json:"completed_lessons"`
	TotalPublished     int64     `json:"total_published"`
	ProgressPercentage float64   `json:"progress_percentage"`
	PresentCount       int64     `json:"present_count"`
	RecordedSessions   int64     `json:"recorded_sessions"`
	AttendanceRate     float64   `json:"attendance_rate"`
}
