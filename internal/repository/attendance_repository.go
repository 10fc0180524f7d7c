//go:generate mockery --name AttendanceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	// Upsert は (session_id, member_id) をキーに作成または更新する。
	// 再マークは更新であり、2行目が生まれることはない。
	Upsert(ctx context.Context, tx *gorm.DB, attendance *model.Attendance) error
	ListBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Attendance, error)
	// CountByMemberAndClass はクラス内セッションに対する出席記録の
	// (present数, 記録総数) を返す。記録が無いセッションは分母に含めない。
	CountByMemberAndClass(ctx context.Context, db *gorm.DB, memberID, classID uuid.UUID) (present int64, recorded int64, err error)
}

type gormAttendanceRepository struct{}

func NewGormAttendanceRepository() AttendanceRepository {
	return &gormAttendanceRepository{}
}

func (r *gormAttendanceRepository) Upsert(ctx context.Context, tx *gorm.DB, attendance *model.Attendance) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "notes", "marked_by", "marked_at", "updated_at",
		}),
	}).Create(attendance)
	if result.Error != nil {
		logger.Error("Error upserting attendance in DB",
			"error", result.Error,
			"session_id", attendance.SessionID.String(),
			"member_id", attendance.MemberID.String(),
		)
		return fmt.Errorf("gormAttendanceRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormAttendanceRepository) ListBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Attendance, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.Attendance
	result := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("marked_at ASC").
		Find(&rows)
	if result.Error != nil {
		logger.Error("Error listing attendance by session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormAttendanceRepository.ListBySession: %w", result.Error)
	}
	return rows, nil
}

func (r *gormAttendanceRepository) CountByMemberAndClass(ctx context.Context, db *gorm.DB, memberID, classID uuid.UUID) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)

	base := db.WithContext(ctx).Model(&model.Attendance{}).
		Joins("JOIN class_sessions ON class_sessions.session_id = attendance.session_id").
		Where("attendance.member_id = ? AND class_sessions.class_id = ?", memberID, classID)

	var recorded int64
	if result := base.Session(&gorm.Session{}).Count(&recorded); result.Error != nil {
		logger.Error("Error counting recorded attendance in DB",
			"error", result.Error,
			"member_id", memberID.String(),
			"class_id", classID.String(),
		)
		return 0, 0, fmt.Errorf("gormAttendanceRepository.CountByMemberAndClass: %w", result.Error)
	}

	var present int64
	if result := base.Session(&gorm.Session{}).Where("attendance.status = ?", model.AttendancePresent).Count(&present); result.Error != nil {
		logger.Error("Error counting present attendance in DB",
			"error", result.Error,
			"member_id", memberID.String(),
			"class_id", classID.String(),
		)
		return 0, 0, fmt.Errorf("gormAttendanceRepository.CountByMemberAndClass: %w", result.Error)
	}

	return present, recorded, nil
}
