//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *model.ClassEnrollment) error
	FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	FindByClassAndMember(ctx context.Context, db *gorm.DB, classID, memberID uuid.UUID) (*model.ClassEnrollment, error)
	// FindActiveByMember は全クラス横断で pending / approved の登録を探す。ClassはPreloadする。
	FindActiveByMember(ctx context.Context, db *gorm.DB, memberID uuid.UUID) (*model.ClassEnrollment, error)
	CountActiveByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) (int64, error)
	ListActiveByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassEnrollment, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, updates map[string]interface{}) error
	// UpdateProgress は導出3フィールドだけを更新する。status や notes、タイムスタンプ
	// 系の列には触れない。
	UpdateProgress(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, completedLessons int, progressPct, attendanceRate float64) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, tx *gorm.DB, enrollment *model.ClassEnrollment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		// (class_id, member_id) のユニーク制約はアプリ側チェックの最後の砦。
		// 同一ペアの同時INSERTが競合した場合はここで弾かれる。
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate enrollment insert blocked by unique index",
				"class_id", enrollment.ClassID.String(),
				"member_id", enrollment.MemberID.String(),
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating enrollment in DB",
			"error", result.Error,
			"class_id", enrollment.ClassID.String(),
			"member_id", enrollment.MemberID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.ClassEnrollment
	result := db.WithContext(ctx).
		Preload("Class").
		Preload("Member").
		Where("enrollment_id = ?", enrollmentID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding enrollment by ID in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByID: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindByClassAndMember(ctx context.Context, db *gorm.DB, classID, memberID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.ClassEnrollment
	result := db.WithContext(ctx).
		Where("class_id = ? AND member_id = ?", classID, memberID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding enrollment by class and member in DB",
			"error", result.Error,
			"class_id", classID.String(),
			"member_id", memberID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByClassAndMember: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindActiveByMember(ctx context.Context, db *gorm.DB, memberID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.ClassEnrollment
	result := db.WithContext(ctx).
		Preload("Class").
		Where("member_id = ? AND status IN ?", memberID,
			[]model.EnrollmentStatus{model.EnrollmentPending, model.EnrollmentApproved}).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active enrollment by member in DB",
			"error", result.Error,
			"member_id", memberID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.FindActiveByMember: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) CountActiveByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ClassEnrollment{}).
		Where("class_id = ? AND status IN ?", classID,
			[]model.EnrollmentStatus{model.EnrollmentPending, model.EnrollmentApproved}).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting active enrollments in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return 0, fmt.Errorf("gormEnrollmentRepository.CountActiveByClass: %w", result.Error)
	}
	return count, nil
}

func (r *gormEnrollmentRepository) ListActiveByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollments []*model.ClassEnrollment
	result := db.WithContext(ctx).
		Preload("Member").
		Where("class_id = ? AND status IN ?", classID,
			[]model.EnrollmentStatus{model.EnrollmentPending, model.EnrollmentApproved}).
		Order("enrolled_at ASC").
		Find(&enrollments)
	if result.Error != nil {
		logger.Error("Error listing active enrollments in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.ListActiveByClass: %w", result.Error)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.ClassEnrollment{}).
		Where("enrollment_id = ?", enrollmentID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating enrollment status in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEnrollmentRepository) UpdateProgress(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, completedLessons int, progressPct, attendanceRate float64) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.ClassEnrollment{}).
		Where("enrollment_id = ?", enrollmentID).
		Select("completed_lessons", "progress_percentage", "attendance_rate").
		Updates(map[string]interface{}{
			"completed_lessons":   completedLessons,
			"progress_percentage": progressPct,
			"attendance_rate":     attendanceRate,
		})
	if result.Error != nil {
		logger.Error("Error updating enrollment progress fields in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.UpdateProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
