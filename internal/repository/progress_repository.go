//go:generate mockery --name ContentProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.ClassContentProgress) error
	FindByContentAndEnrollment(ctx context.Context, db *gorm.DB, contentID, enrollmentID uuid.UUID) (*model.ClassContentProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.ClassContentProgress) error
	ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ClassContentProgress, error)
	// CountCompletedPublished は公開済み教材に限定した完了数を返す。
	// 非公開に戻された教材の完了行はカウントに含めない。
	CountCompletedPublished(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (int64, error)
}

type gormContentProgressRepository struct{}

func NewGormContentProgressRepository() ContentProgressRepository {
	return &gormContentProgressRepository{}
}

func (r *gormContentProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.ClassContentProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating content progress in DB",
			"error", result.Error,
			"content_id", progress.ContentID.String(),
			"enrollment_id", progress.EnrollmentID.String(),
		)
		return fmt.Errorf("gormContentProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormContentProgressRepository) FindByContentAndEnrollment(ctx context.Context, db *gorm.DB, contentID, enrollmentID uuid.UUID) (*model.ClassContentProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.ClassContentProgress
	result := db.WithContext(ctx).
		Where("content_id = ? AND enrollment_id = ?", contentID, enrollmentID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding content progress in DB",
			"error", result.Error,
			"content_id", contentID.String(),
			"enrollment_id", enrollmentID.String(),
		)
		return nil, fmt.Errorf("gormContentProgressRepository.FindByContentAndEnrollment: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormContentProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.ClassContentProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating content progress in DB",
			"error", result.Error,
			"content_progress_id", progress.ContentProgressID.String(),
		)
		return fmt.Errorf("gormContentProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormContentProgressRepository) ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ClassContentProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.ClassContentProgress
	result := db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error listing content progress by enrollment in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
		)
		return nil, fmt.Errorf("gormContentProgressRepository.ListByEnrollment: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormContentProgressRepository) CountCompletedPublished(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ClassContentProgress{}).
		Joins("JOIN class_contents ON class_contents.content_id = class_content_progress.content_id AND class_contents.is_published = ?", true).
		Where("class_content_progress.enrollment_id = ? AND class_content_progress.is_completed = ?", enrollmentID, true).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting completed lessons in DB",
			"error", result.Error,
			"enrollment_id", enrollmentID.String(),
		)
		return 0, fmt.Errorf("gormContentProgressRepository.CountCompletedPublished: %w", result.Error)
	}
	return count, nil
}
