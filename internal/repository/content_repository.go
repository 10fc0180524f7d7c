//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
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

type ContentRepository interface {
	// FindPublishedByID は公開済みの教材のみを返す。非公開教材は進捗対象外なので
	// 呼び出し側からは存在しないものとして扱う。
	FindPublishedByID(ctx context.Context, db *gorm.DB, contentID uuid.UUID) (*model.ClassContent, error)
	ListPublishedByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassContent, error)
	CountPublishedByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) (int64, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) FindPublishedByID(ctx context.Context, db *gorm.DB, contentID uuid.UUID) (*model.ClassContent, error) {
	logger := middleware.GetLogger(ctx)
	var content model.ClassContent
	result := db.WithContext(ctx).
		Where("content_id = ? AND is_published = ?", contentID, true).
		First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding published content by ID in DB",
			"error", result.Error,
			"content_id", contentID.String(),
		)
		return nil, fmt.Errorf("gormContentRepository.FindPublishedByID: %w", result.Error)
	}
	return &content, nil
}

func (r *gormContentRepository) ListPublishedByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassContent, error) {
	logger := middleware.GetLogger(ctx)
	var contents []*model.ClassContent
	result := db.WithContext(ctx).
		Where("class_id = ? AND is_published = ?", classID, true).
		Order("week_number ASC NULLS LAST, created_at ASC").
		Find(&contents)
	if result.Error != nil {
		logger.Error("Error listing published contents in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormContentRepository.ListPublishedByClass: %w", result.Error)
	}
	return contents, nil
}

func (r *gormContentRepository) CountPublishedByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ClassContent{}).
		Where("class_id = ? AND is_published = ?", classID, true).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting published contents in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return 0, fmt.Errorf("gormContentRepository.CountPublishedByClass: %w", result.Error)
	}
	return count, nil
}
