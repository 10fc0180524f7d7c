//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

type SessionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ClassSession, error)
	ListByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ClassSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.ClassSession
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding session by ID in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) ListByClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]*model.ClassSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.ClassSession
	result := db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("session_date ASC").
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error listing sessions by class in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.ListByClass: %w", result.Error)
	}
	return sessions, nil
}
