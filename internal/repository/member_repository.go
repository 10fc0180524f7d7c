//go:generate mockery --name MemberRepository --output ./mocks --outpkg mocks --case=underscore
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

type MemberRepository interface {
	Create(ctx context.Context, tx *gorm.DB, member *model.Member) error
	FindByID(ctx context.Context, db *gorm.DB, memberID uuid.UUID) (*model.Member, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Member, error)
}

type gormMemberRepository struct{}

func NewGormMemberRepository() MemberRepository {
	return &gormMemberRepository{}
}

func (r *gormMemberRepository) Create(ctx context.Context, tx *gorm.DB, member *model.Member) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(member)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create member",
				"error", result.Error,
				"user_id", member.UserID,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating member in DB",
			"error", result.Error,
			"member_id", member.MemberID.String(),
		)
		return fmt.Errorf("gormMemberRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMemberRepository) FindByID(ctx context.Context, db *gorm.DB, memberID uuid.UUID) (*model.Member, error) {
	logger := middleware.GetLogger(ctx)
	var member model.Member
	result := db.WithContext(ctx).Where("member_id = ?", memberID).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding member by ID in DB",
			"error", result.Error,
			"member_id", memberID.String(),
		)
		return nil, fmt.Errorf("gormMemberRepository.FindByID: %w", result.Error)
	}
	return &member, nil
}

func (r *gormMemberRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Member, error) {
	logger := middleware.GetLogger(ctx)
	var member model.Member
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding member by user ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormMemberRepository.FindByUserID: %w", result.Error)
	}
	return &member, nil
}
