//go:generate mockery --name ClassRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, classID uuid.UUID) (*model.DiscipleshipClass, error)
	// FindByIDForUpdate はクラス行をロックして取得する。定員チェックと登録INSERTを
	// 同一トランザクション内で直列化するために、登録作成パスは必ずこちらを使う。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*model.DiscipleshipClass, error)
}

type gormClassRepository struct{}

func NewGormClassRepository() ClassRepository {
	return &gormClassRepository{}
}

func (r *gormClassRepository) FindByID(ctx context.Context, db *gorm.DB, classID uuid.UUID) (*model.DiscipleshipClass, error) {
	logger := middleware.GetLogger(ctx)
	var class model.DiscipleshipClass
	result := db.WithContext(ctx).Where("class_id = ?", classID).First(&class)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding class by ID in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormClassRepository.FindByID: %w", result.Error)
	}
	return &class, nil
}

func (r *gormClassRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*model.DiscipleshipClass, error) {
	logger := middleware.GetLogger(ctx)

	query := tx.WithContext(ctx)
	// SQLiteは書き込み自体が直列化されるため FOR UPDATE を発行しない (テスト用DB)
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var class model.DiscipleshipClass
	result := query.Where("class_id = ?", classID).First(&class)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error locking class row in DB",
			"error", result.Error,
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormClassRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &class, nil
}
