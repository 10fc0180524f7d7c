// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	ToggleContentProgress(ctx context.Context, userID, contentID uuid.UUID) (*model.ClassContentProgress, error)
	// Recompute は導出フィールド (completed_lessons / progress_percentage /
	// attendance_rate) を事実テーブルから再計算して書き戻します。冪等であり、
	// 何度実行しても同じ事実からは同じ値に収束する。変更と同じトランザクション
	// 内で呼ぶこと。
	Recompute(ctx context.Context, tx *gorm.DB, enrollment *model.ClassEnrollment) error
	GetProgressSummary(ctx context.Context, enrollmentID uuid.UUID) (*model.ProgressSummaryResponse, error)
	ListClassContents(ctx context.Context, userID, classID uuid.UUID) ([]*model.ContentWithProgress, error)
}

type progressService struct {
	db          *gorm.DB
	memberRepo  repository.MemberRepository
	enrollRepo  repository.EnrollmentRepository
	contentRepo repository.ContentRepository
	progRepo    repository.ContentProgressRepository
	attendRepo  repository.AttendanceRepository
}

func NewProgressService(db *gorm.DB, memberRepo repository.MemberRepository, enrollRepo repository.EnrollmentRepository, contentRepo repository.ContentRepository, progRepo repository.ContentProgressRepository, attendRepo repository.AttendanceRepository) ProgressService {
	return &progressService{
		db:          db,
		memberRepo:  memberRepo,
		enrollRepo:  enrollRepo,
		contentRepo: contentRepo,
		progRepo:    progRepo,
		attendRepo:  attendRepo,
	}
}

// ToggleContentProgress は教材の完了フラグをトグルします。進捗行は最初の操作で
// 遅延作成される。トグル後は同一トランザクション内で Recompute を行う。
func (s *progressService) ToggleContentProgress(ctx context.Context, userID, contentID uuid.UUID) (*model.ClassContentProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "content_id", contentID.String())

	var toggled *model.ClassContentProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member, err := s.memberRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_ENROLLED", "このクラスに受講登録がありません。", "", model.ErrForbidden)
			}
			logger.Error("Error finding member in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 非公開教材は進捗の対象外なので、存在しないものとして扱う
		content, err := s.contentRepo.FindPublishedByID(ctx, tx, contentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CONTENT_NOT_FOUND", "教材が見つかりません。", "content_id", model.ErrNotFound)
			}
			logger.Error("Error finding content in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment, err := s.enrollRepo.FindByClassAndMember(ctx, tx, content.ClassID, member.MemberID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_ENROLLED", "このクラスに受講登録がありません。", "", model.ErrForbidden)
			}
			logger.Error("Error finding enrollment in transaction", "error", err)
			return model.ErrInternalServer
		}
		if !enrollment.Status.IsActive() {
			return model.NewAppError("ENROLLMENT_NOT_ACTIVE", "受講中のクラスの教材のみ更新できます。", "", model.ErrForbidden)
		}

		now := time.Now()
		progress, err := s.progRepo.FindByContentAndEnrollment(ctx, tx, contentID, enrollment.EnrollmentID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding content progress in transaction", "error", err)
			return model.ErrInternalServer
		}

		if progress == nil {
			// 初回操作: 完了状態で遅延作成
			progress = &model.ClassContentProgress{
				ContentProgressID: uuid.New(),
				ContentID:         contentID,
				EnrollmentID:      enrollment.EnrollmentID,
				IsCompleted:       true,
				StartedAt:         now,
				CompletedAt:       &now,
			}
			if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
				logger.Error("Error creating content progress in transaction", "error", createErr)
				return model.ErrInternalServer
			}
		} else {
			progress.IsCompleted = !progress.IsCompleted
			if progress.IsCompleted {
				progress.CompletedAt = &now
			} else {
				progress.CompletedAt = nil
			}
			if updateErr := s.progRepo.Update(ctx, tx, progress); updateErr != nil {
				logger.Error("Error updating content progress in transaction", "error", updateErr)
				return model.ErrInternalServer
			}
		}

		if err := s.Recompute(ctx, tx, enrollment); err != nil {
			logger.Error("Error recomputing progress in transaction", "error", err)
			return model.ErrInternalServer
		}

		toggled = progress
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for ToggleContentProgress", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Content progress toggled", "is_completed", toggled.IsCompleted)
	return toggled, nil
}

func (s *progressService) Recompute(ctx context.Context, tx *gorm.DB, enrollment *model.ClassEnrollment) error {
	total, err := s.contentRepo.CountPublishedByClass(ctx, tx, enrollment.ClassID)
	if err != nil {
		return err
	}
	completed, err := s.progRepo.CountCompletedPublished(ctx, tx, enrollment.EnrollmentID)
	if err != nil {
		return err
	}
	present, recorded, err := s.attendRepo.CountByMemberAndClass(ctx, tx, enrollment.MemberID, enrollment.ClassID)
	if err != nil {
		return err
	}

	// ゼロ除算ガード: 公開教材ゼロ・出席記録ゼロはいずれも 0% とする
	var progressPct float64
	if total > 0 {
		progressPct = round2(float64(completed) / float64(total) * 100)
	}
	var attendanceRate float64
	if recorded > 0 {
		attendanceRate = round2(float64(present) / float64(recorded) * 100)
	}

	return s.enrollRepo.UpdateProgress(ctx, tx, enrollment.EnrollmentID, int(completed), progressPct, attendanceRate)
}

func (s *progressService) GetProgressSummary(ctx context.Context, enrollmentID uuid.UUID) (*model.ProgressSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("enrollment_id", enrollmentID.String())

	enrollment, err := s.enrollRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Error finding enrollment for summary", "error", err)
		return nil, model.ErrInternalServer
	}

	total, err := s.contentRepo.CountPublishedByClass(ctx, s.db, enrollment.ClassID)
	if err != nil {
		logger.Error("Error counting published contents for summary", "error", err)
		return nil, model.ErrInternalServer
	}
	present, recorded, err := s.attendRepo.CountByMemberAndClass(ctx, s.db, enrollment.MemberID, enrollment.ClassID)
	if err != nil {
		logger.Error("Error counting attendance for summary", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.ProgressSummaryResponse{
		EnrollmentID:       enrollment.EnrollmentID,
		CompletedLessons:   enrollment.CompletedLessons,
		TotalPublished:     total,
		ProgressPercentage: enrollment.ProgressPercentage,
		PresentCount:       present,
		RecordedSessions:   recorded,
		AttendanceRate:     enrollment.AttendanceRate,
	}, nil
}

func (s *progressService) ListClassContents(ctx context.Context, userID, classID uuid.UUID) ([]*model.ContentWithProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "class_id", classID.String())

	member, err := s.memberRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_ENROLLED", "このクラスに受講登録がありません。", "", model.ErrForbidden)
		}
		logger.Error("Error finding member for content list", "error", err)
		return nil, model.ErrInternalServer
	}

	enrollment, err := s.enrollRepo.FindByClassAndMember(ctx, s.db, classID, member.MemberID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_ENROLLED", "このクラスに受講登録がありません。", "", model.ErrForbidden)
		}
		logger.Error("Error finding enrollment for content list", "error", err)
		return nil, model.ErrInternalServer
	}

	contents, err := s.contentRepo.ListPublishedByClass(ctx, s.db, classID)
	if err != nil {
		logger.Error("Error listing published contents", "error", err)
		return nil, model.ErrInternalServer
	}
	progresses, err := s.progRepo.ListByEnrollment(ctx, s.db, enrollment.EnrollmentID)
	if err != nil {
		logger.Error("Error listing content progress", "error", err)
		return nil, model.ErrInternalServer
	}

	byContent := make(map[uuid.UUID]*model.ClassContentProgress, len(progresses))
	for _, p := range progresses {
		byContent[p.ContentID] = p
	}

	result := make([]*model.ContentWithProgress, 0, len(contents))
	for _, c := range contents {
		item := &model.ContentWithProgress{Content: c}
		if p, ok := byContent[c.ContentID]; ok {
			item.IsCompleted = p.IsCompleted
			item.CompletedAt = p.CompletedAt
		}
		result = append(result, item)
	}
	return result, nil
}

// round2 は小数第2位までに丸めるヘルパー関数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
