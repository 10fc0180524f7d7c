// internal/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"time"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, markerUserID, sessionID uuid.UUID, req *model.MarkAttendanceRequest) (*model.Attendance, error)
	// MarkAttendanceBulk は1トランザクションで一括マークします。部分成功:
	// 不正なエントリは失敗一覧に積み、有効なエントリの記録は失わない。
	MarkAttendanceBulk(ctx context.Context, markerUserID, sessionID uuid.UUID, req *model.BulkAttendanceRequest) (*model.BulkAttendanceResult, error)
	ListSessionAttendance(ctx context.Context, sessionID uuid.UUID) ([]*model.Attendance, error)
}

type attendanceService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	memberRepo  repository.MemberRepository
	enrollRepo  repository.EnrollmentRepository
	attendRepo  repository.AttendanceRepository
	progressSvc ProgressService
}

func NewAttendanceService(db *gorm.DB, sessionRepo repository.SessionRepository, memberRepo repository.MemberRepository, enrollRepo repository.EnrollmentRepository, attendRepo repository.AttendanceRepository, progressSvc ProgressService) AttendanceService {
	return &attendanceService{
		db:          db,
		sessionRepo: sessionRepo,
		memberRepo:  memberRepo,
		enrollRepo:  enrollRepo,
		attendRepo:  attendRepo,
		progressSvc: progressSvc,
	}
}

// MarkAttendance は単一メンバーの出席を記録します。同一 (セッション, メンバー)
// への再マークは上書きとなる。記録後、対象メンバーが当該クラスに受講登録して
// いれば同一トランザクション内で出席率を再計算する。
func (s *attendanceService) MarkAttendance(ctx context.Context, markerUserID, sessionID uuid.UUID, req *model.MarkAttendanceRequest) (*model.Attendance, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String(), "member_id", req.MemberID.String())

	status := model.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, model.NewAppError("INVALID_ATTENDANCE_STATUS", "出席ステータスが不正です。", "status", model.ErrInvalidStatus)
	}

	var marked *model.Attendance

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error finding session in transaction", "error", err)
			return model.ErrInternalServer
		}

		if _, err := s.memberRepo.FindByID(ctx, tx, req.MemberID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MEMBER_NOT_FOUND", "メンバーが見つかりません。", "member_id", model.ErrNotFound)
			}
			logger.Error("Error finding member in transaction", "error", err)
			return model.ErrInternalServer
		}

		attendance := &model.Attendance{
			AttendanceID: uuid.New(),
			SessionID:    sessionID,
			MemberID:     req.MemberID,
			Status:       status,
			Notes:        req.Notes,
			MarkedBy:     markerUserID,
			MarkedAt:     time.Now(),
		}
		if err := s.attendRepo.Upsert(ctx, tx, attendance); err != nil {
			logger.Error("Error upserting attendance in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 受講登録があれば出席率を同じトランザクションで再計算する。
		// 未登録メンバー (見学者など) の記録は導出フィールドに影響しない。
		enrollment, err := s.enrollRepo.FindByClassAndMember(ctx, tx, session.ClassID, req.MemberID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Error finding enrollment in transaction", "error", err)
				return model.ErrInternalServer
			}
		} else if recomputeErr := s.progressSvc.Recompute(ctx, tx, enrollment); recomputeErr != nil {
			logger.Error("Error recomputing attendance rate in transaction", "error", recomputeErr)
			return model.ErrInternalServer
		}

		marked = attendance
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for MarkAttendance", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Attendance marked", "status", string(status))
	return marked, nil
}

func (s *attendanceService) MarkAttendanceBulk(ctx context.Context, markerUserID, sessionID uuid.UUID, req *model.BulkAttendanceRequest) (*model.BulkAttendanceResult, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String(), "entries", len(req.Entries))

	result := &model.BulkAttendanceResult{Failed: []model.BulkAttendanceFailure{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error finding session in transaction", "error", err)
			return model.ErrInternalServer
		}

		now := time.Now()
		// 同一メンバーが複数エントリに現れても再計算は1回で済ませる
		affected := make(map[uuid.UUID]*model.ClassEnrollment)

		for _, entry := range req.Entries {
			status := model.AttendanceStatus(entry.Status)
			if !status.Valid() {
				result.Failed = append(result.Failed, model.BulkAttendanceFailure{
					MemberID: entry.MemberID,
					Code:     "INVALID_ATTENDANCE_STATUS",
					Message:  "出席ステータスが不正です。",
				})
				continue
			}

			if _, err := s.memberRepo.FindByID(ctx, tx, entry.MemberID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					result.Failed = append(result.Failed, model.BulkAttendanceFailure{
						MemberID: entry.MemberID,
						Code:     "MEMBER_NOT_FOUND",
						Message:  "メンバーが見つかりません。",
					})
					continue
				}
				logger.Error("Error finding member in transaction", "error", err, "member_id", entry.MemberID.String())
				return model.ErrInternalServer
			}

			attendance := &model.Attendance{
				AttendanceID: uuid.New(),
				SessionID:    sessionID,
				MemberID:     entry.MemberID,
				Status:       status,
				Notes:        entry.Notes,
				MarkedBy:     markerUserID,
				MarkedAt:     now,
			}
			if err := s.attendRepo.Upsert(ctx, tx, attendance); err != nil {
				logger.Error("Error upserting attendance in transaction", "error", err, "member_id", entry.MemberID.String())
				return model.ErrInternalServer
			}
			result.Applied++

			if _, ok := affected[entry.MemberID]; ok {
				continue
			}
			enrollment, err := s.enrollRepo.FindByClassAndMember(ctx, tx, session.ClassID, entry.MemberID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					continue
				}
				logger.Error("Error finding enrollment in transaction", "error", err, "member_id", entry.MemberID.String())
				return model.ErrInternalServer
			}
			affected[entry.MemberID] = enrollment
		}

		for _, enrollment := range affected {
			if err := s.progressSvc.Recompute(ctx, tx, enrollment); err != nil {
				logger.Error("Error recomputing attendance rate in transaction", "error", err, "enrollment_id", enrollment.EnrollmentID.String())
				return model.ErrInternalServer
			}
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for MarkAttendanceBulk", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Bulk attendance marked", "applied", result.Applied, "failed", len(result.Failed))
	return result, nil
}

func (s *attendanceService) ListSessionAttendance(ctx context.Context, sessionID uuid.UUID) ([]*model.Attendance, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String())

	if _, err := s.sessionRepo.FindByID(ctx, s.db, sessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Error finding session", "error", err)
		return nil, model.ErrInternalServer
	}

	records, err := s.attendRepo.ListBySession(ctx, s.db, sessionID)
	if err != nil {
		logger.Error("Error listing session attendance", "error", err)
		return nil, model.ErrInternalServer
	}
	return records, nil
}
