// internal/service/enrollment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"disciple_keep/internal/config"
	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	RequestEnrollment(ctx context.Context, userID uuid.UUID, req *model.RequestEnrollmentRequest) (*model.EnrollmentResult, error)
	ApproveEnrollment(ctx context.Context, approverUserID, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	RejectEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	CancelEnrollment(ctx context.Context, userID, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	CompleteEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error)
	ListRoster(ctx context.Context, classID uuid.UUID) (*model.ClassRosterResponse, error)
}

// availableSpots は定員ガードの読み取り側: 残席数を0未満にならないよう返す。
// 書き込み側の満席判定 (残席0か) もこの値で行う。
func availableSpots(capacity int, activeCount int64) int {
	spots := capacity - int(activeCount)
	if spots < 0 {
		return 0
	}
	return spots
}

type enrollmentService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	memberRepo  repository.MemberRepository
	classRepo   repository.ClassRepository
	enrollRepo  repository.EnrollmentRepository
	notifier    Notifier
	autoApprove bool
}

func NewEnrollmentService(db *gorm.DB, memberRepo repository.MemberRepository, classRepo repository.ClassRepository, enrollRepo repository.EnrollmentRepository, notifier Notifier, cfg config.Config) EnrollmentService {
	return &enrollmentService{
		db:          db,
		memberRepo:  memberRepo,
		classRepo:   classRepo,
		enrollRepo:  enrollRepo,
		notifier:    notifier,
		autoApprove: cfg.App.AutoApprove,
	}
}

// RequestEnrollment は受講申込を処理します。前提条件は順番に検査され、最初の
// 違反が勝つ。成功時は自動承認ポリシーにより即 approved で作成される。
func (s *enrollmentService) RequestEnrollment(ctx context.Context, userID uuid.UUID, req *model.RequestEnrollmentRequest) (*model.EnrollmentResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "class_id", req.ClassID.String())

	var result *model.EnrollmentResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member, err := s.findOrCreateMember(ctx, tx, userID)
		if err != nil {
			logger.Error("Error resolving member in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 定員チェックとINSERTを直列化するため、先にクラス行をロックする
		class, err := s.classRepo.FindByIDForUpdate(ctx, tx, req.ClassID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("CLASS_NOT_FOUND", "クラスが見つかりません。", "class_id", model.ErrNotFound)
			}
			logger.Error("Error locking class row in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 1. 全クラス横断で「受講中」の登録がないか
		active, err := s.enrollRepo.FindActiveByMember(ctx, tx, member.MemberID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding active enrollment in transaction", "error", err)
			return model.ErrInternalServer
		}
		if active != nil {
			if active.ClassID == class.ClassID {
				// 同一クラスへの再申込は冪等: 既存の登録を返す
				logger.Info("Enrollment request is idempotent, returning existing enrollment",
					"enrollment_id", active.EnrollmentID.String())
				result = &model.EnrollmentResult{Enrollment: active, AlreadyEnrolled: true}
				return nil
			}
			title := ""
			if active.Class != nil {
				title = active.Class.Title
			}
			return model.NewAppError(
				"ACTIVE_ENROLLMENT_EXISTS",
				fmt.Sprintf("すでに「%s」を受講中です。先に既存の受講をキャンセルしてください。", title),
				"",
				&model.ActiveEnrollmentError{ClassID: active.ClassID, ClassTitle: title},
			)
		}

		// 2. 同一 (クラス, メンバー) の登録行が過去に存在しないか。
		//    受講中なら上で処理済みなので、ここで見つかれば必ず終了状態。
		prior, err := s.enrollRepo.FindByClassAndMember(ctx, tx, class.ClassID, member.MemberID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding prior enrollment in transaction", "error", err)
			return model.ErrInternalServer
		}
		if prior != nil {
			return model.NewAppError(
				"REENROLLMENT_NOT_ALLOWED",
				fmt.Sprintf("このクラスの受講記録 (%s) が既に存在するため、再登録はできません。", prior.Status),
				"",
				&model.ReenrollmentError{ClassID: class.ClassID, Status: prior.Status},
			)
		}

		// 3. クラスが募集中か
		if !class.IsActive {
			return model.NewAppError("CLASS_INACTIVE", "このクラスは現在募集を行っていません。", "", model.ErrClassInactive)
		}

		// 4. 定員 (ロック下で再評価する。競合に敗れたリクエストもここで CLASS_FULL になる)
		activeCount, err := s.enrollRepo.CountActiveByClass(ctx, tx, class.ClassID)
		if err != nil {
			logger.Error("Error counting active enrollments in transaction", "error", err)
			return model.ErrInternalServer
		}
		if availableSpots(class.Capacity, activeCount) == 0 {
			return model.NewAppError("CLASS_FULL", "このクラスは満席です。", "", model.ErrClassFull)
		}

		now := time.Now()
		enrollment := &model.ClassEnrollment{
			EnrollmentID:       uuid.New(),
			ClassID:            class.ClassID,
			MemberID:           member.MemberID,
			Status:             model.EnrollmentPending,
			Notes:              req.Notes,
			EnrolledAt:         now,
			CompletedLessons:   0,
			ProgressPercentage: 0,
			AttendanceRate:     0,
		}
		// 自動承認ポリシー: 作成と同時に approved、承認者はクラスのメンター。
		// 無効時は pending のまま作成され、メンターの承認待ちになる。
		if s.autoApprove {
			enrollment.Status = model.EnrollmentApproved
			enrollment.ApprovedAt = &now
			enrollment.ApprovedBy = &class.MentorID
		}
		if err := s.enrollRepo.Create(ctx, tx, enrollment); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// ユニーク制約に弾かれた = 同一ペアの同時申込に敗れた
				return model.NewAppError("ENROLLMENT_CONFLICT", "申込が競合したため登録できませんでした。もう一度お試しください。", "", model.ErrConflict)
			}
			logger.Error("Error creating enrollment in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment.Class = class
		enrollment.Member = member
		result = &model.EnrollmentResult{Enrollment: enrollment}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for RequestEnrollment", "error", err)
		return nil, model.ErrInternalServer
	}

	// コミット後にライフサイクルイベントを発火 (fire-and-forget)
	if !result.AlreadyEnrolled && s.notifier != nil {
		s.notifier.EnrollmentCreated(context.WithoutCancel(ctx), model.EnrollmentCreatedEvent{Enrollment: result.Enrollment})
	}

	logger.Info("Enrollment request processed",
		"enrollment_id", result.Enrollment.EnrollmentID.String(),
		"already_enrolled", result.AlreadyEnrolled,
	)
	return result, nil
}

// ApproveEnrollment は pending の申込を承認します。自動承認が無効な運用
// (手動承認モード) で使う。定員は申込時点で pending として確保済みなので
// ここでの再チェックは不要。
func (s *enrollmentService) ApproveEnrollment(ctx context.Context, approverUserID, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx).With("enrollment_id", enrollmentID.String())

	var approved *model.ClassEnrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}

		if !enrollment.Status.CanTransitionTo(model.EnrollmentApproved) {
			return model.NewAppError(
				"INVALID_TRANSITION",
				fmt.Sprintf("現在の状態 (%s) からは承認できません。", enrollment.Status),
				"",
				&model.InvalidTransitionError{From: enrollment.Status, To: model.EnrollmentApproved},
			)
		}

		now := time.Now()
		if err := s.enrollRepo.UpdateStatus(ctx, tx, enrollmentID, map[string]interface{}{
			"status":      model.EnrollmentApproved,
			"approved_at": now,
			"approved_by": approverUserID,
		}); err != nil {
			logger.Error("Error updating enrollment status in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment.Status = model.EnrollmentApproved
		enrollment.ApprovedAt = &now
		enrollment.ApprovedBy = &approverUserID
		approved = enrollment
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for ApproveEnrollment", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Enrollment approved")
	return approved, nil
}

// RejectEnrollment は pending の申込を却下します。
func (s *enrollmentService) RejectEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx).With("enrollment_id", enrollmentID.String())

	var rejected *model.ClassEnrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}

		if !enrollment.Status.CanTransitionTo(model.EnrollmentRejected) {
			return model.NewAppError(
				"INVALID_TRANSITION",
				fmt.Sprintf("現在の状態 (%s) からは却下できません。", enrollment.Status),
				"",
				&model.InvalidTransitionError{From: enrollment.Status, To: model.EnrollmentRejected},
			)
		}

		if err := s.enrollRepo.UpdateStatus(ctx, tx, enrollmentID, map[string]interface{}{
			"status": model.EnrollmentRejected,
		}); err != nil {
			logger.Error("Error updating enrollment status in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment.Status = model.EnrollmentRejected
		rejected = enrollment
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for RejectEnrollment", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Enrollment rejected")
	return rejected, nil
}

// CancelEnrollment は本人によるキャンセルを処理します。状態は cancelled に
// なるだけで、行は削除しない。
func (s *enrollmentService) CancelEnrollment(ctx context.Context, userID, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "enrollment_id", enrollmentID.String())

	var cancelled *model.ClassEnrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			return err // model.ErrNotFound or wrapped internal
		}

		// 所有者チェック (管理者による代理キャンセルは外部のポリシー層で許可される)
		if enrollment.Member == nil || enrollment.Member.UserID == nil || *enrollment.Member.UserID != userID {
			return model.NewAppError("FORBIDDEN", "この受講登録を操作する権限がありません。", "", model.ErrForbidden)
		}

		if !enrollment.Status.CanTransitionTo(model.EnrollmentCancelled) {
			if enrollment.Status == model.EnrollmentCompleted {
				return model.NewAppError(
					"CANNOT_CANCEL_COMPLETED",
					"修了済みの受講はキャンセルできません。",
					"",
					&model.InvalidTransitionError{From: enrollment.Status, To: model.EnrollmentCancelled},
				)
			}
			return model.NewAppError(
				"INVALID_TRANSITION",
				fmt.Sprintf("現在の状態 (%s) からはキャンセルできません。", enrollment.Status),
				"",
				&model.InvalidTransitionError{From: enrollment.Status, To: model.EnrollmentCancelled},
			)
		}

		if err := s.enrollRepo.UpdateStatus(ctx, tx, enrollmentID, map[string]interface{}{
			"status": model.EnrollmentCancelled,
		}); err != nil {
			logger.Error("Error updating enrollment status in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment.Status = model.EnrollmentCancelled
		cancelled = enrollment
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for CancelEnrollment", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Enrollment cancelled")
	return cancelled, nil
}

// CompleteEnrollment は受講を修了させます。呼び出し元の権限判定は外部の
// ポリシー層が行う。
func (s *enrollmentService) CompleteEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	logger := middleware.GetLogger(ctx).With("enrollment_id", enrollmentID.String())

	var completed *model.ClassEnrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}

		if !enrollment.Status.CanTransitionTo(model.EnrollmentCompleted) {
			return model.NewAppError(
				"INVALID_TRANSITION",
				fmt.Sprintf("現在の状態 (%s) からは修了にできません。", enrollment.Status),
				"",
				&model.InvalidTransitionError{From: enrollment.Status, To: model.EnrollmentCompleted},
			)
		}

		if err := s.enrollRepo.UpdateStatus(ctx, tx, enrollmentID, map[string]interface{}{
			"status": model.EnrollmentCompleted,
		}); err != nil {
			logger.Error("Error updating enrollment status in transaction", "error", err)
			return model.ErrInternalServer
		}

		enrollment.Status = model.EnrollmentCompleted
		completed = enrollment
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for CompleteEnrollment", "error", err)
		return nil, model.ErrInternalServer
	}

	// コミット後にイベントを発火。通知するかどうか (member.user の有無など) は
	// ディスパッチャ側が判定する。
	if s.notifier != nil {
		s.notifier.ClassCompleted(context.WithoutCancel(ctx), model.ClassCompletedEvent{Enrollment: completed})
	}

	logger.Info("Enrollment completed")
	return completed, nil
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.ClassEnrollment, error) {
	enrollment, err := s.enrollRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		middleware.GetLogger(ctx).Error("Error getting enrollment", "error", err)
		return nil, model.ErrInternalServer
	}
	return enrollment, nil
}

// ListRoster はクラスの受講中メンバー一覧を残席数付きで返します。
func (s *enrollmentService) ListRoster(ctx context.Context, classID uuid.UUID) (*model.ClassRosterResponse, error) {
	logger := middleware.GetLogger(ctx).With("class_id", classID.String())

	class, err := s.classRepo.FindByID(ctx, s.db, classID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CLASS_NOT_FOUND", "クラスが見つかりません。", "class_id", model.ErrNotFound)
		}
		logger.Error("Error finding class for roster", "error", err)
		return nil, model.ErrInternalServer
	}

	enrollments, err := s.enrollRepo.ListActiveByClass(ctx, s.db, classID)
	if err != nil {
		logger.Error("Error listing roster", "error", err)
		return nil, model.ErrInternalServer
	}
	if enrollments == nil {
		enrollments = []*model.ClassEnrollment{}
	}

	return &model.ClassRosterResponse{
		ClassID:        class.ClassID,
		Capacity:       class.Capacity,
		AvailableSpots: availableSpots(class.Capacity, int64(len(enrollments))),
		Enrollments:    enrollments,
	}, nil
}

// findOrCreateMember は外部認証基盤のユーザーIDからメンバーを引き、初回接触で
// あればプロフィールを遅延作成します。氏名などは後続の登録画面で補完される。
func (s *enrollmentService) findOrCreateMember(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.Member, error) {
	member, err := s.memberRepo.FindByUserID(ctx, tx, userID)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	uid := userID
	member = &model.Member{
		MemberID: uuid.New(),
		UserID:   &uid,
	}
	if err := s.memberRepo.Create(ctx, tx, member); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 同時リクエストが先にプロフィールを作成した場合は引き直す
			return s.memberRepo.FindByUserID(ctx, tx, userID)
		}
		return nil, err
	}
	return member, nil
}
