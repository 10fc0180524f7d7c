// internal/service/enrollment_integration_test.go
//
// 実リポジトリ + インメモリSQLiteで、状態機械・定員・進捗再計算を
// エンドツーエンドに検証する。
package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"disciple_keep/internal/config"
	"disciple_keep/internal/model"
	"disciple_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// captureNotifier はコミット後イベントの発火を記録するテスト用 Notifier
type captureNotifier struct {
	mu        sync.Mutex
	created   []model.EnrollmentCreatedEvent
	completed []model.ClassCompletedEvent
}

func (n *captureNotifier) EnrollmentCreated(_ context.Context, event model.EnrollmentCreatedEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, event)
}

func (n *captureNotifier) ClassCompleted(_ context.Context, event model.ClassCompletedEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, event)
}

type testEnv struct {
	db            *gorm.DB
	notifier      *captureNotifier
	enrollmentSvc EnrollmentService
	progressSvc   ProgressService
	attendanceSvc AttendanceService
}

// setupIntegrationEnv はテストごとに独立したインメモリDBと実リポジトリ一式を組む
func setupIntegrationEnv(t *testing.T) *testEnv {
	t.Helper()
	discardSlog()

	// テストごとに一意な名前付き共有メモリDBを使う (コネクションプール対策)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Member{},
		&model.DiscipleshipClass{},
		&model.ClassSession{},
		&model.ClassContent{},
		&model.ClassEnrollment{},
		&model.ClassContentProgress{},
		&model.Attendance{},
	)
	require.NoError(t, err)

	memberRepo := repository.NewGormMemberRepository()
	classRepo := repository.NewGormClassRepository()
	enrollRepo := repository.NewGormEnrollmentRepository()
	contentRepo := repository.NewGormContentRepository()
	progRepo := repository.NewGormContentProgressRepository()
	sessionRepo := repository.NewGormSessionRepository()
	attendRepo := repository.NewGormAttendanceRepository()

	notifier := &captureNotifier{}
	progressSvc := NewProgressService(db, memberRepo, enrollRepo, contentRepo, progRepo, attendRepo)

	return &testEnv{
		db:            db,
		notifier:      notifier,
		enrollmentSvc: NewEnrollmentService(db, memberRepo, classRepo, enrollRepo, notifier, autoApproveConfig()),
		progressSvc:   progressSvc,
		attendanceSvc: NewAttendanceService(db, sessionRepo, memberRepo, enrollRepo, attendRepo, progressSvc),
	}
}

func (e *testEnv) createClass(t *testing.T, capacity int, isActive bool) *model.DiscipleshipClass {
	t.Helper()
	class := &model.DiscipleshipClass{
		ClassID:  uuid.New(),
		Title:    "弟子訓練 基礎",
		Capacity: capacity,
		IsActive: isActive,
		MentorID: uuid.New(),
	}
	require.NoError(t, e.db.Create(class).Error)
	return class
}

func (e *testEnv) createContents(t *testing.T, classID uuid.UUID, published int, unpublished int) []*model.ClassContent {
	t.Helper()
	var contents []*model.ClassContent
	for i := 0; i < published+unpublished; i++ {
		week := i + 1
		content := &model.ClassContent{
			ContentID:   uuid.New(),
			ClassID:     classID,
			Title:       fmt.Sprintf("第%d週 教材", week),
			IsPublished: i < published,
			WeekNumber:  &week,
		}
		require.NoError(t, e.db.Create(content).Error)
		contents = append(contents, content)
	}
	return contents
}

func (e *testEnv) createSessions(t *testing.T, classID uuid.UUID, count int) []*model.ClassSession {
	t.Helper()
	var sessions []*model.ClassSession
	for i := 0; i < count; i++ {
		session := &model.ClassSession{
			SessionID:   uuid.New(),
			ClassID:     classID,
			SessionDate: time.Now().AddDate(0, 0, -count+i),
		}
		require.NoError(t, e.db.Create(session).Error)
		sessions = append(sessions, session)
	}
	return sessions
}

func TestIntegration_CapacityGuard(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 1, true) // 定員1

	userA := uuid.New()
	userB := uuid.New()

	// 1人目は成功
	first, err := env.enrollmentSvc.RequestEnrollment(ctx, userA, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	assert.False(t, first.AlreadyEnrolled)
	assert.Equal(t, model.EnrollmentApproved, first.Enrollment.Status)

	// 2人目は満席
	second, err := env.enrollmentSvc.RequestEnrollment(ctx, userB, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrClassFull)
	assert.Nil(t, second)

	// 受講中は1件のまま
	var count int64
	require.NoError(t, env.db.Model(&model.ClassEnrollment{}).
		Where("class_id = ? AND status IN ?", class.ClassID, []string{"pending", "approved"}).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 読み取り側の定員ガード: 残席0が名簿に出る
	roster, err := env.enrollmentSvc.ListRoster(ctx, class.ClassID)
	require.NoError(t, err)
	assert.Equal(t, 1, roster.Capacity)
	assert.Equal(t, 0, roster.AvailableSpots)
	assert.Len(t, roster.Enrollments, 1)
}

func TestIntegration_SingleActiveEnrollment(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	classA := env.createClass(t, 10, true)
	classB := env.createClass(t, 10, true)

	userID := uuid.New()

	_, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: classA.ClassID})
	require.NoError(t, err)

	// 別クラスへの申込は拒否される
	_, err = env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: classB.ClassID})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
	var activeErr *model.ActiveEnrollmentError
	assert.ErrorAs(t, err, &activeErr)
	assert.Equal(t, classA.ClassID, activeErr.ClassID)
}

func TestIntegration_IdempotentReRequest(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)

	userID := uuid.New()

	first, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	assert.False(t, first.AlreadyEnrolled)

	// 同一クラスへの再申込は既存の登録を返し、新しい行は作らない
	second, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	assert.True(t, second.AlreadyEnrolled)
	assert.Equal(t, first.Enrollment.EnrollmentID, second.Enrollment.EnrollmentID)

	var count int64
	require.NoError(t, env.db.Model(&model.ClassEnrollment{}).
		Where("class_id = ?", class.ClassID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// イベントは初回の1回だけ
	assert.Len(t, env.notifier.created, 1)
}

func TestIntegration_NoReenrollmentAfterCancel(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)

	userID := uuid.New()

	result, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)

	_, err = env.enrollmentSvc.CancelEnrollment(ctx, userID, result.Enrollment.EnrollmentID)
	require.NoError(t, err)

	// キャンセル後の再申込は登録行が残っているため拒否される
	_, err = env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
	var reErr *model.ReenrollmentError
	assert.ErrorAs(t, err, &reErr)
	assert.Equal(t, model.EnrollmentCancelled, reErr.Status)
}

func TestIntegration_InactiveClass(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, false) // 募集停止

	_, err := env.enrollmentSvc.RequestEnrollment(ctx, uuid.New(), &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrClassInactive)
}

func TestIntegration_CancelCompletedIsRejected(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)

	userID := uuid.New()
	result, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	enrollmentID := result.Enrollment.EnrollmentID

	_, err = env.enrollmentSvc.CompleteEnrollment(ctx, enrollmentID)
	require.NoError(t, err)
	assert.Len(t, env.notifier.completed, 1)

	// 修了後のキャンセルは拒否され、状態は変わらない
	_, err = env.enrollmentSvc.CancelEnrollment(ctx, userID, enrollmentID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)

	reloaded, err := env.enrollmentSvc.GetEnrollment(ctx, enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentCompleted, reloaded.Status)
}

func TestIntegration_ProgressAndAttendanceMath(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)
	contents := env.createContents(t, class.ClassID, 4, 1) // 公開4 + 非公開1
	sessions := env.createSessions(t, class.ClassID, 5)

	userID := uuid.New()
	mentorID := uuid.New()

	result, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	enrollmentID := result.Enrollment.EnrollmentID
	memberID := result.Enrollment.MemberID

	// 公開教材4件中2件を完了 -> 50.00%
	for _, content := range contents[:2] {
		_, err := env.progressSvc.ToggleContentProgress(ctx, userID, content.ContentID)
		require.NoError(t, err)
	}

	// 5セッション記録、うち4回出席 -> 80.00%
	for i, session := range sessions {
		status := "present"
		if i == 0 {
			status = "absent"
		}
		_, err := env.attendanceSvc.MarkAttendance(ctx, mentorID, session.SessionID, &model.MarkAttendanceRequest{
			MemberID: memberID,
			Status:   status,
		})
		require.NoError(t, err)
	}

	reloaded, err := env.enrollmentSvc.GetEnrollment(ctx, enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.CompletedLessons)
	assert.Equal(t, 50.0, reloaded.ProgressPercentage)
	assert.Equal(t, 80.0, reloaded.AttendanceRate)

	// 再マークは上書きであり、分母は増えない: 欠席を出席に直すと100%
	_, err = env.attendanceSvc.MarkAttendance(ctx, mentorID, sessions[0].SessionID, &model.MarkAttendanceRequest{
		MemberID: memberID,
		Status:   "present",
	})
	require.NoError(t, err)

	reloaded, err = env.enrollmentSvc.GetEnrollment(ctx, enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, reloaded.AttendanceRate)

	var attendanceCount int64
	require.NoError(t, env.db.Model(&model.Attendance{}).
		Where("member_id = ?", memberID).Count(&attendanceCount).Error)
	assert.Equal(t, int64(5), attendanceCount)

	// トグルで完了を取り消すと進捗も下がる (再計算の冪等性)
	_, err = env.progressSvc.ToggleContentProgress(ctx, userID, contents[0].ContentID)
	require.NoError(t, err)

	reloaded, err = env.enrollmentSvc.GetEnrollment(ctx, enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.CompletedLessons)
	assert.Equal(t, 25.0, reloaded.ProgressPercentage)
}

func TestIntegration_ProgressSummary(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)
	contents := env.createContents(t, class.ClassID, 3, 0)

	userID := uuid.New()
	result, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)

	_, err = env.progressSvc.ToggleContentProgress(ctx, userID, contents[0].ContentID)
	require.NoError(t, err)

	summary, err := env.progressSvc.GetProgressSummary(ctx, result.Enrollment.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CompletedLessons)
	assert.Equal(t, int64(3), summary.TotalPublished)
	assert.Equal(t, 33.33, summary.ProgressPercentage)
	assert.Equal(t, int64(0), summary.RecordedSessions)
	assert.Equal(t, 0.0, summary.AttendanceRate)
}

func TestIntegration_BulkAttendancePartialSuccess(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)
	sessions := env.createSessions(t, class.ClassID, 1)

	userID := uuid.New()
	result, err := env.enrollmentSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	memberID := result.Enrollment.MemberID

	bulkResult, err := env.attendanceSvc.MarkAttendanceBulk(ctx, uuid.New(), sessions[0].SessionID, &model.BulkAttendanceRequest{
		Entries: []model.BulkAttendanceEntry{
			{MemberID: memberID, Status: "present"},
			{MemberID: uuid.New(), Status: "present"}, // 存在しないメンバー
			{MemberID: memberID, Status: "bogus"},     // 不正ステータス
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bulkResult.Applied)
	require.Len(t, bulkResult.Failed, 2)
	assert.Equal(t, "MEMBER_NOT_FOUND", bulkResult.Failed[0].Code)
	assert.Equal(t, "INVALID_ATTENDANCE_STATUS", bulkResult.Failed[1].Code)

	// 有効なエントリの記録は失われていない
	reloaded, err := env.enrollmentSvc.GetEnrollment(ctx, result.Enrollment.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, reloaded.AttendanceRate)
}

// autoApproveConfig が false の場合の申込は手動承認フローに乗る
func TestIntegration_ManualApprovalFlow(t *testing.T) {
	ctx := context.Background()
	env := setupIntegrationEnv(t)
	class := env.createClass(t, 10, true)

	// 手動承認モードのサービスを組み直す
	var cfg config.Config
	memberRepo := repository.NewGormMemberRepository()
	classRepo := repository.NewGormClassRepository()
	enrollRepo := repository.NewGormEnrollmentRepository()
	manualSvc := NewEnrollmentService(env.db, memberRepo, classRepo, enrollRepo, env.notifier, cfg)

	userID := uuid.New()
	mentorUserID := uuid.New()

	result, err := manualSvc.RequestEnrollment(ctx, userID, &model.RequestEnrollmentRequest{ClassID: class.ClassID})
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentPending, result.Enrollment.Status)

	// pending も定員を消費する
	var activeCount int64
	require.NoError(t, env.db.Model(&model.ClassEnrollment{}).
		Where("class_id = ? AND status IN ?", class.ClassID, []string{"pending", "approved"}).
		Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)

	approved, err := manualSvc.ApproveEnrollment(ctx, mentorUserID, result.Enrollment.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, mentorUserID, *approved.ApprovedBy)

	// 承認済みを却下はできない
	_, err = manualSvc.RejectEnrollment(ctx, result.Enrollment.EnrollmentID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
}
