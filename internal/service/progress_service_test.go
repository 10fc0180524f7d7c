// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"disciple_keep/internal/model"
	"disciple_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test Recompute ---
func Test_progressService_Recompute(t *testing.T) {
	discardSlog()
	ctx := context.Background()
	db := setupTestDBEnrollment()

	enrollment := &model.ClassEnrollment{
		EnrollmentID: uuid.New(),
		ClassID:      uuid.New(),
		MemberID:     uuid.New(),
		Status:       model.EnrollmentApproved,
	}

	tests := []struct {
		name           string
		totalPublished int64
		completed      int64
		present        int64
		recorded       int64
		wantLessons    int
		wantPct        float64
		wantRate       float64
	}{
		{
			name:           "正常系: 4教材中2完了は50.00%",
			totalPublished: 4, completed: 2, present: 4, recorded: 5,
			wantLessons: 2, wantPct: 50.0, wantRate: 80.0,
		},
		{
			name:           "正常系: 3教材中1完了は小数第2位に丸める",
			totalPublished: 3, completed: 1, present: 1, recorded: 3,
			wantLessons: 1, wantPct: 33.33, wantRate: 33.33,
		},
		{
			name:           "正常系: 公開教材ゼロなら進捗は0%",
			totalPublished: 0, completed: 0, present: 2, recorded: 2,
			wantLessons: 0, wantPct: 0, wantRate: 100.0,
		},
		{
			name:           "正常系: 出席記録ゼロなら出席率は0%",
			totalPublished: 4, completed: 4, present: 0, recorded: 0,
			wantLessons: 4, wantPct: 100.0, wantRate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockContentRepo := new(mocks.ContentRepository)
			mockProgRepo := new(mocks.ContentProgressRepository)
			mockAttendRepo := new(mocks.AttendanceRepository)
			mockEnrollRepo := new(mocks.EnrollmentRepository)

			mockContentRepo.On("CountPublishedByClass", ctx, mock.AnythingOfType("*gorm.DB"), enrollment.ClassID).
				Return(tt.totalPublished, nil).Once()
			mockProgRepo.On("CountCompletedPublished", ctx, mock.AnythingOfType("*gorm.DB"), enrollment.EnrollmentID).
				Return(tt.completed, nil).Once()
			mockAttendRepo.On("CountByMemberAndClass", ctx, mock.AnythingOfType("*gorm.DB"), enrollment.MemberID, enrollment.ClassID).
				Return(tt.present, tt.recorded, nil).Once()
			mockEnrollRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), enrollment.EnrollmentID, tt.wantLessons, tt.wantPct, tt.wantRate).
				Return(nil).Once()

			progressService := NewProgressService(db, new(mocks.MemberRepository), mockEnrollRepo, mockContentRepo, mockProgRepo, mockAttendRepo)

			err := progressService.Recompute(ctx, db, enrollment)
			require.NoError(t, err)

			mockContentRepo.AssertExpectations(t)
			mockProgRepo.AssertExpectations(t)
			mockAttendRepo.AssertExpectations(t)
			mockEnrollRepo.AssertExpectations(t)
		})
	}
}

// --- Test ToggleContentProgress ---
func Test_progressService_ToggleContentProgress(t *testing.T) {
	discardSlog()
	ctx := context.Background()
	db := setupTestDBEnrollment()

	userID := uuid.New()
	memberID := uuid.New()
	classID := uuid.New()
	contentID := uuid.New()
	enrollmentID := uuid.New()

	member := &model.Member{MemberID: memberID, UserID: &userID}
	content := &model.ClassContent{ContentID: contentID, ClassID: classID, IsPublished: true}
	enrollment := &model.ClassEnrollment{
		EnrollmentID: enrollmentID,
		ClassID:      classID,
		MemberID:     memberID,
		Status:       model.EnrollmentApproved,
	}

	// 再計算呼び出しに使う共通のモック設定
	expectRecompute := func(contentRepo *mocks.ContentRepository, progRepo *mocks.ContentProgressRepository, attendRepo *mocks.AttendanceRepository, enrollRepo *mocks.EnrollmentRepository) {
		contentRepo.On("CountPublishedByClass", ctx, mock.AnythingOfType("*gorm.DB"), classID).
			Return(int64(4), nil).Once()
		progRepo.On("CountCompletedPublished", ctx, mock.AnythingOfType("*gorm.DB"), enrollmentID).
			Return(int64(1), nil).Once()
		attendRepo.On("CountByMemberAndClass", ctx, mock.AnythingOfType("*gorm.DB"), memberID, classID).
			Return(int64(0), int64(0), nil).Once()
		enrollRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), enrollmentID, 1, 25.0, 0.0).
			Return(nil).Once()
	}

	t.Run("正常系: 初回トグルは完了状態の進捗行を遅延作成する", func(t *testing.T) {
		mockMemberRepo := new(mocks.MemberRepository)
		mockContentRepo := new(mocks.ContentRepository)
		mockProgRepo := new(mocks.ContentProgressRepository)
		mockAttendRepo := new(mocks.AttendanceRepository)
		mockEnrollRepo := new(mocks.EnrollmentRepository)

		mockMemberRepo.On("FindByUserID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(member, nil).Once()
		mockContentRepo.On("FindPublishedByID", ctx, mock.AnythingOfType("*gorm.DB"), contentID).Return(content, nil).Once()
		mockEnrollRepo.On("FindByClassAndMember", ctx, mock.AnythingOfType("*gorm.DB"), classID, memberID).Return(enrollment, nil).Once()
		mockProgRepo.On("FindByContentAndEnrollment", ctx, mock.AnythingOfType("*gorm.DB"), contentID, enrollmentID).
			Return(nil, model.ErrNotFound).Once()
		mockProgRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ClassContentProgress")).
			Run(func(args mock.Arguments) {
				progress := args.Get(2).(*model.ClassContentProgress)
				assert.Equal(t, contentID, progress.ContentID)
				assert.Equal(t, enrollmentID, progress.EnrollmentID)
				assert.True(t, progress.IsCompleted)
				require.NotNil(t, progress.CompletedAt)
			}).Return(nil).Once()
		expectRecompute(mockContentRepo, mockProgRepo, mockAttendRepo, mockEnrollRepo)

		progressService := NewProgressService(db, mockMemberRepo, mockEnrollRepo, mockContentRepo, mockProgRepo, mockAttendRepo)

		toggled, err := progressService.ToggleContentProgress(ctx, userID, contentID)
		require.NoError(t, err)
		require.NotNil(t, toggled)
		assert.True(t, toggled.IsCompleted)

		mockProgRepo.AssertExpectations(t)
		mockEnrollRepo.AssertExpectations(t)
	})

	t.Run("正常系: 完了済みをトグルすると未完了に戻る", func(t *testing.T) {
		mockMemberRepo := new(mocks.MemberRepository)
		mockContentRepo := new(mocks.ContentRepository)
		mockProgRepo := new(mocks.ContentProgressRepository)
		mockAttendRepo := new(mocks.AttendanceRepository)
		mockEnrollRepo := new(mocks.EnrollmentRepository)

		now := time.Now()
		existing := &model.ClassContentProgress{
			ContentProgressID: uuid.New(),
			ContentID:         contentID,
			EnrollmentID:      enrollmentID,
			IsCompleted:       true,
			StartedAt:         now,
			CompletedAt:       &now,
		}

		mockMemberRepo.On("FindByUserID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(member, nil).Once()
		mockContentRepo.On("FindPublishedByID", ctx, mock.AnythingOfType("*gorm.DB"), contentID).Return(content, nil).Once()
		mockEnrollRepo.On("FindByClassAndMember", ctx, mock.AnythingOfType("*gorm.DB"), classID, memberID).Return(enrollment, nil).Once()
		mockProgRepo.On("FindByContentAndEnrollment", ctx, mock.AnythingOfType("*gorm.DB"), contentID, enrollmentID).
			Return(existing, nil).Once()
		mockProgRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ClassContentProgress")).
			Run(func(args mock.Arguments) {
				progress := args.Get(2).(*model.ClassContentProgress)
				assert.False(t, progress.IsCompleted)
				assert.Nil(t, progress.CompletedAt)
			}).Return(nil).Once()
		expectRecompute(mockContentRepo, mockProgRepo, mockAttendRepo, mockEnrollRepo)

		progressService := NewProgressService(db, mockMemberRepo, mockEnrollRepo, mockContentRepo, mockProgRepo, mockAttendRepo)

		toggled, err := progressService.ToggleContentProgress(ctx, userID, contentID)
		require.NoError(t, err)
		assert.False(t, toggled.IsCompleted)

		mockProgRepo.AssertExpectations(t)
	})

	t.Run("異常系: 非公開教材は存在しないものとして扱う", func(t *testing.T) {
		mockMemberRepo := new(mocks.MemberRepository)
		mockContentRepo := new(mocks.ContentRepository)

		mockMemberRepo.On("FindByUserID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(member, nil).Once()
		mockContentRepo.On("FindPublishedByID", ctx, mock.AnythingOfType("*gorm.DB"), contentID).
			Return(nil, model.ErrNotFound).Once()

		progressService := NewProgressService(db, mockMemberRepo, new(mocks.EnrollmentRepository), mockContentRepo, new(mocks.ContentProgressRepository), new(mocks.AttendanceRepository))

		toggled, err := progressService.ToggleContentProgress(ctx, userID, contentID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, toggled)
	})

	t.Run("異常系: 受講登録がないメンバーはトグルできない", func(t *testing.T) {
		mockMemberRepo := new(mocks.MemberRepository)
		mockContentRepo := new(mocks.ContentRepository)
		mockEnrollRepo := new(mocks.EnrollmentRepository)

		mockMemberRepo.On("FindByUserID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(member, nil).Once()
		mockContentRepo.On("FindPublishedByID", ctx, mock.AnythingOfType("*gorm.DB"), contentID).Return(content, nil).Once()
		mockEnrollRepo.On("FindByClassAndMember", ctx, mock.AnythingOfType("*gorm.DB"), classID, memberID).
			Return(nil, model.ErrNotFound).Once()

		progressService := NewProgressService(db, mockMemberRepo, mockEnrollRepo, mockContentRepo, new(mocks.ContentProgressRepository), new(mocks.AttendanceRepository))

		toggled, err := progressService.ToggleContentProgress(ctx, userID, contentID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, toggled)
	})

	t.Run("異常系: 終了した受講の教材はトグルできない", func(t *testing.T) {
		mockMemberRepo := new(mocks.MemberRepository)
		mockContentRepo := new(mocks.ContentRepository)
		mockEnrollRepo := new(mocks.EnrollmentRepository)

		done := &model.ClassEnrollment{
			EnrollmentID: enrollmentID,
			ClassID:      classID,
			MemberID:     memberID,
			Status:       model.EnrollmentCompleted,
		}
		mockMemberRepo.On("FindByUserID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(member, nil).Once()
		mockContentRepo.On("FindPublishedByID", ctx, mock.AnythingOfType("*gorm.DB"), contentID).Return(content, nil).Once()
		mockEnrollRepo.On("FindByClassAndMember", ctx, mock.AnythingOfType("*gorm.DB"), classID, memberID).
			Return(done, nil).Once()

		progressService := NewProgressService(db, mockMemberRepo, mockEnrollRepo, mockContentRepo, new(mocks.ContentProgressRepository), new(mocks.AttendanceRepository))

		toggled, err := progressService.ToggleContentProgress(ctx, userID, contentID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, toggled)
	})
}

// --- Test GetProgressSummary ---
func Test_progressService_GetProgressSummary(t *testing.T) {
	discardSlog()
	ctx := context.Background()
	db := setupTestDBEnrollment()

	enrollmentID := uuid.New()
	classID := uuid.New()
	memberID := uuid.New()

	enrollment := &model.ClassEnrollment{
		EnrollmentID:       enrollmentID,
		ClassID:            classID,
		MemberID:           memberID,
		Status:             model.EnrollmentApproved,
		CompletedLessons:   2,
		ProgressPercentage: 50.0,
		AttendanceRate:     80.0,
	}

	mockEnrollRepo := new(mocks.EnrollmentRepository)
	mockContentRepo := new(mocks.ContentRepository)
	mockAttendRepo := new(mocks.AttendanceRepository)

	mockEnrollRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), enrollmentID).Return(enrollment, nil).Once()
	mockContentRepo.On("CountPublishedByClass", ctx, mock.AnythingOfType("*gorm.DB"), classID).Return(int64(4), nil).Once()
	mockAttendRepo.On("CountByMemberAndClass", ctx, mock.AnythingOfType("*gorm.DB"), memberID, classID).
		Return(int64(4), int64(5), nil).Once()

	progressService := NewProgressService(db, new(mocks.MemberRepository), mockEnrollRepo, mockContentRepo, new(mocks.ContentProgressRepository), mockAttendRepo)

	summary, err := progressService.GetProgressSummary(ctx, enrollmentID)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, enrollmentID, summary.EnrollmentID)
	assert.Equal(t, 2, summary.CompletedLessons)
	assert.Equal(t, int64(4), summary.TotalPublished)
	assert.Equal(t, 50.0, summary.ProgressPercentage)
	assert.Equal(t, int64(4), summary.PresentCount)
	assert.Equal(t, int64(5), summary.RecordedSessions)
	assert.Equal(t, 80.0, summary.AttendanceRate)
}
