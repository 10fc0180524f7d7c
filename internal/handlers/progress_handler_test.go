// internal/handlers/progress_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"disciple_keep/internal/handlers"
	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/service/mocks"
)

func TestProgressHandler_ToggleContentProgress(t *testing.T) {
	userID := uuid.New()
	contentID := uuid.New()
	now := time.Now()

	completed := &model.ClassContentProgress{
		ContentProgressID: uuid.New(),
		ContentID:         contentID,
		EnrollmentID:      uuid.New(),
		IsCompleted:       true,
		StartedAt:         now,
		CompletedAt:       &now,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		contentIDParam string
		setupMock      func(m *mocks.ProgressService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "正常系: 完了にトグル",
			userID:         &userID,
			contentIDParam: contentID.String(),
			setupMock: func(m *mocks.ProgressService) {
				m.On("ToggleContentProgress", mock.AnythingOfType("*context.valueCtx"), userID, contentID).
					Return(completed, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 未受講メンバーは403",
			userID:         &userID,
			contentIDParam: contentID.String(),
			setupMock: func(m *mocks.ProgressService) {
				m.On("ToggleContentProgress", mock.AnythingOfType("*context.valueCtx"), userID, contentID).
					Return(nil, model.NewAppError("NOT_ENROLLED", "このクラスを受講していません。", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "NOT_ENROLLED",
		},
		{
			name:           "異常系: 非公開教材は404",
			userID:         &userID,
			contentIDParam: contentID.String(),
			setupMock: func(m *mocks.ProgressService) {
				m.On("ToggleContentProgress", mock.AnythingOfType("*context.valueCtx"), userID, contentID).
					Return(nil, model.NewAppError("CONTENT_NOT_FOUND", "教材が見つかりません。", "content_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "CONTENT_NOT_FOUND",
		},
		{
			name:           "異常系: 不正なUUIDは400",
			userID:         &userID,
			contentIDParam: "not-a-uuid",
			setupMock:      func(m *mocks.ProgressService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PATH_PARAM",
		},
		{
			name:           "異常系: X-User-IDヘッダーなしは403",
			userID:         nil,
			contentIDParam: contentID.String(),
			setupMock:      func(m *mocks.ProgressService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewProgressService(t)
			tc.setupMock(mockService)

			handler := handlers.NewProgressHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Use(middleware.DevUserContextMiddleware)
			router.Post("/api/v1/contents/{content_id}/progress/toggle", handler.ToggleContentProgress)

			url := fmt.Sprintf("/api/v1/contents/%s/progress/toggle", tc.contentIDParam)
			req := createRequest(t, "POST", url, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr.Body.Bytes())
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			} else {
				var resp model.ClassContentProgress
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, contentID, resp.ContentID)
				assert.True(t, resp.IsCompleted)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProgressHandler_GetProgressSummary(t *testing.T) {
	userID := uuid.New()
	enrollmentID := uuid.New()

	summary := &model.ProgressSummaryResponse{
		EnrollmentID:       enrollmentID,
		CompletedLessons:   2,
		TotalPublished:     4,
		ProgressPercentage: 50.0,
		PresentCount:       4,
		RecordedSessions:   5,
		AttendanceRate:     80.0,
	}

	tests := []struct {
		name              string
		enrollmentIDParam string
		setupMock         func(m *mocks.ProgressService)
		expectedStatus    int
	}{
		{
			name:              "正常系: サマリ取得",
			enrollmentIDParam: enrollmentID.String(),
			setupMock: func(m *mocks.ProgressService) {
				m.On("GetProgressSummary", mock.AnythingOfType("*context.valueCtx"), enrollmentID).
					Return(summary, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:              "異常系: 存在しない登録は404",
			enrollmentIDParam: uuid.New().String(),
			setupMock: func(m *mocks.ProgressService) {
				m.On("GetProgressSummary", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewProgressService(t)
			tc.setupMock(mockService)

			handler := handlers.NewProgressHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Use(middleware.DevUserContextMiddleware)
			router.Get("/api/v1/enrollments/{enrollment_id}/progress", handler.GetProgressSummary)

			url := fmt.Sprintf("/api/v1/enrollments/%s/progress", tc.enrollmentIDParam)
			req := createRequest(t, "GET", url, nil, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.ProgressSummaryResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, summary.CompletedLessons, resp.CompletedLessons)
				assert.Equal(t, summary.ProgressPercentage, resp.ProgressPercentage)
				assert.Equal(t, summary.AttendanceRate, resp.AttendanceRate)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProgressHandler_GetClassContents(t *testing.T) {
	userID := uuid.New()
	classID := uuid.New()

	week1 := 1
	contents := []*model.ContentWithProgress{
		{
			Content: &model.ClassContent{
				ContentID:   uuid.New(),
				ClassID:     classID,
				Title:       "第1週 教材",
				IsPublished: true,
				WeekNumber:  &week1,
			},
			IsCompleted: true,
		},
	}

	tests := []struct {
		name           string
		setupMock      func(m *mocks.ProgressService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "正常系: 進捗付き教材一覧",
			setupMock: func(m *mocks.ProgressService) {
				m.On("ListClassContents", mock.AnythingOfType("*context.valueCtx"), userID, classID).
					Return(contents, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "正常系: 教材なしでも空配列",
			setupMock: func(m *mocks.ProgressService) {
				m.On("ListClassContents", mock.AnythingOfType("*context.valueCtx"), userID, classID).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewProgressService(t)
			tc.setupMock(mockService)

			handler := handlers.NewProgressHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Use(middleware.DevUserContextMiddleware)
			router.Get("/api/v1/classes/{class_id}/contents", handler.GetClassContents)

			url := fmt.Sprintf("/api/v1/classes/%s/contents", classID)
			req := createRequest(t, "GET", url, nil, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			var respContents []model.ContentWithProgress
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respContents))
			assert.Len(t, respContents, tc.expectedCount)
			mockService.AssertExpectations(t)
		})
	}
}
