// internal/handlers/enrollment_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/service"
	"disciple_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  *slog.Logger
}

func NewEnrollmentHandler(s service.EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentHandler{
		service: s,
		logger:  logger,
	}
}

// PostEnrollment は受講申込を作成するためのハンドラ。
// 同一クラスへ重複申込した場合は既存の登録を 200 で返す (201 は新規作成のみ)。
func (h *EnrollmentHandler) PostEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEnrollment"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.RequestEnrollmentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.RequestEnrollment(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error requesting enrollment in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyEnrolled {
		status = http.StatusOK
	}
	logger.Info("Enrollment request processed",
		slog.String("enrollment_id", result.Enrollment.EnrollmentID.String()),
		slog.Bool("already_enrolled", result.AlreadyEnrolled),
	)
	webutil.RespondWithJSON(w, status, result, logger)
}

// ApproveEnrollment は手動承認モードで pending の申込を承認するハンドラ
func (h *EnrollmentHandler) ApproveEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ApproveEnrollment"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("enrollment_id", enrollmentID.String()))

	enrollment, err := h.service.ApproveEnrollment(r.Context(), userID, enrollmentID)
	if err != nil {
		logger.Error("Error approving enrollment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enrollment approved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// RejectEnrollment は pending の申込を却下するハンドラ
func (h *EnrollmentHandler) RejectEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RejectEnrollment"))

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("enrollment_id", enrollmentID.String()))

	enrollment, err := h.service.RejectEnrollment(r.Context(), enrollmentID)
	if err != nil {
		logger.Error("Error rejecting enrollment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enrollment rejected successfully")
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// CancelEnrollment は本人による受講キャンセルのハンドラ
func (h *EnrollmentHandler) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CancelEnrollment"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("enrollment_id", enrollmentID.String()))

	enrollment, err := h.service.CancelEnrollment(r.Context(), userID, enrollmentID)
	if err != nil {
		logger.Error("Error cancelling enrollment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enrollment cancelled successfully")
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// CompleteEnrollment はメンターが受講を修了扱いにするハンドラ
func (h *EnrollmentHandler) CompleteEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteEnrollment"))

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("enrollment_id", enrollmentID.String()))

	enrollment, err := h.service.CompleteEnrollment(r.Context(), enrollmentID)
	if err != nil {
		logger.Error("Error completing enrollment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enrollment completed successfully")
	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// GetEnrollment は受講登録1件を取得するハンドラ
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEnrollment"))

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), enrollmentID)
	if err != nil {
		logger.Error("Error getting enrollment in service", slog.Any("error", err), slog.String("enrollment_id", enrollmentID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, enrollment, logger)
}

// GetClassRoster はクラスの受講中メンバー一覧を取得するハンドラ
func (h *EnrollmentHandler) GetClassRoster(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetClassRoster"))

	classID, err := uuid.Parse(chi.URLParam(r, "class_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "クラスIDの形式が正しくありません。", "class_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("class_id", classID.String()))

	roster, err := h.service.ListRoster(r.Context(), classID)
	if err != nil {
		logger.Error("Error listing roster in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Roster listed successfully",
		slog.Int("count", len(roster.Enrollments)),
		slog.Int("available_spots", roster.AvailableSpots),
	)
	webutil.RespondWithJSON(w, http.StatusOK, roster, logger)
}
