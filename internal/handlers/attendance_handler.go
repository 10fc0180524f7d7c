// internal/handlers/attendance_handler.go
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

type AttendanceHandler struct {
	service service.AttendanceService
	logger  *slog.Logger
}

func NewAttendanceHandler(s service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceHandler{
		service: s,
		logger:  logger,
	}
}

// PutAttendance は単一メンバーの出席マークのハンドラ。再マークは上書き。
func (h *AttendanceHandler) PutAttendance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutAttendance"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.MarkAttendanceRequest
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

	attendance, err := h.service.MarkAttendance(r.Context(), userID, sessionID, &req)
	if err != nil {
		logger.Error("Error marking attendance in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attendance marked successfully", slog.String("member_id", req.MemberID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, attendance, logger)
}

// PostBulkAttendance は一括出席マークのハンドラ。部分成功を 200 で返す。
func (h *AttendanceHandler) PostBulkAttendance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBulkAttendance"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.BulkAttendanceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.MarkAttendanceBulk(r.Context(), userID, sessionID, &req)
	if err != nil {
		logger.Error("Error marking bulk attendance in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bulk attendance processed", slog.Int("applied", result.Applied), slog.Int("failed", len(result.Failed)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetSessionAttendance はセッションの出席記録一覧を取得するハンドラ
func (h *AttendanceHandler) GetSessionAttendance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessionAttendance"))

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	records, err := h.service.ListSessionAttendance(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error listing session attendance in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []*model.Attendance{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
