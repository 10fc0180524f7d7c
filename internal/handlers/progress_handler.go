// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
	"disciple_keep/internal/service"
	"disciple_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// ToggleContentProgress は教材の完了フラグをトグルするハンドラ
func (h *ProgressHandler) ToggleContentProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleContentProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	contentID, err := uuid.Parse(chi.URLParam(r, "content_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "教材IDの形式が正しくありません。", "content_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("content_id", contentID.String()))

	progress, err := h.service.ToggleContentProgress(r.Context(), userID, contentID)
	if err != nil {
		logger.Error("Error toggling content progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Content progress toggled successfully", slog.Bool("is_completed", progress.IsCompleted))
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetProgressSummary は受講登録の進捗サマリを取得するハンドラ
func (h *ProgressHandler) GetProgressSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgressSummary"))

	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollment_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "受講登録IDの形式が正しくありません。", "enrollment_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("enrollment_id", enrollmentID.String()))

	summary, err := h.service.GetProgressSummary(r.Context(), enrollmentID)
	if err != nil {
		logger.Error("Error getting progress summary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// GetClassContents は公開教材一覧を呼び出し元メンバーの進捗付きで返すハンドラ
func (h *ProgressHandler) GetClassContents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetClassContents"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	classID, err := uuid.Parse(chi.URLParam(r, "class_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_PATH_PARAM", "クラスIDの形式が正しくありません。", "class_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("class_id", classID.String()))

	contents, err := h.service.ListClassContents(r.Context(), userID, classID)
	if err != nil {
		logger.Error("Error listing class contents in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if contents == nil {
		contents = []*model.ContentWithProgress{}
	}
	logger.Info("Class contents listed successfully", slog.Int("count", len(contents)))
	webutil.RespondWithJSON(w, http.StatusOK, contents, logger)
}
