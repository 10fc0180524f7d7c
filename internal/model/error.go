// internal/model/error.go
package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// 受講登録のドメインエラー (判定用の番兵エラー)
	ErrClassInactive = errors.New("class is not active")
	ErrClassFull     = errors.New("class is full")
	ErrInvalidStatus = errors.New("invalid attendance status")
)

// ActiveEnrollmentError は、別クラスを受講中のため新規登録できない場合のエラー。
// 呼び出し側がメッセージを組み立てられるよう、ブロックしているクラスの情報を持つ。
type ActiveEnrollmentError struct {
	ClassID    uuid.UUID
	ClassTitle string
}

func (e *ActiveEnrollmentError) Error() string {
	return fmt.Sprintf("member already has an active enrollment in class %s (%s)", e.ClassID, e.ClassTitle)
}

func (e *ActiveEnrollmentError) Unwrap() error { return ErrConflict }

// ReenrollmentError は、終了状態の登録行が既に存在するため再登録できない場合のエラー。
type ReenrollmentError struct {
	ClassID uuid.UUID
	Status  EnrollmentStatus
}

func (e *ReenrollmentError) Error() string {
	return fmt.Sprintf("enrollment for class %s already exists in terminal status %q", e.ClassID, e.Status)
}

func (e *ReenrollmentError) Unwrap() error { return ErrConflict }

// InvalidTransitionError は、状態遷移表で許可されていない遷移を表す。
// completed からのキャンセル試行 (CannotCancelCompleted) もこの型で表現する。
type InvalidTransitionError struct {
	From EnrollmentStatus
	To   EnrollmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("enrollment transition %q -> %q is not permitted", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrConflict }

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細 (Detail) と、ステータスコード判定用の
// 原因エラーを併せ持つアプリケーションエラーです。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error { return e.err }
