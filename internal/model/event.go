// internal/model/event.go
package model

// ライフサイクルイベント。所有トランザクションのコミット後に通知ディスパッチャへ
// fire-and-forget で渡される。重複配送の冪等性はディスパッチャ側の責務。

// EnrollmentCreatedEvent は受講登録の作成時に発火します。
// 将来の手動承認モードでは承認前に発火しうるため、受け手は Status も確認すること。
type EnrollmentCreatedEvent struct {
	Enrollment *ClassEnrollment
}

// ClassCompletedEvent は受講登録が completed に遷移したときに発火します。
type ClassCompletedEvent struct {
	Enrollment *ClassEnrollment
}
