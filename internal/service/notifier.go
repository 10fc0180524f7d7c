// internal/service/notifier.go
package service

import (
	"context"
	"fmt"
	"time"

	"disciple_keep/internal/middleware"
	"disciple_keep/internal/model"
)

// mailSendTimeout は非同期送信1件あたりの上限。SMTP/SES が応答しない場合に
// 送信ゴルーチンが無期限に滞留しないための境界。
const mailSendTimeout = 30 * time.Second

// Notifier はライフサイクルイベントの受け手です。各メソッドはコミット後に
// fire-and-forget で呼ばれるため、戻り値を持たずブロックしてはならない。
// 同一イベントが重複して届いても副作用が増えないように実装すること。
type Notifier interface {
	EnrollmentCreated(ctx context.Context, event model.EnrollmentCreatedEvent)
	ClassCompleted(ctx context.Context, event model.ClassCompletedEvent)
}

// --- LogNotifier ---

// LogNotifier はイベントをログに書くだけの実装。開発環境とテストのデフォルト。
type LogNotifier struct{}

func (n *LogNotifier) EnrollmentCreated(ctx context.Context, event model.EnrollmentCreatedEvent) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Event: EnrollmentCreated (LogNotifier) ---",
		"enrollment_id", event.Enrollment.EnrollmentID.String(),
		"class_id", event.Enrollment.ClassID.String(),
		"member_id", event.Enrollment.MemberID.String(),
		"status", string(event.Enrollment.Status),
	)
}

func (n *LogNotifier) ClassCompleted(ctx context.Context, event model.ClassCompletedEvent) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Event: ClassCompleted (LogNotifier) ---",
		"enrollment_id", event.Enrollment.EnrollmentID.String(),
		"class_id", event.Enrollment.ClassID.String(),
		"member_id", event.Enrollment.MemberID.String(),
	)
}

// --- MailNotifier ---

// MailNotifier はイベントをメール通知に変換する実装です。
// 送信はゴルーチンに逃がし、呼び出し元のレスポンスを遅延させない。
type MailNotifier struct {
	mailer Mailer
}

func NewMailNotifier(mailer Mailer) Notifier {
	return &MailNotifier{mailer: mailer}
}

func (n *MailNotifier) EnrollmentCreated(ctx context.Context, event model.EnrollmentCreatedEvent) {
	logger := middleware.GetLogger(ctx)
	enrollment := event.Enrollment

	// 自動承認で approved になった場合のみ歓迎メールを送る。
	// 手動承認モードの pending には承認完了時に別途通知する想定。
	if enrollment.Status != model.EnrollmentApproved {
		return
	}
	member := enrollment.Member
	if !member.HasUser() || member.Email == "" {
		logger.Debug("Skipping enrollment mail, member has no reachable address",
			"enrollment_id", enrollment.EnrollmentID.String(),
		)
		return
	}

	classTitle := ""
	if enrollment.Class != nil {
		classTitle = enrollment.Class.Title
	}
	subject := fmt.Sprintf("「%s」への受講登録が完了しました", classTitle)
	body := fmt.Sprintf(
		"%s さん\r\n\r\nクラス「%s」への受講登録が承認されました。\r\n初回セッションでお会いできることを楽しみにしています。\r\n",
		member.FullName, classTitle,
	)

	go func() {
		sendCtx, cancel := context.WithTimeout(ctx, mailSendTimeout)
		defer cancel()
		if err := n.mailer.Send(sendCtx, member.Email, subject, body); err != nil {
			logger.Error("Failed to send enrollment created mail",
				"error", err,
				"enrollment_id", enrollment.EnrollmentID.String(),
			)
		}
	}()
}

func (n *MailNotifier) ClassCompleted(ctx context.Context, event model.ClassCompletedEvent) {
	logger := middleware.GetLogger(ctx)
	enrollment := event.Enrollment

	member := enrollment.Member
	if !member.HasUser() || member.Email == "" {
		logger.Debug("Skipping completion mail, member has no reachable address",
			"enrollment_id", enrollment.EnrollmentID.String(),
		)
		return
	}

	classTitle := ""
	if enrollment.Class != nil {
		classTitle = enrollment.Class.Title
	}
	subject := fmt.Sprintf("「%s」の修了おめでとうございます", classTitle)
	body := fmt.Sprintf(
		"%s さん\r\n\r\nクラス「%s」の全課程を修了しました。おめでとうございます!\r\n次のステップのクラス案内は追ってお送りします。\r\n",
		member.FullName, classTitle,
	)

	go func() {
		sendCtx, cancel := context.WithTimeout(ctx, mailSendTimeout)
		defer cancel()
		if err := n.mailer.Send(sendCtx, member.Email, subject, body); err != nil {
			logger.Error("Failed to send class completed mail",
				"error", err,
				"enrollment_id", enrollment.EnrollmentID.String(),
			)
		}
	}()
}
