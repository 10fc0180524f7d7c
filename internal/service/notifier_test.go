// internal/service/notifier_test.go
package service

import (
	"context"
	"testing"
	"time"

	"disciple_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedMail は stubMailer が受け取った送信1件分
type capturedMail struct {
	ctx     context.Context
	to      string
	subject string
	body    string
}

// stubMailer は送信内容をチャネルに流すテスト用 Mailer。
// 送信は別ゴルーチンで行われるため、チャネル受信で同期する。
type stubMailer struct {
	sent chan capturedMail
}

func newStubMailer() *stubMailer {
	return &stubMailer{sent: make(chan capturedMail, 4)}
}

func (m *stubMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent <- capturedMail{ctx: ctx, to: to, subject: subject, body: body}
	return nil
}

// waitForMail は非同期送信を待ち、タイムアウトしたらテストを失敗させる
func waitForMail(t *testing.T, m *stubMailer) capturedMail {
	t.Helper()
	select {
	case mail := <-m.sent:
		return mail
	case <-time.After(2 * time.Second):
		t.Fatal("expected a mail to be sent, but none arrived")
		return capturedMail{}
	}
}

func assertNoMail(t *testing.T, m *stubMailer) {
	t.Helper()
	select {
	case mail := <-m.sent:
		t.Fatalf("expected no mail, but got one to %s (%s)", mail.to, mail.subject)
	case <-time.After(100 * time.Millisecond):
	}
}

func makeNotifiableEnrollment(status model.EnrollmentStatus) *model.ClassEnrollment {
	userID := uuid.New()
	return &model.ClassEnrollment{
		EnrollmentID: uuid.New(),
		ClassID:      uuid.New(),
		MemberID:     uuid.New(),
		Status:       status,
		Member: &model.Member{
			MemberID: uuid.New(),
			UserID:   &userID,
			FullName: "テスト メンバー",
			Email:    "member@example.com",
		},
		Class: &model.DiscipleshipClass{
			ClassID: uuid.New(),
			Title:   "弟子訓練 基礎",
		},
	}
}

func TestMailNotifier_EnrollmentCreated(t *testing.T) {
	discardSlog()
	ctx := context.Background()

	t.Run("正常系: approved の作成イベントで歓迎メールが送られる", func(t *testing.T) {
		mailer := newStubMailer()
		notifier := NewMailNotifier(mailer)

		enrollment := makeNotifiableEnrollment(model.EnrollmentApproved)
		notifier.EnrollmentCreated(ctx, model.EnrollmentCreatedEvent{Enrollment: enrollment})

		mail := waitForMail(t, mailer)
		assert.Equal(t, "member@example.com", mail.to)
		assert.Contains(t, mail.subject, "弟子訓練 基礎")
		assert.Contains(t, mail.body, "テスト メンバー")

		// 送信コンテキストには上限が設定されている
		deadline, ok := mail.ctx.Deadline()
		require.True(t, ok, "send context should carry a deadline")
		assert.WithinDuration(t, time.Now().Add(mailSendTimeout), deadline, 2*time.Second)
	})

	t.Run("正常系: pending の作成イベントでは送らない", func(t *testing.T) {
		mailer := newStubMailer()
		notifier := NewMailNotifier(mailer)

		enrollment := makeNotifiableEnrollment(model.EnrollmentPending)
		notifier.EnrollmentCreated(ctx, model.EnrollmentCreatedEvent{Enrollment: enrollment})

		assertNoMail(t, mailer)
	})

	t.Run("正常系: 連絡先のないメンバーには送らない", func(t *testing.T) {
		mailer := newStubMailer()
		notifier := NewMailNotifier(mailer)

		enrollment := makeNotifiableEnrollment(model.EnrollmentApproved)
		enrollment.Member.UserID = nil
		enrollment.Member.Email = ""
		notifier.EnrollmentCreated(ctx, model.EnrollmentCreatedEvent{Enrollment: enrollment})

		assertNoMail(t, mailer)
	})
}

func TestMailNotifier_ClassCompleted(t *testing.T) {
	discardSlog()
	ctx := context.Background()

	t.Run("正常系: 修了イベントでお祝いメールが送られる", func(t *testing.T) {
		mailer := newStubMailer()
		notifier := NewMailNotifier(mailer)

		enrollment := makeNotifiableEnrollment(model.EnrollmentCompleted)
		notifier.ClassCompleted(ctx, model.ClassCompletedEvent{Enrollment: enrollment})

		mail := waitForMail(t, mailer)
		assert.Equal(t, "member@example.com", mail.to)
		assert.Contains(t, mail.subject, "修了")

		_, ok := mail.ctx.Deadline()
		require.True(t, ok, "send context should carry a deadline")
	})

	t.Run("正常系: ユーザー未連携のメンバーには送らない", func(t *testing.T) {
		mailer := newStubMailer()
		notifier := NewMailNotifier(mailer)

		enrollment := makeNotifiableEnrollment(model.EnrollmentCompleted)
		enrollment.Member.UserID = nil
		notifier.ClassCompleted(ctx, model.ClassCompletedEvent{Enrollment: enrollment})

		assertNoMail(t, mailer)
	})
}
