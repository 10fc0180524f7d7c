// internal/model/enrollment_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from EnrollmentStatus
		to   EnrollmentStatus
		want bool
	}{
		{"正常系: pending -> approved", EnrollmentPending, EnrollmentApproved, true},
		{"正常系: pending -> rejected", EnrollmentPending, EnrollmentRejected, true},
		{"正常系: pending -> cancelled", EnrollmentPending, EnrollmentCancelled, true},
		{"正常系: approved -> completed", EnrollmentApproved, EnrollmentCompleted, true},
		{"正常系: approved -> cancelled", EnrollmentApproved, EnrollmentCancelled, true},
		{"異常系: pending -> completed は不可", EnrollmentPending, EnrollmentCompleted, false},
		{"異常系: approved -> rejected は不可", EnrollmentApproved, EnrollmentRejected, false},
		{"異常系: completed からは遷移不可", EnrollmentCompleted, EnrollmentCancelled, false},
		{"異常系: cancelled からは遷移不可", EnrollmentCancelled, EnrollmentApproved, false},
		{"異常系: rejected からは遷移不可", EnrollmentRejected, EnrollmentApproved, false},
		{"異常系: 同一状態への遷移は不可", EnrollmentApproved, EnrollmentApproved, false},
		{"異常系: 未知の状態からは遷移不可", EnrollmentStatus("unknown"), EnrollmentApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEnrollmentStatus_IsActive(t *testing.T) {
	assert.True(t, EnrollmentPending.IsActive())
	assert.True(t, EnrollmentApproved.IsActive())
	assert.False(t, EnrollmentRejected.IsActive())
	assert.False(t, EnrollmentCompleted.IsActive())
	assert.False(t, EnrollmentCancelled.IsActive())
}

func TestEnrollmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, EnrollmentPending.IsTerminal())
	assert.False(t, EnrollmentApproved.IsTerminal())
	assert.True(t, EnrollmentRejected.IsTerminal())
	assert.True(t, EnrollmentCompleted.IsTerminal())
	assert.True(t, EnrollmentCancelled.IsTerminal())
}

func TestAttendanceStatus_Valid(t *testing.T) {
	assert.True(t, AttendancePresent.Valid())
	assert.True(t, AttendanceAbsent.Valid())
	assert.True(t, AttendanceExcused.Valid())
	assert.False(t, AttendanceStatus("late").Valid())
	assert.False(t, AttendanceStatus("").Valid())
}
