package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaveStatusTransitions(t *testing.T) {
	t.Run(`руководитель может эскалировать или решить сразу`, func(t *testing.T) {
		require.True(t, LeaveStatusPending.CanTransitTo(LeaveStatusPendingHR))
		require.True(t, LeaveStatusPending.CanTransitTo(LeaveStatusApproved))
		require.True(t, LeaveStatusPending.CanTransitTo(LeaveStatusRejected))
	})

	t.Run(`после эскалации остается только решение`, func(t *testing.T) {
		require.True(t, LeaveStatusPendingHR.CanTransitTo(LeaveStatusApproved))
		require.True(t, LeaveStatusPendingHR.CanTransitTo(LeaveStatusRejected))
		require.False(t, LeaveStatusPendingHR.CanTransitTo(LeaveStatusPending))
	})

	t.Run(`из финальных статусов выхода нет`, func(t *testing.T) {
		all := []LeaveStatus{LeaveStatusPending, LeaveStatusPendingHR, LeaveStatusApproved, LeaveStatusRejected}
		for _, final := range []LeaveStatus{LeaveStatusApproved, LeaveStatusRejected} {
			require.True(t, final.IsFinal())
			for _, next := range all {
				require.False(t, final.CanTransitTo(next), "%v -> %v", final, next)
			}
		}
	})

	t.Run(`переход в тот же статус запрещен`, func(t *testing.T) {
		require.False(t, LeaveStatusPending.CanTransitTo(LeaveStatusPending))
		require.False(t, LeaveStatusPendingHR.CanTransitTo(LeaveStatusPendingHR))
	})

	t.Run(`нефинальные статусы не финальны`, func(t *testing.T) {
		require.False(t, LeaveStatusPending.IsFinal())
		require.False(t, LeaveStatusPendingHR.IsFinal())
	})
}

func TestLeaveTypeIsValid(t *testing.T) {
	require.True(t, LeaveTypeSick.IsValid())
	require.True(t, LeaveTypeMaternal.IsValid())
	require.False(t, LeaveType("SABBATICAL").IsValid())
	require.False(t, LeaveType("").IsValid())
}
