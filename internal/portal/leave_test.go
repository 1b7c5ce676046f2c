package portal

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedID = uuid.MustParse("3f2a9c1e-7b4d-4e2a-9c1e-7b4d4e2a9c1e")

func newTestDesk() *LeaveDesk {
	return NewLeaveDesk(
		WithIDSource(func() uuid.UUID { return fixedID }),
		WithClock(func() time.Time { return time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC) }),
	)
}

func TestSubmit_ClosesDialog(t *testing.T) {
	for _, tab := range Tabs() {
		desk := newTestDesk()
		s := State{Tab: tab, Dialog: DialogLeave}

		got, notice, err := desk.Submit(s, LeaveRequest{Reason: "flu", Date: "2025-04-01"})
		require.NoError(t, err)
		assert.Equal(t, DialogNone, got.Dialog)
		assert.Equal(t, tab, got.Tab)
		assert.Equal(t, NoticeSuccess, notice.Level)
		assert.Equal(t, "LR-3F2A9C1E", notice.Ref)
		assert.Contains(t, notice.Text, "2025-04-01")
	}
}

func TestSubmit_RecordsReceipt(t *testing.T) {
	desk := newTestDesk()
	_, ok := desk.LastReceipt()
	assert.False(t, ok)

	_, _, err := desk.Submit(State{Dialog: DialogLeave}, LeaveRequest{Reason: "  flu ", Date: "2025-04-01"})
	require.NoError(t, err)

	receipt, ok := desk.LastReceipt()
	require.True(t, ok)
	assert.Equal(t, fixedID, receipt.ID)
	assert.Equal(t, "flu", receipt.Reason)
	assert.Equal(t, "2025-04-01", receipt.Date)
	assert.Equal(t, 2025, receipt.SubmittedAt.Year())
}

func TestSubmit_MissingFieldsKeepDialogOpen(t *testing.T) {
	tests := []struct {
		name     string
		req      LeaveRequest
		wantErrs []error
		wantText string
	}{
		{
			name:     "missing reason",
			req:      LeaveRequest{Date: "2025-04-01"},
			wantErrs: []error{ErrReasonRequired},
			wantText: "Enter a reason for leave",
		},
		{
			name:     "missing date",
			req:      LeaveRequest{Reason: "flu"},
			wantErrs: []error{ErrDateRequired},
			wantText: "Enter the leave date",
		},
		{
			name:     "whitespace only",
			req:      LeaveRequest{Reason: "   ", Date: "\t"},
			wantErrs: []error{ErrReasonRequired, ErrDateRequired},
			wantText: "Enter a reason and a date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desk := newTestDesk()
			s := State{Tab: TabWellness, Dialog: DialogLeave}

			got, notice, err := desk.Submit(s, tt.req)
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
			assert.Equal(t, s, got)
			assert.Equal(t, NoticeError, notice.Level)
			assert.Equal(t, tt.wantText, notice.Text)

			_, ok := desk.LastReceipt()
			assert.False(t, ok)
		})
	}
}

func TestSubmit_RequiresLeaveDialog(t *testing.T) {
	desk := newTestDesk()
	for _, kind := range []DialogKind{DialogNone, DialogPayslip, DialogLearning} {
		s := State{Tab: TabCompensation, Dialog: kind}
		got, notice, err := desk.Submit(s, LeaveRequest{Reason: "flu", Date: "2025-04-01"})
		assert.ErrorIs(t, err, ErrLeaveDialogClosed)
		assert.Equal(t, s, got)
		assert.Equal(t, NoticeError, notice.Level)
	}
}

func TestLeaveRequestValidate(t *testing.T) {
	assert.NoError(t, LeaveRequest{Reason: "flu", Date: "tomorrow"}.Validate())
	assert.ErrorIs(t, LeaveRequest{}.Validate(), ErrReasonRequired)
	assert.ErrorIs(t, LeaveRequest{}.Validate(), ErrDateRequired)
}
