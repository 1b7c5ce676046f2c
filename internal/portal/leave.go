package portal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Leave request errors.
var (
	ErrReasonRequired    = errors.New("reason for leave is required")
	ErrDateRequired      = errors.New("leave date is required")
	ErrLeaveDialogClosed = errors.New("leave request dialog is not open")
)

// LeaveRequest holds the two free-text fields of the leave form.
type LeaveRequest struct {
	Reason string
	Date   string
}

// Validate checks that both fields are present. Content is not inspected.
func (r LeaveRequest) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Reason) == "" {
		errs = append(errs, ErrReasonRequired)
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, ErrDateRequired)
	}
	return errors.Join(errs...)
}

// NoticeLevel classifies a Notice for display.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a non-blocking status report for the view layer.
type Notice struct {
	Level NoticeLevel
	Text  string
	Ref   string // set for acknowledged leave requests
}

// Receipt describes an acknowledged leave request.
type Receipt struct {
	ID          uuid.UUID
	Reason      string
	Date        string
	SubmittedAt time.Time
}

// LeaveDesk acknowledges leave requests. Requests are not stored or sent
// anywhere: a successful submit only yields a reference and closes the form.
type LeaveDesk struct {
	newID func() uuid.UUID
	now   func() time.Time
	last  *Receipt
}

// LeaveDeskOption configures a LeaveDesk.
type LeaveDeskOption func(*LeaveDesk)

// WithIDSource overrides how reference ids are generated.
func WithIDSource(fn func() uuid.UUID) LeaveDeskOption {
	return func(d *LeaveDesk) { d.newID = fn }
}

// WithClock overrides the submission clock.
func WithClock(fn func() time.Time) LeaveDeskOption {
	return func(d *LeaveDesk) { d.now = fn }
}

// NewLeaveDesk creates a LeaveDesk using random uuids and the wall clock.
func NewLeaveDesk(opts ...LeaveDeskOption) *LeaveDesk {
	d := &LeaveDesk{newID: uuid.New, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit acknowledges req and closes the leave dialog.
//
// It is only defined while the leave dialog is open. A request missing a
// field is rejected with an error notice and the dialog stays open.
func (d *LeaveDesk) Submit(s State, req LeaveRequest) (State, Notice, error) {
	if s.Dialog != DialogLeave {
		return s, Notice{Level: NoticeError, Text: "Open the leave form first"}, ErrLeaveDialogClosed
	}
	if err := req.Validate(); err != nil {
		return s, Notice{Level: NoticeError, Text: validationText(err)}, err
	}

	receipt := Receipt{
		ID:          d.newID(),
		Reason:      strings.TrimSpace(req.Reason),
		Date:        strings.TrimSpace(req.Date),
		SubmittedAt: d.now(),
	}
	d.last = &receipt

	ref := ShortRef(receipt.ID)
	notice := Notice{
		Level: NoticeSuccess,
		Text:  fmt.Sprintf("Leave requested for %s (ref %s)", receipt.Date, ref),
		Ref:   ref,
	}
	return s.CloseDialog(), notice, nil
}

// LastReceipt returns the most recent acknowledged request, if any.
func (d *LeaveDesk) LastReceipt() (Receipt, bool) {
	if d.last == nil {
		return Receipt{}, false
	}
	return *d.last, true
}

// ShortRef formats the first block of a uuid as a human reference.
func ShortRef(id uuid.UUID) string {
	return "LR-" + strings.ToUpper(id.String()[:8])
}

func validationText(err error) string {
	switch {
	case errors.Is(err, ErrReasonRequired) && errors.Is(err, ErrDateRequired):
		return "Enter a reason and a date"
	case errors.Is(err, ErrReasonRequired):
		return "Enter a reason for leave"
	case errors.Is(err, ErrDateRequired):
		return "Enter the leave date"
	default:
		return err.Error()
	}
}
