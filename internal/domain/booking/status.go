package booking

import "github.com/MikyMack/Blushley-full-sub000/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending          Status = "pending"
	StatusConfirmed        Status = "confirmed"
	StatusCompleted        Status = "completed"
	StatusCancelledByUser  Status = "cancelled_by_user"
	StatusCancelledBySalon Status = "cancelled_by_salon"
	StatusRejected         Status = "rejected"
)

// TerminatedStatuses no longer block the slot but remain queryable.
func TerminatedStatuses() []string {
	return []string{
		string(StatusCancelledByUser),
		string(StatusCancelledBySalon),
		string(StatusRejected),
	}
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByUser, StatusCancelledBySalon, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("not_cancellable")
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReject(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
