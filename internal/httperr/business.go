package httperr

import "errors"

const (
	CodeInvalidInput      = "invalid_input"
	CodeInvalidDate       = "invalid_date"
	CodeInvalidTime       = "invalid_time"
	CodeInvalidTimeRange  = "invalid_time_range"
	CodeSchedulingBlocked = "scheduling_blocked"
	CodeSlotConflict      = "slot_conflict"
	CodeSlotNotAvailable  = "slot_not_available"
	CodeInvalidState      = "invalid_state"
	CodeForbidden         = "forbidden"

	CodeSalonNotFound   = "salon_not_found"
	CodeBarberNotFound  = "barber_not_found"
	CodeSlotNotFound    = "slot_not_found"
	CodeLeaveNotFound   = "leave_not_found"
	CodeUserNotFound    = "user_not_found"
	CodeBookingNotFound = "booking_not_found"

	CodeEmailTaken = "email_already_exists"
	CodeSlugTaken  = "slug_already_exists"
)

// BusinessError is an expected, user-facing failure. Message is optional
// display text (the blocking reason, the conflicting window).
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business error from err, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
