package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CheckAvailabilityInput struct {
	SalonID  string
	BarberID string
	Date     string
	FromTime string
	ToTime   string
}

// ======================================================
// USE CASE
// ======================================================

type CheckAvailability struct {
	leaves  domain.Repository
	barbers BarberDirectory
}

func NewCheckAvailability(
	leaves domain.Repository,
	barbers BarberDirectory,
) *CheckAvailability {
	return &CheckAvailability{
		leaves:  leaves,
		barbers: barbers,
	}
}

// Execute validates a request from the API and checks the barber.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (domain.Availability, error) {

	if in.BarberID == "" {
		return domain.Availability{}, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "barber_id is required")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return domain.Availability{}, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	var window *slot.Window
	if in.FromTime != "" || in.ToTime != "" {
		w, err := slot.ParseWindow(in.FromTime, in.ToTime)
		if err != nil {
			return domain.Availability{}, err
		}
		window = &w
	}

	if _, err := uc.barbers.GetBarber(ctx, in.SalonID, in.BarberID); err != nil {
		return domain.Availability{}, err
	}

	return uc.Check(ctx, in.BarberID, date, window)
}

// Check is read-only. The weekly off day is answered without a lookup.
func (uc *CheckAvailability) Check(
	ctx context.Context,
	barberID string,
	date time.Time,
	window *slot.Window,
) (domain.Availability, error) {

	if timezone.DateOnly(date).Weekday() == domain.WeeklyOffDay {
		return domain.Evaluate(date, window, nil), nil
	}

	requests, err := uc.leaves.ListForBarberOnDate(ctx, barberID, date)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("list leaves: %w", err)
	}

	return domain.Evaluate(date, window, requests), nil
}

// Blocked converts an unavailable result into the scheduling_blocked error.
func Blocked(a domain.Availability) error {
	if a.Available {
		return nil
	}
	return httperr.ErrBusinessMsg(httperr.CodeSchedulingBlocked, strings.TrimSpace(a.Reason))
}
