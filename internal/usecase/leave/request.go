package leave

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RequestLeaveInput struct {
	SalonID  string
	BarberID string
	ActorID  string

	Type     string
	Date     string
	FromTime string
	ToTime   string
	Reason   string
}

// ======================================================
// USE CASE
// ======================================================

type RequestLeave struct {
	leaves    domain.Repository
	barbers   BarberDirectory
	audit     Auditor
	publisher Publisher
	log       Logger
}

func NewRequestLeave(
	leaves domain.Repository,
	barbers BarberDirectory,
	audit Auditor,
	publisher Publisher,
	log Logger,
) *RequestLeave {
	return &RequestLeave{
		leaves:    leaves,
		barbers:   barbers,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

func (uc *RequestLeave) Execute(
	ctx context.Context,
	in RequestLeaveInput,
) (*models.Leave, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------

	typ := domain.Type(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "type must be Leave or Permission")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "reason is required")
	}

	l := &models.Leave{
		BarberID: in.BarberID,
		SalonID:  in.SalonID,
		Type:     string(typ),
		Date:     date,
		Reason:   reason,
		Status:   string(domain.StatusWaiting),
	}

	// a Leave always covers the whole day
	if typ == domain.TypePermission && (in.FromTime != "" || in.ToTime != "") {
		w, err := slot.ParseWindow(in.FromTime, in.ToTime)
		if err != nil {
			return nil, err
		}
		l.FromMinute = &w.From
		l.ToMinute = &w.To
	}

	if _, err := uc.barbers.GetBarber(ctx, in.SalonID, in.BarberID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------

	if err := uc.leaves.Create(ctx, l); err != nil {
		uc.log.Error("RequestLeave: barber=%s date=%s: %v", in.BarberID, in.Date, err)
		return nil, fmt.Errorf("create leave: %w", err)
	}

	uc.log.Info("RequestLeave: %s %s for barber=%s on %s", l.ID, l.Type, l.BarberID, in.Date)

	actor := in.ActorID
	uc.audit.Dispatch(audit.Event{
		SalonID:  l.SalonID,
		UserID:   &actor,
		Action:   "leave_requested",
		Entity:   "leave",
		EntityID: &l.ID,
		Metadata: map[string]string{"type": l.Type, "date": in.Date},
	})

	publish(ctx, uc.publisher, uc.log, "requested", l)

	return l, nil
}

func publish(ctx context.Context, p Publisher, log Logger, action string, l *models.Leave) {
	err := p.Publish(ctx, realtime.Event{
		Kind:    realtime.KindLeave,
		Action:  action,
		SalonID: l.SalonID,
		ID:      l.ID,
		Payload: l,
	})
	if err != nil {
		log.Warn("leave %s: publish %s: %v", l.ID, action, err)
	}
}
