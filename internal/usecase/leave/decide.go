package leave

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DecideLeave approves or rejects requests of the caller's salon. A
// decision may be revised by a later one.
type DecideLeave struct {
	leaves    domain.Repository
	audit     Auditor
	publisher Publisher
	metrics   Metrics
	clock     TimeProvider
	log       Logger
}

func NewDecideLeave(
	leaves domain.Repository,
	audit Auditor,
	publisher Publisher,
	metrics Metrics,
	log Logger,
) *DecideLeave {
	return &DecideLeave{
		leaves:    leaves,
		audit:     audit,
		publisher: publisher,
		metrics:   metrics,
		clock:     RealTimeProvider{},
		log:       log,
	}
}

func (uc *DecideLeave) Approve(
	ctx context.Context,
	salonID string,
	actorID string,
	leaveID string,
) (*models.Leave, error) {

	l, err := uc.load(ctx, salonID, leaveID)
	if err != nil {
		return nil, err
	}

	domain.Approve(l, uc.clock.Now())

	if err := uc.save(ctx, actorID, "approved", l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *DecideLeave) Reject(
	ctx context.Context,
	salonID string,
	actorID string,
	leaveID string,
	reason string,
) (*models.Leave, error) {

	l, err := uc.load(ctx, salonID, leaveID)
	if err != nil {
		return nil, err
	}

	if err := domain.Reject(l, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.save(ctx, actorID, "rejected", l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *DecideLeave) load(ctx context.Context, salonID, leaveID string) (*models.Leave, error) {
	l, err := uc.leaves.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if l.SalonID != salonID {
		return nil, httperr.ErrBusiness(httperr.CodeLeaveNotFound)
	}
	return l, nil
}

func (uc *DecideLeave) save(ctx context.Context, actorID, action string, l *models.Leave) error {
	if err := uc.leaves.Update(ctx, l); err != nil {
		uc.log.Error("DecideLeave: %s %s: %v", action, l.ID, err)
		return fmt.Errorf("update leave: %w", err)
	}

	uc.log.Info("DecideLeave: %s %s", l.ID, l.Status)
	uc.metrics.LeaveDecided(l.Status)

	uc.audit.Dispatch(audit.Event{
		SalonID:  l.SalonID,
		UserID:   &actorID,
		Action:   "leave_" + action,
		Entity:   "leave",
		EntityID: &l.ID,
		Metadata: map[string]string{"reject_reason": l.RejectReason},
	})

	publish(ctx, uc.publisher, uc.log, action, l)
	return nil
}
