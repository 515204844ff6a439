package slot

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	leavedomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
)

// SalonDirectory resolves salons and their barbers.
type SalonDirectory interface {
	GetSalonByID(ctx context.Context, id string) (*models.Salon, error)
	GetBarber(ctx context.Context, salonID, barberID string) (*models.User, error)
}

type AvailabilityChecker interface {
	Check(ctx context.Context, barberID string, date time.Time, window *domain.Window) (leavedomain.Availability, error)
}

type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Publisher interface {
	Publish(ctx context.Context, ev realtime.Event) error
}

type Metrics interface {
	SlotCreated()
	SlotConflict()
	SchedulingBlocked()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider is swapped in tests.
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }
