package leave

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
)

// BarberDirectory resolves barbers of a salon.
type BarberDirectory interface {
	GetBarber(ctx context.Context, salonID, barberID string) (*models.User, error)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Publisher interface {
	Publish(ctx context.Context, ev realtime.Event) error
}

type Metrics interface {
	LeaveDecided(status string)
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
