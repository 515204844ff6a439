package slot

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListSlotsInput struct {
	SalonID  string
	BarberID string
	General  bool
	Date     string
	Status   string

	// BookableOnly drops slots that are not available or already over.
	BookableOnly bool
}

type ListSlots struct {
	slots  domain.Repository
	salons SalonDirectory
	clock  TimeProvider
}

func NewListSlots(
	slots domain.Repository,
	salons SalonDirectory,
) *ListSlots {
	return &ListSlots{
		slots:  slots,
		salons: salons,
		clock:  RealTimeProvider{},
	}
}

// Execute returns the matching slots ordered by date and start time.
// Display status is computed against the salon clock and never stored.
func (uc *ListSlots) Execute(
	ctx context.Context,
	in ListSlotsInput,
) ([]dto.SlotDTO, error) {

	f := domain.Filter{
		SalonID: in.SalonID,
		General: in.General,
	}

	if in.BarberID != "" && !in.General {
		id := in.BarberID
		f.BarberID = &id
	}

	if in.Date != "" {
		d, err := timezone.ParseDate(in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
		}
		f.Date = &d
	}

	if in.BookableOnly {
		in.Status = string(domain.StatusAvailable)
	}
	if in.Status != "" {
		st := domain.Status(in.Status)
		if !st.Valid() {
			return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "unknown status")
		}
		f.Status = &st
	}

	salon, err := uc.salons.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)
	now := uc.clock.Now()

	slots, err := uc.slots.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SlotDTO, 0, len(slots))
	for i := range slots {
		s := &slots[i]
		display := domain.DisplayStatus(now, s, loc)
		if in.BookableOnly && display == domain.DisplayCompleted {
			continue
		}
		out = append(out, dto.NewSlotDTO(s, display))
	}
	return out, nil
}
