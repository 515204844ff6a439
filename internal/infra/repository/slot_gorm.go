package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

// LockSchedule takes a transaction-scoped advisory lock on the schedule
// key, serialising concurrent creators of the same (salon, barber, date).
func (r *SlotGormRepository) LockSchedule(
	ctx context.Context,
	key string,
) error {
	return conn(ctx, r.db).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).
		Error
}

func (r *SlotGormRepository) ListForSchedule(
	ctx context.Context,
	salonID string,
	barberID *string,
	date time.Time,
) ([]models.Slot, error) {

	q := conn(ctx, r.db).
		Where("salon_id = ? AND date = ?", salonID, timezone.DateOnly(date))

	if barberID == nil {
		q = q.Where("barber_id IS NULL")
	} else {
		q = q.Where("barber_id = ?", *barberID)
	}

	var slots []models.Slot
	if err := q.Order("from_minute ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotGormRepository) Create(
	ctx context.Context,
	s *models.Slot,
) error {
	return conn(ctx, r.db).Create(s).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *SlotGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Slot, error) {

	var s models.Slot
	if err := conn(ctx, r.db).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) GetForUpdate(
	ctx context.Context,
	id string,
) (*models.Slot, error) {

	var s models.Slot
	if err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Slot, error) {

	q := conn(ctx, r.db).Model(&models.Slot{})

	if f.SalonID != "" {
		q = q.Where("salon_id = ?", f.SalonID)
	}
	if f.General {
		q = q.Where("barber_id IS NULL")
	} else if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.Date != nil {
		q = q.Where("date = ?", timezone.DateOnly(*f.Date))
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var slots []models.Slot
	if err := q.
		Order("date ASC").
		Order("from_minute ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *SlotGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) error {
	res := conn(ctx, r.db).
		Model(&models.Slot{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	return nil
}

func (r *SlotGormRepository) MarkBooked(
	ctx context.Context,
	id string,
) (bool, error) {
	res := conn(ctx, r.db).
		Model(&models.Slot{}).
		Where("id = ? AND status = ?", id, string(domain.StatusAvailable)).
		Update("status", string(domain.StatusBooked))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *SlotGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.Slot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
