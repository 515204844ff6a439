package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return conn(ctx, r.db).Create(b).Error
}

func (r *BookingGormRepository) GetBySlot(
	ctx context.Context,
	slotID string,
) (*models.Booking, error) {

	var b models.Booking
	err := conn(ctx, r.db).Where("slot_id = ?", slotID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUser is the customer's history, most recent date first.
func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListBySalon(
	ctx context.Context,
	salonID string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := conn(ctx, r.db).
		Where("salon_id = ?", salonID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
