package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type LeaveGormRepository struct {
	db *gorm.DB
}

func NewLeaveGormRepository(db *gorm.DB) *LeaveGormRepository {
	return &LeaveGormRepository{db: db}
}

func (r *LeaveGormRepository) Create(
	ctx context.Context,
	l *models.Leave,
) error {
	return conn(ctx, r.db).Create(l).Error
}

func (r *LeaveGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Leave, error) {

	var l models.Leave
	if err := conn(ctx, r.db).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeLeaveNotFound)
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeaveGormRepository) Update(
	ctx context.Context,
	l *models.Leave,
) error {
	return conn(ctx, r.db).Save(l).Error
}

func (r *LeaveGormRepository) ListForBarberOnDate(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]models.Leave, error) {

	var out []models.Leave
	if err := conn(ctx, r.db).
		Where("barber_id = ? AND date = ?", barberID, timezone.DateOnly(date)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LeaveGormRepository) ListBySalon(
	ctx context.Context,
	salonID string,
	status *domain.Status,
) ([]models.Leave, error) {

	q := conn(ctx, r.db).Where("salon_id = ?", salonID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var out []models.Leave
	if err := q.Order("date DESC").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LeaveGormRepository) ListByBarber(
	ctx context.Context,
	barberID string,
) ([]models.Leave, error) {

	var out []models.Leave
	if err := conn(ctx, r.db).
		Where("barber_id = ?", barberID).
		Order("date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*LeaveGormRepository)(nil)
