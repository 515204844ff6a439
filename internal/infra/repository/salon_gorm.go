package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *SalonGormRepository) GetSalonByID(
	ctx context.Context,
	id string,
) (*models.Salon, error) {
	return r.firstSalon(ctx, "id = ?", id)
}

func (r *SalonGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {
	return r.firstSalon(ctx, "slug = ?", strings.ToLower(slug))
}

func (r *SalonGormRepository) firstSalon(ctx context.Context, where string, arg any) (*models.Salon, error) {
	var s models.Salon
	if err := conn(ctx, r.db).Where(where, arg).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) UpdateSalon(
	ctx context.Context,
	s *models.Salon,
) error {
	return conn(ctx, r.db).Save(s).Error
}

func (r *SalonGormRepository) CreateSalonWithOwner(
	ctx context.Context,
	s *models.Salon,
	owner *models.User,
) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Salon{}).Where("slug = ?", s.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlugTaken)
		}
		if err := assertEmailFree(tx, owner.Email); err != nil {
			return err
		}

		if err := tx.Create(s).Error; err != nil {
			return err
		}
		owner.SalonID = &s.ID
		return tx.Create(owner).Error
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SalonGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	db := conn(ctx, r.db)
	if err := assertEmailFree(db, u.Email); err != nil {
		return err
	}
	return db.Create(u).Error
}

func (r *SalonGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.firstUser(ctx, "id = ?", id)
}

func (r *SalonGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.firstUser(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *SalonGormRepository) firstUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	if err := conn(ctx, r.db).Where(where, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *SalonGormRepository) GetBarber(
	ctx context.Context,
	salonID string,
	barberID string,
) (*models.User, error) {

	var u models.User
	if err := conn(ctx, r.db).
		Where("id = ? AND salon_id = ? AND role = ? AND active = ?",
			barberID, salonID, models.RoleBarber, true).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *SalonGormRepository) ListBarbers(
	ctx context.Context,
	salonID string,
	query string,
) ([]models.User, error) {

	q := conn(ctx, r.db).
		Where("salon_id = ? AND role = ?", salonID, models.RoleBarber)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var out []models.User
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func assertEmailFree(db *gorm.DB, email string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
