package rsvp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("registration not found")
	ErrDuplicateEmail = errors.New("e-mail address is already registered")
)

func (s *Service) GetByCode(ctx context.Context, code string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).Where("rsvp_code = ?", code).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading registration %s: %w", code, err)
	}
	return &reg, nil
}

func (s *Service) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Registration{}).Where("rsvp_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Registration{}).Where("guest_email = ?", email).Count(&count).Error
	return count > 0, err
}

// List returns all registrations ordered by first name, then last name.
func (s *Service) List(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.WithContext(ctx).Order("guest_first_name, guest_last_name").Find(&regs).Error
	if err != nil {
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	return regs, nil
}

// History returns the snapshots of a registration, newest first.
func (s *Service) History(ctx context.Context, code string) ([]models.RegistrationHistory, error) {
	reg, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var history []models.RegistrationHistory
	err = s.db.WithContext(ctx).
		Where("registration_id = ?", reg.ID).
		Order("created_at desc, id desc").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("loading history of %s: %w", code, err)
	}
	return history, nil
}

// save writes reg and a history snapshot in one transaction.
func (s *Service) save(ctx context.Context, reg *models.Registration, create bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if create {
			err = tx.Create(reg).Error
		} else {
			err = tx.Save(reg).Error
		}
		if err != nil {
			return err
		}

		snapshot := models.SnapshotOf(reg)
		return tx.Create(&snapshot).Error
	})
}

// remove hard-deletes reg and its history.
func (s *Service) remove(ctx context.Context, reg *models.Registration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_id = ?", reg.ID).Delete(&models.RegistrationHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Registration{}, reg.ID).Error
	})
}
