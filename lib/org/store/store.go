package orgstore

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Organization) (id string, err error)
	GetByID(id string) (*dbmodels.Organization, error)
	ListUsable() ([]dbmodels.Organization, error)
	ListExpiredTrials(now time.Time) ([]dbmodels.Organization, error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Organization) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Organization, error) {
	rec := dbmodels.Organization{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListUsable() ([]dbmodels.Organization, error) {
	list := []dbmodels.Organization{}
	err := i.db.Model(dbmodels.Organization{}).
		Where("subscription_status IN ?", []models.SubscriptionStatus{
			models.SubscriptionStatusTrial,
			models.SubscriptionStatusActive,
			models.SubscriptionStatusAdSupported,
		}).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListExpiredTrials(now time.Time) ([]dbmodels.Organization, error) {
	list := []dbmodels.Organization{}
	err := i.db.Model(dbmodels.Organization{}).
		Where("subscription_status = ? AND trial_end_date < ?", models.SubscriptionStatusTrial, now).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Organization{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
