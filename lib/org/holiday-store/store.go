package holidaystore

import (
	"errors"

	"gorm.io/gorm"

	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Holiday) (id string, err error)
	List(orgID string) ([]dbmodels.Holiday, error)
	ExistOnDate(orgID, date string) (bool, error)
	Delete(orgID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Holiday) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(orgID string) ([]dbmodels.Holiday, error) {
	list := []dbmodels.Holiday{}
	err := i.db.Model(dbmodels.Holiday{}).
		Where("org_id = ?", orgID).
		Order("date").
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

func (i impl) ExistOnDate(orgID, date string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.Holiday{}).
		Where("org_id = ? AND date = ?", orgID, date).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Delete(orgID, id string) error {
	rec := dbmodels.Holiday{}
	return i.db.
		Where("org_id = ? AND id = ?", orgID, id).
		Delete(&rec).
		Error
}
