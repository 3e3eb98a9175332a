package sweeprunstore

import (
	"gorm.io/gorm"

	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Exist(orgID, date string) (bool, error)
	Create(rec dbmodels.SweepRun) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Exist(orgID, date string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.SweepRun{}).
		Where("org_id = ? AND date = ?", orgID, date).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Create(rec dbmodels.SweepRun) error {
	return i.db.
		Create(&rec).
		Error
}
