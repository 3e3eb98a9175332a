package orgusersstore

import (
	"errors"

	"gorm.io/gorm"

	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OrgUser) (id string, err error)
	GetByID(id string) (*dbmodels.OrgUser, error)
	FindByEmail(email string) (*dbmodels.OrgUser, error)
	ExistByEmail(email string) (bool, error)
	List(orgID string) ([]dbmodels.OrgUser, error)
	ListActiveEmployees(orgID string) ([]dbmodels.OrgUser, error)
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

func (i impl) Create(rec dbmodels.OrgUser) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OrgUser, error) {
	rec := dbmodels.OrgUser{}
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

func (i impl) FindByEmail(email string) (*dbmodels.OrgUser, error) {
	rec := dbmodels.OrgUser{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.OrgUser{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) List(orgID string) ([]dbmodels.OrgUser, error) {
	list := []dbmodels.OrgUser{}
	err := i.db.Model(dbmodels.OrgUser{}).
		Where("org_id = ?", orgID).
		Order("last_name, first_name").
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

// ListActiveEmployees активные сотрудники без административной роли,
// именно по ним идет авто-проставление ABSENT
func (i impl) ListActiveEmployees(orgID string) ([]dbmodels.OrgUser, error) {
	list := []dbmodels.OrgUser{}
	err := i.db.Model(dbmodels.OrgUser{}).
		Where("org_id = ? AND is_active = ? AND role <> ?", orgID, true, models.OrgAdminRole).
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
		Model(&dbmodels.OrgUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
