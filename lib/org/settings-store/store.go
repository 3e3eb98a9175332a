package orgsettingsstore

import (
	"errors"

	"gorm.io/gorm"

	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OrgSetting) error
	Update(orgID, code, value string) error
	List(orgID string) (settingsList []dbmodels.OrgSetting, err error)
	GetValueByCode(orgID string, code models.OrgSettingCode) (value string, err error)
	Delete(orgID, code string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrgSetting) error {
	return i.db.
		Save(&rec).
		Error
}

// GetValueByCode отсутствие настройки не ошибка, возвращается пустое значение
func (i impl) GetValueByCode(orgID string, code models.OrgSettingCode) (value string, err error) {
	err = i.db.Model(dbmodels.OrgSetting{}).
		Select("value").
		Where("org_id = ? AND code = ?", orgID, code).
		First(&value).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (i impl) List(orgID string) (settingsList []dbmodels.OrgSetting, err error) {
	tx := i.db.Model(dbmodels.OrgSetting{})
	err = tx.
		Where("org_id = ?", orgID).
		Find(&settingsList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return settingsList, nil
}

func (i impl) Update(orgID, code, value string) error {
	updMap := map[string]interface{}{
		"value": value,
	}
	return i.db.
		Model(&dbmodels.OrgSetting{}).
		Where("org_id = ? AND code = ?", orgID, code).
		Updates(updMap).
		Error
}

func (i impl) Delete(orgID, code string) error {
	rec := dbmodels.OrgSetting{}
	return i.db.
		Where("org_id = ? AND code = ?", orgID, code).
		Delete(&rec).
		Error
}
