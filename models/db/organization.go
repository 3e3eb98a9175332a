package dbmodels

import (
	"encoding/json"
	"time"

	"hr-attendance-backend/models"
	orgapimodels "hr-attendance-backend/models/api/org"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Organization struct {
	BaseModel
	Name               string                    `gorm:"type:varchar(255)"`
	Country            string                    `gorm:"type:varchar(2)"` // ISO alpha-2
	Currency           string                    `gorm:"type:varchar(3)"`
	AdminEmail         string                    `gorm:"type:varchar(255)"`
	SubscriptionStatus models.SubscriptionStatus `gorm:"type:varchar(20);index"`
	TrialEndDate       time.Time
	WorkingDays        pq.StringArray `gorm:"type:text[]"` // названия дней недели, Monday..Sunday
	AppConfig          datatypes.JSON `gorm:"type:jsonb"`  // models.AppConfig
}

func (r Organization) GetAppConfig() (models.AppConfig, error) {
	cfg := models.AppConfig{}
	if len(r.AppConfig) == 0 {
		return cfg, nil
	}
	err := json.Unmarshal(r.AppConfig, &cfg)
	return cfg, err
}

func (r Organization) IsWorkingDay(weekday string) bool {
	for _, day := range r.WorkingDays {
		if day == weekday {
			return true
		}
	}
	return false
}

func (r Organization) ToModelView() orgapimodels.OrganizationView {
	return orgapimodels.OrganizationView{
		ID:                 r.ID,
		Name:               r.Name,
		Country:            r.Country,
		Currency:           r.Currency,
		AdminEmail:         r.AdminEmail,
		SubscriptionStatus: string(r.SubscriptionStatus),
		TrialEndDate:       r.TrialEndDate,
		WorkingDays:        r.WorkingDays,
	}
}
