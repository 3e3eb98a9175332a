package dbmodels

import (
	orgapimodels "hr-attendance-backend/models/api/org"
)

type Holiday struct {
	BaseModel
	OrgID string `gorm:"type:varchar(36);index:idx_org_holiday_date"`
	Date  string `gorm:"type:varchar(10);index:idx_org_holiday_date"` // YYYY-MM-DD
	Name  string `gorm:"type:varchar(255)"`
}

func (r Holiday) ToModelView() orgapimodels.HolidayView {
	return orgapimodels.HolidayView{
		ID:   r.ID,
		Date: r.Date,
		Name: r.Name,
	}
}
