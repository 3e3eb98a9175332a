package dbmodels

import (
	"fmt"
	"time"

	"hr-attendance-backend/models"
	orgapimodels "hr-attendance-backend/models/api/org"
)

type OrgUser struct {
	BaseModel
	OrgID         string `gorm:"type:varchar(36);index"`
	Password      string `gorm:"type:varchar(128)"`
	FirstName     string `gorm:"type:varchar(150)"`
	LastName      string `gorm:"type:varchar(150)"`
	Email         string `gorm:"type:varchar(255);index"`
	PhoneNumber   string `gorm:"type:varchar(15)"`
	JobTitle      string `gorm:"type:varchar(255)"`
	IsActive      bool
	Role          models.UserRole `gorm:"type:varchar(50)"`
	LineManagerID string          `gorm:"type:varchar(36)"`
	LastLogin     time.Time
}

func (r OrgUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r OrgUser) ToModelView() orgapimodels.OrgUserView {
	return orgapimodels.OrgUserView{
		ID: r.ID,
		OrgUserCommonData: orgapimodels.OrgUserCommonData{
			Email:         r.Email,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			PhoneNumber:   r.PhoneNumber,
			JobTitle:      r.JobTitle,
			OrgID:         r.OrgID,
			Role:          string(r.Role),
			LineManagerID: r.LineManagerID,
			IsActive:      r.IsActive,
		},
	}
}
