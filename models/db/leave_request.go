package dbmodels

import (
	"time"

	"hr-attendance-backend/models"
	leaveapimodels "hr-attendance-backend/models/api/leave"
)

type LeaveRequest struct {
	BaseModel
	OrgID           string             `gorm:"type:varchar(36);index"`
	EmployeeID      string             `gorm:"type:varchar(36);index"`
	LineManagerID   string             `gorm:"type:varchar(36)"`
	Type            models.LeaveType   `gorm:"type:varchar(20)"`
	StartDate       string             `gorm:"type:varchar(10)"` // YYYY-MM-DD
	EndDate         string             `gorm:"type:varchar(10)"` // YYYY-MM-DD
	TotalDays       int
	Reason          string             `gorm:"type:text"`
	Status          models.LeaveStatus `gorm:"type:varchar(20);index"`
	ManagerRemarks  string             `gorm:"type:text"`
	ApproverRemarks string             `gorm:"type:text"`
	DecidedByID     string             `gorm:"type:varchar(36)"`
	DecidedAt       *time.Time
}

// CoversDate обе границы интервала включительно, сравнение строк YYYY-MM-DD
func (r LeaveRequest) CoversDate(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

// DecisionRemarks замечания для контрольной копии, берется непустое поле
func (r LeaveRequest) DecisionRemarks() string {
	if r.ApproverRemarks != "" {
		return r.ApproverRemarks
	}
	return r.ManagerRemarks
}

func (r LeaveRequest) ToModelView() leaveapimodels.LeaveRequestView {
	return leaveapimodels.LeaveRequestView{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		LineManagerID:   r.LineManagerID,
		Type:            string(r.Type),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalDays:       r.TotalDays,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ManagerRemarks:  r.ManagerRemarks,
		ApproverRemarks: r.ApproverRemarks,
		DecidedAt:       r.DecidedAt,
		CreatedAt:       r.CreatedAt,
	}
}
