package leaveapimodels

import (
	"time"

	"hr-attendance-backend/models"

	"github.com/pkg/errors"
)

type CreateLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	TotalDays int    `json:"total_days"` // 0 — посчитать по интервалу
	Reason    string `json:"reason"`
}

func (r CreateLeaveRequest) Validate() error {
	if !models.LeaveType(r.Type).IsValid() {
		return errors.Errorf("неизвестный тип отпуска: %v", r.Type)
	}
	start, err := time.Parse(models.DateFormat, r.StartDate)
	if err != nil {
		return errors.New("дата начала указывается в формате YYYY-MM-DD")
	}
	end, err := time.Parse(models.DateFormat, r.EndDate)
	if err != nil {
		return errors.New("дата окончания указывается в формате YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.New("дата окончания раньше даты начала")
	}
	if r.TotalDays < 0 {
		return errors.New("количество дней не может быть отрицательным")
	}
	return nil
}

type SetLeaveStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

func (r SetLeaveStatusRequest) Validate() error {
	switch models.LeaveStatus(r.Status) {
	case models.LeaveStatusPendingHR, models.LeaveStatusApproved, models.LeaveStatusRejected:
		return nil
	}
	return errors.Errorf("недопустимый целевой статус: %v", r.Status)
}

type LeaveRequestView struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	LineManagerID   string     `json:"line_manager_id,omitempty"`
	Type            string     `json:"type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ManagerRemarks  string     `json:"manager_remarks,omitempty"`
	ApproverRemarks string     `json:"approver_remarks,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LeaveListFilter struct {
	Pagination struct {
		Limit int `json:"limit"`
		Page  int `json:"page"`
	} `json:"pagination"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}
