package attendanceapimodels

import (
	"github.com/pkg/errors"
)

type CheckInRequest struct {
	Location string `json:"location"` // название геозоны, определяется на клиенте
}

type AttendanceView struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
	Location     string `json:"location,omitempty"`
}

type AttendanceListFilter struct {
	EmployeeID string `json:"employee_id"`
	DateFrom   string `json:"date_from"` // YYYY-MM-DD
	DateTo     string `json:"date_to"`   // YYYY-MM-DD
	Limit      int    `json:"limit"`
	Page       int    `json:"page"`
}

type ReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

func (r ReportRequest) Validate() error {
	if r.Year < 2000 || r.Year > 2100 {
		return errors.New("некорректный год")
	}
	if r.Month < 1 || r.Month > 12 {
		return errors.New("некорректный месяц")
	}
	return nil
}
