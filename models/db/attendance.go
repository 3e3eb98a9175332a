package dbmodels

import (
	"hr-attendance-backend/models"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
)

type AttendanceRecord struct {
	BaseModel
	OrgID        string                  `gorm:"type:varchar(36);uniqueIndex:idx_attendance_employee_date"`
	EmployeeID   string                  `gorm:"type:varchar(36);uniqueIndex:idx_attendance_employee_date"`
	EmployeeName string                  `gorm:"type:varchar(255)"`
	Date         string                  `gorm:"type:varchar(10);uniqueIndex:idx_attendance_employee_date"` // YYYY-MM-DD
	Status       models.AttendanceStatus `gorm:"type:varchar(20);index"`
	CheckIn      string                  `gorm:"type:varchar(5)"` // HH:MM, "-" для авто-отметки ABSENT
	CheckOut     string                  `gorm:"type:varchar(5)"`
	Remarks      string                  `gorm:"type:text"`
	Location     string                  `gorm:"type:varchar(255)"` // название геозоны, где сделана отметка
	SelfieKey    string                  `gorm:"type:varchar(255)"` // ключ селфи в S3
}

func (r AttendanceRecord) ToModelView() attendanceapimodels.AttendanceView {
	return attendanceapimodels.AttendanceView{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		Status:       string(r.Status),
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Remarks:      r.Remarks,
		Location:     r.Location,
	}
}
