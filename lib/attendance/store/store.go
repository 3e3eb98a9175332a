package attendancestore

import (
	"errors"

	"gorm.io/gorm"

	attendanceapimodels "hr-attendance-backend/models/api/attendance"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AttendanceRecord) (id string, err error)
	GetByID(orgID, id string) (*dbmodels.AttendanceRecord, error)
	GetByEmployeeAndDate(orgID, employeeID, date string) (*dbmodels.AttendanceRecord, error)
	ExistOnDate(orgID, employeeID, date string) (bool, error)
	List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]dbmodels.AttendanceRecord, int64, error)
	ListByPeriod(orgID, dateFrom, dateTo string) ([]dbmodels.AttendanceRecord, error)
	Update(orgID, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AttendanceRecord) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("org_id = ? AND id = ?", orgID, id).
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

func (i impl) GetByEmployeeAndDate(orgID, employeeID, date string) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, date).
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

// ExistOnDate существование записи за дату с любым статусом
func (i impl) ExistOnDate(orgID, employeeID, date string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.AttendanceRecord{}).
		Where("org_id = ? AND employee_id = ? AND date = ?", orgID, employeeID, date).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]dbmodels.AttendanceRecord, int64, error) {
	tx := i.db.Model(dbmodels.AttendanceRecord{}).
		Where("org_id = ?", orgID)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != "" {
		tx = tx.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		tx = tx.Where("date <= ?", filter.DateTo)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page := 1
	limit := 10
	if filter.Page > 0 {
		page = filter.Page
	}
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	list := []dbmodels.AttendanceRecord{}
	err = tx.
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rowCount, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByPeriod(orgID, dateFrom, dateTo string) ([]dbmodels.AttendanceRecord, error) {
	list := []dbmodels.AttendanceRecord{}
	err := i.db.Model(dbmodels.AttendanceRecord{}).
		Where("org_id = ? AND date >= ? AND date <= ?", orgID, dateFrom, dateTo).
		Order("date, employee_name").
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

func (i impl) Update(orgID, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.AttendanceRecord{}).
		Where("org_id = ? AND id = ?", orgID, id).
		Updates(updMap).
		Error
}
