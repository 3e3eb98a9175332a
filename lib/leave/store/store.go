package leavestore

import (
	"errors"

	"gorm.io/gorm"

	"hr-attendance-backend/models"
	leaveapimodels "hr-attendance-backend/models/api/leave"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (id string, err error)
	GetByID(orgID, id string) (*dbmodels.LeaveRequest, error)
	List(orgID string, filter leaveapimodels.LeaveListFilter) ([]dbmodels.LeaveRequest, int64, error)
	ExistApprovedOnDate(orgID, employeeID, date string) (bool, error)
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

func (i impl) Create(rec dbmodels.LeaveRequest) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
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

func (i impl) List(orgID string, filter leaveapimodels.LeaveListFilter) ([]dbmodels.LeaveRequest, int64, error) {
	tx := i.db.Model(dbmodels.LeaveRequest{}).
		Where("org_id = ?", orgID)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page := 1
	limit := 10
	if filter.Pagination.Page > 0 {
		page = filter.Pagination.Page
	}
	if filter.Pagination.Limit > 0 {
		limit = filter.Pagination.Limit
	}
	list := []dbmodels.LeaveRequest{}
	err = tx.
		Order("created_at DESC").
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

// ExistApprovedOnDate интервал заявки включает обе границы
func (i impl) ExistApprovedOnDate(orgID, employeeID, date string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.LeaveRequest{}).
		Where("org_id = ? AND employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			orgID, employeeID, models.LeaveStatusApproved, date, date).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(orgID, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.LeaveRequest{}).
		Where("org_id = ? AND id = ?", orgID, id).
		Updates(updMap).
		Error
}
