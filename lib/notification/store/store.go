package notificationstore

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hr-attendance-backend/models"
	notificationapimodels "hr-attendance-backend/models/api/notification"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	// ListPending только PENDING записи, отправленные и сбойные не выбираются повторно
	ListPending(limit int) ([]dbmodels.Notification, error)
	MarkSent(id string, sentAt time.Time) error
	MarkFailed(id string, errorMessage string) error
	List(orgID string, filter notificationapimodels.NotificationListFilter) ([]dbmodels.Notification, int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListPending(limit int) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	err := i.db.Model(dbmodels.Notification{}).
		Where("status = ?", models.NotificationStatusPending).
		Order("created_at").
		Limit(limit).
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

// MarkSent переход PENDING -> SENT, терминальный
func (i impl) MarkSent(id string, sentAt time.Time) error {
	updMap := map[string]interface{}{
		"status":  models.NotificationStatusSent,
		"sent_at": sentAt,
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ? AND status = ?", id, models.NotificationStatusPending).
		Updates(updMap).
		Error
}

// MarkFailed переход PENDING -> FAILED, терминальный, без повторных попыток
func (i impl) MarkFailed(id string, errorMessage string) error {
	updMap := map[string]interface{}{
		"status":        models.NotificationStatusFailed,
		"error_message": errorMessage,
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ? AND status = ?", id, models.NotificationStatusPending).
		Updates(updMap).
		Error
}

func (i impl) List(orgID string, filter notificationapimodels.NotificationListFilter) ([]dbmodels.Notification, int64, error) {
	tx := i.db.Model(dbmodels.Notification{}).
		Where("org_id = ?", orgID)
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
	if filter.Page > 0 {
		page = filter.Page
	}
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	list := []dbmodels.Notification{}
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
