package dbmodels

import "hr-attendance-backend/models"

// PushData отложенные пуши для сотрудников без активного ws-соединения
type PushData struct {
	BaseModel
	UserID string                  `gorm:"type:varchar(36);index:idx_push_user"`
	Code   models.NotificationType `gorm:"type:varchar(255)"`
	Msg    string
}
