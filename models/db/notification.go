package dbmodels

import (
	"time"

	"hr-attendance-backend/models"
	notificationapimodels "hr-attendance-backend/models/api/notification"
)

type Notification struct {
	BaseModel
	OrgID          string                    `gorm:"type:varchar(36);index"`
	RecipientEmail string                    `gorm:"type:varchar(255)"`
	Subject        string                    `gorm:"type:varchar(500)"`
	HtmlContent    string                    `gorm:"type:text"`
	Type           models.NotificationType   `gorm:"type:varchar(50)"`
	Status         models.NotificationStatus `gorm:"type:varchar(20);index"`
	SentAt         *time.Time
	ErrorMessage   string `gorm:"type:text"`
}

func (r Notification) ToModelView() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:             r.ID,
		RecipientEmail: r.RecipientEmail,
		Subject:        r.Subject,
		Type:           string(r.Type),
		Status:         string(r.Status),
		SentAt:         r.SentAt,
		ErrorMessage:   r.ErrorMessage,
		CreatedAt:      r.CreatedAt,
	}
}
