package notificationapimodels

import "time"

type NotificationView struct {
	ID             string     `json:"id"`
	RecipientEmail string     `json:"recipient_email"`
	Subject        string     `json:"subject"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type NotificationListFilter struct {
	Status string `json:"status"` // PENDING/SENT/FAILED, пусто — все
	Limit  int    `json:"limit"`
	Page   int    `json:"page"`
}
