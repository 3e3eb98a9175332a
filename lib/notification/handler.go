package notificationhandler

import (
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/db"
	notificationstore "hr-attendance-backend/lib/notification/store"
	"hr-attendance-backend/lib/utils/helpers"
	"hr-attendance-backend/models"
	notificationapimodels "hr-attendance-backend/models/api/notification"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	// Enqueue кладет письмо в очередь, ошибки не возвращает:
	// сбой очереди не должен прерывать операцию, породившую уведомление
	Enqueue(orgID, recipient, subject, htmlBody string, nType models.NotificationType)
	List(orgID string, filter notificationapimodels.NotificationListFilter) ([]notificationapimodels.NotificationView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) Enqueue(orgID, recipient, subject, htmlBody string, nType models.NotificationType) {
	logger := log.
		WithField("org_id", orgID).
		WithField("notification_type", string(nType))
	// дешевый фильтр адресата, без полной валидации почты
	if !helpers.IsValidEmail(recipient) {
		logger.Debug("уведомление пропущено, некорректный адресат")
		return
	}
	rec := dbmodels.Notification{
		OrgID:          orgID,
		RecipientEmail: recipient,
		Subject:        subject,
		HtmlContent:    htmlBody,
		Type:           nType,
		Status:         models.NotificationStatusPending,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления уведомления в очередь")
	}
}

func (i impl) List(orgID string, filter notificationapimodels.NotificationListFilter) ([]notificationapimodels.NotificationView, int64, error) {
	list, rowCount, err := i.store.List(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, rowCount, nil
}
