package mailworker

import (
	"context"
	"time"

	"hr-attendance-backend/config"
	"hr-attendance-backend/db"
	notificationstore "hr-attendance-backend/lib/notification/store"
	orgsettingsstore "hr-attendance-backend/lib/org/settings-store"
	"hr-attendance-backend/lib/smtp"
	baseworker "hr-attendance-backend/lib/utils/base-worker"
	"hr-attendance-backend/lib/utils/helpers"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

// размер пачки за один проход, очередь дочитывается на следующем тике
const batchSize = 100

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:         *baseworker.NewInstance("MailWorker", 10*time.Second, 30*time.Second),
		store:            notificationstore.NewInstance(db.DB),
		orgSettingsStore: orgsettingsstore.NewInstance(db.DB),
		smtpProvider:     smtp.Instance,
		defaultSender:    config.Conf.Smtp.DefaultSender,
		defaultName:      config.Conf.Smtp.DefaultSenderName,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store            notificationstore.Provider
	orgSettingsStore orgsettingsstore.Provider
	smtpProvider     smtp.Provider
	defaultSender    string
	defaultName      string
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListPending(batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения очереди уведомлений")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		i.dispatch(rec)
	}
}

// dispatch ровно одна попытка отправки и ровно одно обновление статуса,
// FAILED запись остается FAILED навсегда
func (i impl) dispatch(rec dbmodels.Notification) {
	logger := i.GetLogger().
		WithField("notification_id", rec.ID).
		WithField("org_id", rec.OrgID)

	senderEmail, senderName := i.resolveSender(rec.OrgID)
	err := i.smtpProvider.SendHTMLEMail(senderEmail, senderName, rec.RecipientEmail, rec.Subject, rec.HtmlContent)
	if err != nil {
		markErr := i.store.MarkFailed(rec.ID, err.Error())
		if markErr != nil {
			logger.WithError(markErr).Error("ошибка записи статуса FAILED")
		}
		return
	}
	err = i.store.MarkSent(rec.ID, time.Now())
	if err != nil {
		logger.WithError(err).Error("ошибка записи статуса SENT")
	}
}

func (i impl) resolveSender(orgID string) (email, name string) {
	email = i.defaultSender
	name = i.defaultName
	value, err := i.orgSettingsStore.GetValueByCode(orgID, models.SenderEmailSetting)
	if err != nil {
		i.GetLogger().WithError(err).WithField("org_id", orgID).Error("ошибка чтения настройки отправителя")
		return email, name
	}
	if value != "" {
		email = value
	}
	value, err = i.orgSettingsStore.GetValueByCode(orgID, models.SenderNameSetting)
	if err == nil && value != "" {
		name = value
	}
	return email, name
}
