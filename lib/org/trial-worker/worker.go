package trialworker

import (
	"context"
	"time"

	"hr-attendance-backend/db"
	notificationhandler "hr-attendance-backend/lib/notification"
	orgstore "hr-attendance-backend/lib/org/store"
	baseworker "hr-attendance-backend/lib/utils/base-worker"
	"hr-attendance-backend/lib/utils/helpers"
	"hr-attendance-backend/lib/utils/lock"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

const sweepName = "trial-expiry-sweep"

type impl struct {
	*baseworker.BaseImpl
	orgStore      orgstore.Provider
	notifications notificationhandler.Provider
	now           func() time.Time
}

func StartWorker(ctx context.Context) {
	worker := impl{
		BaseImpl:      baseworker.NewInstance("ПроверкаТриала", 1*time.Minute, 1*time.Hour),
		orgStore:      orgstore.NewInstance(db.DB),
		notifications: notificationhandler.Instance,
		now:           time.Now,
	}
	go worker.Run(ctx, worker.handle)
}

func (i impl) handle(ctx context.Context) {
	if !lock.Resource.Acquire(ctx, sweepName) {
		return
	}
	defer lock.Resource.Release(sweepName)

	list, err := i.orgStore.ListExpiredTrials(i.now())
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка получения списка организаций с истекшим триалом")
		return
	}
	for _, org := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		i.expireOrg(org)
	}
}

// expireOrg переводит организацию в EXPIRED и ставит письмо администратору,
// статус сохраняется первым, чтобы сбой уведомления не оставил доступ открытым
func (i impl) expireOrg(org dbmodels.Organization) {
	logger := i.GetLogger().WithField("org_id", org.ID)
	updMap := map[string]interface{}{
		"subscription_status": models.SubscriptionStatusExpired,
	}
	err := i.orgStore.Update(org.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса подписки")
		return
	}
	body, err := buildTrialExpiredMsg(models.TrialTemplateData{
		OrgName:      org.Name,
		TrialEndDate: org.TrialEndDate.Format(models.DateFormat),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка генерации письма о завершении триала")
		return
	}
	i.notifications.Enqueue(org.ID, org.AdminEmail, trialExpiredSubject, body, models.NotificationTrialExpired)
	logger.Info("пробный период завершен")
}
