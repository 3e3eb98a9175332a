package trialworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	baseworker "hr-attendance-backend/lib/utils/base-worker"
	"hr-attendance-backend/models"
	notificationapimodels "hr-attendance-backend/models/api/notification"
	dbmodels "hr-attendance-backend/models/db"
)

type fakeOrgStore struct {
	expired   []dbmodels.Organization
	updates   map[string]map[string]interface{}
	updateErr error
}

func (f *fakeOrgStore) Create(rec dbmodels.Organization) (string, error) { return "", nil }
func (f *fakeOrgStore) GetByID(id string) (*dbmodels.Organization, error) {
	return nil, nil
}
func (f *fakeOrgStore) ListUsable() ([]dbmodels.Organization, error)   { return nil, nil }
func (f *fakeOrgStore) ListExpiredTrials(now time.Time) ([]dbmodels.Organization, error) {
	return f.expired, nil
}
func (f *fakeOrgStore) Update(id string, updMap map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updates == nil {
		f.updates = map[string]map[string]interface{}{}
	}
	f.updates[id] = updMap
	return nil
}

type enqueuedMail struct {
	recipient string
	nType     models.NotificationType
}

type fakeNotifications struct {
	enqueued []enqueuedMail
}

func (f *fakeNotifications) Enqueue(orgID, recipient, subject, htmlBody string, nType models.NotificationType) {
	f.enqueued = append(f.enqueued, enqueuedMail{recipient: recipient, nType: nType})
}

func (f *fakeNotifications) List(orgID string, filter notificationapimodels.NotificationListFilter) ([]notificationapimodels.NotificationView, int64, error) {
	return nil, 0, nil
}

func expiredOrg(id string) dbmodels.Organization {
	return dbmodels.Organization{
		BaseModel:          dbmodels.BaseModel{ID: id},
		Name:               "Ромашка",
		AdminEmail:         "admin@romashka.test",
		SubscriptionStatus: models.SubscriptionStatusTrial,
		TrialEndDate:       time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
}

func newTestWorker(store *fakeOrgStore, notifications *fakeNotifications) impl {
	return impl{
		BaseImpl:      baseworker.NewInstance("ПроверкаТриала", time.Second, time.Second),
		orgStore:      store,
		notifications: notifications,
		now: func() time.Time {
			return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestTrialSweep(t *testing.T) {
	t.Run(`истекший триал переводится в EXPIRED и администратору ставится письмо`, func(t *testing.T) {
		store := &fakeOrgStore{expired: []dbmodels.Organization{expiredOrg("org-1")}}
		notifications := &fakeNotifications{}
		worker := newTestWorker(store, notifications)
		worker.handle(context.Background())

		require.Equal(t, models.SubscriptionStatusExpired, store.updates["org-1"]["subscription_status"])
		require.Len(t, notifications.enqueued, 1)
		require.Equal(t, "admin@romashka.test", notifications.enqueued[0].recipient)
		require.Equal(t, models.NotificationTrialExpired, notifications.enqueued[0].nType)
	})

	t.Run(`сбой обновления статуса не порождает письмо`, func(t *testing.T) {
		store := &fakeOrgStore{
			expired:   []dbmodels.Organization{expiredOrg("org-1")},
			updateErr: errors.New("база недоступна"),
		}
		notifications := &fakeNotifications{}
		worker := newTestWorker(store, notifications)
		worker.handle(context.Background())

		require.Empty(t, notifications.enqueued)
	})

	t.Run(`без истекших триалов проход пустой`, func(t *testing.T) {
		store := &fakeOrgStore{}
		notifications := &fakeNotifications{}
		worker := newTestWorker(store, notifications)
		worker.handle(context.Background())

		require.Empty(t, store.updates)
		require.Empty(t, notifications.enqueued)
	})
}
