package notificationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hr-attendance-backend/models"
	notificationapimodels "hr-attendance-backend/models/api/notification"
	dbmodels "hr-attendance-backend/models/db"
)

type fakeStore struct {
	created []dbmodels.Notification
}

func (f *fakeStore) Create(rec dbmodels.Notification) (string, error) {
	f.created = append(f.created, rec)
	return "n-1", nil
}

func (f *fakeStore) ListPending(limit int) ([]dbmodels.Notification, error) { return nil, nil }
func (f *fakeStore) MarkSent(id string, sentAt time.Time) error             { return nil }
func (f *fakeStore) MarkFailed(id string, errorMessage string) error        { return nil }
func (f *fakeStore) List(orgID string, filter notificationapimodels.NotificationListFilter) ([]dbmodels.Notification, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func TestEnqueue(t *testing.T) {
	t.Run(`валидный адресат попадает в очередь со статусом PENDING`, func(t *testing.T) {
		store := &fakeStore{}
		handler := impl{store: store}
		handler.Enqueue("org-1", "ivan@corp.test", "Заявка на отпуск", "<html></html>", models.NotificationLeaveCreated)

		require.Len(t, store.created, 1)
		rec := store.created[0]
		require.Equal(t, "org-1", rec.OrgID)
		require.Equal(t, "ivan@corp.test", rec.RecipientEmail)
		require.Equal(t, models.NotificationStatusPending, rec.Status)
		require.Equal(t, models.NotificationLeaveCreated, rec.Type)
	})

	t.Run(`некорректный адресат пропускается без записи`, func(t *testing.T) {
		store := &fakeStore{}
		handler := impl{store: store}
		handler.Enqueue("org-1", "", "Заявка", "<html></html>", models.NotificationLeaveCreated)
		handler.Enqueue("org-1", "не почта", "Заявка", "<html></html>", models.NotificationLeaveCreated)

		require.Empty(t, store.created)
	})
}
