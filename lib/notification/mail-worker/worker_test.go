package mailworker

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

type fakeNotificationStore struct {
	pending []dbmodels.Notification
	sent    []string
	failed  map[string]string
}

func newFakeNotificationStore(pending ...dbmodels.Notification) *fakeNotificationStore {
	return &fakeNotificationStore{
		pending: pending,
		failed:  map[string]string{},
	}
}

func (f *fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) {
	return "", nil
}

func (f *fakeNotificationStore) ListPending(limit int) ([]dbmodels.Notification, error) {
	return f.pending, nil
}

func (f *fakeNotificationStore) MarkSent(id string, sentAt time.Time) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeNotificationStore) MarkFailed(id string, errorMessage string) error {
	f.failed[id] = errorMessage
	return nil
}

func (f *fakeNotificationStore) List(orgID string, filter notificationapimodels.NotificationListFilter) ([]dbmodels.Notification, int64, error) {
	return nil, 0, nil
}

type fakeSettingsStore struct {
	values map[models.OrgSettingCode]string
}

func (f *fakeSettingsStore) Create(rec dbmodels.OrgSetting) error             { return nil }
func (f *fakeSettingsStore) Update(orgID, code, value string) error           { return nil }
func (f *fakeSettingsStore) List(orgID string) ([]dbmodels.OrgSetting, error) { return nil, nil }
func (f *fakeSettingsStore) GetValueByCode(orgID string, code models.OrgSettingCode) (string, error) {
	return f.values[code], nil
}
func (f *fakeSettingsStore) Delete(orgID, code string) error { return nil }

type sentMail struct {
	fromEmail string
	fromName  string
	to        string
	subject   string
}

type fakeSmtp struct {
	failFor map[string]error // recipient -> ошибка отправки
	mails   []sentMail
}

func (f *fakeSmtp) SendEMail(from, to, message, subject string) error { return nil }

func (f *fakeSmtp) SendHTMLEMail(fromEmail, fromName, to, subject, htmlBody string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.mails = append(f.mails, sentMail{fromEmail: fromEmail, fromName: fromName, to: to, subject: subject})
	return nil
}

func notification(id, recipient string) dbmodels.Notification {
	return dbmodels.Notification{
		BaseModel:      dbmodels.BaseModel{ID: id},
		OrgID:          "org-1",
		RecipientEmail: recipient,
		Subject:        "Заявка на отпуск",
		HtmlContent:    "<html></html>",
		Type:           models.NotificationLeaveCreated,
		Status:         models.NotificationStatusPending,
	}
}

func newTestWorker(store *fakeNotificationStore, smtpFake *fakeSmtp, settings map[models.OrgSettingCode]string) impl {
	if settings == nil {
		settings = map[models.OrgSettingCode]string{}
	}
	return impl{
		BaseImpl:         *baseworker.NewInstance("MailWorker", time.Second, time.Second),
		store:            store,
		orgSettingsStore: &fakeSettingsStore{values: settings},
		smtpProvider:     smtpFake,
		defaultSender:    "no-reply@corp.test",
		defaultName:      "HR",
	}
}

func TestDispatch(t *testing.T) {
	t.Run(`успешная отправка помечает запись SENT`, func(t *testing.T) {
		store := newFakeNotificationStore(notification("n-1", "ivan@corp.test"))
		smtpFake := &fakeSmtp{}
		worker := newTestWorker(store, smtpFake, nil)
		worker.handle(context.Background())

		require.Len(t, smtpFake.mails, 1)
		require.Equal(t, []string{"n-1"}, store.sent)
		require.Empty(t, store.failed)
	})

	t.Run(`сбой отправки помечает запись FAILED с текстом ошибки`, func(t *testing.T) {
		store := newFakeNotificationStore(
			notification("n-1", "bad@corp.test"),
			notification("n-2", "good@corp.test"),
		)
		smtpFake := &fakeSmtp{failFor: map[string]error{
			"bad@corp.test": errors.New("smtp timeout"),
		}}
		worker := newTestWorker(store, smtpFake, nil)
		worker.handle(context.Background())

		require.Equal(t, "smtp timeout", store.failed["n-1"])
		require.Equal(t, []string{"n-2"}, store.sent)
		require.Len(t, smtpFake.mails, 1)
	})

	t.Run(`отправитель берется из настроек организации`, func(t *testing.T) {
		store := newFakeNotificationStore(notification("n-1", "ivan@corp.test"))
		smtpFake := &fakeSmtp{}
		worker := newTestWorker(store, smtpFake, map[models.OrgSettingCode]string{
			models.SenderEmailSetting: "hr@romashka.test",
			models.SenderNameSetting:  "Ромашка HR",
		})
		worker.handle(context.Background())

		require.Len(t, smtpFake.mails, 1)
		require.Equal(t, "hr@romashka.test", smtpFake.mails[0].fromEmail)
		require.Equal(t, "Ромашка HR", smtpFake.mails[0].fromName)
	})

	t.Run(`без настроек используется отправитель по умолчанию`, func(t *testing.T) {
		store := newFakeNotificationStore(notification("n-1", "ivan@corp.test"))
		smtpFake := &fakeSmtp{}
		worker := newTestWorker(store, smtpFake, nil)
		worker.handle(context.Background())

		require.Equal(t, "no-reply@corp.test", smtpFake.mails[0].fromEmail)
		require.Equal(t, "HR", smtpFake.mails[0].fromName)
	})

	t.Run(`отмена контекста прерывает проход`, func(t *testing.T) {
		store := newFakeNotificationStore(
			notification("n-1", "a@corp.test"),
			notification("n-2", "b@corp.test"),
		)
		smtpFake := &fakeSmtp{}
		worker := newTestWorker(store, smtpFake, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		worker.handle(ctx)

		require.Empty(t, smtpFake.mails)
	})
}
