package attendancehandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-attendance-backend/models"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
	dbmodels "hr-attendance-backend/models/db"
)

type fakeAttendanceStore struct {
	records []dbmodels.AttendanceRecord
	updates map[string]map[string]interface{}
}

func (f *fakeAttendanceStore) Create(rec dbmodels.AttendanceRecord) (string, error) {
	rec.ID = fmt.Sprintf("att-%d", len(f.records)+1)
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeAttendanceStore) GetByID(orgID, id string) (*dbmodels.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.OrgID == orgID && rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) GetByEmployeeAndDate(orgID, employeeID, date string) (*dbmodels.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.OrgID == orgID && rec.EmployeeID == employeeID && rec.Date == date {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) ExistOnDate(orgID, employeeID, date string) (bool, error) {
	rec, _ := f.GetByEmployeeAndDate(orgID, employeeID, date)
	return rec != nil, nil
}

func (f *fakeAttendanceStore) List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]dbmodels.AttendanceRecord, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceStore) ListByPeriod(orgID, dateFrom, dateTo string) ([]dbmodels.AttendanceRecord, error) {
	result := []dbmodels.AttendanceRecord{}
	for _, rec := range f.records {
		if rec.Date >= dateFrom && rec.Date <= dateTo {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeAttendanceStore) Update(orgID, id string, updMap map[string]interface{}) error {
	if f.updates == nil {
		f.updates = map[string]map[string]interface{}{}
	}
	f.updates[id] = updMap
	for n, rec := range f.records {
		if rec.ID == id {
			if checkOut, ok := updMap["check_out"].(string); ok {
				f.records[n].CheckOut = checkOut
			}
		}
	}
	return nil
}

type fakeUsersStore struct {
	users map[string]dbmodels.OrgUser
}

func (f *fakeUsersStore) Create(rec dbmodels.OrgUser) (string, error) { return "", nil }
func (f *fakeUsersStore) GetByID(id string) (*dbmodels.OrgUser, error) {
	if rec, ok := f.users[id]; ok {
		return &rec, nil
	}
	return nil, nil
}
func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.OrgUser, error) { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(email string) (bool, error)             { return false, nil }
func (f *fakeUsersStore) List(orgID string) ([]dbmodels.OrgUser, error)       { return nil, nil }
func (f *fakeUsersStore) ListActiveEmployees(orgID string) ([]dbmodels.OrgUser, error) {
	return nil, nil
}
func (f *fakeUsersStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeOrgStore struct {
	org *dbmodels.Organization
}

func (f *fakeOrgStore) Create(rec dbmodels.Organization) (string, error)  { return "", nil }
func (f *fakeOrgStore) GetByID(id string) (*dbmodels.Organization, error) { return f.org, nil }
func (f *fakeOrgStore) ListUsable() ([]dbmodels.Organization, error)      { return nil, nil }
func (f *fakeOrgStore) ListExpiredTrials(now time.Time) ([]dbmodels.Organization, error) {
	return nil, nil
}
func (f *fakeOrgStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeSettingsStore struct {
	workdayStart string
}

func (f *fakeSettingsStore) Create(rec dbmodels.OrgSetting) error             { return nil }
func (f *fakeSettingsStore) Update(orgID, code, value string) error           { return nil }
func (f *fakeSettingsStore) List(orgID string) ([]dbmodels.OrgSetting, error) { return nil, nil }
func (f *fakeSettingsStore) GetValueByCode(orgID string, code models.OrgSettingCode) (string, error) {
	if code == models.WorkdayStartSetting {
		return f.workdayStart, nil
	}
	return "", nil
}
func (f *fakeSettingsStore) Delete(orgID, code string) error { return nil }

type fakeFileStorage struct {
	uploaded  int
	files     map[string][]byte
	uploadErr error
}

func (f *fakeFileStorage) UploadSelfie(ctx context.Context, orgID string, selfie io.Reader, size int64) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded++
	key := fmt.Sprintf("selfie/key-%d", f.uploaded)
	content, err := io.ReadAll(selfie)
	if err != nil {
		return "", err
	}
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	f.files[key] = content
	return key, nil
}

func (f *fakeFileStorage) GetFile(ctx context.Context, orgID, key string) ([]byte, error) {
	content, ok := f.files[key]
	if !ok {
		return nil, errors.New("объект не найден")
	}
	return content, nil
}

func (f *fakeFileStorage) MakeOrgBucket(ctx context.Context, orgID string) error { return nil }

type fakeXlsExport struct {
	exported []dbmodels.AttendanceRecord
}

func (f *fakeXlsExport) ExportAttendanceReport(list []dbmodels.AttendanceRecord) (*bytes.Buffer, error) {
	f.exported = list
	return bytes.NewBufferString("xlsx"), nil
}

type testEnv struct {
	handler     impl
	store       *fakeAttendanceStore
	fileStorage *fakeFileStorage
	xlsExport   *fakeXlsExport
}

// newTestEnv организация в UTC, начало рабочего дня 09:00, сотрудник emp-1
func newTestEnv(t *testing.T, now time.Time) *testEnv {
	appCfg, err := json.Marshal(models.AppConfig{Timezone: "UTC"})
	require.NoError(t, err)
	env := &testEnv{
		store:       &fakeAttendanceStore{},
		fileStorage: &fakeFileStorage{},
		xlsExport:   &fakeXlsExport{},
	}
	env.handler = impl{
		store: env.store,
		usersStore: &fakeUsersStore{users: map[string]dbmodels.OrgUser{
			"emp-1": {
				BaseModel: dbmodels.BaseModel{ID: "emp-1"},
				OrgID:     "org-1",
				FirstName: "Иван",
				LastName:  "Петров",
			},
		}},
		orgStore: &fakeOrgStore{org: &dbmodels.Organization{
			BaseModel: dbmodels.BaseModel{ID: "org-1"},
			AppConfig: appCfg,
		}},
		orgSettingsStore: &fakeSettingsStore{workdayStart: "09:00"},
		fileStorage:      env.fileStorage,
		xlsExport:        env.xlsExport,
		now:              func() time.Time { return now },
	}
	return env
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn(t *testing.T) {
	t.Run(`приход до начала рабочего дня дает PRESENT`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		hMsg, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{Location: "Офис"}, nil, 0)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		require.Len(t, env.store.records, 1)
		rec := env.store.records[0]
		require.Equal(t, models.AttendanceStatusPresent, rec.Status)
		require.Equal(t, "08:45", rec.CheckIn)
		require.Equal(t, "2026-08-31", rec.Date)
		require.Equal(t, "Иван Петров", rec.EmployeeName)
		require.Equal(t, "Офис", rec.Location)
	})

	t.Run(`приход ровно в начало рабочего дня еще PRESENT`, func(t *testing.T) {
		env := newTestEnv(t, at(9, 0))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)
		require.Equal(t, models.AttendanceStatusPresent, env.store.records[0].Status)
	})

	t.Run(`приход после начала рабочего дня дает LATE`, func(t *testing.T) {
		env := newTestEnv(t, at(9, 1))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)
		require.Equal(t, models.AttendanceStatusLate, env.store.records[0].Status)
	})

	t.Run(`повторный приход за день отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)

		hMsg, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)
		require.Equal(t, "Отметка о приходе за сегодня уже есть", hMsg)
		require.Len(t, env.store.records, 1)
	})

	t.Run(`чужой сотрудник отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		hMsg, err := env.handler.CheckIn(context.Background(), "org-2", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Empty(t, env.store.records)
	})

	t.Run(`селфи сохраняется вместе с отметкой`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		selfie := bytes.NewBufferString("jpeg")
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, selfie, int64(selfie.Len()))
		require.NoError(t, err)
		require.Equal(t, "selfie/key-1", env.store.records[0].SelfieKey)
	})

	t.Run(`сбой загрузки селфи не теряет отметку`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		env.fileStorage.uploadErr = errors.New("хранилище недоступно")
		selfie := bytes.NewBufferString("jpeg")
		hMsg, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, selfie, int64(selfie.Len()))
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, env.store.records, 1)
		require.Empty(t, env.store.records[0].SelfieKey)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run(`уход после прихода сохраняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)

		env.handler.now = func() time.Time { return at(18, 10) }
		hMsg, err := env.handler.CheckOut("org-1", "emp-1")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "18:10", env.store.records[0].CheckOut)
	})

	t.Run(`уход без прихода отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(18, 10))
		hMsg, err := env.handler.CheckOut("org-1", "emp-1")
		require.NoError(t, err)
		require.Equal(t, "Отметка о приходе за сегодня не найдена", hMsg)
	})

	t.Run(`уход при автоматической отметке отсутствия отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(18, 10))
		env.store.records = append(env.store.records, dbmodels.AttendanceRecord{
			BaseModel:  dbmodels.BaseModel{ID: "att-1"},
			OrgID:      "org-1",
			EmployeeID: "emp-1",
			Date:       "2026-08-31",
			Status:     models.AttendanceStatusAbsent,
			CheckIn:    models.AbsentCheckInMark,
		})
		hMsg, err := env.handler.CheckOut("org-1", "emp-1")
		require.NoError(t, err)
		require.Equal(t, "Отметка о приходе за сегодня не найдена", hMsg)
	})

	t.Run(`повторный уход отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)

		env.handler.now = func() time.Time { return at(18, 10) }
		_, err = env.handler.CheckOut("org-1", "emp-1")
		require.NoError(t, err)

		hMsg, err := env.handler.CheckOut("org-1", "emp-1")
		require.NoError(t, err)
		require.Equal(t, "Отметка об уходе за сегодня уже есть", hMsg)
	})
}

func TestGetSelfie(t *testing.T) {
	t.Run(`селфи сохраненной отметки возвращается`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		selfie := bytes.NewBufferString("jpeg-bytes")
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, selfie, int64(selfie.Len()))
		require.NoError(t, err)

		file, hMsg, err := env.handler.GetSelfie(context.Background(), "org-1", env.store.records[0].ID)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, []byte("jpeg-bytes"), file)
	})

	t.Run(`отметка без селфи отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, nil, 0)
		require.NoError(t, err)

		_, hMsg, err := env.handler.GetSelfie(context.Background(), "org-1", env.store.records[0].ID)
		require.NoError(t, err)
		require.Equal(t, "У отметки нет селфи", hMsg)
	})

	t.Run(`неизвестная отметка отклоняется`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		_, hMsg, err := env.handler.GetSelfie(context.Background(), "org-1", "att-404")
		require.NoError(t, err)
		require.Equal(t, "Отметка не найдена", hMsg)
	})

	t.Run(`чужая организация не видит отметку`, func(t *testing.T) {
		env := newTestEnv(t, at(8, 45))
		selfie := bytes.NewBufferString("jpeg-bytes")
		_, err := env.handler.CheckIn(context.Background(), "org-1", "emp-1", attendanceapimodels.CheckInRequest{}, selfie, int64(selfie.Len()))
		require.NoError(t, err)

		_, hMsg, err := env.handler.GetSelfie(context.Background(), "org-2", env.store.records[0].ID)
		require.NoError(t, err)
		require.Equal(t, "Отметка не найдена", hMsg)
	})
}

func TestMonthlyReport(t *testing.T) {
	env := newTestEnv(t, at(8, 45))
	env.store.records = []dbmodels.AttendanceRecord{
		{OrgID: "org-1", EmployeeID: "emp-1", Date: "2026-08-03"},
		{OrgID: "org-1", EmployeeID: "emp-1", Date: "2026-08-31"},
		{OrgID: "org-1", EmployeeID: "emp-1", Date: "2026-09-01"},
	}
	buf, err := env.handler.MonthlyReport("org-1", attendanceapimodels.ReportRequest{Year: 2026, Month: 8})
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Len(t, env.xlsExport.exported, 2)
}
