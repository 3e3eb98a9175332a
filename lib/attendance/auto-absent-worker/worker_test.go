package autoabsentworker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	baseworker "hr-attendance-backend/lib/utils/base-worker"
	"hr-attendance-backend/models"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
	leaveapimodels "hr-attendance-backend/models/api/leave"
	dbmodels "hr-attendance-backend/models/db"
)

const testOrgID = "org-1"

type fakeOrgStore struct {
	orgs []dbmodels.Organization
}

func (f *fakeOrgStore) Create(rec dbmodels.Organization) (string, error)  { return "", nil }
func (f *fakeOrgStore) GetByID(id string) (*dbmodels.Organization, error) { return nil, nil }
func (f *fakeOrgStore) ListUsable() ([]dbmodels.Organization, error)      { return f.orgs, nil }
func (f *fakeOrgStore) ListExpiredTrials(now time.Time) ([]dbmodels.Organization, error) {
	return nil, nil
}
func (f *fakeOrgStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeUsersStore struct {
	employees []dbmodels.OrgUser
}

func (f *fakeUsersStore) Create(rec dbmodels.OrgUser) (string, error)           { return "", nil }
func (f *fakeUsersStore) GetByID(id string) (*dbmodels.OrgUser, error)          { return nil, nil }
func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.OrgUser, error)   { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(email string) (bool, error)               { return false, nil }
func (f *fakeUsersStore) List(orgID string) ([]dbmodels.OrgUser, error)         { return nil, nil }
func (f *fakeUsersStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUsersStore) ListActiveEmployees(orgID string) ([]dbmodels.OrgUser, error) {
	return f.employees, nil
}

type fakeAttendanceStore struct {
	existing map[string]bool // employeeID -> отметка уже есть
	created  []dbmodels.AttendanceRecord
}

func (f *fakeAttendanceStore) Create(rec dbmodels.AttendanceRecord) (string, error) {
	f.created = append(f.created, rec)
	return "att-1", nil
}
func (f *fakeAttendanceStore) GetByID(orgID, id string) (*dbmodels.AttendanceRecord, error) {
	return nil, nil
}
func (f *fakeAttendanceStore) GetByEmployeeAndDate(orgID, employeeID, date string) (*dbmodels.AttendanceRecord, error) {
	return nil, nil
}
func (f *fakeAttendanceStore) ExistOnDate(orgID, employeeID, date string) (bool, error) {
	return f.existing[employeeID], nil
}
func (f *fakeAttendanceStore) List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]dbmodels.AttendanceRecord, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceStore) ListByPeriod(orgID, dateFrom, dateTo string) ([]dbmodels.AttendanceRecord, error) {
	return nil, nil
}
func (f *fakeAttendanceStore) Update(orgID, id string, updMap map[string]interface{}) error {
	return nil
}

type fakeLeaveStore struct {
	onLeave map[string]bool // employeeID -> одобренный отпуск на сегодня
}

func (f *fakeLeaveStore) Create(rec dbmodels.LeaveRequest) (string, error) { return "", nil }
func (f *fakeLeaveStore) GetByID(orgID, id string) (*dbmodels.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveStore) List(orgID string, filter leaveapimodels.LeaveListFilter) ([]dbmodels.LeaveRequest, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveStore) ExistApprovedOnDate(orgID, employeeID, date string) (bool, error) {
	return f.onLeave[employeeID], nil
}
func (f *fakeLeaveStore) Update(orgID, id string, updMap map[string]interface{}) error {
	return nil
}

type fakeHolidayStore struct {
	holidays map[string]bool // date -> праздник
}

func (f *fakeHolidayStore) Create(rec dbmodels.Holiday) (string, error)  { return "", nil }
func (f *fakeHolidayStore) List(orgID string) ([]dbmodels.Holiday, error) { return nil, nil }
func (f *fakeHolidayStore) ExistOnDate(orgID, date string) (bool, error) {
	return f.holidays[date], nil
}
func (f *fakeHolidayStore) Delete(orgID, id string) error { return nil }

type fakeSweepRunStore struct {
	runs map[string]dbmodels.SweepRun // date -> запись
}

func newFakeSweepRunStore() *fakeSweepRunStore {
	return &fakeSweepRunStore{runs: map[string]dbmodels.SweepRun{}}
}

func (f *fakeSweepRunStore) Exist(orgID, date string) (bool, error) {
	_, ok := f.runs[date]
	return ok, nil
}

func (f *fakeSweepRunStore) Create(rec dbmodels.SweepRun) error {
	f.runs[rec.Date] = rec
	return nil
}

func testOrg(t *testing.T, enabled bool, targetTime string) dbmodels.Organization {
	appCfg, err := json.Marshal(models.AppConfig{
		AutoAbsentEnabled: enabled,
		AutoAbsentTime:    targetTime,
		Timezone:          "UTC",
	})
	require.NoError(t, err)
	return dbmodels.Organization{
		BaseModel:          dbmodels.BaseModel{ID: testOrgID},
		Name:               "ООО Ромашка",
		SubscriptionStatus: models.SubscriptionStatusActive,
		WorkingDays:        []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		AppConfig:          appCfg,
	}
}

type testEnv struct {
	worker          impl
	attendanceStore *fakeAttendanceStore
	leaveStore      *fakeLeaveStore
	holidayStore    *fakeHolidayStore
	sweepRunStore   *fakeSweepRunStore
}

// 2026-08-31 понедельник
var mondayEvening = time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)

func newTestEnv(org dbmodels.Organization, now time.Time) *testEnv {
	env := &testEnv{
		attendanceStore: &fakeAttendanceStore{existing: map[string]bool{}},
		leaveStore:      &fakeLeaveStore{onLeave: map[string]bool{}},
		holidayStore:    &fakeHolidayStore{holidays: map[string]bool{}},
		sweepRunStore:   newFakeSweepRunStore(),
	}
	env.worker = impl{
		BaseImpl: baseworker.NewInstance("АвтоОтметкаОтсутствия", time.Second, time.Second),
		orgStore: &fakeOrgStore{orgs: []dbmodels.Organization{org}},
		usersStore: &fakeUsersStore{employees: []dbmodels.OrgUser{
			{BaseModel: dbmodels.BaseModel{ID: "emp-1"}, OrgID: testOrgID, FirstName: "Иван", LastName: "Петров"},
			{BaseModel: dbmodels.BaseModel{ID: "emp-2"}, OrgID: testOrgID, FirstName: "Мария", LastName: "Сидорова"},
			{BaseModel: dbmodels.BaseModel{ID: "emp-3"}, OrgID: testOrgID, FirstName: "Олег", LastName: "Кузнецов"},
		}},
		attendanceStore: env.attendanceStore,
		leaveStore:      env.leaveStore,
		holidayStore:    env.holidayStore,
		sweepRunStore:   env.sweepRunStore,
		now:             func() time.Time { return now },
	}
	return env
}

func TestSweep(t *testing.T) {
	t.Run(`без отметки и отпуска ставится ABSENT с прочерком`, func(t *testing.T) {
		env := newTestEnv(testOrg(t, true, "18:00"), mondayEvening)
		env.worker.handle(context.Background())

		require.Len(t, env.attendanceStore.created, 3)
		for _, rec := range env.attendanceStore.created {
			require.Equal(t, models.AttendanceStatusAbsent, rec.Status)
			require.Equal(t, models.AbsentCheckInMark, rec.CheckIn)
			require.Equal(t, "2026-08-31", rec.Date)
		}
		run := env.sweepRunStore.runs["2026-08-31"]
		require.Equal(t, 3, run.Marked)
		require.Equal(t, 0, run.Skipped)
	})

	t.Run(`отметившиеся и отпускники пропускаются`, func(t *testing.T) {
		env := newTestEnv(testOrg(t, true, "18:00"), mondayEvening)
		env.attendanceStore.existing["emp-1"] = true
		env.leaveStore.onLeave["emp-2"] = true
		env.worker.handle(context.Background())

		require.Len(t, env.attendanceStore.created, 1)
		require.Equal(t, "emp-3", env.attendanceStore.created[0].EmployeeID)
		run := env.sweepRunStore.runs["2026-08-31"]
		require.Equal(t, 1, run.Marked)
		require.Equal(t, 2, run.Skipped)
	})

	t.Run(`повторный запуск в тот же день ничего не делает`, func(t *testing.T) {
		env := newTestEnv(testOrg(t, true, "18:00"), mondayEvening)
		env.worker.handle(context.Background())
		require.Len(t, env.attendanceStore.created, 3)

		env.worker.handle(context.Background())
		require.Len(t, env.attendanceStore.created, 3)
	})

	t.Run(`до целевого времени проход не выполняется`, func(t *testing.T) {
		morning := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		env := newTestEnv(testOrg(t, true, "18:00"), morning)
		env.worker.handle(context.Background())

		require.Empty(t, env.attendanceStore.created)
		require.Empty(t, env.sweepRunStore.runs)
	})

	t.Run(`опоздавший запуск все равно отрабатывает`, func(t *testing.T) {
		lateNight := time.Date(2026, 8, 31, 23, 55, 0, 0, time.UTC)
		env := newTestEnv(testOrg(t, true, "18:00"), lateNight)
		env.worker.handle(context.Background())

		require.Len(t, env.attendanceStore.created, 3)
	})

	t.Run(`выходной день пропускается с отметкой о проходе`, func(t *testing.T) {
		sunday := time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)
		env := newTestEnv(testOrg(t, true, "18:00"), sunday)
		env.worker.handle(context.Background())

		require.Empty(t, env.attendanceStore.created)
		run, ok := env.sweepRunStore.runs["2026-08-30"]
		require.True(t, ok)
		require.Equal(t, 0, run.Marked)
	})

	t.Run(`праздник пропускается`, func(t *testing.T) {
		env := newTestEnv(testOrg(t, true, "18:00"), mondayEvening)
		env.holidayStore.holidays["2026-08-31"] = true
		env.worker.handle(context.Background())

		require.Empty(t, env.attendanceStore.created)
		_, ok := env.sweepRunStore.runs["2026-08-31"]
		require.True(t, ok)
	})

	t.Run(`выключенный автопроход не выполняется`, func(t *testing.T) {
		env := newTestEnv(testOrg(t, false, "18:00"), mondayEvening)
		env.worker.handle(context.Background())

		require.Empty(t, env.attendanceStore.created)
		require.Empty(t, env.sweepRunStore.runs)
	})

	t.Run(`таймзона организации учитывается`, func(t *testing.T) {
		// 15:30 UTC это 18:30 в Москве
		org := testOrg(t, true, "18:00")
		appCfg, err := json.Marshal(models.AppConfig{
			AutoAbsentEnabled: true,
			AutoAbsentTime:    "18:00",
			Timezone:          "Europe/Moscow",
		})
		require.NoError(t, err)
		org.AppConfig = appCfg
		env := newTestEnv(org, time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC))
		env.worker.handle(context.Background())

		require.Len(t, env.attendanceStore.created, 3)
	})
}
