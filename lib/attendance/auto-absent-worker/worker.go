package autoabsentworker

import (
	"context"
	"fmt"
	"time"

	"hr-attendance-backend/db"
	attendancestore "hr-attendance-backend/lib/attendance/store"
	sweeprunstore "hr-attendance-backend/lib/attendance/sweep-run-store"
	leavestore "hr-attendance-backend/lib/leave/store"
	holidaystore "hr-attendance-backend/lib/org/holiday-store"
	orgstore "hr-attendance-backend/lib/org/store"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	baseworker "hr-attendance-backend/lib/utils/base-worker"
	"hr-attendance-backend/lib/utils/helpers"
	"hr-attendance-backend/lib/utils/lock"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"

	log "github.com/sirupsen/logrus"
)

const sweepName = "auto-absent-sweep"

type impl struct {
	*baseworker.BaseImpl
	orgStore        orgstore.Provider
	usersStore      orgusersstore.Provider
	attendanceStore attendancestore.Provider
	leaveStore      leavestore.Provider
	holidayStore    holidaystore.Provider
	sweepRunStore   sweeprunstore.Provider
	now             func() time.Time
}

func StartWorker(ctx context.Context) {
	worker := impl{
		BaseImpl:        baseworker.NewInstance("АвтоОтметкаОтсутствия", 30*time.Second, 1*time.Minute),
		orgStore:        orgstore.NewInstance(db.DB),
		usersStore:      orgusersstore.NewInstance(db.DB),
		attendanceStore: attendancestore.NewInstance(db.DB),
		leaveStore:      leavestore.NewInstance(db.DB),
		holidayStore:    holidaystore.NewInstance(db.DB),
		sweepRunStore:   sweeprunstore.NewInstance(db.DB),
		now:             time.Now,
	}
	go worker.Run(ctx, worker.handle)
}

func (i impl) handle(ctx context.Context) {
	if !lock.Resource.Acquire(ctx, sweepName) {
		return
	}
	defer lock.Resource.Release(sweepName)

	list, err := i.orgStore.ListUsable()
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка получения списка организаций")
		return
	}
	for _, org := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		i.sweepOrg(org)
	}
}

// sweepOrg проходит по активным сотрудникам организации и проставляет ABSENT
// всем без отметки и без одобренного отпуска на сегодня.
// Проход выполняется не чаще раза в день: после целевого времени и только
// если за сегодня еще нет записи о выполнении, поэтому опоздавший запуск
// (рестарт сервиса, долгий тик) все равно отработает
func (i impl) sweepOrg(org dbmodels.Organization) {
	logger := i.GetLogger().WithField("org_id", org.ID)
	appCfg, err := org.GetAppConfig()
	if err != nil {
		logger.WithError(err).Error("ошибка чтения конфигурации организации")
		return
	}
	if !appCfg.AutoAbsentEnabled || appCfg.AutoAbsentTime == "" {
		return
	}
	now := helpers.InLocation(i.now(), appCfg.Timezone)
	target, err := time.Parse(models.TimeOfDayFormat, appCfg.AutoAbsentTime)
	if err != nil {
		logger.WithError(err).Errorf("некорректное время автопрохода: %v", appCfg.AutoAbsentTime)
		return
	}
	if now.Hour() < target.Hour() ||
		(now.Hour() == target.Hour() && now.Minute() < target.Minute()) {
		return
	}
	today := now.Format(models.DateFormat)
	done, err := i.sweepRunStore.Exist(org.ID, today)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки выполнения прохода")
		return
	}
	if done {
		return
	}

	if !org.IsWorkingDay(now.Weekday().String()) {
		i.markDone(logger, org.ID, today, 0, 0)
		return
	}
	isHoliday, err := i.holidayStore.ExistOnDate(org.ID, today)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки праздничного дня")
		return
	}
	if isHoliday {
		i.markDone(logger, org.ID, today, 0, 0)
		return
	}

	employees, err := i.usersStore.ListActiveEmployees(org.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка сотрудников")
		return
	}
	marked := 0
	skipped := 0
	for _, employee := range employees {
		wasMarked, err := i.sweepEmployee(org.ID, employee, today, appCfg.AutoAbsentTime)
		if err != nil {
			logger.WithField("employee_id", employee.ID).
				WithError(err).
				Error("ошибка автоотметки сотрудника")
			continue
		}
		if wasMarked {
			marked++
		} else {
			skipped++
		}
	}
	i.markDone(logger, org.ID, today, marked, skipped)
	logger.Infof("автопроход завершен, отмечено: %v, пропущено: %v", marked, skipped)
}

func (i impl) sweepEmployee(orgID string, employee dbmodels.OrgUser, today, targetTime string) (marked bool, err error) {
	exist, err := i.attendanceStore.ExistOnDate(orgID, employee.ID, today)
	if err != nil {
		return false, err
	}
	if exist {
		return false, nil
	}
	onLeave, err := i.leaveStore.ExistApprovedOnDate(orgID, employee.ID, today)
	if err != nil {
		return false, err
	}
	if onLeave {
		return false, nil
	}
	_, err = i.attendanceStore.Create(dbmodels.AttendanceRecord{
		OrgID:        orgID,
		EmployeeID:   employee.ID,
		EmployeeName: employee.GetFullName(),
		Date:         today,
		CheckIn:      models.AbsentCheckInMark,
		Status:       models.AttendanceStatusAbsent,
		Remarks:      fmt.Sprintf("Автоматическая отметка: нет прихода к %v", targetTime),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (i impl) markDone(logger *log.Entry, orgID, date string, marked, skipped int) {
	err := i.sweepRunStore.Create(dbmodels.SweepRun{
		OrgID:   orgID,
		Date:    date,
		Marked:  marked,
		Skipped: skipped,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения записи о выполнении прохода")
	}
}
