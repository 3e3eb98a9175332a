package attendancehandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/db"
	attendancestore "hr-attendance-backend/lib/attendance/store"
	xlsexport "hr-attendance-backend/lib/export/xls"
	filestorage "hr-attendance-backend/lib/file-storage"
	orgsettingsstore "hr-attendance-backend/lib/org/settings-store"
	orgstore "hr-attendance-backend/lib/org/store"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	"hr-attendance-backend/lib/utils/helpers"
	connectionhub "hr-attendance-backend/lib/ws/hub/connection-hub"
	"hr-attendance-backend/models"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
	dbmodels "hr-attendance-backend/models/db"
	wsmodels "hr-attendance-backend/models/ws"
)

type Provider interface {
	CheckIn(ctx context.Context, orgID, employeeID string, data attendanceapimodels.CheckInRequest, selfie io.Reader, selfieSize int64) (hMsg string, err error)
	CheckOut(orgID, employeeID string) (hMsg string, err error)
	GetSelfie(ctx context.Context, orgID, recordID string) (file []byte, hMsg string, err error)
	List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]attendanceapimodels.AttendanceView, int64, error)
	MonthlyReport(orgID string, data attendanceapimodels.ReportRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            attendancestore.NewInstance(db.DB),
		usersStore:       orgusersstore.NewInstance(db.DB),
		orgStore:         orgstore.NewInstance(db.DB),
		orgSettingsStore: orgsettingsstore.NewInstance(db.DB),
		fileStorage:      filestorage.Instance,
		xlsExport:        xlsexport.Instance,
		hub:              connectionhub.Instance,
		now:              time.Now,
	}
}

type impl struct {
	store            attendancestore.Provider
	usersStore       orgusersstore.Provider
	orgStore         orgstore.Provider
	orgSettingsStore orgsettingsstore.Provider
	fileStorage      filestorage.Provider
	xlsExport        xlsexport.Provider
	hub              connectionhub.Provider
	now              func() time.Time
}

func (i impl) getLogger(orgID, employeeID string) *log.Entry {
	return log.
		WithField("org_id", orgID).
		WithField("employee_id", employeeID)
}

func (i impl) CheckIn(ctx context.Context, orgID, employeeID string, data attendanceapimodels.CheckInRequest, selfie io.Reader, selfieSize int64) (hMsg string, err error) {
	logger := i.getLogger(orgID, employeeID)
	employee, err := i.usersStore.GetByID(employeeID)
	if err != nil {
		return "", err
	}
	if employee == nil || employee.OrgID != orgID {
		return "Сотрудник не найден в справочнике сотрудников", nil
	}
	now, err := i.orgNow(orgID)
	if err != nil {
		return "", err
	}
	today := now.Format(models.DateFormat)
	exist, err := i.store.ExistOnDate(orgID, employeeID, today)
	if err != nil {
		return "", err
	}
	if exist {
		return "Отметка о приходе за сегодня уже есть", nil
	}
	status, err := i.resolveStatus(orgID, now)
	if err != nil {
		return "", err
	}
	selfieKey := ""
	if selfie != nil {
		selfieKey, err = i.fileStorage.UploadSelfie(ctx, orgID, selfie, selfieSize)
		if err != nil {
			// отметка важнее селфи, фиксируем приход без фото
			logger.WithError(err).Error("ошибка загрузки селфи")
			selfieKey = ""
		}
	}
	_, err = i.store.Create(dbmodels.AttendanceRecord{
		OrgID:        orgID,
		EmployeeID:   employeeID,
		EmployeeName: employee.GetFullName(),
		Date:         today,
		Status:       status,
		CheckIn:      now.Format(models.TimeOfDayFormat),
		Location:     data.Location,
		SelfieKey:    selfieKey,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения отметки о приходе")
	}
	i.pushConfirmation(employeeID, models.WsCheckInConfirmed,
		fmt.Sprintf("Приход отмечен в %v", now.Format(models.TimeOfDayFormat)))
	return "", nil
}

func (i impl) CheckOut(orgID, employeeID string) (hMsg string, err error) {
	now, err := i.orgNow(orgID)
	if err != nil {
		return "", err
	}
	today := now.Format(models.DateFormat)
	rec, err := i.store.GetByEmployeeAndDate(orgID, employeeID, today)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.CheckIn == models.AbsentCheckInMark {
		return "Отметка о приходе за сегодня не найдена", nil
	}
	if rec.CheckOut != "" {
		return "Отметка об уходе за сегодня уже есть", nil
	}
	updMap := map[string]interface{}{
		"check_out": now.Format(models.TimeOfDayFormat),
	}
	err = i.store.Update(orgID, rec.ID, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения отметки об уходе")
	}
	i.pushConfirmation(employeeID, models.WsCheckOutConfirmed,
		fmt.Sprintf("Уход отмечен в %v", now.Format(models.TimeOfDayFormat)))
	return "", nil
}

func (i impl) pushConfirmation(employeeID, code, msg string) {
	if i.hub == nil {
		return
	}
	i.hub.SendMessage(wsmodels.ServerMessage{
		ToUserID: employeeID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     code,
		Msg:      msg,
	})
}

func (i impl) GetSelfie(ctx context.Context, orgID, recordID string) (file []byte, hMsg string, err error) {
	rec, err := i.store.GetByID(orgID, recordID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "Отметка не найдена", nil
	}
	if rec.SelfieKey == "" {
		return nil, "У отметки нет селфи", nil
	}
	file, err = i.fileStorage.GetFile(ctx, orgID, rec.SelfieKey)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения селфи из хранилища")
	}
	return file, "", nil
}

func (i impl) List(orgID string, filter attendanceapimodels.AttendanceListFilter) ([]attendanceapimodels.AttendanceView, int64, error) {
	list, rowCount, err := i.store.List(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]attendanceapimodels.AttendanceView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, rowCount, nil
}

func (i impl) MonthlyReport(orgID string, data attendanceapimodels.ReportRequest) (*bytes.Buffer, error) {
	monthStart := time.Date(data.Year, time.Month(data.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	list, err := i.store.ListByPeriod(orgID,
		monthStart.Format(models.DateFormat),
		monthEnd.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportAttendanceReport(list)
}

// orgNow текущее время в часовом поясе организации
func (i impl) orgNow(orgID string) (time.Time, error) {
	org, err := i.orgStore.GetByID(orgID)
	if err != nil {
		return time.Time{}, err
	}
	if org == nil {
		return time.Time{}, errors.New("организация не найдена")
	}
	appCfg, err := org.GetAppConfig()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "ошибка чтения конфигурации организации")
	}
	return helpers.InLocation(i.now(), appCfg.Timezone), nil
}

// resolveStatus PRESENT до начала рабочего дня включительно, дальше LATE
func (i impl) resolveStatus(orgID string, now time.Time) (models.AttendanceStatus, error) {
	startValue, err := i.orgSettingsStore.GetValueByCode(orgID, models.WorkdayStartSetting)
	if err != nil {
		return "", err
	}
	if startValue == "" {
		startValue = dbmodels.DefaultWorkdayStartSetting.Value
	}
	start, err := time.Parse(models.TimeOfDayFormat, startValue)
	if err != nil {
		return "", errors.Wrapf(err, "некорректное время начала рабочего дня: %v", startValue)
	}
	if now.Hour() > start.Hour() ||
		(now.Hour() == start.Hour() && now.Minute() > start.Minute()) {
		return models.AttendanceStatusLate, nil
	}
	return models.AttendanceStatusPresent, nil
}
