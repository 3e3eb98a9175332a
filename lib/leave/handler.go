package leavehandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/config"
	"hr-attendance-backend/db"
	pdfexport "hr-attendance-backend/lib/export/pdf"
	leavestore "hr-attendance-backend/lib/leave/store"
	notificationhandler "hr-attendance-backend/lib/notification"
	orgsettingsstore "hr-attendance-backend/lib/org/settings-store"
	orgstore "hr-attendance-backend/lib/org/store"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	"hr-attendance-backend/lib/utils/helpers"
	connectionhub "hr-attendance-backend/lib/ws/hub/connection-hub"
	"hr-attendance-backend/models"
	leaveapimodels "hr-attendance-backend/models/api/leave"
	dbmodels "hr-attendance-backend/models/db"
	wsmodels "hr-attendance-backend/models/ws"
)

type Provider interface {
	Create(orgID, employeeID string, data leaveapimodels.CreateLeaveRequest) (id string, hMsg string, err error)
	SetStatus(orgID, requestID, actorID string, data leaveapimodels.SetLeaveStatusRequest) (hMsg string, err error)
	Get(orgID, id string) (*leaveapimodels.LeaveRequestView, error)
	List(orgID string, filter leaveapimodels.LeaveListFilter) ([]leaveapimodels.LeaveRequestView, int64, error)
	Confirmation(orgID, id string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            leavestore.NewInstance(db.DB),
		usersStore:       orgusersstore.NewInstance(db.DB),
		orgStore:         orgstore.NewInstance(db.DB),
		orgSettingsStore: orgsettingsstore.NewInstance(db.DB),
		notifications:    notificationhandler.Instance,
		hub:              connectionhub.Instance,
		monitorEmail:     config.Conf.Smtp.MonitorEmail,
		reportRecipient:  config.Conf.Smtp.ReportRecipient,
	}
}

type impl struct {
	store            leavestore.Provider
	usersStore       orgusersstore.Provider
	orgStore         orgstore.Provider
	orgSettingsStore orgsettingsstore.Provider
	notifications    notificationhandler.Provider
	hub              connectionhub.Provider
	monitorEmail     string
	reportRecipient  string
}

func (i impl) getLogger(orgID, requestID string) *log.Entry {
	return log.
		WithField("org_id", orgID).
		WithField("leave_request_id", requestID)
}

func (i impl) Create(orgID, employeeID string, data leaveapimodels.CreateLeaveRequest) (id string, hMsg string, err error) {
	employee, err := i.usersStore.GetByID(employeeID)
	if err != nil {
		return "", "", err
	}
	if employee == nil || employee.OrgID != orgID {
		return "", "Сотрудник не найден в справочнике сотрудников", nil
	}
	totalDays := data.TotalDays
	if totalDays == 0 {
		totalDays, err = helpers.DaysBetweenInclusive(data.StartDate, data.EndDate)
		if err != nil {
			return "", "", err
		}
	}
	rec := dbmodels.LeaveRequest{
		OrgID:         orgID,
		EmployeeID:    employeeID,
		LineManagerID: employee.LineManagerID,
		Type:          models.LeaveType(data.Type),
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		TotalDays:     totalDays,
		Reason:        data.Reason,
		Status:        models.LeaveStatusPending,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения заявки на отпуск")
	}
	rec.ID = id
	// уведомления вторичны, их сбой не отменяет созданную заявку
	i.notifyCreated(rec, *employee)
	return id, "", nil
}

func (i impl) SetStatus(orgID, requestID, actorID string, data leaveapimodels.SetLeaveStatusRequest) (hMsg string, err error) {
	rec, err := i.store.GetByID(orgID, requestID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Заявка не найдена", nil
	}
	newStatus := models.LeaveStatus(data.Status)
	// переходы только вперед, повторное применение того же события отклоняется
	if !rec.Status.CanTransitTo(newStatus) {
		return fmt.Sprintf("Недопустимый переход статуса: %v -> %v", rec.Status, newStatus), nil
	}

	updMap := map[string]interface{}{
		"status": newStatus,
	}
	if data.Remarks != "" {
		if rec.Status == models.LeaveStatusPending {
			updMap["manager_remarks"] = data.Remarks
			rec.ManagerRemarks = data.Remarks
		} else {
			updMap["approver_remarks"] = data.Remarks
			rec.ApproverRemarks = data.Remarks
		}
	}
	if newStatus.IsFinal() {
		now := time.Now()
		updMap["decided_by_id"] = actorID
		updMap["decided_at"] = now
		rec.DecidedByID = actorID
		rec.DecidedAt = &now
	}
	// сначала сохраняем переход, уведомления после и без отката
	err = i.store.Update(orgID, requestID, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления статуса заявки")
	}
	rec.Status = newStatus

	switch newStatus {
	case models.LeaveStatusPendingHR:
		i.notifyEscalation(*rec)
	case models.LeaveStatusApproved, models.LeaveStatusRejected:
		i.notifyDecision(*rec)
	}
	return "", nil
}

func (i impl) Get(orgID, id string) (*leaveapimodels.LeaveRequestView, error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModelView()
	return &view, nil
}

func (i impl) List(orgID string, filter leaveapimodels.LeaveListFilter) ([]leaveapimodels.LeaveRequestView, int64, error) {
	list, rowCount, err := i.store.List(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]leaveapimodels.LeaveRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, rowCount, nil
}

// Confirmation pdf-подтверждение выдается только по одобренной заявке
func (i impl) Confirmation(orgID, id string) (pdfFile []byte, hMsg string, err error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "Заявка не найдена", nil
	}
	if rec.Status != models.LeaveStatusApproved {
		return nil, "Заявка не одобрена", nil
	}
	data := i.templateData(*rec, i.resolveEmployeeName(*rec), "")
	pdfFile, err = pdfexport.GenerateLeaveConfirmation(data)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка генерации pdf-подтверждения")
	}
	return pdfFile, "", nil
}

func (i impl) templateData(rec dbmodels.LeaveRequest, employeeName, managerName string) models.LeaveTemplateData {
	orgName := ""
	org, err := i.orgStore.GetByID(rec.OrgID)
	if err != nil {
		i.getLogger(rec.OrgID, rec.ID).WithError(err).Error("ошибка получения организации")
	}
	if org != nil {
		orgName = org.Name
	}
	return models.LeaveTemplateData{
		EmployeeName: employeeName,
		ManagerName:  managerName,
		OrgName:      orgName,
		LeaveType:    rec.Type.ToHuman(),
		StartDate:    rec.StartDate,
		EndDate:      rec.EndDate,
		TotalDays:    rec.TotalDays,
		Reason:       rec.Reason,
		Status:       rec.Status.ToHuman(),
		Remarks:      rec.DecisionRemarks(),
	}
}

// notifyCreated подтверждение сотруднику, алерт руководителю (если назначен)
// и контрольная копия на monitor address
func (i impl) notifyCreated(rec dbmodels.LeaveRequest, employee dbmodels.OrgUser) {
	logger := i.getLogger(rec.OrgID, rec.ID)
	data := i.templateData(rec, employee.GetFullName(), "")

	body, err := BuildCreatedMsg(data)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации письма о создании заявки")
	} else {
		i.notifications.Enqueue(rec.OrgID, employee.Email, createdSubject, body, models.NotificationLeaveCreated)
	}

	if rec.LineManagerID != "" {
		manager, err := i.usersStore.GetByID(rec.LineManagerID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения руководителя")
		}
		if manager != nil {
			data.ManagerName = manager.GetFullName()
			body, err = BuildManagerAlertMsg(data)
			if err != nil {
				logger.WithError(err).Error("ошибка генерации письма руководителю")
			} else {
				i.notifications.Enqueue(rec.OrgID, manager.Email, managerSubject, body, models.NotificationLeaveManagerAlert)
			}
		}
	}

	i.notifyMonitor(rec, data)
}

// notifyEscalation алерт HR при переходе в PENDING_HR,
// адресат из настройки DefaultReportRecipient, иначе общий fallback
func (i impl) notifyEscalation(rec dbmodels.LeaveRequest) {
	logger := i.getLogger(rec.OrgID, rec.ID)
	employeeName := i.resolveEmployeeName(rec)
	data := i.templateData(rec, employeeName, "")
	data.Remarks = rec.ManagerRemarks

	recipient, err := i.orgSettingsStore.GetValueByCode(rec.OrgID, models.DefaultReportRecipientSetting)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения настройки DefaultReportRecipient")
	}
	if recipient == "" {
		recipient = i.reportRecipient
	}
	body, err := BuildEscalationMsg(data)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации письма эскалации")
		return
	}
	i.notifications.Enqueue(rec.OrgID, recipient, escalationSubject, body, models.NotificationLeaveHREscalation)
}

// notifyDecision решение сотруднику + контрольная копия с непустыми замечаниями
func (i impl) notifyDecision(rec dbmodels.LeaveRequest) {
	logger := i.getLogger(rec.OrgID, rec.ID)
	employee, err := i.usersStore.GetByID(rec.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудника")
	}
	employeeName := ""
	if employee != nil {
		employeeName = employee.GetFullName()
	}
	data := i.templateData(rec, employeeName, "")

	if employee != nil {
		body, err := BuildDecisionMsg(data)
		if err != nil {
			logger.WithError(err).Error("ошибка генерации письма с решением")
		} else {
			i.notifications.Enqueue(rec.OrgID, employee.Email, decisionSubject, body, models.NotificationLeaveDecision)
		}
		i.pushDecision(rec, employee.ID)
	}

	i.notifyMonitor(rec, data)
}

func (i impl) notifyMonitor(rec dbmodels.LeaveRequest, data models.LeaveTemplateData) {
	logger := i.getLogger(rec.OrgID, rec.ID)
	monitor, err := i.orgSettingsStore.GetValueByCode(rec.OrgID, models.MonitorEmailSetting)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения настройки MonitorEmail")
	}
	if monitor == "" {
		monitor = i.monitorEmail
	}
	body, err := BuildMonitorMsg(data)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации контрольного письма")
		return
	}
	i.notifications.Enqueue(rec.OrgID, monitor, monitorSubject, body, models.NotificationLeaveMonitor)
}

func (i impl) resolveEmployeeName(rec dbmodels.LeaveRequest) string {
	employee, err := i.usersStore.GetByID(rec.EmployeeID)
	if err != nil {
		i.getLogger(rec.OrgID, rec.ID).WithError(err).Error("ошибка получения сотрудника")
		return ""
	}
	if employee == nil {
		return ""
	}
	return employee.GetFullName()
}

func (i impl) pushDecision(rec dbmodels.LeaveRequest, userID string) {
	if i.hub == nil {
		return
	}
	i.hub.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     string(models.NotificationLeaveDecision),
		Msg:      fmt.Sprintf("Решение по заявке на отпуск: %v", rec.Status.ToHuman()),
	})
}
