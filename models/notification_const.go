package models

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// NotificationType код события, породившего запись в очереди
type NotificationType string

const (
	NotificationLeaveCreated      NotificationType = "leave_created"       // подтверждение сотруднику о создании заявки
	NotificationLeaveManagerAlert NotificationType = "leave_manager_alert" // требуется решение руководителя
	NotificationLeaveHREscalation NotificationType = "leave_hr_escalation" // требуется проверка HR
	NotificationLeaveDecision     NotificationType = "leave_decision"      // итоговое решение сотруднику
	NotificationLeaveMonitor      NotificationType = "leave_monitor"       // копия для контроля на monitor address
	NotificationTrialExpired      NotificationType = "trial_expired"       // уведомление администратора об окончании триала
)
