package models

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusPendingHR LeaveStatus = "PENDING_HR"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
)

// допустимые переходы статуса заявки, только вперед, без возврата
var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeaveStatusPending:   {LeaveStatusPendingHR, LeaveStatusApproved, LeaveStatusRejected},
	LeaveStatusPendingHR: {LeaveStatusApproved, LeaveStatusRejected},
}

func (s LeaveStatus) CanTransitTo(next LeaveStatus) bool {
	for _, allowed := range leaveTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s LeaveStatus) IsFinal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

func (s LeaveStatus) ToHuman() string {
	switch s {
	case LeaveStatusPending:
		return "На рассмотрении у руководителя"
	case LeaveStatusPendingHR:
		return "На проверке в HR"
	case LeaveStatusApproved:
		return "Согласована"
	case LeaveStatusRejected:
		return "Отклонена"
	}
	return string(s)
}

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "ANNUAL"
	LeaveTypeCasual   LeaveType = "CASUAL"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypeUnpaid   LeaveType = "UNPAID"
	LeaveTypeMaternal LeaveType = "MATERNITY"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeCasual, LeaveTypeSick, LeaveTypeUnpaid, LeaveTypeMaternal:
		return true
	}
	return false
}

func (t LeaveType) ToHuman() string {
	switch t {
	case LeaveTypeAnnual:
		return "Ежегодный отпуск"
	case LeaveTypeCasual:
		return "Отгул"
	case LeaveTypeSick:
		return "Больничный"
	case LeaveTypeUnpaid:
		return "Отпуск без содержания"
	case LeaveTypeMaternal:
		return "Декретный отпуск"
	}
	return string(t)
}
