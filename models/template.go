package models

// LeaveTemplateData данные для писем по заявке на отпуск
type LeaveTemplateData struct {
	EmployeeName string
	ManagerName  string
	OrgName      string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    int
	Reason       string
	Status       string
	Remarks      string
}

// TrialTemplateData данные для письма об окончании пробного периода
type TrialTemplateData struct {
	OrgName      string
	TrialEndDate string
}

// WelcomeTemplateData данные для приветственного письма администратору
type WelcomeTemplateData struct {
	AdminName    string
	AdminEmail   string
	OrgName      string
	TrialEndDate string
}
