package dbmodels

import (
	"hr-attendance-backend/models"
	orgapimodels "hr-attendance-backend/models/api/org"
)

type OrgSetting struct {
	BaseModel
	OrgID string                `gorm:"type:varchar(36);index:idx_org_setting_code"`
	Name  string                `gorm:"type:varchar(255)"`
	Code  models.OrgSettingCode `gorm:"type:varchar(255);index:idx_org_setting_code"`
	Value string                `gorm:"type:varchar(500)"`
}

func (r OrgSetting) ToModelView() orgapimodels.OrgSettingView {
	return orgapimodels.OrgSettingView{
		ID:    r.ID,
		OrgID: r.OrgID,
		Name:  r.Name,
		Code:  string(r.Code),
		Value: r.Value,
	}
}

var DefaultSenderEmailSetting = OrgSetting{
	Name: "почта, с которой отправляются уведомления сотрудникам",
	Code: models.SenderEmailSetting,
}

var DefaultSenderNameSetting = OrgSetting{
	Name: "имя отправителя в письмах",
	Code: models.SenderNameSetting,
}

var DefaultReportRecipientSetting = OrgSetting{
	Name: "почта HR для эскалации заявок на отпуск",
	Code: models.DefaultReportRecipientSetting,
}

var DefaultMonitorEmailSetting = OrgSetting{
	Name: "почта для контрольных копий уведомлений",
	Code: models.MonitorEmailSetting,
}

var DefaultWorkdayStartSetting = OrgSetting{
	Name:  "время начала рабочего дня",
	Code:  models.WorkdayStartSetting,
	Value: "09:00",
}

var DefaultSettingsList = []OrgSetting{
	DefaultSenderEmailSetting,
	DefaultSenderNameSetting,
	DefaultReportRecipientSetting,
	DefaultMonitorEmailSetting,
	DefaultWorkdayStartSetting,
}
