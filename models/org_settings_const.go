package models

type OrgSettingCode string

const (
	SenderEmailSetting            OrgSettingCode = "SenderEmail"            // почта, с которой отправляются уведомления сотрудникам
	SenderNameSetting             OrgSettingCode = "SenderName"             // имя отправителя в письмах
	DefaultReportRecipientSetting OrgSettingCode = "DefaultReportRecipient" // почта HR для эскалации заявок
	MonitorEmailSetting           OrgSettingCode = "MonitorEmail"           // почта для контрольных копий уведомлений
	WorkdayStartSetting           OrgSettingCode = "WorkdayStart"           // время начала рабочего дня (HH:MM), после него отметка LATE
)

// AppConfig json-блоб настроек приложения организации (organizations.app_config)
type AppConfig struct {
	AutoAbsentEnabled bool   `json:"autoAbsentEnabled"`
	AutoAbsentTime    string `json:"autoAbsentTime"` // HH:MM, локальное время организации
	Timezone          string `json:"timezone"`       // IANA, например Europe/Moscow
}
