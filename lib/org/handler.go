package orghandler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-attendance-backend/config"
	"hr-attendance-backend/db"
	filestorage "hr-attendance-backend/lib/file-storage"
	holidaystore "hr-attendance-backend/lib/org/holiday-store"
	orgsettingsstore "hr-attendance-backend/lib/org/settings-store"
	orgstore "hr-attendance-backend/lib/org/store"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	"hr-attendance-backend/lib/smtp"
	authutils "hr-attendance-backend/lib/utils/auth-utils"
	"hr-attendance-backend/models"
	orgapimodels "hr-attendance-backend/models/api/org"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data orgapimodels.CreateOrgRequest) (id string, hMsg string, err error)
	GetByID(orgID string) (*orgapimodels.OrganizationView, error)
	ListSettings(orgID string) ([]orgapimodels.OrgSettingView, error)
	UpdateSetting(orgID, code string, data orgapimodels.UpdateOrgSettingValue) error
	ListHolidays(orgID string) ([]orgapimodels.HolidayView, error)
	AddHoliday(orgID string, data orgapimodels.AddHolidayRequest) (id string, err error)
	DeleteHoliday(orgID, id string) error
	UpdateAppConfig(orgID string, data orgapimodels.UpdateAppConfigRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         orgstore.NewInstance(db.DB),
		settingsStore: orgsettingsstore.NewInstance(db.DB),
		holidayStore:  holidaystore.NewInstance(db.DB),
		usersStore:    orgusersstore.NewInstance(db.DB),
		fileStorage:   filestorage.Instance,
		smtpProvider:  smtp.Instance,
		defaultSender: config.Conf.Smtp.DefaultSender,
		trialDays:     config.Conf.Trial.DurationDays,
		now:           time.Now,
	}
}

type impl struct {
	store         orgstore.Provider
	settingsStore orgsettingsstore.Provider
	holidayStore  holidaystore.Provider
	usersStore    orgusersstore.Provider
	fileStorage   filestorage.Provider
	smtpProvider  smtp.Provider
	defaultSender string
	trialDays     int
	now           func() time.Time
}

func (i impl) getLogger(orgID string) *log.Entry {
	return log.WithField("org_id", orgID)
}

// Create регистрирует организацию на триале: администратор, страновые
// значения по умолчанию, набор настроек, календарь праздников на текущий год,
// бакет для селфи и приветственное письмо администратору
func (i impl) Create(ctx context.Context, data orgapimodels.CreateOrgRequest) (id string, hMsg string, err error) {
	exist, err := i.usersStore.ExistByEmail(data.AdminEmail)
	if err != nil {
		return "", "", err
	}
	if exist {
		return "", "Пользователь с такой почтой уже зарегистрирован", nil
	}
	defaults := models.GetCountryDefaults(data.Country)
	appCfg, err := json.Marshal(models.AppConfig{
		AutoAbsentEnabled: false,
		AutoAbsentTime:    "18:00",
		Timezone:          defaults.Timezone,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сериализации конфигурации организации")
	}
	rec := dbmodels.Organization{
		Name:               data.Name,
		Country:            data.Country,
		Currency:           defaults.Currency,
		AdminEmail:         data.AdminEmail,
		SubscriptionStatus: models.SubscriptionStatusTrial,
		TrialEndDate:       i.now().AddDate(0, 0, i.trialDays),
		WorkingDays:        defaults.WorkingDays,
		AppConfig:          appCfg,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения организации")
	}
	logger := i.getLogger(id)

	hash, err := authutils.HashPassword(data.AdminPassword)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	_, err = i.usersStore.Create(dbmodels.OrgUser{
		OrgID:     id,
		Password:  hash,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.AdminEmail,
		IsActive:  true,
		Role:      models.OrgAdminRole,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания администратора организации")
	}

	for _, setting := range dbmodels.DefaultSettingsList {
		setting.OrgID = id
		if err = i.settingsStore.Create(setting); err != nil {
			logger.WithField("setting_code", setting.Code).
				WithError(err).
				Error("ошибка создания настройки организации")
		}
	}
	i.seedHolidays(id, defaults)

	// селфи терпят отсутствие бакета, регистрацию это не останавливает
	if err = i.fileStorage.MakeOrgBucket(ctx, id); err != nil {
		logger.WithError(err).Error("ошибка создания бакета организации")
	}
	i.sendWelcome(rec.Name, data)

	logger.Info("организация зарегистрирована")
	return id, "", nil
}

func (i impl) sendWelcome(orgName string, data orgapimodels.CreateOrgRequest) {
	logger := log.WithField("admin_email", data.AdminEmail)
	body, err := buildWelcomeMsg(models.WelcomeTemplateData{
		AdminName:    fmt.Sprintf("%s %s", data.FirstName, data.LastName),
		AdminEmail:   data.AdminEmail,
		OrgName:      orgName,
		TrialEndDate: i.now().AddDate(0, 0, i.trialDays).Format(models.DateFormat),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка генерации приветственного письма")
		return
	}
	err = i.smtpProvider.SendEMail(i.defaultSender, data.AdminEmail, body, welcomeSubject)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки приветственного письма")
	}
}

// seedHolidays ежегодные праздники страны разворачиваются в даты текущего года
func (i impl) seedHolidays(orgID string, defaults models.CountryDefaults) {
	logger := i.getLogger(orgID)
	year := i.now().Year()
	for _, holiday := range defaults.Holidays {
		_, err := i.holidayStore.Create(dbmodels.Holiday{
			OrgID: orgID,
			Date:  fmt.Sprintf("%d-%s", year, holiday.Date),
			Name:  holiday.Name,
		})
		if err != nil {
			logger.WithField("holiday", holiday.Name).
				WithError(err).
				Error("ошибка создания праздника")
		}
	}
}

func (i impl) GetByID(orgID string) (*orgapimodels.OrganizationView, error) {
	org, err := i.store.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	view := org.ToModelView()
	return &view, nil
}

func (i impl) ListSettings(orgID string) ([]orgapimodels.OrgSettingView, error) {
	list, err := i.settingsStore.List(orgID)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.OrgSettingView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, nil
}

func (i impl) UpdateSetting(orgID, code string, data orgapimodels.UpdateOrgSettingValue) error {
	return i.settingsStore.Update(orgID, code, data.Value)
}

func (i impl) ListHolidays(orgID string) ([]orgapimodels.HolidayView, error) {
	list, err := i.holidayStore.List(orgID)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.HolidayView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, nil
}

func (i impl) AddHoliday(orgID string, data orgapimodels.AddHolidayRequest) (id string, err error) {
	return i.holidayStore.Create(dbmodels.Holiday{
		OrgID: orgID,
		Date:  data.Date,
		Name:  data.Name,
	})
}

func (i impl) DeleteHoliday(orgID, id string) error {
	return i.holidayStore.Delete(orgID, id)
}

func (i impl) UpdateAppConfig(orgID string, data orgapimodels.UpdateAppConfigRequest) error {
	org, err := i.store.GetByID(orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return errors.New("организация не найдена")
	}
	current, err := org.GetAppConfig()
	if err != nil {
		return errors.Wrap(err, "ошибка чтения конфигурации организации")
	}
	current.AutoAbsentEnabled = data.AutoAbsentEnabled
	if data.AutoAbsentTime != "" {
		current.AutoAbsentTime = data.AutoAbsentTime
	}
	if data.Timezone != "" {
		current.Timezone = data.Timezone
	}
	appCfg, err := json.Marshal(current)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации конфигурации организации")
	}
	updMap := map[string]interface{}{
		"app_config": appCfg,
	}
	return i.store.Update(orgID, updMap)
}
