package orgapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"
)

type CreateOrgRequest struct {
	Name          string `json:"name"`
	Country       string `json:"country"` // ISO alpha-2, по стране подбираются валюта, рабочие дни и праздники
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
}

func (r CreateOrgRequest) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название организации")
	}
	if len(r.Country) != 2 {
		return errors.New("страна указывается в формате ISO alpha-2")
	}
	if _, err := mail.ParseAddress(r.AdminEmail); err != nil {
		return errors.New("почта администратора имеет неправильный формат")
	}
	if len(r.AdminPassword) < 8 {
		return errors.New("пароль администратора должен быть не короче 8 символов")
	}
	return nil
}

type OrganizationView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Country            string    `json:"country"`
	Currency           string    `json:"currency"`
	AdminEmail         string    `json:"admin_email"`
	SubscriptionStatus string    `json:"subscription_status"`
	TrialEndDate       time.Time `json:"trial_end_date"`
	WorkingDays        []string  `json:"working_days"`
}

type OrgSettingView struct {
	ID    string `json:"id"`
	OrgID string `json:"org_id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

type UpdateOrgSettingValue struct {
	Value string `json:"value"`
}

func (r UpdateOrgSettingValue) Validate() error {
	if len(r.Value) > 500 {
		return errors.New("слишком длинное значение настройки")
	}
	return nil
}

type HolidayView struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type AddHolidayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

func (r AddHolidayRequest) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("дата праздника указывается в формате YYYY-MM-DD")
	}
	return nil
}

type UpdateAppConfigRequest struct {
	AutoAbsentEnabled bool   `json:"autoAbsentEnabled"`
	AutoAbsentTime    string `json:"autoAbsentTime"`
	Timezone          string `json:"timezone"`
}

func (r UpdateAppConfigRequest) Validate() error {
	if r.AutoAbsentTime != "" {
		if _, err := time.Parse("15:04", r.AutoAbsentTime); err != nil {
			return errors.New("autoAbsentTime указывается в формате HH:MM")
		}
	}
	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			return errors.New("неизвестная таймзона")
		}
	}
	return nil
}
