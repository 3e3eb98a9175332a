package orgusershandler

import (
	"github.com/pkg/errors"

	"hr-attendance-backend/db"
	orgusersstore "hr-attendance-backend/lib/org/users/store"
	authutils "hr-attendance-backend/lib/utils/auth-utils"
	"hr-attendance-backend/models"
	orgapimodels "hr-attendance-backend/models/api/org"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(orgID string, data orgapimodels.CreateOrgUserRequest) (id string, hMsg string, err error)
	GetByID(orgID, id string) (*orgapimodels.OrgUserView, error)
	List(orgID string) ([]orgapimodels.OrgUserView, error)
	Update(orgID, id string, data orgapimodels.UpdateOrgUserRequest) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: orgusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store orgusersstore.Provider
}

func (i impl) Create(orgID string, data orgapimodels.CreateOrgUserRequest) (id string, hMsg string, err error) {
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if exist {
		return "", "Пользователь с такой почтой уже зарегистрирован", nil
	}
	role := models.UserRole(data.Role)
	if role == "" {
		role = models.EmployeeRole
	}
	if data.LineManagerID != "" {
		manager, err := i.store.GetByID(data.LineManagerID)
		if err != nil {
			return "", "", err
		}
		if manager == nil || manager.OrgID != orgID {
			return "", "Руководитель не найден в справочнике сотрудников", nil
		}
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	id, err = i.store.Create(dbmodels.OrgUser{
		OrgID:         orgID,
		Password:      hash,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		JobTitle:      data.JobTitle,
		IsActive:      true,
		Role:          role,
		LineManagerID: data.LineManagerID,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	return id, "", nil
}

func (i impl) GetByID(orgID, id string) (*orgapimodels.OrgUserView, error) {
	user, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.OrgID != orgID {
		return nil, nil
	}
	view := user.ToModelView()
	return &view, nil
}

func (i impl) List(orgID string) ([]orgapimodels.OrgUserView, error) {
	list, err := i.store.List(orgID)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.OrgUserView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, nil
}

func (i impl) Update(orgID, id string, data orgapimodels.UpdateOrgUserRequest) (hMsg string, err error) {
	user, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if user == nil || user.OrgID != orgID {
		return "Сотрудник не найден в справочнике сотрудников", nil
	}
	updMap := map[string]interface{}{}
	if data.FirstName != nil {
		updMap["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updMap["last_name"] = *data.LastName
	}
	if data.PhoneNumber != nil {
		updMap["phone_number"] = *data.PhoneNumber
	}
	if data.JobTitle != nil {
		updMap["job_title"] = *data.JobTitle
	}
	if data.Role != nil {
		updMap["role"] = *data.Role
	}
	if data.LineManagerID != nil {
		updMap["line_manager_id"] = *data.LineManagerID
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if len(updMap) == 0 {
		return "", nil
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления сотрудника")
	}
	return "", nil
}
