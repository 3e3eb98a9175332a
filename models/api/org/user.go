package orgapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type OrgUserCommonData struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PhoneNumber   string `json:"phone_number"`
	JobTitle      string `json:"job_title"`
	OrgID         string `json:"org_id"`
	Role          string `json:"role"`
	LineManagerID string `json:"line_manager_id,omitempty"`
	IsActive      bool   `json:"is_active"`
}

type OrgUserView struct {
	ID string `json:"id"`
	OrgUserCommonData
}

type CreateOrgUserRequest struct {
	OrgUserCommonData
	Password string `json:"password"`
}

func (r CreateOrgUserRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны имя и фамилия сотрудника")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен быть не короче 8 символов")
	}
	return nil
}

type UpdateOrgUserRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	PhoneNumber   *string `json:"phone_number"`
	JobTitle      *string `json:"job_title"`
	Role          *string `json:"role"`
	LineManagerID *string `json:"line_manager_id"`
	IsActive      *bool   `json:"is_active"`
}
