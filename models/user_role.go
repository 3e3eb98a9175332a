package models

type UserRole string

const (
	OrgAdminRole UserRole = "admin"
	HRRole       UserRole = "hr"
	ManagerRole  UserRole = "manager"
	EmployeeRole UserRole = "employee"
)

func (r UserRole) IsOrgAdmin() bool {
	return r == OrgAdminRole
}

func (r UserRole) CanDecideLeave() bool {
	return r == OrgAdminRole || r == HRRole || r == ManagerRole
}

func (r UserRole) ToHuman() string {
	switch r {
	case OrgAdminRole:
		return "Администратор"
	case HRRole:
		return "HR менеджер"
	case ManagerRole:
		return "Руководитель"
	case EmployeeRole:
		return "Сотрудник"
	}
	return string(r)
}
