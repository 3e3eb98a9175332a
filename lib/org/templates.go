package orghandler

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"hr-attendance-backend/models"
)

const welcomeSubject = "Организация зарегистрирована"

// приветственное письмо уходит обычным текстом, до настройки html-отправителя организации
const welcomeTemplate = `Здравствуйте, {{.AdminName}}!

Организация "{{.OrgName}}" зарегистрирована в системе учета рабочего времени.
Пробный период действует до {{.TrialEndDate}}.

Войдите с адресом {{.AdminEmail}} и заданным при регистрации паролем,
добавьте сотрудников и настройте время автоотметки отсутствия.

--
Служба учета рабочего времени`

func buildWelcomeMsg(data models.WelcomeTemplateData) (string, error) {
	tpl, err := template.New("org_welcome").Parse(welcomeTemplate)
	if err != nil {
		return "", errors.Wrap(err, "ошибка разбора шаблона письма")
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", errors.Wrap(err, "ошибка генерации письма")
	}
	return buf.String(), nil
}
