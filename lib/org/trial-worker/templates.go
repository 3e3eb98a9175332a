package trialworker

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	"hr-attendance-backend/models"
)

const trialExpiredSubject = "Пробный период завершен"

const trialExpiredTemplate = `<html>
<body>
<p>Здравствуйте!</p>
<p>Пробный период организации <b>{{.OrgName}}</b> завершился {{.TrialEndDate}}.</p>
<p>Доступ к системе учета рабочего времени приостановлен. Для продолжения работы выберите тарифный план в личном кабинете.</p>
<p>--<br>Служба учета рабочего времени</p>
</body>
</html>`

func buildTrialExpiredMsg(data models.TrialTemplateData) (string, error) {
	tpl, err := template.New("trial_expired").Parse(trialExpiredTemplate)
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
