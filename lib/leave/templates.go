package leavehandler

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	"hr-attendance-backend/models"
)

const (
	createdSubject    = "Заявка на отпуск принята"
	managerSubject    = "Требуется решение по заявке на отпуск"
	escalationSubject = "Требуется проверка заявки на отпуск"
	decisionSubject   = "Решение по заявке на отпуск"
	monitorSubject    = "Контроль: событие по заявке на отпуск"
)

const createdTemplate = `
<p>Здравствуйте, {{.EmployeeName}}!</p>
<p>Ваша заявка на отпуск принята и передана на рассмотрение.</p>
<ul>
<li>Тип: {{.LeaveType}}</li>
<li>Период: {{.StartDate}} — {{.EndDate}} ({{.TotalDays}} дн.)</li>
<li>Причина: {{.Reason}}</li>
</ul>
<p>{{.OrgName}}</p>`

const managerAlertTemplate = `
<p>Здравствуйте, {{.ManagerName}}!</p>
<p>Сотрудник {{.EmployeeName}} подал заявку на отпуск, требуется ваше решение.</p>
<ul>
<li>Тип: {{.LeaveType}}</li>
<li>Период: {{.StartDate}} — {{.EndDate}} ({{.TotalDays}} дн.)</li>
<li>Причина: {{.Reason}}</li>
</ul>
<p>{{.OrgName}}</p>`

const escalationTemplate = `
<p>Заявка сотрудника {{.EmployeeName}} согласована руководителем и ожидает проверки HR.</p>
<ul>
<li>Тип: {{.LeaveType}}</li>
<li>Период: {{.StartDate}} — {{.EndDate}} ({{.TotalDays}} дн.)</li>
{{if .Remarks}}<li>Комментарий руководителя: {{.Remarks}}</li>{{end}}
</ul>
<p>{{.OrgName}}</p>`

const decisionTemplate = `
<p>Здравствуйте, {{.EmployeeName}}!</p>
<p>По вашей заявке на отпуск принято решение: <b>{{.Status}}</b>.</p>
<ul>
<li>Тип: {{.LeaveType}}</li>
<li>Период: {{.StartDate}} — {{.EndDate}} ({{.TotalDays}} дн.)</li>
{{if .Remarks}}<li>Комментарий: {{.Remarks}}</li>{{end}}
</ul>
<p>{{.OrgName}}</p>`

const monitorTemplate = `
<p>Событие по заявке на отпуск в организации {{.OrgName}}.</p>
<ul>
<li>Сотрудник: {{.EmployeeName}}</li>
<li>Тип: {{.LeaveType}}</li>
<li>Период: {{.StartDate}} — {{.EndDate}} ({{.TotalDays}} дн.)</li>
<li>Статус: {{.Status}}</li>
{{if .Remarks}}<li>Комментарий: {{.Remarks}}</li>{{end}}
</ul>`

func renderTemplate(name, tplText string, data models.LeaveTemplateData) (string, error) {
	tpl, err := template.New(name).Parse(tplText)
	if err != nil {
		return "", errors.Wrapf(err, "ошибка разбора шаблона %v", name)
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", errors.Wrapf(err, "ошибка генерации письма %v", name)
	}
	return buf.String(), nil
}

func BuildCreatedMsg(data models.LeaveTemplateData) (string, error) {
	return renderTemplate("leave_created", createdTemplate, data)
}

func BuildManagerAlertMsg(data models.LeaveTemplateData) (string, error) {
	return renderTemplate("leave_manager_alert", managerAlertTemplate, data)
}

func BuildEscalationMsg(data models.LeaveTemplateData) (string, error) {
	return renderTemplate("leave_hr_escalation", escalationTemplate, data)
}

func BuildDecisionMsg(data models.LeaveTemplateData) (string, error) {
	return renderTemplate("leave_decision", decisionTemplate, data)
}

func BuildMonitorMsg(data models.LeaveTemplateData) (string, error) {
	return renderTemplate("leave_monitor", monitorTemplate, data)
}
