package pdfexport

import (
	"bytes"
	"html/template"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"hr-attendance-backend/models"
)

const leaveConfirmationTemplate = `<b>Подтверждение отпуска</b><br><br>
Организация: {{.OrgName}}<br>
Сотрудник: {{.EmployeeName}}<br>
Тип отпуска: {{.LeaveType}}<br>
Период: с {{.StartDate}} по {{.EndDate}} ({{.TotalDays}} дн.)<br>
{{if .Remarks}}Комментарий: {{.Remarks}}<br>{{end}}<br>
Заявка одобрена.`

// GenerateLeaveConfirmation формирует pdf-подтверждение по одобренной заявке
func GenerateLeaveConfirmation(tplData models.LeaveTemplateData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateLeaveConfirmation panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	tpl, err := template.New("leave_confirmation").Parse(leaveConfirmationTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, tplData)
	if err != nil {
		return nil, err
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, buf.String())

	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
