package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	ExportAttendanceReport(list []dbmodels.AttendanceRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var attendanceHeaders = []string{"Сотрудник", "Дата", "Статус", "Приход", "Уход", "Локация", "Комментарий"}

func (i impl) ExportAttendanceReport(list []dbmodels.AttendanceRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, attendanceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeAttendanceData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Посещаемость")
	return f.WriteToBuffer()
}

func writeAttendanceData(f *excelize.File, sheet string, list []dbmodels.AttendanceRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(attendanceHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EmployeeName); err != nil {
			return row, err
		}

		// "Дата"
		col++
		if err := writeColumn(f, sheet, col, row, item.Date); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Приход"
		col++
		if err := writeColumn(f, sheet, col, row, item.CheckIn); err != nil {
			return row, err
		}

		// "Уход"
		col++
		if err := writeColumn(f, sheet, col, row, item.CheckOut); err != nil {
			return row, err
		}

		// "Локация"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Комментарий"
		col++
		if err := writeColumn(f, sheet, col, row, item.Remarks); err != nil {
			return row, err
		}
	}
	return row, nil
}
