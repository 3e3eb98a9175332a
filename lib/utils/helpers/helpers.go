package helpers

import (
	"context"
	"strings"
	"time"

	"hr-attendance-backend/models"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

func FormatDate(t time.Time) string {
	return t.Format(models.DateFormat)
}

func FormatTimeOfDay(t time.Time) string {
	return t.Format(models.TimeOfDayFormat)
}

// DaysBetweenInclusive количество календарных дней интервала, обе границы включены
func DaysBetweenInclusive(startDate, endDate string) (int, error) {
	start, err := time.Parse(models.DateFormat, startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(models.DateFormat, endDate)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, nil
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// IsValidEmail дешевый фильтр для очереди уведомлений, не полная валидация
func IsValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

// InLocation время в таймзоне организации, при пустой или неизвестной зоне — UTC
func InLocation(t time.Time, tzName string) time.Time {
	if tzName == "" {
		return t.UTC()
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return t.UTC()
	}
	return t.In(loc)
}
