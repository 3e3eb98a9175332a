package models

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusOnLeave AttendanceStatus = "ON_LEAVE"
)

// DateFormat формат календарной даты в записях посещаемости, заявках на отпуск и праздниках
const DateFormat = "2006-01-02"

// TimeOfDayFormat формат времени для настройки autoAbsentTime и времени прихода/ухода
const TimeOfDayFormat = "15:04"

// AbsentCheckInMark значение check_in в синтетической записи ABSENT
const AbsentCheckInMark = "-"

// коды ws-событий подтверждения отметок
const (
	WsCheckInConfirmed  = "check_in_confirmed"
	WsCheckOutConfirmed = "check_out_confirmed"
)
