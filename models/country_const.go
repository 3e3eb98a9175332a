package models

// CountryDefaults страновые значения по умолчанию, применяются при регистрации организации
type CountryDefaults struct {
	Currency    string
	WorkingDays []string
	Timezone    string
	Holidays    []CountryHoliday
}

// CountryHoliday ежегодный праздник, дата в формате MM-DD
type CountryHoliday struct {
	Date string
	Name string
}

var weekdaysMonFri = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
var weekdaysSunThu = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

var countryDefaultsMap = map[string]CountryDefaults{
	"RU": {
		Currency:    "RUB",
		WorkingDays: weekdaysMonFri,
		Timezone:    "Europe/Moscow",
		Holidays: []CountryHoliday{
			{Date: "01-01", Name: "Новый год"},
			{Date: "01-07", Name: "Рождество Христово"},
			{Date: "02-23", Name: "День защитника Отечества"},
			{Date: "03-08", Name: "Международный женский день"},
			{Date: "05-01", Name: "Праздник Весны и Труда"},
			{Date: "05-09", Name: "День Победы"},
			{Date: "06-12", Name: "День России"},
			{Date: "11-04", Name: "День народного единства"},
		},
	},
	"KZ": {
		Currency:    "KZT",
		WorkingDays: weekdaysMonFri,
		Timezone:    "Asia/Almaty",
		Holidays: []CountryHoliday{
			{Date: "01-01", Name: "Новый год"},
			{Date: "03-22", Name: "Наурыз мейрамы"},
			{Date: "05-01", Name: "Праздник единства народа Казахстана"},
			{Date: "07-06", Name: "День Столицы"},
			{Date: "12-16", Name: "День Независимости"},
		},
	},
	"AE": {
		Currency:    "AED",
		WorkingDays: weekdaysSunThu,
		Timezone:    "Asia/Dubai",
		Holidays: []CountryHoliday{
			{Date: "01-01", Name: "New Year"},
			{Date: "12-02", Name: "National Day"},
		},
	},
	"US": {
		Currency:    "USD",
		WorkingDays: weekdaysMonFri,
		Timezone:    "America/New_York",
		Holidays: []CountryHoliday{
			{Date: "01-01", Name: "New Year's Day"},
			{Date: "07-04", Name: "Independence Day"},
			{Date: "12-25", Name: "Christmas Day"},
		},
	},
}

var genericCountryDefaults = CountryDefaults{
	Currency:    "USD",
	WorkingDays: weekdaysMonFri,
	Timezone:    "UTC",
	Holidays: []CountryHoliday{
		{Date: "01-01", Name: "New Year's Day"},
	},
}

// GetCountryDefaults для неизвестной страны возвращает общий набор
func GetCountryDefaults(countryCode string) CountryDefaults {
	if defaults, ok := countryDefaultsMap[countryCode]; ok {
		return defaults
	}
	return genericCountryDefaults
}
