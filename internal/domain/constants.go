package domain

// DefaultTimeSlots half-hour slots: morning band, lunch break, afternoon band
var DefaultTimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// Default widget settings
const (
	DefaultLocale  = "es-ES"
	MonthGridCells = 42
	MonthGridWeeks = 6
	DaysInWeek     = 7
)

// Time format constants
const (
	TimeFormat       = "15:04"           // HH:MM
	DateFormat       = "2006-01-02"      // YYYY-MM-DD
	LegacyDateFormat = "Mon Jan 02 2006" // Date.prototype.toDateString
)
