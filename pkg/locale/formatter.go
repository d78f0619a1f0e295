package locale

import (
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи фиксированных текстов виджета
const (
	TextFillAllFields  = "fill_all_fields"
	TextBooked         = "booked"
	TextConfirmCancel  = "confirm_cancel"
	TextNoAppointments = "no_appointments"
	TextOccupied       = "occupied"
	TextSlotsFor       = "slots_for"
	TextSaveFailed     = "save_failed"
	TextSlotTaken      = "slot_taken"
	TextCancel         = "cancel"
	TextCancelFailed   = "cancel_failed"

	TextStoreUnavailable = "store_unavailable"
)

// dictionary правила форматирования для одного языка.
// Названия месяцев и дней недели берет monday, раскладки заданы в нотации time.
type dictionary struct {
	locale    monday.Locale
	longDate  string
	monthYear string
	tag       language.Tag
	texts     map[string]string
}

var spanish = &dictionary{
	locale:    monday.LocaleEsES,
	longDate:  "Monday, 2 de January de 2006",
	monthYear: "January de 2006",
	tag:       language.Spanish,
	texts: map[string]string{
		TextFillAllFields:    "Por favor completa todos los campos",
		TextBooked:           "¡Turno reservado exitosamente!",
		TextConfirmCancel:    "¿Estás seguro de que quieres cancelar este turno?",
		TextNoAppointments:   "No hay turnos reservados",
		TextOccupied:         "Ocupado",
		TextSlotsFor:         "Horarios disponibles para %s",
		TextSaveFailed:       "No se pudo guardar el turno. Seguirá disponible mientras la página esté abierta.",
		TextSlotTaken:        "Este horario ya está ocupado. Por favor elige otro.",
		TextCancel:           "Cancelar",
		TextCancelFailed:     "No se pudo guardar la cancelación.",
		TextStoreUnavailable: "No se pudo acceder a los turnos. Inténtalo de nuevo más tarde.",
	},
}

var english = &dictionary{
	locale:    monday.LocaleEnUS,
	longDate:  "Monday, January 2, 2006",
	monthYear: "January 2006",
	tag:       language.English,
	texts: map[string]string{
		TextFillAllFields:    "Please fill in all fields",
		TextBooked:           "Appointment booked successfully!",
		TextConfirmCancel:    "Are you sure you want to cancel this appointment?",
		TextNoAppointments:   "No appointments booked",
		TextOccupied:         "Occupied",
		TextSlotsFor:         "Available times for %s",
		TextSaveFailed:       "The appointment could not be saved. It stays available while this page is open.",
		TextSlotTaken:        "This time is already taken. Please choose another one.",
		TextCancel:           "Cancel",
		TextCancelFailed:     "The cancellation could not be saved.",
		TextStoreUnavailable: "Appointments are unavailable right now. Please try again later.",
	},
}

// Воскресенье, от которого отсчитываются дни недели для WeekdayShort
var weekStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// Первый тег — язык по умолчанию для matcher
var supported = []language.Tag{language.Spanish, language.English}

var dictionaries = map[language.Base]*dictionary{
	base(language.Spanish): spanish,
	base(language.English): english,
}

// Formatter форматирует даты и тексты виджета для BCP 47 локали ("es-ES", "en-US").
// Неизвестные и некорректные локали сводятся к испанскому.
type Formatter struct {
	matcher language.Matcher

	mu    sync.RWMutex
	cache map[string]*dictionary
}

// NewFormatter создает форматтер с поддержкой es и en
func NewFormatter() *Formatter {
	return &Formatter{
		matcher: language.NewMatcher(supported),
		cache:   make(map[string]*dictionary),
	}
}

// FormatLongDate день недели, число, месяц и год
func (f *Formatter) FormatLongDate(date time.Time, locale string) string {
	d := f.lookup(locale)
	return monday.Format(date, d.longDate, d.locale)
}

// FormatMonthYear месяц и год для заголовка календаря
func (f *Formatter) FormatMonthYear(date time.Time, locale string) string {
	d := f.lookup(locale)
	return monday.Format(date, d.monthYear, d.locale)
}

// WeekdayShort короткое название дня недели с заглавной буквы для шапки календаря
func (f *Formatter) WeekdayShort(weekday time.Weekday, locale string) string {
	d := f.lookup(locale)
	name := monday.Format(weekStart.AddDate(0, 0, int(weekday)), "Mon", d.locale)
	// Caser хранит состояние, поэтому создается на каждый вызов
	return cases.Title(d.tag).String(name)
}

// Text возвращает фиксированный текст по ключу; неизвестный ключ возвращается как есть
func (f *Formatter) Text(key string, locale string) string {
	if text, ok := f.lookup(locale).texts[key]; ok {
		return text
	}
	return key
}

func (f *Formatter) lookup(locale string) *dictionary {
	f.mu.RLock()
	d, ok := f.cache[locale]
	f.mu.RUnlock()
	if ok {
		return d
	}

	d = f.match(locale)

	f.mu.Lock()
	f.cache[locale] = d
	f.mu.Unlock()
	return d
}

func (f *Formatter) match(locale string) *dictionary {
	tag, err := language.Parse(locale)
	if err != nil {
		return spanish
	}
	matched, _, confidence := f.matcher.Match(tag)
	if confidence == language.No {
		return spanish
	}
	if d, ok := dictionaries[base(matched)]; ok {
		return d
	}
	return spanish
}

func base(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}
