package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/calendar"
	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/service/bookings"
	"github.com/m04kA/SMC-BookingWidget/pkg/locale"
)

const (
	textFillAllFields  = locale.TextFillAllFields
	textBooked         = locale.TextBooked
	textConfirmCancel  = locale.TextConfirmCancel
	textNoAppointments = locale.TextNoAppointments
	textOccupied       = locale.TextOccupied
	textSlotsFor       = locale.TextSlotsFor
	textSaveFailed     = locale.TextSaveFailed
	textSlotTaken      = locale.TextSlotTaken
	textCancel         = locale.TextCancel
	textCancelFailed   = locale.TextCancelFailed

	textStoreUnavailable = locale.TextStoreUnavailable
)

func (e *Engine) text(key string) string {
	return e.formatter.Text(key, e.locale)
}

// renderCalendar рисует заголовок месяца, дни недели и 42 ячейки
func (e *Engine) renderCalendar() {
	visible := e.state.VisibleMonth
	e.surface.SetText(domain.ElementMonthYear, e.formatter.FormatMonthYear(visible.FirstDay(), e.locale))

	nodes := make([]domain.Node, 0, domain.DaysInWeek+domain.MonthGridCells)
	for i := 0; i < domain.DaysInWeek; i++ {
		nodes = append(nodes, domain.Node{
			Kind:    domain.NodeText,
			Text:    e.formatter.WeekdayShort(time.Weekday(i), e.locale),
			Classes: []string{domain.ClassDayHeader},
		})
	}

	var selectable []time.Time
	for cell := range calendar.Cells(visible, e.today()) {
		classes := []string{domain.ClassDayCell}
		if cell.OtherMonth {
			classes = append(classes, domain.ClassOtherMonth)
		}
		if cell.Today {
			classes = append(classes, domain.ClassToday)
		}
		if cell.Past {
			classes = append(classes, domain.ClassPast)
		}
		if cell.Selectable {
			selectable = append(selectable, cell.Date)
			if e.state.SelectedDate != nil && cell.Date.Equal(*e.state.SelectedDate) {
				classes = append(classes, domain.ClassSelected)
			}
		} else {
			classes = append(classes, domain.ClassDisabled)
		}

		nodes = append(nodes, domain.Node{
			ID:      domain.DayElementID(cell.Date),
			Kind:    domain.NodeDay,
			Text:    strconv.Itoa(cell.Date.Day()),
			Classes: classes,
		})
	}

	e.surface.Render(domain.ElementCalendar, nodes)

	// Клики привязываются только к выбираемым дням
	for _, date := range selectable {
		date := date
		e.surface.OnClick(domain.DayElementID(date), func(ctx context.Context) {
			e.SelectDate(ctx, date)
		})
	}
}

// renderSlots рисует слоты выбранной даты; занятые без привязки клика
func (e *Engine) renderSlots() {
	nodes := make([]domain.Node, 0, len(e.shown))
	for _, slot := range e.shown {
		node := domain.Node{
			ID:      domain.SlotElementID(slot.Time),
			Kind:    domain.NodeSlot,
			Text:    slot.Time.String(),
			Classes: []string{domain.ClassTimeSlot},
		}
		if slot.Occupied {
			node.Text += " (" + e.text(textOccupied) + ")"
			node.Classes = append(node.Classes, domain.ClassOccupied)
		} else if e.state.SelectedTime != nil && *e.state.SelectedTime == slot.Time {
			node.Classes = append(node.Classes, domain.ClassSelected)
		}
		nodes = append(nodes, node)
	}

	e.surface.Render(domain.ElementSlotsGrid, nodes)

	for _, slot := range e.shown {
		if !slot.IsSelectable() {
			continue
		}
		label := slot.Time
		e.surface.OnClick(domain.SlotElementID(label), func(ctx context.Context) {
			e.SelectTimeSlot(ctx, label)
		})
	}
}

// renderAppointmentList рисует список записей по дате и времени
func (e *Engine) renderAppointmentList() {
	sorted := bookings.Sorted(e.state.Appointments)
	if len(sorted) == 0 {
		e.surface.Render(domain.ElementAppointments, []domain.Node{{
			Kind:    domain.NodeText,
			Text:    e.text(textNoAppointments),
			Classes: []string{domain.ClassNoItems},
		}})
		return
	}

	nodes := make([]domain.Node, 0, len(sorted))
	for _, a := range sorted {
		nodes = append(nodes, domain.Node{
			ID:      domain.AppointmentElementID(a.ID),
			Kind:    domain.NodeItem,
			Classes: []string{domain.ClassAppointment},
			Children: []domain.Node{
				{Kind: domain.NodeText, Text: e.formatter.FormatLongDate(a.Date, e.locale) + " - " + a.Time.String()},
				{Kind: domain.NodeText, Text: a.ClientName + " - " + a.ClientPhone},
				{ID: domain.CancelElementID(a.ID), Kind: domain.NodeButton, Text: e.text(textCancel), Classes: []string{domain.ClassCancelBtn}},
			},
		})
	}

	e.surface.Render(domain.ElementAppointments, nodes)

	for _, a := range sorted {
		id := a.ID
		e.surface.OnClick(domain.CancelElementID(id), func(ctx context.Context) {
			_ = e.CancelAppointment(ctx, id)
		})
	}
}
