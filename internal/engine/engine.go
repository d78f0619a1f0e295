// Package engine implements the booking widget state machine.
// Every operation runs to completion and re-renders the affected parts of the Surface.
// An Engine is not safe for concurrent use.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/calendar"
	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BookingWidget/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Deps collaborators of the engine. Events, Metrics, IDs and Clock are optional.
type Deps struct {
	Surface   Surface
	Bookings  AppointmentService
	Slots     SlotsUseCase
	Booking   BookingUseCase
	Formatter Formatter
	IDs       IDObserver
	Events    EventPublisher
	Metrics   Metrics
	Clock     TimeProvider
	Locale    string
	Logger    Logger
}

// Engine booking widget for one page lifetime
type Engine struct {
	surface   Surface
	bookings  AppointmentService
	slots     SlotsUseCase
	booking   BookingUseCase
	formatter Formatter
	ids       IDObserver
	events    EventPublisher
	metrics   Metrics
	clock     TimeProvider
	locale    string
	logger    Logger

	state domain.EngineState
	// слоты, показанные для выбранной даты
	shown []domain.SlotAvailability
}

// New creates an engine. Call Init before dispatching events.
func New(deps Deps) *Engine {
	e := &Engine{
		surface:   deps.Surface,
		bookings:  deps.Bookings,
		slots:     deps.Slots,
		booking:   deps.Booking,
		formatter: deps.Formatter,
		ids:       deps.IDs,
		events:    deps.Events,
		metrics:   deps.Metrics,
		clock:     deps.Clock,
		locale:    deps.Locale,
		logger:    deps.Logger,
	}
	if e.events == nil {
		e.events = nopEvents{}
	}
	if e.metrics == nil {
		e.metrics = nopMetrics{}
	}
	if e.clock == nil {
		e.clock = &RealTimeProvider{}
	}
	if e.locale == "" {
		e.locale = domain.DefaultLocale
	}
	e.state = domain.EngineState{
		VisibleMonth: domain.MonthOf(e.today()),
		Appointments: []domain.Appointment{},
		Phase:        domain.PhaseBrowsing,
	}
	return e
}

// Init loads appointments, binds the static controls and renders the page.
// A failing store leaves the engine with an empty collection.
func (e *Engine) Init(ctx context.Context) {
	// 1. Загружаем коллекцию
	appointments, err := e.bookings.Load(ctx)
	if err != nil {
		e.logger.Warn("Engine.Init: starting with empty collection: %v", err)
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	e.state.Appointments = appointments

	// 2. Новые ID должны быть больше загруженных
	if e.ids != nil {
		for _, a := range appointments {
			e.ids.Observe(a.ID)
		}
	}

	// 3. Статические кнопки
	e.surface.OnClick(domain.ElementPrevMonth, e.PrevMonth)
	e.surface.OnClick(domain.ElementNextMonth, e.NextMonth)
	e.surface.OnClick(domain.ElementCancelForm, e.CancelBookingForm)
	e.surface.OnClick(domain.ElementConfirm, func(ctx context.Context) {
		_ = e.ConfirmBooking(ctx)
	})

	// 4. Первая отрисовка
	e.renderCalendar()
	e.renderAppointmentList()

	e.logger.Info("Engine.Init: month=%s, appointments=%d",
		e.state.VisibleMonth.FirstDay().Format("2006-01"), len(appointments))
}

// NextMonth shows the following month
func (e *Engine) NextMonth(_ context.Context) {
	e.state.VisibleMonth = e.state.VisibleMonth.Next()
	e.renderCalendar()
}

// PrevMonth shows the preceding month. Navigation into the past is allowed.
func (e *Engine) PrevMonth(_ context.Context) {
	e.state.VisibleMonth = e.state.VisibleMonth.Prev()
	e.renderCalendar()
}

// SelectDate selects a day of the visible month. Non-selectable dates are ignored.
func (e *Engine) SelectDate(ctx context.Context, date time.Time) {
	date = domain.DateOf(date)
	if !calendar.IsSelectable(date, e.state.VisibleMonth, e.today()) {
		return
	}

	if e.state.SelectedDate != nil {
		e.surface.ToggleClass(domain.DayElementID(*e.state.SelectedDate), domain.ClassSelected, false)
	}
	e.state.SelectedDate = &date
	e.surface.ToggleClass(domain.DayElementID(date), domain.ClassSelected, true)
	e.surface.SetValue(domain.ElementInputDate, date.Format(domain.DateFormat))

	// Новая дата сбрасывает выбранный слот
	e.hideForm()
	e.state.Phase = domain.PhaseDateChosen

	e.showTimeSlots(ctx)
}

// SelectTimeSlot selects a free slot of the selected date and opens the booking form.
// Occupied slots, unknown labels and calls without a selected date are ignored.
func (e *Engine) SelectTimeSlot(_ context.Context, slot types.TimeString) {
	if !e.state.HasSelectedDate() {
		return
	}
	available := false
	for _, s := range e.shown {
		if s.Time == slot {
			available = s.IsSelectable() && !e.isOccupied(*e.state.SelectedDate, slot)
			break
		}
	}
	if !available {
		return
	}

	if e.state.SelectedTime != nil {
		e.surface.ToggleClass(domain.SlotElementID(*e.state.SelectedTime), domain.ClassSelected, false)
	}
	e.state.SelectedTime = &slot
	e.surface.ToggleClass(domain.SlotElementID(slot), domain.ClassSelected, true)
	e.surface.SetValue(domain.ElementInputTime, slot.String())

	e.surface.ToggleClass(domain.ElementBookingForm, domain.ClassActive, true)
	e.surface.Focus(domain.ElementClientName)
	e.state.Phase = domain.PhaseFormOpen
}

// ConfirmBooking books the selected slot with the name and phone typed into the form.
// The slot is checked against the stored collection, so a booking made by another
// session wins and ErrSlotNotAvailable is returned with the state refreshed.
// Returns ErrPersistence when the store failed; the appointment stays in memory.
func (e *Engine) ConfirmBooking(ctx context.Context) error {
	if !e.state.HasSelectedTime() {
		return fmt.Errorf("%w: no slot selected", ErrInvalidInput)
	}

	// 1. Создаем запись
	resp, err := e.booking.Execute(ctx, &create_booking.Request{
		Date:        *e.state.SelectedDate,
		Time:        *e.state.SelectedTime,
		ClientName:  e.surface.Value(domain.ElementClientName),
		ClientPhone: e.surface.Value(domain.ElementClientPhone),
	})

	// 2. Обрабатываем ошибки
	var persistErr error
	switch {
	case err == nil:
	case errors.Is(err, create_booking.ErrValidation):
		e.metrics.ObserveBooking(OutcomeInvalid)
		e.surface.Alert(e.text(textFillAllFields))
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, create_booking.ErrSlotNotAvailable):
		// Слот заняла другая сессия: берем коллекцию из хранилища
		if resp != nil {
			e.state.Appointments = resp.Appointments
		}
		e.metrics.ObserveBooking(OutcomeSlotTaken)
		e.surface.Alert(e.text(textSlotTaken))
		e.CancelBookingForm(ctx)
		e.showTimeSlots(ctx)
		e.renderAppointmentList()
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, create_booking.ErrStoreUnavailable):
		e.logger.Error("Engine.ConfirmBooking: %v", err)
		e.metrics.ObserveBooking(OutcomeUnavailable)
		e.surface.Alert(e.text(textStoreUnavailable))
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	case errors.Is(err, create_booking.ErrPersistence) && resp != nil:
		persistErr = fmt.Errorf("%w: %v", ErrPersistence, err)
	case errors.Is(err, create_booking.ErrInvalidInput):
		e.logger.Warn("Engine.ConfirmBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		e.logger.Error("Engine.ConfirmBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Коллекция из хранилища, с новой записью даже при ошибке сохранения
	e.state.Appointments = resp.Appointments

	if persistErr != nil {
		e.metrics.ObserveBooking(OutcomePersistFailed)
		e.surface.Alert(e.text(textSaveFailed))
	} else {
		e.metrics.ObserveBooking(OutcomeSuccess)
		if err := e.events.AppointmentBooked(ctx, resp.Appointment); err != nil {
			e.logger.Error("Engine.ConfirmBooking: failed to publish event for id=%d: %v", resp.Appointment.ID, err)
		}
		e.surface.Alert(e.text(textBooked))
	}

	// 4. Закрываем форму и перерисовываем
	e.CancelBookingForm(ctx)
	e.showTimeSlots(ctx)
	e.renderAppointmentList()

	return persistErr
}

// CancelBookingForm hides the booking form and drops the selected slot
func (e *Engine) CancelBookingForm(_ context.Context) {
	e.hideForm()
	if e.state.HasSelectedDate() {
		e.state.Phase = domain.PhaseDateChosen
	} else {
		e.state.Phase = domain.PhaseBrowsing
	}
}

// CancelAppointment asks for confirmation and removes the appointment with id.
// A declined dialog or an unknown id leaves the collection unchanged.
func (e *Engine) CancelAppointment(ctx context.Context, id int64) error {
	if !e.surface.Confirm(e.text(textConfirmCancel)) {
		e.metrics.ObserveCancellation(OutcomeDeclined)
		return nil
	}

	result, err := e.bookings.Cancel(ctx, id)
	if result == nil {
		e.logger.Error("Engine.CancelAppointment: id=%d: %v", id, err)
		e.metrics.ObserveCancellation(OutcomeUnavailable)
		e.surface.Alert(e.text(textStoreUnavailable))
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.state.Appointments = result.Appointments

	var persistErr error
	switch {
	case err != nil:
		persistErr = fmt.Errorf("%w: %v", ErrPersistence, err)
		e.metrics.ObserveCancellation(OutcomePersistFailed)
		e.surface.Alert(e.text(textCancelFailed))
	case !result.Found():
		e.metrics.ObserveCancellation(OutcomeNotFound)
	default:
		e.metrics.ObserveCancellation(OutcomeSuccess)
		if err := e.events.AppointmentCancelled(ctx, *result.Removed); err != nil {
			e.logger.Error("Engine.CancelAppointment: failed to publish event for id=%d: %v", id, err)
		}
	}

	e.renderAppointmentList()
	if e.state.HasSelectedDate() {
		e.showTimeSlots(ctx)
	}

	return persistErr
}

// State returns a copy of the engine state
func (e *Engine) State() domain.EngineState {
	s := e.state
	s.Appointments = append([]domain.Appointment(nil), e.state.Appointments...)
	if e.state.SelectedDate != nil {
		date := *e.state.SelectedDate
		s.SelectedDate = &date
	}
	if e.state.SelectedTime != nil {
		slot := *e.state.SelectedTime
		s.SelectedTime = &slot
	}
	return s
}

// Appointments returns the collection in its canonical (insertion) order
func (e *Engine) Appointments() []domain.Appointment {
	return append([]domain.Appointment(nil), e.state.Appointments...)
}

// Slots returns the slots shown for the selected date
func (e *Engine) Slots() []domain.SlotAvailability {
	return append([]domain.SlotAvailability(nil), e.shown...)
}

func (e *Engine) showTimeSlots(ctx context.Context) {
	if !e.state.HasSelectedDate() {
		return
	}
	date := *e.state.SelectedDate

	resp, err := e.slots.Execute(ctx, &get_available_slots.Request{
		Date:         date,
		Appointments: e.state.Appointments,
	})
	if err != nil {
		e.logger.Error("Engine.showTimeSlots: date=%s: %v", date.Format(domain.DateFormat), err)
		return
	}
	e.shown = resp.Slots

	e.surface.SetText(domain.ElementSelectedDate,
		fmt.Sprintf(e.text(textSlotsFor), e.formatter.FormatLongDate(date, e.locale)))
	e.renderSlots()
	e.surface.ToggleClass(domain.ElementTimeSlots, domain.ClassActive, true)
}

// hideForm закрывает форму, очищает поля и выбранный слот
func (e *Engine) hideForm() {
	e.surface.ToggleClass(domain.ElementBookingForm, domain.ClassActive, false)
	e.surface.SetValue(domain.ElementClientName, "")
	e.surface.SetValue(domain.ElementClientPhone, "")
	e.surface.SetValue(domain.ElementInputTime, "")
	if e.state.SelectedTime != nil {
		e.surface.ToggleClass(domain.SlotElementID(*e.state.SelectedTime), domain.ClassSelected, false)
		e.state.SelectedTime = nil
	}
}

func (e *Engine) isOccupied(date time.Time, slot types.TimeString) bool {
	for i := range e.state.Appointments {
		if e.state.Appointments[i].Occupies(date, slot) {
			return true
		}
	}
	return false
}

func (e *Engine) today() time.Time {
	return domain.DateOf(e.clock.Now())
}
