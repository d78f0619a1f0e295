package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/internal/service/sessions/models"
	"github.com/m04kA/SMC-BookingWidget/internal/ui"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// session страница с движком. События одной сессии выполняются последовательно под mu.
type session struct {
	mu       sync.Mutex
	id       string
	page     *ui.Page
	widget   Widget
	lastSeen time.Time
}

// Service реестр сессий страниц
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	factory      WidgetFactory
	ttl          time.Duration
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает реестр сессий. Сессия без событий дольше ttl удаляется в Sweep.
func NewService(factory WidgetFactory, ttl time.Duration, metrics Metrics, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*session),
		factory:      factory,
		ttl:          ttl,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open создает страницу и движок, загружает записи и рисует страницу
func (s *Service) Open(ctx context.Context) (*models.View, error) {
	page := ui.NewPage()
	widget := s.factory(page)
	widget.Init(ctx)

	sess := &session{
		id:       uuid.NewString(),
		page:     page,
		widget:   widget,
		lastSeen: s.timeProvider.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
	s.logger.Info("Open: session %s opened", sess.id)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, false), nil
}

// View возвращает состояние страницы
func (s *Service) View(_ context.Context, sessionID string) (*models.View, error) {
	return s.do(sessionID, func(sess *session) bool { return false })
}

// Close закрывает сессию (уход со страницы)
func (s *Service) Close(_ context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if s.metrics != nil {
		s.metrics.SessionClosed()
	}
	s.logger.Info("Close: session %s closed", sessionID)
	return nil
}

// NavigateMonth нажимает prevMonth или nextMonth
func (s *Service) NavigateMonth(ctx context.Context, sessionID, direction string) (*models.View, error) {
	var element string
	switch direction {
	case models.DirectionPrev:
		element = domain.ElementPrevMonth
	case models.DirectionNext:
		element = domain.ElementNextMonth
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	return s.click(ctx, sessionID, element)
}

// SelectDate нажимает ячейку дня. Невыбираемые дни игнорируются страницей.
func (s *Service) SelectDate(ctx context.Context, sessionID string, date time.Time) (*models.View, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return s.click(ctx, sessionID, domain.DayElementID(date))
}

// SelectSlot нажимает кнопку слота. Занятые слоты игнорируются страницей.
func (s *Service) SelectSlot(ctx context.Context, sessionID string, slot types.TimeString) (*models.View, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.click(ctx, sessionID, domain.SlotElementID(slot))
}

// ConfirmBooking заполняет форму и нажимает confirmBooking
func (s *Service) ConfirmBooking(ctx context.Context, sessionID, name, phone string) (*models.View, error) {
	return s.do(sessionID, func(sess *session) bool {
		sess.page.SetValue(domain.ElementClientName, name)
		sess.page.SetValue(domain.ElementClientPhone, phone)
		return sess.page.Click(ctx, domain.ElementConfirm)
	})
}

// CancelBookingForm нажимает cancelBooking
func (s *Service) CancelBookingForm(ctx context.Context, sessionID string) (*models.View, error) {
	return s.click(ctx, sessionID, domain.ElementCancelForm)
}

// CancelAppointment отвечает на диалог подтверждения и нажимает кнопку отмены записи
func (s *Service) CancelAppointment(ctx context.Context, sessionID string, appointmentID int64, confirm bool) (*models.View, error) {
	return s.do(sessionID, func(sess *session) bool {
		sess.page.AnswerConfirm(confirm)
		dispatched := sess.page.Click(ctx, domain.CancelElementID(appointmentID))
		// неотвеченный ответ не должен достаться следующему диалогу
		sess.page.AnswerConfirm(false)
		return dispatched
	})
}

// Sweep удаляет сессии без событий дольше ttl. Возвращает число удаленных.
func (s *Service) Sweep() int {
	deadline := s.timeProvider.Now().Add(-s.ttl)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		sess.mu.Lock()
		if sess.lastSeen.Before(deadline) {
			expired = append(expired, id)
		}
		sess.mu.Unlock()
	}
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for range expired {
		if s.metrics != nil {
			s.metrics.SessionClosed()
		}
	}
	if len(expired) > 0 {
		s.logger.Info("Sweep: %d idle sessions expired", len(expired))
	}
	return len(expired)
}

// Count возвращает число открытых сессий
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) click(ctx context.Context, sessionID, element string) (*models.View, error) {
	return s.do(sessionID, func(sess *session) bool {
		return sess.page.Click(ctx, element)
	})
}

// do выполняет событие под мьютексом сессии и возвращает новое состояние
func (s *Service) do(sessionID string, event func(sess *session) bool) (*models.View, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = s.timeProvider.Now()
	dispatched := event(sess)
	return s.view(sess, dispatched), nil
}

// view снимает состояние страницы; диалоги попадают в ответ один раз
func (s *Service) view(sess *session, dispatched bool) *models.View {
	state := sess.widget.State()

	v := &models.View{
		SessionID:    sess.id,
		Phase:        string(state.Phase),
		VisibleMonth: state.VisibleMonth.FirstDay().Format("2006-01"),
		Dispatched:   dispatched,
		Page:         sess.page.Snapshot(),
	}
	if state.SelectedDate != nil {
		date := state.SelectedDate.Format(domain.DateFormat)
		v.SelectedDate = &date
	}
	if state.HasSelectedTime() {
		slot := state.SelectedTime.String()
		v.SelectedTime = &slot
	}

	sess.page.DrainAlerts()
	sess.page.DrainConfirms()
	return v
}
