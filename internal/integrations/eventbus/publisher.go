package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
)

const source = "booking-widget"

// MessageWriter интерфейс записи сообщений (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события о записях в Kafka.
// Ключ сообщения ID записи, поэтому события одной записи попадают в одну партицию.
type Publisher struct {
	writer MessageWriter
	logger Logger
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
}

// NewPublisher создает publisher поверх kafka.Writer
func NewPublisher(brokers []string, topic string, logger Logger) (*Publisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("%w: brokers and topic are required", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return NewPublisherWithWriter(writer, logger), nil
}

// NewPublisherWithWriter создает publisher с произвольным writer
func NewPublisherWithWriter(writer MessageWriter, logger Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// AppointmentBooked публикует событие о новой записи
func (p *Publisher) AppointmentBooked(ctx context.Context, a domain.Appointment) error {
	return p.publish(ctx, EventAppointmentBooked, a)
}

// AppointmentCancelled публикует событие об отмене записи
func (p *Publisher) AppointmentCancelled(ctx context.Context, a domain.Appointment) error {
	return p.publish(ctx, EventAppointmentCancelled, a)
}

func (p *Publisher) publish(ctx context.Context, eventType string, a domain.Appointment) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	event := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  p.now().UTC(),
		Appointment: FromDomain(a),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(a.ID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s id=%d: %v", ErrPublish, eventType, a.ID, err)
	}

	p.logger.Info("EventBus: published %s for appointment id=%d", eventType, a.ID)
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// Nop publisher для выключенных событий
type Nop struct{}

// AppointmentBooked ничего не делает
func (Nop) AppointmentBooked(context.Context, domain.Appointment) error { return nil }

// AppointmentCancelled ничего не делает
func (Nop) AppointmentCancelled(context.Context, domain.Appointment) error { return nil }

// Close ничего не делает
func (Nop) Close() error { return nil }
