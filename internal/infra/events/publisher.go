package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Типы событий
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// Заголовки сообщения
const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

// ErrPublish возвращается при ошибке отправки события
var ErrPublish = errors.New("events: failed to publish")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// BookingEvent полезная нагрузка событий о записи
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      int64     `json:"bookingId"`
	PublicID       string    `json:"publicId"`
	ProfessionalID int64     `json:"professionalId"`
	ClientID       int64     `json:"clientId"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewBookingEvent собирает событие из записи
func NewBookingEvent(eventType string, b *domain.Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		Type:           eventType,
		BookingID:      b.ID,
		PublicID:       b.PublicID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Status:         string(b.Status),
		OccurredAt:     occurredAt.UTC(),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher публикует события о записях в Kafka
type Publisher struct {
	writer messageWriter
	log    Logger
}

// NewPublisher создает publisher. Сообщения одного профессионала попадают в одну партицию.
func NewPublisher(brokers []string, topic string, log Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		log: log,
	}
}

// Publish отправляет событие
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s for booking %s: %v", ErrPublish, event.Type, event.PublicID, err)
	}

	p.log.Info("Event %s published for booking %s", event.Type, event.PublicID)
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func buildMessage(event BookingEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: encode event: %v", ErrPublish, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ProfessionalID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}, nil
}

// NoopPublisher используется, когда брокеры не настроены
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
